package services

import (
	"context"
	"time"

	"plazausers/pkg/identity"
)

// PasswordService хеширует и сверяет пароли.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}

// TokenService выпускает и проверяет токены сессии.
type TokenService interface {
	Issue(ctx context.Context, id identity.Identity) (string, time.Time, error)

	Authenticate(ctx context.Context, token string) (identity.Identity, error)

	ExpirationMs() int64
}

// Clock возвращает текущую дату.
type Clock interface {
	Today() time.Time
}
