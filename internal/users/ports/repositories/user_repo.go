package repositories

import (
	"context"

	"plazausers/internal/users/domain/entities"
)

// UserRepository определяет хранилище учетных записей.
// FindByEmail и FindByID возвращают entities.ErrUserNotFound, если записи нет.
// Save возвращает ошибку конфликта, если email или документ уже заняты.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ExistsByDocument(ctx context.Context, document string) (bool, error)

	Save(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)
}
