package api

import (
	"context"

	"plazausers/internal/users/domain/entities"
)

// RegistrationUseCase регистрирует пользователей с ролью, назначаемой сервисом.
type RegistrationUseCase interface {
	CreateOwner(ctx context.Context, user *entities.User) (*entities.User, error)

	CreateEmployee(ctx context.Context, user *entities.User) (*entities.User, error)

	CreateCustomer(ctx context.Context, user *entities.User) (*entities.User, error)

	EnsureAdmin(ctx context.Context, admin *entities.User) (*entities.User, error)
}

// LoginResult - результат успешного входа.
type LoginResult struct {
	User        *entities.User
	Token       string
	ExpiresInMs int64
}

// AuthUseCase проверяет учетные данные.
type AuthUseCase interface {
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// UserUseCase отвечает на запросы о существующих пользователях.
type UserUseCase interface {
	GetUserByID(ctx context.Context, id int64) (*entities.User, error)

	IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error)
}
