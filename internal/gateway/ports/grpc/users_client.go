// Package grpc определяет интерфейсы для взаимодействия с gRPC сервисами.
package grpc

import (
	"context"

	usersv1 "plazausers/pkg/api/users/v1"
)

// UsersServiceClient определяет интерфейс для взаимодействия с сервисом пользователей.
// Токен и request id берутся из контекста вызова.
type UsersServiceClient interface {
	CreateOwner(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error)

	CreateEmployee(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error)

	CreateCustomer(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error)

	Login(ctx context.Context, email, password string) (*usersv1.LoginResponse, error)

	GetUser(ctx context.Context, id int64) (*usersv1.UserResponse, error)

	IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error)

	Health(ctx context.Context) error

	Close() error
}
