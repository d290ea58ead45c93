// Package services определяет интерфейсы сервисов Gateway.
package services

import (
	"context"

	"plazausers/internal/gateway/app/dto"
)

// UsersService определяет операции шлюза над сервисом пользователей.
type UsersService interface {
	CreateOwner(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)

	CreateEmployee(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)

	CreateCustomer(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)

	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)

	IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error)

	Health(ctx context.Context) error
}
