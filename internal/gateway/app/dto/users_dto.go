// Package dto содержит объекты передачи данных для Gateway.
package dto

import (
	usersv1 "plazausers/pkg/api/users/v1"
)

// CreateUserRequest содержит данные для создания пользователя любой роли.
// RestaurantID обязателен только для сотрудника.
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Document     string `json:"document"`
	Phone        string `json:"phone"`
	BirthDate    string `json:"birthDate"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	RestaurantID *int64 `json:"restaurantId,omitempty"`
}

// ToProto преобразует запрос в сообщение сервиса пользователей.
func (r *CreateUserRequest) ToProto() *usersv1.CreateUserRequest {
	return &usersv1.CreateUserRequest{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Document:     r.Document,
		Phone:        r.Phone,
		BirthDate:    r.BirthDate,
		Email:        r.Email,
		Password:     r.Password,
		RestaurantId: r.RestaurantID,
	}
}

// UserResponse - публичное представление пользователя. Хэш пароля не передается.
type UserResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	RestaurantID *int64 `json:"restaurantId,omitempty"`
}

func UserFromProto(resp *usersv1.UserResponse) *UserResponse {
	return &UserResponse{
		ID:           resp.Id,
		FirstName:    resp.FirstName,
		LastName:     resp.LastName,
		Email:        resp.Email,
		Phone:        resp.Phone,
		Role:         resp.Role,
		Active:       resp.Active,
		RestaurantID: resp.RestaurantId,
	}
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse содержит выданный токен. ExpiresIn задается в миллисекундах.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expiresIn"`
}

func LoginFromProto(resp *usersv1.LoginResponse) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		UserID:    resp.UserId,
		Role:      resp.Role,
		ExpiresIn: resp.ExpiresIn,
	}
}

type IsEmployeeResponse struct {
	IsEmployee bool `json:"isEmployee"`
}

// ErrorResponse - тело любого ответа с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse описывает состояние шлюза и сервиса пользователей.
type HealthResponse struct {
	Status       string `json:"status"`
	UsersService string `json:"usersService"`
}
