// Package entities содержит сущности и ошибки домена пользователей.
package entities

import (
	"time"

	"plazausers/pkg/identity"
)

// User - зарегистрированный пользователь. До сохранения ID равен нулю,
// Password содержит открытый пароль только до хеширования.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Document     string
	Phone        string
	BirthDate    time.Time
	Email        string
	Password     string
	Role         identity.Role
	Active       bool
	RestaurantID *int64
	CreatedAt    time.Time
}

// Identity возвращает личность пользователя для выпуска токена.
func (u *User) Identity() identity.Identity {
	return identity.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// WorksAt сообщает, является ли пользователь сотрудником ресторана restaurantID.
func (u *User) WorksAt(restaurantID int64) bool {
	return u.Role == identity.RoleEmployee && u.RestaurantID != nil && *u.RestaurantID == restaurantID
}
