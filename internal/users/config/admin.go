package config

import (
	"fmt"
	"time"
)

const adminBirthDateLayout = "2006-01-02"

// AdminConfig описывает администратора, создаваемого при запуске.
// Администратор не может зарегистрироваться через API.
type AdminConfig struct {
	Email     string `yaml:"email" env:"USERS_ADMIN_EMAIL"`
	Password  string `yaml:"password" env:"USERS_ADMIN_PASSWORD"`
	FirstName string `yaml:"first_name" env:"USERS_ADMIN_FIRST_NAME" env-default:"Plaza"`
	LastName  string `yaml:"last_name" env:"USERS_ADMIN_LAST_NAME" env-default:"Admin"`
	Document  string `yaml:"document" env:"USERS_ADMIN_DOCUMENT" env-default:"1"`
	Phone     string `yaml:"phone" env:"USERS_ADMIN_PHONE" env-default:"+10000000000"`
	BirthDate string `yaml:"birth_date" env:"USERS_ADMIN_BIRTH_DATE" env-default:"1990-01-01"`
}

func (a *AdminConfig) Enabled() bool {
	return a.Email != ""
}

func (a *AdminConfig) GetBirthDate() (time.Time, error) {
	t, err := time.Parse(adminBirthDateLayout, a.BirthDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("admin birth date: %w", err)
	}
	return t, nil
}

func (a *AdminConfig) Validate() error {
	if !a.Enabled() {
		return nil
	}
	if a.Password == "" {
		return fmt.Errorf("admin password is required when admin email is set")
	}
	_, err := a.GetBirthDate()
	return err
}
