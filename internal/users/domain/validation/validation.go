// Package validation проверяет персональные данные пользователя при регистрации.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"plazausers/internal/users/domain/entities"
)

// LegalAge - минимальный возраст в полных годах.
const LegalAge = 18

// Пределы длины совпадают с колонками таблицы users.
const (
	MaxEmailLength    = 255
	MaxDocumentLength = 32
	MaxNameLength     = 100

	maxPhoneLength = 13
)

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{1,13}$`)
	documentRegex = regexp.MustCompile(`^[0-9]+$`)
)

func ValidateEmail(email string) error {
	if len(email) > MaxEmailLength || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// ValidatePhone допускает ведущий "+" и не более 13 символов вместе с ним.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) || len(phone) > maxPhoneLength {
		return entities.ErrInvalidPhone
	}
	return nil
}

func ValidateDocument(document string) error {
	if len(document) > MaxDocumentLength || !documentRegex.MatchString(document) {
		return entities.ErrInvalidDocument
	}
	return nil
}

// ValidateAge требует дату рождения и не менее LegalAge полных лет на дату today.
func ValidateAge(birthDate, today time.Time) error {
	if birthDate.IsZero() || FullYears(birthDate, today) < LegalAge {
		return entities.ErrUnderage
	}
	return nil
}

// FullYears считает полные календарные годы между датами без учета времени суток.
// Родившийся 29 февраля становится старше 1 марта невисокосного года.
func FullYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// ValidateNames требует непустые имя и фамилию не длиннее MaxNameLength символов.
func ValidateNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return entities.ErrFirstNameRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return entities.ErrLastNameRequired
	}
	if utf8.RuneCountInString(firstName) > MaxNameLength || utf8.RuneCountInString(lastName) > MaxNameLength {
		return entities.ErrNameTooLong
	}
	return nil
}

// ValidateCommonFields проверяет email, телефон, документ, возраст и затем имена,
// именно в этом порядке, и возвращает первую найденную ошибку.
func ValidateCommonFields(user *entities.User, today time.Time) error {
	if err := ValidateEmail(user.Email); err != nil {
		return err
	}
	if err := ValidatePhone(user.Phone); err != nil {
		return err
	}
	if err := ValidateDocument(user.Document); err != nil {
		return err
	}
	if err := ValidateAge(user.BirthDate, today); err != nil {
		return err
	}
	return ValidateNames(user.FirstName, user.LastName)
}
