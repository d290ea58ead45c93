package entities

import (
	"errors"
)

// Виды доменных ошибок. Граница сервиса сопоставляет их с кодами ответа.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

// DomainError несет сообщение для клиента и вид ошибки.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func newDomainError(kind error, msg string) *DomainError {
	return &DomainError{Kind: kind, Message: msg}
}

var (
	ErrInvalidEmail            = newDomainError(ErrInvalidInput, "Invalid email")
	ErrInvalidPhone            = newDomainError(ErrInvalidInput, "Invalid phone number")
	ErrInvalidDocument         = newDomainError(ErrInvalidInput, "Invalid document")
	ErrUnderage                = newDomainError(ErrInvalidInput, "User must be of legal age")
	ErrFirstNameRequired       = newDomainError(ErrInvalidInput, "First name is required")
	ErrLastNameRequired        = newDomainError(ErrInvalidInput, "Last name is required")
	ErrNameTooLong             = newDomainError(ErrInvalidInput, "Name is too long")
	ErrValueTooLong            = newDomainError(ErrInvalidInput, "Value is too long")
	ErrRestaurantRequired      = newDomainError(ErrInvalidInput, "Restaurant is required for employee")
	ErrCredentialsRequired     = newDomainError(ErrInvalidInput, "Email and password are required")
	ErrPasswordRequired        = newDomainError(ErrInvalidInput, "Password is required")
	ErrPasswordTooLong         = newDomainError(ErrInvalidInput, "Password is too long")
	ErrEmailAlreadyRegistered  = newDomainError(ErrConflict, "Email already registered")
	ErrDocumentAlreadyExists   = newDomainError(ErrConflict, "Document already registered")
	ErrEmailOwnedByNonAdmin    = newDomainError(ErrConflict, "Email already registered to a non-admin user")
	ErrInvalidCredentials      = newDomainError(ErrUnauthorized, "Invalid credentials")
	ErrUserNotActive           = newDomainError(ErrUnauthorized, "User is not active")
	ErrAuthenticationRequired  = newDomainError(ErrUnauthorized, "Authentication required")
	ErrUserNotFound            = newDomainError(ErrNotFound, "User not found")
	ErrInsufficientPermissions = newDomainError(ErrForbidden, "Insufficient permissions")
)

// AsDomainError извлекает DomainError из цепочки ошибок.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
