// Package identity описывает роли пользователей и аутентифицированную личность,
// которая передается между компонентами через context.Context.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Role - закрытый набор ролей.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
)

// Заголовки, которыми шлюз передает личность нижестоящим сервисам.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
	HeaderRequestID = "X-Request-Id"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole принимает только известные роли, регистр важен.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleOwner, RoleEmployee, RoleCustomer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string {
	return string(r)
}

// Identity - аутентифицированный субъект запроса.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

// UserIDString возвращает идентификатор в виде строки для заголовков.
func (i Identity) UserIDString() string {
	return strconv.FormatInt(i.UserID, 10)
}

// HasRole проверяет, что роль субъекта входит в roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

type identityKeyType struct{}

var identityKey = identityKeyType{}

func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext возвращает личность, если запрос был аутентифицирован.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// BearerToken извлекает токен из значения заголовка Authorization.
func BearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

type tokenKeyType struct{}

var tokenKey = tokenKeyType{}

// NewTokenContext сохраняет исходный bearer токен для передачи нижестоящим сервисам.
func NewTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey).(string)
	return tok, ok && tok != ""
}
