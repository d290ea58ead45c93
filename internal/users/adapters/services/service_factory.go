// Package services содержит реализации портов хеширования паролей, токенов и часов.
package services

import (
	"fmt"
	"time"

	"plazausers/internal/users/ports/services"
	"plazausers/pkg/token"
)

const errCtxCreatingTokenService = "creating token service"

// ServiceFactory собирает сервисы, которые нужны сценариям.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    *token.Service
	clock           services.Clock
}

func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int, loc *time.Location) (*ServiceFactory, error) {
	tokenSvc, err := token.NewService(jwtSecretKey, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingTokenService, err)
	}

	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    tokenSvc,
		clock:           NewSystemClock(loc),
	}, nil
}

func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис токенов. Он же проверяет входящие токены в gRPC.
func (f *ServiceFactory) TokenService() *token.Service {
	return f.tokenService
}

func (f *ServiceFactory) Clock() services.Clock {
	return f.clock
}
