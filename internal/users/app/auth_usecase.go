package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/api"
	"plazausers/internal/users/ports/repositories"
	svc "plazausers/internal/users/ports/services"
	"plazausers/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"
	methodLogin        = "Login"

	msgLoginAttempt        = "login attempt"
	msgMissingCredentials  = "email or password missing"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgLoginInactive       = "login attempt for inactive user"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserAuthenticated   = "user authenticated"
	msgTokenIssued         = "session token issued"

	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrIssuingToken      = "failed to issue session token"

	errCtxValidatingCredentials = "validating credentials"
	errCtxFindingUser           = "finding user"
	errCtxVerifyingPassword     = "verifying password"
	errCtxIssuingToken          = "issuing token"
)

// AuthUseCaseImpl реализует api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Authenticate проверяет email и пароль. Отсутствующий пользователь и неверный
// пароль дают одну и ту же ошибку, чтобы не раскрывать существование email.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	if email == "" || password == "" {
		log.Debug(ctx, msgMissingCredentials)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCredentials, entities.ErrCredentialsRequired)
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !user.Active {
		log.Debug(ctx, msgLoginInactive, zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCredentials, entities.ErrUserNotActive)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.Password)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, entities.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserAuthenticated, zap.Int64("userID", user.ID))
	return user, nil
}

// Login аутентифицирует пользователя и выпускает токен сессии.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))

	user, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tok, _, err := a.tokenSvc.Issue(ctx, user.Identity())
	if err != nil {
		log.Error(ctx, msgErrIssuingToken, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Int64("userID", user.ID))
	return &api.LoginResult{
		User:        user,
		Token:       tok,
		ExpiresInMs: a.tokenSvc.ExpirationMs(),
	}, nil
}
