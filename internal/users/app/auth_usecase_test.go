package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plazausers/internal/users/app"
	"plazausers/internal/users/domain/entities"
	"plazausers/pkg/identity"
)

var errPasswordVerification = errors.New("password verification error")

func TestAuthenticate(t *testing.T) {
	const (
		email = "a@b.com"
		pass  = "s3cret"
		hash  = "hashed"
	)
	active := &entities.User{ID: 5, Email: email, Password: hash, Role: identity.RoleOwner, Active: true}
	inactive := &entities.User{ID: 6, Email: email, Password: hash, Role: identity.RoleOwner}

	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(repo *mockUserRepository, pw *mockPasswordService)
		expectedErr error
		wantMsg     string
	}{
		{
			name:     "success",
			email:    email,
			password: pass,
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, email).Return(active, nil).Once()
				pw.On("Verify", mock.Anything, pass, hash).Return(true, nil).Once()
			},
		},
		{
			name:        "error - empty email",
			password:    pass,
			setupMocks:  func(*mockUserRepository, *mockPasswordService) {},
			expectedErr: entities.ErrInvalidInput,
			wantMsg:     "Email and password are required",
		},
		{
			name:        "error - empty password",
			email:       email,
			setupMocks:  func(*mockUserRepository, *mockPasswordService) {},
			expectedErr: entities.ErrInvalidInput,
			wantMsg:     "Email and password are required",
		},
		{
			name:     "error - unknown email",
			email:    "ghost@b.com",
			password: pass,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, "ghost@b.com").Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrUnauthorized,
			wantMsg:     "Invalid credentials",
		},
		{
			name:     "error - wrong password has the same message",
			email:    email,
			password: "wrong",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, email).Return(active, nil).Once()
				pw.On("Verify", mock.Anything, "wrong", hash).Return(false, nil).Once()
			},
			expectedErr: entities.ErrUnauthorized,
			wantMsg:     "Invalid credentials",
		},
		{
			name:     "error - inactive user",
			email:    email,
			password: pass,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, email).Return(inactive, nil).Once()
			},
			expectedErr: entities.ErrUnauthorized,
			wantMsg:     "User is not active",
		},
		{
			name:     "error - repository failure",
			email:    email,
			password: pass,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, email).Return(nil, errDatabaseConnection).Once()
			},
			expectedErr: errDatabaseConnection,
		},
		{
			name:     "error - verification failure",
			email:    email,
			password: pass,
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByEmail", mock.Anything, email).Return(active, nil).Once()
				pw.On("Verify", mock.Anything, pass, hash).Return(false, errPasswordVerification).Once()
			},
			expectedErr: errPasswordVerification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			pw := new(mockPasswordService)
			tt.setupMocks(repo, pw)

			uc := app.NewAuthUseCase(repo, pw, new(mockTokenService))
			user, err := uc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				if tt.wantMsg != "" {
					de, ok := entities.AsDomainError(err)
					require.True(t, ok)
					assert.Equal(t, tt.wantMsg, de.Message)
				}
			} else {
				require.NoError(t, err)
				assert.Same(t, active, user)
			}

			repo.AssertExpectations(t)
			pw.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	user := &entities.User{ID: 5, Email: "a@b.com", Password: "hashed", Role: identity.RoleEmployee, Active: true}

	t.Run("success - token issued for user identity", func(t *testing.T) {
		repo := new(mockUserRepository)
		pw := new(mockPasswordService)
		tok := new(mockTokenService)
		repo.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil).Once()
		pw.On("Verify", mock.Anything, "s3cret", "hashed").Return(true, nil).Once()
		tok.On("Issue", mock.Anything, identity.Identity{UserID: 5, Email: "a@b.com", Role: identity.RoleEmployee}).
			Return("jwt-token", time.Now().Add(time.Hour), nil).Once()
		tok.On("ExpirationMs").Return(int64(86400000)).Once()

		res, err := app.NewAuthUseCase(repo, pw, tok).Login(context.Background(), "a@b.com", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", res.Token)
		assert.Equal(t, int64(86400000), res.ExpiresInMs)
		assert.Same(t, user, res.User)
		tok.AssertExpectations(t)
	})

	t.Run("error - token not issued on bad credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		tok := new(mockTokenService)
		repo.On("FindByEmail", mock.Anything, "x@b.com").Return(nil, entities.ErrUserNotFound).Once()

		res, err := app.NewAuthUseCase(repo, new(mockPasswordService), tok).Login(context.Background(), "x@b.com", "p")

		require.ErrorIs(t, err, entities.ErrInvalidCredentials)
		assert.Nil(t, res)
		tok.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("error - signing failure", func(t *testing.T) {
		repo := new(mockUserRepository)
		pw := new(mockPasswordService)
		tok := new(mockTokenService)
		repo.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil).Once()
		pw.On("Verify", mock.Anything, "s3cret", "hashed").Return(true, nil).Once()
		tok.On("Issue", mock.Anything, mock.Anything).Return("", time.Time{}, errors.New("sign")).Once()

		_, err := app.NewAuthUseCase(repo, pw, tok).Login(context.Background(), "a@b.com", "s3cret")
		require.Error(t, err)
		_, isDomain := entities.AsDomainError(err)
		assert.False(t, isDomain)
	})
}
