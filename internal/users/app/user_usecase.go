package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/api"
	"plazausers/internal/users/ports/repositories"
	"plazausers/pkg/logger"
)

const (
	methodGetUserByID            = "GetUserByID"
	methodIsEmployeeOfRestaurant = "IsEmployeeOfRestaurant"

	msgRequestingUser     = "requesting user"
	msgUserRetrieved      = "user retrieved"
	msgCheckingEmployment = "checking employment"

	msgErrFindingUserByID = "failed to find user by ID"

	errCtxFetchingUser = "fetching user"
)

// UserUseCaseImpl реализует api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// GetUserByID возвращает пользователя или entities.ErrUserNotFound.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.Int64("userID", id))
	log.Debug(ctx, msgRequestingUser)

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Debug(ctx, msgUserRetrieved)
	return user, nil
}

// IsEmployeeOfRestaurant истинно только для существующего сотрудника указанного ресторана.
func (u *UserUseCaseImpl) IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIsEmployeeOfRestaurant),
		zap.Int64("userID", userID),
		zap.Int64("restaurantID", restaurantID),
	)
	log.Debug(ctx, msgCheckingEmployment)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return false, nil
		}
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	return user.WorksAt(restaurantID), nil
}
