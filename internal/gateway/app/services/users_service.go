// Package services содержит реализации сервисов для Gateway.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"plazausers/internal/gateway/app/dto"
	"plazausers/internal/gateway/ports/cache"
	"plazausers/internal/gateway/ports/grpc"
	"plazausers/internal/gateway/ports/services"
	"plazausers/internal/gateway/resilience"
	"plazausers/pkg/logger"
)

// Константы для логирования.
const (
	LogServiceCreateOwner    = "users service: create owner"
	LogServiceCreateEmployee = "users service: create employee"
	LogServiceCreateCustomer = "users service: create customer"
	LogServiceLogin          = "users service: login"
	LogServiceGetUser        = "users service: get user"
	LogServiceIsEmployee     = "users service: is employee of restaurant"
	LogCacheHit              = "cache hit"
	LogCacheFailure          = "cache operation failed, ignoring"

	ErrorCreateOwnerFailed    = "failed to create owner"
	ErrorCreateEmployeeFailed = "failed to create employee"
	ErrorCreateCustomerFailed = "failed to create customer"
	ErrorLoginFailed          = "failed to login"
	ErrorGetUserFailed        = "failed to get user"
	ErrorIsEmployeeFailed     = "failed to check employee"
	ErrorHealthFailed         = "users service health check failed"
)

// Константы для кэширования.
const (
	UserCacheKeyPrefix     = "user:"
	EmployeeCacheKeyPrefix = "employee:"
)

// UserCacheKey возвращает ключ кэша для пользователя.
func UserCacheKey(id int64) string {
	return UserCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// EmployeeCacheKey возвращает ключ кэша для проверки сотрудника.
func EmployeeCacheKey(userID, restaurantID int64) string {
	return fmt.Sprintf("%s%d:%d", EmployeeCacheKeyPrefix, userID, restaurantID)
}

// UsersServiceImpl реализует интерфейс UsersService.
type UsersServiceImpl struct {
	client         grpc.UsersServiceClient
	cache          cache.Cache
	cacheTTL       time.Duration
	requestTimeout time.Duration
	resilience     *resilience.ServiceResilience
}

// Options задает необязательные параметры сервиса.
type Options struct {
	// Cache может быть nil, тогда ответы не кэшируются.
	Cache    cache.Cache
	CacheTTL time.Duration
	// RequestTimeout ограничивает каждую попытку вызова. Ноль отключает ограничение.
	RequestTimeout time.Duration
}

// NewUsersService создает новый экземпляр сервиса пользователей шлюза.
func NewUsersService(client grpc.UsersServiceClient, res *resilience.ServiceResilience, opts Options) services.UsersService {
	return &UsersServiceImpl{
		client:         client,
		cache:          opts.Cache,
		cacheTTL:       opts.CacheTTL,
		requestTimeout: opts.RequestTimeout,
		resilience:     res,
	}
}

// call выполняет вызов сервиса пользователей под защитой resilience с таймаутом на попытку.
func call[T any](ctx context.Context, s *UsersServiceImpl, name string, fn func(context.Context) (T, error)) (T, error) {
	return resilience.Execute(ctx, s.resilience, name, func() (T, error) {
		if s.requestTimeout <= 0 {
			return fn(ctx)
		}
		callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
		return fn(callCtx)
	})
}

func (s *UsersServiceImpl) CreateOwner(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	logger.Log(ctx).Info(ctx, LogServiceCreateOwner)

	resp, err := call(ctx, s, "CreateOwner", func(ctx context.Context) (*dto.UserResponse, error) {
		user, err := s.client.CreateOwner(ctx, req.ToProto())
		if err != nil {
			return nil, err
		}
		return dto.UserFromProto(user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorCreateOwnerFailed, err)
	}
	return resp, nil
}

// CreateEmployee создает сотрудника и сбрасывает закэшированный отрицательный ответ
// проверки сотрудника для нового идентификатора.
func (s *UsersServiceImpl) CreateEmployee(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	logger.Log(ctx).Info(ctx, LogServiceCreateEmployee)

	resp, err := call(ctx, s, "CreateEmployee", func(ctx context.Context) (*dto.UserResponse, error) {
		user, err := s.client.CreateEmployee(ctx, req.ToProto())
		if err != nil {
			return nil, err
		}
		return dto.UserFromProto(user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorCreateEmployeeFailed, err)
	}

	if resp.RestaurantID != nil {
		s.cacheDelete(ctx, UserCacheKey(resp.ID), EmployeeCacheKey(resp.ID, *resp.RestaurantID))
	}
	return resp, nil
}

func (s *UsersServiceImpl) CreateCustomer(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	logger.Log(ctx).Info(ctx, LogServiceCreateCustomer)

	resp, err := call(ctx, s, "CreateCustomer", func(ctx context.Context) (*dto.UserResponse, error) {
		user, err := s.client.CreateCustomer(ctx, req.ToProto())
		if err != nil {
			return nil, err
		}
		return dto.UserFromProto(user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorCreateCustomerFailed, err)
	}
	return resp, nil
}

// Login выполняет вход пользователя. Ответы не кэшируются.
func (s *UsersServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	logger.Log(ctx).Info(ctx, LogServiceLogin)

	resp, err := call(ctx, s, "Login", func(ctx context.Context) (*dto.LoginResponse, error) {
		login, err := s.client.Login(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return dto.LoginFromProto(login), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorLoginFailed, err)
	}
	return resp, nil
}

// GetUser возвращает пользователя, сначала проверяя кэш.
func (s *UsersServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	log := logger.Log(ctx).With(zap.Int64("userID", id))
	log.Info(ctx, LogServiceGetUser)

	key := UserCacheKey(id)
	if raw, ok := s.cacheGet(ctx, key); ok {
		var cached dto.UserResponse
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			log.Debug(ctx, LogCacheHit, zap.String("key", key))
			return &cached, nil
		}
	}

	resp, err := call(ctx, s, "GetUser", func(ctx context.Context) (*dto.UserResponse, error) {
		user, err := s.client.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return dto.UserFromProto(user), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorGetUserFailed, err)
	}

	if raw, err := json.Marshal(resp); err == nil {
		s.cacheSet(ctx, key, string(raw))
	}
	return resp, nil
}

// IsEmployeeOfRestaurant проверяет принадлежность сотрудника ресторану, сначала проверяя кэш.
func (s *UsersServiceImpl) IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error) {
	log := logger.Log(ctx).With(zap.Int64("userID", userID), zap.Int64("restaurantID", restaurantID))
	log.Info(ctx, LogServiceIsEmployee)

	key := EmployeeCacheKey(userID, restaurantID)
	if raw, ok := s.cacheGet(ctx, key); ok {
		if cached, err := strconv.ParseBool(raw); err == nil {
			log.Debug(ctx, LogCacheHit, zap.String("key", key))
			return cached, nil
		}
	}

	isEmployee, err := call(ctx, s, "IsEmployeeOfRestaurant", func(ctx context.Context) (bool, error) {
		return s.client.IsEmployeeOfRestaurant(ctx, userID, restaurantID)
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrorIsEmployeeFailed, err)
	}

	s.cacheSet(ctx, key, strconv.FormatBool(isEmployee))
	return isEmployee, nil
}

// Health проверяет сервис пользователей без retry, чтобы health check отвечал быстро.
func (s *UsersServiceImpl) Health(ctx context.Context) error {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	if err := s.client.Health(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrorHealthFailed, err)
	}
	return nil
}

func (s *UsersServiceImpl) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	value, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheFailure, zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, found
}

func (s *UsersServiceImpl) cacheSet(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheFailure, zap.String("key", key), zap.Error(err))
	}
}

func (s *UsersServiceImpl) cacheDelete(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheFailure, zap.Strings("keys", keys), zap.Error(err))
	}
}
