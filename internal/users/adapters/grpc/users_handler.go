package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/api"
	usersv1 "plazausers/pkg/api/users/v1"
	"plazausers/pkg/logger"
)

const (
	LogCreateUserRequest = "processing create user request"
	LogLoginRequest      = "processing login request"
	LogGetUserRequest    = "processing get user request"
	LogIsEmployeeRequest = "processing is-employee request"
	LogRequestFailed     = "request failed"
	LogInvalidBirthDate  = "birth date could not be parsed"
)

// UsersHandler реализует gRPC интерфейс UsersService поверх сценариев.
type UsersHandler struct {
	registration api.RegistrationUseCase
	auth         api.AuthUseCase
	users        api.UserUseCase
	usersv1.UnimplementedUsersServiceServer
}

// NewUsersHandler создает новый обработчик UsersService.
func NewUsersHandler(registration api.RegistrationUseCase, auth api.AuthUseCase, users api.UserUseCase) *UsersHandler {
	return &UsersHandler{
		registration: registration,
		auth:         auth,
		users:        users,
	}
}

// ServiceRegistrar это интерфейс, представляющий собой возможность регистрации сервиса.
type ServiceRegistrar interface {
	RegisterService(desc *grpc.ServiceDesc, impl any)
}

// RegisterService регистрирует UsersService в gRPC сервере.
func (h *UsersHandler) RegisterService(server ServiceRegistrar) {
	usersv1.RegisterUsersServiceServer(server, h)
}

func (h *UsersHandler) CreateOwner(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return h.create(ctx, "CreateOwner", req, h.registration.CreateOwner)
}

func (h *UsersHandler) CreateEmployee(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return h.create(ctx, "CreateEmployee", req, h.registration.CreateEmployee)
}

func (h *UsersHandler) CreateCustomer(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return h.create(ctx, "CreateCustomer", req, h.registration.CreateCustomer)
}

func (h *UsersHandler) create(
	ctx context.Context,
	method string,
	req *usersv1.CreateUserRequest,
	register func(context.Context, *entities.User) (*entities.User, error),
) (*usersv1.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("email", req.GetEmail()))
	log.Info(ctx, LogCreateUserRequest)

	user, err := register(ctx, toUser(ctx, req))
	if err != nil {
		log.Debug(ctx, LogRequestFailed, zap.Error(err))
		return nil, ToStatus(ctx, err)
	}
	return toUserResponse(user), nil
}

// Login проверяет учетные данные и выпускает токен.
func (h *UsersHandler) Login(ctx context.Context, req *usersv1.LoginRequest) (*usersv1.LoginResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", "Login"), zap.String("email", req.GetEmail()))
	log.Info(ctx, LogLoginRequest)

	result, err := h.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		log.Debug(ctx, LogRequestFailed, zap.Error(err))
		return nil, ToStatus(ctx, err)
	}

	return &usersv1.LoginResponse{
		Token:     result.Token,
		UserId:    result.User.ID,
		Role:      result.User.Role.String(),
		ExpiresIn: result.ExpiresInMs,
	}, nil
}

func (h *UsersHandler) GetUser(ctx context.Context, req *usersv1.GetUserRequest) (*usersv1.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", "GetUser"), zap.Int64("userID", req.GetId()))
	log.Debug(ctx, LogGetUserRequest)

	user, err := h.users.GetUserByID(ctx, req.GetId())
	if err != nil {
		log.Debug(ctx, LogRequestFailed, zap.Error(err))
		return nil, ToStatus(ctx, err)
	}
	return toUserResponse(user), nil
}

func (h *UsersHandler) IsEmployeeOfRestaurant(ctx context.Context, req *usersv1.IsEmployeeRequest) (*usersv1.IsEmployeeResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", "IsEmployeeOfRestaurant"),
		zap.Int64("userID", req.GetUserId()),
		zap.Int64("restaurantID", req.GetRestaurantId()))
	log.Debug(ctx, LogIsEmployeeRequest)

	ok, err := h.users.IsEmployeeOfRestaurant(ctx, req.GetUserId(), req.GetRestaurantId())
	if err != nil {
		log.Debug(ctx, LogRequestFailed, zap.Error(err))
		return nil, ToStatus(ctx, err)
	}
	return &usersv1.IsEmployeeResponse{IsEmployee: ok}, nil
}

// toUser переносит поля запроса в сущность. Нераспознанная дата рождения
// остается нулевой и отклоняется проверкой возраста в общем порядке проверок.
func toUser(ctx context.Context, req *usersv1.CreateUserRequest) *entities.User {
	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse(usersv1.DateLayout, req.BirthDate)
		if err != nil {
			logger.Log(ctx).Debug(ctx, LogInvalidBirthDate, zap.String("birthDate", req.BirthDate))
		} else {
			birthDate = parsed
		}
	}

	return &entities.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Document:     req.Document,
		Phone:        req.Phone,
		BirthDate:    birthDate,
		Email:        req.Email,
		Password:     req.Password,
		RestaurantID: req.RestaurantId,
	}
}

func toUserResponse(user *entities.User) *usersv1.UserResponse {
	return &usersv1.UserResponse{
		Id:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         user.Role.String(),
		Active:       user.Active,
		RestaurantId: user.RestaurantID,
	}
}
