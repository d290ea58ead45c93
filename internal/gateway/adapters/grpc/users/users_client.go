// Package users предоставляет реализацию клиента для сервиса пользователей.
package users

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"plazausers/internal/gateway/config"
	grpcPort "plazausers/internal/gateway/ports/grpc"
	usersv1 "plazausers/pkg/api/users/v1"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

// Ключи исходящих метаданных.
const (
	MetadataAuthorization = "authorization"
	MetadataRequestID     = "x-request-id"
)

// Константы для логирования.
const (
	LogMethodCreateOwner    = "CreateOwner"
	LogMethodCreateEmployee = "CreateEmployee"
	LogMethodCreateCustomer = "CreateCustomer"
	LogMethodLogin          = "Login"
	LogMethodGetUser        = "GetUser"
	LogMethodIsEmployee     = "IsEmployeeOfRestaurant"
	LogMethodHealth         = "Health"

	ErrorFailedToConnect        = "failed to connect to users service"
	ErrorFailedToCreateOwner    = "failed to create owner"
	ErrorFailedToCreateEmployee = "failed to create employee"
	ErrorFailedToCreateCustomer = "failed to create customer"
	ErrorFailedToLogin          = "failed to login"
	ErrorFailedToGetUser        = "failed to get user"
	ErrorFailedToCheckEmployee  = "failed to check employee"
	ErrorFailedToCheckHealth    = "failed to check users service health"
	ErrorFailedToCloseConn      = "failed to close grpc connection"
)

var (
	// ErrUsersServiceConnectionTimeout представляет ошибку таймаута соединения с сервисом пользователей.
	ErrUsersServiceConnectionTimeout = errors.New("connection timeout: failed to connect to users service")

	// ErrUsersServiceNotServing возвращается, когда health check не в статусе SERVING.
	ErrUsersServiceNotServing = errors.New("users service is not serving")
)

// Client реализует интерфейс UsersServiceClient.
type Client struct {
	users  usersv1.UsersServiceClient
	health healthpb.HealthClient
	conn   *grpc.ClientConn
}

var _ grpcPort.UsersServiceClient = (*Client)(nil)

// NewUsersClient подключается к сервису пользователей и ждет готовности соединения
// не дольше ConnectTimeout.
func NewUsersClient(ctx context.Context, cfg *config.GRPCClientConfig) (*Client, error) {
	conn, err := grpc.NewClient(
		cfg.UsersService.GetAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, cfg.UsersService.ConnectTimeout)
	defer cancel()

	conn.Connect()

	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			break
		}
		if !conn.WaitForStateChange(waitCtx, state) {
			if closeErr := conn.Close(); closeErr != nil {
				return nil, fmt.Errorf("%s: %w", ErrorFailedToCloseConn, closeErr)
			}
			return nil, ErrUsersServiceConnectionTimeout
		}
	}

	return NewFromConn(conn), nil
}

// NewFromConn создает клиента поверх готового соединения.
func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		users:  usersv1.NewUsersServiceClient(conn),
		health: healthpb.NewHealthClient(conn),
		conn:   conn,
	}
}

// outgoing переносит токен и request id в метаданные gRPC.
func outgoing(ctx context.Context) context.Context {
	pairs := make([]string, 0, 4)
	if tok, ok := identity.TokenFromContext(ctx); ok {
		pairs = append(pairs, MetadataAuthorization, "Bearer "+tok)
	}
	if requestID, ok := logger.GetRequestID(ctx); ok {
		pairs = append(pairs, MetadataRequestID, requestID)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// logFailure пишет транспортные сбои как ошибки, а доменные отказы только в debug.
func logFailure(ctx context.Context, log *logger.Logger, msg string, err error) {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Internal, codes.Unknown, codes.ResourceExhausted:
		log.Error(ctx, msg, zap.Error(err))
	default:
		log.Debug(ctx, msg, zap.Error(err))
	}
}

func (c *Client) create(
	ctx context.Context,
	method, failure string,
	call func(context.Context, *usersv1.CreateUserRequest, ...grpc.CallOption) (*usersv1.UserResponse, error),
	req *usersv1.CreateUserRequest,
) (*usersv1.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", method))

	resp, err := call(outgoing(ctx), req)
	if err != nil {
		logFailure(ctx, log, failure, err)
		return nil, fmt.Errorf("%s: %w", failure, err)
	}
	return resp, nil
}

// CreateOwner создает владельца ресторана. Требует токен администратора.
func (c *Client) CreateOwner(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return c.create(ctx, LogMethodCreateOwner, ErrorFailedToCreateOwner, c.users.CreateOwner, req)
}

// CreateEmployee создает сотрудника ресторана. Требует токен владельца.
func (c *Client) CreateEmployee(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return c.create(ctx, LogMethodCreateEmployee, ErrorFailedToCreateEmployee, c.users.CreateEmployee, req)
}

// CreateCustomer регистрирует клиента.
func (c *Client) CreateCustomer(ctx context.Context, req *usersv1.CreateUserRequest) (*usersv1.UserResponse, error) {
	return c.create(ctx, LogMethodCreateCustomer, ErrorFailedToCreateCustomer, c.users.CreateCustomer, req)
}

// Login выполняет вход пользователя в систему.
func (c *Client) Login(ctx context.Context, email, password string) (*usersv1.LoginResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodLogin))

	req := &usersv1.LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.users.Login(outgoing(ctx), req)
	if err != nil {
		logFailure(ctx, log, ErrorFailedToLogin, err)
		return nil, fmt.Errorf("%s: %w", ErrorFailedToLogin, err)
	}

	return resp, nil
}

// GetUser получает пользователя по идентификатору.
func (c *Client) GetUser(ctx context.Context, id int64) (*usersv1.UserResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGetUser), zap.Int64("userID", id))

	resp, err := c.users.GetUser(outgoing(ctx), &usersv1.GetUserRequest{Id: id})
	if err != nil {
		logFailure(ctx, log, ErrorFailedToGetUser, err)
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGetUser, err)
	}

	return resp, nil
}

func (c *Client) IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error) {
	log := logger.Log(ctx).With(
		zap.String("method", LogMethodIsEmployee),
		zap.Int64("userID", userID),
		zap.Int64("restaurantID", restaurantID))

	resp, err := c.users.IsEmployeeOfRestaurant(outgoing(ctx), &usersv1.IsEmployeeRequest{
		UserId:       userID,
		RestaurantId: restaurantID,
	})
	if err != nil {
		logFailure(ctx, log, ErrorFailedToCheckEmployee, err)
		return false, fmt.Errorf("%s: %w", ErrorFailedToCheckEmployee, err)
	}

	return resp.IsEmployee, nil
}

// Health проверяет статус сервиса пользователей через grpc.health.v1.
func (c *Client) Health(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodHealth))

	resp, err := c.health.Check(outgoing(ctx), &healthpb.HealthCheckRequest{Service: usersv1.ServiceName})
	if err != nil {
		log.Warn(ctx, ErrorFailedToCheckHealth, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToCheckHealth, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		log.Warn(ctx, ErrorFailedToCheckHealth, zap.Stringer("status", resp.GetStatus()))
		return ErrUsersServiceNotServing
	}

	return nil
}

// Close закрывает соединение с gRPC сервером.
func (c *Client) Close() error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("%s: %w", ErrorFailedToCloseConn, err)
		}
	}
	return nil
}
