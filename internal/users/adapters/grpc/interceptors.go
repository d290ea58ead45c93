package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"plazausers/internal/users/domain/entities"
	usersv1 "plazausers/pkg/api/users/v1"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

// Ключи метаданных gRPC.
const (
	MetadataAuthorization = "authorization"
	MetadataRequestID     = "x-request-id"
)

const (
	LogPanicRecovered   = "panic recovered in gRPC handler"
	LogRequestHandled   = "gRPC request handled"
	LogTokenRejected    = "bearer token rejected"
	LogAccessDenied     = "access denied"
	LogSetHeaderFailed  = "failed to set response header"
	LogMalformedAuthHdr = "malformed authorization metadata"
)

// Authenticator проверяет bearer токен и возвращает личность субъекта.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (identity.Identity, error)
}

// Access - правило доступа к методу. Пустой Roles означает любой валидный токен.
type Access struct {
	Public bool
	Roles  []identity.Role
}

// Policy сопоставляет полное имя метода с правилом доступа.
// Методы вне политики (health, reflection) открыты.
type Policy map[string]Access

func DefaultPolicy() Policy {
	return Policy{
		usersv1.UsersService_CreateOwner_FullMethodName:            {Roles: []identity.Role{identity.RoleAdmin}},
		usersv1.UsersService_CreateEmployee_FullMethodName:         {Roles: []identity.Role{identity.RoleOwner}},
		usersv1.UsersService_CreateCustomer_FullMethodName:         {Public: true},
		usersv1.UsersService_Login_FullMethodName:                  {Public: true},
		usersv1.UsersService_GetUser_FullMethodName:                {Public: true},
		usersv1.UsersService_IsEmployeeOfRestaurant_FullMethodName: {},
	}
}

// RequestIDInterceptor берет идентификатор запроса из x-request-id или создает новый
// и возвращает его клиенту в заголовке ответа.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.NewRequestIDContext(ctx, firstMetadata(ctx, MetadataRequestID))
		if id, ok := logger.GetRequestID(ctx); ok {
			if err := grpc.SetHeader(ctx, metadata.Pairs(MetadataRequestID, id)); err != nil {
				logger.Log(ctx).Debug(ctx, LogSetHeaderFailed, zap.Error(err))
			}
		}
		return handler(ctx, req)
	}
}

// RecoveryInterceptor превращает панику обработчика в Internal.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log(ctx).Error(ctx, LogPanicRecovered,
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.Stack("stack"))
				resp, err = nil, status.Error(codes.Internal, ErrInternalMsg)
			}
		}()
		return handler(ctx, req)
	}
}

func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger.Log(ctx).Info(ctx, LogRequestHandled,
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)))
		return resp, err
	}
}

// AuthInterceptor проверяет bearer токен из метаданных authorization и кладет
// личность в контекст. Заголовки X-User-* не читаются.
func AuthInterceptor(auth Authenticator, policy Policy) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		log := logger.Log(ctx).With(zap.String("method", info.FullMethod))

		id, authenticated := authenticate(ctx, auth)
		if authenticated {
			ctx = identity.NewContext(ctx, id)
		}

		rule, known := policy[info.FullMethod]
		if !known || rule.Public {
			return handler(ctx, req)
		}

		if !authenticated {
			log.Debug(ctx, LogAccessDenied, zap.String("reason", "unauthenticated"))
			return nil, ToStatus(ctx, entities.ErrAuthenticationRequired)
		}
		if len(rule.Roles) > 0 && !id.HasRole(rule.Roles...) {
			log.Debug(ctx, LogAccessDenied,
				zap.String("reason", "role"),
				zap.String("role", id.Role.String()))
			return nil, ToStatus(ctx, entities.ErrInsufficientPermissions)
		}
		return handler(ctx, req)
	}
}

func authenticate(ctx context.Context, auth Authenticator) (identity.Identity, bool) {
	header := firstMetadata(ctx, MetadataAuthorization)
	if header == "" || auth == nil {
		return identity.Identity{}, false
	}

	tok, ok := identity.BearerToken(header)
	if !ok {
		logger.Log(ctx).Debug(ctx, LogMalformedAuthHdr)
		return identity.Identity{}, false
	}

	id, err := auth.Authenticate(ctx, tok)
	if err != nil {
		logger.Log(ctx).Debug(ctx, LogTokenRejected, zap.Error(err))
		return identity.Identity{}, false
	}
	return id, true
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
