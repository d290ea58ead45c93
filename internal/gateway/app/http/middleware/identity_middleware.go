package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"plazausers/internal/gateway/app/dto"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

// LocalsIdentity - ключ fiber Locals с проверенной личностью.
const LocalsIdentity = "identity"

const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInvalidToken           = "Invalid or expired token"

	LogIdentityRejected = "request rejected by identity filter"
	LogIdentityAccepted = "identity attached to request"
)

// Authenticator проверяет bearer токен.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (identity.Identity, error)
}

// NewIdentityMiddleware удаляет присланные клиентом заголовки X-User-*, проверяет
// bearer токен и только после успешной проверки выставляет X-User-Id, X-User-Email
// и X-User-Role. Открытые маршруты пропускаются без токена.
func NewIdentityMiddleware(auth Authenticator, public *PublicRoutes) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "identity"))

		header := &ctx.Request().Header
		header.Del(identity.HeaderUserID)
		header.Del(identity.HeaderUserEmail)
		header.Del(identity.HeaderUserRole)

		isPublic := public.Match(ctx.Method(), ctx.Path())

		tok, ok := identity.BearerToken(ctx.Get(fiber.HeaderAuthorization))
		if !ok {
			if isPublic {
				return ctx.Next()
			}
			log.Debug(requestCtx, LogIdentityRejected, zap.String("reason", MsgAuthenticationRequired))
			return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: MsgAuthenticationRequired})
		}

		id, err := auth.Authenticate(requestCtx, tok)
		if err != nil {
			if isPublic {
				return ctx.Next()
			}
			log.Debug(requestCtx, LogIdentityRejected, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: MsgInvalidToken})
		}

		header.Set(identity.HeaderUserID, id.UserIDString())
		header.Set(identity.HeaderUserEmail, id.Email)
		header.Set(identity.HeaderUserRole, id.Role.String())

		ctx.Locals(LocalsIdentity, id)
		ctx.SetContext(identity.NewTokenContext(identity.NewContext(requestCtx, id), tok))

		log.Debug(requestCtx, LogIdentityAccepted,
			zap.Int64("userID", id.UserID),
			zap.String("role", id.Role.String()))

		return ctx.Next()
	}
}
