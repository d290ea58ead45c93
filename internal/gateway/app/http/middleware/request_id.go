package middleware

import (
	"github.com/gofiber/fiber/v3"

	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

// NewRequestIDMiddleware принимает X-Request-Id клиента или генерирует новый,
// кладет его в контекст запроса и возвращает в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(identity.HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.SetContext(logger.NewRequestIDContext(ctx.Context(), requestID))
		ctx.Request().Header.Set(identity.HeaderRequestID, requestID)

		err := ctx.Next()
		// Прокси заменяет заголовки ответа, поэтому id выставляется после обработчика.
		ctx.Set(identity.HeaderRequestID, requestID)
		return err
	}
}
