// Package health отдает состояние шлюза и сервиса пользователей.
package health

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"plazausers/internal/gateway/app/dto"
	"plazausers/pkg/logger"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Checker проверяет зависимость шлюза.
type Checker interface {
	Health(ctx context.Context) error
}

// NewHandler возвращает обработчик GET /health. Шлюз считается живым всегда,
// при недоступном сервисе пользователей отвечает 503.
func NewHandler(users Checker) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		resp := dto.HealthResponse{Status: StatusUp, UsersService: StatusUp}
		code := http.StatusOK

		if err := users.Health(requestCtx); err != nil {
			logger.Log(requestCtx).Warn(requestCtx, "users service is unhealthy", zap.Error(err))
			resp.UsersService = StatusDown
			code = http.StatusServiceUnavailable
		}

		return ctx.Status(code).JSON(resp)
	}
}
