// Package proxy перенаправляет запросы нижестоящим сервисам вместе с заголовками личности.
package proxy

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	fiberproxy "github.com/gofiber/fiber/v3/middleware/proxy"
	"go.uber.org/zap"

	"plazausers/internal/gateway/app/http/middleware"
	"plazausers/internal/gateway/app/http/response"
	"plazausers/internal/gateway/config"
	"plazausers/pkg/logger"
)

const (
	MsgBadGateway = "Bad gateway"

	LogProxyFailed = "proxy request failed"
)

// NewHandler проксирует запрос на route.Target с исходным путем и строкой запроса.
// Заголовки X-User-* к этому моменту уже выставлены фильтром личности.
func NewHandler(route config.DownstreamRoute, timeout time.Duration) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		target := route.Target + ctx.Path()
		if query := ctx.Request().URI().QueryString(); len(query) > 0 {
			target += "?" + string(query)
		}

		middleware.InjectTraceContext(ctx)

		if err := fiberproxy.DoTimeout(ctx, target, timeout); err != nil {
			logger.Log(requestCtx).Error(requestCtx, LogProxyFailed,
				zap.String("prefix", route.Prefix),
				zap.String("target", route.Target),
				zap.Error(err))
			return response.Message(ctx, http.StatusBadGateway, MsgBadGateway)
		}

		ctx.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}

// Register монтирует прокси для каждого префикса.
func Register(router fiber.Router, routes []config.DownstreamRoute, timeout time.Duration) {
	for _, route := range routes {
		handler := NewHandler(route, timeout)
		router.All(route.Prefix, handler)
		router.All(route.Prefix+"/*", handler)
	}
}
