// Package http содержит компоненты для HTTP сервера.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"plazausers/internal/gateway/app/http/health"
	"plazausers/internal/gateway/app/http/middleware"
	"plazausers/internal/gateway/app/http/proxy"
	"plazausers/internal/gateway/app/http/response"
	"plazausers/internal/gateway/app/http/users"
	"plazausers/internal/gateway/config"
	"plazausers/internal/gateway/ports/services"
)

const MsgRouteNotFound = "Route not found"

// RouterDeps содержит зависимости маршрутизатора.
type RouterDeps struct {
	Users         services.UsersService
	Authenticator middleware.Authenticator
	Public        []config.PublicRoute
	Downstream    []config.DownstreamRoute
	ProxyTimeout  time.Duration
}

// NewApp создает fiber.App с обработчиком ошибок в формате {"message": "..."}.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: response.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps RouterDeps) {
	usersHandler := users.NewHandler(deps.Users)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewTracingMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewIdentityMiddleware(deps.Authenticator, middleware.NewPublicRoutes(deps.Public)))

	app.Get("/health", health.NewHandler(deps.Users))

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	apiV1.Post("/auth/login", usersHandler.Login)

	userRoutes := apiV1.Group("/users")
	userRoutes.Post("/owner", usersHandler.CreateOwner)
	userRoutes.Post("/employee", usersHandler.CreateEmployee)
	userRoutes.Post("/customer", usersHandler.CreateCustomer)
	userRoutes.Get("/:userId/restaurant/:restaurantId/is-employee", usersHandler.IsEmployeeOfRestaurant)
	userRoutes.Get("/:id", usersHandler.GetUser)

	proxy.Register(app, deps.Downstream, deps.ProxyTimeout)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return response.Message(c, fiber.StatusNotFound, MsgRouteNotFound)
	})
}
