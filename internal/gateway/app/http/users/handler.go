// Package users содержит HTTP обработчики операций над пользователями.
package users

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"plazausers/internal/gateway/app/dto"
	"plazausers/internal/gateway/app/http/response"
	"plazausers/internal/gateway/ports/services"
)

const MsgInvalidUserID = "Invalid user id"

// Handler обрабатывает запросы /api/v1/auth и /api/v1/users.
type Handler struct {
	users services.UsersService
}

func NewHandler(users services.UsersService) *Handler {
	return &Handler{users: users}
}

// Login POST /api/v1/auth/login.
func (h *Handler) Login(ctx fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return response.Message(ctx, http.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	resp, err := h.users.Login(ctx.Context(), &req)
	if err != nil {
		return response.Error(ctx, err)
	}
	return ctx.Status(http.StatusOK).JSON(resp)
}

// CreateOwner POST /api/v1/users/owner.
func (h *Handler) CreateOwner(ctx fiber.Ctx) error {
	return h.create(ctx, h.users.CreateOwner)
}

// CreateEmployee POST /api/v1/users/employee.
func (h *Handler) CreateEmployee(ctx fiber.Ctx) error {
	return h.create(ctx, h.users.CreateEmployee)
}

// CreateCustomer POST /api/v1/users/customer.
func (h *Handler) CreateCustomer(ctx fiber.Ctx) error {
	return h.create(ctx, h.users.CreateCustomer)
}

func (h *Handler) create(
	ctx fiber.Ctx,
	create func(context.Context, *dto.CreateUserRequest) (*dto.UserResponse, error),
) error {
	var req dto.CreateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return response.Message(ctx, http.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	resp, err := create(ctx.Context(), &req)
	if err != nil {
		return response.Error(ctx, err)
	}
	return ctx.Status(http.StatusCreated).JSON(resp)
}

// GetUser GET /api/v1/users/:id.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	id, ok := parseID(ctx.Params("id"))
	if !ok {
		return response.Message(ctx, http.StatusBadRequest, MsgInvalidUserID)
	}

	resp, err := h.users.GetUser(ctx.Context(), id)
	if err != nil {
		return response.Error(ctx, err)
	}
	return ctx.JSON(resp)
}

// IsEmployeeOfRestaurant GET /api/v1/users/:userId/restaurant/:restaurantId/is-employee.
func (h *Handler) IsEmployeeOfRestaurant(ctx fiber.Ctx) error {
	userID, ok := parseID(ctx.Params("userId"))
	if !ok {
		return response.Message(ctx, http.StatusBadRequest, MsgInvalidUserID)
	}
	restaurantID, ok := parseID(ctx.Params("restaurantId"))
	if !ok {
		return response.Message(ctx, http.StatusBadRequest, "Invalid restaurant id")
	}

	isEmployee, err := h.users.IsEmployeeOfRestaurant(ctx.Context(), userID, restaurantID)
	if err != nil {
		return response.Error(ctx, err)
	}
	return ctx.JSON(dto.IsEmployeeResponse{IsEmployee: isEmployee})
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}
