// Package response преобразует ошибки сервиса пользователей в HTTP ответы.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"plazausers/internal/gateway/app/dto"
	"plazausers/internal/gateway/resilience"
	"plazausers/pkg/logger"
)

const (
	MsgInternalServerError = "Internal server error"
	MsgServiceUnavailable  = "Service temporarily unavailable"
	MsgServiceTimeout      = "Service timeout"
	MsgInvalidRequestBody  = "Invalid request body"

	LogRequestError = "request error"
)

// FromError возвращает HTTP статус и сообщение для клиента. Сообщения доменных
// ошибок передаются как есть, внутренние скрываются.
func FromError(err error) (int, string) {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return http.StatusServiceUnavailable, MsgServiceUnavailable
	}

	var withStatus interface{ GRPCStatus() *status.Status }
	if errors.As(err, &withStatus) {
		st := withStatus.GRPCStatus()
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted:
			return http.StatusServiceUnavailable, MsgServiceUnavailable
		case codes.DeadlineExceeded:
			return http.StatusGatewayTimeout, MsgServiceTimeout
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unimplemented:
			return http.StatusInternalServerError, MsgInternalServerError
		default:
			return runtime.HTTPStatusFromCode(st.Code()), st.Message()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, MsgServiceTimeout
	}
	return http.StatusInternalServerError, MsgInternalServerError
}

// Reason возвращает причину из errdetails.ErrorInfo, если сервис ее передал.
func Reason(err error) string {
	var withStatus interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &withStatus) {
		return ""
	}
	for _, detail := range withStatus.GRPCStatus().Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

// Error пишет ответ с ошибкой в формате {"message": "..."}.
func Error(ctx fiber.Ctx, err error) error {
	code, message := FromError(err)

	requestCtx := ctx.Context()
	fields := []zap.Field{zap.Int("status", code), zap.Error(err)}
	if reason := Reason(err); reason != "" {
		fields = append(fields, zap.String("reason", reason))
	}
	if code >= http.StatusInternalServerError {
		logger.Log(requestCtx).Error(requestCtx, LogRequestError, fields...)
	} else {
		logger.Log(requestCtx).Debug(requestCtx, LogRequestError, fields...)
	}

	return Message(ctx, code, message)
}

// Message пишет ответ с произвольным статусом и сообщением.
func Message(ctx fiber.Ctx, code int, message string) error {
	return ctx.Status(code).JSON(dto.ErrorResponse{Message: message})
}

// ErrorHandler - обработчик ошибок fiber.App. Ошибки fiber (404, 405, слишком
// большое тело) отдаются со своим статусом.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return Message(ctx, fiberErr.Code, fiberErr.Message)
	}
	return Error(ctx, err)
}
