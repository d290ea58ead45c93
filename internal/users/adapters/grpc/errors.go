package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"plazausers/internal/users/domain/entities"
	"plazausers/pkg/logger"
)

// ErrorDomain - значение ErrorInfo.Domain в деталях статуса.
const ErrorDomain = "users.plaza"

// Причины в ErrorInfo.Reason, по одной на вид доменной ошибки.
const (
	ReasonInvalidInput = "INVALID_INPUT"
	ReasonConflict     = "CONFLICT"
	ReasonUnauthorized = "UNAUTHORIZED"
	ReasonNotFound     = "NOT_FOUND"
	ReasonForbidden    = "FORBIDDEN"
)

const (
	ErrInternalMsg      = "internal server error"
	LogUnexpectedError  = "unexpected error in handler"
	LogAttachDetailsErr = "failed to attach error details"
)

// ToStatus превращает ошибку сценария в статус gRPC. Сообщение доменной
// ошибки передается клиенту как есть, остальные ошибки скрываются за Internal.
func ToStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	de, ok := entities.AsDomainError(err)
	if !ok {
		if st, isStatus := status.FromError(err); isStatus {
			return st.Err()
		}
		logger.Log(ctx).Error(ctx, LogUnexpectedError, zap.Error(err))
		return status.Error(codes.Internal, ErrInternalMsg)
	}

	code, reason := classify(de.Kind)
	st := status.New(code, de.Message)
	detailed, detailsErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: ErrorDomain,
	})
	if detailsErr != nil {
		logger.Log(ctx).Warn(ctx, LogAttachDetailsErr, zap.Error(detailsErr))
		return st.Err()
	}
	return detailed.Err()
}

func classify(kind error) (codes.Code, string) {
	switch {
	case errors.Is(kind, entities.ErrInvalidInput):
		return codes.InvalidArgument, ReasonInvalidInput
	case errors.Is(kind, entities.ErrConflict):
		return codes.AlreadyExists, ReasonConflict
	case errors.Is(kind, entities.ErrUnauthorized):
		return codes.Unauthenticated, ReasonUnauthorized
	case errors.Is(kind, entities.ErrNotFound):
		return codes.NotFound, ReasonNotFound
	case errors.Is(kind, entities.ErrForbidden):
		return codes.PermissionDenied, ReasonForbidden
	default:
		return codes.Internal, ""
	}
}
