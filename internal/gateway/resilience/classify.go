package resilience

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCode возвращает код gRPC из цепочки ошибок, в том числе обернутой через fmt.Errorf.
func StatusCode(err error) codes.Code {
	var withStatus interface{ GRPCStatus() *status.Status }
	if errors.As(err, &withStatus) {
		return withStatus.GRPCStatus().Code()
	}
	return status.Code(err)
}

// IsTransportFailure сообщает, что сервис не ответил по существу. Доменные ошибки
// (InvalidArgument, NotFound и т.п.) отказом не считаются.
func IsTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	switch StatusCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Internal, codes.Unknown:
		return true
	default:
		return false
	}
}

// IsRetryable разрешает повтор только для Unavailable: запрос до сервиса не дошел.
func IsRetryable(err error) bool {
	return err != nil && StatusCode(err) == codes.Unavailable
}
