package resilience

import (
	"context"

	"go.uber.org/zap"

	"plazausers/internal/gateway/config"
	"plazausers/pkg/logger"
)

const LogExecuting = "executing operation with resilience"

// ServiceResilience обеспечивает отказоустойчивость сервисных вызовов.
type ServiceResilience struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewServiceResilience создает новую обертку отказоустойчивости для сервиса.
func NewServiceResilience(serviceName string, cbConfig CircuitBreakerConfig, retryConfig RetryConfig) *ServiceResilience {
	return &ServiceResilience{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, cbConfig),
		retry:          NewRetry(serviceName, retryConfig),
	}
}

// ExecuteWithResilience выполняет операцию с отказоустойчивостью.
func (r *ServiceResilience) ExecuteWithResilience(ctx context.Context, operationName string, operation func() error) error {
	logger.Log(ctx).Debug(ctx, LogExecuting,
		zap.String("service", r.serviceName),
		zap.String("operation", operationName))

	return r.circuitBreaker.Execute(ctx, func() error {
		return r.retry.Execute(ctx, operation)
	})
}

// State возвращает состояние circuit breaker.
func (r *ServiceResilience) State() CircuitState {
	return r.circuitBreaker.GetState()
}

// Execute выполняет операцию с результатом под защитой r.
func Execute[T any](ctx context.Context, r *ServiceResilience, operationName string, operation func() (T, error)) (T, error) {
	var result T
	err := r.ExecuteWithResilience(ctx, operationName, func() error {
		var err error
		result, err = operation()
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// NewFromConfig собирает ServiceResilience из настроек шлюза.
func NewFromConfig(serviceName string, cfg *config.ResilienceConfig) *ServiceResilience {
	cb := DefaultCircuitBreakerConfig()
	cb.ErrorThreshold = cfg.ErrorThreshold
	cb.Timeout = cfg.OpenTimeout
	cb.SuccessThreshold = cfg.SuccessThreshold

	retry := DefaultRetryConfig()
	retry.MaxAttempts = cfg.RetryAttempts
	retry.InitialBackoff = cfg.RetryBackoff
	retry.MaxBackoff = cfg.RetryMaxBackoff

	return NewServiceResilience(serviceName, cb, retry)
}
