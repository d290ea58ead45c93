package config

import "time"

// ResilienceConfig задает параметры circuit breaker и повторов для вызовов сервиса пользователей.
type ResilienceConfig struct {
	ErrorThreshold   int           `yaml:"error_threshold" env:"GATEWAY_CB_ERROR_THRESHOLD" env-default:"5"`
	OpenTimeout      time.Duration `yaml:"open_timeout" env:"GATEWAY_CB_OPEN_TIMEOUT" env-default:"10s"`
	SuccessThreshold int           `yaml:"success_threshold" env:"GATEWAY_CB_SUCCESS_THRESHOLD" env-default:"2"`
	RetryAttempts    int           `yaml:"retry_attempts" env:"GATEWAY_RETRY_ATTEMPTS" env-default:"3"`
	RetryBackoff     time.Duration `yaml:"retry_backoff" env:"GATEWAY_RETRY_BACKOFF" env-default:"100ms"`
	RetryMaxBackoff  time.Duration `yaml:"retry_max_backoff" env:"GATEWAY_RETRY_MAX_BACKOFF" env-default:"1s"`
}
