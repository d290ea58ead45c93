// Package config содержит конфигурацию для Gateway сервиса.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"plazausers/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "Loading gateway service configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"
	ErrInvalidConfig    = "Invalid configuration"
)

// ConfigFileEnv - переменная окружения с путем к необязательному файлу конфигурации.
const ConfigFileEnv = "GATEWAY_CONFIG_FILE"

var ErrMissingSecret = errors.New("jwt secret key is required")

// Config представляет полную конфигурацию Gateway.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	GRPC       GRPCClientConfig `yaml:"grpc"`
	JWT        JWTConfig        `yaml:"jwt"`
	Routes     RoutesConfig     `yaml:"routes"`
	Redis      RedisConfig      `yaml:"redis"`
	Resilience ResilienceConfig `yaml:"resilience"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// Load читает файл из GATEWAY_CONFIG_FILE, если он задан, затем переменные окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var (
		cfg Config
		err error
	)
	if path := os.Getenv(ConfigFileEnv); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		log.Error(ctx, ErrInvalidConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("users_service_address", cfg.GRPC.UsersService.GetAddress()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.Duration("redis_default_ttl", cfg.Redis.DefaultTTL),
		zap.Int("downstream_routes", len(cfg.Routes.Downstream)))

	return &cfg, nil
}

// Validate проверяет значения, которые нельзя выразить тегами.
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return ErrMissingSecret
	}
	if _, err := c.Routes.ParseDownstream(); err != nil {
		return err
	}
	_, err := c.Routes.ParsePublic()
	return err
}
