// Package config содержит конфигурацию сервиса пользователей.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"plazausers/pkg/logger"
)

const (
	LogLoadingConfig    = "Loading users service configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"
	ErrInvalidConfig    = "Invalid configuration"
)

// ConfigFileEnv - переменная окружения с путем к необязательному файлу конфигурации (yaml, env, toml).
const ConfigFileEnv = "USERS_CONFIG_FILE"

var (
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrMissingSecret = errors.New("jwt secret key is required")
	ErrShortTTL      = errors.New("jwt expiration must be at least 1000 ms")
)

// Config - полная конфигурация сервиса.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	JWT       JWTConfig       `yaml:"jwt"`
	Admin     AdminConfig     `yaml:"admin"`
	Logging   LoggingConfig   `yaml:"logging"`
	Shutdown  ShutdownConfig  `yaml:"shutdown"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Timezone  string          `yaml:"timezone" env:"USERS_TIMEZONE" env-default:"UTC"`
}

// Load читает файл из USERS_CONFIG_FILE, если он задан, затем переменные окружения.
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
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("grpc_address", cfg.GRPC.GetAddress()),
		zap.Int64("jwt_expiration_ms", cfg.JWT.ExpirationMs),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Bool("admin_bootstrap", cfg.Admin.Enabled()),
		zap.Bool("telemetry", cfg.Telemetry.Enabled))

	return &cfg, nil
}

// Validate проверяет значения, которые нельзя выразить тегами.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}
	if c.JWT.SecretKey == "" {
		return ErrMissingSecret
	}
	if c.JWT.ExpirationMs < 0 {
		return fmt.Errorf("jwt expiration must not be negative: %d", c.JWT.ExpirationMs)
	}
	if c.JWT.ExpirationMs > 0 && c.JWT.GetTTL() < time.Second {
		return fmt.Errorf("%w: %d", ErrShortTTL, c.JWT.ExpirationMs)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return c.Admin.Validate()
}
