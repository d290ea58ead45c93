package config

import (
	"fmt"
	"time"
)

// GRPCConfig - настройки gRPC сервера.
type GRPCConfig struct {
	Host              string        `yaml:"host" env:"USERS_GRPC_HOST" env-default:"0.0.0.0"`
	Port              int           `yaml:"port" env:"USERS_GRPC_PORT" env-default:"50052"`
	MaxConnectionIdle time.Duration `yaml:"max_connection_idle" env:"USERS_GRPC_MAX_CONNECTION_IDLE" env-default:"5m"`
	Reflection        bool          `yaml:"reflection" env:"USERS_GRPC_REFLECTION" env-default:"true"`
}

func (g *GRPCConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}
