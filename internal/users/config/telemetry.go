package config

import (
	"fmt"
	"time"

	"plazausers/pkg/telemetry"
)

// TelemetryConfig - экспорт трассировок по OTLP/HTTP.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" env:"USERS_OTEL_ENABLED" env-default:"false"`
	Endpoint    string  `yaml:"endpoint" env:"USERS_OTEL_ENDPOINT" env-default:"localhost:4318"`
	Insecure    bool    `yaml:"insecure" env:"USERS_OTEL_INSECURE" env-default:"true"`
	ServiceName string  `yaml:"service_name" env:"USERS_OTEL_SERVICE_NAME" env-default:"plaza-users"`
	SampleRatio float64 `yaml:"sample_ratio" env:"USERS_OTEL_SAMPLE_RATIO" env-default:"1"`
}

func (t *TelemetryConfig) ToOptions() telemetry.Options {
	return telemetry.Options{
		Enabled:     t.Enabled,
		Endpoint:    t.Endpoint,
		Insecure:    t.Insecure,
		ServiceName: t.ServiceName,
		SampleRatio: t.SampleRatio,
	}
}

// Location возвращает временную зону, в которой считается текущая дата.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
