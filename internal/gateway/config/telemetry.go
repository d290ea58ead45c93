package config

import "plazausers/pkg/telemetry"

// TelemetryConfig - экспорт трассировок по OTLP/HTTP.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" env:"GATEWAY_OTEL_ENABLED" env-default:"false"`
	Endpoint    string  `yaml:"endpoint" env:"GATEWAY_OTEL_ENDPOINT" env-default:"localhost:4318"`
	Insecure    bool    `yaml:"insecure" env:"GATEWAY_OTEL_INSECURE" env-default:"true"`
	ServiceName string  `yaml:"service_name" env:"GATEWAY_OTEL_SERVICE_NAME" env-default:"plaza-gateway"`
	SampleRatio float64 `yaml:"sample_ratio" env:"GATEWAY_OTEL_SAMPLE_RATIO" env-default:"1"`
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
