// Package telemetry настраивает трассировку OpenTelemetry с экспортом по OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"plazausers/pkg/logger"
)

const (
	LogTracingDisabled = "tracing disabled"
	LogTracingEnabled  = "tracing enabled"

	ErrCreateExporter = "failed to create OTLP exporter"
	ErrCreateResource = "failed to create telemetry resource"
)

// ShutdownFunc сбрасывает накопленные спаны и останавливает провайдер.
type ShutdownFunc func(context.Context) error

// Options - параметры трассировки.
type Options struct {
	Enabled     bool
	Endpoint    string
	Insecure    bool
	ServiceName string
	SampleRatio float64
}

// Setup регистрирует глобальный TracerProvider и пропагатор W3C trace context.
// Если трассировка выключена или endpoint пуст, возвращается пустая функция остановки.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	log := logger.Log(ctx).With(zap.String("service", opts.ServiceName))
	noop := func(context.Context) error { return nil }

	if !opts.Enabled || opts.Endpoint == "" {
		log.Debug(ctx, LogTracingDisabled)
		return noop, nil
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		log.Error(ctx, ErrCreateExporter, zap.Error(err))
		return noop, fmt.Errorf("%s: %w", ErrCreateExporter, err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(opts.ServiceName)))
	if err != nil {
		log.Error(ctx, ErrCreateResource, zap.Error(err))
		return noop, fmt.Errorf("%s: %w", ErrCreateResource, err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(opts.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info(ctx, LogTracingEnabled, zap.String("endpoint", opts.Endpoint))
	return tp.Shutdown, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}
