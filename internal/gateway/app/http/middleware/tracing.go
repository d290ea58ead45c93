package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "plazausers/gateway"

// HeaderCarrier адаптирует заголовки fasthttp к propagation.TextMapCarrier.
type HeaderCarrier struct {
	Header *fasthttp.RequestHeader
}

var _ propagation.TextMapCarrier = HeaderCarrier{}

func (c HeaderCarrier) Get(key string) string {
	return string(c.Header.Peek(key))
}

func (c HeaderCarrier) Set(key, value string) {
	c.Header.Set(key, value)
}

func (c HeaderCarrier) Keys() []string {
	var keys []string
	c.Header.VisitAll(func(key, _ []byte) {
		keys = append(keys, string(key))
	})
	return keys
}

// NewTracingMiddleware открывает серверный span на каждый запрос, продолжая
// входящий trace context. Без настроенного провайдера span не записывается.
func NewTracingMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)

	return func(ctx fiber.Ctx) error {
		carrier := HeaderCarrier{Header: &ctx.Request().Header}
		spanCtx := otel.GetTextMapPropagator().Extract(ctx.Context(), carrier)

		spanCtx, span := tracer.Start(spanCtx, ctx.Method()+" "+ctx.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", ctx.Method()),
				attribute.String("url.path", ctx.Path()),
			))
		defer span.End()

		ctx.SetContext(spanCtx)

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if err != nil {
			span.RecordError(err)
		}
		if err != nil || status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, "")
		}
		return err
	}
}

// InjectTraceContext записывает trace context запроса в его заголовки перед проксированием.
func InjectTraceContext(ctx fiber.Ctx) {
	otel.GetTextMapPropagator().Inject(ctx.Context(), HeaderCarrier{Header: &ctx.Request().Header})
}
