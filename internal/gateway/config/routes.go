package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrInvalidPublicRoute     = errors.New("invalid public route")
	ErrInvalidDownstreamRoute = errors.New("invalid downstream route")
)

// RoutesConfig описывает открытые маршруты и нижестоящие сервисы.
//
// Открытый маршрут задается как "METHOD /path" или "/path" (любой метод).
// Сегмент вида :name совпадает с любым значением, завершающий * с любым остатком пути.
// Нижестоящий маршрут задается как "/prefix=http://host:port".
type RoutesConfig struct {
	Public       []string      `yaml:"public" env:"GATEWAY_PUBLIC_ROUTES" env-separator:"," env-default:"POST /api/v1/auth/login,POST /api/v1/users/customer,GET /api/v1/users/:id,GET /health"`
	Downstream   []string      `yaml:"downstream" env:"GATEWAY_DOWNSTREAM_ROUTES" env-separator:","`
	ProxyTimeout time.Duration `yaml:"proxy_timeout" env:"GATEWAY_PROXY_TIMEOUT" env-default:"10s"`
}

// PublicRoute - маршрут, доступный без токена.
type PublicRoute struct {
	Method string
	Path   string
}

// DownstreamRoute - префикс пути, проксируемый на Target.
type DownstreamRoute struct {
	Prefix string
	Target string
}

func (c *RoutesConfig) ParsePublic() ([]PublicRoute, error) {
	routes := make([]PublicRoute, 0, len(c.Public))
	for _, raw := range c.Public {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		route := PublicRoute{Path: raw}
		if method, path, ok := strings.Cut(raw, " "); ok {
			route = PublicRoute{Method: strings.ToUpper(method), Path: strings.TrimSpace(path)}
		}
		if !strings.HasPrefix(route.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPublicRoute, raw)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func (c *RoutesConfig) ParseDownstream() ([]DownstreamRoute, error) {
	routes := make([]DownstreamRoute, 0, len(c.Downstream))
	for _, raw := range c.Downstream {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		prefix, target, ok := strings.Cut(raw, "=")
		if !ok || !strings.HasPrefix(prefix, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDownstreamRoute, raw)
		}
		u, err := url.Parse(target)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDownstreamRoute, raw)
		}
		routes = append(routes, DownstreamRoute{
			Prefix: strings.TrimSuffix(prefix, "/"),
			Target: strings.TrimSuffix(target, "/"),
		})
	}
	return routes, nil
}
