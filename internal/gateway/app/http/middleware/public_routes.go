package middleware

import (
	"strings"

	"plazausers/internal/gateway/config"
)

// PublicRoutes определяет, доступен ли запрос без токена.
type PublicRoutes struct {
	routes []config.PublicRoute
}

func NewPublicRoutes(routes []config.PublicRoute) *PublicRoutes {
	return &PublicRoutes{routes: routes}
}

// Match сообщает, совпадает ли запрос с одним из открытых маршрутов.
func (p *PublicRoutes) Match(method, path string) bool {
	for _, route := range p.routes {
		if route.Method != "" && route.Method != "*" && !strings.EqualFold(route.Method, method) {
			continue
		}
		if matchPath(route.Path, path) {
			return true
		}
	}
	return false
}

func matchPath(pattern, path string) bool {
	patternSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	for i, seg := range patternSegs {
		if seg == "*" && i == len(patternSegs)-1 {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return len(patternSegs) == len(pathSegs)
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
