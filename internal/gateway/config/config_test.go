package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plazausers/internal/gateway/config"
	"plazausers/pkg/logger"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("GATEWAY_JWT_SECRET_KEY", "secret")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.GetAddress())
		assert.Equal(t, "localhost:50052", cfg.GRPC.UsersService.GetAddress())
		assert.Equal(t, 5*time.Second, cfg.GRPC.RequestTimeout)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.GetAddress())
		assert.Equal(t, 15*time.Minute, cfg.Redis.DefaultTTL)
		assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
		assert.Equal(t, 5, cfg.Resilience.ErrorThreshold)

		public, err := cfg.Routes.ParsePublic()
		require.NoError(t, err)
		assert.Contains(t, public, config.PublicRoute{Method: "POST", Path: "/api/v1/auth/login"})
		assert.Contains(t, public, config.PublicRoute{Method: "GET", Path: "/api/v1/users/:id"})

		downstream, err := cfg.Routes.ParseDownstream()
		require.NoError(t, err)
		assert.Empty(t, downstream)
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("GATEWAY_JWT_SECRET_KEY", "secret")
		t.Setenv("GATEWAY_GRPC_USERS_HOST", "users")
		t.Setenv("GATEWAY_GRPC_USERS_PORT", "6000")
		t.Setenv("GATEWAY_DOWNSTREAM_ROUTES", "/api/v1/restaurants=http://restaurants:8081/,/api/v1/orders=https://orders")
		t.Setenv("GATEWAY_REDIS_ENABLED", "false")
		t.Setenv("GATEWAY_LOGGER_MODE", "development")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, "users:6000", cfg.GRPC.UsersService.GetAddress())
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())

		downstream, err := cfg.Routes.ParseDownstream()
		require.NoError(t, err)
		assert.Equal(t, []config.DownstreamRoute{
			{Prefix: "/api/v1/restaurants", Target: "http://restaurants:8081"},
			{Prefix: "/api/v1/orders", Target: "https://orders"},
		}, downstream)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gateway.yaml")
		content := []byte(`
http:
  port: 9090
jwt:
  secret_key: from-file
routes:
  public:
    - GET /health
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))
		t.Setenv(config.ConfigFileEnv, path)
		unsetEnv(t, "GATEWAY_JWT_SECRET_KEY")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	})

	t.Run("error - missing secret", func(t *testing.T) {
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("GATEWAY_JWT_SECRET_KEY", "")

		_, err := config.Load(ctx)
		assert.ErrorIs(t, err, config.ErrMissingSecret)
	})

	t.Run("error - invalid downstream route", func(t *testing.T) {
		t.Setenv(config.ConfigFileEnv, "")
		t.Setenv("GATEWAY_JWT_SECRET_KEY", "secret")
		t.Setenv("GATEWAY_DOWNSTREAM_ROUTES", "restaurants=ftp://x")

		_, err := config.Load(ctx)
		assert.ErrorIs(t, err, config.ErrInvalidDownstreamRoute)
	})
}

func TestParsePublic(t *testing.T) {
	cfg := config.RoutesConfig{Public: []string{" get /a ", "/b/*", ""}}

	routes, err := cfg.ParsePublic()
	require.NoError(t, err)
	assert.Equal(t, []config.PublicRoute{
		{Method: "GET", Path: "/a"},
		{Path: "/b/*"},
	}, routes)

	cfg.Public = []string{"GET nope"}
	_, err = cfg.ParsePublic()
	assert.ErrorIs(t, err, config.ErrInvalidPublicRoute)
}

// unsetEnv удаляет переменную на время теста: пустое значение cleanenv считает заданным.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
