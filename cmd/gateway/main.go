// Package main реализует точку входа шлюза.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	redisCache "plazausers/internal/gateway/adapters/cache"
	"plazausers/internal/gateway/adapters/grpc/users"
	httpServer "plazausers/internal/gateway/app/http"
	"plazausers/internal/gateway/app/services"
	"plazausers/internal/gateway/config"
	"plazausers/internal/gateway/ports/cache"
	"plazausers/internal/gateway/resilience"
	"plazausers/pkg/logger"
	"plazausers/pkg/shutdown"
	"plazausers/pkg/telemetry"
	"plazausers/pkg/token"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "GATEWAY_LOGGER_MODE"
	EnvLoggerLevel = "GATEWAY_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitTelemetry        = "failed to initialize telemetry"
	ErrInitTokenValidator   = "failed to initialize token validator"
	ErrCreateUsersClient    = "failed to create users client"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdownIncomplete   = "shutdown did not complete cleanly"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "gateway service started"
	LogServiceShutdownDone = "gateway service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingUsersClient  = "closing users client"
	LogClosingRedis        = "closing Redis connection"
	LogStoppingTelemetry   = "flushing traces"
	LogInitClients         = "initializing gRPC clients"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "cache disabled"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const usersServiceName = "users-service"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := logger.Log(ctx).Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.ToOptions())
		if err != nil {
			log.Error(ctx, ErrInitTelemetry, zap.Error(err))
			exitCode = 1
			return
		}

		// Шлюз только проверяет токены, поэтому TTL не используется.
		validator, err := token.NewService(cfg.JWT.SecretKey, 0)
		if err != nil {
			log.Error(ctx, ErrInitTokenValidator, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitClients)
		usersClient, err := users.NewUsersClient(ctx, &cfg.GRPC)
		if err != nil {
			log.Error(ctx, ErrCreateUsersClient, zap.Error(err))
			exitCode = 1
			return
		}

		var responseCache cache.Cache
		var redisClient *redisCache.RedisCache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			redisClient, err = redisCache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				_ = usersClient.Close()
				exitCode = 1
				return
			}
			responseCache = redisClient
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitServices)
		usersService := services.NewUsersService(
			usersClient,
			resilience.NewFromConfig(usersServiceName, &cfg.Resilience),
			services.Options{
				Cache:          responseCache,
				CacheTTL:       cfg.Redis.DefaultTTL,
				RequestTimeout: cfg.GRPC.RequestTimeout,
			},
		)

		// Маршруты уже проверены в config.Load.
		public, _ := cfg.Routes.ParsePublic()
		downstream, _ := cfg.Routes.ParseDownstream()

		log.Info(ctx, LogInitHTTPServer)
		app := httpServer.NewApp(&cfg.HTTP)
		httpServer.SetupRouter(app, httpServer.RouterDeps{
			Users:         usersService,
			Authenticator: validator,
			Public:        public,
			Downstream:    downstream,
			ProxyTimeout:  cfg.Routes.ProxyTimeout,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.Int("public_routes", len(public)),
			zap.Int("downstream_routes", len(downstream)),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		ok := shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера, затем клиентов.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := app.ShutdownWithContext(ctx); err != nil {
					return err
				}

				log.Info(ctx, LogClosingUsersClient)
				if err := usersClient.Close(); err != nil {
					return err
				}

				if redisClient != nil {
					log.Info(ctx, LogClosingRedis)
					return redisClient.Close()
				}
				return nil
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingTelemetry)
				return shutdownTracing(ctx)
			},
		)
		if !ok {
			log.Warn(ctx, ErrShutdownIncomplete)
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
