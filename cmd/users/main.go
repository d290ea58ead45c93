// Package main реализует точку входа сервиса пользователей.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"plazausers/internal/users/adapters/grpc"
	"plazausers/internal/users/adapters/services"
	"plazausers/internal/users/app"
	"plazausers/internal/users/config"
	"plazausers/internal/users/db"
	"plazausers/internal/users/domain/entities"
	"plazausers/pkg/logger"
	"plazausers/pkg/shutdown"
	"plazausers/pkg/telemetry"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "USERS_LOGGER_MODE"
	EnvLoggerLevel = "USERS_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitTelemetry        = "failed to initialize telemetry"
	ErrInitDB               = "failed to initialize database"
	ErrInitServices         = "failed to initialize services"
	ErrBootstrapAdmin       = "failed to bootstrap admin user"
	ErrStartGRPC            = "failed to start gRPC server"
	ErrCloseDB              = "failed to close database"
	ErrShutdownIncomplete   = "shutdown did not complete cleanly"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "users service started"
	LogServiceShutdownDone = "users service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogStoppingGRPC        = "stopping gRPC server"
	LogStoppingTelemetry   = "flushing traces"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHandlers        = "initializing gRPC handlers"
	LogInitGRPCServer      = "initializing gRPC server"
	LogStartingGRPC        = "starting gRPC server"
	LogAdminReady          = "admin user ready"
)

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

		database, err := db.New(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		loc, err := cfg.Location()
		if err != nil {
			log.Error(ctx, ErrInitServices, zap.Error(err))
			exitCode = 1
			return
		}
		serviceFactory, err := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetTTL(),
			cfg.JWT.BCryptCost,
			loc,
		)
		if err != nil {
			log.Error(ctx, ErrInitServices, zap.Error(err))
			exitCode = 1
			return
		}
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()

		log.Info(ctx, LogInitUseCases)
		userRepo := database.UserRepository()
		registrationUseCase := app.NewRegistrationUseCase(userRepo, passwordService, serviceFactory.Clock())
		authUseCase := app.NewAuthUseCase(userRepo, passwordService, tokenService)
		userUseCase := app.NewUserUseCase(userRepo)

		if cfg.Admin.Enabled() {
			if err := bootstrapAdmin(ctx, &cfg.Admin, registrationUseCase.EnsureAdmin); err != nil {
				log.Error(ctx, ErrBootstrapAdmin, zap.Error(err))
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitHandlers)
		usersHandler := grpc.NewUsersHandler(registrationUseCase, authUseCase, userUseCase)

		log.Info(ctx, LogInitGRPCServer)
		grpcServer := grpc.New(&cfg.GRPC, tokenService)
		usersHandler.RegisterService(grpcServer)

		log.Info(ctx, LogStartingGRPC)
		if err := grpcServer.Start(ctx); err != nil {
			log.Error(ctx, ErrStartGRPC, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("storage", database.Driver()),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		ok := shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingGRPC)
				grpcServer.Stop(ctx)

				log.Info(ctx, LogClosingDB)
				if err := database.Close(ctx); err != nil {
					return fmt.Errorf("%s: %w", ErrCloseDB, err)
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

func bootstrapAdmin(
	ctx context.Context,
	cfg *config.AdminConfig,
	ensure func(context.Context, *entities.User) (*entities.User, error),
) error {
	birthDate, err := cfg.GetBirthDate()
	if err != nil {
		return err
	}

	admin, err := ensure(ctx, &entities.User{
		FirstName: cfg.FirstName,
		LastName:  cfg.LastName,
		Document:  cfg.Document,
		Phone:     cfg.Phone,
		BirthDate: birthDate,
		Email:     cfg.Email,
		Password:  cfg.Password,
	})
	if err != nil {
		return err
	}

	logger.Log(ctx).Info(ctx, LogAdminReady, zap.Int64("userID", admin.ID), zap.String("email", admin.Email))
	return nil
}
