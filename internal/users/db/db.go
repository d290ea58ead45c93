// Package db поднимает хранилище пользователей, выбранное в конфигурации.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"plazausers/internal/users/adapters/postgres"
	"plazausers/internal/users/adapters/sqlite"
	"plazausers/internal/users/config"
	"plazausers/internal/users/ports/repositories"
	usermigrations "plazausers/migrations/users"
	pgdb "plazausers/pkg/db/postgres"
	"plazausers/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing users storage"
	LogDBInitialized     = "users storage initialized successfully"
	LogMigrationStarting = "starting database migrations for users service"
	LogEmbeddedMigration = "using embedded migrations"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply users database migrations"
	ErrDBConnection = "failed to connect to users database"
	ErrGetPath      = "failed to get path"
	ErrDBDriver     = "unsupported storage driver"
)

// DB владеет выбранным хранилищем и отдает репозиторий пользователей.
type DB struct {
	driver string
	users  repositories.UserRepository
	ping   func(context.Context) error
	close  func(context.Context) error
}

// New открывает хранилище. Для Postgres предварительно применяются миграции:
// из каталога, если он задан, иначе встроенные в бинарный файл.
func New(ctx context.Context, cfg *config.Config) (*DB, error) {
	log := logger.Log(ctx).With(zap.String("driver", cfg.Storage.Driver))
	log.Info(ctx, LogDBInitializing)

	var (
		db  *DB
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err = newPostgres(ctx, &cfg.Postgres)
	case config.DriverSQLite:
		db, err = newSQLite(ctx, cfg.Storage.SQLitePath)
	default:
		return nil, fmt.Errorf("%s: %q", ErrDBDriver, cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Info(ctx, LogDBInitialized)
	return db, nil
}

func newPostgres(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogMigrationStarting,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database))

	if cfg.MigrationsDir != "" {
		migrationsPath, err := filepath.Abs(cfg.MigrationsDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
		}
		if err := pgdb.MigrateDSN(ctx, cfg.GetConnectionURL(), "file://"+migrationsPath); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
		}
	} else {
		log.Debug(ctx, LogEmbeddedMigration)
		if err := pgdb.MigrateFS(ctx, cfg.GetConnectionURL(), usermigrations.FS, "."); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
		}
	}

	database, err := pgdb.New(ctx, cfg.GetDSN(), pgdb.PoolOptions{
		MinConns:        cfg.MinConn,
		MaxConns:        cfg.MaxConn,
		MaxConnLifetime: cfg.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	repos := postgres.NewRepositoryFactory(database.Pool())
	return &DB{
		driver: config.DriverPostgres,
		users:  repos.UserRepository(),
		ping:   database.Ping,
		close: func(ctx context.Context) error {
			database.Close(ctx)
			return nil
		},
	}, nil
}

func newSQLite(ctx context.Context, path string) (*DB, error) {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}
	return &DB{
		driver: config.DriverSQLite,
		users:  sqlite.NewUserRepository(store),
		ping:   store.Ping,
		close:  store.Close,
	}, nil
}

func (db *DB) Driver() string {
	return db.driver
}

// UserRepository возвращает репозиторий пользователей выбранного хранилища.
func (db *DB) UserRepository() repositories.UserRepository {
	return db.users
}

// Ping проверяет соединение с хранилищем.
func (db *DB) Ping(ctx context.Context) error {
	return db.ping(ctx)
}

// Close закрывает соединение с хранилищем.
func (db *DB) Close(ctx context.Context) error {
	return db.close(ctx)
}
