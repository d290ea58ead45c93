// Package sqlite реализует хранилище пользователей во встраиваемой базе SQLite
// (modernc.org/sqlite, без cgo). Используется для локального запуска и тестов.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"plazausers/pkg/logger"
)

const driverName = "sqlite"

const (
	LogOpening       = "opening SQLite database"
	LogSchemaApplied = "SQLite schema applied"
	LogClosing       = "closing SQLite database"

	ErrOpenDatabase = "failed to open SQLite database"
	ErrApplySchema  = "failed to apply SQLite schema"
)

//go:embed schema.sql
var schema string

// Store владеет соединением с базой SQLite.
type Store struct {
	db *sql.DB
}

// Open открывает базу по path и применяет схему. Пустой path или ":memory:"
// открывает базу в памяти.
func Open(ctx context.Context, path string) (*Store, error) {
	log := logger.Log(ctx).With(zap.String("path", path))
	log.Info(ctx, LogOpening)

	if path == "" {
		path = ":memory:"
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Error(ctx, ErrOpenDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrOpenDatabase, err)
	}
	// Одна запись за раз, а база в памяти существует только в пределах соединения.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		log.Error(ctx, ErrApplySchema, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrApplySchema, err)
	}

	log.Info(ctx, LogSchemaApplied)
	return &Store{db: db}, nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, LogClosing)
	return s.db.Close()
}
