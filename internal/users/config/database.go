package config

import (
	"fmt"
	"time"
)

// Поддерживаемые хранилища.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StorageConfig выбирает хранилище пользователей.
type StorageConfig struct {
	Driver     string `yaml:"driver" env:"USERS_STORAGE_DRIVER" env-default:"postgres"`
	SQLitePath string `yaml:"sqlite_path" env:"USERS_SQLITE_PATH" env-default:"users.db"`
}

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `yaml:"host" env:"USERS_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"USERS_POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"USERS_POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"USERS_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `yaml:"database" env:"USERS_POSTGRES_DB" env-default:"users"`
	SSLMode         string        `yaml:"ssl_mode" env:"USERS_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConn         int           `yaml:"min_conn" env:"USERS_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int           `yaml:"max_conn" env:"USERS_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"USERS_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MigrationsDir   string        `yaml:"migrations_dir" env:"USERS_POSTGRES_MIGRATIONS_DIR"`
}

// GetDSN возвращает строку подключения для pgx.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// GetConnectionURL возвращает URL подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}
