package postgres_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plazausers/pkg/db/postgres"
)

func TestNewRejectsInvalidDSN(t *testing.T) {
	db, err := postgres.New(context.Background(), "not-a-valid-dsn", postgres.PoolOptions{MaxConns: 2})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), postgres.ErrParseConfig)
}

func TestMigrateFSRejectsMissingDir(t *testing.T) {
	err := postgres.MigrateFS(context.Background(), "postgres://localhost:1/x", fstest.MapFS{}, "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), postgres.ErrCreateMigrationSource)
}
