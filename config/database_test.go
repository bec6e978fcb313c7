package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_MissingURLOutsideDevelopment(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "production")

	_, err := Connect()
	require.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestConnect_DevelopmentFallsBackToSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "development")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "portfolio.db"))

	db, err := Connect()
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	require.NoError(t, sqlDB.Close())
}
