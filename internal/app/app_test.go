package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clubsite/internal/config"
	"clubsite/internal/model"
	"clubsite/internal/repository/postgres"
	"clubsite/internal/repository/sqlite"
)

func TestNominationRepository(t *testing.T) {
	repo, err := NominationRepository(nil, config.DriverPostgres)
	require.NoError(t, err)
	assert.IsType(t, &postgres.NominationPostgres{}, repo)

	repo, err = NominationRepository(nil, config.DriverSQLite)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.NominationSQLite{}, repo)

	_, err = NominationRepository(nil, "oracle")
	assert.Error(t, err)
}

func TestOpenNominations_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "club.db"),
	}

	db, repo, err := OpenNominations(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	_, err = repo.Create(ctx, &model.Nomination{ID: "n1", BestDancer: "Alice"})
	require.NoError(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenNominations_UnknownDriver(t *testing.T) {
	_, _, err := OpenNominations(context.Background(), config.DatabaseConfig{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}
