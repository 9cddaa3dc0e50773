// Package app wires the pieces shared by the API server and clubctl.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"clubsite/internal/config"
	"clubsite/internal/database"
	"clubsite/internal/database/migration"
	"clubsite/internal/repository"
	"clubsite/internal/repository/postgres"
	"clubsite/internal/repository/sqlite"
)

// NominationRepository picks the repository implementation for driver.
func NominationRepository(db *sql.DB, driver string) (repository.NominationRepository, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.NewNominationPostgres(db), nil
	case config.DriverSQLite:
		return sqlite.NewNominationSQLite(db), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// OpenNominations opens the configured database, makes sure the schema exists
// and returns the matching repository. Callers own the returned *sql.DB.
func OpenNominations(ctx context.Context, c config.DatabaseConfig, log *zap.Logger) (*sql.DB, repository.NominationRepository, error) {
	db, err := database.Open(c)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := migration.EnsureMigrated(ctx, db, c.Driver, log); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	repo, err := NominationRepository(db, c.Driver)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, repo, nil
}
