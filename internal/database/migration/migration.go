package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clubsite/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_graamys_nominations",
		SQL: `CREATE TABLE IF NOT EXISTS graamys_nominations (
  id                   UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  best_dancer          TEXT        NOT NULL DEFAULT '',
  best_athlete         TEXT        NOT NULL DEFAULT '',
  funniest_member      TEXT        NOT NULL DEFAULT '',
  best_dressed         TEXT        NOT NULL DEFAULT '',
  most_spirited        TEXT        NOT NULL DEFAULT '',
  rising_star          TEXT        NOT NULL DEFAULT '',
  best_duo             TEXT        NOT NULL DEFAULT '',
  most_valuable_member TEXT        NOT NULL DEFAULT '',
  life_of_the_party    TEXT        NOT NULL DEFAULT '',
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_graamys_nominations_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_graamys_nominations_created_at ON graamys_nominations (created_at);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_graamys_nominations",
		SQL: `CREATE TABLE IF NOT EXISTS graamys_nominations (
  id                   TEXT      PRIMARY KEY,
  best_dancer          TEXT      NOT NULL DEFAULT '',
  best_athlete         TEXT      NOT NULL DEFAULT '',
  funniest_member      TEXT      NOT NULL DEFAULT '',
  best_dressed         TEXT      NOT NULL DEFAULT '',
  most_spirited        TEXT      NOT NULL DEFAULT '',
  rising_star          TEXT      NOT NULL DEFAULT '',
  best_duo             TEXT      NOT NULL DEFAULT '',
  most_valuable_member TEXT      NOT NULL DEFAULT '',
  life_of_the_party    TEXT      NOT NULL DEFAULT '',
  created_at           TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		Name: "create_index_graamys_nominations_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_graamys_nominations_created_at ON graamys_nominations (created_at);`,
	},
}

func dialect(driver string) (sentinel string, steps []migrationStep, err error) {
	switch driver {
	case config.DriverPostgres, "":
		return "SELECT to_regclass('public.graamys_nominations') IS NOT NULL", postgresSteps, nil
	case config.DriverSQLite:
		return "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'graamys_nominations')", sqliteSteps, nil
	}
	return "", nil, fmt.Errorf("unsupported database driver %q", driver)
}

// EnsureMigrated checks if the 'graamys_nominations' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("driver", driver))

	sentinel, steps, err := dialect(driver)
	if err != nil {
		return err
	}

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, sentinel).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("duration_ms", time.Since(start)),
				zap.Duration("step_duration_ms", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration_ms", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return nil
}
