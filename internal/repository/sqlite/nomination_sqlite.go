package sqlite

import (
	"context"
	"database/sql"

	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// NominationSQLite stores ballots in a local SQLite file. Used for development
// and single-host deployments where no Postgres is available.
type NominationSQLite struct {
	db *sql.DB
}

func NewNominationSQLite(db *sql.DB) *NominationSQLite {
	return &NominationSQLite{db: db}
}

var _ repository.NominationRepository = (*NominationSQLite)(nil)

func (r *NominationSQLite) Create(ctx context.Context, n *model.Nomination) (*model.Nomination, error) {
	const q = `
		INSERT INTO graamys_nominations (` + repository.NominationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, q, repository.NominationArgs(n)...); err != nil {
		return nil, err
	}

	// SQLite has no RETURNING on older builds; read the row back.
	const qGet = `SELECT ` + repository.NominationColumns + ` FROM graamys_nominations WHERE id = ?`
	out, err := repository.ScanNomination(r.db.QueryRowContext(ctx, qGet, n.ID))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NominationSQLite) List(ctx context.Context) ([]model.Nomination, error) {
	const q = `SELECT ` + repository.NominationColumns + ` FROM graamys_nominations ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Nomination, 0)
	for rows.Next() {
		n, err := repository.ScanNomination(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NominationSQLite) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM graamys_nominations`).Scan(&total)
	return total, err
}
