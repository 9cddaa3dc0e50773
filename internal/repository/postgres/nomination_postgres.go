package postgres

import (
	"context"
	"database/sql"

	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// NominationPostgres is a PostgreSQL implementation of repository.NominationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type NominationPostgres struct {
	db *sql.DB
}

// NewNominationPostgres creates a new NominationPostgres repository.
func NewNominationPostgres(db *sql.DB) *NominationPostgres {
	return &NominationPostgres{db: db}
}

var _ repository.NominationRepository = (*NominationPostgres)(nil)

// Create inserts a new ballot row and returns the stored record.
func (r *NominationPostgres) Create(ctx context.Context, n *model.Nomination) (*model.Nomination, error) {
	const q = `
		INSERT INTO graamys_nominations (` + repository.NominationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + repository.NominationColumns
	row := r.db.QueryRowContext(ctx, q, repository.NominationArgs(n)...)
	out, err := repository.ScanNomination(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every ballot ordered by creation time.
func (r *NominationPostgres) List(ctx context.Context) ([]model.Nomination, error) {
	const q = `
		SELECT ` + repository.NominationColumns + `
		FROM graamys_nominations
		ORDER BY created_at ASC, id ASC
	`
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

// Count returns the number of stored ballots.
func (r *NominationPostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM graamys_nominations`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
