package repository

import (
	"context"

	"clubsite/internal/model"
)

// NominationRepository defines data access for Graamys ballots using SQL queries only.
// Ballots are append-only: there is no update or delete.
type NominationRepository interface {
	// Create inserts a ballot. ID and CreatedAt must be set by the caller.
	// Returns the stored row.
	Create(ctx context.Context, n *model.Nomination) (*model.Nomination, error)

	// List returns every ballot, oldest first.
	List(ctx context.Context) ([]model.Nomination, error)

	// Count returns the number of stored ballots.
	Count(ctx context.Context) (int, error)
}

// NominationColumns is the column list shared by every SQL implementation, in scan order.
const NominationColumns = `id, best_dancer, best_athlete, funniest_member, best_dressed, most_spirited,
		rising_star, best_duo, most_valuable_member, life_of_the_party, created_at`

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanNomination reads one row selected with NominationColumns.
func ScanNomination(s Scanner) (model.Nomination, error) {
	var n model.Nomination
	err := s.Scan(
		&n.ID,
		&n.BestDancer,
		&n.BestAthlete,
		&n.FunniestMember,
		&n.BestDressed,
		&n.MostSpirited,
		&n.RisingStar,
		&n.BestDuo,
		&n.MostValuableMember,
		&n.LifeOfTheParty,
		&n.CreatedAt,
	)
	return n, err
}

// NominationArgs returns the insert arguments in NominationColumns order.
func NominationArgs(n *model.Nomination) []any {
	return []any{
		n.ID,
		n.BestDancer,
		n.BestAthlete,
		n.FunniestMember,
		n.BestDressed,
		n.MostSpirited,
		n.RisingStar,
		n.BestDuo,
		n.MostValuableMember,
		n.LifeOfTheParty,
		n.CreatedAt,
	}
}
