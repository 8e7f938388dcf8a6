package sqlite

import (
	"context"
	"fmt"

	"github.com/mverbist/hourbook/internal/domain/schedule"
)

// ClosureRepository is the SQLite-backed closure directory. It satisfies
// schedule.ClosureDirectory.
type ClosureRepository struct {
	db *DB
}

// NewClosureRepository creates a new ClosureRepository
func NewClosureRepository(db *DB) *ClosureRepository {
	return &ClosureRepository{db: db}
}

// ListOverlapping returns closures whose inclusive day range overlaps
// [fromDay, toDay], ordered by start date
func (r *ClosureRepository) ListOverlapping(ctx context.Context, fromDay, toDay string) ([]schedule.Closure, error) {
	query := `
		SELECT id, start_date, end_date, description, cover_id
		FROM closures
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, toDay, fromDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list closures: %w", err)
	}
	defer rows.Close()

	var closures []schedule.Closure
	for rows.Next() {
		var c schedule.Closure
		if err := rows.Scan(&c.ID, &c.StartDate, &c.EndDate, &c.Description, &c.CoverID); err != nil {
			return nil, fmt.Errorf("failed to scan closure: %w", err)
		}
		closures = append(closures, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closure rows: %w", err)
	}
	return closures, nil
}
