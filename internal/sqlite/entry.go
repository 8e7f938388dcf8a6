package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/repository"
)

// EntryRepository is the SQLite-backed time entry store. It satisfies
// entry.Repository, catalog.Repository and report.HistoryRepository.
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `
	id, member_id, task_label, task_key, project_label,
	activity_date, start_time, end_time, duration_minutes,
	recorded_by, created_at, updated_at
`

// Create inserts a new time entry
func (r *EntryRepository) Create(ctx context.Context, e *entry.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.MemberID,
		e.TaskLabel,
		e.TaskKey,
		e.ProjectLabel,
		e.ActivityDate,
		e.StartTime,
		e.EndTime,
		e.DurationMinutes,
		e.RecordedBy,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// Get retrieves a time entry by ID
func (r *EntryRepository) Get(ctx context.Context, id string) (*entry.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`

	var e entry.TimeEntry
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.MemberID,
		&e.TaskLabel,
		&e.TaskKey,
		&e.ProjectLabel,
		&e.ActivityDate,
		&e.StartTime,
		&e.EndTime,
		&e.DurationMinutes,
		&e.RecordedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &e, nil
}

// Update overwrites a time entry. Last write wins; there is no version
// column on the row.
func (r *EntryRepository) Update(ctx context.Context, e *entry.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET task_label = ?, task_key = ?, project_label = ?,
		    activity_date = ?, start_time = ?, end_time = ?,
		    duration_minutes = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		e.TaskLabel,
		e.TaskKey,
		e.ProjectLabel,
		e.ActivityDate,
		e.StartTime,
		e.EndTime,
		e.DurationMinutes,
		e.UpdatedAt,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a time entry
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByMemberAndRange returns a member's entries whose activity date falls
// inside [fromDay, toDay] inclusive, oldest day first
func (r *EntryRepository) ListByMemberAndRange(ctx context.Context, memberID, fromDay, toDay string) ([]entry.TimeEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE member_id = ? AND activity_date >= ? AND activity_date <= ?
		ORDER BY activity_date ASC, start_time ASC
	`
	return r.queryEntries(ctx, query, memberID, fromDay, toDay)
}

// ListAllByMember returns a member's entire ledger history
func (r *EntryRepository) ListAllByMember(ctx context.Context, memberID string) ([]entry.TimeEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE member_id = ?
		ORDER BY activity_date ASC, start_time ASC
	`
	return r.queryEntries(ctx, query, memberID)
}

// DistinctProjectLabels returns the distinct non-empty project labels a
// member has ever used, sorted
func (r *EntryRepository) DistinctProjectLabels(ctx context.Context, memberID string) ([]string, error) {
	query := `
		SELECT DISTINCT project_label
		FROM time_entries
		WHERE member_id = ? AND project_label != ''
		ORDER BY project_label ASC
	`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan project label: %w", err)
		}
		labels = append(labels, label)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label rows: %w", err)
	}
	return labels, nil
}

// BulkRename rewrites one label field across all of a member's matching
// entries in a single UPDATE, so concurrent requests never observe a
// half-renamed history. Only the two label fields are accepted.
func (r *EntryRepository) BulkRename(ctx context.Context, memberID, field, oldLabel, newLabel string) (int64, error) {
	var query string
	switch field {
	case catalog.FieldProject:
		query = `UPDATE time_entries SET project_label = ? WHERE member_id = ? AND project_label = ?`
	case catalog.FieldTask:
		query = `UPDATE time_entries SET task_label = ? WHERE member_id = ? AND task_label = ?`
	default:
		return 0, fmt.Errorf("bulk rename field %q: %w", field, repository.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx, query, newLabel, memberID, oldLabel)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk rename: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return count, nil
}

func (r *EntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]entry.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.TimeEntry
	for rows.Next() {
		var e entry.TimeEntry
		err := rows.Scan(
			&e.ID,
			&e.MemberID,
			&e.TaskLabel,
			&e.TaskKey,
			&e.ProjectLabel,
			&e.ActivityDate,
			&e.StartTime,
			&e.EndTime,
			&e.DurationMinutes,
			&e.RecordedBy,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}
