package entry

import "context"

// Repository provides persistence for ledger entries.
type Repository interface {
	Create(ctx context.Context, e *TimeEntry) error
	Get(ctx context.Context, id string) (*TimeEntry, error)
	Update(ctx context.Context, e *TimeEntry) error
	Delete(ctx context.Context, id string) error
	ListByMemberAndRange(ctx context.Context, memberID, fromDay, toDay string) ([]TimeEntry, error)
}
