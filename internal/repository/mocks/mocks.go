package mocks

import (
	"context"

	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/domain/schedule"
	"github.com/stretchr/testify/mock"
)

// EntryRepository is a mock time entry store. It satisfies entry.Repository,
// catalog.Repository and report.HistoryRepository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Create(ctx context.Context, e *entry.TimeEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *EntryRepository) Get(ctx context.Context, id string) (*entry.TimeEntry, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*entry.TimeEntry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) Update(ctx context.Context, e *entry.TimeEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *EntryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EntryRepository) ListByMemberAndRange(ctx context.Context, memberID, fromDay, toDay string) ([]entry.TimeEntry, error) {
	args := m.Called(ctx, memberID, fromDay, toDay)
	if list, ok := args.Get(0).([]entry.TimeEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) ListAllByMember(ctx context.Context, memberID string) ([]entry.TimeEntry, error) {
	args := m.Called(ctx, memberID)
	if list, ok := args.Get(0).([]entry.TimeEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) DistinctProjectLabels(ctx context.Context, memberID string) ([]string, error) {
	args := m.Called(ctx, memberID)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) BulkRename(ctx context.Context, memberID, field, oldLabel, newLabel string) (int64, error) {
	args := m.Called(ctx, memberID, field, oldLabel, newLabel)
	return args.Get(0).(int64), args.Error(1)
}

// EventRepository is a mock event directory.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) EventIDsForMember(ctx context.Context, memberID string, role schedule.Role) ([]string, error) {
	args := m.Called(ctx, memberID, role)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) FetchEvents(ctx context.Context, ids []string) ([]schedule.Event, error) {
	args := m.Called(ctx, ids)
	if list, ok := args.Get(0).([]schedule.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ClosureRepository is a mock closure directory.
type ClosureRepository struct {
	mock.Mock
}

func (m *ClosureRepository) ListOverlapping(ctx context.Context, fromDay, toDay string) ([]schedule.Closure, error) {
	args := m.Called(ctx, fromDay, toDay)
	if list, ok := args.Get(0).([]schedule.Closure); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
