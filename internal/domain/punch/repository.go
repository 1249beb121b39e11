package punch

import (
	"context"
	"time"
)

// EventRepository is the append-only punch event log. Events are never
// updated or deleted; everything downstream is a replay of this log.
type EventRepository interface {
	// Append records one accepted punch and returns the stored event.
	Append(ctx context.Context, employeeCode string, punchType Type, ts time.Time) (Event, error)

	// GetMostRecent returns the latest event for an employee, or nil if the
	// employee has never punched.
	GetMostRecent(ctx context.Context, employeeCode string) (*Event, error)

	// QueryRange returns all events with start <= timestamp <= end ordered by
	// (timestamp, id) ascending. An empty employeeCode means all employees.
	// The ordering is what makes interval replay well-defined.
	QueryRange(ctx context.Context, start, end time.Time, employeeCode string) ([]Event, error)

	// List returns events for the attendance list screen, newest first.
	List(ctx context.Context, filter ListEventsFilter) ([]Event, error)
}
