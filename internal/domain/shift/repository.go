package shift

import "context"

type ShiftRepository interface {
	// Upsert inserts sh when its ID is zero, otherwise updates it. The stored
	// id is returned either way.
	Upsert(ctx context.Context, sh Shift) (int64, error)

	Delete(ctx context.Context, id int64) error

	// DeleteRange removes one employee's shifts with work_date in
	// [startDate, endDate], used when a week is resubmitted.
	DeleteRange(ctx context.Context, employeeCode, startDate, endDate string) error

	// ListByRange returns shifts with work_date in [startDate, endDate]
	// ordered by (work_date, start_time). Empty employeeCode means everyone.
	ListByRange(ctx context.Context, startDate, endDate, employeeCode string) ([]Shift, error)
}
