package shift

import "context"

type ShiftService interface {
	// SubmitWeek stores one employee's shift wishes for a week.
	SubmitWeek(ctx context.Context, req SubmitWeekRequest) ([]ShiftResponse, error)

	// ListRange returns raw shift rows for a date range.
	ListRange(ctx context.Context, startDate, endDate, employeeCode string) ([]ShiftResponse, error)

	// WeeklyReview groups a week's shifts per employee with minute totals.
	WeeklyReview(ctx context.Context, req WeeklyReviewRequest) (WeeklyReviewResponse, error)

	Delete(ctx context.Context, id int64) error
}
