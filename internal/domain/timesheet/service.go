package timesheet

import "context"

// TimesheetService replays the punch event log into aggregates. It shares
// only the event vocabulary with the punch guard; at replay time it must
// tolerate malformed or legacy data instead of trusting the guard.
type TimesheetService interface {
	// CalcMonthlyPayroll replays the full calendar month and returns one line
	// per employee with nonzero worked minutes, sorted by amount descending.
	CalcMonthlyPayroll(ctx context.Context, req MonthlyPayrollRequest) ([]PayrollLineItem, error)

	// CalcDailySummary replays the date range and returns one line per
	// (employee, day-of-clock-out), sorted by date then employee code.
	CalcDailySummary(ctx context.Context, req DailySummaryRequest) ([]DailySummaryLineItem, error)
}
