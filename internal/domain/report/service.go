package report

import (
	"context"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/timesheet"
)

type ReportService interface {
	// ExportPunchLogCSV renders the raw punch log for a range as CSV.
	ExportPunchLogCSV(ctx context.Context, filter punch.ListEventsFilter) (Export, error)

	// ExportDailySummaryCSV renders the per-day work/break totals as CSV.
	ExportDailySummaryCSV(ctx context.Context, req timesheet.DailySummaryRequest) (Export, error)

	// ExportMonthlyPayrollXLSX renders the monthly payroll as a spreadsheet.
	ExportMonthlyPayrollXLSX(ctx context.Context, req timesheet.MonthlyPayrollRequest) (Export, error)
}
