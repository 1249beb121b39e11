package timesheet

import (
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// TIMESHEET DTOs
// ========================================

// PayrollLineItem is one employee's month. Wage is a snapshot from the
// employee directory at aggregation time, not stored with the result.
type PayrollLineItem struct {
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name"`
	TotalMinutes int             `json:"total_minutes"`
	HourlyWage   decimal.Decimal `json:"hourly_wage"`
	Amount       decimal.Decimal `json:"amount"`
}

// DailySummaryLineItem is one (employee, calendar day) with a closed shift.
type DailySummaryLineItem struct {
	Date         string `json:"date"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	WorkMinutes  int    `json:"work_minutes"`
	BreakMinutes int    `json:"break_minutes"`
}

type MonthlyPayrollRequest struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

func (r *MonthlyPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailySummaryRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

func (r *DailySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the inclusive [start 00:00:00, end 23:59:59] window in loc.
// Validate must have passed.
func (r *DailySummaryRequest) Range(loc *time.Location) (time.Time, time.Time) {
	start, _ := time.ParseInLocation("2006-01-02", r.StartDate, loc)
	end, _ := time.ParseInLocation("2006-01-02", r.EndDate, loc)
	return start, end.Add(24*time.Hour - time.Second)
}
