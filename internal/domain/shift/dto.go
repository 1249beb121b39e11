package shift

import (
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type WeekEntry struct {
	WorkDate  string `json:"work_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
}

// SubmitWeekRequest replaces or amends one employee's shifts for a week.
// With Replace set, existing shifts in [week_start, week_start+6d] are wiped
// before the new entries are stored.
type SubmitWeekRequest struct {
	EmployeeCode string      `json:"employee_code"`
	WeekStart    string      `json:"week_start"`
	Replace      bool        `json:"replace,omitempty"`
	Entries      []WeekEntry `json:"entries"`
}

func (r *SubmitWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 8 uppercase letters or digits",
		})
	}

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	for i, e := range r.Entries {
		field := "entries[" + validator.Itoa(i) + "]"

		if _, ok := validator.IsValidDate(e.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".work_date",
				Message: "work_date must be in YYYY-MM-DD format",
			})
		}
		if !validator.IsValidHHMM(e.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start_time",
				Message: "start_time must be in HH:MM format",
			})
			continue
		}
		if !validator.IsValidHHMM(e.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be in HH:MM format",
			})
			continue
		}
		if validator.HHMMToMinutes(e.StartTime) >= validator.HHMMToMinutes(e.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be after start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklyReviewRequest struct {
	WeekStart    string `json:"week_start"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

func (r *WeeklyReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	WorkDate     string `json:"work_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Minutes      int    `json:"minutes"`
	Note         string `json:"note,omitempty"`
}

// EmployeeWeek groups one employee's shifts for the review tree.
type EmployeeWeek struct {
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name"`
	Shifts       []ShiftResponse `json:"shifts"`
	TotalMinutes int             `json:"total_minutes"`
	Total        string          `json:"total"`
}

type WeeklyReviewResponse struct {
	WeekStart        string         `json:"week_start"`
	WeekEnd          string         `json:"week_end"`
	Employees        []EmployeeWeek `json:"employees"`
	WeekTotalMinutes int            `json:"week_total_minutes"`
	WeekTotal        string         `json:"week_total"`
}
