package punch

import (
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type PunchRequest struct {
	EmployeeCode string `json:"employee_code"`
	Type         Type   `json:"punch_type"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_type",
			Message: "punch_type must be one of CLOCK_IN, BREAK_START, BREAK_END, CLOCK_OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchResult is the outcome of a punch attempt. OK=false is a normal,
// expected outcome (double click, stale screen), never an error. Allowed
// always carries the set of punch types legal right now so the UI can
// re-enable the correct buttons without a second round-trip.
type PunchResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Allowed []Type `json:"allowed"`
}

// StateResponse describes the derived punch state of one employee.
type StateResponse struct {
	EmployeeCode string `json:"employee_code"`
	LastType     *Type  `json:"last_type"`
	Allowed      []Type `json:"allowed"`
}

type EventResponse struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name,omitempty"`
	Type         Type   `json:"punch_type"`
	TypeLabel    string `json:"punch_type_label"`
	Timestamp    string `json:"timestamp"`
}

// ListEventsFilter narrows the attendance list screen query. Dates are
// inclusive "YYYY-MM-DD" bounds on the local punch timestamp.
type ListEventsFilter struct {
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Limit        int     `json:"limit,omitempty"`
}

func (f *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEventsResponse struct {
	TotalCount int             `json:"total_count"`
	Events     []EventResponse `json:"events"`
}
