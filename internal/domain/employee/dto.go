package employee

import (
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	Role       Role             `json:"role,omitempty"`
	HourlyWage *decimal.Decimal `json:"hourly_wage,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Role != "" && r.Role != RoleUser && r.Role != RoleStaff {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be USER or STAFF",
		})
	}

	if r.HourlyWage != nil && r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Code       string           `json:"-"`
	Name       string           `json:"name"`
	Role       Role             `json:"role"`
	Active     bool             `json:"active"`
	HourlyWage *decimal.Decimal `json:"hourly_wage,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 8 uppercase letters or digits",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Role != RoleUser && r.Role != RoleStaff {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be USER or STAFF",
		})
	}

	if r.HourlyWage != nil && r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWageRequest struct {
	Code       string          `json:"-"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
}

func (r *UpdateWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 8 uppercase letters or digits",
		})
	}

	if r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	Active     bool            `json:"active"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	CreatedAt  string          `json:"created_at"`
}
