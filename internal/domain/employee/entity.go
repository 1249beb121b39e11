package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	Code       string
	Name       string
	Role       Role
	Active     bool
	HourlyWage *decimal.Decimal
	CreatedAt  time.Time
}

type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
)

// Wage returns the hourly wage, treating an unset wage as zero so payroll
// can still list the employee instead of dropping them.
func (e Employee) Wage() decimal.Decimal {
	if e.HourlyWage == nil {
		return decimal.Zero
	}
	return *e.HourlyWage
}
