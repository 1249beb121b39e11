package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository is the employee directory. Payroll aggregation reads
// ListAll for wage snapshots; everything else backs the management screens.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error

	// GetByCode returns ErrEmployeeNotFound when no employee matches.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// ListAll returns employees ordered by code. With activeOnly false it
	// includes deactivated employees, which payroll still needs for wage
	// lookups on historical punches.
	ListAll(ctx context.Context, activeOnly bool) ([]Employee, error)

	Update(ctx context.Context, emp *Employee) error

	SetActive(ctx context.Context, code string, active bool) error

	UpdateWage(ctx context.Context, code string, wage decimal.Decimal) error
}
