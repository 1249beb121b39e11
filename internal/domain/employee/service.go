package employee

import "context"

type EmployeeService interface {
	// Create registers an employee under a freshly generated unique code.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, code string) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	SetActive(ctx context.Context, code string, active bool) error

	UpdateWage(ctx context.Context, req UpdateWageRequest) error
}
