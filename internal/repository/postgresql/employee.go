package postgresql

import (
	"context"
	"fmt"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (code, name, role, active, hourly_wage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		emp.Code, emp.Name, string(emp.Role), emp.Active, emp.HourlyWage,
	).Scan(&emp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT code, name, role, active, hourly_wage, created_at
		FROM employees
		WHERE code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.Code, &emp.Name, &emp.Role, &emp.Active, &emp.HourlyWage, &emp.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return &emp, nil
}

// ListAll implements employee.EmployeeRepository.
func (e *employeeRepository) ListAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT code, name, role, active, hourly_wage, created_at
		FROM employees
	`
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY code ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.Code, &emp.Name, &emp.Role, &emp.Active, &emp.HourlyWage, &emp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, role = $3, active = $4, hourly_wage = $5
		WHERE code = $1
	`

	tag, err := q.Exec(ctx, query, emp.Code, emp.Name, string(emp.Role), emp.Active, emp.HourlyWage)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetActive implements employee.EmployeeRepository.
func (e *employeeRepository) SetActive(ctx context.Context, code string, active bool) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET active = $2 WHERE code = $1`, code, active)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateWage implements employee.EmployeeRepository.
func (e *employeeRepository) UpdateWage(ctx context.Context, code string, wage decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET hourly_wage = $2 WHERE code = $1`, code, wage)
	if err != nil {
		return fmt.Errorf("failed to update employee wage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
