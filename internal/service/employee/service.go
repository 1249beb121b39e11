package employee

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
)

const (
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength      = 8
	codeMaxAttempts = 10
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = employee.RoleUser
	}

	code, err := e.generateUniqueCode(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := &employee.Employee{
		Code:       code,
		Name:       req.Name,
		Role:       role,
		Active:     true,
		HourlyWage: req.HourlyWage,
	}
	if err := e.EmployeeRepository.Create(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(*emp), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(*emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.ListAll(ctx, false)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByCode(ctx, req.Code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.Role = req.Role
	emp.Active = req.Active
	if req.HourlyWage != nil {
		emp.HourlyWage = req.HourlyWage
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(*emp), nil
}

// SetActive implements employee.EmployeeService.
func (e *EmployeeServiceImpl) SetActive(ctx context.Context, code string, active bool) error {
	return e.EmployeeRepository.SetActive(ctx, code, active)
}

// UpdateWage implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateWage(ctx context.Context, req employee.UpdateWageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return e.EmployeeRepository.UpdateWage(ctx, req.Code, req.HourlyWage)
}

// generateUniqueCode draws random 8-character codes until one is free.
func (e *EmployeeServiceImpl) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeMaxAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		_, err = e.EmployeeRepository.GetByCode(ctx, code)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", employee.ErrCodeGeneration
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate employee code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		Code:       emp.Code,
		Name:       emp.Name,
		Role:       emp.Role,
		Active:     emp.Active,
		HourlyWage: emp.Wage(),
		CreatedAt:  emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}
