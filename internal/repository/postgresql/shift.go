package postgresql

import (
	"context"
	"fmt"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/shift"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

// Upsert implements shift.ShiftRepository.
func (s *shiftRepository) Upsert(ctx context.Context, sh shift.Shift) (int64, error) {
	q := GetQuerier(ctx, s.db)

	if sh.ID == 0 {
		query := `
			INSERT INTO shifts (employee_code, work_date, start_time, end_time, note)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		var id int64
		err := q.QueryRow(ctx, query,
			sh.EmployeeCode, sh.WorkDate, sh.StartTime, sh.EndTime, sh.Note,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert shift: %w", err)
		}
		return id, nil
	}

	query := `
		UPDATE shifts
		SET employee_code = $2, work_date = $3, start_time = $4, end_time = $5,
			note = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		sh.ID, sh.EmployeeCode, sh.WorkDate, sh.StartTime, sh.EndTime, sh.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, shift.ErrShiftNotFound
	}

	return sh.ID, nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// DeleteRange implements shift.ShiftRepository.
func (s *shiftRepository) DeleteRange(ctx context.Context, employeeCode, startDate, endDate string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		DELETE FROM shifts
		WHERE employee_code = $1 AND work_date >= $2 AND work_date <= $3
	`

	if _, err := q.Exec(ctx, query, employeeCode, startDate, endDate); err != nil {
		return fmt.Errorf("failed to delete shift range: %w", err)
	}

	return nil
}

// ListByRange implements shift.ShiftRepository.
func (s *shiftRepository) ListByRange(ctx context.Context, startDate, endDate, employeeCode string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	baseWhere := "s.work_date >= $1 AND s.work_date <= $2"
	args := []interface{}{startDate, endDate}

	if employeeCode != "" {
		baseWhere += " AND s.employee_code = $3"
		args = append(args, employeeCode)
	}

	query := `
		SELECT s.id, s.employee_code, s.work_date, s.start_time, s.end_time,
			   s.note, s.created_at, s.updated_at,
			   e.name AS employee_name
		FROM shifts s
		LEFT JOIN employees e ON e.code = s.employee_code
		WHERE ` + baseWhere + `
		ORDER BY s.work_date ASC, s.start_time ASC, s.id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		err := rows.Scan(
			&sh.ID, &sh.EmployeeCode, &sh.WorkDate, &sh.StartTime, &sh.EndTime,
			&sh.Note, &sh.CreatedAt, &sh.UpdatedAt, &sh.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}
