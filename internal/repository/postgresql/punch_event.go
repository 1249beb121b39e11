package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchEventRepository struct {
	db *database.DB
}

// Append implements punch.EventRepository.
func (p *punchEventRepository) Append(ctx context.Context, employeeCode string, punchType punch.Type, ts time.Time) (punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punch_events (employee_code, punch_type, ts)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	event := punch.Event{
		EmployeeCode: employeeCode,
		Type:         punchType,
		Timestamp:    ts,
	}
	if err := q.QueryRow(ctx, query, employeeCode, string(punchType), ts).Scan(&event.ID); err != nil {
		return punch.Event{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	return event, nil
}

// GetMostRecent implements punch.EventRepository.
func (p *punchEventRepository) GetMostRecent(ctx context.Context, employeeCode string) (*punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, punch_type, ts
		FROM punch_events
		WHERE employee_code = $1
		ORDER BY ts DESC, id DESC
		LIMIT 1
	`

	var event punch.Event
	err := q.QueryRow(ctx, query, employeeCode).Scan(
		&event.ID, &event.EmployeeCode, &event.Type, &event.Timestamp,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Employee has never punched
		}
		return nil, fmt.Errorf("failed to get most recent punch event: %w", err)
	}

	return &event, nil
}

// QueryRange implements punch.EventRepository.
func (p *punchEventRepository) QueryRange(ctx context.Context, start, end time.Time, employeeCode string) ([]punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	baseWhere := "ts >= $1 AND ts <= $2"
	args := []interface{}{start, end}

	if employeeCode != "" {
		baseWhere += " AND employee_code = $3"
		args = append(args, employeeCode)
	}

	// (ts, id) ascending is what makes the interval replay well-defined.
	query := `
		SELECT id, employee_code, punch_type, ts
		FROM punch_events
		WHERE ` + baseWhere + `
		ORDER BY ts ASC, id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var event punch.Event
		if err := rows.Scan(&event.ID, &event.EmployeeCode, &event.Type, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// List implements punch.EventRepository.
func (p *punchEventRepository) List(ctx context.Context, filter punch.ListEventsFilter) ([]punch.Event, error) {
	q := GetQuerier(ctx, p.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND p.ts >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND p.ts < $%d::date + interval '1 day'", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_code = $%d", argIdx)
		args = append(args, *filter.EmployeeCode)
		argIdx++
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 2000
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_code, p.punch_type, p.ts,
			   e.name AS employee_name
		FROM punch_events p
		LEFT JOIN employees e ON e.code = p.employee_code
		WHERE %s
		ORDER BY p.ts DESC, p.id DESC
		LIMIT $%d
	`, baseWhere, argIdx)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var event punch.Event
		if err := rows.Scan(&event.ID, &event.EmployeeCode, &event.Type, &event.Timestamp, &event.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func NewPunchEventRepository(db *database.DB) punch.EventRepository {
	return &punchEventRepository{db: db}
}
