package shift

import (
	"context"
	"sort"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/shift"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
}

// SubmitWeek implements shift.ShiftService.
func (s *ShiftServiceImpl) SubmitWeek(ctx context.Context, req shift.SubmitWeekRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	weekStart, weekEnd := weekBounds(req.WeekStart)

	// Wiping the old week and storing the new one is all-or-nothing.
	var responses []shift.ShiftResponse
	err := s.runInTx(ctx, func(ctx context.Context) error {
		if req.Replace {
			if err := s.ShiftRepository.DeleteRange(ctx, req.EmployeeCode, weekStart, weekEnd); err != nil {
				return err
			}
		}

		responses = make([]shift.ShiftResponse, 0, len(req.Entries))
		for _, entry := range req.Entries {
			sh := shift.Shift{
				EmployeeCode: req.EmployeeCode,
				WorkDate:     entry.WorkDate,
				StartTime:    entry.StartTime,
				EndTime:      entry.EndTime,
				Note:         entry.Note,
			}
			id, err := s.ShiftRepository.Upsert(ctx, sh)
			if err != nil {
				return err
			}
			sh.ID = id
			responses = append(responses, toResponse(sh))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

func (s *ShiftServiceImpl) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}

// ListRange implements shift.ShiftService.
func (s *ShiftServiceImpl) ListRange(ctx context.Context, startDate, endDate, employeeCode string) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByRange(ctx, startDate, endDate, employeeCode)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toResponse(sh))
	}
	return responses, nil
}

// WeeklyReview implements shift.ShiftService.
func (s *ShiftServiceImpl) WeeklyReview(ctx context.Context, req shift.WeeklyReviewRequest) (shift.WeeklyReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.WeeklyReviewResponse{}, err
	}

	weekStart, weekEnd := weekBounds(req.WeekStart)

	shifts, err := s.ShiftRepository.ListByRange(ctx, weekStart, weekEnd, req.EmployeeCode)
	if err != nil {
		return shift.WeeklyReviewResponse{}, err
	}

	byEmployee := make(map[string]*shift.EmployeeWeek)
	weekTotal := 0
	for _, sh := range shifts {
		week, ok := byEmployee[sh.EmployeeCode]
		if !ok {
			week = &shift.EmployeeWeek{EmployeeCode: sh.EmployeeCode}
			if sh.EmployeeName != nil {
				week.EmployeeName = *sh.EmployeeName
			}
			byEmployee[sh.EmployeeCode] = week
		}

		resp := toResponse(sh)
		week.Shifts = append(week.Shifts, resp)
		week.TotalMinutes += resp.Minutes
		weekTotal += resp.Minutes
	}

	employees := make([]shift.EmployeeWeek, 0, len(byEmployee))
	for _, week := range byEmployee {
		week.Total = validator.MinutesToHHMM(week.TotalMinutes)
		employees = append(employees, *week)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeCode < employees[j].EmployeeCode
	})

	return shift.WeeklyReviewResponse{
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		Employees:        employees,
		WeekTotalMinutes: weekTotal,
		WeekTotal:        validator.MinutesToHHMM(weekTotal),
	}, nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.ShiftRepository.Delete(ctx, id)
}

// weekBounds expands a validated week start date into its [start, start+6d]
// date-string pair.
func weekBounds(weekStart string) (string, string) {
	start, _ := time.Parse("2006-01-02", weekStart)
	return weekStart, start.AddDate(0, 0, 6).Format("2006-01-02")
}

func toResponse(sh shift.Shift) shift.ShiftResponse {
	minutes := validator.HHMMToMinutes(sh.EndTime) - validator.HHMMToMinutes(sh.StartTime)
	if minutes < 0 {
		minutes = 0
	}
	return shift.ShiftResponse{
		ID:           sh.ID,
		EmployeeCode: sh.EmployeeCode,
		WorkDate:     sh.WorkDate,
		StartTime:    sh.StartTime,
		EndTime:      sh.EndTime,
		Minutes:      minutes,
		Note:         sh.Note,
	}
}

func NewShiftService(db *database.DB, shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{db: db, ShiftRepository: shiftRepository}
}
