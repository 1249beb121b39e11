package shift

import (
	"context"
	"testing"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftRepository struct {
	nextID int64
	shifts map[int64]shift.Shift
}

var _ shift.ShiftRepository = (*fakeShiftRepository)(nil)

func newFakeShiftRepository() *fakeShiftRepository {
	return &fakeShiftRepository{shifts: make(map[int64]shift.Shift)}
}

func (f *fakeShiftRepository) Upsert(ctx context.Context, sh shift.Shift) (int64, error) {
	if sh.ID == 0 {
		f.nextID++
		sh.ID = f.nextID
	} else if _, ok := f.shifts[sh.ID]; !ok {
		return 0, shift.ErrShiftNotFound
	}
	f.shifts[sh.ID] = sh
	return sh.ID, nil
}

func (f *fakeShiftRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepository) DeleteRange(ctx context.Context, employeeCode, startDate, endDate string) error {
	for id, sh := range f.shifts {
		if sh.EmployeeCode == employeeCode && sh.WorkDate >= startDate && sh.WorkDate <= endDate {
			delete(f.shifts, id)
		}
	}
	return nil
}

func (f *fakeShiftRepository) ListByRange(ctx context.Context, startDate, endDate, employeeCode string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, sh := range f.shifts {
		if sh.WorkDate < startDate || sh.WorkDate > endDate {
			continue
		}
		if employeeCode != "" && sh.EmployeeCode != employeeCode {
			continue
		}
		out = append(out, sh)
	}
	return out, nil
}

func TestSubmitWeek(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(nil, repo)

	responses, err := svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "17:00"},
			{WorkDate: "2024-01-16", StartTime: "10:00", EndTime: "14:30"},
		},
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 480, responses[0].Minutes)
	assert.Equal(t, 270, responses[1].Minutes)
	assert.Len(t, repo.shifts, 2)
}

func TestSubmitWeekReplace(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(nil, repo)

	_, err := svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)

	_, err = svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Replace:      true,
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-16", StartTime: "12:00", EndTime: "18:00"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, repo.shifts, 1)

	// Another employee's week is untouched by Replace.
	_, err = svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "BBBB0002",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)

	_, err = svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Replace:      true,
		Entries:      nil,
	})
	require.NoError(t, err)
	assert.Len(t, repo.shifts, 1)
}

func TestSubmitWeekValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewShiftService(nil, newFakeShiftRepository())

	_, err := svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "bad",
		WeekStart:    "2024-01-15",
	})
	assert.Error(t, err)

	_, err = svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "17:00", EndTime: "09:00"},
		},
	})
	assert.Error(t, err)

	_, err = svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "9am", EndTime: "17:00"},
		},
	})
	assert.Error(t, err)
}

func TestWeeklyReview(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(nil, repo)

	for _, req := range []shift.SubmitWeekRequest{
		{
			EmployeeCode: "BBBB0002",
			WeekStart:    "2024-01-15",
			Entries: []shift.WeekEntry{
				{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00"},
			},
		},
		{
			EmployeeCode: "AAAA0001",
			WeekStart:    "2024-01-15",
			Entries: []shift.WeekEntry{
				{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "17:00"},
				{WorkDate: "2024-01-21", StartTime: "10:00", EndTime: "12:30"},
			},
		},
	} {
		_, err := svc.SubmitWeek(ctx, req)
		require.NoError(t, err)
	}

	review, err := svc.WeeklyReview(ctx, shift.WeeklyReviewRequest{WeekStart: "2024-01-15"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", review.WeekStart)
	assert.Equal(t, "2024-01-21", review.WeekEnd)
	require.Len(t, review.Employees, 2)

	// Sorted by employee code.
	assert.Equal(t, "AAAA0001", review.Employees[0].EmployeeCode)
	assert.Equal(t, 630, review.Employees[0].TotalMinutes)
	assert.Equal(t, "10:30", review.Employees[0].Total)
	assert.Equal(t, "BBBB0002", review.Employees[1].EmployeeCode)
	assert.Equal(t, 180, review.Employees[1].TotalMinutes)
	assert.Equal(t, "3:00", review.Employees[1].Total)

	assert.Equal(t, 810, review.WeekTotalMinutes)
	assert.Equal(t, "13:30", review.WeekTotal)
}

func TestWeeklyReviewExcludesOtherWeeks(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(nil, repo)

	_, err := svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-22",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-22", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)

	review, err := svc.WeeklyReview(ctx, shift.WeeklyReviewRequest{WeekStart: "2024-01-15"})
	require.NoError(t, err)
	assert.Empty(t, review.Employees)
	assert.Equal(t, 0, review.WeekTotalMinutes)
}

func TestDeleteShift(t *testing.T) {
	ctx := context.Background()
	repo := newFakeShiftRepository()
	svc := NewShiftService(nil, repo)

	responses, err := svc.SubmitWeek(ctx, shift.SubmitWeekRequest{
		EmployeeCode: "AAAA0001",
		WeekStart:    "2024-01-15",
		Entries: []shift.WeekEntry{
			{WorkDate: "2024-01-15", StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, responses[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, responses[0].ID), shift.ErrShiftNotFound)
}
