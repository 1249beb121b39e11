package timesheet

import (
	"context"
	"sort"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

type TimesheetServiceImpl struct {
	punch.EventRepository
	employee.EmployeeRepository
	location *time.Location
}

// CalcMonthlyPayroll implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) CalcMonthlyPayroll(ctx context.Context, req timesheet.MonthlyPayrollRequest) ([]timesheet.PayrollLineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, t.location)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	events, err := t.EventRepository.QueryRange(ctx, start, end, req.EmployeeCode)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	replay(events, func(shift closedShift) {
		totals[shift.EmployeeCode] += shift.WorkMinutes
	})

	directory, err := t.directory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]timesheet.PayrollLineItem, 0, len(totals))
	for code, minutes := range totals {
		if minutes == 0 {
			continue
		}

		item := timesheet.PayrollLineItem{
			EmployeeCode: code,
			TotalMinutes: minutes,
			HourlyWage:   decimal.Zero,
		}
		if emp, ok := directory[code]; ok {
			item.EmployeeName = emp.Name
			item.HourlyWage = emp.Wage()
		}
		item.Amount = decimal.NewFromInt(int64(minutes)).
			Div(minutesPerHour).
			Mul(item.HourlyWage).
			Round(0)
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})

	return items, nil
}

// CalcDailySummary implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) CalcDailySummary(ctx context.Context, req timesheet.DailySummaryRequest) ([]timesheet.DailySummaryLineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Range(t.location)

	events, err := t.EventRepository.QueryRange(ctx, start, end, req.EmployeeCode)
	if err != nil {
		return nil, err
	}

	type dayKey struct {
		date string
		code string
	}
	type dayTotal struct {
		work int
		brk  int
	}

	totals := make(map[dayKey]*dayTotal)
	replay(events, func(shift closedShift) {
		// A whole shift belongs to the day its clock out falls on, even
		// when the clock in was the previous calendar day.
		key := dayKey{
			date: shift.ClockOut.In(t.location).Format("2006-01-02"),
			code: shift.EmployeeCode,
		}
		total, ok := totals[key]
		if !ok {
			total = &dayTotal{}
			totals[key] = total
		}
		total.work += shift.WorkMinutes
		total.brk += shift.BreakMinutes
	})

	directory, err := t.directory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]timesheet.DailySummaryLineItem, 0, len(totals))
	for key, total := range totals {
		item := timesheet.DailySummaryLineItem{
			Date:         key.date,
			EmployeeCode: key.code,
			WorkMinutes:  total.work,
			BreakMinutes: total.brk,
		}
		if emp, ok := directory[key.code]; ok {
			item.EmployeeName = emp.Name
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].EmployeeCode < items[j].EmployeeCode
	})

	return items, nil
}

func (t *TimesheetServiceImpl) directory(ctx context.Context) (map[string]employee.Employee, error) {
	employees, err := t.EmployeeRepository.ListAll(ctx, false)
	if err != nil {
		return nil, err
	}

	directory := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		directory[emp.Code] = emp
	}
	return directory, nil
}

func NewTimesheetService(
	eventRepository punch.EventRepository,
	employeeRepository employee.EmployeeRepository,
	location *time.Location,
) timesheet.TimesheetService {
	if location == nil {
		location = time.Local
	}
	return &TimesheetServiceImpl{
		EventRepository:    eventRepository,
		EmployeeRepository: employeeRepository,
		location:           location,
	}
}
