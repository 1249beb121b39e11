package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/report"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	punchService     punch.PunchService
	timesheetService timesheet.TimesheetService
}

// ExportPunchLogCSV implements report.ReportService.
func (r *ReportServiceImpl) ExportPunchLogCSV(ctx context.Context, filter punch.ListEventsFilter) (report.Export, error) {
	resp, err := r.punchService.ListEvents(ctx, filter)
	if err != nil {
		return report.Export{}, err
	}

	records := [][]string{
		{"timestamp", "employee_code", "employee_name", "punch_type"},
	}
	// ListEvents returns newest first; the export reads better oldest first.
	for i := len(resp.Events) - 1; i >= 0; i-- {
		e := resp.Events[i]
		records = append(records, []string{
			e.Timestamp, e.EmployeeCode, e.EmployeeName, string(e.Type),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return report.Export{}, err
	}

	return report.Export{
		Filename:    "punch_log.csv",
		ContentType: report.ContentTypeCSV,
		Data:        data,
	}, nil
}

// ExportDailySummaryCSV implements report.ReportService.
func (r *ReportServiceImpl) ExportDailySummaryCSV(ctx context.Context, req timesheet.DailySummaryRequest) (report.Export, error) {
	items, err := r.timesheetService.CalcDailySummary(ctx, req)
	if err != nil {
		return report.Export{}, err
	}

	records := [][]string{
		{"date", "employee_code", "employee_name", "work_minutes", "break_minutes"},
	}
	for _, item := range items {
		records = append(records, []string{
			item.Date,
			item.EmployeeCode,
			item.EmployeeName,
			fmt.Sprintf("%d", item.WorkMinutes),
			fmt.Sprintf("%d", item.BreakMinutes),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return report.Export{}, err
	}

	return report.Export{
		Filename:    fmt.Sprintf("daily_summary_%s_%s.csv", req.StartDate, req.EndDate),
		ContentType: report.ContentTypeCSV,
		Data:        data,
	}, nil
}

// ExportMonthlyPayrollXLSX implements report.ReportService.
func (r *ReportServiceImpl) ExportMonthlyPayrollXLSX(ctx context.Context, req timesheet.MonthlyPayrollRequest) (report.Export, error) {
	items, err := r.timesheetService.CalcMonthlyPayroll(ctx, req)
	if err != nil {
		return report.Export{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return report.Export{}, fmt.Errorf("failed to rename payroll sheet: %w", err)
	}

	headers := []interface{}{"Employee Code", "Employee Name", "Total Minutes", "Hourly Wage", "Amount"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return report.Export{}, fmt.Errorf("failed to write payroll header: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return report.Export{}, err
		}
		row := []interface{}{
			item.EmployeeCode,
			item.EmployeeName,
			item.TotalMinutes,
			item.HourlyWage.InexactFloat64(),
			item.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return report.Export{}, fmt.Errorf("failed to write payroll row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.Export{}, fmt.Errorf("failed to render payroll workbook: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("payroll_%04d_%02d.xlsx", req.Year, req.Month),
		ContentType: report.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func NewReportService(punchService punch.PunchService, timesheetService timesheet.TimesheetService) report.ReportService {
	return &ReportServiceImpl{
		punchService:     punchService,
		timesheetService: timesheetService,
	}
}
