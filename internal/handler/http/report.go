package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/report"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/timesheet"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportPunchLog(w http.ResponseWriter, r *http.Request)
	ExportDailySummary(w http.ResponseWriter, r *http.Request)
	ExportMonthlyPayroll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportPunchLog handles GET /reports/punch-log
func (h *reportHandlerImpl) ExportPunchLog(w http.ResponseWriter, r *http.Request) {
	filter := punch.ListEventsFilter{}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("employee_code"); v != "" {
		filter.EmployeeCode = &v
	}

	export, err := h.reportService.ExportPunchLogCSV(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportDailySummary handles GET /reports/daily-summary
func (h *reportHandlerImpl) ExportDailySummary(w http.ResponseWriter, r *http.Request) {
	req := timesheet.DailySummaryRequest{
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	export, err := h.reportService.ExportDailySummaryCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportMonthlyPayroll handles GET /reports/payroll
func (h *reportHandlerImpl) ExportMonthlyPayroll(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	req := timesheet.MonthlyPayrollRequest{
		Year:         year,
		Month:        month,
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	export, err := h.reportService.ExportMonthlyPayrollXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
