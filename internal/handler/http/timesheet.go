package http

import (
	"net/http"
	"strconv"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/timesheet"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	MonthlyPayroll(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// MonthlyPayroll implements TimesheetHandler.
func (h *timesheetHandlerImpl) MonthlyPayroll(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	req := timesheet.MonthlyPayrollRequest{
		Year:         year,
		Month:        month,
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	items, err := h.timesheetService.CalcMonthlyPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// DailySummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	req := timesheet.DailySummaryRequest{
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	items, err := h.timesheetService.CalcDailySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
