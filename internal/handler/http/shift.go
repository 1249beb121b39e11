package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/shift"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type ShiftHandler interface {
	SubmitWeek(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	WeeklyReview(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// SubmitWeek implements ShiftHandler.
func (h *shiftHandlerImpl) SubmitWeek(w http.ResponseWriter, r *http.Request) {
	var req shift.SubmitWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.SubmitWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift wishes submitted", result)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListRange(
		r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
		r.URL.Query().Get("employee_code"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WeeklyReview implements ShiftHandler.
func (h *shiftHandlerImpl) WeeklyReview(w http.ResponseWriter, r *http.Request) {
	req := shift.WeeklyReviewRequest{
		WeekStart:    r.URL.Query().Get("week_start"),
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	result, err := h.shiftService.WeeklyReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid shift ID", nil)
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
