package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type PunchHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Punch implements PunchHandler.
func (h *punchHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req punch.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// A rejected punch is still a 200: the result payload carries ok=false
	// plus the buttons the kiosk should re-enable.
	response.Success(w, result)
}

// State implements PunchHandler.
func (h *punchHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	employeeCode := chi.URLParam(r, "code")

	state, err := h.punchService.State(r.Context(), employeeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// List implements PunchHandler.
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		filter.Limit = limit
	}

	result, err := h.punchService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
