package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPunchService struct {
	lastRequest punch.PunchRequest
	result      punch.PunchResult
	state       punch.StateResponse
	events      punch.ListEventsResponse
	err         error
}

func (s *stubPunchService) LastState(ctx context.Context, employeeCode string) (*punch.Type, error) {
	return s.state.LastType, s.err
}

func (s *stubPunchService) AllowedNext(last *punch.Type) []punch.Type {
	return punch.AllowedNext(last)
}

func (s *stubPunchService) CanPunch(ctx context.Context, employeeCode string, punchType punch.Type) (punch.PunchResult, error) {
	return s.result, s.err
}

func (s *stubPunchService) Punch(ctx context.Context, req punch.PunchRequest) (punch.PunchResult, error) {
	s.lastRequest = req
	return s.result, s.err
}

func (s *stubPunchService) State(ctx context.Context, employeeCode string) (punch.StateResponse, error) {
	return s.state, s.err
}

func (s *stubPunchService) ListEvents(ctx context.Context, filter punch.ListEventsFilter) (punch.ListEventsResponse, error) {
	return s.events, s.err
}

func newPunchRouter(svc punch.PunchService) *chi.Mux {
	h := NewPunchHandler(svc)
	r := chi.NewRouter()
	r.Post("/punches", h.Punch)
	r.Get("/punches/state/{code}", h.State)
	r.Get("/punches/log", h.List)
	return r
}

func TestPunchEndpointAccepted(t *testing.T) {
	svc := &stubPunchService{
		result: punch.PunchResult{
			OK:      true,
			Message: "recorded clock in",
			Allowed: []punch.Type{punch.TypeBreakStart, punch.TypeClockOut},
		},
	}
	router := newPunchRouter(svc)

	body, _ := json.Marshal(punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AAAA0001", svc.lastRequest.EmployeeCode)
	assert.Equal(t, punch.TypeClockIn, svc.lastRequest.Type)

	var resp struct {
		Success bool              `json:"success"`
		Data    punch.PunchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.OK)
}

func TestPunchEndpointRejectedIsStillOK(t *testing.T) {
	svc := &stubPunchService{
		result: punch.PunchResult{
			OK:      false,
			Message: "cannot clock in after clock in (next: break start or clock out)",
			Allowed: []punch.Type{punch.TypeBreakStart, punch.TypeClockOut},
		},
	}
	router := newPunchRouter(svc)

	body, _ := json.Marshal(punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    punch.PunchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.OK)
	assert.NotEmpty(t, resp.Data.Allowed)
}

func TestPunchEndpointBadJSON(t *testing.T) {
	router := newPunchRouter(&stubPunchService{})

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStateEndpoint(t *testing.T) {
	last := punch.TypeClockIn
	svc := &stubPunchService{
		state: punch.StateResponse{
			EmployeeCode: "AAAA0001",
			LastType:     &last,
			Allowed:      []punch.Type{punch.TypeBreakStart, punch.TypeClockOut},
		},
	}
	router := newPunchRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/punches/state/AAAA0001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data punch.StateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AAAA0001", resp.Data.EmployeeCode)
	require.NotNil(t, resp.Data.LastType)
	assert.Equal(t, punch.TypeClockIn, *resp.Data.LastType)
}

func TestListEndpointBadLimit(t *testing.T) {
	router := newPunchRouter(&stubPunchService{})

	req := httptest.NewRequest(http.MethodGet, "/punches/log?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
