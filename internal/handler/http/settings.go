package http

import (
	"encoding/json"
	"net/http"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/settings"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetVision(w http.ResponseWriter, r *http.Request)
	UpdateVision(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetVision implements SettingsHandler.
func (h *settingsHandlerImpl) GetVision(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetVision(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateVision implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateVision(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateVisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateVision(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vision settings updated", result)
}
