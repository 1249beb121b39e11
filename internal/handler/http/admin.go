package http

import (
	"encoding/json"
	"net/http"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/admin"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandlerImpl{
		adminService: adminService,
	}
}

// Login implements AdminHandler.
func (h *adminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req admin.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Register implements AdminHandler.
func (h *adminHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req admin.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin registered", result)
}

// List implements AdminHandler.
func (h *adminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
