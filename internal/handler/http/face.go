package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/face"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/handler/http/response"
)

type FaceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type faceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &faceHandlerImpl{
		faceService: faceService,
	}
}

// Upload implements FaceHandler.
func (h *faceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Face image is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req := face.UploadImageRequest{
		EmployeeCode: chi.URLParam(r, "code"),
		File:         file,
		FileHeader:   fileHeader,
	}

	result, err := h.faceService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Face image uploaded", result)
}

// List implements FaceHandler.
func (h *faceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.faceService.List(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements FaceHandler.
func (h *faceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.faceService.Delete(r.Context(), chi.URLParam(r, "code"), chi.URLParam(r, "filename"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Face image deleted", nil)
}
