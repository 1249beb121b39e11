package face

import (
	"mime/multipart"
	"strings"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
)

// ========================================
// FACE IMAGE DTOs
// ========================================

type UploadImageRequest struct {
	EmployeeCode string                `json:"employee_code"`
	File         multipart.File        `json:"-"`
	FileHeader   *multipart.FileHeader `json:"-"`
}

func (r *UploadImageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 8 uppercase letters or digits",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "face image is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "face image size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImageResponse struct {
	EmployeeCode string `json:"employee_code"`
	Path         string `json:"path"`
	URL          string `json:"url"`
}

type ListImagesResponse struct {
	EmployeeCode string          `json:"employee_code"`
	Images       []ImageResponse `json:"images"`
}
