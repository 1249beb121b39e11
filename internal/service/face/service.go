package face

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/face"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/storage"
)

type FaceServiceImpl struct {
	employee.EmployeeRepository
	fileStorage storage.FileStorage
}

// Upload implements face.FaceService.
func (f *FaceServiceImpl) Upload(ctx context.Context, req face.UploadImageRequest) (face.ImageResponse, error) {
	if err := req.Validate(); err != nil {
		return face.ImageResponse{}, err
	}

	if _, err := f.EmployeeRepository.GetByCode(ctx, req.EmployeeCode); err != nil {
		return face.ImageResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
	path := fmt.Sprintf("faces/%s/%s%s", req.EmployeeCode, uuid.New().String(), ext)
	contentType := mime.TypeByExtension(ext)

	stored, err := f.fileStorage.Upload(ctx, req.File, path, contentType)
	if err != nil {
		return face.ImageResponse{}, fmt.Errorf("failed to store face image: %w", err)
	}

	url, err := f.fileStorage.GetURL(ctx, stored)
	if err != nil {
		return face.ImageResponse{}, err
	}

	return face.ImageResponse{
		EmployeeCode: req.EmployeeCode,
		Path:         stored,
		URL:          url,
	}, nil
}

// List implements face.FaceService.
func (f *FaceServiceImpl) List(ctx context.Context, employeeCode string) (face.ListImagesResponse, error) {
	if _, err := f.EmployeeRepository.GetByCode(ctx, employeeCode); err != nil {
		return face.ListImagesResponse{}, err
	}

	paths, err := f.fileStorage.List(ctx, "faces/"+employeeCode)
	if err != nil {
		return face.ListImagesResponse{}, fmt.Errorf("failed to list face images: %w", err)
	}

	resp := face.ListImagesResponse{
		EmployeeCode: employeeCode,
		Images:       make([]face.ImageResponse, 0, len(paths)),
	}
	for _, p := range paths {
		url, err := f.fileStorage.GetURL(ctx, p)
		if err != nil {
			return face.ListImagesResponse{}, err
		}
		resp.Images = append(resp.Images, face.ImageResponse{
			EmployeeCode: employeeCode,
			Path:         p,
			URL:          url,
		})
	}

	return resp, nil
}

// Delete implements face.FaceService.
func (f *FaceServiceImpl) Delete(ctx context.Context, employeeCode, filename string) error {
	// filename must stay inside the employee's own directory.
	if filename != filepath.Base(filename) || filename == "." || filename == "" {
		return face.ErrImageNotFound
	}

	path := fmt.Sprintf("faces/%s/%s", employeeCode, filename)
	exists, err := f.fileStorage.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		return face.ErrImageNotFound
	}

	return f.fileStorage.Delete(ctx, path)
}

func NewFaceService(employeeRepository employee.EmployeeRepository, fileStorage storage.FileStorage) face.FaceService {
	return &FaceServiceImpl{
		EmployeeRepository: employeeRepository,
		fileStorage:        fileStorage,
	}
}
