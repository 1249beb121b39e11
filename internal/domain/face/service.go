package face

import "context"

// FaceService manages the per-employee face image directory used for
// enrollment. Matching itself happens in the kiosk, not here; this service
// only owns the files.
type FaceService interface {
	Upload(ctx context.Context, req UploadImageRequest) (ImageResponse, error)

	List(ctx context.Context, employeeCode string) (ListImagesResponse, error)

	Delete(ctx context.Context, employeeCode, filename string) error
}
