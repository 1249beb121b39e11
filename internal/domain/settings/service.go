package settings

import "context"

type SettingsService interface {
	GetVision(ctx context.Context) (VisionSettings, error)

	UpdateVision(ctx context.Context, req UpdateVisionRequest) (VisionSettings, error)
}
