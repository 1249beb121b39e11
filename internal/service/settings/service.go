package settings

import (
	"context"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/settings"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/appconfig"
)

type SettingsServiceImpl struct {
	store *appconfig.Store
}

// GetVision implements settings.SettingsService.
func (s *SettingsServiceImpl) GetVision(ctx context.Context) (settings.VisionSettings, error) {
	return s.store.GetVision(), nil
}

// UpdateVision implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateVision(ctx context.Context, req settings.UpdateVisionRequest) (settings.VisionSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.VisionSettings{}, err
	}

	updated := req.Apply(s.store.GetVision())
	if err := s.store.SaveVision(updated); err != nil {
		return settings.VisionSettings{}, err
	}

	return updated, nil
}

func NewSettingsService(store *appconfig.Store) settings.SettingsService {
	return &SettingsServiceImpl{store: store}
}
