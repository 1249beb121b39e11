package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/settings"
)

// fileConfig is the on-disk shape of the app settings file.
type fileConfig struct {
	AppName string                  `json:"app_name"`
	Vision  settings.VisionSettings `json:"vision"`
}

// Store persists runtime-editable settings (vision thresholds, app name) in
// a JSON file. Missing keys are backfilled from defaults on read, so a file
// written by an older version keeps working.
type Store struct {
	mu      sync.Mutex
	path    string
	appName string
}

func NewStore(path, appName string) (*Store, error) {
	s := &Store{path: path, appName: appName}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(s.defaults()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) defaults() fileConfig {
	return fileConfig{
		AppName: s.appName,
		Vision:  settings.DefaultVision(),
	}
}

func (s *Store) read() fileConfig {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.defaults()
	}

	// Unmarshal over the defaults so missing keys keep their default value
	// and a corrupted file degrades to defaults instead of failing.
	cfg := s.defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return s.defaults()
	}
	return cfg
}

func (s *Store) write(cfg fileConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *Store) GetVision() settings.VisionSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Vision
}

func (s *Store) SaveVision(v settings.VisionSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.read()
	cfg.Vision = v
	return s.write(cfg)
}

func (s *Store) AppName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().AppName
}
