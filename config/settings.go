package config

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// PlayerSettings are the per-player preferences kept between runs.
type PlayerSettings struct {
	LookSensitivity float64 `json:"lookSensitivity"`
	InvertPitch     bool    `json:"invertPitch"`
	ShowDebug       bool    `json:"showDebug"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() PlayerSettings {
	return PlayerSettings{
		LookSensitivity: 1,
		ShowDebug:       true,
	}
}

// Sanitize keeps the look sensitivity usable.
func (s *PlayerSettings) Sanitize() {
	if s.LookSensitivity <= 0 {
		s.LookSensitivity = DefaultSettings().LookSensitivity
	}
}

// SettingsStore persists PlayerSettings through gdata, which picks the
// platform's app-data location.
type SettingsStore struct {
	manager *gdata.Manager
}

// OpenSettings opens the store for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("config: open settings: %w", err)
	}
	return &SettingsStore{manager: m}, nil
}

// Load returns the saved settings, or the defaults when nothing was saved yet.
func (s *SettingsStore) Load() (PlayerSettings, error) {
	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("config: load settings: %w", err)
	}
	if data == nil {
		return DefaultSettings(), nil
	}
	return DecodeSettings(data)
}

func (s *SettingsStore) Save(settings PlayerSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("config: save settings: %w", err)
	}
	return nil
}

// DecodeSettings parses stored settings. Missing fields keep their defaults.
func DecodeSettings(data []byte) (PlayerSettings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse settings: %w", err)
	}
	settings.Sanitize()
	return settings, nil
}
