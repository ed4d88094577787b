package config

import (
	"github.com/papersift-io/papersift/internal/models"
)

// LoadSettings loads the global settings from ~/.papersift/settings.yaml.
// If the file doesn't exist, returns default settings. Blank fields in an
// existing file fall back to their defaults so a partial file stays valid.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	fillSettingsDefaults(s)
	return s, nil
}

// SaveSettings saves the global settings to ~/.papersift/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

func fillSettingsDefaults(s *models.Settings) {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	if len(s.DisplayColumns) == 0 {
		s.DisplayColumns = models.NewSettings().DisplayColumns
	}
	if len(s.Reasons) == 0 {
		s.Reasons = models.DefaultReasons()
	}
}
