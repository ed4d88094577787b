package models

// Settings represents global application settings.
// This corresponds to ~/.papersift/settings.yaml.
type Settings struct {
	Version        int      `yaml:"version"`
	Theme          string   `yaml:"theme"` // "default" | "high-contrast" | "solarized"
	KeyColumn      string   `yaml:"key_column"`
	DisplayColumns []string `yaml:"display_columns"`
	Keywords       []string `yaml:"keywords"`
	Reasons        []string `yaml:"reasons"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:        1,
		Theme:          "default",
		KeyColumn:      "",
		DisplayColumns: []string{"Document Type", "Article Title", "Abstract"},
		Keywords:       []string{},
		Reasons:        DefaultReasons(),
	}
}

// DefaultReasons is the exclusion menu offered when settings.yaml does
// not override it. The final entry prompts for a free-text note.
func DefaultReasons() []string {
	return []string{
		"non-paper",
		"survey or review",
		"non-english",
		"off-topic",
		"other",
	}
}
