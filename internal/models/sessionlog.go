package models

// SessionLog represents metadata for a single screening session log.
type SessionLog struct {
	SessionID string `yaml:"session_id"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	StartedAt string `yaml:"started_at"`
	EndedAt   string `yaml:"ended_at"`
	Status    string `yaml:"status"` // "completed" | "interrupted"
	Decided   int    `yaml:"decided"`
	Included  int    `yaml:"included"`
	Excluded  int    `yaml:"excluded"`
	Pending   int    `yaml:"pending"`
}
