package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Refresh policies for the listed-files cache.
const (
	RefreshSession = "session" // list files once, at session setup
	RefreshOpen    = "open"    // re-list every time the picker opens
	RefreshWatch   = "watch"   // re-list when the working directory changes on disk
)

// Boosts are the additive score contributions for non-fuzzy signals.
// Exactly one tier applies per candidate; see picker.Scorer.
type Boosts struct {
	OpenBuf      float64 `json:"open_buf_boost"`
	ModifiedBuf  float64 `json:"modified_buf_boost"`
	AlternateBuf float64 `json:"alternate_buf_boost"`
	CurrentBuf   float64 `json:"current_buf_boost"`
	Basename     float64 `json:"basename_boost"`
}

// Config represents the application configuration. It is read once per
// picker session and treated as immutable afterwards.
type Config struct {
	Weights              Boosts   `json:"weights"`
	BatchSize            int      `json:"batch_size"` // <= 0 disables chunking
	HighlightEnabled     bool     `json:"highlight_enabled"`
	IconsEnabled         bool     `json:"icons_enabled"`
	ShowScores           bool     `json:"show_scores"`
	MaxResultsConsidered int      `json:"max_results_considered"`
	MaxResultsRendered   int      `json:"max_results_rendered"`
	FuzzyScoreMultiple   float64  `json:"fuzzy_score_multiple"`
	FileScoreMultiple    float64  `json:"file_score_multiple"`
	CaseSensitiveBoosts  bool     `json:"case_sensitive_boosts"`
	ListingCommand       []string `json:"listing_command,omitempty"`
	RefreshPolicy        string   `json:"refresh_policy"`
	HistoryPath          string   `json:"history_path"`
	LogPath              string   `json:"log_path"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Boosts{
			OpenBuf:      10,
			ModifiedBuf:  25,
			AlternateBuf: 50,
			CurrentBuf:   -1000,
			Basename:     100,
		},
		BatchSize:            250,
		HighlightEnabled:     true,
		IconsEnabled:         true,
		ShowScores:           true,
		MaxResultsConsidered: 10000,
		MaxResultsRendered:   50,
		FuzzyScoreMultiple:   0.7,
		FileScoreMultiple:    0.3,
		RefreshPolicy:        RefreshSession,
		HistoryPath:          "~/.fpick/frecency.json",
		LogPath:              "~/.fpick/fpick.log",
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fpick"), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Load loads configuration from the default config file, creating it
// with defaults when missing. User overrides are merged over defaults,
// so a partial config file is fine.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveFile(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(configPath, cfg)
}

// SaveFile saves configuration to an explicit path.
func SaveFile(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// GetHistoryPath returns the expanded frecency history path.
func (c *Config) GetHistoryPath() (string, error) {
	return ExpandPath(c.HistoryPath)
}

// GetLogPath returns the expanded log file path.
func (c *Config) GetLogPath() (string, error) {
	return ExpandPath(c.LogPath)
}
