package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BatchSize != DefaultConfig().BatchSize {
		t.Errorf("BatchSize = %d, want default", cfg.BatchSize)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadFileMergesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"batch_size": 42}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BatchSize != 42 {
		t.Errorf("BatchSize = %d, want override 42", cfg.BatchSize)
	}
	if cfg.MaxResultsRendered != DefaultConfig().MaxResultsRendered {
		t.Errorf("MaxResultsRendered = %d, want default preserved", cfg.MaxResultsRendered)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.fpick/frecency.json")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, ".fpick", "frecency.json") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got, _ := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed to %q", got)
	}
}
