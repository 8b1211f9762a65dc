package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VATSCOPE_STATUS_URL", "")
	t.Setenv("VATSCOPE_DATA_URL", "")
	t.Setenv("VATSCOPE_POLL_SECONDS", "")
	t.Setenv("VATSCOPE_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StatusURL != "" || cfg.DataURL != "" {
		t.Fatalf("urls = %q/%q, want empty (discovery default)", cfg.StatusURL, cfg.DataURL)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VATSCOPE_POLL_SECONDS", "")
	t.Setenv("VATSCOPE_DATA_URL", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_url = "  https://data.vatsim.net/v3/vatsim-data.json  "
poll_interval_seconds = 30
log_file = "  ~/.vatscope/vatscope.log  "
log_level = "debug"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataURL != "https://data.vatsim.net/v3/vatsim-data.json" {
		t.Fatalf("DataURL = %q, want trimmed url", cfg.DataURL)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VATSCOPE_DATA_URL", "http://127.0.0.1:9999/feed.json")
	t.Setenv("VATSCOPE_POLL_SECONDS", "5")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_url = "https://data.vatsim.net/v3/vatsim-data.json"
poll_interval_seconds = 60
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataURL != "http://127.0.0.1:9999/feed.json" {
		t.Fatalf("DataURL = %q, want env override", cfg.DataURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %v, want 5s from env", cfg.PollInterval)
	}
}

func TestLoad_ClampsTinyPollInterval(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VATSCOPE_POLL_SECONDS", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("poll_interval_seconds = 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollInterval < minPollInterval {
		t.Fatalf("PollInterval = %v, want >= %v", cfg.PollInterval, minPollInterval)
	}
}
