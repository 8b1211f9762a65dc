package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything vatscope reads from its config file and
// environment.
type Config struct {
	StatusURL    string
	DataURL      string // non-empty skips mirror discovery
	PollInterval time.Duration
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath = "~/.config/vatscope/config.toml"
	defaultLogFile    = "~/.local/state/vatscope/vatscope.log"
	defaultLogLevel   = "info"

	// The datafeed itself republishes roughly every 15 seconds, so polling
	// faster than that only re-downloads identical data.
	defaultPollInterval = 15 * time.Second
	minPollInterval     = time.Second
)

// Load locates and parses the vatscope config, falling back to defaults when
// missing. A .env file in the working directory and VATSCOPE_* environment
// variables override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		PollInterval: defaultPollInterval,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StatusURL           string `toml:"status_url"`
		DataURL             string `toml:"data_url"`
		PollIntervalSeconds int    `toml:"poll_interval_seconds"`
		LogFile             string `toml:"log_file"`
		LogLevel            string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.StatusURL = strings.TrimSpace(raw.StatusURL)
	cfg.DataURL = strings.TrimSpace(raw.DataURL)
	if raw.PollIntervalSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		if logFile == "-" {
			// "-" means stderr, not a file path.
			cfg.LogFile = logFile
		} else {
			cfg.LogFile = mustExpand(logFile)
		}
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	applyEnv(&cfg)

	if cfg.PollInterval < minPollInterval {
		cfg.PollInterval = minPollInterval
	}
	return cfg, nil
}

// applyEnv layers VATSCOPE_* environment variables over the config. A .env
// file is loaded first when present; real environment variables win over it.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("VATSCOPE_STATUS_URL")); v != "" {
		cfg.StatusURL = v
	}
	if v := strings.TrimSpace(os.Getenv("VATSCOPE_DATA_URL")); v != "" {
		cfg.DataURL = v
	}
	if v := strings.TrimSpace(os.Getenv("VATSCOPE_POLL_SECONDS")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.PollInterval = time.Duration(secs) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("VATSCOPE_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
