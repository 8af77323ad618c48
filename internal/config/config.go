package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings roster reads from its TOML file.
type Config struct {
	APIURL       string
	DataFile     string
	LogPath      string
	LogLevel     string
	FetchTimeout time.Duration
}

const (
	defaultConfigPath   = "~/.config/roster/config.toml"
	defaultAPIURL       = "http://127.0.0.1:3001"
	defaultLogPath      = "~/.local/state/roster/roster.log"
	defaultLogLevel     = "info"
	defaultFetchTimeout = 5 * time.Second
)

// DefaultPath returns the default config file location, unexpanded.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:       defaultAPIURL,
		LogPath:      mustExpand(defaultLogPath),
		LogLevel:     defaultLogLevel,
		FetchTimeout: defaultFetchTimeout,
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL       string `toml:"api_url"`
		DataFile     string `toml:"data_file"`
		LogPath      string `toml:"log_path"`
		LogLevel     string `toml:"log_level"`
		FetchTimeout int    `toml:"fetch_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.DataFile); v != "" {
		cfg.DataFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.FetchTimeout < 0 {
		return Config{}, fmt.Errorf("parse config: fetch_timeout must not be negative")
	}
	if raw.FetchTimeout > 0 {
		cfg.FetchTimeout = time.Duration(raw.FetchTimeout) * time.Second
	}

	return cfg, nil
}

// WithOverrides applies non-empty command line values on top of the file.
func (c Config) WithOverrides(apiURL, dataFile string) Config {
	if v := strings.TrimSpace(apiURL); v != "" {
		c.APIURL = v
		c.DataFile = ""
	}
	if v := strings.TrimSpace(dataFile); v != "" {
		c.DataFile = mustExpand(v)
	}
	return c
}

// UsesFile reports whether records come from a local file instead of the API.
func (c Config) UsesFile() bool {
	return strings.TrimSpace(c.DataFile) != ""
}

// SourceLabel describes where records are loaded from.
func (c Config) SourceLabel() string {
	if c.UsesFile() {
		return c.DataFile
	}
	if strings.TrimSpace(c.APIURL) == "" {
		return defaultAPIURL
	}
	return c.APIURL
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
