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

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.UsesFile() {
		t.Fatalf("UsesFile() = true, want false by default")
	}

	wantLogPath, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://10.0.0.5:9999/api  "
data_file = "  ~/fixtures/db.json "
log_path = "  ~/.roster/roster.log  "
log_level = " DEBUG "
fetch_timeout = 12
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://10.0.0.5:9999/api" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.DataFile != filepath.Join(home, "fixtures", "db.json") {
		t.Fatalf("DataFile = %q, want it under HOME %q", cfg.DataFile, home)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.FetchTimeout != 12*time.Second {
		t.Fatalf("FetchTimeout = %v, want 12s", cfg.FetchTimeout)
	}
	if !cfg.UsesFile() || cfg.SourceLabel() != cfg.DataFile {
		t.Fatalf("SourceLabel = %q, want data file", cfg.SourceLabel())
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
log_path = ""
fetch_timeout = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
	wantLogPath, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_NegativeTimeoutFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("fetch_timeout = -3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want negative timeout error")
	}
}

func TestWithOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := Config{APIURL: defaultAPIURL, DataFile: "/srv/db.json"}

	got := base.WithOverrides("", "")
	if got != base {
		t.Fatalf("empty overrides changed config: %#v", got)
	}

	got = base.WithOverrides("http://other:1", "")
	if got.APIURL != "http://other:1" || got.UsesFile() {
		t.Fatalf("api override = %#v, want API source", got)
	}

	got = base.WithOverrides("", "~/db.json")
	if got.DataFile != filepath.Join(home, "db.json") {
		t.Fatalf("DataFile = %q, want expanded path", got.DataFile)
	}
}

func TestSourceLabel_DefaultsWhenAPIEmpty(t *testing.T) {
	var cfg Config
	if got := cfg.SourceLabel(); got != defaultAPIURL {
		t.Fatalf("SourceLabel = %q, want %q", got, defaultAPIURL)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
