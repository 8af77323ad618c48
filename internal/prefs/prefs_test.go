package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   *string // nil means the file does not exist
		wantTheme string
		wantErr   bool
	}{
		{name: "missing file", content: nil, wantTheme: defaultTheme},
		{name: "theme is trimmed", content: ptr("theme = \" Konoha \"\n"), wantTheme: "Konoha"},
		{name: "empty theme", content: ptr("theme = \"\"\n"), wantTheme: defaultTheme},
		{name: "unknown keys ignored", content: ptr("theme = \"Kanagawa\"\nfont = \"mono\"\n"), wantTheme: "Kanagawa"},
		{name: "invalid toml", content: ptr("not valid toml {{{\n"), wantTheme: defaultTheme, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}

			p, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if p.Theme != tt.wantTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, tt.wantTheme)
			}
		})
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if p, err := Load(""); err != nil || p != Defaults() {
		t.Fatalf("Load(\"\") = %+v, %v; want defaults", p, err)
	}

	if err := Save("", Prefs{Theme: "Konoha"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "roster", "prefs.toml")); err != nil {
		t.Fatalf("prefs not written under HOME: %v", err)
	}
	if p, _ := Load(""); p.Theme != "Konoha" {
		t.Fatalf("Theme = %q after save, want Konoha", p.Theme)
	}
}

func TestSave_OverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	for _, theme := range []string{"Kanagawa", "Nightfox"} {
		if err := Save(path, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s): %v", theme, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if loaded.Theme != theme {
			t.Fatalf("Theme = %q, want %q", loaded.Theme, theme)
		}
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func ptr(s string) *string { return &s }
