package ui

import (
	"errors"
	"testing"

	"github.com/five82/roster/internal/roster"
)

func TestGetThemeFallsBackToDefault(t *testing.T) {
	if got := GetTheme("Nope").Name; got != defaultThemeName {
		t.Fatalf("GetTheme(unknown) = %q, want %q", got, defaultThemeName)
	}
	if got := GetTheme("Konoha").Name; got != "Konoha" {
		t.Fatalf("GetTheme(Konoha) = %q", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	for i := 1; i <= len(names); i++ {
		current = NextTheme(current)
		if want := names[i%len(names)]; current != want {
			t.Fatalf("step %d: NextTheme = %q, want %q", i, current, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemeNamesReturnsCopy(t *testing.T) {
	names := ThemeNames()
	names[0] = "changed"
	if ThemeNames()[0] == "changed" {
		t.Fatalf("ThemeNames exposed internal slice")
	}
}

func TestEveryThemeColorsEveryHealth(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, h := range roster.Healths {
			if theme.HealthColors[h] == "" {
				t.Errorf("%s: no color for %s", name, h)
			}
		}
	}
}

func TestHealthStyleSurvivesWithBackground(t *testing.T) {
	styles := GetTheme("").Styles().WithBackground("#000000")
	for _, h := range roster.Healths {
		if styles.HealthStyle(h).GetBackground() == nil {
			t.Errorf("%s badge has no background", h)
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("dial tcp 127.0.0.1:3001: connect: connection refused"), "OFFLINE"},
		{errors.New("dial tcp: lookup api.invalid: no such host"), "HOST NOT FOUND"},
		{errors.New("context deadline exceeded"), "TIMEOUT"},
		{errors.New("open db.json: no such file or directory"), "FILE NOT FOUND"},
		{errors.New("decode characters: unexpected EOF"), "BAD DATA"},
		{errors.New("something else"), "ERROR"},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(tc.err); got != tc.want {
			t.Errorf("classifyConnectionError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
