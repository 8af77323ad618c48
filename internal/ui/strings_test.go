package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"Naruto", 10, "Naruto"},
		{"Naruto Uzumaki", 8, "Narut..."},
		{"Naruto", 3, "Nar"},
		{"  padded  ", 0, "padded"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/share/roster/db.json", 16)
	if len([]rune(got)) != 16 {
		t.Fatalf("truncateMiddle length = %d, want 16 (%q)", len([]rune(got)), got)
	}
	if got[len(got)-7:] != "db.json" {
		t.Fatalf("truncateMiddle dropped the file name: %q", got)
	}
	if got := truncateMiddle("short", 16); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestFitPadsAndTruncates(t *testing.T) {
	if got := fit("Konoha", 8); got != "Konoha  " {
		t.Fatalf("fit pad = %q", got)
	}
	if got := fit("Kirigakure", 8); got != "Kirig..." {
		t.Fatalf("fit truncate = %q", got)
	}
	if got := fit("x", 0); got != "" {
		t.Fatalf("fit zero width = %q", got)
	}
	if got := padLeft("50", 5); got != "   50" {
		t.Fatalf("padLeft = %q", got)
	}
}

func TestFormatPower(t *testing.T) {
	cases := map[int]string{0: "0", 50: "50", 9500: "9,500", 1234567: "1,234,567"}
	for in, want := range cases {
		if got := formatPower(in); got != want {
			t.Errorf("formatPower(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1, "character", "characters") != "character" {
		t.Fatal("plural(1) should be singular")
	}
	if plural(0, "character", "characters") != "characters" {
		t.Fatal("plural(0) should be plural")
	}
}
