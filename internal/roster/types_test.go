package roster

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHealthJSONRoundTripsLabels(t *testing.T) {
	for _, h := range Healths {
		data, err := json.Marshal(h)
		if err != nil {
			t.Fatalf("Marshal(%v) returned error: %v", h, err)
		}
		if string(data) != `"`+h.String()+`"` {
			t.Fatalf("Marshal(%v) = %s, want quoted label", h, data)
		}
		var back Health
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", data, err)
		}
		if back != h {
			t.Fatalf("Unmarshal(%s) = %v, want %v", data, back, h)
		}
	}
}

func TestHealthUnmarshalRejectsUnknown(t *testing.T) {
	var h Health
	if err := json.Unmarshal([]byte(`"Zombie"`), &h); err == nil {
		t.Fatalf("Unmarshal(Zombie) returned nil error")
	}
	if err := json.Unmarshal([]byte(`3`), &h); err == nil {
		t.Fatalf("Unmarshal(3) returned nil error")
	}
	if _, err := json.Marshal(Health(7)); err == nil {
		t.Fatalf("Marshal(Health(7)) returned nil error")
	}
}

func TestParseHealthIsCaseInsensitive(t *testing.T) {
	got, err := ParseHealth("  iNjUrEd ")
	if err != nil || got != Injured {
		t.Fatalf("ParseHealth = %v, %v; want Injured", got, err)
	}
	if Health(9).String() != "Health(9)" {
		t.Fatalf("String for invalid health = %q", Health(9).String())
	}
}

func TestCharacterViewedIsNotOnTheWire(t *testing.T) {
	data, err := json.Marshal(Character{ID: "1", Name: "Naruto", Location: "Konoha", Health: Healthy, Power: 1, Viewed: true})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if strings.Contains(string(data), "viewed") {
		t.Fatalf("Marshal = %s, want no viewed field", data)
	}
}

func TestValidate(t *testing.T) {
	good := PinnedCharacters()
	if err := Validate(good); err != nil {
		t.Fatalf("Validate(pinned) returned error: %v", err)
	}

	cases := []struct {
		name  string
		chars []Character
		want  string
	}{
		{"empty id", []Character{{ID: " "}}, "empty id"},
		{"duplicate", []Character{{ID: "a"}, {ID: "a"}}, "duplicate id"},
		{"negative power", []Character{{ID: "a", Power: -1}}, "negative power"},
		{"bad health", []Character{{ID: "a", Health: Health(5)}}, "invalid health"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.chars)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate error = %v, want %q", err, tc.want)
			}
		})
	}
}
