package roster

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Health is the closed set of health categories a character can be in.
type Health int

const (
	Healthy Health = iota
	Injured
	Critical
)

// Healths lists every health category in display order.
var Healths = []Health{Healthy, Injured, Critical}

// Locations lists the villages used by the fixture generator.
var Locations = []string{"Konoha", "Suna", "Kiri", "Iwa", "Kumo"}

// String returns the display label for the category.
func (h Health) String() string {
	switch h {
	case Healthy:
		return "Healthy"
	case Injured:
		return "Injured"
	case Critical:
		return "Critical"
	default:
		return fmt.Sprintf("Health(%d)", int(h))
	}
}

// Valid reports whether h is one of the known categories.
func (h Health) Valid() bool {
	return h >= Healthy && h <= Critical
}

// ParseHealth matches a label case-insensitively.
func ParseHealth(value string) (Health, error) {
	trimmed := strings.TrimSpace(value)
	for _, h := range Healths {
		if strings.EqualFold(trimmed, h.String()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown health %q", value)
}

// MarshalJSON encodes the category as its label.
func (h Health) MarshalJSON() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("invalid health %d", int(h))
	}
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a label into the category.
func (h *Health) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("health must be a string: %w", err)
	}
	parsed, err := ParseHealth(raw)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Character is a single record of the collection.
// Everything except Viewed is fixed once the collection is loaded.
type Character struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Health   Health `json:"health"`
	Power    int    `json:"power"`

	// Viewed is local state; it is never part of the wire format.
	Viewed bool `json:"-"`
}

// Database mirrors the db.json fixture layout.
type Database struct {
	Characters []Character `json:"characters"`
}

// Validate checks the load-time invariants of a collection: unique
// non-empty ids and non-negative power.
func Validate(chars []Character) error {
	seen := make(map[string]struct{}, len(chars))
	for i, c := range chars {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("character %d: empty id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("character %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.Power < 0 {
			return fmt.Errorf("character %q: negative power %d", c.ID, c.Power)
		}
		if !c.Health.Valid() {
			return fmt.Errorf("character %q: invalid health", c.ID)
		}
	}
	return nil
}
