package viewstate

import (
	"slices"
	"strings"

	"github.com/five82/roster/internal/roster"
)

// SortDirection is the three-state power sort.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns a short label for the direction.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// ParseSortDirection accepts the labels produced by String plus a few
// common spellings. Anything unrecognized is SortNone.
func ParseSortDirection(value string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending", "up":
		return SortAscending
	case "desc", "descending", "down":
		return SortDescending
	default:
		return SortNone
	}
}

// HealthSet is a set of health categories. The zero value is empty, which
// means no filter.
type HealthSet uint8

// NewHealthSet builds a set from the given categories. Invalid values are
// ignored.
func NewHealthSet(hs ...roster.Health) HealthSet {
	var s HealthSet
	for _, h := range hs {
		s = s.With(h)
	}
	return s
}

func healthBit(h roster.Health) HealthSet {
	if !h.Valid() {
		return 0
	}
	return 1 << uint(h)
}

// Has reports whether h is a member.
func (s HealthSet) Has(h roster.Health) bool {
	bit := healthBit(h)
	return bit != 0 && s&bit != 0
}

// With returns the set with h added.
func (s HealthSet) With(h roster.Health) HealthSet {
	return s | healthBit(h)
}

// Toggle returns the set with h added or removed.
func (s HealthSet) Toggle(h roster.Health) HealthSet {
	return s ^ healthBit(h)
}

// Empty reports whether no category is set.
func (s HealthSet) Empty() bool {
	return s == 0
}

// Len is the number of categories in the set.
func (s HealthSet) Len() int {
	n := 0
	for _, h := range roster.Healths {
		if s.Has(h) {
			n++
		}
	}
	return n
}

// Members lists the categories in display order.
func (s HealthSet) Members() []roster.Health {
	out := make([]roster.Health, 0, len(roster.Healths))
	for _, h := range roster.Healths {
		if s.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

// Admits reports whether a record with health h passes the filter.
func (s HealthSet) Admits(h roster.Health) bool {
	return s.Empty() || s.Has(h)
}

// Selection is a set of record ids. It is keyed by id and independent of
// what is currently visible. Operations never mutate the receiver.
type Selection map[string]struct{}

// NewSelection builds a selection from ids.
func NewSelection(ids ...string) Selection {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	return sel
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len is the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// IDs returns the selected ids in lexical order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	dup := make(Selection, len(s))
	for id := range s {
		dup[id] = struct{}{}
	}
	return dup
}

// Params are the externally driven view parameters.
type Params struct {
	Search   string
	Health   HealthSet
	Sort     SortDirection
	Selected Selection
}
