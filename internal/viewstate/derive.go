package viewstate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/roster/internal/roster"
)

// View is a derived, ordered subset of the base collection. Indexing is O(1)
// and never re-derives.
type View struct {
	rows []roster.Character
}

// Len is the number of visible records.
func (v View) Len() int {
	return len(v.rows)
}

// Empty reports whether no record passed the filters.
func (v View) Empty() bool {
	return len(v.rows) == 0
}

// At returns the record at visible index i.
func (v View) At(i int) (roster.Character, bool) {
	if i < 0 || i >= len(v.rows) {
		return roster.Character{}, false
	}
	return v.rows[i], true
}

// Window returns up to limit contiguous records starting at offset. The
// returned slice must not be modified.
func (v View) Window(offset, limit int) []roster.Character {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(v.rows) {
		return nil
	}
	end := min(offset+limit, len(v.rows))
	return v.rows[offset:end:end]
}

// IDs lists the visible ids in display order.
func (v View) IDs() []string {
	ids := make([]string, len(v.rows))
	for i, c := range v.rows {
		ids[i] = c.ID
	}
	return ids
}

// IndexOf returns the visible index of id, or -1.
func (v View) IndexOf(id string) int {
	return slices.IndexFunc(v.rows, func(c roster.Character) bool { return c.ID == id })
}

// Derive filters base by search text and health, then sorts by power. Ties
// keep their base order in both directions. Neither base nor p is modified.
func Derive(base []roster.Character, p Params) View {
	needle := strings.ToLower(p.Search)
	rows := make([]roster.Character, 0, len(base))
	for _, c := range base {
		if !matchesSearch(c, needle) || !p.Health.Admits(c.Health) {
			continue
		}
		rows = append(rows, c)
	}

	switch p.Sort {
	case SortAscending:
		slices.SortStableFunc(rows, func(a, b roster.Character) int {
			return cmp.Compare(a.Power, b.Power)
		})
	case SortDescending:
		slices.SortStableFunc(rows, func(a, b roster.Character) int {
			return cmp.Compare(b.Power, a.Power)
		})
	}
	return View{rows: rows}
}

// needle must already be lower case.
func matchesSearch(c roster.Character, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Location), needle)
}

// ToggleSortDirection advances none -> asc -> desc -> none.
func ToggleSortDirection(d SortDirection) SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// ToggleSelection adds id if absent and removes it otherwise. The id does
// not have to be visible.
func ToggleSelection(sel Selection, id string) Selection {
	next := sel.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// AllVisibleSelected reports whether the view is non-empty and every visible
// id is selected.
func AllVisibleSelected(sel Selection, v View) bool {
	if v.Empty() {
		return false
	}
	for _, c := range v.rows {
		if !sel.Has(c.ID) {
			return false
		}
	}
	return true
}

// SelectedInView counts the selected ids that are currently visible.
func SelectedInView(sel Selection, v View) int {
	n := 0
	for _, c := range v.rows {
		if sel.Has(c.ID) {
			n++
		}
	}
	return n
}

// ToggleSelectAll clears the whole selection, including ids outside the view,
// when every visible record is already selected. Otherwise it adds every
// visible id and keeps the rest of the selection.
func ToggleSelectAll(sel Selection, v View) Selection {
	if AllVisibleSelected(sel, v) {
		return Selection{}
	}
	next := sel.Clone()
	for _, c := range v.rows {
		next[c.ID] = struct{}{}
	}
	return next
}

// AuditSink receives one event per bulk viewed/unviewed action.
type AuditSink interface {
	MarkViewed(viewed bool, ids []string)
}

// AuditFunc adapts a function to AuditSink.
type AuditFunc func(viewed bool, ids []string)

// MarkViewed implements AuditSink.
func (f AuditFunc) MarkViewed(viewed bool, ids []string) {
	f(viewed, ids)
}

// MarkViewed returns a copy of base with Viewed set on every selected record,
// and an empty selection. The sink is called exactly once with the ids that
// were selected, whether or not they matched a record. A nil sink is allowed.
func MarkViewed(base []roster.Character, sel Selection, viewed bool, sink AuditSink) ([]roster.Character, Selection) {
	if sink != nil {
		sink.MarkViewed(viewed, sel.IDs())
	}
	next := make([]roster.Character, len(base))
	copy(next, base)
	for i := range next {
		if sel.Has(next[i].ID) {
			next[i].Viewed = viewed
		}
	}
	return next, Selection{}
}
