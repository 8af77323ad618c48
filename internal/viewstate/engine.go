package viewstate

import "github.com/five82/roster/internal/roster"

// Engine owns a base collection plus the current Params and keeps the
// derived View in step with them. It is not safe for concurrent use; the UI
// drives it from a single goroutine.
type Engine struct {
	base   []roster.Character
	params Params
	view   View
	sink   AuditSink
}

// NewEngine copies base and derives the initial, unfiltered view. sink may be
// nil.
func NewEngine(base []roster.Character, sink AuditSink) *Engine {
	e := &Engine{
		base:   append([]roster.Character(nil), base...),
		params: Params{Selected: Selection{}},
		sink:   sink,
	}
	e.derive()
	return e
}

func (e *Engine) derive() {
	e.view = Derive(e.base, e.params)
}

// View returns the current derived view.
func (e *Engine) View() View {
	return e.view
}

// Params returns a copy of the current parameters.
func (e *Engine) Params() Params {
	p := e.params
	p.Selected = p.Selected.Clone()
	return p
}

// Collection returns a copy of the base collection including viewed flags.
func (e *Engine) Collection() []roster.Character {
	return append([]roster.Character(nil), e.base...)
}

// Total is the size of the base collection.
func (e *Engine) Total() int {
	return len(e.base)
}

// Selected is the number of selected ids, visible or not.
func (e *Engine) Selected() int {
	return e.params.Selected.Len()
}

// IsSelected reports whether id is in the selection.
func (e *Engine) IsSelected(id string) bool {
	return e.params.Selected.Has(id)
}

// SelectedInView is the number of selected ids that are visible.
func (e *Engine) SelectedInView() int {
	return SelectedInView(e.params.Selected, e.view)
}

// AllVisibleSelected reports whether every visible row is selected.
func (e *Engine) AllVisibleSelected() bool {
	return AllVisibleSelected(e.params.Selected, e.view)
}

// SetSearch replaces the search text. It reports whether anything changed.
func (e *Engine) SetSearch(text string) bool {
	if e.params.Search == text {
		return false
	}
	e.params.Search = text
	e.derive()
	return true
}

// ToggleHealth flips one category in the health filter.
func (e *Engine) ToggleHealth(h roster.Health) {
	if !h.Valid() {
		return
	}
	e.params.Health = e.params.Health.Toggle(h)
	e.derive()
}

// SetHealth replaces the whole health filter.
func (e *Engine) SetHealth(s HealthSet) {
	if e.params.Health == s {
		return
	}
	e.params.Health = s
	e.derive()
}

// CycleSort advances the power sort and returns the new direction.
func (e *Engine) CycleSort() SortDirection {
	e.params.Sort = ToggleSortDirection(e.params.Sort)
	e.derive()
	return e.params.Sort
}

// SetSort sets the power sort directly.
func (e *Engine) SetSort(d SortDirection) {
	if e.params.Sort == d {
		return
	}
	e.params.Sort = d
	e.derive()
}

// Toggle flips selection of one id. Selection does not affect the view, so
// no re-derive is needed.
func (e *Engine) Toggle(id string) {
	e.params.Selected = ToggleSelection(e.params.Selected, id)
}

// ToggleAll applies select-all to the current view.
func (e *Engine) ToggleAll() {
	e.params.Selected = ToggleSelectAll(e.params.Selected, e.view)
}

// MarkViewed sets the viewed flag on every selected record and clears the
// selection. It returns how many ids were selected.
func (e *Engine) MarkViewed(viewed bool) int {
	n := e.params.Selected.Len()
	e.base, e.params.Selected = MarkViewed(e.base, e.params.Selected, viewed, e.sink)
	e.derive()
	return n
}
