package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchState is the live search box. The engine only sees the text once
// typing pauses for SearchDebounce.
type searchState struct {
	input      textinput.Model
	active     bool
	debounceID uint64
}

// searchDebounceMsg fires after the debounce delay.
type searchDebounceMsg struct {
	debounceID uint64
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "name or location"
	ti.CharLimit = 64
	return searchState{input: ti}
}

// startSearch focuses the search box, keeping any existing text.
func (m *Model) startSearch() tea.Cmd {
	m.search.active = true
	m.search.input.CursorEnd()
	return m.search.input.Focus()
}

// handleSearchKey routes keys while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.search.active = false
		m.search.input.Blur()
		m.applySearch()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.search.active = false
		m.search.input.Blur()
		m.clearSearch()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	before := m.search.input.Value()
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if m.search.input.Value() == before {
		return m, cmd
	}

	m.search.debounceID++
	id := m.search.debounceID
	debounce := tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{debounceID: id}
	})
	return m, tea.Batch(cmd, debounce)
}

// handleSearchDebounce applies the search text unless the user kept typing.
func (m Model) handleSearchDebounce(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.debounceID != m.search.debounceID {
		return m, nil
	}
	m.applySearch()
	return m, nil
}

// applySearch pushes the box text into the engine and resets the cursor
// when the visible rows changed.
func (m *Model) applySearch() {
	if m.engine == nil {
		return
	}
	if m.engine.SetSearch(m.search.input.Value()) {
		m.cursor, m.offset = 0, 0
	}
}

// clearSearch empties the box and the engine's search text.
func (m *Model) clearSearch() {
	// Invalidate any pending debounce.
	m.search.debounceID++
	m.search.input.SetValue("")
	m.applySearch()
}
