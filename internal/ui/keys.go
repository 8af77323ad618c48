package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View parameters
	Search         key.Binding
	Filter         key.Binding
	ToggleHealthy  key.Binding
	ToggleInjured  key.Binding
	ToggleCritical key.Binding
	CycleSort      key.Binding

	// Selection
	ToggleSelect key.Binding
	SelectAll    key.Binding
	MarkViewed   key.Binding
	MarkUnviewed key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Modal and input
	Confirm     key.Binding
	ToggleEntry key.Binding
	ClearAll    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		// View parameters
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search name or location"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Health filter"),
		),
		ToggleHealthy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Toggle Healthy"),
		),
		ToggleInjured: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Toggle Injured"),
		),
		ToggleCritical: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Toggle Critical"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle power sort"),
		),

		// Selection
		ToggleSelect: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "Select row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Select all visible"),
		),
		MarkViewed: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Mark selected viewed"),
		),
		MarkUnviewed: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Mark selected unviewed"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Modal and input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		ToggleEntry: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "Toggle option"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear all"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view, grouped by section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown, k.HalfPageDown, k.HalfPageUp},
		{k.Search, k.Escape, k.Filter, k.ToggleHealthy, k.ToggleInjured, k.ToggleCritical, k.CycleSort},
		{k.ToggleSelect, k.SelectAll, k.MarkViewed, k.MarkUnviewed},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
