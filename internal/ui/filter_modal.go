package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/viewstate"
)

// healthFilterMsg carries the modal's current selection back to the model.
type healthFilterMsg viewstate.HealthSet

// healthFilterModal is the multi-select health dropdown. Changes apply live.
type healthFilterModal struct {
	set    viewstate.HealthSet
	cursor int
}

func newHealthFilterModal(current viewstate.HealthSet) *healthFilterModal {
	return &healthFilterModal{set: current}
}

// Update implements Modal.
func (f *healthFilterModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Confirm), key.Matches(km, keys.Filter):
		return f, nil, true
	case key.Matches(km, keys.Quit) && km.Type == tea.KeyCtrlC:
		return f, tea.Quit, true
	case key.Matches(km, keys.Down):
		f.cursor = (f.cursor + 1) % len(roster.Healths)
	case key.Matches(km, keys.Up):
		f.cursor = (f.cursor - 1 + len(roster.Healths)) % len(roster.Healths)
	case key.Matches(km, keys.ToggleEntry):
		f.set = f.set.Toggle(roster.Healths[f.cursor])
		return f, f.emit(), false
	case key.Matches(km, keys.ToggleHealthy):
		f.set = f.set.Toggle(roster.Healthy)
		return f, f.emit(), false
	case key.Matches(km, keys.ToggleInjured):
		f.set = f.set.Toggle(roster.Injured)
		return f, f.emit(), false
	case key.Matches(km, keys.ToggleCritical):
		f.set = f.set.Toggle(roster.Critical)
		return f, f.emit(), false
	case key.Matches(km, keys.ClearAll):
		f.set = 0
		return f, f.emit(), false
	}
	return f, nil, false
}

func (f *healthFilterModal) emit() tea.Cmd {
	set := f.set
	return func() tea.Msg { return healthFilterMsg(set) }
}

// View implements Modal.
func (f *healthFilterModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Filter by health"))
	b.WriteString("\n\n")

	for i, h := range roster.Healths {
		box := "[ ]"
		boxStyle := styles.MutedText
		if f.set.Has(h) {
			box = "[x]"
			boxStyle = styles.Checked
		}
		pointer := "  "
		if i == f.cursor {
			pointer = styles.AccentText.Render("> ")
		}
		b.WriteString(pointer)
		b.WriteString(boxStyle.Render(box))
		b.WriteString(" ")
		b.WriteString(styles.HealthStyle(h).Render(h.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.set.Empty() {
		b.WriteString(styles.FaintText.Render("No filter: all health states shown"))
	} else {
		b.WriteString(styles.MutedText.Render(healthSetLabel(f.set)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("space toggle · c clear · esc close"))

	return renderOverlay(theme, width, height, 40, theme.BorderFocus, b.String())
}

// healthSetLabel joins the set members for display, e.g. "Healthy, Critical".
func healthSetLabel(set viewstate.HealthSet) string {
	members := set.Members()
	names := make([]string, len(members))
	for i, h := range members {
		names[i] = h.String()
	}
	return strings.Join(names, ", ")
}
