package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/viewstate"
)

const appName = "roster"

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.engine == nil {
		return m.renderLoadingHeader(styles, bg)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(styles, bg))
}

// renderLoadingHeader shows the loading or error state before data arrives.
func (m Model) renderLoadingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)
	source := truncateMiddle(m.sourceLabel, 50)

	if m.snapshot.Phase == state.PhaseFailed && m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render(appName, styles.Logo),
			bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		if source != "" {
			parts = append(parts, bg.Render("source", styles.FaintText)+bg.Space()+bg.Render(source, styles.MutedText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
	}

	text := "Loading characters..."
	if source != "" {
		text = "Loading characters from " + source + "..."
	}
	return styles.Header.Width(m.width).Render(
		bg.Render(appName, styles.Logo) + sep +
			bg.Render(text, styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	view := m.engine.View()
	params := m.engine.Params()

	parts := []string{bg.Render(appName, styles.Logo)}

	parts = append(parts,
		bg.Render("Total:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%s %s", humanize.Comma(int64(view.Len())), plural(view.Len(), "character", "characters")), styles.Text),
	)

	parts = append(parts, m.selectionSummary(styles, bg))

	if params.Sort != viewstate.SortNone {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+
				bg.Render("Power "+sortArrow(params.Sort), styles.AccentText),
		)
	}

	if !params.Health.Empty() {
		label := healthSetLabel(params.Health)
		if compact {
			label = fmt.Sprintf("%d/%d", params.Health.Len(), len(roster.Healths))
		}
		parts = append(parts,
			bg.Render("Health:", styles.MutedText)+bg.Space()+
				bg.Render(label, styles.InfoText),
		)
	}

	if !compact {
		if ts := m.formatLoadedAt(); ts != "" {
			parts = append(parts, bg.Render(ts, styles.FaintText))
		}
	}

	return bg.Join(parts, "  ")
}

// selectionSummary reports the selection size and how much of it is visible.
func (m Model) selectionSummary(styles Styles, bg BgStyle) string {
	total := m.engine.Selected()
	if total == 0 {
		return bg.Render("No characters selected", styles.MutedText)
	}
	inView := m.engine.SelectedInView()
	return bg.Render(fmt.Sprintf("%d selected", total), styles.Checked) + bg.Space() +
		bg.Render(fmt.Sprintf("(%d in current view)", inView), styles.MutedText)
}

// formatLoadedAt reports when the collection arrived, relative to now.
func (m Model) formatLoadedAt() string {
	if m.snapshot.LoadedAt.IsZero() {
		return ""
	}
	return "loaded " + humanize.RelTime(m.snapshot.LoadedAt, time.Now(), "ago", "from now")
}

// classifyConnectionError returns a short description of the load error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "no such file"):
		return "FILE NOT FOUND"
	case strings.Contains(msg, "decode"), strings.Contains(msg, "invalid"), strings.Contains(msg, "duplicate"):
		return "BAD DATA"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar, the search box while it
// has focus, or a flash message.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.search.active {
		return styles.Header.Width(m.width).Render(
			bg.Render("Search", styles.AccentText.Bold(true)) + bg.Space() + m.search.input.View(),
		)
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"/", "Search"},
		{"f", "Filter"},
		{"s", "Sort"},
		{helpKeys(m.keys.ToggleSelect), "Select"},
		{"a", "All"},
		{"v/u", "Viewed"},
		{"?", "More"},
	}
	if m.width < LayoutCompactWidth {
		commands = commands[:4]
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+3)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show active search text
	if m.engine != nil {
		if text := m.engine.Params().Search; text != "" {
			segments = append(segments, bg.Render("/"+truncate(text, 18), styles.AccentText))
		}
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	if m.flash != "" {
		segments = append(segments, bg.Render(m.flash, styles.SuccessText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func sortArrow(d viewstate.SortDirection) string {
	switch d {
	case viewstate.SortAscending:
		return "▲"
	case viewstate.SortDescending:
		return "▼"
	default:
		return ""
	}
}
