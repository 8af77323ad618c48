package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/viewstate"
)

// Empty state messages. Loading and "nothing matched" must never look alike.
const (
	msgLoading    = "Loading characters..."
	msgNoData     = "No characters loaded."
	msgNoMatch    = "No characters found matching your filters."
	msgLoadFailed = "Could not load characters."
)

// pageSize is the number of table rows that fit on screen.
func (m Model) pageSize() int {
	return max(m.height-chromeRows, 1)
}

// currentRow returns the record under the cursor.
func (m Model) currentRow() (roster.Character, bool) {
	if m.engine == nil {
		return roster.Character{}, false
	}
	return m.engine.View().At(m.cursor)
}

// clampCursor keeps the cursor inside the visible rows and scrolls to it.
func (m *Model) clampCursor() {
	count := 0
	if m.engine != nil {
		count = m.engine.View().Len()
	}
	if count == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor, 0), count-1)
	m.ensureCursorVisible()
}

// ensureCursorVisible moves the window so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	count := 0
	if m.engine != nil {
		count = m.engine.View().Len()
	}
	m.offset = min(max(m.offset, 0), max(count-page, 0))
}

// nameColumnWidth gives the name column whatever the fixed columns leave.
func nameColumnWidth(width int) int {
	fixed := colMarker + colCheck + colLocation + colHealth + colPower + 4*colGap
	return max(width-fixed, minNameCol)
}

// renderTable renders the character table or the matching empty state.
func (m Model) renderTable() string {
	contentHeight := max(m.height-2, 3) // header + command bar
	innerWidth := max(m.width-2, 10)
	bgColor := m.theme.SurfaceAlt

	if m.engine == nil {
		return m.renderTitledBox("Characters", m.renderPlaceholder(innerWidth, contentHeight-2, bgColor), m.width, contentHeight, false)
	}

	view := m.engine.View()
	title := m.tableTitle(view)

	if view.Empty() {
		msg := msgNoMatch
		if m.engine.Total() == 0 {
			msg = msgNoData
		}
		styles := m.theme.Styles().WithBackground(bgColor)
		body := lipgloss.Place(innerWidth, contentHeight-2, lipgloss.Center, lipgloss.Center,
			NewBgStyle(bgColor).Render(msg, styles.MutedText),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
		return m.renderTitledBox(title, body, m.width, contentHeight, true)
	}

	lines := []string{m.renderColumnHeader(innerWidth, bgColor)}

	// Only the visible window is formatted.
	for i, c := range view.Window(m.offset, m.pageSize()) {
		index := m.offset + i
		if index == m.cursor {
			content := m.formatRowContent(c, innerWidth, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(innerWidth).
				Render(content))
			continue
		}
		content := m.formatRowContent(c, innerWidth, bgColor, false)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Width(innerWidth).
			Render(content))
	}

	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, contentHeight, true)
}

// renderPlaceholder draws the loading or failure body.
func (m Model) renderPlaceholder(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	var body string
	switch m.snapshot.Phase {
	case state.PhaseFailed:
		lines := []string{bg.Render(msgLoadFailed, styles.DangerText)}
		if m.snapshot.LastError != nil {
			lines = append(lines, bg.Render(truncate(m.snapshot.LastError.Error(), max(width-4, 10)), styles.MutedText))
		}
		lines = append(lines, bg.Render(fmt.Sprintf("Retrying... (attempt %d)", m.snapshot.Attempts+1), styles.WarningText))
		body = lipgloss.JoinVertical(lipgloss.Center, lines...)
	default:
		body = m.spinner.View() + bg.Space() + bg.Render(msgLoading, styles.MutedText)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
}

// tableTitle shows the visible count and, when filtered, the total.
func (m Model) tableTitle(view viewstate.View) string {
	total := m.engine.Total()
	if view.Len() == total {
		return fmt.Sprintf("Characters (%s)", formatPower(total))
	}
	return fmt.Sprintf("Characters (%s/%s)", formatPower(view.Len()), formatPower(total))
}

// renderColumnHeader draws the column titles with the select-all checkbox.
func (m Model) renderColumnHeader(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)

	check := "[ ]"
	checkStyle := styles.MutedText
	switch {
	case m.engine.AllVisibleSelected():
		check, checkStyle = "[x]", styles.Checked
	case m.engine.SelectedInView() > 0:
		check, checkStyle = "[-]", styles.Checked
	}

	power := "Power"
	if arrow := sortArrow(m.engine.Params().Sort); arrow != "" {
		power += " " + arrow
	}

	head := styles.MutedText.Bold(true)
	gap := bg.Spaces(colGap)
	return bg.Render(fit("", colMarker), head) +
		bg.Render(fit(check, colCheck), checkStyle) +
		bg.Render(fit("Name", nameColumnWidth(width)), head) + gap +
		bg.Render(fit("Location", colLocation), head) + gap +
		bg.Render(fit("Health", colHealth), head) + gap +
		bg.Render(padLeft(power, colPower), head)
}

// formatRowContent formats one character row.
// Format: "• [x] Name      Location  Health   Power"
// When cursor is true, uses SelectionText color for all text to ensure contrast.
func (m Model) formatRowContent(c roster.Character, width int, bgColor string, cursor bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	marker := ""
	if c.Viewed {
		marker = "•"
	}
	check := "[ ]"
	if m.engine.IsSelected(c.ID) {
		check = "[x]"
	}

	var markerStyle, checkStyle, nameStyle, locStyle, powerStyle lipgloss.Style
	switch {
	case cursor:
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		markerStyle, checkStyle, nameStyle, locStyle, powerStyle = selText, selText, selText.Bold(true), selText, selText
	case c.Viewed:
		markerStyle, checkStyle, nameStyle, locStyle, powerStyle = styles.Viewed, styles.Viewed, styles.Viewed, styles.Viewed, styles.Viewed
	default:
		markerStyle, checkStyle, nameStyle, locStyle, powerStyle = styles.FaintText, styles.MutedText, styles.Text, styles.MutedText, styles.Text
	}
	if m.engine.IsSelected(c.ID) && !cursor {
		checkStyle = styles.Checked
	}

	gap := bg.Spaces(colGap)
	health := styles.HealthStyle(c.Health).Render(truncate(c.Health.String(), colHealth-2))
	healthPad := max(colHealth-lipgloss.Width(health), 0)

	return bg.Render(fit(marker, colMarker), markerStyle) +
		bg.Render(fit(check, colCheck), checkStyle) +
		bg.Render(fit(c.Name, nameColumnWidth(width)), nameStyle) + gap +
		bg.Render(fit(c.Location, colLocation), locStyle) + gap +
		health + bg.Spaces(healthPad) + gap +
		bg.Render(padLeft(formatPower(c.Power), colPower), powerStyle)
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Focused boxes use the BorderFocus color.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	bgColorStr := m.theme.SurfaceAlt
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
