package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints one background under every cell it renders, spaces
// included. Rows are built from many styled segments and the ANSI reset
// between them would otherwise show the terminal background through.
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBgStyle returns a BgStyle for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	fill := lipgloss.NewStyle().Background(bg)
	return BgStyle{bg: bg, fill: fill, space: fill.Render(" ")}
}

// Render draws text in style on the background. Each space is emitted as a
// background-filled cell, so runs of spaces keep their width.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	word := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return word.Render(text)
	}

	var sb strings.Builder
	for i, part := range strings.Split(text, " ") {
		if i > 0 {
			sb.WriteString(b.space)
		}
		if part != "" {
			sb.WriteString(word.Render(part))
		}
	}
	return sb.String()
}

// Space is a single filled cell.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces is n filled cells.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep renders a separator on the background.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins parts with a filled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}
