package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/roster"
)

// Theme holds the resolved colors for one palette.
type Theme struct {
	Name string

	Background string // behind overlays
	Surface    string // header and command bar
	SurfaceAlt string // table body

	SelectionBg   string // cursor row
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// HealthColors are the badge backgrounds per health category.
	HealthColors map[roster.Health]string
}

// palette is the small set of upstream colors a Theme is derived from.
// Health badges reuse the green/yellow/red of the palette.
type palette struct {
	bg0, bg1, bg2, bg3 string // darkest to lightest background
	sel, selFg         string
	fg, comment, dim   string
	blue, cyan         string
	green, yellow, red string
}

func (p palette) theme(name string) Theme {
	return Theme{
		Name:          name,
		Background:    p.bg0,
		Surface:       p.bg1,
		SurfaceAlt:    p.bg2,
		SelectionBg:   p.sel,
		SelectionText: p.selFg,
		Border:        p.bg3,
		BorderFocus:   p.blue,
		Text:          p.fg,
		Muted:         p.comment,
		Faint:         p.dim,
		Accent:        p.blue,
		Success:       p.green,
		Warning:       p.yellow,
		Danger:        p.red,
		Info:          p.cyan,
		HealthColors: map[roster.Health]string{
			roster.Healthy:  p.green,
			roster.Injured:  p.yellow,
			roster.Critical: p.red,
		},
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header  lipgloss.Style
	Logo    lipgloss.Style
	Checked lipgloss.Style // selection checkboxes and counts
	Viewed  lipgloss.Style // rows already marked viewed

	healthColors map[roster.Health]string
	badgeText    string
	muted        string
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header:  fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:    fg(t.Warning).Bold(true),
		Checked: fg(t.Accent).Bold(true),
		Viewed:  fg(t.Faint),

		healthColors: t.HealthColors,
		badgeText:    t.Background,
		muted:        t.Muted,
	}
}

// HealthStyle returns the badge style for a health category. Unknown values
// get a muted badge.
func (s Styles) HealthStyle(h roster.Health) lipgloss.Style {
	color, ok := s.healthColors[h]
	if !ok {
		color = s.muted
	}
	return fg(s.badgeText).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy whose text styles paint bgColor behind them,
// so styled segments never fall back to the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.InfoText,
		&out.Header, &out.Logo, &out.Checked, &out.Viewed,
	} {
		*st = st.Background(bg)
	}
	return out
}

const defaultThemeName = "Nightfox"

var themeOrder = []string{"Nightfox", "Kanagawa", "Konoha"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": palette{
		bg0: "#131a24", bg1: "#192330", bg2: "#212e3f", bg3: "#39506d",
		sel: "#2b3b51", selFg: "#cdcecf",
		fg: "#cdcecf", comment: "#738091", dim: "#71839b",
		blue: "#719cd6", cyan: "#63cdcf",
		green: "#81b29a", yellow: "#dbc074", red: "#c94f6d",
	}.theme("Nightfox"),

	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": palette{
		bg0: "#16161D", bg1: "#1F1F28", bg2: "#2A2A37", bg3: "#54546D",
		sel: "#2D4F67", selFg: "#DCD7BA",
		fg: "#DCD7BA", comment: "#C8C093", dim: "#727169",
		blue: "#7E9CD8", cyan: "#7FB4CA",
		green: "#98BB6C", yellow: "#E6C384", red: "#E46876",
	}.theme("Kanagawa"),

	// Warm leaf-village tones: dark bark backgrounds, orange accent.
	"Konoha": palette{
		bg0: "#14110f", bg1: "#1d1915", bg2: "#27211b", bg3: "#4a3f33",
		sel: "#5a3a1a", selFg: "#f5ead8",
		fg: "#efe4d2", comment: "#b3a48e", dim: "#857661",
		blue: "#f28c28", cyan: "#7fb8a4",
		green: "#7fb069", yellow: "#e8c547", red: "#d1495b",
	}.theme("Konoha"),
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[defaultThemeName]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}
