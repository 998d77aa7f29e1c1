// Package styles renders dockit's terminal output with lipgloss: layout
// boxes, state reports, perspective tables and the dialogs of the host.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a Theme is built from. Empty fields keep the
// dark default.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Error      string
	Warning    string
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#2d2d2d",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

// merged fills the empty fields of p from the dark default.
func (p Palette) merged() Palette {
	d := DefaultDarkPalette()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Palette{
		Background: pick(p.Background, d.Background),
		Surface:    pick(p.Surface, d.Surface),
		Text:       pick(p.Text, d.Text),
		Muted:      pick(p.Muted, d.Muted),
		Accent:     pick(p.Accent, d.Accent),
		Border:     pick(p.Border, d.Border),
		Error:      pick(p.Error, d.Error),
		Warning:    pick(p.Warning, d.Warning),
	}
}

// Theme holds the colors of a Palette and the styles derived from them.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color

	// Text
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Perspective bar and dialog buttons
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Box          lipgloss.Style

	// Layout tree
	Splitter     lipgloss.Style
	AreaBox      lipgloss.Style
	AreaFocused  lipgloss.Style
	CurrentTab   lipgloss.Style
	ClosedTab    lipgloss.Style
	CentralBadge lipgloss.Style
}

// NewTheme creates the default dark Theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from p.
func NewThemeFromPalette(p Palette) *Theme {
	p = p.merged()
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Error:      lipgloss.Color(p.Error),
		Warning:    lipgloss.Color(p.Warning),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Accent)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)
	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.InputFocused = t.Input.BorderForeground(t.Accent)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Splitter = lipgloss.NewStyle().Foreground(t.Muted)
	t.AreaBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.AreaFocused = t.AreaBox.BorderForeground(t.Accent)
	t.CurrentTab = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ClosedTab = lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true)
	t.CentralBadge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Warning).
		Padding(0, 1)
}
