package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// LayoutKeyMap defines keybindings for the interactive layout host.
type LayoutKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Focus      key.Binding
	Float      key.Binding
	Pin        key.Binding
	Close      key.Binding
	NextPersp  key.Binding
	PrevPersp  key.Binding
	Open       key.Binding
	Save       key.Binding
	Delete     key.Binding
	WriteState key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Float, k.Pin, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Float, k.Pin, k.Close},
		{k.NextPersp, k.PrevPersp, k.Open, k.Save, k.Delete},
		{k.WriteState, k.Help, k.Quit},
	}
}

// DefaultLayoutKeyMap returns the default layout host keybindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev widget"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next widget"),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "focus"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close/open"),
		),
		NextPersp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next perspective"),
		),
		PrevPersp: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev perspective"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open perspective"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save perspective"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete perspective"),
		),
		WriteState: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write state"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
