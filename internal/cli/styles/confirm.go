package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel asks before a destructive perspective or layout action.
// It defaults to "No"; only enter on "Yes" confirms.
type ConfirmModel struct {
	Message string
	Details []string
	Yes     bool
	done    bool
	keys    confirmKeyMap
	theme   *Theme
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y/→", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n/←", "no")),
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a confirmation dialog for message.
func NewConfirm(theme *Theme, message string, details ...string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		Details: details,
		keys:    defaultConfirmKeyMap(),
		theme:   theme,
	}
}

// Update handles a key press. Other messages are ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		m.Yes = true
	case key.Matches(km, m.keys.No):
		m.Yes = false
	case key.Matches(km, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(km, m.keys.Accept):
		m.done = true
	case key.Matches(km, m.keys.Cancel):
		m.Yes = false
		m.done = true
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveTab, t.ActiveTab
	if m.Yes {
		yesStyle, noStyle = t.ActiveTab.Background(t.Error), t.InactiveTab
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		noStyle.Render("No"), "  ", yesStyle.Render("Yes"))

	rows := []string{t.Title.Render(IconWarning + " " + m.Message)}
	for _, d := range m.Details {
		rows = append(rows, t.Subtle.Render("  "+d))
	}

	hints := make([]string, 0, 4)
	for _, b := range []key.Binding{m.keys.Yes, m.keys.No, m.keys.Accept, m.keys.Cancel} {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	rows = append(rows, "", buttons, "", t.Subtle.Render(strings.Join(hints, " • ")))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// Done reports whether the dialog was answered.
func (m ConfirmModel) Done() bool { return m.done }

// Result reports whether the answer was yes.
func (m ConfirmModel) Result() bool { return m.done && m.Yes }
