package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockit/internal/domain/entity"
)

// perspectiveNameLimit bounds names typed in the host; stored names are not limited.
const perspectiveNameLimit = 64

// NewNameInput creates the input used to name a perspective. Blank names
// are flagged through the input's Err.
func NewNameInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "perspective name"
	ti.Prompt = IconCursor + " "
	ti.CharLimit = perspectiveNameLimit
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Validate = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return entity.ErrInvalidPerspectiveName
		}
		return nil
	}
	return ti
}

// InputBox frames a rendered input, with err below it when set.
func (t *Theme) InputBox(input string, focused bool, err error) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	box := style.Render(input)
	if err == nil {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, t.ErrorStyle.Render(IconX+" "+err.Error()))
}

// LoadingModel is the spinner shown while the host waits on the store.
type LoadingModel struct {
	Spinner spinner.Model
	Message string
	Started time.Time
	theme   *Theme
}

// NewLoading starts a loading indicator with message.
func NewLoading(theme *Theme, message string) LoadingModel {
	return LoadingModel{
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		Message: message,
		Started: time.Now(),
		theme:   theme,
	}
}

// View renders the spinner, the message and, after a second, the wait time.
func (m LoadingModel) View() string {
	msg := m.Message
	if d := time.Since(m.Started); d >= time.Second {
		msg = fmt.Sprintf("%s (%.0fs)", msg, d.Seconds())
	}
	return m.Spinner.View() + " " + m.theme.Subtle.Render(msg)
}
