package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// PerspectiveTabs is the perspective bar of the layout host. The selected
// tab is the one the open, save and delete keys act on; the opened tab is the
// perspective last applied to the layout.
type PerspectiveTabs struct {
	Names  []string
	Active int
	Opened string
	theme  *Theme
}

// NewPerspectiveTabs creates a tab bar over names, in the given order.
func NewPerspectiveTabs(theme *Theme, names ...string) PerspectiveTabs {
	return PerspectiveTabs{Names: names, theme: theme}
}

// Len returns the number of tabs.
func (t PerspectiveTabs) Len() int { return len(t.Names) }

// Current returns the selected perspective name, or "" when there are none.
func (t PerspectiveTabs) Current() string {
	if t.Active < 0 || t.Active >= len(t.Names) {
		return ""
	}
	return t.Names[t.Active]
}

// Select moves the selection to name and reports whether it exists.
func (t *PerspectiveTabs) Select(name string) bool {
	i := slices.Index(t.Names, name)
	if i < 0 {
		return false
	}
	t.Active = i
	return true
}

// Next moves the selection right, wrapping around.
func (t *PerspectiveTabs) Next() {
	if len(t.Names) > 0 {
		t.Active = (t.Active + 1) % len(t.Names)
	}
}

// Prev moves the selection left, wrapping around.
func (t *PerspectiveTabs) Prev() {
	if len(t.Names) > 0 {
		t.Active = (t.Active - 1 + len(t.Names)) % len(t.Names)
	}
}

func (t PerspectiveTabs) label(i int) string {
	name := t.Names[i]
	if name == t.Opened {
		name = IconStar + " " + name
	}
	if i == t.Active {
		return t.theme.ActiveTab.Render(name)
	}
	return t.theme.InactiveTab.Render(name)
}

// View renders the bar within width cells. Tabs that do not fit are cut from
// the side away from the selection and replaced by an ellipsis.
func (t PerspectiveTabs) View(width int) string {
	if len(t.Names) == 0 {
		return t.theme.Subtle.Render("no perspectives")
	}
	labels := make([]string, len(t.Names))
	for i := range t.Names {
		labels[i] = t.label(i)
	}

	more := t.theme.Subtle.Render(" …")
	room := width - 2*lipgloss.Width(more)
	first, last := t.Active, t.Active
	used := lipgloss.Width(labels[t.Active])
	for grew := true; grew; {
		grew = false
		if last+1 < len(labels) && used+lipgloss.Width(labels[last+1]) <= room {
			last++
			used += lipgloss.Width(labels[last])
			grew = true
		}
		if first > 0 && used+lipgloss.Width(labels[first-1]) <= room {
			first--
			used += lipgloss.Width(labels[first])
			grew = true
		}
	}

	parts := labels[first : last+1]
	if first > 0 {
		parts = append([]string{more}, parts...)
	}
	if last < len(labels)-1 {
		parts = append(parts, more)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
