package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockit/internal/domain/entity"
)

const (
	minAreaWidth  = 6
	minAreaHeight = 3
)

// LayoutRenderer draws a live dock container as nested boxes sized by
// the splitter weights.
type LayoutRenderer struct {
	theme *Theme
	// Selected is highlighted when set.
	Selected *entity.DockWidget
	// Central is marked with a star when set.
	Central *entity.DockWidget
	// TitleBar hides the tab line of an area when it returns false.
	TitleBar func(*entity.DockArea) bool
}

func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// Render draws c into a width x height block.
func (r *LayoutRenderer) Render(c *entity.DockContainer, width, height int) string {
	width = max(width, minAreaWidth)
	height = max(height, minAreaHeight)
	root := c.RootSplitter()
	if !root.HasVisibleContent() {
		return r.theme.AreaBox.
			Width(width - 2).
			Height(height - 2).
			Render(r.theme.Subtle.Render("no open dock areas"))
	}
	return r.renderNode(root, width, height)
}

func (r *LayoutRenderer) renderNode(n entity.Node, width, height int) string {
	switch n := n.(type) {
	case *entity.DockArea:
		return r.renderArea(n, width, height)
	case *entity.Splitter:
		return r.renderSplitter(n, width, height)
	}
	return ""
}

func (r *LayoutRenderer) renderSplitter(s *entity.Splitter, width, height int) string {
	var (
		children []entity.Node
		weights  []int
	)
	for i, child := range s.Children() {
		if nodeVisible(child) {
			children = append(children, child)
			weights = append(weights, s.Weight(i))
		}
	}
	if len(children) == 1 {
		return r.renderNode(children[0], width, height)
	}

	horizontal := s.Orientation() == entity.Horizontal
	total, minimum := height, minAreaHeight
	if horizontal {
		total, minimum = width, minAreaWidth
	}
	spans := Distribute(total, weights, minimum)

	parts := make([]string, len(children))
	for i, child := range children {
		if horizontal {
			parts[i] = r.renderNode(child, spans[i], height)
		} else {
			parts[i] = r.renderNode(child, width, spans[i])
		}
	}
	if horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *LayoutRenderer) renderArea(a *entity.DockArea, width, height int) string {
	innerW := max(width-4, 1)
	innerH := max(height-2, 1)
	clip := lipgloss.NewStyle().MaxWidth(innerW)

	style := r.theme.AreaBox
	focused := false
	tabs := make([]string, 0, a.Count())
	for _, w := range a.OpenDockWidgets() {
		label := w.Title()
		if w == r.Central {
			label = IconStar + " " + label
		}
		switch {
		case w == r.Selected:
			style = r.theme.AreaFocused
			focused = true
			tabs = append(tabs, r.theme.Highlight.Render(IconCursor+label))
		case w == a.CurrentDockWidget():
			tabs = append(tabs, r.theme.CurrentTab.Render(label))
		default:
			tabs = append(tabs, r.theme.Subtle.Render(label))
		}
	}

	var lines []string
	if r.TitleBar == nil || r.TitleBar(a) || focused {
		lines = append(lines, clip.Render(strings.Join(tabs, r.theme.Subtle.Render(" | "))))
	}
	if cur := a.CurrentDockWidget(); cur != nil && (innerH > 1 || len(lines) == 0) {
		lines = append(lines, clip.Render(r.theme.Subtle.Render(fmt.Sprintf("%s %s", IconTab, cur.Name()))))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return style.
		Width(width - 2).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

// RenderSideBars lists the pinned widgets of c by sidebar.
func (r *LayoutRenderer) RenderSideBars(c *entity.DockContainer) string {
	byLoc := make(map[entity.SideBarLocation][]string)
	for _, ah := range c.AutoHideContainers() {
		w := ah.DockWidget()
		label := w.Title()
		switch {
		case w == r.Selected:
			label = r.theme.Highlight.Render(IconCursor + label)
		case w.IsClosed():
			label = r.theme.ClosedTab.Render(label)
		case ah.IsExpanded():
			label = r.theme.CurrentTab.Render(label)
		}
		byLoc[ah.SideBarLocation()] = append(byLoc[ah.SideBarLocation()], label)
	}
	var out []string
	for _, loc := range entity.SideBarLocations {
		if names := byLoc[loc]; len(names) > 0 {
			out = append(out, fmt.Sprintf("%s %s %s",
				r.theme.Highlight.Render(IconPin),
				r.theme.Subtle.Render(loc.String()+":"),
				strings.Join(names, ", ")))
		}
	}
	return strings.Join(out, "\n")
}

// Distribute splits total between weights proportionally. Every span gets
// at least minimum; the last span absorbs rounding.
func Distribute(total int, weights []int, minimum int) []int {
	spans := make([]int, len(weights))
	if len(weights) == 0 {
		return spans
	}
	sum := 0
	for _, w := range weights {
		sum += max(w, 0)
	}
	used := 0
	for i, w := range weights {
		if i == len(weights)-1 {
			spans[i] = max(total-used, minimum)
			break
		}
		span := total / len(weights)
		if sum > 0 {
			span = total * max(w, 0) / sum
		}
		spans[i] = max(span, minimum)
		used += spans[i]
	}
	return spans
}

func nodeVisible(n entity.Node) bool {
	switch n := n.(type) {
	case *entity.DockArea:
		return n.IsVisible()
	case *entity.Splitter:
		return n.HasVisibleContent()
	}
	return false
}
