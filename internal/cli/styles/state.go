package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/dockit/internal/application/usecase"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
)

// StateRenderer renders non-interactive output for the state and
// perspectives subcommands.
type StateRenderer struct {
	theme *Theme
}

func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme}
}

// RenderReport renders the header and layout tree of a decoded state.
func (r *StateRenderer) RenderReport(name string, rep *usecase.StateReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", r.theme.Highlight.Render(IconTree), r.theme.Title.Render(name)))
	b.WriteString(r.renderHeader(rep))
	b.WriteString("\n")

	if rep.Document == nil {
		return b.String()
	}
	for i, c := range rep.Document.Containers {
		b.WriteString("\n")
		b.WriteString(r.renderContainerTitle(i, c))
		b.WriteString("\n")
		if c.Root != nil {
			r.renderNode(&b, c.Root, "  ", rep.CentralWidget)
		} else {
			b.WriteString(r.theme.Subtle.Render("  (empty)"))
			b.WriteString("\n")
		}
		for _, sb := range c.SideBars {
			r.renderSideBar(&b, sb)
		}
	}
	return b.String()
}

func (r *StateRenderer) renderHeader(rep *usecase.StateReport) string {
	parts := []string{
		r.theme.BadgeMuted.Render(fmt.Sprintf("format v%d", rep.Version)),
	}
	if rep.HasUserVersion {
		parts = append(parts, r.theme.BadgeMuted.Render(fmt.Sprintf("user v%d", rep.UserVersion)))
	}
	if rep.Compressed {
		parts = append(parts, r.theme.Badge.Render("compressed"))
	}
	parts = append(parts, r.theme.Subtle.Render(fmt.Sprintf("%d widgets, %d closed", len(rep.Widgets), len(rep.ClosedWidgets))))
	if rep.CentralWidget != "" {
		parts = append(parts, r.theme.CentralBadge.Render(IconStar+" "+rep.CentralWidget))
	}
	return strings.Join(parts, " ")
}

func (r *StateRenderer) renderContainerTitle(i int, c *statexml.Container) string {
	if !c.Floating {
		return fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconWindow), r.theme.Subtitle.Render("main"))
	}
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconFloating), r.theme.Subtitle.Render(fmt.Sprintf("floating #%d", i)))
	if g := c.Geometry; g != nil {
		title += r.theme.Subtle.Render(fmt.Sprintf("  %dx%d+%d+%d", g.Width, g.Height, g.X, g.Y))
		if g.State != entity.WindowNormal {
			title += " " + r.theme.BadgeMuted.Render(g.State.String())
		}
	}
	return title
}

func (r *StateRenderer) renderNode(b *strings.Builder, n *statexml.Node, indent, central string) {
	if n.IsArea() {
		b.WriteString(indent)
		b.WriteString(r.renderArea(n.Area, central))
		b.WriteString("\n")
		return
	}
	b.WriteString(indent)
	b.WriteString(r.theme.Splitter.Render(fmt.Sprintf("%s %s %v", IconSplit, n.Orientation, n.Sizes)))
	b.WriteString("\n")
	for _, child := range n.Children {
		r.renderNode(b, child, indent+"  ", central)
	}
}

func (r *StateRenderer) renderArea(a *statexml.Area, central string) string {
	tabs := make([]string, 0, len(a.Widgets))
	for _, w := range a.Widgets {
		label := w.Name
		if w.Name == central {
			label = IconStar + " " + label
		}
		switch {
		case w.Closed:
			tabs = append(tabs, r.theme.ClosedTab.Render(label))
		case w.Name == a.CurrentDockWidget:
			tabs = append(tabs, r.theme.CurrentTab.Render(label))
		default:
			tabs = append(tabs, r.theme.Normal.Render(label))
		}
	}
	return r.theme.Subtle.Render(IconTab+" ") + strings.Join(tabs, r.theme.Subtle.Render(" | "))
}

func (r *StateRenderer) renderSideBar(b *strings.Builder, sb *statexml.SideBar) {
	names := make([]string, 0, len(sb.Widgets))
	for _, w := range sb.Widgets {
		label := fmt.Sprintf("%s (%d)", w.Name, w.Size)
		if w.Closed {
			names = append(names, r.theme.ClosedTab.Render(label))
		} else {
			names = append(names, r.theme.Normal.Render(label))
		}
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		r.theme.Highlight.Render(IconPin),
		r.theme.Subtle.Render(sb.Location.String()+":"),
		strings.Join(names, ", "),
	))
}

// RenderValidation renders one line per result and a summary.
func (r *StateRenderer) RenderValidation(results []usecase.ValidationResult) string {
	var b strings.Builder
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				r.theme.ErrorStyle.Render(IconX),
				r.theme.Normal.Render(res.Name),
				r.theme.ErrorStyle.Render(res.Err.Error()),
			))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(res.Name),
			r.theme.Subtle.Render(fmt.Sprintf("%d widgets", len(res.Report.Widgets))),
		))
	}
	b.WriteString("\n")
	if failed == 0 {
		b.WriteString(r.theme.SuccessStyle.Render(fmt.Sprintf("%d state(s) valid", len(results))))
	} else {
		b.WriteString(r.theme.ErrorStyle.Render(fmt.Sprintf("%d of %d state(s) invalid", failed, len(results))))
	}
	return b.String()
}

// RenderPerspectives renders the stored perspectives as a table.
func (r *StateRenderer) RenderPerspectives(items []usecase.PerspectiveSummary) string {
	if len(items) == 0 {
		return r.theme.Subtle.Render("No saved perspectives found.")
	}
	rows := make([]table.Row, 0, len(items))
	for _, s := range items {
		rows = append(rows, PerspectiveRow{
			Name:       s.Perspective.Name,
			Widgets:    s.Widgets,
			Containers: s.Containers,
			Bytes:      len(s.Perspective.State),
			UpdatedAt:  s.Perspective.UpdatedAt,
			Broken:     s.Err != nil,
		}.ToRow())
	}
	t := NewStyledTable(r.theme, PerspectiveTableColumns(), rows, 80, len(rows)+2)
	t.Blur()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconDatabase), r.theme.Title.Render("Perspectives")))
	b.WriteString(t.View())
	for _, s := range items {
		if s.Err != nil {
			b.WriteString("\n")
			b.WriteString(r.theme.WarningStyle.Render(fmt.Sprintf("%s %s: %v", IconWarning, s.Perspective.Name, s.Err)))
		}
	}
	return b.String()
}

// RenderDone renders a one-line success message.
func (r *StateRenderer) RenderDone(format string, args ...any) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), fmt.Sprintf(format, args...))
}

func (r *StateRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
