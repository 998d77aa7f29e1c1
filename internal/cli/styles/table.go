package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// NewStyledTable returns a focused table using the theme colors.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(theme.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = s.Selected.Bold(true).Foreground(theme.Text).Background(theme.Surface)

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(s),
		table.WithWidth(width),
		table.WithHeight(height),
		table.WithFocused(true),
	)
}

// PerspectiveTableColumns returns columns for the perspectives table.
func PerspectiveTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Widgets", Width: 9},
		{Title: "Windows", Width: 9},
		{Title: "Size", Width: 9},
		{Title: "Updated", Width: 16},
	}
}

// PerspectiveRow is one row of the perspectives table.
type PerspectiveRow struct {
	Name       string
	Widgets    int
	Containers int
	Bytes      int
	UpdatedAt  time.Time
	Broken     bool
}

// ToRow converts to table.Row. A state that failed to parse has no
// meaningful counts, so they show as dashes.
func (p PerspectiveRow) ToRow() table.Row {
	widgets := humanize.Comma(int64(p.Widgets))
	containers := strconv.Itoa(p.Containers)
	if p.Broken {
		widgets, containers = "-", "-"
	}
	updated := "-"
	if !p.UpdatedAt.IsZero() {
		updated = RelativeTime(p.UpdatedAt)
	}
	return table.Row{p.Name, widgets, containers, humanize.Bytes(uint64(max(p.Bytes, 0))), updated}
}
