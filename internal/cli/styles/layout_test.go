package styles_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/domain/entity"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []int
		minimum int
		want    []int
	}{
		{name: "equal", total: 80, weights: []int{100, 100}, minimum: 6, want: []int{40, 40}},
		{name: "weighted", total: 90, weights: []int{1, 2}, minimum: 6, want: []int{30, 60}},
		{name: "zero weights", total: 30, weights: []int{0, 0, 0}, minimum: 3, want: []int{10, 10, 10}},
		{name: "minimum wins", total: 20, weights: []int{1, 99}, minimum: 6, want: []int{6, 14}},
		{name: "empty", total: 20, weights: nil, minimum: 6, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.Distribute(tt.total, tt.weights, tt.minimum))
		})
	}
}

func TestLayoutRenderer_Render(t *testing.T) {
	cfg := docking.NewEngineConfig()
	cfg.SetAutoHideFlags(docking.DefaultAutoHideConfig)
	m := docking.New(context.Background(), docking.Options{Config: cfg, Scheduler: docking.NewManualScheduler()})
	files := m.CreateDockWidget("files")
	editor := m.CreateDockWidget("editor")
	require.NotNil(t, m.AddDockWidget(entity.LeftDockWidgetArea, files, nil))
	require.NotNil(t, m.AddDockWidget(entity.RightDockWidgetArea, editor, nil))
	require.NotNil(t, m.AddAutoHideDockWidget(entity.SideBarBottom, m.CreateDockWidget("terminal")))

	r := styles.NewLayoutRenderer(styles.NewTheme())
	r.Selected = editor

	out := r.Render(m.MainContainer(), 80, 12)
	assert.Contains(t, out, "files")
	assert.Contains(t, out, "editor")
	assert.NotContains(t, out, "terminal", "pinned widgets are not in the tree")
	assert.Equal(t, 12, lipgloss.Height(out))
	assert.Equal(t, 80, lipgloss.Width(out))

	bars := r.RenderSideBars(m.MainContainer())
	assert.Contains(t, bars, "bottom:")
	assert.Contains(t, bars, "terminal")
}

func TestLayoutRenderer_Empty(t *testing.T) {
	m := docking.New(context.Background(), docking.Options{})
	r := styles.NewLayoutRenderer(styles.NewTheme())

	assert.Contains(t, r.Render(m.MainContainer(), 40, 5), "no open dock areas")
	assert.Empty(t, r.RenderSideBars(m.MainContainer()))
}

func TestLayoutRenderer_HiddenTitleBar(t *testing.T) {
	m := docking.New(context.Background(), docking.Options{Config: docking.NewEngineConfig()})
	central := m.CreateDockWidget("main")
	require.NotNil(t, m.SetCentralWidget(central))

	r := styles.NewLayoutRenderer(styles.NewTheme())
	r.Central = central
	r.TitleBar = func(*entity.DockArea) bool { return false }

	out := r.Render(m.MainContainer(), 40, 6)
	assert.NotContains(t, out, styles.IconStar, "tab line is hidden")
	assert.Contains(t, out, "main")
}
