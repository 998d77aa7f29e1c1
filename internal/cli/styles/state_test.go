package styles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/application/usecase"
	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/domain/entity"
)

func sampleReport(t *testing.T) *usecase.StateReport {
	t.Helper()
	cfg := docking.NewEngineConfig()
	cfg.SetAutoHideFlags(docking.DefaultAutoHideConfig)
	m := docking.New(context.Background(), docking.Options{Config: cfg, Scheduler: docking.NewManualScheduler()})
	m.MainContainer().SetGeometry(entity.Rect{W: 800, H: 600})
	require.NotNil(t, m.AddDockWidget(entity.LeftDockWidgetArea, m.CreateDockWidget("files"), nil))
	require.NotNil(t, m.AddDockWidget(entity.BottomDockWidgetArea, m.CreateDockWidget("log"), nil))
	require.NotNil(t, m.AddDockWidgetFloating(m.CreateDockWidget("props")))
	require.NotNil(t, m.AddAutoHideDockWidget(entity.SideBarRight, m.CreateDockWidget("outline")))

	state, err := m.SaveStateErr(3)
	require.NoError(t, err)
	rep, err := usecase.NewInspectStateUseCase().Execute(context.Background(), state, nil)
	require.NoError(t, err)
	return rep
}

func TestStateRenderer_RenderReport(t *testing.T) {
	r := styles.NewStateRenderer(styles.NewTheme())

	out := r.RenderReport("layout.xml", sampleReport(t))

	for _, want := range []string{"layout.xml", "user v3", "compressed", "main", "floating #1", "files", "log", "props", "right:", "outline", "vertical"} {
		assert.Contains(t, out, want)
	}
}

func TestStateRenderer_RenderValidation(t *testing.T) {
	r := styles.NewStateRenderer(styles.NewTheme())

	ok := r.RenderValidation([]usecase.ValidationResult{{Name: "a.xml", Report: sampleReport(t)}})
	assert.Contains(t, ok, "a.xml")
	assert.Contains(t, ok, "1 state(s) valid")

	bad := r.RenderValidation([]usecase.ValidationResult{
		{Name: "a.xml", Report: sampleReport(t)},
		{Name: "b.xml", Err: errors.New("empty state")},
	})
	assert.Contains(t, bad, "empty state")
	assert.Contains(t, bad, "1 of 2 state(s) invalid")
}

func TestStateRenderer_RenderPerspectives(t *testing.T) {
	r := styles.NewStateRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderPerspectives(nil), "No saved perspectives")

	out := r.RenderPerspectives([]usecase.PerspectiveSummary{
		{Perspective: &entity.Perspective{Name: "coding", State: []byte("xxxx"), UpdatedAt: time.Now()}, Widgets: 4, Containers: 2},
		{Perspective: &entity.Perspective{Name: "broken", State: []byte("?")}, Err: errors.New("invalid root element")},
	})
	assert.Contains(t, out, "coding")
	assert.Contains(t, out, "just now")
	assert.Contains(t, out, "broken: invalid root element")
}

func TestPerspectiveRow_ToRow(t *testing.T) {
	row := styles.PerspectiveRow{Name: "x", Widgets: 2500, Containers: 1, Bytes: 512, Broken: false}.ToRow()
	assert.Equal(t, []string{"x", "2,500", "1", "512 B", "-"}, []string(row))

	broken := styles.PerspectiveRow{Name: "y", Bytes: 3, Broken: true}.ToRow()
	assert.Equal(t, "-", broken[1])
	assert.Equal(t, "-", broken[2])
}
