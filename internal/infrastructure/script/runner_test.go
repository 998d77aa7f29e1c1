package script_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/script"
	"github.com/bnema/dockit/internal/logging"
)

func newManager(configure func(*docking.EngineConfig)) *docking.Manager {
	cfg := docking.NewEngineConfig()
	if configure != nil {
		configure(cfg)
	}
	return docking.New(context.Background(), docking.Options{Config: cfg, Scheduler: docking.NewManualScheduler()})
}

func TestRunner_BuildsLayout(t *testing.T) {
	m := newManager(func(c *docking.EngineConfig) { c.SetAutoHideFlags(docking.DefaultAutoHideConfig) })
	src := `
dock.geometry(1200, 800);
dock.widget("editor", {title: "Editor"});
dock.central("editor");
dock.widget("files", {width: 250});
dock.add("left", "files");
dock.widget("outline", {closable: false});
dock.tab("outline", "files");
dock.widget("log");
dock.add("bottom", "log");
dock.widget("search");
dock.float("search", {x: 10, y: 20, w: 300, h: 200});
dock.widget("notes");
dock.autoHide("notes", "right");
dock.savePerspective("default");
`
	require.NoError(t, script.NewRunner(0).Run(context.Background(), m, "layout.js", src))

	assert.Same(t, m.FindDockWidget("editor"), m.CentralWidget())
	assert.Equal(t, "Editor", m.FindDockWidget("editor").Title())
	files, outline := m.FindDockWidget("files"), m.FindDockWidget("outline")
	require.NotNil(t, files)
	assert.Same(t, files.DockArea(), outline.DockArea())
	assert.False(t, outline.HasFeature(entity.DockWidgetClosable))
	assert.Equal(t, 250, files.Size().W)

	require.Len(t, m.FloatingWidgets(), 1)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 300, H: 200}, m.FloatingWidgets()[0].Geometry())
	assert.True(t, m.FindDockWidget("notes").IsAutoHide())
	assert.Equal(t, []string{"default"}, m.PerspectiveNames())
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax", src: `dock.add(`, wantErr: "layout.js"},
		{name: "unknown widget", src: `dock.add("left", "ghost")`, wantErr: `unknown dock widget "ghost"`},
		{name: "bad side", src: `dock.widget("a"); dock.add("middle", "a")`, wantErr: `invalid side "middle"`},
		{name: "duplicate", src: `dock.widget("a"); dock.widget("a")`, wantErr: "already exists"},
		{name: "auto-hide disabled", src: `dock.widget("a"); dock.autoHide("a", "left")`, wantErr: "auto-hide is disabled"},
		{name: "thrown", src: `throw new Error("boom")`, wantErr: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := script.NewRunner(0).Run(context.Background(), newManager(nil), "layout.js", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunner_ScriptCanCatchErrors(t *testing.T) {
	m := newManager(nil)
	src := `
var caught = "";
try { dock.add("left", "ghost"); } catch (e) { caught = String(e); }
if (caught.indexOf("ghost") < 0) { throw new Error("not caught: " + caught); }
dock.widget("a"); dock.add("left", "a");
`
	require.NoError(t, script.NewRunner(0).Run(context.Background(), m, "catch.js", src))
	assert.NotNil(t, m.FindDockWidget("a"))
}

func TestRunner_Timeout(t *testing.T) {
	err := script.NewRunner(50*time.Millisecond).Run(context.Background(), newManager(nil), "loop.js", `for (;;) {}`)

	assert.ErrorIs(t, err, script.ErrInterrupted)
}

func TestRunner_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := script.NewRunner(time.Minute).Run(ctx, newManager(nil), "loop.js", `for (;;) {}`)

	assert.ErrorIs(t, err, script.ErrInterrupted)
}

func TestRunner_ConsoleAndQueries(t *testing.T) {
	var sb strings.Builder
	ctx := logging.WithContext(context.Background(), zerolog.New(&sb))
	m := newManager(nil)
	src := `
dock.widget("b"); dock.add("left", "b");
dock.widget("a"); dock.add("right", "a", "b");
dock.sizes("a", [300, 900]);
console.log("widgets", dock.widgets().join(","));
if (dock.dump().length === 0) { throw new Error("empty dump"); }
`
	require.NoError(t, script.NewRunner(0).Run(ctx, m, "query.js", src))

	assert.Contains(t, sb.String(), "widgets a,b")
	assert.Equal(t, []int{300, 900}, m.SplitterSizes(m.FindDockWidget("a").DockArea()))
}
