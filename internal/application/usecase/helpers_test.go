package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/logging"
)

func ctxForTest() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// savedLayout returns the state of a manager with files and log docked,
// props floating and outline pinned.
func savedLayout(t *testing.T, compressed bool) []byte {
	t.Helper()
	cfg := docking.NewEngineConfig()
	cfg.SetFlag(docking.XmlCompressionEnabled, compressed)
	cfg.SetAutoHideFlags(docking.DefaultAutoHideConfig)
	m := docking.New(ctxForTest(), docking.Options{Config: cfg, Scheduler: docking.NewManualScheduler()})
	m.MainContainer().SetGeometry(entity.Rect{W: 1000, H: 700})

	require.NotNil(t, m.AddDockWidget(entity.LeftDockWidgetArea, m.CreateDockWidget("files"), nil))
	require.NotNil(t, m.AddDockWidget(entity.BottomDockWidgetArea, m.CreateDockWidget("log"), nil))
	require.NotNil(t, m.AddDockWidgetFloating(m.CreateDockWidget("props")))
	require.NotNil(t, m.AddAutoHideDockWidget(entity.SideBarLeft, m.CreateDockWidget("outline")))
	m.CloseDockWidget(m.FindDockWidget("log"))

	state, err := m.SaveStateErr(7)
	require.NoError(t, err)
	return state
}
