package docking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/domain/entity"
)

func withFocus(c *EngineConfig) { c.SetFlag(FocusHighlighting, true) }

func TestFocusController_Disabled(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]

	m.SetDockWidgetFocused(w)

	assert.Nil(t, m.FocusController())
	assert.Nil(t, m.FocusedDockWidget())
}

func TestFocusController_SetFocused(t *testing.T) {
	m, _ := newTestManager(t, withFocus)
	a := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]
	b := m.CreateDockWidget("b")
	m.AddDockWidgetTabToArea(b, a.DockArea(), -1)

	var changes []FocusChange
	m.FocusedDockWidgetChanged.Connect(func(c FocusChange) { changes = append(changes, c) })

	m.SetDockWidgetFocused(a)
	m.SetDockWidgetFocused(a)

	assert.Same(t, a, m.FocusedDockWidget())
	assert.Same(t, a, a.DockArea().CurrentDockWidget(), "focusing a tab makes it current")
	require.Len(t, changes, 1)
	assert.Same(t, b, changes[0].Old, "adding b focused it")
	assert.Same(t, a, changes[0].New)
}

func TestFocusController_IgnoresUnfocusable(t *testing.T) {
	m, _ := newTestManager(t, withFocus)
	a := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]
	b := m.CreateDockWidget("b")
	b.SetFeature(entity.DockWidgetFocusable, false)
	m.AddDockWidget(entity.RightDockWidgetArea, b, nil)
	require.Same(t, a, m.FocusedDockWidget())
	m.CloseDockWidget(a)

	m.SetDockWidgetFocused(a)
	m.SetDockWidgetFocused(b)
	m.SetDockWidgetFocused(m.CreateDockWidget("unregistered"))

	assert.Nil(t, m.FocusedDockWidget())
}

func TestFocusController_ClosedWidgetPassesFocus(t *testing.T) {
	m, _ := newTestManager(t, withFocus)
	a := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]
	b := m.CreateDockWidget("b")
	m.AddDockWidgetTabToArea(b, a.DockArea(), -1)
	m.SetDockWidgetFocused(b)

	m.CloseDockWidget(b)

	assert.Same(t, a, m.FocusedDockWidget())

	m.CloseDockWidget(a)
	assert.Nil(t, m.FocusedDockWidget())
}

func TestFocusController_RemovedWidget(t *testing.T) {
	m, _ := newTestManager(t, withFocus)
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]
	m.SetDockWidgetFocused(w)

	m.RemoveDockWidget(w)

	assert.Nil(t, m.FocusedDockWidget())
}

func TestFocusController_AddFocusesNewWidget(t *testing.T) {
	m, _ := newTestManager(t, withFocus)

	w := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]

	assert.Same(t, w, m.FocusedDockWidget())
}

func TestFocusController_FloatingDropRestoresFocus(t *testing.T) {
	m, sched := newTestManager(t, withFocus)
	addWidgets(t, m, entity.LeftDockWidgetArea, "main")
	x := m.CreateDockWidget("x")
	fc := m.AddDockWidgetFloating(x)
	y := m.CreateDockWidget("y")
	m.AddDockWidgetToContainer(entity.RightDockWidgetArea, y, fc.DockContainer())
	m.SetDockWidgetFocused(x)
	m.SetDockWidgetFocused(m.FindDockWidget("main"))

	drag := m.StartDragFloating(fc, fc.Geometry().Center())
	require.True(t, drag.Drop(entity.Point{X: 600, Y: 790}))
	sched.RunPending()

	assert.True(t, fc.IsDestroyed())
	assert.Same(t, x, m.FocusedDockWidget())
}

func TestManager_RefreshConfig_TogglesFocusController(t *testing.T) {
	m, _ := newTestManager(t, nil)
	require.Nil(t, m.FocusController())

	cfg := m.Config().Clone()
	cfg.SetFlag(FocusHighlighting, true)
	m.SetConfig(cfg)
	assert.NotNil(t, m.FocusController())

	cfg.SetFlag(FocusHighlighting, false)
	m.RefreshConfig()
	assert.Nil(t, m.FocusController())
}
