package docking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/domain/entity"
)

func withAutoHide(flags AutoHideFlag) func(*EngineConfig) {
	return func(c *EngineConfig) { c.SetAutoHideFlags(DefaultAutoHideConfig | flags) }
}

func TestManager_AddAutoHideDockWidget(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := m.CreateDockWidget("w")
	var toggled []bool
	w.ViewToggled.Connect(func(open bool) { toggled = append(toggled, open) })

	ah := m.AddAutoHideDockWidget(entity.SideBarRight, w)

	require.NotNil(t, ah)
	assert.Same(t, w, m.FindDockWidget("w"))
	assert.Equal(t, entity.SideBarRight, ah.SideBarLocation())
	assert.Equal(t, 400, ah.Size(), "width of the widget for a vertical sidebar")
	assert.False(t, ah.IsExpanded())
	assert.Equal(t, []bool{true}, toggled)
	assert.Equal(t, 1, m.MainContainer().SideBar(entity.SideBarRight).Count())

	assert.Nil(t, m.AddAutoHideDockWidget(entity.SideBarNone, m.CreateDockWidget("x")))
}

func TestManager_SetAutoHide(t *testing.T) {
	t.Run("requires the feature", func(t *testing.T) {
		m, _ := newTestManager(t, nil)
		w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]

		assert.False(t, m.SetAutoHide(w, true, entity.SideBarLeft))
		assert.False(t, w.IsAutoHide())
	})

	t.Run("requires a pinnable widget", func(t *testing.T) {
		m, _ := newTestManager(t, withAutoHide(0))
		w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]
		w.SetFeature(entity.DockWidgetPinnable, false)

		assert.False(t, m.SetAutoHide(w, true, entity.SideBarLeft))
	})

	t.Run("pin and unpin", func(t *testing.T) {
		m, _ := newTestManager(t, withAutoHide(0))
		ws := addWidgets(t, m, entity.LeftDockWidgetArea, "a", "w")

		require.True(t, m.SetAutoHide(ws[1], true, entity.SideBarNone))
		ah := ws[1].AutoHideContainer()
		require.NotNil(t, ah)
		assert.Equal(t, entity.SideBarLeft, ah.SideBarLocation())
		assert.Equal(t, 1, m.MainContainer().DockAreaCount())

		require.True(t, m.SetAutoHide(ws[1], true, entity.SideBarBottom))
		assert.Same(t, ah, ws[1].AutoHideContainer())
		assert.Equal(t, entity.SideBarBottom, ah.SideBarLocation())

		require.True(t, m.SetAutoHide(ws[1], false, entity.SideBarNone))
		assert.False(t, ws[1].IsAutoHide())
		assert.Equal(t, 2, m.MainContainer().DockAreaCount())
		root := m.MainContainer().RootSplitter()
		assert.Equal(t, entity.Vertical, root.Orientation())
		assert.Same(t, ws[1].DockArea(), root.Child(1))
		require.NoError(t, m.MainContainer().Validate())
	})
}

func TestManager_SideBarLocationFor(t *testing.T) {
	m, _ := newTestManager(t, nil)
	ws := addWidgets(t, m, entity.LeftDockWidgetArea, "right", "left")
	bottom := addWidgets(t, m, entity.BottomDockWidgetArea, "bottom")[0]

	assert.Equal(t, entity.SideBarLeft, m.SideBarLocationFor(ws[1].DockArea()))
	assert.Equal(t, entity.SideBarRight, m.SideBarLocationFor(ws[0].DockArea()))
	assert.Equal(t, entity.SideBarBottom, m.SideBarLocationFor(bottom.DockArea()))
	assert.Equal(t, entity.SideBarLeft, m.SideBarLocationFor(nil))
}

func TestManager_SetDockAreaAutoHide(t *testing.T) {
	build := func(t *testing.T, flags AutoHideFlag) (*Manager, []*entity.DockWidget) {
		m, _ := newTestManager(t, withAutoHide(flags))
		ws := addWidgets(t, m, entity.LeftDockWidgetArea, "a")
		for _, name := range []string{"b", "c"} {
			w := m.CreateDockWidget(name)
			m.AddDockWidgetTabToArea(w, ws[0].DockArea(), -1)
			ws = append(ws, w)
		}
		return m, ws
	}

	t.Run("current tab only", func(t *testing.T) {
		m, ws := build(t, 0)

		require.True(t, m.SetDockAreaAutoHide(ws[2].DockArea(), entity.SideBarTop))

		assert.True(t, ws[2].IsAutoHide())
		assert.False(t, ws[0].IsAutoHide())
		assert.False(t, ws[1].IsAutoHide())
	})

	t.Run("whole area", func(t *testing.T) {
		m, ws := build(t, AutoHideButtonTogglesArea)

		require.True(t, m.SetDockAreaAutoHide(ws[0].DockArea(), entity.SideBarTop))

		bar := m.MainContainer().SideBar(entity.SideBarTop)
		require.Equal(t, 3, bar.Count())
		for i, ah := range bar.Containers() {
			assert.Same(t, ws[i], ah.DockWidget())
		}
		assert.Zero(t, m.MainContainer().DockAreaCount())
	})

	t.Run("central area", func(t *testing.T) {
		m, _ := newTestManager(t, withAutoHide(0))
		area := m.SetCentralWidget(m.CreateDockWidget("central"))

		assert.False(t, m.SetDockAreaAutoHide(area, entity.SideBarLeft))
	})
}

func TestManager_ExpandAutoHide_CollapsesSiblings(t *testing.T) {
	m, _ := newTestManager(t, nil)
	a := m.AddAutoHideDockWidget(entity.SideBarLeft, m.CreateDockWidget("a"))
	b := m.AddAutoHideDockWidget(entity.SideBarBottom, m.CreateDockWidget("b"))

	m.ExpandAutoHide(a)
	assert.True(t, a.IsExpanded())

	m.ToggleAutoHide(b)
	assert.True(t, b.IsExpanded())
	assert.False(t, a.IsExpanded())

	m.ToggleAutoHide(b)
	assert.False(t, b.IsExpanded())
}

func TestManager_AutoHideHover(t *testing.T) {
	m, sched := newTestManager(t, withAutoHide(AutoHideShowOnMouseOver))
	ah := m.AddAutoHideDockWidget(entity.SideBarLeft, m.CreateDockWidget("w"))

	m.SideBarTabHovered(ah, true)
	require.True(t, ah.IsExpanded())

	// tab to panel keeps the panel open
	m.SideBarTabHovered(ah, false)
	m.AutoHidePanelHovered(ah, true)
	sched.RunPending()
	assert.True(t, ah.IsExpanded())

	m.AutoHidePanelHovered(ah, false)
	sched.RunPending()
	assert.False(t, ah.IsExpanded())
}

func TestManager_AutoHideHover_Disabled(t *testing.T) {
	m, sched := newTestManager(t, withAutoHide(0))
	ah := m.AddAutoHideDockWidget(entity.SideBarLeft, m.CreateDockWidget("w"))

	m.SideBarTabHovered(ah, true)
	sched.RunPending()

	assert.False(t, ah.IsExpanded())
}

func TestManager_SideBarTabDragHovered(t *testing.T) {
	m, sched := newTestManager(t, func(c *EngineConfig) {
		c.SetAutoHideFlags(DefaultAutoHideConfig | AutoHideOpenOnDragHover)
		c.SetParam(AutoHideOpenOnDragHoverDelay, 500*time.Millisecond)
	})
	ah := m.AddAutoHideDockWidget(entity.SideBarLeft, m.CreateDockWidget("w"))

	m.SideBarTabDragHovered(ah, true)
	require.Equal(t, 1, sched.Timers())
	sched.Advance(499 * time.Millisecond)
	assert.False(t, ah.IsExpanded())
	sched.Advance(time.Millisecond)
	assert.True(t, ah.IsExpanded())
	assert.Zero(t, sched.Timers())

	m.CollapseAutoHide(ah)
	m.SideBarTabDragHovered(ah, true)
	m.SideBarTabDragHovered(ah, false)
	assert.Zero(t, sched.Timers())
	sched.Advance(time.Second)
	assert.False(t, ah.IsExpanded())
}

func TestManager_SideBarTabDragHovered_RemovedWidgetCancelsTimer(t *testing.T) {
	m, sched := newTestManager(t, withAutoHide(AutoHideOpenOnDragHover))
	w := m.CreateDockWidget("w")
	ah := m.AddAutoHideDockWidget(entity.SideBarLeft, w)

	m.SideBarTabDragHovered(ah, true)
	m.RemoveDockWidget(w)

	assert.Zero(t, sched.Timers())
}

func TestManager_HandlePointerPress(t *testing.T) {
	m, _ := newTestManager(t, withAutoHide(0))
	w := m.CreateDockWidget("w")
	ah := m.AddAutoHideDockWidget(entity.SideBarLeft, w)
	m.ResizeAutoHide(ah, 300)
	m.ExpandAutoHide(ah)

	m.HandlePointerPress(PointerPress{Pos: entity.Point{X: 100, Y: 400}})
	assert.True(t, ah.IsExpanded(), "inside the panel")

	m.HandlePointerPress(PointerPress{Pos: entity.Point{X: 900, Y: 400}, DialogOwner: w})
	assert.True(t, ah.IsExpanded(), "dialog of the panel widget")

	m.HandlePointerPress(PointerPress{Pos: entity.Point{X: 900, Y: 400}})
	assert.False(t, ah.IsExpanded())
}

func TestManager_AutoHideCloseButton(t *testing.T) {
	t.Run("closes the widget", func(t *testing.T) {
		m, _ := newTestManager(t, withAutoHide(0))
		w := m.CreateDockWidget("w")
		ah := m.AddAutoHideDockWidget(entity.SideBarLeft, w)
		m.ExpandAutoHide(ah)

		m.AutoHideCloseButton(ah)

		assert.True(t, w.IsClosed())
		assert.False(t, ah.IsExpanded())
		assert.True(t, w.IsAutoHide(), "a closed widget keeps its sidebar")
	})

	t.Run("collapses the panel", func(t *testing.T) {
		m, _ := newTestManager(t, withAutoHide(AutoHideCloseButtonCollapsesDock))
		w := m.CreateDockWidget("w")
		ah := m.AddAutoHideDockWidget(entity.SideBarLeft, w)
		m.ExpandAutoHide(ah)

		m.AutoHideCloseButton(ah)

		assert.False(t, w.IsClosed())
		assert.False(t, ah.IsExpanded())
	})
}
