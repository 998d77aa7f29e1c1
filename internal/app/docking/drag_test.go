package docking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/domain/entity"
)

func TestAreaDropSide(t *testing.T) {
	r := entity.Rect{X: 0, Y: 0, W: 300, H: 300}
	tests := []struct {
		name string
		p    entity.Point
		want entity.DockWidgetArea
	}{
		{name: "center", p: entity.Point{X: 150, Y: 150}, want: entity.CenterDockWidgetArea},
		{name: "left", p: entity.Point{X: 10, Y: 150}, want: entity.LeftDockWidgetArea},
		{name: "right", p: entity.Point{X: 290, Y: 150}, want: entity.RightDockWidgetArea},
		{name: "top", p: entity.Point{X: 150, Y: 10}, want: entity.TopDockWidgetArea},
		{name: "bottom", p: entity.Point{X: 150, Y: 290}, want: entity.BottomDockWidgetArea},
		{name: "corner", p: entity.Point{X: 10, Y: 10}, want: entity.NoDockWidgetArea},
		{name: "outside", p: entity.Point{X: 400, Y: 10}, want: entity.NoDockWidgetArea},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreaDropSide(r, tt.p))
		})
	}
}

func TestContainerDropSide(t *testing.T) {
	r := entity.Rect{X: 0, Y: 0, W: 1000, H: 500}

	assert.Equal(t, entity.LeftDockWidgetArea, ContainerDropSide(r, entity.Point{X: 20, Y: 250}, false))
	assert.Equal(t, entity.BottomDockWidgetArea, ContainerDropSide(r, entity.Point{X: 500, Y: 480}, false))
	assert.Equal(t, entity.NoDockWidgetArea, ContainerDropSide(r, entity.Point{X: 500, Y: 250}, false))
	assert.Equal(t, entity.TopDockWidgetArea, ContainerDropSide(r, entity.Point{X: 500, Y: 200}, true))
}

func TestDragSession_FloatThenDockBack(t *testing.T) {
	m, sched := newTestManager(t, nil)
	other := addWidgets(t, m, entity.LeftDockWidgetArea, "other")[0]
	w := m.CreateDockWidget("w")
	m.AddDockWidget(entity.RightDockWidgetArea, w, nil)

	fc := m.AddDockWidgetFloating(w)
	require.NotNil(t, fc)
	assert.Same(t, fc.DockContainer(), w.DockContainer())

	g := fc.Geometry()
	drag := m.StartDragFloating(fc, entity.Point{X: g.X + 10, Y: g.Y + 10})
	require.NotNil(t, drag)
	assert.True(t, drag.Drop(entity.Point{X: 600, Y: 790}))
	sched.RunPending()

	assert.True(t, fc.IsDestroyed())
	assert.Empty(t, m.FloatingWidgets())
	require.Same(t, m.MainContainer(), w.DockContainer())

	root := m.MainContainer().RootSplitter()
	require.Equal(t, 2, root.Count())
	assert.Equal(t, entity.Vertical, root.Orientation())
	assert.Same(t, other.DockArea(), root.Child(0))
	assert.Same(t, w.DockArea(), root.Child(1))
	require.NoError(t, m.MainContainer().Validate())
}

func TestDragSession_DropIntoEmptyMainContainer(t *testing.T) {
	m, sched := newTestManager(t, nil)
	w := m.CreateDockWidget("w")
	fc := m.AddDockWidgetFloating(w)

	drag := m.StartDragFloating(fc, fc.Geometry().Center())
	target := drag.Move(entity.Point{X: 600, Y: 790})

	assert.True(t, target.Valid())
	assert.Nil(t, target.Area)
	assert.Equal(t, entity.BottomDockWidgetArea, target.Side)

	require.True(t, drag.Drop(entity.Point{X: 600, Y: 790}))
	sched.RunPending()

	assert.True(t, fc.IsDestroyed())
	assert.Same(t, m.MainContainer(), w.DockContainer())
}

func TestDragSession_TabIntoArea(t *testing.T) {
	m, _ := newTestManager(t, nil)
	ws := addWidgets(t, m, entity.LeftDockWidgetArea, "a", "b")
	// b sits left of a, each area covers half of the container
	drag := m.StartDrag(ws[1])
	require.NotNil(t, drag)

	ok := drag.Drop(entity.Point{X: 900, Y: 400})

	assert.True(t, ok)
	assert.Same(t, ws[0].DockArea(), ws[1].DockArea())
	assert.Equal(t, 1, m.MainContainer().DockAreaCount())
}

func TestDragSession_OwnAreaCenterIsNoop(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]
	before := m.DumpLayout()

	drag := m.StartDrag(w)
	target := drag.Move(mainRect.Center())

	assert.False(t, target.Valid())
	assert.False(t, drag.Drop(mainRect.Center()))
	assert.Equal(t, before, m.DumpLayout())
}

func TestDragSession_CentralAreaAcceptsOuterSidesOnly(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.SetCentralWidget(m.CreateDockWidget("central"))
	w := m.CreateDockWidget("w")
	fc := m.AddDockWidgetFloating(w)

	drag := m.StartDrag(w)
	require.NotNil(t, drag)
	// move the floater out of the way
	fc.SetGeometry(entity.Rect{X: 0, Y: 0, W: 10, H: 10})

	center := drag.Move(mainRect.Center())
	assert.False(t, center.Valid())

	left := drag.Move(entity.Point{X: 20, Y: 400})
	assert.True(t, left.Valid())
	assert.Equal(t, entity.LeftDockWidgetArea, left.Side)
	assert.Same(t, m.MainContainer().CentralArea(), left.Area)
}

func TestDragSession_NonFloatableSkipsFloatingTargets(t *testing.T) {
	m, _ := newTestManager(t, nil)
	fc := m.AddDockWidgetFloating(m.CreateDockWidget("floater"))
	fc.SetGeometry(entity.Rect{X: 100, Y: 100, W: 300, H: 300})
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]
	w.SetFeature(entity.DockWidgetFloatable, false)

	drag := m.StartDrag(w)
	target := drag.Move(entity.Point{X: 250, Y: 250})

	assert.False(t, target.Valid())
	assert.Same(t, fc.DockContainer(), target.Container)
}

func TestDragSession_Cancel(t *testing.T) {
	m, _ := newTestManager(t, nil)
	ws := addWidgets(t, m, entity.LeftDockWidgetArea, "a", "b")
	before := m.DumpLayout()

	drag := m.StartDrag(ws[0])
	drag.Move(entity.Point{X: 300, Y: 400})
	drag.Cancel()

	assert.False(t, drag.Drop(entity.Point{X: 300, Y: 400}))
	assert.Equal(t, before, m.DumpLayout())
}

func TestDragSession_AreaDrop(t *testing.T) {
	m, _ := newTestManager(t, nil)
	ws := addWidgets(t, m, entity.LeftDockWidgetArea, "a", "b")
	area := ws[1].DockArea()

	drag := m.StartDragArea(area)
	require.NotNil(t, drag)
	require.True(t, drag.Drop(entity.Point{X: 900, Y: 790}))

	root := m.MainContainer().RootSplitter()
	require.Equal(t, 2, root.Count())
	assert.Equal(t, entity.Vertical, root.Orientation())
	assert.Same(t, ws[0].DockArea(), root.Child(0))
	assert.Same(t, area, root.Child(1))
	assert.Same(t, area, ws[1].DockArea())
	require.NoError(t, m.MainContainer().Validate())
}

func TestDragSession_StartRejectsFixedWidgets(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]
	w.SetFeature(entity.DockWidgetMovable, false)

	assert.Nil(t, m.StartDrag(w))
	assert.Nil(t, m.StartDragArea(w.DockArea()))
}

func TestDragPreviewStyle(t *testing.T) {
	m, _ := newTestManager(t, func(c *EngineConfig) { c.SetFlags(NonOpaqueWithWindowFrame | DragPreviewIsDynamic) })

	assert.Equal(t, PreviewStyle{ShowsContent: true, Dynamic: true, WindowFrame: true}, m.DragPreviewStyle())
}
