package entity_test

import (
	"testing"

	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockContainer_AddDockWidget_FirstWidgetCreatesArea(t *testing.T) {
	c := entity.NewDockContainer(false)
	w := entity.NewDockWidget("Properties")

	area := c.AddDockWidget(entity.LeftDockWidgetArea, w, nil, -1, false)

	require.NotNil(t, area)
	assert.Equal(t, area, w.DockArea())
	assert.Equal(t, c, w.DockContainer())
	assert.Equal(t, 1, c.DockAreaCount())
	assert.Equal(t, w, area.CurrentDockWidget())
	assert.Equal(t, w, c.TopLevelDockWidget())
	require.NoError(t, c.Validate())
}

func TestDockContainer_AddDockWidget_Sides(t *testing.T) {
	tests := []struct {
		name        string
		side        entity.DockWidgetArea
		orientation entity.Orientation
		newIndex    int
	}{
		{name: "left", side: entity.LeftDockWidgetArea, orientation: entity.Horizontal, newIndex: 0},
		{name: "right", side: entity.RightDockWidgetArea, orientation: entity.Horizontal, newIndex: 1},
		{name: "top", side: entity.TopDockWidgetArea, orientation: entity.Vertical, newIndex: 0},
		{name: "bottom", side: entity.BottomDockWidgetArea, orientation: entity.Vertical, newIndex: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.NewDockContainer(false)
			first := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("a"), nil, -1, false)

			added := c.AddDockWidget(tt.side, entity.NewDockWidget("b"), first, -1, false)

			root := c.RootSplitter()
			require.Equal(t, 2, root.Count())
			assert.Equal(t, tt.orientation, root.Orientation())
			assert.Equal(t, added, root.Child(tt.newIndex))
			require.NoError(t, c.Validate())
		})
	}
}

func TestDockContainer_AddDockWidget_CenterTabifies(t *testing.T) {
	c := entity.NewDockContainer(false)
	a := entity.NewDockWidget("a")
	b := entity.NewDockWidget("b")
	area := c.AddDockWidget(entity.LeftDockWidgetArea, a, nil, -1, false)

	got := c.AddDockWidget(entity.CenterDockWidgetArea, b, area, -1, false)

	assert.Equal(t, area, got)
	assert.Equal(t, []*entity.DockWidget{a, b}, area.DockWidgets())
	assert.Equal(t, b, area.CurrentDockWidget())
	assert.True(t, a.IsTabbed())
	assert.Nil(t, c.TopLevelDockWidget())
}

func TestDockContainer_AddDockWidget_WrapsOnOrientationChange(t *testing.T) {
	c := entity.NewDockContainer(false)
	left := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("left"), nil, -1, false)
	right := c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)

	bottom := c.AddDockWidget(entity.BottomDockWidgetArea, entity.NewDockWidget("bottom"), right, -1, false)

	root := c.RootSplitter()
	require.Equal(t, 2, root.Count())
	assert.Equal(t, left, root.Child(0))
	inner, ok := root.Child(1).(*entity.Splitter)
	require.True(t, ok)
	assert.Equal(t, entity.Vertical, inner.Orientation())
	assert.Equal(t, []entity.Node{right, bottom}, inner.Children())
	require.NoError(t, c.Validate())
}

func TestDockContainer_AddDockWidget_SplitsWeight(t *testing.T) {
	c := entity.NewDockContainer(false)
	left := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("left"), nil, -1, false)
	right := c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)
	require.True(t, c.RootSplitter().SetSizes([]int{300, 100}))

	c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("mid"), left, -1, false)

	assert.Equal(t, []int{150, 150, 100}, c.RootSplitter().Sizes())
	assert.Equal(t, right, c.RootSplitter().Child(2))

	c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("eq"), right, -1, true)
	sizes := c.RootSplitter().Sizes()
	require.Len(t, sizes, 4)
	assert.Equal(t, sizes[0], sizes[3])
}

func TestDockContainer_AddDockWidget_OwnAreaIsNoop(t *testing.T) {
	c := entity.NewDockContainer(false)
	w := entity.NewDockWidget("solo")
	area := c.AddDockWidget(entity.LeftDockWidgetArea, w, nil, -1, false)

	got := c.AddDockWidget(entity.CenterDockWidgetArea, w, area, -1, false)
	assert.Equal(t, area, got)

	got = c.AddDockWidget(entity.RightDockWidgetArea, w, area, -1, false)
	assert.Equal(t, area, got)
	assert.Equal(t, 1, c.DockAreaCount())
	assert.Equal(t, area, w.DockArea())
}

func TestDockContainer_RemoveLastWidgetNormalizesTree(t *testing.T) {
	c := entity.NewDockContainer(false)
	left := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("left"), nil, -1, false)
	right := c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)
	bottomW := entity.NewDockWidget("bottom")
	c.AddDockWidget(entity.BottomDockWidgetArea, bottomW, right, -1, false)

	got := entity.Detach(bottomW)

	assert.Equal(t, c, got)
	assert.Nil(t, bottomW.DockArea())
	root := c.RootSplitter()
	assert.Equal(t, []entity.Node{left, right}, root.Children())
	assert.Equal(t, root, right.ParentSplitter())
	require.NoError(t, c.Validate())
}

func TestDockContainer_RemoveCollapsesRoot(t *testing.T) {
	c := entity.NewDockContainer(false)
	topW := entity.NewDockWidget("top")
	top := c.AddDockWidget(entity.TopDockWidgetArea, topW, nil, -1, false)
	left := c.AddDockWidget(entity.BottomDockWidgetArea, entity.NewDockWidget("left"), top, -1, false)
	c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)

	entity.Detach(topW)

	root := c.RootSplitter()
	assert.Nil(t, root.ParentSplitter())
	assert.Equal(t, entity.Horizontal, root.Orientation())
	assert.Equal(t, 2, root.Count())
	require.NoError(t, c.Validate())
}

func TestDockContainer_CentralAreaSurvivesEmptying(t *testing.T) {
	c := entity.NewDockContainer(false)
	w := entity.NewDockWidget("editor")
	area := c.AddDockWidget(entity.CenterDockWidgetArea, w, nil, -1, false)
	c.SetCentralArea(area)

	entity.Detach(w)

	assert.Equal(t, area, c.CentralArea())
	assert.Equal(t, 1, c.DockAreaCount())
	assert.True(t, area.IsVisible())
	assert.Equal(t, entity.OuterDockAreas, area.AllowedAreas())
	require.NoError(t, c.Validate())
}

func TestDockContainer_DropContainer(t *testing.T) {
	main := entity.NewDockContainer(false)
	mainArea := main.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("main"), nil, -1, false)

	floater := entity.NewDockContainer(true)
	x := entity.NewDockWidget("x")
	y := entity.NewDockWidget("y")
	xa := floater.AddDockWidget(entity.LeftDockWidgetArea, x, nil, -1, false)
	floater.AddDockWidget(entity.BottomDockWidgetArea, y, xa, -1, false)

	t.Run("side drop moves the subtree", func(t *testing.T) {
		main.DropContainer(floater, entity.RightDockWidgetArea, mainArea, false)

		assert.True(t, floater.IsEmpty())
		assert.Equal(t, main, x.DockContainer())
		assert.Equal(t, main, y.DockContainer())
		assert.Equal(t, 3, main.DockAreaCount())
		require.NoError(t, main.Validate())
		require.NoError(t, floater.Validate())
	})
}

func TestDockContainer_DropContainerCenterMerges(t *testing.T) {
	main := entity.NewDockContainer(false)
	mainArea := main.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("main"), nil, -1, false)

	floater := entity.NewDockContainer(true)
	x := entity.NewDockWidget("x")
	floater.AddDockWidget(entity.LeftDockWidgetArea, x, nil, -1, false)

	main.DropContainer(floater, entity.CenterDockWidgetArea, mainArea, false)

	assert.True(t, floater.IsEmpty())
	assert.Equal(t, mainArea, x.DockArea())
	assert.Equal(t, x, mainArea.CurrentDockWidget())
	require.NoError(t, main.Validate())
}

func TestDockContainer_DropDockAreaKeepsIdentity(t *testing.T) {
	c := entity.NewDockContainer(false)
	a := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("a"), nil, -1, false)
	b := c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("b"), a, -1, false)

	got := c.DropDockArea(b, entity.TopDockWidgetArea, a, false)

	assert.Equal(t, b, got)
	root := c.RootSplitter()
	assert.Equal(t, entity.Vertical, root.Orientation())
	assert.Equal(t, []entity.Node{b, a}, root.Children())
	require.NoError(t, c.Validate())
}

func TestDockContainer_AutoHide(t *testing.T) {
	c := entity.NewDockContainer(false)
	w := entity.NewDockWidget("log")
	w.SetSize(entity.Size{W: 480, H: 200})
	c.AddDockWidget(entity.LeftDockWidgetArea, w, nil, -1, false)

	ah := c.CreateAutoHideContainer(entity.SideBarLeft, w, -1)

	require.NotNil(t, ah)
	assert.Nil(t, w.DockArea())
	assert.True(t, w.IsAutoHide())
	assert.Equal(t, 480, ah.Size())
	assert.False(t, ah.IsExpanded())
	assert.Equal(t, 0, c.DockAreaCount())
	assert.Equal(t, 1, c.SideBar(entity.SideBarLeft).Count())
	require.NoError(t, c.Validate())

	ah.SetExpanded(true)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 480, H: 600}, ah.Rect(entity.Rect{W: 1000, H: 600}))

	entity.Detach(w)
	assert.True(t, c.IsEmpty())
	assert.False(t, w.IsAutoHide())
}

func TestDockContainer_ReplaceLayout(t *testing.T) {
	c := entity.NewDockContainer(false)
	a := entity.NewDockWidget("a")
	b := entity.NewDockWidget("b")
	orphan := entity.NewDockWidget("orphan")
	c.AddDockWidget(entity.LeftDockWidgetArea, orphan, nil, -1, false)

	c.ReplaceLayout(&entity.LayoutSpec{
		Orientation: entity.Vertical,
		Sizes:       []int{300, 100, 50},
		Children: []*entity.LayoutSpec{
			{Area: &entity.AreaSpec{Widgets: []*entity.DockWidget{a, b}, Current: "b"}},
			{Area: &entity.AreaSpec{Widgets: []*entity.DockWidget{nil}}},
			{Orientation: entity.Horizontal},
		},
	})

	assert.Nil(t, orphan.DockArea())
	require.Equal(t, 1, c.DockAreaCount())
	area := c.DockArea(0)
	assert.Equal(t, b, area.CurrentDockWidget())
	assert.Equal(t, "b", area.StoredCurrentName())
	assert.Equal(t, 1, c.RootSplitter().Count())
	require.NoError(t, c.Validate())
}

func TestDockContainer_Layout(t *testing.T) {
	c := entity.NewDockContainer(false)
	hidden := entity.NewDockWidget("hidden")
	left := c.AddDockWidget(entity.LeftDockWidgetArea, entity.NewDockWidget("left"), nil, -1, false)
	right := c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)
	gone := c.AddDockWidget(entity.RightDockWidgetArea, hidden, right, -1, false)
	require.True(t, c.RootSplitter().SetSizes([]int{100, 300, 50}))
	hidden.SetClosedState(true)

	rects := c.Layout(entity.Rect{W: 400, H: 200})

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 200}, rects[left])
	assert.Equal(t, entity.Rect{X: 100, Y: 0, W: 300, H: 200}, rects[right])
	assert.True(t, rects[gone].IsEmpty())
}

func TestDockContainer_AddDockWidget_OwnAreaReopensClosedWidget(t *testing.T) {
	t.Run("center of own area", func(t *testing.T) {
		c := entity.NewDockContainer(false)
		a := entity.NewDockWidget("a")
		b := entity.NewDockWidget("b")
		area := c.AddDockWidget(entity.LeftDockWidgetArea, a, nil, -1, false)
		c.AddDockWidget(entity.CenterDockWidgetArea, b, area, -1, false)
		b.SetClosedState(true)
		area.SetCurrentDockWidget(a)

		got := c.AddDockWidget(entity.CenterDockWidgetArea, b, area, -1, false)

		assert.Equal(t, area, got)
		assert.False(t, b.IsClosed())
		assert.Equal(t, b, area.CurrentDockWidget())
		require.NoError(t, c.Validate())
	})

	t.Run("side of single widget area", func(t *testing.T) {
		c := entity.NewDockContainer(false)
		w := entity.NewDockWidget("solo")
		area := c.AddDockWidget(entity.LeftDockWidgetArea, w, nil, -1, false)
		w.SetClosedState(true)

		got := c.AddDockWidget(entity.RightDockWidgetArea, w, area, -1, false)

		assert.Equal(t, area, got)
		assert.False(t, w.IsClosed())
		assert.True(t, area.IsVisible())
	})
}

func TestDockContainer_DropSplitterIntoEmptyRoot(t *testing.T) {
	main := entity.NewDockContainer(false)
	floater := entity.NewDockContainer(true)
	a := entity.NewDockWidget("a")
	b := entity.NewDockWidget("b")
	aa := floater.AddDockWidget(entity.LeftDockWidgetArea, a, nil, -1, false)
	ba := floater.AddDockWidget(entity.BottomDockWidgetArea, b, aa, -1, false)
	require.Equal(t, entity.Vertical, floater.RootSplitter().Orientation())

	main.DropContainer(floater, entity.LeftDockWidgetArea, nil, false)

	root := main.RootSplitter()
	assert.Equal(t, entity.Vertical, root.Orientation())
	assert.Equal(t, []entity.Node{aa, ba}, root.Children())
	assert.Nil(t, root.ParentSplitter())
	require.NoError(t, main.Validate())
	assert.True(t, floater.IsEmpty())
}

func TestDockContainer_LoneRootChildGetsDefaultWeight(t *testing.T) {
	c := entity.NewDockContainer(false)
	leftW := entity.NewDockWidget("left")
	left := c.AddDockWidget(entity.LeftDockWidgetArea, leftW, nil, -1, false)
	c.AddDockWidget(entity.RightDockWidgetArea, entity.NewDockWidget("right"), left, -1, false)
	require.True(t, c.RootSplitter().SetSizes([]int{50, 150}))

	entity.Detach(leftW)

	assert.Equal(t, []int{entity.DefaultSplitterWeight}, c.RootSplitter().Sizes())
	require.NoError(t, c.Validate())
}
