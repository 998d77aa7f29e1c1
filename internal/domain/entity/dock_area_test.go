package entity_test

import (
	"testing"

	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTabbedArea(t *testing.T, names ...string) (*entity.DockArea, []*entity.DockWidget) {
	t.Helper()
	c := entity.NewDockContainer(false)
	var area *entity.DockArea
	widgets := make([]*entity.DockWidget, 0, len(names))
	for _, name := range names {
		w := entity.NewDockWidget(name)
		widgets = append(widgets, w)
		if area == nil {
			area = c.AddDockWidget(entity.LeftDockWidgetArea, w, nil, -1, false)
			continue
		}
		c.AddDockWidget(entity.CenterDockWidgetArea, w, area, -1, false)
	}
	require.NotNil(t, area)
	return area, widgets
}

func TestDockArea_CurrentIndexAfterRemoval(t *testing.T) {
	area, ws := newTabbedArea(t, "a", "b", "c")
	require.True(t, area.SetCurrentIndex(1))

	entity.Detach(ws[1])

	assert.Equal(t, ws[2], area.CurrentDockWidget())
	assert.Equal(t, 2, area.Count())

	entity.Detach(ws[0])
	assert.Equal(t, ws[2], area.CurrentDockWidget())
	assert.Equal(t, 0, area.CurrentIndex())
}

func TestDockArea_IndexOfFirstOpenDockWidget(t *testing.T) {
	area, ws := newTabbedArea(t, "a", "b", "c")
	ws[0].SetClosedState(true)

	assert.Equal(t, 1, area.IndexOfFirstOpenDockWidget())
	assert.Equal(t, 2, area.OpenCount())
	assert.Equal(t, []*entity.DockWidget{ws[1], ws[2]}, area.OpenDockWidgets())

	ws[1].SetClosedState(true)
	ws[2].SetClosedState(true)
	assert.Equal(t, -1, area.IndexOfFirstOpenDockWidget())
	assert.False(t, area.IsVisible())
}

func TestDockArea_UpdateCurrentAfterToggle(t *testing.T) {
	area, ws := newTabbedArea(t, "a", "b")
	require.True(t, area.SetCurrentDockWidget(ws[1]))

	ws[1].SetClosedState(true)
	area.UpdateCurrentAfterToggle(ws[1])
	assert.Equal(t, ws[0], area.CurrentDockWidget())

	ws[0].SetClosedState(true)
	area.UpdateCurrentAfterToggle(ws[0])
	ws[1].SetClosedState(false)
	area.UpdateCurrentAfterToggle(ws[1])
	assert.Equal(t, ws[1], area.CurrentDockWidget())
}

func TestDockArea_InsertDockWidgetReorders(t *testing.T) {
	area, ws := newTabbedArea(t, "a", "b", "c")
	require.True(t, area.SetCurrentDockWidget(ws[0]))

	area.InsertDockWidget(ws[2], 0, false)

	assert.Equal(t, []*entity.DockWidget{ws[2], ws[0], ws[1]}, area.DockWidgets())
	assert.Equal(t, ws[0], area.CurrentDockWidget())
}

func TestDockArea_ShowsTitleBar(t *testing.T) {
	area, ws := newTabbedArea(t, "central")
	assert.True(t, area.ShowsTitleBar())

	area.SetFlag(entity.HideSingleWidgetTitleBar, true)
	assert.True(t, area.ShowsTitleBar())

	ws[0].SetFeature(entity.NoTab, true)
	assert.False(t, area.ShowsTitleBar())
}

func TestDockArea_Features(t *testing.T) {
	area, ws := newTabbedArea(t, "a", "b")
	ws[1].SetFeature(entity.DockWidgetClosable, false)

	assert.False(t, area.Features().Has(entity.DockWidgetClosable))
	assert.True(t, area.Features().Has(entity.DockWidgetMovable))
}

func TestDockWidget_Signals(t *testing.T) {
	w := entity.NewDockWidget("w")
	var titles []string
	var features []entity.DockWidgetFeature
	id := w.TitleChanged.Connect(func(s string) { titles = append(titles, s) })
	w.FeaturesChanged.Connect(func(f entity.DockWidgetFeature) { features = append(features, f) })

	w.SetTitle("first")
	w.SetTitle("first")
	w.TitleChanged.Disconnect(id)
	w.SetTitle("second")
	w.SetFeature(entity.DockWidgetClosable, false)

	assert.Equal(t, []string{"first"}, titles)
	require.Len(t, features, 1)
	assert.False(t, features[0].Has(entity.DockWidgetClosable))
	assert.Equal(t, "w", w.Name())
}

func TestInsertParameters(t *testing.T) {
	o, after := entity.InsertParameters(entity.TopDockWidgetArea)
	assert.Equal(t, entity.Vertical, o)
	assert.False(t, after)

	o, after = entity.InsertParameters(entity.RightDockWidgetArea)
	assert.Equal(t, entity.Horizontal, o)
	assert.True(t, after)
}

func TestDockWidgetArea_String(t *testing.T) {
	assert.Equal(t, "left", entity.LeftDockWidgetArea.String())
	assert.Equal(t, "left|right|top|bottom", entity.OuterDockAreas.String())
	got, ok := entity.ParseDockWidgetArea("Bottom")
	assert.True(t, ok)
	assert.Equal(t, entity.BottomDockWidgetArea, got)
}
