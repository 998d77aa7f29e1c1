package docking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/domain/entity"
)

func entryTexts(entries []*MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

func TestViewMenu_InsertionOrder(t *testing.T) {
	tests := []struct {
		name  string
		order MenuInsertionOrder
		want  []string
	}{
		{name: "by insertion", order: MenuSortedByInsertion, want: []string{"Output", "console", "Browser"}},
		{name: "alphabetical", order: MenuAlphabeticallySorted, want: []string{"Browser", "console", "Output"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, nil)
			m.SetViewMenuInsertionOrder(tt.order)
			for _, title := range []string{"Output", "console", "Browser"} {
				m.AddToggleViewActionToMenu(m.CreateDockWidget(title), "", "")
			}

			assert.Equal(t, tt.want, entryTexts(m.ViewMenu().Entries()))
		})
	}
}

func TestViewMenu_Groups(t *testing.T) {
	m, _ := newTestManager(t, nil)
	m.SetViewMenuInsertionOrder(MenuAlphabeticallySorted)
	m.AddToggleViewActionToMenu(m.CreateDockWidget("Zoom"), "", "")
	m.AddToggleViewActionToMenu(m.CreateDockWidget("Tree"), "Views", "folder")
	m.AddToggleViewActionToMenu(m.CreateDockWidget("List"), "Views", "ignored")

	g := m.ViewMenu().Group("Views")
	require.NotNil(t, g)
	assert.True(t, g.IsGroup())
	assert.Equal(t, "folder", g.Icon)
	assert.Equal(t, []string{"List", "Tree"}, entryTexts(g.Children))
	assert.Equal(t, []string{"Views", "Zoom"}, entryTexts(m.ViewMenu().Entries()))
}

func TestViewMenu_TriggerTogglesWidget(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := addWidgets(t, m, entity.LeftDockWidgetArea, "w")[0]
	e := m.AddToggleViewActionToMenu(w, "", "")
	require.True(t, e.Checked())

	m.ViewMenu().Trigger(e)
	assert.True(t, w.IsClosed())
	assert.False(t, e.Checked())

	m.ViewMenu().Trigger(e)
	assert.False(t, w.IsClosed())
}

func TestViewMenu_RemovedWidget(t *testing.T) {
	m, _ := newTestManager(t, nil)
	a := addWidgets(t, m, entity.LeftDockWidgetArea, "a")[0]
	b := addWidgets(t, m, entity.LeftDockWidgetArea, "b")[0]
	m.AddToggleViewActionToMenu(a, "", "")
	m.AddToggleViewActionToMenu(b, "Group", "")

	m.RemoveDockWidget(b)

	assert.Nil(t, m.ViewMenu().Group("Group"))
	assert.Equal(t, []string{"a"}, entryTexts(m.ViewMenu().Entries()))
}
