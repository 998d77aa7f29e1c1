package docking

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/application/port/mocks"
	"github.com/bnema/dockit/internal/domain/entity"
)

// newWindowedManager returns a manager whose floating containers drive win.
func newWindowedManager(t *testing.T, platform string, win *mocks.MockWindow) (*Manager, *FloatingContainer) {
	t.Helper()
	factory := mocks.NewMockWindowFactory(t)
	factory.EXPECT().NewFloatingWindow(mock.Anything).Return(win)
	win.EXPECT().SetTitle(mock.Anything).Return().Maybe()
	win.EXPECT().SetGeometry(mock.Anything).Return().Maybe()
	win.EXPECT().Show().Return().Maybe()

	cfg := NewEngineConfig()
	cfg.SetPlatform(platform)
	m := New(context.Background(), Options{Config: cfg, Scheduler: NewManualScheduler(), Windows: factory})
	m.Show()
	fc := m.AddDockWidgetFloating(m.CreateDockWidget("w"))
	require.NotNil(t, fc)
	return m, fc
}

func TestManager_MainWindowActivation(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("floating windows are only kept above the main window on unix desktops")
	}

	t.Run("xcb uses the keep above hint", func(t *testing.T) {
		win := mocks.NewMockWindow(t)
		m, fc := newWindowedManager(t, PlatformXCB, win)
		win.EXPECT().SetKeepAbove(true).Return().Once()
		win.EXPECT().SetKeepAbove(false).Return().Once()
		win.EXPECT().Raise().Return().Once()

		m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowActivate})
		assert.True(t, fc.IsStayingOnTop())

		m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowDeactivate})
		assert.False(t, fc.IsStayingOnTop())
	})

	t.Run("other platforms use the window flag", func(t *testing.T) {
		win := mocks.NewMockWindow(t)
		m, fc := newWindowedManager(t, "wayland", win)
		win.EXPECT().SetStaysOnTop(true).Return().Once()

		m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowActivate})

		assert.True(t, fc.IsStayingOnTop())
	})

	t.Run("focus change raises every window", func(t *testing.T) {
		win := mocks.NewMockWindow(t)
		m, _ := newWindowedManager(t, PlatformXCB, win)
		win.EXPECT().Raise().Return().Once()

		m.HandleMainWindowEvent(MainWindowEvent{Kind: FocusWindowChanged})
	})
}

func TestManager_MinimizedMainWindow(t *testing.T) {
	m, sched := newTestManager(t, nil)
	fc := m.AddDockWidgetFloating(m.CreateDockWidget("w"))
	hidden := m.AddDockWidgetFloating(m.CreateDockWidget("hidden"))
	m.CloseDockWidget(m.FindDockWidget("hidden"))
	require.False(t, hidden.IsVisible())

	m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowStateChange, OldState: entity.WindowNormal, NewState: entity.WindowMinimized})

	assert.Equal(t, entity.WindowMinimized, fc.WindowState())
	assert.Equal(t, entity.WindowNormal, hidden.WindowState())

	m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowActivate})
	assert.False(t, fc.IsStayingOnTop(), "minimized windows are not raised")

	m.HandleMainWindowEvent(MainWindowEvent{Kind: WindowStateChange, OldState: entity.WindowMinimized, NewState: entity.WindowNormal})

	assert.Equal(t, entity.WindowNormal, fc.WindowState())
	assert.True(t, m.IsLeavingMinimizedState())
	sched.RunPending()
	assert.False(t, m.IsLeavingMinimizedState())
}

func TestManager_HideManagerAndFloatingWidgets(t *testing.T) {
	m, _ := newTestManager(t, nil)
	w := m.CreateDockWidget("w")
	fc := m.AddDockWidgetFloating(w)

	m.HideManagerAndFloatingWidgets()

	assert.False(t, m.IsVisible())
	assert.False(t, fc.IsVisible())
	assert.False(t, w.IsClosed(), "hiding keeps the open state")
	assert.Equal(t, []*FloatingContainer{fc}, m.HiddenFloatingWidgets())

	m.Show()

	assert.True(t, fc.IsVisible())
	assert.Empty(t, m.HiddenFloatingWidgets())
}

func TestManager_ShowDrivesMainWindow(t *testing.T) {
	main := mocks.NewMockWindow(t)
	main.EXPECT().Show().Return().Once()
	main.EXPECT().Hide().Return().Once()

	m := New(context.Background(), Options{Config: NewEngineConfig(), MainWindow: main})
	m.Show()
	assert.True(t, m.IsVisible())
	m.Hide()
	assert.False(t, m.IsVisible())
}
