package docking

import "github.com/bnema/dockit/internal/domain/entity"

// Show shows the main window. The first call also shows floating containers
// created while the manager was hidden, and floating containers hidden by
// HideManagerAndFloatingWidgets come back.
func (m *Manager) Show() {
	m.enter()
	defer m.leave()
	m.visible = true
	if m.mainWindow != nil {
		m.mainWindow.Show()
	}
	m.floatersShown = true
	m.hiddenFloating = nil
	m.uninitialized = nil
	m.refreshFloating()
}

// Hide hides the main window only. Floating containers stay visible.
func (m *Manager) Hide() {
	m.visible = false
	if m.mainWindow != nil {
		m.mainWindow.Hide()
	}
}

// IsVisible reports whether the main window is shown.
func (m *Manager) IsVisible() bool { return m.visible }

// HideManagerAndFloatingWidgets hides the main window and every visible
// floating container. The open state of their widgets is kept, so the next
// Show brings them back unchanged.
func (m *Manager) HideManagerAndFloatingWidgets() {
	m.enter()
	defer m.leave()
	m.Hide()
	m.hiddenFloating = nil
	for _, fc := range m.floating {
		if fc.visible {
			m.hiddenFloating = append(m.hiddenFloating, fc)
		}
	}
	m.floatersShown = false
	for _, fc := range m.floating {
		fc.setVisible(false)
	}
}

// HiddenFloatingWidgets returns the containers hidden by
// HideManagerAndFloatingWidgets that the next Show restores.
func (m *Manager) HiddenFloatingWidgets() []*FloatingContainer {
	out := make([]*FloatingContainer, len(m.hiddenFloating))
	copy(out, m.hiddenFloating)
	return out
}

// UninitializedFloatingWidgets returns the containers waiting for the first Show.
func (m *Manager) UninitializedFloatingWidgets() []*FloatingContainer {
	out := make([]*FloatingContainer, len(m.uninitialized))
	copy(out, m.uninitialized)
	return out
}

// MainWindowEventKind classifies events of the main window.
type MainWindowEventKind int

const (
	WindowActivate MainWindowEventKind = iota
	WindowDeactivate
	WindowStateChange
	FocusWindowChanged
)

// MainWindowEvent is forwarded by the host for the window hosting the manager.
type MainWindowEvent struct {
	Kind MainWindowEventKind
	// OldState and NewState are set for WindowStateChange.
	OldState entity.WindowState
	NewState entity.WindowState
}

// HandleMainWindowEvent keeps floating windows in sync with the main window:
// they follow its minimized state and are kept above it while it is active.
func (m *Manager) HandleMainWindowEvent(ev MainWindowEvent) {
	switch ev.Kind {
	case WindowActivate:
		if isLinuxLike() {
			m.setFloatersAbove(true)
		}
	case WindowDeactivate:
		if isLinuxLike() {
			m.setFloatersAbove(false)
		}
	case WindowStateChange:
		m.mainState = ev.NewState
		m.syncMinimized(ev.NewState == entity.WindowMinimized)
		if ev.OldState == entity.WindowMinimized && ev.NewState != entity.WindowMinimized {
			m.leavingMinimized = true
			m.post(m.endLeavingMinimizedState)
		}
	case FocusWindowChanged:
		if isLinuxLike() {
			if m.mainWindow != nil {
				m.mainWindow.Raise()
			}
			for _, fc := range m.floating {
				if fc.window != nil {
					fc.window.Raise()
				}
			}
		}
	}
}

func (m *Manager) setFloatersAbove(on bool) {
	if m.mainState == entity.WindowMinimized {
		return
	}
	xcb := m.cfg.Platform() == PlatformXCB
	for _, fc := range m.floating {
		if !fc.visible {
			continue
		}
		fc.stayOnTop = on
		if fc.window == nil {
			continue
		}
		if xcb {
			fc.window.SetKeepAbove(on)
		} else {
			fc.window.SetStaysOnTop(on)
		}
		if !on {
			fc.window.Raise()
		}
	}
}

func (m *Manager) syncMinimized(minimized bool) {
	for _, fc := range m.floating {
		if !fc.visible {
			continue
		}
		switch {
		case minimized:
			fc.SetWindowState(entity.WindowMinimized)
		case fc.WindowState() == entity.WindowMinimized:
			fc.SetWindowState(entity.WindowNormal)
		}
	}
}

func (m *Manager) endLeavingMinimizedState() {
	m.leavingMinimized = false
	if m.mainWindow != nil {
		m.mainWindow.Raise()
	}
}

// IsLeavingMinimizedState reports whether the main window is being restored
// from the minimized state and the follow-up activation has not run yet.
func (m *Manager) IsLeavingMinimizedState() bool { return m.leavingMinimized }
