package docking

import "github.com/bnema/dockit/internal/domain/entity"

// ShowsTitleBar reports whether the host should draw the title bar of a.
// With HideSingleCentralWidgetTitleBar the bar of the central area is hidden
// while its widget is the only open one in the main container.
func (m *Manager) ShowsTitleBar(a *entity.DockArea) bool {
	if a == nil {
		return false
	}
	if m.cfg.TestFlag(HideSingleCentralWidgetTitleBar) && m.central != nil &&
		a.DockContainer() == m.main && m.main.TopLevelDockWidget() == m.central {
		return false
	}
	return a.ShowsTitleBar()
}

// TabMiddleClicked closes w when MiddleMouseButtonClosesTab is set. It
// reports whether w was closed.
func (m *Manager) TabMiddleClicked(w *entity.DockWidget) bool {
	if !m.cfg.TestFlag(MiddleMouseButtonClosesTab) {
		return false
	}
	return m.CloseDockWidget(w)
}

// TabDoubleClicked floats w when DoubleClickUndocksWidget is set and w may
// float. It returns the new floating container, or nil.
func (m *Manager) TabDoubleClicked(w *entity.DockWidget) *FloatingContainer {
	if !m.cfg.TestFlag(DoubleClickUndocksWidget) || !m.IsRegistered(w) {
		return nil
	}
	if !m.EffectiveFeatures(w).Has(entity.DockWidgetFloatable) || w.IsFloating() {
		return nil
	}
	return m.AddDockWidgetFloating(w)
}
