package docking

import "github.com/bnema/dockit/internal/domain/entity"

// FocusController tracks the focused dock widget across all containers. It
// exists only while FocusHighlighting is set.
type FocusController struct {
	m       *Manager
	focused *entity.DockWidget
	// last focused widget per floating container, restored after a drop
	floatingFocus map[*FloatingContainer]*entity.DockWidget
}

func newFocusController(m *Manager) *FocusController {
	return &FocusController{
		m:             m,
		floatingFocus: make(map[*FloatingContainer]*entity.DockWidget),
	}
}

// FocusedDockWidget returns the focused widget, or nil.
func (f *FocusController) FocusedDockWidget() *entity.DockWidget { return f.focused }

// SetDockWidgetFocused focuses w. Closed, unfocusable and unregistered
// widgets are ignored.
func (f *FocusController) SetDockWidgetFocused(w *entity.DockWidget) {
	if w == f.focused {
		return
	}
	if w != nil && (!f.m.IsRegistered(w) || w.IsClosed() || !w.IsPlaced() || !w.HasFeature(entity.DockWidgetFocusable)) {
		return
	}
	f.set(w)
}

func (f *FocusController) set(w *entity.DockWidget) {
	old := f.focused
	f.focused = w
	if w != nil {
		if a := w.DockArea(); a != nil && a.CurrentDockWidget() != w {
			a.SetCurrentDockWidget(w)
		}
		if fc := f.m.FloatingContainerOf(w.DockContainer()); fc != nil {
			f.floatingFocus[fc] = w
		}
	}
	f.m.FocusedDockWidgetChanged.Emit(FocusChange{Old: old, New: w})
}

// notifyRelocation focuses the current tab of the area w was dropped into.
func (f *FocusController) notifyRelocation(w *entity.DockWidget) {
	a := w.DockArea()
	if a == nil {
		return
	}
	if cur := a.CurrentDockWidget(); cur != nil {
		f.SetDockWidgetFocused(cur)
	}
}

// notifyFloatingDrop restores the focus the dropped floating container had.
func (f *FocusController) notifyFloatingDrop(fc *FloatingContainer) {
	w := f.floatingFocus[fc]
	delete(f.floatingFocus, fc)
	if w == nil || !w.IsPlaced() {
		return
	}
	f.SetDockWidgetFocused(w)
}

// onClosed moves the focus away from a widget that was closed.
func (f *FocusController) onClosed(w *entity.DockWidget) {
	if f.focused != w {
		return
	}
	var next *entity.DockWidget
	if a := w.DockArea(); a != nil {
		if cur := a.CurrentDockWidget(); cur != nil && !cur.IsClosed() {
			next = cur
		}
	}
	f.set(next)
}

func (f *FocusController) forget(w *entity.DockWidget) {
	for fc, x := range f.floatingFocus {
		if x == w {
			delete(f.floatingFocus, fc)
		}
	}
	if f.focused == w {
		f.set(nil)
	}
}

func (f *FocusController) forgetFloating(fc *FloatingContainer) {
	delete(f.floatingFocus, fc)
}

// FocusController returns the controller, or nil when FocusHighlighting is off.
func (m *Manager) FocusController() *FocusController { return m.focus }

// FocusedDockWidget returns the focused widget, or nil.
func (m *Manager) FocusedDockWidget() *entity.DockWidget {
	if m.focus == nil {
		return nil
	}
	return m.focus.focused
}

// SetDockWidgetFocused focuses w when focus highlighting is enabled.
func (m *Manager) SetDockWidgetFocused(w *entity.DockWidget) {
	if m.focus != nil {
		m.focus.SetDockWidgetFocused(w)
	}
}
