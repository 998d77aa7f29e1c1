package docking

import (
	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/domain/entity"
)

// Title bar metrics of a floating window.
const (
	TitleBarHeight      = 30
	TitleBarButtonWidth = 50
	titleBarMargin      = 4
)

// FloatingContainer is a top-level window hosting a dock container other
// than the main one. It is destroyed, deferred, once its container is empty.
type FloatingContainer struct {
	id        int
	manager   *Manager
	container *entity.DockContainer
	window    port.Window

	visible        bool
	destroyed      bool
	destroyPending bool
	stayOnTop      bool
	title          string
	icon           string
	styleSheet     string
	topLevel       *entity.DockWidget
	normalGeometry entity.Rect
}

func (m *Manager) newFloatingContainer() *FloatingContainer {
	m.nextFloatingID++
	fc := &FloatingContainer{
		id:         m.nextFloatingID,
		manager:    m,
		container:  entity.NewDockContainer(true),
		styleSheet: m.styleSheet,
	}
	if m.windows != nil {
		fc.window = m.windows.NewFloatingWindow(fc.id)
	}
	m.trackContainer(fc.container)
	m.floating = append(m.floating, fc)
	m.zOrder = append(m.zOrder, fc)
	m.log.Debug().Int("floating_id", fc.id).Msg("floating container created")
	m.FloatingWidgetCreated.Emit(fc)
	return fc
}

// ID identifies the container for the lifetime of the manager.
func (f *FloatingContainer) ID() int { return f.id }

// DockContainer returns the hosted container.
func (f *FloatingContainer) DockContainer() *entity.DockContainer { return f.container }

// DockWidgets returns every widget of the hosted container.
func (f *FloatingContainer) DockWidgets() []*entity.DockWidget { return f.container.DockWidgets() }

// IsVisible reports whether the window is shown.
func (f *FloatingContainer) IsVisible() bool { return f.visible }

// IsDestroyed reports whether the container was removed from its manager.
func (f *FloatingContainer) IsDestroyed() bool { return f.destroyed }

// Title returns the current window title.
func (f *FloatingContainer) Title() string { return f.title }

// Icon returns the current window icon name.
func (f *FloatingContainer) Icon() string { return f.icon }

// StyleSheet returns the stylesheet applied to the window.
func (f *FloatingContainer) StyleSheet() string { return f.styleSheet }

// IsStayingOnTop reports whether the window is kept above the main window.
func (f *FloatingContainer) IsStayingOnTop() bool { return f.stayOnTop }

func (f *FloatingContainer) Geometry() entity.Rect { return f.container.Geometry() }

// SetGeometry moves or resizes the window.
func (f *FloatingContainer) SetGeometry(r entity.Rect) {
	f.container.SetGeometry(r)
	if f.window != nil {
		f.window.SetGeometry(r)
	}
}

func (f *FloatingContainer) WindowState() entity.WindowState { return f.container.WindowState() }

// SetWindowState changes the window state, remembering the normal geometry
// when the window gets maximized.
func (f *FloatingContainer) SetWindowState(s entity.WindowState) {
	prev := f.container.WindowState()
	if prev == s {
		return
	}
	if prev == entity.WindowNormal {
		f.normalGeometry = f.container.Geometry()
	}
	f.container.SetWindowState(s)
	if s == entity.WindowNormal && !f.normalGeometry.IsEmpty() {
		f.container.SetGeometry(f.normalGeometry)
	}
	if f.window != nil {
		f.window.SetWindowState(s)
	}
}

// ToggleMaximized is bound to the maximize button and to a double click in
// the title bar drag area.
func (f *FloatingContainer) ToggleMaximized() {
	if f.container.WindowState() == entity.WindowMaximized {
		f.SetWindowState(entity.WindowNormal)
		return
	}
	f.SetWindowState(entity.WindowMaximized)
}

// TitleBarDragArea returns the part of the title bar that moves the window:
// the full width minus the maximize and close buttons.
func (f *FloatingContainer) TitleBarDragArea() entity.Rect {
	g := f.container.Geometry()
	return entity.Rect{
		X: g.X,
		Y: g.Y,
		W: max(g.W-(titleBarMargin+2*TitleBarButtonWidth), 0),
		H: TitleBarHeight,
	}
}

// TitleBarDoubleClicked toggles the maximized state when p is in the drag area.
func (f *FloatingContainer) TitleBarDoubleClicked(p entity.Point) bool {
	if !f.TitleBarDragArea().Contains(p) {
		return false
	}
	f.ToggleMaximized()
	return true
}

// MoveTo moves the window by its title bar.
func (f *FloatingContainer) MoveTo(p entity.Point) {
	g := f.container.Geometry()
	f.SetGeometry(entity.Rect{X: p.X, Y: p.Y, W: g.W, H: g.H})
}

// Raise puts the window on top of the other floating windows.
func (f *FloatingContainer) Raise() {
	m := f.manager
	for i, x := range m.zOrder {
		if x == f {
			m.zOrder = append(m.zOrder[:i], m.zOrder[i+1:]...)
			break
		}
	}
	m.zOrder = append(m.zOrder, f)
	if f.window != nil {
		f.window.Raise()
	}
}

// Close closes every widget of the window. It fails without side effects
// when one of the open widgets cannot be closed.
func (f *FloatingContainer) Close() bool {
	m := f.manager
	open := f.container.OpenedDockWidgets()
	for _, w := range open {
		if !m.EffectiveFeatures(w).Has(entity.DockWidgetClosable) &&
			!m.EffectiveFeatures(w).Has(entity.CustomCloseHandling) {
			return false
		}
	}
	m.enter()
	defer m.leave()
	for _, w := range open {
		m.CloseDockWidget(w)
	}
	return true
}

// HasTopLevelDockWidget reports whether the window shows exactly one widget.
func (f *FloatingContainer) HasTopLevelDockWidget() bool {
	return f.container.TopLevelDockWidget() != nil
}

// TopLevelDockWidget returns the single open widget, or nil.
func (f *FloatingContainer) TopLevelDockWidget() *entity.DockWidget {
	return f.container.TopLevelDockWidget()
}

func (f *FloatingContainer) setVisible(v bool) {
	if f.visible == v {
		return
	}
	f.visible = v
	if f.window == nil {
		return
	}
	if v {
		f.window.SetGeometry(f.container.Geometry())
		f.window.Show()
		return
	}
	f.window.Hide()
}

// hasVisibleContent reports whether anything in the window is open.
func (f *FloatingContainer) hasVisibleContent() bool {
	if f.container.HasOpenDockAreas() {
		return true
	}
	for _, loc := range entity.SideBarLocations {
		if f.container.SideBar(loc).VisibleCount() > 0 {
			return true
		}
	}
	return false
}

func (f *FloatingContainer) refresh() {
	if f.destroyed {
		return
	}
	m := f.manager
	if f.container.IsEmpty() {
		f.setVisible(false)
		m.scheduleDestroy(f)
		f.updateTopLevel()
		return
	}
	f.updateTopLevel()
	f.updateWindowTitle()
	if m.restoring {
		return
	}
	f.setVisible(m.floatersShown && f.hasVisibleContent())
}

// updateTopLevel emits TopLevelChanged when the single open widget changes.
func (f *FloatingContainer) updateTopLevel() {
	next := f.container.TopLevelDockWidget()
	if next == f.topLevel {
		return
	}
	prev := f.topLevel
	f.topLevel = next
	if prev != nil {
		prev.TopLevelChanged.Emit(false)
	}
	if next != nil {
		next.TopLevelChanged.Emit(true)
	}
}

// updateWindowTitle shows the current widget title when the window holds a
// single open area and FloatingContainerHasWidgetTitle is set, otherwise the
// floating containers title.
func (f *FloatingContainer) updateWindowTitle() {
	cfg := f.manager.cfg
	title := cfg.FloatingContainersTitle()
	icon := ""
	var w *entity.DockWidget
	if a := f.container.TopLevelDockArea(); a != nil {
		w = a.CurrentDockWidget()
	}
	if w != nil && cfg.TestFlag(FloatingContainerHasWidgetTitle) {
		title = w.Title()
	}
	if w != nil && cfg.TestFlag(FloatingContainerHasWidgetIcon) {
		icon = w.Icon()
	}
	f.icon = icon
	if title == f.title {
		return
	}
	f.title = title
	if f.window != nil {
		f.window.SetTitle(title)
	}
}

func (m *Manager) scheduleDestroy(fc *FloatingContainer) {
	if fc.destroyPending || fc.destroyed {
		return
	}
	fc.destroyPending = true
	m.post(func() { m.destroyFloating(fc) })
}

// destroyFloating removes fc unless it received content in the meantime.
func (m *Manager) destroyFloating(fc *FloatingContainer) {
	fc.destroyPending = false
	if fc.destroyed || !fc.container.IsEmpty() {
		return
	}
	m.dropFloating(fc)
}

// dropFloating unlinks fc from the manager and closes its window.
func (m *Manager) dropFloating(fc *FloatingContainer) {
	fc.destroyed = true
	fc.visible = false
	m.floating = removeFloating(m.floating, fc)
	m.zOrder = removeFloating(m.zOrder, fc)
	m.uninitialized = removeFloating(m.uninitialized, fc)
	m.hiddenFloating = removeFloating(m.hiddenFloating, fc)
	for _, ah := range fc.container.AutoHideContainers() {
		m.cancelAutoHideTimers(ah)
	}
	if m.focus != nil {
		m.focus.forgetFloating(fc)
	}
	if fc.window != nil {
		fc.window.Close()
	}
	m.log.Debug().Int("floating_id", fc.id).Msg("floating container destroyed")
}

func removeFloating(list []*FloatingContainer, fc *FloatingContainer) []*FloatingContainer {
	for i, x := range list {
		if x == fc {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
