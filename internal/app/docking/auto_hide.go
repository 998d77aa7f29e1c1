package docking

import (
	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/domain/entity"
)

// autoHideState holds the transient pointer state of auto-hide panels.
type autoHideState struct {
	hovered    map[*entity.AutoHideContainer]bool
	dragTimers map[*entity.AutoHideContainer]port.Timer
}

func newAutoHideState() autoHideState {
	return autoHideState{
		hovered:    make(map[*entity.AutoHideContainer]bool),
		dragTimers: make(map[*entity.AutoHideContainer]port.Timer),
	}
}

// reset stops every drag-hover timer and forgets hover state.
func (s *autoHideState) reset() {
	for ah, t := range s.dragTimers {
		t.Stop()
		delete(s.dragTimers, ah)
	}
	clear(s.hovered)
}

// AddAutoHideDockWidget pins w to the sidebar loc of the main container.
func (m *Manager) AddAutoHideDockWidget(loc entity.SideBarLocation, w *entity.DockWidget) *entity.AutoHideContainer {
	return m.AddAutoHideDockWidgetToContainer(loc, w, m.main)
}

// AddAutoHideDockWidgetToContainer pins w to the sidebar loc of c. The new
// panel starts collapsed.
func (m *Manager) AddAutoHideDockWidgetToContainer(loc entity.SideBarLocation, w *entity.DockWidget, c *entity.DockContainer) *entity.AutoHideContainer {
	if !loc.Valid() {
		m.log.Warn().Str("dock_widget", w.Name()).Str("reason", "invalid sidebar").Msg("auto-hide widget not added")
		return nil
	}
	m.enter()
	defer m.leave()
	if c == nil {
		c = m.main
	}
	if err := m.register(w); err != nil {
		return nil
	}
	ah := m.pin(c, loc, w)
	m.DockWidgetAdded.Emit(w)
	return ah
}

func (m *Manager) pin(c *entity.DockContainer, loc entity.SideBarLocation, w *entity.DockWidget) *entity.AutoHideContainer {
	wasClosed := w.IsClosed() || !w.IsPlaced()
	m.cancelAutoHideTimers(w.AutoHideContainer())
	ah := c.CreateAutoHideContainer(loc, w, -1)
	ah.SetExpanded(false)
	w.SetClosedState(false)
	m.refreshFloating()
	if wasClosed {
		w.ViewToggled.Emit(true)
	}
	return ah
}

// SetAutoHide pins w to loc, or unpins it back into the splitter tree on the
// side matching its sidebar. SideBarNone picks the sidebar nearest to the
// widget's area. Pinning requires the auto-hide feature and a pinnable widget.
func (m *Manager) SetAutoHide(w *entity.DockWidget, pinned bool, loc entity.SideBarLocation) bool {
	if !m.IsRegistered(w) {
		return false
	}
	m.enter()
	defer m.leave()

	if !pinned {
		ah := w.AutoHideContainer()
		if ah == nil {
			return false
		}
		c := ah.DockContainer()
		side := ah.SideBarLocation().DockArea()
		m.place(c, side, w, nil, -1)
		return true
	}

	if !m.cfg.TestAutoHideFlag(AutoHideFeatureEnabled) || !m.EffectiveFeatures(w).Has(entity.DockWidgetPinnable) {
		return false
	}
	if ah := w.AutoHideContainer(); ah != nil {
		if loc.Valid() && loc != ah.SideBarLocation() {
			ah.DockContainer().MoveAutoHideContainer(ah, loc, -1)
		}
		return true
	}
	c := w.DockContainer()
	if c == nil {
		c = m.main
	}
	if !loc.Valid() {
		loc = m.SideBarLocationFor(w.DockArea())
	}
	m.pin(c, loc, w)
	return true
}

// SetDockAreaAutoHide handles the auto-hide button of an area: it pins every
// open widget when AutoHideButtonTogglesArea is set, else the current one.
func (m *Manager) SetDockAreaAutoHide(a *entity.DockArea, loc entity.SideBarLocation) bool {
	if a == nil || a.IsCentral() {
		return false
	}
	if !m.cfg.TestAutoHideFlag(AutoHideFeatureEnabled) {
		return false
	}
	m.enter()
	defer m.leave()
	if !loc.Valid() {
		loc = m.SideBarLocationFor(a)
	}
	widgets := a.OpenDockWidgets()
	if !m.cfg.TestAutoHideFlag(AutoHideButtonTogglesArea) {
		widgets = nil
		if cur := a.CurrentDockWidget(); cur != nil {
			widgets = append(widgets, cur)
		}
	}
	pinned := false
	for _, w := range widgets {
		if m.SetAutoHide(w, true, loc) {
			pinned = true
		}
	}
	return pinned
}

// SideBarLocationFor returns the sidebar closest to a: the only container
// border the area touches, else the border nearest to its center.
func (m *Manager) SideBarLocationFor(a *entity.DockArea) entity.SideBarLocation {
	if a == nil || a.DockContainer() == nil {
		return entity.SideBarLeft
	}
	c := a.DockContainer()
	cr := c.Geometry()
	r, ok := c.Layout(cr)[a]
	if !ok || r.IsEmpty() || cr.IsEmpty() {
		return entity.SideBarLeft
	}
	left := r.X == cr.X
	right := r.X+r.W == cr.X+cr.W
	top := r.Y == cr.Y
	bottom := r.Y+r.H == cr.Y+cr.H
	switch {
	case left && !right:
		return entity.SideBarLeft
	case right && !left:
		return entity.SideBarRight
	case top && !bottom:
		return entity.SideBarTop
	case bottom && !top:
		return entity.SideBarBottom
	}
	return nearestSideBar(cr, r.Center())
}

func nearestSideBar(cr entity.Rect, p entity.Point) entity.SideBarLocation {
	best := entity.SideBarLeft
	dist := p.X - cr.X
	for _, c := range []struct {
		loc entity.SideBarLocation
		d   int
	}{
		{entity.SideBarRight, cr.X + cr.W - p.X},
		{entity.SideBarTop, p.Y - cr.Y},
		{entity.SideBarBottom, cr.Y + cr.H - p.Y},
	} {
		if c.d < dist {
			best, dist = c.loc, c.d
		}
	}
	return best
}

// ExpandAutoHide shows the panel of ah and collapses the other expanded
// panels of the same container.
func (m *Manager) ExpandAutoHide(ah *entity.AutoHideContainer) {
	if ah == nil || ah.DockContainer() == nil || ah.DockWidget().IsClosed() {
		return
	}
	for _, other := range ah.DockContainer().AutoHideContainers() {
		if other != ah && other.IsExpanded() {
			m.collapseAutoHide(other)
		}
	}
	ah.SetExpanded(true)
	if m.focus != nil {
		m.focus.SetDockWidgetFocused(ah.DockWidget())
	}
}

// CollapseAutoHide hides the panel of ah, keeping its sidebar tab.
func (m *Manager) CollapseAutoHide(ah *entity.AutoHideContainer) {
	if ah != nil {
		m.collapseAutoHide(ah)
	}
}

func (m *Manager) collapseAutoHide(ah *entity.AutoHideContainer) {
	ah.SetExpanded(false)
	delete(m.autoHide.hovered, ah)
}

// ToggleAutoHide handles a click on the sidebar tab of ah.
func (m *Manager) ToggleAutoHide(ah *entity.AutoHideContainer) {
	if ah == nil {
		return
	}
	if ah.IsExpanded() {
		m.collapseAutoHide(ah)
		return
	}
	m.ExpandAutoHide(ah)
}

// SideBarTabHovered handles the pointer entering or leaving the sidebar tab
// of ah. It only has an effect with AutoHideShowOnMouseOver.
func (m *Manager) SideBarTabHovered(ah *entity.AutoHideContainer, entered bool) {
	if ah == nil || !m.cfg.TestAutoHideFlag(AutoHideShowOnMouseOver) {
		return
	}
	m.hoverAutoHide(ah, entered)
	if entered {
		m.ExpandAutoHide(ah)
	}
}

// AutoHidePanelHovered handles the pointer entering or leaving the expanded
// panel of ah.
func (m *Manager) AutoHidePanelHovered(ah *entity.AutoHideContainer, entered bool) {
	if ah == nil || !m.cfg.TestAutoHideFlag(AutoHideShowOnMouseOver) {
		return
	}
	m.hoverAutoHide(ah, entered)
}

// hoverAutoHide collapses a panel once the pointer left both its tab and the
// panel. The collapse is posted so that moving from tab to panel keeps it open.
func (m *Manager) hoverAutoHide(ah *entity.AutoHideContainer, entered bool) {
	if entered {
		m.autoHide.hovered[ah] = true
		return
	}
	delete(m.autoHide.hovered, ah)
	m.post(func() {
		if !m.autoHide.hovered[ah] && ah.IsExpanded() {
			m.collapseAutoHide(ah)
		}
	})
}

// SideBarTabDragHovered handles a drag entering or leaving the sidebar tab of
// ah. With AutoHideOpenOnDragHover the panel opens after the configured delay.
func (m *Manager) SideBarTabDragHovered(ah *entity.AutoHideContainer, entered bool) {
	if ah == nil || !m.cfg.TestAutoHideFlag(AutoHideOpenOnDragHover) {
		return
	}
	if t, ok := m.autoHide.dragTimers[ah]; ok {
		t.Stop()
		delete(m.autoHide.dragTimers, ah)
	}
	if !entered || m.sched == nil {
		return
	}
	m.autoHide.dragTimers[ah] = m.sched.AfterFunc(m.cfg.DragHoverDelay(), func() {
		delete(m.autoHide.dragTimers, ah)
		if ah.DockContainer() != nil {
			m.ExpandAutoHide(ah)
		}
	})
}

func (m *Manager) cancelAutoHideTimers(ah *entity.AutoHideContainer) {
	if ah == nil {
		return
	}
	if t, ok := m.autoHide.dragTimers[ah]; ok {
		t.Stop()
		delete(m.autoHide.dragTimers, ah)
	}
	delete(m.autoHide.hovered, ah)
}

// PointerPress describes a mouse press forwarded by the host.
type PointerPress struct {
	Container *entity.DockContainer
	Pos       entity.Point
	// DialogOwner is set when the press landed in a modal dialog opened by
	// that widget. Such presses count as inside its panel.
	DialogOwner *entity.DockWidget
}

// HandlePointerPress collapses expanded panels the press landed outside of
// when AutoHideCloseOnOutsideMouseClick is set.
func (m *Manager) HandlePointerPress(ev PointerPress) {
	if !m.cfg.TestAutoHideFlag(AutoHideCloseOnOutsideMouseClick) {
		return
	}
	containers := m.DockContainers()
	if ev.Container != nil {
		containers = []*entity.DockContainer{ev.Container}
	}
	for _, c := range containers {
		for _, ah := range c.AutoHideContainers() {
			if !ah.IsExpanded() || ah.DockWidget() == ev.DialogOwner {
				continue
			}
			if ah.Rect(c.Geometry()).Contains(ev.Pos) {
				continue
			}
			m.collapseAutoHide(ah)
		}
	}
}

// AutoHideCloseButton handles the close button of a panel: it collapses the
// panel with AutoHideCloseButtonCollapsesDock, otherwise closes the widget.
func (m *Manager) AutoHideCloseButton(ah *entity.AutoHideContainer) {
	if ah == nil {
		return
	}
	if m.cfg.TestAutoHideFlag(AutoHideCloseButtonCollapsesDock) {
		m.collapseAutoHide(ah)
		return
	}
	m.CloseDockWidget(ah.DockWidget())
}

// ResizeAutoHide sets the expanded size of ah.
func (m *Manager) ResizeAutoHide(ah *entity.AutoHideContainer, size int) {
	if ah != nil {
		ah.SetSize(size)
	}
}
