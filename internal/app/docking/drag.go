package docking

import "github.com/bnema/dockit/internal/domain/entity"

// containerBand is the fraction of a container edge that acts as its outer
// drop zone when the pointer is not over an area zone.
const containerBand = 0.2

// DropTarget is the zone under the pointer during a drag. Area is nil for a
// container-wide zone.
type DropTarget struct {
	Container *entity.DockContainer
	Area      *entity.DockArea
	Side      entity.DockWidgetArea
	// Preview is where the dragged content would land.
	Preview entity.Rect
}

// Valid reports whether a drop would change the layout.
func (t DropTarget) Valid() bool {
	return t.Container != nil && t.Side != entity.NoDockWidgetArea
}

// AreaDropSide returns the area overlay zone of r under p. The area is cut
// into a three by three grid: the middle cell tabifies, the edge-middle
// cells split, the corners have no zone.
func AreaDropSide(r entity.Rect, p entity.Point) entity.DockWidgetArea {
	if !r.Contains(p) {
		return entity.NoDockWidgetArea
	}
	col := (p.X - r.X) * 3 / r.W
	row := (p.Y - r.Y) * 3 / r.H
	switch {
	case col == 1 && row == 1:
		return entity.CenterDockWidgetArea
	case col == 0 && row == 1:
		return entity.LeftDockWidgetArea
	case col == 2 && row == 1:
		return entity.RightDockWidgetArea
	case row == 0 && col == 1:
		return entity.TopDockWidgetArea
	case row == 2 && col == 1:
		return entity.BottomDockWidgetArea
	}
	return entity.NoDockWidgetArea
}

// ContainerDropSide returns the container overlay zone of r under p: the
// nearest outer edge when p lies in its band. An empty container accepts
// the nearest edge from anywhere.
func ContainerDropSide(r entity.Rect, p entity.Point, empty bool) entity.DockWidgetArea {
	if !r.Contains(p) {
		return entity.NoDockWidgetArea
	}
	side := entity.LeftDockWidgetArea
	dist := p.X - r.X
	band := int(float64(r.W) * containerBand)
	for _, e := range []struct {
		side entity.DockWidgetArea
		d    int
		band int
	}{
		{entity.RightDockWidgetArea, r.X + r.W - 1 - p.X, int(float64(r.W) * containerBand)},
		{entity.TopDockWidgetArea, p.Y - r.Y, int(float64(r.H) * containerBand)},
		{entity.BottomDockWidgetArea, r.Y + r.H - 1 - p.Y, int(float64(r.H) * containerBand)},
	} {
		if e.d < dist {
			side, dist, band = e.side, e.d, e.band
		}
	}
	if !empty && dist >= band {
		return entity.NoDockWidgetArea
	}
	return side
}

// ContainerAt returns the topmost container under p, skipping exclude.
// Floating windows are searched from the top of the stacking order down,
// the main container last.
func (m *Manager) ContainerAt(p entity.Point, exclude *entity.DockContainer) *entity.DockContainer {
	for i := len(m.zOrder) - 1; i >= 0; i-- {
		fc := m.zOrder[i]
		if !fc.visible || fc.container == exclude {
			continue
		}
		if fc.Geometry().Contains(p) {
			return fc.container
		}
	}
	if m.main != exclude && m.main.Geometry().Contains(p) {
		return m.main
	}
	return nil
}

// DropTargetAt computes the drop zone under p. The area overlay wins over
// the container overlay; zones the target area does not allow are dropped.
func (m *Manager) DropTargetAt(p entity.Point, exclude *entity.DockContainer) DropTarget {
	c := m.ContainerAt(p, exclude)
	if c == nil {
		return DropTarget{}
	}
	if a, r := c.DockAreaAt(p); a != nil {
		side := AreaDropSide(r, p)
		if side != entity.NoDockWidgetArea && a.AllowedAreas().Has(side) {
			preview := r
			if side != entity.CenterDockWidgetArea {
				preview = r.Side(side, 0.5)
			}
			return DropTarget{Container: c, Area: a, Side: side, Preview: preview}
		}
	}
	cr := c.Geometry()
	side := ContainerDropSide(cr, p, !c.HasOpenDockAreas())
	if side == entity.NoDockWidgetArea {
		return DropTarget{Container: c}
	}
	return DropTarget{Container: c, Side: side, Preview: cr.Side(side, 1.0/3)}
}

// PreviewStyle describes how the host renders the drag preview. It has no
// influence on the drop itself.
type PreviewStyle struct {
	ShowsContent bool
	Dynamic      bool
	WindowFrame  bool
}

// DragPreviewStyle derives the preview style from the configuration flags.
func (m *Manager) DragPreviewStyle() PreviewStyle {
	return PreviewStyle{
		ShowsContent: m.cfg.TestFlag(DragPreviewShowsContentPixmap),
		Dynamic:      m.cfg.TestFlag(DragPreviewIsDynamic),
		WindowFrame:  m.cfg.TestFlag(DragPreviewHasWindowFrame),
	}
}

// DragSession follows one drag of a dock widget, a dock area or a floating
// container from press to release.
type DragSession struct {
	m        *Manager
	widget   *entity.DockWidget
	area     *entity.DockArea
	floating *FloatingContainer
	offset   entity.Point
	target   DropTarget
	done     bool
}

// StartDrag begins dragging the tab of w. It returns nil when w is not movable.
func (m *Manager) StartDrag(w *entity.DockWidget) *DragSession {
	if !m.IsRegistered(w) || !w.IsPlaced() || !m.EffectiveFeatures(w).Has(entity.DockWidgetMovable) {
		return nil
	}
	return &DragSession{m: m, widget: w}
}

// StartDragArea begins dragging the title bar of a.
func (m *Manager) StartDragArea(a *entity.DockArea) *DragSession {
	if a == nil || a.IsCentral() || a.DockContainer() == nil || !m.areaFeatures(a).Has(entity.DockWidgetMovable) {
		return nil
	}
	return &DragSession{m: m, area: a}
}

// StartDragFloating begins moving fc by its title bar, grabbed at p.
func (m *Manager) StartDragFloating(fc *FloatingContainer, p entity.Point) *DragSession {
	if fc == nil || fc.destroyed {
		return nil
	}
	g := fc.Geometry()
	fc.Raise()
	return &DragSession{m: m, floating: fc, offset: entity.Point{X: p.X - g.X, Y: p.Y - g.Y}}
}

// Target returns the zone computed by the last Move.
func (s *DragSession) Target() DropTarget { return s.target }

// Move updates the drop zone for the pointer at p. A dragged floating
// window follows the pointer.
func (s *DragSession) Move(p entity.Point) DropTarget {
	if s.done {
		return DropTarget{}
	}
	var exclude *entity.DockContainer
	if s.floating != nil {
		exclude = s.floating.container
		s.floating.MoveTo(entity.Point{X: p.X - s.offset.X, Y: p.Y - s.offset.Y})
	}
	t := s.m.DropTargetAt(p, exclude)
	if !s.accepts(t) {
		t = DropTarget{Container: t.Container}
	}
	s.target = t
	return t
}

// accepts filters zones the dragged content cannot go to.
func (s *DragSession) accepts(t DropTarget) bool {
	if !t.Valid() {
		return false
	}
	if t.Container.IsFloating() && !s.floatable() {
		return false
	}
	switch {
	case s.widget != nil:
		if t.Area != nil && t.Area == s.widget.DockArea() && t.Side == entity.CenterDockWidgetArea {
			return false
		}
	case s.area != nil:
		if t.Area == s.area {
			return false
		}
	}
	return true
}

func (s *DragSession) floatable() bool {
	switch {
	case s.widget != nil:
		return s.m.EffectiveFeatures(s.widget).Has(entity.DockWidgetFloatable)
	case s.area != nil:
		return s.m.areaFeatures(s.area).Has(entity.DockWidgetFloatable)
	}
	return true
}

// Drop moves the pointer to p and applies the drop. It reports whether the
// layout changed; a release outside any zone has no effect.
func (s *DragSession) Drop(p entity.Point) bool {
	t := s.Move(p)
	s.done = true
	if !t.Valid() {
		return false
	}
	m := s.m
	m.enter()
	defer m.leave()
	eq := m.cfg.TestFlag(EqualSplitOnInsertion)
	switch {
	case s.widget != nil:
		if !m.IsRegistered(s.widget) {
			return false
		}
		m.place(t.Container, t.Side, s.widget, t.Area, -1)
	case s.area != nil:
		if s.area.DockContainer() == nil {
			return false
		}
		a := t.Container.DropDockArea(s.area, t.Side, t.Area, eq)
		m.refreshFloating()
		if m.focus != nil && a != nil {
			if cur := a.CurrentDockWidget(); cur != nil {
				m.focus.SetDockWidgetFocused(cur)
			}
		}
	case s.floating != nil:
		if s.floating.destroyed {
			return false
		}
		t.Container.DropContainer(s.floating.container, t.Side, t.Area, eq)
		m.refreshFloating()
		if m.focus != nil {
			m.focus.notifyFloatingDrop(s.floating)
		}
	}
	m.log.Debug().
		Str("side", t.Side.String()).
		Bool("floating_target", t.Container.IsFloating()).
		Msg("drop applied")
	return true
}

// Cancel ends the drag without touching the layout.
func (s *DragSession) Cancel() {
	s.done = true
	s.target = DropTarget{}
}
