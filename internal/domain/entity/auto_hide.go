package entity

// DefaultAutoHideSize is the expanded size of a newly pinned widget when it
// has no preferred size along the sidebar axis.
const DefaultAutoHideSize = 240

// AutoHideContainer wraps one dock widget pinned to a sidebar of a container.
// It is collapsed (tab only) or expanded (panel shown at Size pixels).
type AutoHideContainer struct {
	widget    *DockWidget
	location  SideBarLocation
	size      int
	expanded  bool
	container *DockContainer
}

func (a *AutoHideContainer) DockWidget() *DockWidget { return a.widget }

func (a *AutoHideContainer) SideBarLocation() SideBarLocation { return a.location }

func (a *AutoHideContainer) DockContainer() *DockContainer { return a.container }

// Size returns the expanded panel size along the axis perpendicular to the sidebar.
func (a *AutoHideContainer) Size() int { return a.size }

func (a *AutoHideContainer) SetSize(size int) {
	if size > 0 {
		a.size = size
	}
}

func (a *AutoHideContainer) IsExpanded() bool { return a.expanded }

// SetExpanded changes the state without touching sibling containers.
func (a *AutoHideContainer) SetExpanded(expanded bool) { a.expanded = expanded }

// Rect returns the panel geometry inside the container rect cr when expanded.
func (a *AutoHideContainer) Rect(cr Rect) Rect {
	if !a.expanded {
		return Rect{}
	}
	switch a.location {
	case SideBarTop:
		return Rect{X: cr.X, Y: cr.Y, W: cr.W, H: min(a.size, cr.H)}
	case SideBarBottom:
		h := min(a.size, cr.H)
		return Rect{X: cr.X, Y: cr.Y + cr.H - h, W: cr.W, H: h}
	case SideBarRight:
		w := min(a.size, cr.W)
		return Rect{X: cr.X + cr.W - w, Y: cr.Y, W: w, H: cr.H}
	}
	return Rect{X: cr.X, Y: cr.Y, W: min(a.size, cr.W), H: cr.H}
}

// SideBar is the ordered list of auto-hide containers on one edge.
type SideBar struct {
	location SideBarLocation
	items    []*AutoHideContainer
}

func (b *SideBar) Location() SideBarLocation { return b.location }

// Count returns the number of tabs in the sidebar.
func (b *SideBar) Count() int { return len(b.items) }

// Containers returns the tabs in order.
func (b *SideBar) Containers() []*AutoHideContainer {
	out := make([]*AutoHideContainer, len(b.items))
	copy(out, b.items)
	return out
}

// VisibleCount returns the number of tabs whose widget is open.
func (b *SideBar) VisibleCount() int {
	n := 0
	for _, ah := range b.items {
		if !ah.widget.closed {
			n++
		}
	}
	return n
}

func (b *SideBar) indexOf(ah *AutoHideContainer) int {
	for i, x := range b.items {
		if x == ah {
			return i
		}
	}
	return -1
}

func (b *SideBar) insert(index int, ah *AutoHideContainer) {
	if index < 0 || index > len(b.items) {
		index = len(b.items)
	}
	b.items = append(b.items, nil)
	copy(b.items[index+1:], b.items[index:])
	b.items[index] = ah
}

func (b *SideBar) remove(ah *AutoHideContainer) bool {
	i := b.indexOf(ah)
	if i < 0 {
		return false
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return true
}

// autoHideSizeFor picks the expanded size from the widget's preferred size.
func autoHideSizeFor(w *DockWidget, loc SideBarLocation) int {
	s := w.size.W
	if loc.IsHorizontal() {
		s = w.size.H
	}
	if s <= 0 {
		return DefaultAutoHideSize
	}
	return s
}
