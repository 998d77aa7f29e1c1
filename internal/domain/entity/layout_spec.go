package entity

// LayoutSpec describes a splitter tree to rebuild during a restore. A node is
// an area when Area is set, otherwise a splitter.
type LayoutSpec struct {
	Area        *AreaSpec
	Orientation Orientation
	Sizes       []int
	Children    []*LayoutSpec
}

// AreaSpec describes one dock area of a LayoutSpec. Unknown widgets are
// represented by nil entries and skipped.
type AreaSpec struct {
	Widgets      []*DockWidget
	Current      string
	AllowedAreas DockWidgetArea
	Flags        DockAreaFlag
}

// SideBarSpec lists the widgets pinned to one sidebar in tab order.
type SideBarSpec struct {
	Location SideBarLocation
	Items    []AutoHideSpec
}

// AutoHideSpec is one pinned widget with its expanded size.
type AutoHideSpec struct {
	Widget *DockWidget
	Size   int
}

// ReplaceLayout discards the current tree of c and builds the one described by
// spec. Widgets of the old tree that spec does not mention are left without a
// placement. Areas that end up without widgets are dropped and the resulting
// tree is normalized. The central mark is cleared.
func (c *DockContainer) ReplaceLayout(spec *LayoutSpec) {
	for _, a := range c.DockAreas() {
		for _, w := range a.widgets {
			if w.area == a {
				w.area = nil
			}
		}
		a.widgets = nil
		a.current = -1
		a.container = nil
		a.parent = nil
	}
	c.root = NewSplitter(Horizontal)
	c.central = nil
	c.lastAdded = make(map[DockWidgetArea]*DockArea)

	seen := make(map[*DockWidget]bool)
	switch n := c.buildNode(spec, seen).(type) {
	case *Splitter:
		n.parent = nil
		c.root = n
	case *DockArea:
		c.root.Append(n, DefaultSplitterWeight)
	}
	c.DockAreasRemoved.Emit(c)
}

func (c *DockContainer) buildNode(spec *LayoutSpec, seen map[*DockWidget]bool) Node {
	if spec == nil {
		return nil
	}
	if spec.Area != nil {
		return c.buildArea(spec.Area, seen)
	}

	s := NewSplitter(spec.Orientation)
	for i, childSpec := range spec.Children {
		child := c.buildNode(childSpec, seen)
		if child == nil {
			continue
		}
		weight := DefaultSplitterWeight
		if i < len(spec.Sizes) {
			weight = spec.Sizes[i]
		}
		s.Append(child, weight)
	}
	switch s.Count() {
	case 0:
		return nil
	case 1:
		child := s.children[0]
		s.Remove(child)
		return child
	}
	return s
}

func (c *DockContainer) buildArea(spec *AreaSpec, seen map[*DockWidget]bool) Node {
	a := c.NewDockArea()
	for _, w := range spec.Widgets {
		if w == nil || seen[w] {
			continue
		}
		seen[w] = true
		Detach(w)
		a.insertWidget(w, -1, false)
	}
	if a.Count() == 0 {
		a.container = nil
		return nil
	}
	a.allowed = spec.AllowedAreas
	if a.allowed == NoDockWidgetArea {
		a.allowed = AllDockAreas
	}
	a.flags = spec.Flags
	a.storedCurrent = spec.Current
	for i, w := range a.widgets {
		if w.name == spec.Current {
			a.current = i
			break
		}
	}
	return a
}

// ReplaceSideBars removes every pinned widget of c and pins the ones listed.
func (c *DockContainer) ReplaceSideBars(specs []SideBarSpec) {
	for _, ah := range c.AutoHideContainers() {
		c.removeAutoHide(ah)
	}
	for _, spec := range specs {
		if !spec.Location.Valid() {
			continue
		}
		for _, item := range spec.Items {
			if item.Widget == nil {
				continue
			}
			ah := c.CreateAutoHideContainer(spec.Location, item.Widget, -1)
			ah.SetSize(item.Size)
		}
	}
}
