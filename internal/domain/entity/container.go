package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by Validate when the tree breaks a structural invariant.
var ErrInvalidLayout = errors.New("invalid dock layout")

// DockContainer is one root of layout: a splitter tree of dock areas plus four
// auto-hide sidebars. The root splitter always exists and may hold a single
// dock area; every other splitter holds at least two children.
type DockContainer struct {
	root        *Splitter
	sideBars    [4]SideBar
	central     *DockArea
	floating    bool
	geometry    Rect
	windowState WindowState
	lastAdded   map[DockWidgetArea]*DockArea

	// DockAreaCreated fires for every area the container creates.
	DockAreaCreated Signal[*DockArea]
	// DockAreasRemoved fires after one or more areas left the tree.
	DockAreasRemoved Signal[*DockContainer]
}

// NewDockContainer creates an empty container.
func NewDockContainer(floating bool) *DockContainer {
	c := &DockContainer{
		root:      NewSplitter(Horizontal),
		floating:  floating,
		lastAdded: make(map[DockWidgetArea]*DockArea),
	}
	for _, loc := range SideBarLocations {
		c.sideBars[loc].location = loc
	}
	return c
}

// IsFloating reports whether the container is hosted by a floating window.
func (c *DockContainer) IsFloating() bool { return c.floating }

// RootSplitter returns the root of the splitter tree.
func (c *DockContainer) RootSplitter() *Splitter { return c.root }

func (c *DockContainer) Geometry() Rect { return c.geometry }

func (c *DockContainer) SetGeometry(r Rect) { c.geometry = r }

func (c *DockContainer) WindowState() WindowState { return c.windowState }

func (c *DockContainer) SetWindowState(s WindowState) { c.windowState = s }

// CentralArea returns the permanent central area, or nil.
func (c *DockContainer) CentralArea() *DockArea { return c.central }

// SetCentralArea marks a as the central area. The central area only accepts
// drops on its outer sides. Passing nil clears the mark.
func (c *DockContainer) SetCentralArea(a *DockArea) {
	if c.central != nil && c.central != a {
		c.central.allowed = AllDockAreas
	}
	c.central = a
	if a != nil {
		a.allowed = OuterDockAreas
	}
}

// SideBar returns the sidebar at loc, or nil when loc is not valid.
func (c *DockContainer) SideBar(loc SideBarLocation) *SideBar {
	if !loc.Valid() {
		return nil
	}
	return &c.sideBars[loc]
}

// AutoHideContainers returns every auto-hide container in sidebar order.
func (c *DockContainer) AutoHideContainers() []*AutoHideContainer {
	var out []*AutoHideContainer
	for _, loc := range SideBarLocations {
		out = append(out, c.sideBars[loc].items...)
	}
	return out
}

// DockAreas returns every area in depth-first tree order.
func (c *DockContainer) DockAreas() []*DockArea {
	var out []*DockArea
	WalkAreas(c.root, func(a *DockArea) { out = append(out, a) })
	return out
}

// DockAreaCount returns the number of areas in the tree.
func (c *DockContainer) DockAreaCount() int { return len(c.DockAreas()) }

// DockArea returns the area at depth-first index i, or nil.
func (c *DockContainer) DockArea(i int) *DockArea {
	areas := c.DockAreas()
	if i < 0 || i >= len(areas) {
		return nil
	}
	return areas[i]
}

// OpenedDockAreas returns the areas holding at least one open widget.
func (c *DockContainer) OpenedDockAreas() []*DockArea {
	var out []*DockArea
	for _, a := range c.DockAreas() {
		if a.OpenCount() > 0 {
			out = append(out, a)
		}
	}
	return out
}

// HasOpenDockAreas reports whether any area holds an open widget.
func (c *DockContainer) HasOpenDockAreas() bool {
	for _, a := range c.DockAreas() {
		if a.OpenCount() > 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the container holds no area and no auto-hide widget.
func (c *DockContainer) IsEmpty() bool {
	if c.root.Count() > 0 {
		return false
	}
	for _, loc := range SideBarLocations {
		if c.sideBars[loc].Count() > 0 {
			return false
		}
	}
	return true
}

// DockWidgets returns the widgets in the tree followed by the pinned ones.
func (c *DockContainer) DockWidgets() []*DockWidget {
	var out []*DockWidget
	for _, a := range c.DockAreas() {
		out = append(out, a.widgets...)
	}
	for _, ah := range c.AutoHideContainers() {
		out = append(out, ah.widget)
	}
	return out
}

// OpenedDockWidgets returns the open widgets of the tree.
func (c *DockContainer) OpenedDockWidgets() []*DockWidget {
	var out []*DockWidget
	for _, a := range c.DockAreas() {
		out = append(out, a.OpenDockWidgets()...)
	}
	return out
}

// TopLevelDockArea returns the only opened area, or nil.
func (c *DockContainer) TopLevelDockArea() *DockArea {
	opened := c.OpenedDockAreas()
	if len(opened) != 1 {
		return nil
	}
	return opened[0]
}

// TopLevelDockWidget returns the unique open widget when exactly one exists.
func (c *DockContainer) TopLevelDockWidget() *DockWidget {
	a := c.TopLevelDockArea()
	if a == nil {
		return nil
	}
	open := a.OpenDockWidgets()
	if len(open) != 1 {
		return nil
	}
	return open[0]
}

// LastAddedDockArea returns the area most recently created on side, if it is
// still part of the tree.
func (c *DockContainer) LastAddedDockArea(side DockWidgetArea) *DockArea {
	a := c.lastAdded[side]
	if a == nil || a.container != c {
		return nil
	}
	return a
}

// NewDockArea creates a detached area owned by c.
func (c *DockContainer) NewDockArea() *DockArea {
	a := newDockArea(c)
	c.DockAreaCreated.Emit(a)
	return a
}

// AddDockWidget places w relative to target on side and returns the area that
// holds w afterwards. A nil target places w relative to the whole container.
// Dropping a widget onto the center of its own area only moves its tab, and
// splitting a single-widget area with its own widget does nothing.
func (c *DockContainer) AddDockWidget(side DockWidgetArea, w *DockWidget, target *DockArea, index int, equalSplit bool) *DockArea {
	if target != nil && target.container != c {
		target = nil
	}
	if target != nil && w.area == target {
		if side == CenterDockWidgetArea {
			target.InsertDockWidget(w, index, true)
			w.closed = false
			return target
		}
		if target.Count() == 1 {
			w.closed = false
			return target
		}
	}

	Detach(w)

	if target != nil && side == CenterDockWidgetArea {
		target.insertWidget(w, index, true)
		w.closed = false
		return target
	}

	area := c.NewDockArea()
	area.insertWidget(w, 0, true)
	w.closed = false
	if target == nil {
		c.addNodeToRoot(area, side, equalSplit)
	} else {
		c.insertNode(target, area, side, equalSplit)
	}
	c.lastAdded[side] = area
	return area
}

// DropDockArea moves the whole area a next to target, or merges its widgets
// into target when side is center. a may come from another container.
func (c *DockContainer) DropDockArea(a *DockArea, side DockWidgetArea, target *DockArea, equalSplit bool) *DockArea {
	if a == target {
		return a
	}
	if target != nil && target.container != c {
		target = nil
	}
	if target != nil && side == CenterDockWidgetArea {
		c.mergeInto(target, []*DockArea{a}, -1)
		return target
	}

	if src := a.container; src != nil {
		src.removeDockArea(a)
	}
	a.container = c
	if target == nil {
		c.addNodeToRoot(a, side, equalSplit)
	} else {
		c.insertNode(target, a, side, equalSplit)
	}
	return a
}

// DropContainer moves the complete content of src into c. Tree content is
// inserted next to target, or merged into target for a center drop; pinned
// widgets keep their sidebar.
func (c *DockContainer) DropContainer(src *DockContainer, side DockWidgetArea, target *DockArea, equalSplit bool) {
	if src == c {
		return
	}
	if target != nil && target.container != c {
		target = nil
	}

	areas := src.DockAreas()
	if len(areas) > 0 {
		if target != nil && side == CenterDockWidgetArea {
			current := src.TopLevelCurrent()
			c.mergeInto(target, areas, -1)
			if current != nil {
				target.SetCurrentDockWidget(current)
			}
		} else {
			var node Node = src.root
			if src.root.Count() == 1 {
				node = src.root.children[0]
				src.root.Remove(node)
			}
			src.root = NewSplitter(Horizontal)
			src.central = nil
			for _, a := range areas {
				a.container = c
			}
			if target == nil {
				c.addNodeToRoot(node, side, equalSplit)
			} else {
				c.insertNode(target, node, side, equalSplit)
			}
		}
		src.DockAreasRemoved.Emit(src)
	}

	for _, ah := range src.AutoHideContainers() {
		src.sideBars[ah.location].remove(ah)
		ah.container = c
		c.sideBars[ah.location].insert(-1, ah)
	}
}

// TopLevelCurrent returns the current widget of the first opened area.
func (c *DockContainer) TopLevelCurrent() *DockWidget {
	for _, a := range c.DockAreas() {
		if w := a.CurrentDockWidget(); w != nil && !w.closed {
			return w
		}
	}
	return nil
}

func (c *DockContainer) mergeInto(target *DockArea, areas []*DockArea, index int) {
	for _, a := range areas {
		if a == target {
			continue
		}
		widgets := a.DockWidgets()
		src := a.container
		for _, w := range widgets {
			a.removeWidget(w)
			target.insertWidget(w, index, false)
			if index >= 0 {
				index++
			}
		}
		if src != nil {
			src.removeDockArea(a)
		}
	}
}

// CreateAutoHideContainer pins w to the sidebar at loc. Index -1 appends.
func (c *DockContainer) CreateAutoHideContainer(loc SideBarLocation, w *DockWidget, index int) *AutoHideContainer {
	if !loc.Valid() {
		return nil
	}
	Detach(w)
	ah := &AutoHideContainer{
		widget:    w,
		location:  loc,
		size:      autoHideSizeFor(w, loc),
		container: c,
	}
	w.autoHide = ah
	w.unassigned = false
	c.sideBars[loc].insert(index, ah)
	return ah
}

// MoveAutoHideContainer moves ah to another sidebar position of c.
func (c *DockContainer) MoveAutoHideContainer(ah *AutoHideContainer, loc SideBarLocation, index int) bool {
	if !loc.Valid() || ah.container == nil {
		return false
	}
	ah.container.sideBars[ah.location].remove(ah)
	ah.location = loc
	ah.container = c
	c.sideBars[loc].insert(index, ah)
	return true
}

func (c *DockContainer) removeAutoHide(ah *AutoHideContainer) {
	c.sideBars[ah.location].remove(ah)
	ah.container = nil
	if ah.widget != nil {
		ah.widget.autoHide = nil
	}
}

// RemoveDockArea takes a out of the tree and normalizes its parents.
func (c *DockContainer) RemoveDockArea(a *DockArea) {
	if a.container != c {
		return
	}
	c.removeDockArea(a)
}

func (c *DockContainer) removeDockArea(a *DockArea) {
	if c.central == a {
		c.central = nil
	}
	for side, last := range c.lastAdded {
		if last == a {
			delete(c.lastAdded, side)
		}
	}
	parent := a.parent
	a.container = nil
	if parent == nil {
		return
	}
	parent.Remove(a)
	c.normalizeFrom(parent)
	c.DockAreasRemoved.Emit(c)
}

// normalizeFrom walks up from s removing empty splitters and replacing
// single-child splitters by their child.
func (c *DockContainer) normalizeFrom(s *Splitter) {
	for s != nil && s != c.root {
		p := s.parent
		if s.Count() == 0 {
			p.Remove(s)
			s = p
			continue
		}
		if s.Count() == 1 {
			child := s.children[0]
			s.children, s.sizes = nil, nil
			p.Replace(s, child)
		}
		break
	}
	c.normalizeRoot()
}

func (c *DockContainer) normalizeRoot() {
	for c.root.Count() == 1 {
		inner, ok := c.root.children[0].(*Splitter)
		if !ok {
			return
		}
		inner.parent = nil
		c.root = inner
	}
	if c.root.Count() == 1 {
		c.root.sizes[0] = DefaultSplitterWeight
	}
}

// addNodeToRoot places n on side of the whole tree.
func (c *DockContainer) addNodeToRoot(n Node, side DockWidgetArea, equalSplit bool) {
	o, after := InsertParameters(side)
	root := c.root
	if root.Count() <= 1 {
		root.orientation = o
	}
	if root.orientation != o {
		next := NewSplitter(o)
		next.Append(root, DefaultSplitterWeight*root.Count())
		c.root = next
		root = next
	}
	weight := DefaultSplitterWeight
	if root.Count() > 0 {
		weight = averageWeight(root.sizes)
	}
	index := 0
	if after {
		index = root.Count()
	}
	splice(root, index, n, weight)
	if equalSplit {
		root.EqualizeSizes()
	}
	c.normalizeRoot()
}

// insertNode places n on side of target. When the parent axis matches, n
// becomes a sibling taking half of target's weight. Otherwise target and n are
// wrapped in a new splitter with the required orientation.
func (c *DockContainer) insertNode(target *DockArea, n Node, side DockWidgetArea, equalSplit bool) {
	o, after := InsertParameters(side)
	parent := target.parent
	if parent == nil {
		c.addNodeToRoot(n, side, equalSplit)
		return
	}
	if parent.Count() == 1 {
		parent.orientation = o
	}
	i := parent.IndexOf(target)
	if parent.orientation == o {
		w := parent.Weight(i)
		half := max(w/2, 1)
		parent.setWeight(i, max(w-half, 1))
		index := i
		if after {
			index = i + 1
		}
		splice(parent, index, n, half)
		if equalSplit {
			parent.EqualizeSizes()
		}
		return
	}

	s := NewSplitter(o)
	parent.Replace(target, s)
	s.Append(target, DefaultSplitterWeight)
	index := 0
	if after {
		index = 1
	}
	splice(s, index, n, DefaultSplitterWeight)
}

// splice inserts n at index. A splitter with the parent's orientation is
// dissolved into the parent, its children sharing weight proportionally.
func splice(parent *Splitter, index int, n Node, weight int) {
	s, ok := n.(*Splitter)
	if !ok || s.orientation != parent.orientation || s.Count() == 0 {
		parent.Insert(index, n, weight)
		return
	}
	total := 0
	for _, v := range s.sizes {
		total += max(v, 1)
	}
	children, sizes := s.Children(), s.Sizes()
	for j, child := range children {
		s.Remove(child)
		share := max(weight*max(sizes[j], 1)/total, 1)
		parent.Insert(index+j, child, share)
	}
}

func averageWeight(sizes []int) int {
	if len(sizes) == 0 {
		return DefaultSplitterWeight
	}
	total := 0
	for _, v := range sizes {
		total += v
	}
	return max(total/len(sizes), 1)
}

// Layout computes the rect of every area for the container rect r. Hidden
// areas get an empty rect.
func (c *DockContainer) Layout(r Rect) map[*DockArea]Rect {
	out := make(map[*DockArea]Rect)
	var assign func(Node, Rect)
	assign = func(n Node, nr Rect) {
		switch v := n.(type) {
		case *DockArea:
			if v.IsVisible() {
				out[v] = nr
			} else {
				out[v] = Rect{}
			}
		case *Splitter:
			v.Layout(nr, assign)
		}
	}
	c.root.Layout(r, assign)
	return out
}

// DockAreaAt returns the visible area under p using the container geometry.
func (c *DockContainer) DockAreaAt(p Point) (*DockArea, Rect) {
	for a, r := range c.Layout(c.geometry) {
		if r.Contains(p) {
			return a, r
		}
	}
	return nil, Rect{}
}

// Validate checks the structural invariants of the container.
func (c *DockContainer) Validate() error {
	if c.root.parent != nil {
		return fmt.Errorf("%w: root splitter has a parent", ErrInvalidLayout)
	}
	seen := make(map[*DockWidget]bool)
	var centralSeen bool
	var check func(s *Splitter) error
	check = func(s *Splitter) error {
		if s == c.root && s.Count() == 1 {
			if _, nested := s.children[0].(*Splitter); nested {
				return fmt.Errorf("%w: root wraps a single splitter", ErrInvalidLayout)
			}
		}
		if s != c.root && s.Count() < 2 {
			return fmt.Errorf("%w: splitter with %d children", ErrInvalidLayout, s.Count())
		}
		if len(s.sizes) != len(s.children) {
			return fmt.Errorf("%w: splitter has %d sizes for %d children", ErrInvalidLayout, len(s.sizes), len(s.children))
		}
		for _, child := range s.children {
			if child.ParentSplitter() != s {
				return fmt.Errorf("%w: broken parent link", ErrInvalidLayout)
			}
			switch v := child.(type) {
			case *Splitter:
				if err := check(v); err != nil {
					return err
				}
			case *DockArea:
				if v.container != c {
					return fmt.Errorf("%w: area owned by another container", ErrInvalidLayout)
				}
				if v == c.central {
					centralSeen = true
				} else if v.Count() == 0 {
					return fmt.Errorf("%w: empty non-central area", ErrInvalidLayout)
				}
				for _, w := range v.widgets {
					if seen[w] || w.area != v || w.autoHide != nil {
						return fmt.Errorf("%w: dock widget %q placed twice", ErrInvalidLayout, w.name)
					}
					seen[w] = true
				}
			}
		}
		return nil
	}
	if err := check(c.root); err != nil {
		return err
	}
	if c.central != nil && !centralSeen {
		return fmt.Errorf("%w: central area is not part of the tree", ErrInvalidLayout)
	}
	for _, ah := range c.AutoHideContainers() {
		w := ah.widget
		if seen[w] || w.area != nil || w.autoHide != ah || ah.container != c {
			return fmt.Errorf("%w: dock widget %q placed twice", ErrInvalidLayout, w.name)
		}
		seen[w] = true
	}
	return nil
}
