package entity

// DefaultSplitterWeight is the size weight given to a child with no explicit size.
const DefaultSplitterWeight = 100

// Node is an element of a container's splitter tree: a *Splitter or a *DockArea.
type Node interface {
	ParentSplitter() *Splitter
	setParentSplitter(*Splitter)
	visible() bool
}

// Splitter arranges its children along one axis with integer size weights.
type Splitter struct {
	orientation Orientation
	children    []Node
	sizes       []int
	parent      *Splitter
}

// NewSplitter creates an empty splitter.
func NewSplitter(o Orientation) *Splitter {
	return &Splitter{orientation: o}
}

func (s *Splitter) ParentSplitter() *Splitter     { return s.parent }
func (s *Splitter) setParentSplitter(p *Splitter) { s.parent = p }

// visible reports whether any child occupies space.
func (s *Splitter) visible() bool {
	for _, c := range s.children {
		if c.visible() {
			return true
		}
	}
	return false
}

// HasVisibleContent reports whether at least one descendant area is visible.
func (s *Splitter) HasVisibleContent() bool { return s.visible() }

func (s *Splitter) Orientation() Orientation { return s.orientation }

func (s *Splitter) SetOrientation(o Orientation) { s.orientation = o }

// Count returns the number of direct children.
func (s *Splitter) Count() int { return len(s.children) }

// Children returns a copy of the direct children.
func (s *Splitter) Children() []Node {
	out := make([]Node, len(s.children))
	copy(out, s.children)
	return out
}

// Child returns the child at i, or nil.
func (s *Splitter) Child(i int) Node {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i]
}

// IndexOf returns the position of n among the children, or -1.
func (s *Splitter) IndexOf(n Node) int {
	for i, c := range s.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Sizes returns a copy of the per-child weights.
func (s *Splitter) Sizes() []int {
	out := make([]int, len(s.sizes))
	copy(out, s.sizes)
	return out
}

// SetSizes replaces the weights. It fails when the count does not match the children.
func (s *Splitter) SetSizes(sizes []int) bool {
	if len(sizes) != len(s.children) {
		return false
	}
	for _, v := range sizes {
		if v < 0 {
			return false
		}
	}
	s.sizes = append(s.sizes[:0], sizes...)
	return true
}

// EqualizeSizes gives every child the same weight while preserving the total.
func (s *Splitter) EqualizeSizes() {
	if len(s.sizes) == 0 {
		return
	}
	total := 0
	for _, v := range s.sizes {
		total += v
	}
	if total <= 0 {
		total = DefaultSplitterWeight * len(s.sizes)
	}
	each := total / len(s.sizes)
	for i := range s.sizes {
		s.sizes[i] = each
	}
}

// Insert places n at index with the given weight. Negative or out of range
// indexes append.
func (s *Splitter) Insert(index int, n Node, weight int) {
	if index < 0 || index > len(s.children) {
		index = len(s.children)
	}
	if weight <= 0 {
		weight = DefaultSplitterWeight
	}
	s.children = append(s.children, nil)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = n

	s.sizes = append(s.sizes, 0)
	copy(s.sizes[index+1:], s.sizes[index:])
	s.sizes[index] = weight

	n.setParentSplitter(s)
}

// Append adds n as the last child.
func (s *Splitter) Append(n Node, weight int) { s.Insert(-1, n, weight) }

// Remove detaches n and returns its weight, or -1 when n is not a child.
func (s *Splitter) Remove(n Node) int {
	i := s.IndexOf(n)
	if i < 0 {
		return -1
	}
	w := s.sizes[i]
	s.children = append(s.children[:i], s.children[i+1:]...)
	s.sizes = append(s.sizes[:i], s.sizes[i+1:]...)
	n.setParentSplitter(nil)
	return w
}

// Replace swaps old for n in place, keeping the weight.
func (s *Splitter) Replace(old, n Node) bool {
	i := s.IndexOf(old)
	if i < 0 {
		return false
	}
	s.children[i] = n
	old.setParentSplitter(nil)
	n.setParentSplitter(s)
	return true
}

// Weight returns the weight of the child at i.
func (s *Splitter) Weight(i int) int {
	if i < 0 || i >= len(s.sizes) {
		return 0
	}
	return s.sizes[i]
}

func (s *Splitter) setWeight(i, w int) {
	if i >= 0 && i < len(s.sizes) {
		s.sizes[i] = w
	}
}

// Layout divides r between visible children proportionally to their weights.
// Hidden children receive an empty rect.
func (s *Splitter) Layout(r Rect, assign func(Node, Rect)) {
	total := 0
	visible := 0
	for i, c := range s.children {
		if c.visible() {
			total += max(s.sizes[i], 1)
			visible++
		}
	}
	span := r.W
	if s.orientation == Vertical {
		span = r.H
	}
	offset := 0
	seen := 0
	for i, c := range s.children {
		if !c.visible() {
			assign(c, Rect{})
			continue
		}
		seen++
		length := span * max(s.sizes[i], 1) / total
		if seen == visible {
			length = span - offset
		}
		cr := Rect{X: r.X + offset, Y: r.Y, W: length, H: r.H}
		if s.orientation == Vertical {
			cr = Rect{X: r.X, Y: r.Y + offset, W: r.W, H: length}
		}
		offset += length
		assign(c, cr)
	}
}

// WalkAreas calls fn for every dock area below n in depth-first order.
func WalkAreas(n Node, fn func(*DockArea)) {
	switch v := n.(type) {
	case *DockArea:
		fn(v)
	case *Splitter:
		for _, c := range v.children {
			WalkAreas(c, fn)
		}
	}
}

// WalkSplitters calls fn for every splitter below and including n.
func WalkSplitters(n Node, fn func(*Splitter)) {
	s, ok := n.(*Splitter)
	if !ok {
		return
	}
	fn(s)
	for _, c := range s.children {
		WalkSplitters(c, fn)
	}
}
