package entity

// Point is a position in screen coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair.
type Size struct {
	W, H int
}

// IsEmpty reports whether either dimension is not positive.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect represents a position and size in screen coordinates.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return !r.IsEmpty() && p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Side returns the part of r covering the given side, sized by fraction of
// the relevant dimension. Center returns r unchanged.
func (r Rect) Side(side DockWidgetArea, fraction float64) Rect {
	switch side {
	case LeftDockWidgetArea:
		return Rect{X: r.X, Y: r.Y, W: int(float64(r.W) * fraction), H: r.H}
	case RightDockWidgetArea:
		w := int(float64(r.W) * fraction)
		return Rect{X: r.X + r.W - w, Y: r.Y, W: w, H: r.H}
	case TopDockWidgetArea:
		return Rect{X: r.X, Y: r.Y, W: r.W, H: int(float64(r.H) * fraction)}
	case BottomDockWidgetArea:
		h := int(float64(r.H) * fraction)
		return Rect{X: r.X, Y: r.Y + r.H - h, W: r.W, H: h}
	}
	return r
}
