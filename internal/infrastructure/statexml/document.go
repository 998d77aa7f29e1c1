// Package statexml encodes and decodes the XML layout state exchanged by
// SaveState and RestoreState. The document model mirrors the XML one to one;
// mapping to live layout objects happens in the docking package.
package statexml

import (
	"errors"
	"fmt"

	"github.com/bnema/dockit/internal/domain/entity"
)

const (
	// RootElement is the name of the document element.
	RootElement = "QtAdvancedDockingSystem"
	// CurrentVersion is the internal format version written by Encode.
	CurrentVersion = 1
)

var (
	ErrInvalidRootElement    = errors.New("invalid root element")
	ErrMalformedState        = errors.New("malformed layout state")
	ErrVersionTooNew         = errors.New("state version is newer than supported")
	ErrUserVersionMismatch   = errors.New("user version mismatch")
	ErrCentralWidgetMissing  = errors.New("state has no central widget")
	ErrCentralWidgetMismatch = errors.New("central widget name mismatch")
	ErrEmptyState            = errors.New("empty state")
)

// Document is a decoded layout state.
type Document struct {
	Version        int
	UserVersion    int
	HasUserVersion bool
	CentralWidget  string
	Containers     []*Container
}

// Container is one dock container: the main one first, then floaters.
type Container struct {
	Floating bool
	Geometry *Geometry
	// Root is nil for a container without areas.
	Root     *Node
	SideBars []*SideBar
}

// Geometry is the window geometry of a floating container.
type Geometry struct {
	X, Y, Width, Height int
	State               entity.WindowState
}

// Node is a splitter when Area is nil, otherwise a dock area.
type Node struct {
	Orientation entity.Orientation
	Sizes       []int
	Children    []*Node
	Area        *Area
}

// IsArea reports whether n is a dock area.
func (n *Node) IsArea() bool { return n.Area != nil }

// Area is a serialized dock area.
type Area struct {
	CurrentDockWidget string
	AllowedAreas      entity.DockWidgetArea
	Flags             entity.DockAreaFlag
	Widgets           []Widget
}

// Widget is one tab of an area.
type Widget struct {
	Name   string
	Closed bool
}

// SideBar lists the auto-hide widgets of one sidebar in tab order.
type SideBar struct {
	Location entity.SideBarLocation
	Widgets  []SideBarWidget
}

// SideBarWidget is one pinned widget and its expanded size.
type SideBarWidget struct {
	Name   string
	Closed bool
	Size   int
}

// Expectations are the caller-side values a document header must match.
type Expectations struct {
	UserVersion int
	// CentralWidget is the name of the live central widget, empty when none.
	CentralWidget string
	// IgnoreCentralWidget skips the central widget check.
	IgnoreCentralWidget bool
}

// CheckHeader validates the root attributes against the caller's expectations.
func (d *Document) CheckHeader(exp Expectations) error {
	if d.Version > CurrentVersion {
		return fmt.Errorf("%w: %d > %d", ErrVersionTooNew, d.Version, CurrentVersion)
	}
	if d.HasUserVersion && d.UserVersion != exp.UserVersion {
		return fmt.Errorf("%w: state has %d, expected %d", ErrUserVersionMismatch, d.UserVersion, exp.UserVersion)
	}
	if exp.CentralWidget == "" || exp.IgnoreCentralWidget {
		return nil
	}
	if d.CentralWidget == "" {
		return ErrCentralWidgetMissing
	}
	if d.CentralWidget != exp.CentralWidget {
		return fmt.Errorf("%w: state has %q, expected %q", ErrCentralWidgetMismatch, d.CentralWidget, exp.CentralWidget)
	}
	return nil
}

// WidgetNames returns every widget name referenced by the document in order.
func (d *Document) WidgetNames() []string {
	var names []string
	for _, c := range d.Containers {
		c.Root.Walk(func(a *Area) {
			for _, w := range a.Widgets {
				names = append(names, w.Name)
			}
		})
		for _, sb := range c.SideBars {
			for _, w := range sb.Widgets {
				names = append(names, w.Name)
			}
		}
	}
	return names
}

// Walk calls fn for every area below n in document order. A nil node is empty.
func (n *Node) Walk(fn func(*Area)) {
	if n == nil {
		return
	}
	if n.Area != nil {
		fn(n.Area)
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
