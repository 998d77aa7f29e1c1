// Package entity contains the docking layout model: dock widgets, dock areas,
// the splitter tree, auto-hide containers and dock containers.
// These are plain Go types with no toolkit or infrastructure dependencies.
package entity

import "strings"

// DockWidgetArea identifies a drop side relative to a dock area or container.
// Values combine into masks (see OuterDockAreas, AllDockAreas).
type DockWidgetArea int

const (
	NoDockWidgetArea     DockWidgetArea = 0x00
	LeftDockWidgetArea   DockWidgetArea = 0x01
	RightDockWidgetArea  DockWidgetArea = 0x02
	TopDockWidgetArea    DockWidgetArea = 0x04
	BottomDockWidgetArea DockWidgetArea = 0x08
	CenterDockWidgetArea DockWidgetArea = 0x10

	InvalidDockWidgetArea = NoDockWidgetArea
	OuterDockAreas        = TopDockWidgetArea | LeftDockWidgetArea | RightDockWidgetArea | BottomDockWidgetArea
	AllDockAreas          = OuterDockAreas | CenterDockWidgetArea
)

// Has reports whether every bit of other is set in a.
func (a DockWidgetArea) Has(other DockWidgetArea) bool {
	return other != NoDockWidgetArea && a&other == other
}

// IsSingle reports whether a names exactly one side.
func (a DockWidgetArea) IsSingle() bool {
	switch a {
	case LeftDockWidgetArea, RightDockWidgetArea, TopDockWidgetArea, BottomDockWidgetArea, CenterDockWidgetArea:
		return true
	}
	return false
}

func (a DockWidgetArea) String() string {
	switch a {
	case NoDockWidgetArea:
		return "none"
	case LeftDockWidgetArea:
		return "left"
	case RightDockWidgetArea:
		return "right"
	case TopDockWidgetArea:
		return "top"
	case BottomDockWidgetArea:
		return "bottom"
	case CenterDockWidgetArea:
		return "center"
	}
	var parts []string
	for _, side := range []DockWidgetArea{
		LeftDockWidgetArea, RightDockWidgetArea, TopDockWidgetArea, BottomDockWidgetArea, CenterDockWidgetArea,
	} {
		if a.Has(side) {
			parts = append(parts, side.String())
		}
	}
	return strings.Join(parts, "|")
}

// ParseDockWidgetArea converts a side name into a DockWidgetArea.
func ParseDockWidgetArea(s string) (DockWidgetArea, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return LeftDockWidgetArea, true
	case "right":
		return RightDockWidgetArea, true
	case "top":
		return TopDockWidgetArea, true
	case "bottom":
		return BottomDockWidgetArea, true
	case "center", "centre", "tab":
		return CenterDockWidgetArea, true
	}
	return InvalidDockWidgetArea, false
}

// Orientation is the axis along which a splitter lays out its children.
type Orientation int

const (
	Horizontal Orientation = iota // children left to right
	Vertical                      // children top to bottom
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// InsertParameters returns the splitter orientation required to place
// something on the given side, and whether it goes after the target.
func InsertParameters(side DockWidgetArea) (Orientation, bool) {
	switch side {
	case TopDockWidgetArea:
		return Vertical, false
	case BottomDockWidgetArea:
		return Vertical, true
	case LeftDockWidgetArea:
		return Horizontal, false
	default: // right and center
		return Horizontal, true
	}
}

// SideBarLocation names one of the four auto-hide sidebars of a container.
type SideBarLocation int

const (
	SideBarTop SideBarLocation = iota
	SideBarLeft
	SideBarRight
	SideBarBottom
	SideBarNone
)

// SideBarLocations lists the valid sidebar locations in serialization order.
var SideBarLocations = [...]SideBarLocation{SideBarTop, SideBarLeft, SideBarRight, SideBarBottom}

// Valid reports whether l names an actual sidebar.
func (l SideBarLocation) Valid() bool {
	return l >= SideBarTop && l < SideBarNone
}

func (l SideBarLocation) String() string {
	switch l {
	case SideBarTop:
		return "top"
	case SideBarLeft:
		return "left"
	case SideBarRight:
		return "right"
	case SideBarBottom:
		return "bottom"
	}
	return "none"
}

// ParseSideBarLocation converts a sidebar name into a SideBarLocation.
func ParseSideBarLocation(s string) (SideBarLocation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return SideBarTop, true
	case "left":
		return SideBarLeft, true
	case "right":
		return SideBarRight, true
	case "bottom":
		return SideBarBottom, true
	}
	return SideBarNone, false
}

// IsHorizontal reports whether the sidebar tab strip runs horizontally.
func (l SideBarLocation) IsHorizontal() bool {
	return l == SideBarTop || l == SideBarBottom
}

// DockArea returns the dock side matching the sidebar.
func (l SideBarLocation) DockArea() DockWidgetArea {
	switch l {
	case SideBarTop:
		return TopDockWidgetArea
	case SideBarRight:
		return RightDockWidgetArea
	case SideBarBottom:
		return BottomDockWidgetArea
	}
	return LeftDockWidgetArea
}

// SideBarLocationForArea returns the sidebar matching a dock side.
// Center and invalid sides map to SideBarNone.
func SideBarLocationForArea(a DockWidgetArea) SideBarLocation {
	switch a {
	case TopDockWidgetArea:
		return SideBarTop
	case LeftDockWidgetArea:
		return SideBarLeft
	case RightDockWidgetArea:
		return SideBarRight
	case BottomDockWidgetArea:
		return SideBarBottom
	}
	return SideBarNone
}

// DockWidgetFeature is a bit set of per-widget capabilities.
type DockWidgetFeature uint32

const (
	DockWidgetClosable           DockWidgetFeature = 0x001
	DockWidgetMovable            DockWidgetFeature = 0x002
	DockWidgetFloatable          DockWidgetFeature = 0x004
	DockWidgetDeleteOnClose      DockWidgetFeature = 0x008
	CustomCloseHandling          DockWidgetFeature = 0x010
	DockWidgetFocusable          DockWidgetFeature = 0x020
	DockWidgetForceCloseWithArea DockWidgetFeature = 0x040
	NoTab                        DockWidgetFeature = 0x080
	DeleteContentOnClose         DockWidgetFeature = 0x100
	DockWidgetPinnable           DockWidgetFeature = 0x200

	NoDockWidgetFeatures           DockWidgetFeature = 0
	DefaultDockWidgetFeatures                        = DockWidgetClosable | DockWidgetMovable | DockWidgetFloatable | DockWidgetFocusable | DockWidgetPinnable
	AllDockWidgetFeatures                            = DefaultDockWidgetFeatures | DockWidgetDeleteOnClose | CustomCloseHandling
	DockWidgetAlwaysCloseAndDelete                   = DockWidgetForceCloseWithArea | DockWidgetDeleteOnClose
	GloballyLockableFeatures                         = DockWidgetClosable | DockWidgetMovable | DockWidgetFloatable | DockWidgetPinnable
)

// Has reports whether all bits of f are set.
func (fs DockWidgetFeature) Has(f DockWidgetFeature) bool {
	return fs&f == f
}

// DockAreaFlag is a bit set of per-area display options.
type DockAreaFlag uint32

const (
	HideSingleWidgetTitleBar DockAreaFlag = 0x0001

	DefaultDockAreaFlags DockAreaFlag = 0
)

// WindowState is the state of a top-level window.
type WindowState int

const (
	WindowNormal WindowState = iota
	WindowMinimized
	WindowMaximized
	WindowFullScreen
)

func (s WindowState) String() string {
	switch s {
	case WindowMinimized:
		return "minimized"
	case WindowMaximized:
		return "maximized"
	case WindowFullScreen:
		return "fullscreen"
	}
	return "normal"
}

// ParseWindowState parses the serialized window state name.
// Unknown values map to WindowNormal.
func ParseWindowState(s string) WindowState {
	switch strings.ToLower(s) {
	case "minimized":
		return WindowMinimized
	case "maximized":
		return WindowMaximized
	case "fullscreen":
		return WindowFullScreen
	}
	return WindowNormal
}
