package entity

// DefaultDockWidgetSize is used when a widget has no preferred size yet.
var DefaultDockWidgetSize = Size{W: 400, H: 300}

// DockWidget is a named, toggleable panel holding one opaque payload.
// Its name is the identity key inside a manager.
//
// A DockWidget lives in at most one DockArea or one AutoHideContainer.
// The back-pointers are non-owning and are cleared on removal.
type DockWidget struct {
	name     string
	title    string
	icon     string
	features DockWidgetFeature
	payload  any
	size     Size

	closed     bool
	dirty      bool
	unassigned bool
	deleted    bool

	area     *DockArea
	autoHide *AutoHideContainer

	// ViewToggled fires with the new open state whenever the widget is shown or closed.
	ViewToggled Signal[bool]
	// TopLevelChanged fires with true when the widget becomes the only widget of a floating container.
	TopLevelChanged Signal[bool]
	// Closed fires after the user closed the widget.
	Closed Signal[*DockWidget]
	// CloseRequested fires instead of closing when CustomCloseHandling is set.
	CloseRequested Signal[*DockWidget]
	// FeaturesChanged fires with the new feature set.
	FeaturesChanged Signal[DockWidgetFeature]
	// TitleChanged fires with the new title.
	TitleChanged Signal[string]
}

// NewDockWidget creates an unregistered widget named after its title.
func NewDockWidget(title string) *DockWidget {
	return &DockWidget{
		name:     title,
		title:    title,
		features: DefaultDockWidgetFeatures,
		size:     DefaultDockWidgetSize,
	}
}

// Name returns the unique identity of the widget.
func (w *DockWidget) Name() string { return w.name }

// SetName changes the identity. Only valid before the widget is registered.
func (w *DockWidget) SetName(name string) { w.name = name }

func (w *DockWidget) Title() string { return w.title }

func (w *DockWidget) SetTitle(title string) {
	if w.title == title {
		return
	}
	w.title = title
	w.TitleChanged.Emit(title)
}

func (w *DockWidget) Icon() string        { return w.icon }
func (w *DockWidget) SetIcon(icon string) { w.icon = icon }

// Widget returns the payload.
func (w *DockWidget) Widget() any { return w.payload }

// SetWidget sets the payload. The engine never inspects it.
func (w *DockWidget) SetWidget(payload any) { w.payload = payload }

// Size returns the preferred size used when the widget is floated.
func (w *DockWidget) Size() Size { return w.size }

func (w *DockWidget) SetSize(s Size) {
	if s.IsEmpty() {
		return
	}
	w.size = s
}

// Features returns the widget's own feature flags.
func (w *DockWidget) Features() DockWidgetFeature { return w.features }

// SetFeatures replaces the feature flags.
func (w *DockWidget) SetFeatures(f DockWidgetFeature) {
	if w.features == f {
		return
	}
	w.features = f
	w.FeaturesChanged.Emit(f)
}

// SetFeature switches a single feature on or off.
func (w *DockWidget) SetFeature(f DockWidgetFeature, on bool) {
	next := w.features &^ f
	if on {
		next |= f
	}
	w.SetFeatures(next)
}

// HasFeature reports whether all bits of f are set.
func (w *DockWidget) HasFeature(f DockWidgetFeature) bool {
	return w.features.Has(f)
}

// IsClosed reports whether the widget is toggled hidden.
func (w *DockWidget) IsClosed() bool { return w.closed }

// SetClosedState sets the closed flag without side effects.
// Use the manager's ToggleView to close or open a widget.
func (w *DockWidget) SetClosedState(closed bool) { w.closed = closed }

// IsDirty reports whether the widget was not yet visited by the running restore.
func (w *DockWidget) IsDirty() bool       { return w.dirty }
func (w *DockWidget) SetDirty(dirty bool) { w.dirty = dirty }

// IsUnassigned reports whether the widget has no placement after a restore.
func (w *DockWidget) IsUnassigned() bool { return w.unassigned }

func (w *DockWidget) SetUnassigned(v bool) { w.unassigned = v }

// IsDeleted reports whether the widget was destroyed by delete-on-close or removal.
func (w *DockWidget) IsDeleted() bool { return w.deleted }

func (w *DockWidget) MarkDeleted() { w.deleted = true }

// DockArea returns the area the widget is tabbed into, or nil.
func (w *DockWidget) DockArea() *DockArea { return w.area }

// AutoHideContainer returns the auto-hide container hosting the widget, or nil.
func (w *DockWidget) AutoHideContainer() *AutoHideContainer { return w.autoHide }

// IsAutoHide reports whether the widget is pinned to a sidebar.
func (w *DockWidget) IsAutoHide() bool { return w.autoHide != nil }

// DockContainer returns the container the widget is placed in, or nil.
func (w *DockWidget) DockContainer() *DockContainer {
	switch {
	case w.area != nil:
		return w.area.container
	case w.autoHide != nil:
		return w.autoHide.container
	}
	return nil
}

// IsPlaced reports whether the widget is in an area or a sidebar.
func (w *DockWidget) IsPlaced() bool {
	return w.area != nil || w.autoHide != nil
}

// IsInFloatingContainer reports whether the widget's container is floating.
func (w *DockWidget) IsInFloatingContainer() bool {
	c := w.DockContainer()
	return c != nil && c.IsFloating()
}

// IsFloating reports whether the widget is the single top-level widget
// of a floating container.
func (w *DockWidget) IsFloating() bool {
	if !w.IsInFloatingContainer() {
		return false
	}
	return w.DockContainer().TopLevelDockWidget() == w
}

// IsTabbed reports whether the widget shares its area with other open widgets.
func (w *DockWidget) IsTabbed() bool {
	return w.area != nil && w.area.OpenCount() > 1
}

// IsCurrentTab reports whether the widget is the current tab of its area.
func (w *DockWidget) IsCurrentTab() bool {
	return w.area != nil && w.area.CurrentDockWidget() == w
}

// Detach removes w from its area or auto-hide container and normalizes the
// owning container. It returns the container w was in, or nil.
func Detach(w *DockWidget) *DockContainer {
	switch {
	case w.area != nil:
		area := w.area
		c := area.container
		area.removeWidget(w)
		if c != nil && area.Count() == 0 && c.central != area {
			c.removeDockArea(area)
		}
		return c
	case w.autoHide != nil:
		ah := w.autoHide
		c := ah.container
		if c != nil {
			c.removeAutoHide(ah)
		}
		w.autoHide = nil
		return c
	}
	return nil
}
