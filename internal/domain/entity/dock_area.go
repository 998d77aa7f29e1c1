package entity

// DockArea is a tab stack of dock widgets with exactly one current tab.
// Closed widgets keep their tab slot so they can reopen in place.
type DockArea struct {
	widgets []*DockWidget
	current int
	allowed DockWidgetArea
	flags   DockAreaFlag

	parent    *Splitter
	container *DockContainer

	// storedCurrent is the current tab name read from a saved state.
	storedCurrent string
}

func newDockArea(c *DockContainer) *DockArea {
	return &DockArea{
		current:   -1,
		allowed:   AllDockAreas,
		container: c,
	}
}

func (a *DockArea) ParentSplitter() *Splitter { return a.parent }

func (a *DockArea) setParentSplitter(s *Splitter) { a.parent = s }

func (a *DockArea) visible() bool { return a.IsVisible() }

// DockContainer returns the owning container.
func (a *DockArea) DockContainer() *DockContainer { return a.container }

// IsCentral reports whether a is the central area of its container.
func (a *DockArea) IsCentral() bool {
	return a.container != nil && a.container.central == a
}

// IsVisible reports whether the area occupies space in the layout: it has at
// least one open widget or it is the permanent central area.
func (a *DockArea) IsVisible() bool {
	return a.OpenCount() > 0 || a.IsCentral()
}

// DockWidgets returns the widgets in tab order.
func (a *DockArea) DockWidgets() []*DockWidget {
	out := make([]*DockWidget, len(a.widgets))
	copy(out, a.widgets)
	return out
}

// OpenDockWidgets returns the widgets that are not closed, in tab order.
func (a *DockArea) OpenDockWidgets() []*DockWidget {
	var out []*DockWidget
	for _, w := range a.widgets {
		if !w.closed {
			out = append(out, w)
		}
	}
	return out
}

// Count returns the number of widgets including closed ones.
func (a *DockArea) Count() int { return len(a.widgets) }

// OpenCount returns the number of widgets that are not closed.
func (a *DockArea) OpenCount() int {
	n := 0
	for _, w := range a.widgets {
		if !w.closed {
			n++
		}
	}
	return n
}

// DockWidget returns the widget at index i, or nil.
func (a *DockArea) DockWidget(i int) *DockWidget {
	if i < 0 || i >= len(a.widgets) {
		return nil
	}
	return a.widgets[i]
}

// IndexOf returns the tab index of w, or -1.
func (a *DockArea) IndexOf(w *DockWidget) int {
	for i, x := range a.widgets {
		if x == w {
			return i
		}
	}
	return -1
}

// CurrentIndex returns the current tab index, or -1 when the area is empty.
func (a *DockArea) CurrentIndex() int { return a.current }

// CurrentDockWidget returns the current tab, or nil.
func (a *DockArea) CurrentDockWidget() *DockWidget {
	return a.DockWidget(a.current)
}

// SetCurrentIndex makes the tab at i current. Out of range indexes are ignored.
func (a *DockArea) SetCurrentIndex(i int) bool {
	if i < 0 || i >= len(a.widgets) {
		return false
	}
	a.current = i
	return true
}

// SetCurrentDockWidget makes w the current tab if it belongs to a.
func (a *DockArea) SetCurrentDockWidget(w *DockWidget) bool {
	return a.SetCurrentIndex(a.IndexOf(w))
}

// IndexOfFirstOpenDockWidget returns the first tab that is not closed, or -1.
func (a *DockArea) IndexOfFirstOpenDockWidget() int {
	for i, w := range a.widgets {
		if !w.closed {
			return i
		}
	}
	return -1
}

// AllowedAreas returns the drop sides accepted by this area.
func (a *DockArea) AllowedAreas() DockWidgetArea { return a.allowed }

func (a *DockArea) SetAllowedAreas(areas DockWidgetArea) { a.allowed = areas }

func (a *DockArea) Flags() DockAreaFlag { return a.flags }

func (a *DockArea) SetFlags(f DockAreaFlag) { a.flags = f }

// SetFlag switches a single area flag.
func (a *DockArea) SetFlag(f DockAreaFlag, on bool) {
	if on {
		a.flags |= f
	} else {
		a.flags &^= f
	}
}

func (a *DockArea) TestFlag(f DockAreaFlag) bool { return a.flags&f == f }

// StoredCurrentName returns the current tab name recorded by a restore.
func (a *DockArea) StoredCurrentName() string { return a.storedCurrent }

func (a *DockArea) SetStoredCurrentName(name string) { a.storedCurrent = name }

// Features returns the intersection of the features of all widgets.
func (a *DockArea) Features() DockWidgetFeature {
	if len(a.widgets) == 0 {
		return NoDockWidgetFeatures
	}
	f := ^DockWidgetFeature(0)
	for _, w := range a.widgets {
		f &= w.features
	}
	return f
}

// InsertDockWidget moves w into a at index. A negative or too large index
// appends. When activate is true, or no tab is current yet, w becomes current.
func (a *DockArea) InsertDockWidget(w *DockWidget, index int, activate bool) {
	if w.area == a {
		a.moveWidget(w, index)
		if activate {
			a.SetCurrentDockWidget(w)
		}
		return
	}
	Detach(w)
	a.insertWidget(w, index, activate)
}

func (a *DockArea) insertWidget(w *DockWidget, index int, activate bool) {
	if index < 0 || index > len(a.widgets) {
		index = len(a.widgets)
	}
	a.widgets = append(a.widgets, nil)
	copy(a.widgets[index+1:], a.widgets[index:])
	a.widgets[index] = w
	w.area = a
	w.unassigned = false

	switch {
	case activate || a.current < 0:
		a.current = index
	case index <= a.current:
		a.current++
	}
}

func (a *DockArea) moveWidget(w *DockWidget, index int) {
	from := a.IndexOf(w)
	if from < 0 {
		return
	}
	current := a.CurrentDockWidget()
	a.widgets = append(a.widgets[:from], a.widgets[from+1:]...)
	if index < 0 || index > len(a.widgets) {
		index = len(a.widgets)
	}
	a.widgets = append(a.widgets, nil)
	copy(a.widgets[index+1:], a.widgets[index:])
	a.widgets[index] = w
	a.current = a.IndexOf(current)
}

// removeWidget drops w from the tab list and picks a new current tab.
func (a *DockArea) removeWidget(w *DockWidget) {
	i := a.IndexOf(w)
	if i < 0 {
		return
	}
	a.widgets = append(a.widgets[:i], a.widgets[i+1:]...)
	w.area = nil

	switch {
	case len(a.widgets) == 0:
		a.current = -1
	case i < a.current:
		a.current--
	case i == a.current:
		a.current = a.nextOpenIndex(i)
	}
}

// nextOpenIndex finds the open tab closest to from, preferring later tabs.
func (a *DockArea) nextOpenIndex(from int) int {
	for i := from; i < len(a.widgets); i++ {
		if !a.widgets[i].closed {
			return i
		}
	}
	for i := from - 1; i >= 0; i-- {
		if !a.widgets[i].closed {
			return i
		}
	}
	if len(a.widgets) == 0 {
		return -1
	}
	if from >= len(a.widgets) {
		return len(a.widgets) - 1
	}
	return from
}

// UpdateCurrentAfterToggle moves the current tab away from a closed widget,
// or onto a widget that reopened while the current tab is closed.
func (a *DockArea) UpdateCurrentAfterToggle(w *DockWidget) {
	cur := a.CurrentDockWidget()
	switch {
	case w.closed && cur == w:
		a.current = a.nextOpenIndex(a.current)
	case !w.closed && (cur == nil || cur.closed):
		a.SetCurrentDockWidget(w)
	}
}

// ShowsTitleBar reports whether the area draws its title bar. The bar is
// suppressed when HideSingleWidgetTitleBar is set and the only open widget
// carries NoTab.
func (a *DockArea) ShowsTitleBar() bool {
	if !a.TestFlag(HideSingleWidgetTitleBar) {
		return true
	}
	open := a.OpenDockWidgets()
	return !(len(open) == 1 && open[0].HasFeature(NoTab))
}
