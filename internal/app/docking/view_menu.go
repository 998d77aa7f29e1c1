package docking

import (
	"strings"

	"github.com/bnema/dockit/internal/domain/entity"
)

// MenuInsertionOrder controls where AddToggleViewActionToMenu inserts entries.
type MenuInsertionOrder int

const (
	MenuSortedByInsertion MenuInsertionOrder = iota
	MenuAlphabeticallySorted
)

// MenuEntry is a checkable toggle-view action, or a group submenu when
// Children is set.
type MenuEntry struct {
	Text     string
	Icon     string
	Widget   *entity.DockWidget
	Children []*MenuEntry
}

// IsGroup reports whether the entry is a submenu.
func (e *MenuEntry) IsGroup() bool { return e.Widget == nil }

// Checked mirrors the open state of the widget.
func (e *MenuEntry) Checked() bool {
	return e.Widget != nil && !e.Widget.IsClosed() && e.Widget.IsPlaced()
}

// ViewMenu is the model of the window menu listing the toggle-view actions
// of dock widgets.
type ViewMenu struct {
	m       *Manager
	order   MenuInsertionOrder
	entries []*MenuEntry
	groups  map[string]*MenuEntry
}

func newViewMenu(m *Manager) *ViewMenu {
	return &ViewMenu{m: m, groups: make(map[string]*MenuEntry)}
}

// ViewMenu returns the view menu model.
func (m *Manager) ViewMenu() *ViewMenu { return m.viewMenu }

// SetViewMenuInsertionOrder changes how later entries are inserted.
func (m *Manager) SetViewMenuInsertionOrder(order MenuInsertionOrder) {
	m.viewMenu.order = order
}

// AddToggleViewActionToMenu adds the toggle action of w to the view menu,
// inside the submenu group when group is not empty. The group submenu gets
// icon when it is created.
func (m *Manager) AddToggleViewActionToMenu(w *entity.DockWidget, group, icon string) *MenuEntry {
	v := m.viewMenu
	entry := &MenuEntry{Text: w.Title(), Icon: w.Icon(), Widget: w}
	if group == "" {
		v.entries = v.insert(v.entries, entry)
		return entry
	}
	g, ok := v.groups[group]
	if !ok {
		g = &MenuEntry{Text: group, Icon: icon}
		v.groups[group] = g
		v.entries = v.insert(v.entries, g)
	}
	g.Children = v.insert(g.Children, entry)
	return entry
}

func (v *ViewMenu) insert(list []*MenuEntry, e *MenuEntry) []*MenuEntry {
	if v.order != MenuAlphabeticallySorted {
		return append(list, e)
	}
	text := strings.ToLower(e.Text)
	for i, x := range list {
		if strings.ToLower(x.Text) > text {
			list = append(list, nil)
			copy(list[i+1:], list[i:])
			list[i] = e
			return list
		}
	}
	return append(list, e)
}

// Entries returns the top-level entries.
func (v *ViewMenu) Entries() []*MenuEntry {
	out := make([]*MenuEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Group returns the submenu named group, or nil.
func (v *ViewMenu) Group(group string) *MenuEntry { return v.groups[group] }

// Trigger toggles the widget behind e.
func (v *ViewMenu) Trigger(e *MenuEntry) {
	if e == nil || e.Widget == nil {
		return
	}
	v.m.ToggleView(e.Widget, !e.Checked())
}

// remove drops the entries of w; emptied groups go too.
func (v *ViewMenu) remove(w *entity.DockWidget) {
	if w == nil {
		return
	}
	v.entries = removeEntries(v.entries, w)
	for name, g := range v.groups {
		g.Children = removeEntries(g.Children, w)
		if len(g.Children) == 0 {
			delete(v.groups, name)
			v.entries = removeEntry(v.entries, g)
		}
	}
}

func removeEntries(list []*MenuEntry, w *entity.DockWidget) []*MenuEntry {
	out := list[:0]
	for _, e := range list {
		if e.Widget != w {
			out = append(out, e)
		}
	}
	return out
}

func removeEntry(list []*MenuEntry, x *MenuEntry) []*MenuEntry {
	for i, e := range list {
		if e == x {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
