package script

import (
	"fmt"
	"sort"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/domain/entity"
)

var featureOptions = map[string]entity.DockWidgetFeature{
	"closable":  entity.DockWidgetClosable,
	"movable":   entity.DockWidgetMovable,
	"floatable": entity.DockWidgetFloatable,
	"focusable": entity.DockWidgetFocusable,
	"pinnable":  entity.DockWidgetPinnable,
	"noTab":     entity.NoTab,
}

// dockAPI is the `dock` global. Method names are lower-cased for scripts.
type dockAPI struct {
	m       *docking.Manager
	pending map[string]*entity.DockWidget
}

func newDockAPI(m *docking.Manager) *dockAPI {
	return &dockAPI{m: m, pending: make(map[string]*entity.DockWidget)}
}

func (d *dockAPI) lookup(name string) (*entity.DockWidget, error) {
	if w := d.m.FindDockWidget(name); w != nil {
		return w, nil
	}
	if w, ok := d.pending[name]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("unknown dock widget %q", name)
}

func (d *dockAPI) placed(name string) *entity.DockWidget {
	w := d.pending[name]
	delete(d.pending, name)
	return w
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toRect(v map[string]any) entity.Rect {
	var r entity.Rect
	r.X, _ = toInt(v["x"])
	r.Y, _ = toInt(v["y"])
	r.W, _ = toInt(v["w"])
	r.H, _ = toInt(v["h"])
	return r
}

// Widget creates a dock widget. opts may set title, icon, width,
// height and the feature switches in featureOptions.
func (d *dockAPI) Widget(name string, opts map[string]any) (string, error) {
	if name == "" {
		return "", fmt.Errorf("dock widget name cannot be empty")
	}
	if _, err := d.lookup(name); err == nil {
		return "", fmt.Errorf("dock widget %q already exists", name)
	}
	w := d.m.CreateDockWidget(name)
	if title, ok := opts["title"].(string); ok {
		w.SetTitle(title)
	}
	if icon, ok := opts["icon"].(string); ok {
		w.SetIcon(icon)
	}
	width, okW := toInt(opts["width"])
	height, okH := toInt(opts["height"])
	if okW || okH {
		w.SetSize(entity.Size{W: width, H: height})
	}
	for key, f := range featureOptions {
		if on, ok := opts[key].(bool); ok {
			w.SetFeature(f, on)
		}
	}
	d.pending[name] = w
	return name, nil
}

func (d *dockAPI) targetArea(target string) (*entity.DockArea, error) {
	if target == "" {
		return nil, nil
	}
	t, err := d.lookup(target)
	if err != nil {
		return nil, err
	}
	if t.DockArea() == nil {
		return nil, fmt.Errorf("dock widget %q is not in a dock area", target)
	}
	return t.DockArea(), nil
}

// Add docks name at side of the main container, or of target's area.
func (d *dockAPI) Add(side, name, target string) error {
	area, ok := entity.ParseDockWidgetArea(side)
	if !ok {
		return fmt.Errorf("invalid side %q", side)
	}
	w, err := d.lookup(name)
	if err != nil {
		return err
	}
	targetArea, err := d.targetArea(target)
	if err != nil {
		return err
	}
	if d.m.AddDockWidget(area, w, targetArea) == nil {
		return fmt.Errorf("cannot add %q at %s", name, side)
	}
	d.placed(name)
	return nil
}

// Tab adds name as a tab of target's area.
func (d *dockAPI) Tab(name, target string) error {
	w, err := d.lookup(name)
	if err != nil {
		return err
	}
	area, err := d.targetArea(target)
	if err != nil {
		return err
	}
	if area == nil {
		return fmt.Errorf("tab needs a target dock widget")
	}
	if d.m.AddDockWidgetTabToArea(w, area, -1) == nil {
		return fmt.Errorf("cannot tab %q into %q", name, target)
	}
	d.placed(name)
	return nil
}

// Float puts name into a new floating container, optionally at rect.
func (d *dockAPI) Float(name string, rect map[string]any) error {
	w, err := d.lookup(name)
	if err != nil {
		return err
	}
	var fc *docking.FloatingContainer
	if w.IsPlaced() {
		fc = d.m.FloatDockWidget(w)
	} else {
		fc = d.m.AddDockWidgetFloating(w)
	}
	if fc == nil {
		return fmt.Errorf("cannot float %q", name)
	}
	if rect != nil {
		fc.SetGeometry(toRect(rect))
	}
	d.placed(name)
	return nil
}

// AutoHide pins name to the sidebar at side.
func (d *dockAPI) AutoHide(name, side string) error {
	loc, ok := entity.ParseSideBarLocation(side)
	if !ok {
		return fmt.Errorf("invalid sidebar %q", side)
	}
	w, err := d.lookup(name)
	if err != nil {
		return err
	}
	if w.IsPlaced() {
		if !d.m.SetAutoHide(w, true, loc) {
			return fmt.Errorf("cannot pin %q", name)
		}
		return nil
	}
	if d.m.AddAutoHideDockWidget(loc, w) == nil {
		return fmt.Errorf("cannot pin %q: auto-hide is disabled", name)
	}
	d.placed(name)
	return nil
}

// Central makes name the central widget.
func (d *dockAPI) Central(name string) error {
	w, err := d.lookup(name)
	if err != nil {
		return err
	}
	if _, err := d.m.SetCentralWidgetErr(w); err != nil {
		return err
	}
	d.placed(name)
	return nil
}

func (d *dockAPI) Close(name string) error {
	w := d.m.FindDockWidget(name)
	if w == nil {
		return fmt.Errorf("unknown dock widget %q", name)
	}
	d.m.CloseDockWidget(w)
	return nil
}

// Geometry sets the main container size.
func (d *dockAPI) Geometry(width, height int) {
	d.m.MainContainer().SetGeometry(entity.Rect{W: width, H: height})
}

// Sizes sets the splitter sizes of the splitter holding name's area.
func (d *dockAPI) Sizes(name string, sizes []int) error {
	area, err := d.targetArea(name)
	if err != nil {
		return err
	}
	d.m.SetSplitterSizes(area, sizes)
	return nil
}

func (d *dockAPI) SavePerspective(name string) error {
	if name == "" {
		return entity.ErrInvalidPerspectiveName
	}
	d.m.AddPerspective(name)
	return nil
}

// Widgets lists registered dock widget names.
func (d *dockAPI) Widgets() []string {
	names := make([]string, 0)
	for name := range d.m.DockWidgetsMap() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *dockAPI) Dump() string {
	return d.m.DumpLayout()
}
