// Package docking implements the dock manager: the registry of dock widgets,
// the main and floating containers, drag and drop, auto-hide sidebars, focus
// tracking, save/restore and perspectives. All methods must be called from
// the host event loop.
package docking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/dockit/internal/application/port"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/logging"
)

// Options configures a Manager.
type Options struct {
	// Config defaults to GlobalConfig().
	Config *EngineConfig
	// Scheduler runs deferred callbacks and timers. Without one, deferred
	// callbacks run at the end of the current operation and drag-hover
	// timers are disabled.
	Scheduler port.Scheduler
	// Windows creates the top-level windows of floating containers.
	Windows port.WindowFactory
	// MainWindow is the window hosting the main container, if any.
	MainWindow port.Window
	// StrictRestore rejects states that reference unknown dock widgets.
	StrictRestore bool
}

// FocusChange is emitted by FocusedDockWidgetChanged.
type FocusChange struct {
	Old *entity.DockWidget
	New *entity.DockWidget
}

// Manager owns the main dock container, every floating container and the
// name index of dock widgets.
type Manager struct {
	log        zerolog.Logger
	cfg        *EngineConfig
	sched      port.Scheduler
	windows    port.WindowFactory
	mainWindow port.Window
	strict     bool

	main           *entity.DockContainer
	floating       []*FloatingContainer
	uninitialized  []*FloatingContainer
	hiddenFloating []*FloatingContainer
	zOrder         []*FloatingContainer
	nextFloatingID int

	widgets      map[string]*entity.DockWidget
	central      *entity.DockWidget
	perspectives map[string][]byte
	locked       entity.DockWidgetFeature
	focus        *FocusController
	viewMenu     *ViewMenu
	styleSheet   string
	autoHide     autoHideState

	visible          bool
	floatersShown    bool
	restoring        bool
	leavingMinimized bool
	mainState        entity.WindowState

	depth   int
	pending []func()

	DockWidgetAdded            entity.Signal[*entity.DockWidget]
	DockWidgetAboutToBeRemoved entity.Signal[*entity.DockWidget]
	DockWidgetRemoved          entity.Signal[*entity.DockWidget]
	DockAreaCreated            entity.Signal[*entity.DockArea]
	FloatingWidgetCreated      entity.Signal[*FloatingContainer]
	PerspectiveListChanged     entity.Signal[struct{}]
	PerspectiveListLoaded      entity.Signal[struct{}]
	PerspectivesRemoved        entity.Signal[struct{}]
	OpeningPerspective         entity.Signal[string]
	PerspectiveOpened          entity.Signal[string]
	RestoringState             entity.Signal[struct{}]
	StateRestored              entity.Signal[struct{}]
	FocusedDockWidgetChanged   entity.Signal[FocusChange]
}

// New creates a manager. The logger is taken from ctx.
func New(ctx context.Context, opts Options) *Manager {
	cfg := opts.Config
	if cfg == nil {
		cfg = GlobalConfig()
	}
	m := &Manager{
		log:          *logging.FromContext(logging.WithComponent(ctx, "dock-manager")),
		cfg:          cfg,
		sched:        opts.Scheduler,
		windows:      opts.Windows,
		mainWindow:   opts.MainWindow,
		strict:       opts.StrictRestore,
		main:         entity.NewDockContainer(false),
		widgets:      make(map[string]*entity.DockWidget),
		perspectives: make(map[string][]byte),
		autoHide:     newAutoHideState(),
	}
	m.viewMenu = newViewMenu(m)
	m.trackContainer(m.main)
	m.RefreshConfig()
	return m
}

// Config returns the engine configuration the manager reads.
func (m *Manager) Config() *EngineConfig { return m.cfg }

// RefreshConfig re-reads the engine configuration: it reloads the stylesheet
// and creates or drops the focus controller.
func (m *Manager) RefreshConfig() {
	if m.cfg.TestFlag(FocusHighlighting) {
		if m.focus == nil {
			m.focus = newFocusController(m)
		}
	} else {
		m.focus = nil
	}
	m.LoadStyleSheet()
}

// SetConfig switches the manager to another configuration and refreshes.
func (m *Manager) SetConfig(cfg *EngineConfig) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.RefreshConfig()
}

func (m *Manager) trackContainer(c *entity.DockContainer) {
	c.DockAreaCreated.Connect(func(a *entity.DockArea) {
		m.DockAreaCreated.Emit(a)
	})
}

// enter and leave bracket every public mutation. Deferred work queued while
// inside runs when the outermost operation returns.
func (m *Manager) enter() { m.depth++ }

func (m *Manager) leave() {
	if m.depth > 1 {
		m.depth--
		return
	}
	for len(m.pending) > 0 {
		fn := m.pending[0]
		m.pending = m.pending[1:]
		fn()
	}
	m.depth--
}

// post runs fn after the current event: on the scheduler when there is
// one, otherwise at the end of the outermost operation.
func (m *Manager) post(fn func()) {
	if m.sched != nil {
		m.sched.Post(fn)
		return
	}
	if m.depth == 0 {
		fn()
		return
	}
	m.pending = append(m.pending, fn)
}

// CreateDockWidget returns a new widget. It is registered when first added.
func (m *Manager) CreateDockWidget(title string) *entity.DockWidget {
	return entity.NewDockWidget(title)
}

func (m *Manager) register(w *entity.DockWidget) error {
	if w == nil {
		return fmt.Errorf("register dock widget: nil widget")
	}
	if existing, ok := m.widgets[w.Name()]; ok && existing != w {
		m.log.Warn().
			Str("dock_widget", w.Name()).
			Str("reason", "name collision").
			Msg("dock widget not added")
		return fmt.Errorf("register %q: %w", w.Name(), ErrNameCollision)
	}
	m.widgets[w.Name()] = w
	return nil
}

// IsRegistered reports whether w is the widget registered under its name.
func (m *Manager) IsRegistered(w *entity.DockWidget) bool {
	return w != nil && m.widgets[w.Name()] == w
}

// AddDockWidget places w on side of target, or of the main container when
// target is nil, and returns the area holding w. It returns nil when the
// name of w is already taken by another widget.
func (m *Manager) AddDockWidget(side entity.DockWidgetArea, w *entity.DockWidget, target *entity.DockArea) *entity.DockArea {
	return m.addDockWidget(side, w, target, -1)
}

// AddDockWidgetTab tabs w into the area last added on side, or adds it on
// that side when there is none.
func (m *Manager) AddDockWidgetTab(side entity.DockWidgetArea, w *entity.DockWidget) *entity.DockArea {
	if area := m.main.LastAddedDockArea(side); area != nil {
		return m.addDockWidget(entity.CenterDockWidgetArea, w, area, -1)
	}
	return m.addDockWidget(side, w, nil, -1)
}

// AddDockWidgetTabToArea inserts w as a tab of area at index. A negative
// index appends.
func (m *Manager) AddDockWidgetTabToArea(w *entity.DockWidget, area *entity.DockArea, index int) *entity.DockArea {
	return m.addDockWidget(entity.CenterDockWidgetArea, w, area, index)
}

// AddDockWidgetToContainer places w on side of the whole container c.
func (m *Manager) AddDockWidgetToContainer(side entity.DockWidgetArea, w *entity.DockWidget, c *entity.DockContainer) *entity.DockArea {
	m.enter()
	defer m.leave()
	if c == nil {
		c = m.main
	}
	if err := m.register(w); err != nil {
		return nil
	}
	area := m.place(c, side, w, nil, -1)
	m.DockWidgetAdded.Emit(w)
	return area
}

func (m *Manager) addDockWidget(side entity.DockWidgetArea, w *entity.DockWidget, target *entity.DockArea, index int) *entity.DockArea {
	m.enter()
	defer m.leave()
	if err := m.register(w); err != nil {
		return nil
	}
	c := m.main
	if target != nil && target.DockContainer() != nil {
		c = target.DockContainer()
	}
	area := m.place(c, side, w, target, index)
	m.DockWidgetAdded.Emit(w)
	return area
}

// place performs the structural insert and the follow-up bookkeeping shared
// by adds and drops.
func (m *Manager) place(c *entity.DockContainer, side entity.DockWidgetArea, w *entity.DockWidget, target *entity.DockArea, index int) *entity.DockArea {
	wasClosed := w.IsClosed() || !w.IsPlaced()
	m.cancelAutoHideTimers(w.AutoHideContainer())
	area := c.AddDockWidget(side, w, target, index, m.cfg.TestFlag(EqualSplitOnInsertion))
	m.refreshFloating()
	if wasClosed {
		w.ViewToggled.Emit(true)
	}
	if m.focus != nil {
		m.focus.notifyRelocation(w)
	}
	return area
}

// AddDockWidgetFloating moves w into a new floating container sized to the
// widget. The container is shown immediately when the manager is visible,
// otherwise on the manager's first Show.
func (m *Manager) AddDockWidgetFloating(w *entity.DockWidget) *FloatingContainer {
	m.enter()
	defer m.leave()
	if err := m.register(w); err != nil {
		return nil
	}
	fc := m.floatWidget(w)
	m.DockWidgetAdded.Emit(w)
	return fc
}

func (m *Manager) floatWidget(w *entity.DockWidget) *FloatingContainer {
	wasClosed := w.IsClosed() || !w.IsPlaced()
	m.cancelAutoHideTimers(w.AutoHideContainer())
	fc := m.newFloatingContainer()
	fc.container.AddDockWidget(entity.CenterDockWidgetArea, w, nil, -1, false)
	fc.container.SetGeometry(m.floatingGeometry(w.Size()))
	if !m.floatersShown {
		m.uninitialized = append(m.uninitialized, fc)
	}
	m.refreshFloating()
	if wasClosed {
		w.ViewToggled.Emit(true)
	}
	return fc
}

// floatingGeometry centers a new floating window on the main container.
func (m *Manager) floatingGeometry(s entity.Size) entity.Rect {
	if s.IsEmpty() {
		s = entity.DefaultDockWidgetSize
	}
	g := m.main.Geometry()
	if g.IsEmpty() {
		return entity.Rect{W: s.W, H: s.H}
	}
	c := g.Center()
	return entity.Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

// FloatDockWidget undocks w into its own floating container. It does
// nothing when w is not floatable or already floats alone.
func (m *Manager) FloatDockWidget(w *entity.DockWidget) *FloatingContainer {
	m.enter()
	defer m.leave()
	if !m.IsRegistered(w) || !m.EffectiveFeatures(w).Has(entity.DockWidgetFloatable) {
		return nil
	}
	if w.IsFloating() {
		return m.FloatingContainerOf(w.DockContainer())
	}
	return m.floatWidget(w)
}

// FloatDockArea undocks the whole area a into a new floating container.
func (m *Manager) FloatDockArea(a *entity.DockArea) *FloatingContainer {
	m.enter()
	defer m.leave()
	if a == nil || a.IsCentral() || !m.areaFeatures(a).Has(entity.DockWidgetFloatable) {
		return nil
	}
	src := a.DockContainer()
	if src != nil && src.IsFloating() && src.DockAreaCount() == 1 && src.AutoHideContainers() == nil {
		return m.FloatingContainerOf(src)
	}
	size := entity.DefaultDockWidgetSize
	if cur := a.CurrentDockWidget(); cur != nil {
		size = cur.Size()
	}
	fc := m.newFloatingContainer()
	fc.container.DropDockArea(a, entity.CenterDockWidgetArea, nil, false)
	fc.container.SetGeometry(m.floatingGeometry(size))
	if !m.floatersShown {
		m.uninitialized = append(m.uninitialized, fc)
	}
	m.refreshFloating()
	return fc
}

// SetCentralWidget makes w the permanent central widget of the main
// container. It must be the first widget added to the manager; otherwise a
// warning is logged and nil returned. Passing nil clears the central widget.
func (m *Manager) SetCentralWidget(w *entity.DockWidget) *entity.DockArea {
	area, err := m.SetCentralWidgetErr(w)
	if err != nil {
		m.log.Warn().Err(err).Msg("central widget not set")
		return nil
	}
	return area
}

// SetCentralWidgetErr is SetCentralWidget with the failure reason.
func (m *Manager) SetCentralWidgetErr(w *entity.DockWidget) (*entity.DockArea, error) {
	if w == nil {
		m.central = nil
		m.main.SetCentralArea(nil)
		return nil, nil
	}
	if m.central != nil {
		return nil, ErrCentralWidgetExists
	}
	if len(m.widgets) > 0 {
		return nil, ErrRegistryNotEmpty
	}

	m.enter()
	defer m.leave()
	w.SetFeatures(w.Features() &^ (entity.DockWidgetClosable |
		entity.DockWidgetMovable |
		entity.DockWidgetFloatable |
		entity.DockWidgetPinnable))
	m.central = w
	area := m.addDockWidget(entity.CenterDockWidgetArea, w, nil, -1)
	if area == nil {
		m.central = nil
		return nil, fmt.Errorf("add central widget %q: %w", w.Name(), ErrNameCollision)
	}
	area.SetFlag(entity.HideSingleWidgetTitleBar, true)
	m.main.SetCentralArea(area)
	return area, nil
}

// CentralWidget returns the central widget, or nil.
func (m *Manager) CentralWidget() *entity.DockWidget { return m.central }

// RemoveDockWidget unregisters w and takes it out of the layout.
func (m *Manager) RemoveDockWidget(w *entity.DockWidget) {
	if !m.IsRegistered(w) {
		return
	}
	m.enter()
	defer m.leave()

	m.DockWidgetAboutToBeRemoved.Emit(w)
	delete(m.widgets, w.Name())
	if m.central == w {
		m.central = nil
		if a := w.DockArea(); a != nil && a.DockContainer() != nil {
			a.DockContainer().SetCentralArea(nil)
		}
	}
	m.cancelAutoHideTimers(w.AutoHideContainer())
	entity.Detach(w)
	if m.focus != nil {
		m.focus.forget(w)
	}
	m.viewMenu.remove(w)
	m.refreshFloating()
	m.DockWidgetRemoved.Emit(w)
}

// FindDockWidget returns the widget registered under name, or nil.
func (m *Manager) FindDockWidget(name string) *entity.DockWidget {
	return m.widgets[name]
}

// DockWidgetsMap returns a copy of the name index.
func (m *Manager) DockWidgetsMap() map[string]*entity.DockWidget {
	out := make(map[string]*entity.DockWidget, len(m.widgets))
	for k, v := range m.widgets {
		out[k] = v
	}
	return out
}

// DockWidgets returns the registered widgets sorted by name.
func (m *Manager) DockWidgets() []*entity.DockWidget {
	names := make([]string, 0, len(m.widgets))
	for name := range m.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*entity.DockWidget, len(names))
	for i, name := range names {
		out[i] = m.widgets[name]
	}
	return out
}

// MainContainer returns the container owned by the manager window.
func (m *Manager) MainContainer() *entity.DockContainer { return m.main }

// DockContainers returns the main container followed by the floating ones
// in creation order.
func (m *Manager) DockContainers() []*entity.DockContainer {
	out := []*entity.DockContainer{m.main}
	for _, fc := range m.floating {
		out = append(out, fc.container)
	}
	return out
}

// FloatingWidgets returns the live floating containers.
func (m *Manager) FloatingWidgets() []*FloatingContainer {
	out := make([]*FloatingContainer, len(m.floating))
	copy(out, m.floating)
	return out
}

// FloatingContainerOf returns the floating container hosting c, or nil.
func (m *Manager) FloatingContainerOf(c *entity.DockContainer) *FloatingContainer {
	for _, fc := range m.floating {
		if fc.container == c {
			return fc
		}
	}
	return nil
}

// IsRestoringState reports whether RestoreState is running.
func (m *Manager) IsRestoringState() bool { return m.restoring }

// ToggleView opens or closes w. Opening a widget without placement floats it.
func (m *Manager) ToggleView(w *entity.DockWidget, open bool) {
	if !m.IsRegistered(w) {
		return
	}
	m.enter()
	defer m.leave()
	if open && !w.IsPlaced() {
		m.floatWidget(w)
		return
	}
	m.toggleViewInternal(w, open)
	m.refreshFloating()
}

// toggleViewInternal flips the closed state without creating containers.
func (m *Manager) toggleViewInternal(w *entity.DockWidget, open bool) {
	changed := w.IsClosed() == open
	w.SetClosedState(!open)
	if a := w.DockArea(); a != nil {
		a.UpdateCurrentAfterToggle(w)
	}
	if ah := w.AutoHideContainer(); ah != nil && !open {
		m.collapseAutoHide(ah)
	}
	if !open && m.focus != nil {
		m.focus.onClosed(w)
	}
	if changed || m.restoring {
		w.ViewToggled.Emit(open)
	}
}

// CloseDockWidget closes w the way its close button does. Widgets with
// CustomCloseHandling only emit CloseRequested; DeleteOnClose widgets are
// removed from the manager.
func (m *Manager) CloseDockWidget(w *entity.DockWidget) bool {
	if !m.IsRegistered(w) {
		return false
	}
	features := m.EffectiveFeatures(w)
	if features.Has(entity.CustomCloseHandling) {
		w.CloseRequested.Emit(w)
		return false
	}
	if !features.Has(entity.DockWidgetClosable) {
		return false
	}

	m.enter()
	defer m.leave()
	if features.Has(entity.DockWidgetDeleteOnClose) {
		m.RemoveDockWidget(w)
		w.MarkDeleted()
		if features.Has(entity.DeleteContentOnClose) {
			w.SetWidget(nil)
		}
	} else {
		m.toggleViewInternal(w, false)
		m.refreshFloating()
	}
	w.Closed.Emit(w)
	return true
}

// CloseDockArea closes the current tab when DockAreaCloseButtonClosesTab is
// set, otherwise every closable widget of a. Widgets flagged
// DockWidgetForceCloseWithArea close even when the area is closed by tab.
func (m *Manager) CloseDockArea(a *entity.DockArea) {
	if a == nil {
		return
	}
	m.enter()
	defer m.leave()
	if m.cfg.TestFlag(DockAreaCloseButtonClosesTab) {
		if cur := a.CurrentDockWidget(); cur != nil {
			m.CloseDockWidget(cur)
		}
		return
	}
	for _, w := range a.OpenDockWidgets() {
		f := m.EffectiveFeatures(w)
		if f.Has(entity.DockWidgetClosable) || f.Has(entity.DockWidgetForceCloseWithArea) {
			m.CloseDockWidget(w)
		}
	}
}

// SplitterSizes returns the weights of the splitter directly holding a.
func (m *Manager) SplitterSizes(a *entity.DockArea) []int {
	if a == nil || a.ParentSplitter() == nil {
		return nil
	}
	return a.ParentSplitter().Sizes()
}

// SetSplitterSizes replaces the weights of the splitter directly holding a.
// The call is ignored when the count does not match.
func (m *Manager) SetSplitterSizes(a *entity.DockArea, sizes []int) {
	if a == nil || a.ParentSplitter() == nil {
		return
	}
	a.ParentSplitter().SetSizes(sizes)
}

// LockDockWidgetFeaturesGlobally removes features from every widget. Only
// closable, movable, floatable and pinnable can be locked.
func (m *Manager) LockDockWidgetFeaturesGlobally(f entity.DockWidgetFeature) {
	f &= entity.GloballyLockableFeatures
	if m.locked == f {
		return
	}
	m.locked = f
	for _, w := range m.DockWidgets() {
		w.FeaturesChanged.Emit(m.EffectiveFeatures(w))
	}
}

// GloballyLockedDockWidgetFeatures returns the locked feature set.
func (m *Manager) GloballyLockedDockWidgetFeatures() entity.DockWidgetFeature { return m.locked }

// EffectiveFeatures returns the features of w minus the globally locked ones.
func (m *Manager) EffectiveFeatures(w *entity.DockWidget) entity.DockWidgetFeature {
	return w.Features() &^ m.locked
}

func (m *Manager) areaFeatures(a *entity.DockArea) entity.DockWidgetFeature {
	return a.Features() &^ m.locked
}

// refreshFloating updates the visibility and title of every floating
// container and schedules empty ones for destruction.
func (m *Manager) refreshFloating() {
	for _, fc := range m.FloatingWidgets() {
		fc.refresh()
	}
}

// DumpLayout logs the layout at debug level and returns it.
func (m *Manager) DumpLayout() string {
	var b strings.Builder
	for i, c := range m.DockContainers() {
		kind := "main"
		if c.IsFloating() {
			kind = "floating"
		}
		fmt.Fprintf(&b, "container %d (%s)\n", i, kind)
		dumpNode(&b, c.RootSplitter(), 1, c.CentralArea())
		for _, ah := range c.AutoHideContainers() {
			state := "collapsed"
			if ah.IsExpanded() {
				state = "expanded"
			}
			fmt.Fprintf(&b, "  sidebar %s: %s size=%d %s\n",
				ah.SideBarLocation(), ah.DockWidget().Name(), ah.Size(), state)
		}
	}
	out := b.String()
	m.log.Debug().Str("layout", out).Msg("dock layout")
	return out
}

func dumpNode(b *strings.Builder, n entity.Node, depth int, central *entity.DockArea) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *entity.Splitter:
		fmt.Fprintf(b, "%ssplitter %s %v\n", indent, v.Orientation(), v.Sizes())
		for _, child := range v.Children() {
			dumpNode(b, child, depth+1, central)
		}
	case *entity.DockArea:
		var tabs []string
		for _, w := range v.DockWidgets() {
			name := w.Name()
			if w.IsClosed() {
				name += " (closed)"
			}
			if w == v.CurrentDockWidget() {
				name = "*" + name
			}
			tabs = append(tabs, name)
		}
		mark := ""
		if v == central {
			mark = " central"
		}
		fmt.Fprintf(b, "%sarea%s [%s]\n", indent, mark, strings.Join(tabs, ", "))
	}
}
