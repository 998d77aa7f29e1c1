package docking

import (
	"errors"
	"fmt"

	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/infrastructure/statexml"
)

// SaveState serializes the layout of every container, main first, tagged
// with userVersion. It returns nil if encoding fails.
func (m *Manager) SaveState(userVersion int) []byte {
	data, err := m.SaveStateErr(userVersion)
	if err != nil {
		m.log.Error().Err(err).Msg("save state failed")
		return nil
	}
	return data
}

// SaveStateErr is SaveState with the encoding error.
func (m *Manager) SaveStateErr(userVersion int) ([]byte, error) {
	doc := m.snapshot(userVersion)
	data, err := statexml.Encode(doc, statexml.EncodeOptions{
		AutoFormat: m.cfg.TestFlag(XmlAutoFormattingEnabled),
		Compress:   m.cfg.TestFlag(XmlCompressionEnabled),
	})
	if err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return data, nil
}

// snapshot builds the document for the current layout. A manager without any
// content writes no container at all.
func (m *Manager) snapshot(userVersion int) *statexml.Document {
	doc := &statexml.Document{
		Version:        statexml.CurrentVersion,
		UserVersion:    userVersion,
		HasUserVersion: true,
	}
	if m.central != nil && !m.cfg.TestFlag(PerspectivesWithOutCentralWidget) {
		doc.CentralWidget = m.central.Name()
	}
	if m.main.IsEmpty() && len(m.floating) == 0 {
		return doc
	}
	doc.Containers = append(doc.Containers, snapshotContainer(m.main, nil))
	for _, fc := range m.floating {
		doc.Containers = append(doc.Containers, snapshotContainer(fc.container, fc))
	}
	return doc
}

func snapshotContainer(c *entity.DockContainer, fc *FloatingContainer) *statexml.Container {
	out := &statexml.Container{Floating: fc != nil}
	if fc != nil {
		g := fc.Geometry()
		out.Geometry = &statexml.Geometry{X: g.X, Y: g.Y, Width: g.W, Height: g.H, State: fc.WindowState()}
	}
	if root := c.RootSplitter(); root.Count() > 0 {
		out.Root = snapshotNode(root)
		if root.Count() == 1 {
			// a lone child is rebuilt with the default weight
			out.Root.Sizes = []int{entity.DefaultSplitterWeight}
		}
	}
	for _, loc := range entity.SideBarLocations {
		sb := &statexml.SideBar{Location: loc}
		for _, ah := range c.SideBar(loc).Containers() {
			w := ah.DockWidget()
			sb.Widgets = append(sb.Widgets, statexml.SideBarWidget{Name: w.Name(), Closed: w.IsClosed(), Size: ah.Size()})
		}
		out.SideBars = append(out.SideBars, sb)
	}
	return out
}

func snapshotNode(n entity.Node) *statexml.Node {
	switch v := n.(type) {
	case *entity.DockArea:
		a := &statexml.Area{AllowedAreas: v.AllowedAreas(), Flags: v.Flags()}
		if cur := v.CurrentDockWidget(); cur != nil {
			a.CurrentDockWidget = cur.Name()
		}
		for _, w := range v.DockWidgets() {
			a.Widgets = append(a.Widgets, statexml.Widget{Name: w.Name(), Closed: w.IsClosed()})
		}
		return &statexml.Node{Area: a}
	case *entity.Splitter:
		out := &statexml.Node{Orientation: v.Orientation(), Sizes: v.Sizes()}
		for _, child := range v.Children() {
			out.Children = append(out.Children, snapshotNode(child))
		}
		return out
	}
	return nil
}

// restorePlan is the result of the test phase: everything the apply phase
// needs, resolved against the registry.
type restorePlan struct {
	containers []containerPlan
	// closed holds the stored open state of every referenced widget.
	closed map[*entity.DockWidget]bool
	order  []*entity.DockWidget
}

type containerPlan struct {
	floating bool
	geometry *statexml.Geometry
	layout   *entity.LayoutSpec
	sideBars []entity.SideBarSpec
}

// RestoreState replaces the layout with the one in state. It returns false,
// leaving the layout untouched, when the state is rejected.
func (m *Manager) RestoreState(state []byte, userVersion int) bool {
	if err := m.RestoreStateErr(state, userVersion); err != nil {
		m.log.Warn().Err(err).Msg("restore state rejected")
		return false
	}
	return true
}

// RestoreStateErr is RestoreState with the rejection reason. The state is
// fully validated before the first mutation.
func (m *Manager) RestoreStateErr(state []byte, userVersion int) error {
	if m.restoring {
		return ErrRestoreInProgress
	}
	m.enter()
	defer m.leave()

	m.restoring = true
	m.RestoringState.Emit(struct{}{})
	plan, err := m.testState(state, userVersion)
	if err != nil {
		m.restoring = false
		return err
	}

	if m.visible && m.mainWindow != nil {
		m.mainWindow.Hide()
	}
	m.applyState(plan)
	m.restoring = false
	m.refreshFloating()
	if m.visible && m.mainWindow != nil {
		m.mainWindow.Show()
	}
	m.DumpLayout()
	m.StateRestored.Emit(struct{}{})
	return nil
}

// testState decodes and checks state without touching the layout.
func (m *Manager) testState(state []byte, userVersion int) (*restorePlan, error) {
	doc, err := statexml.Decode(state)
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	exp := statexml.Expectations{
		UserVersion:         userVersion,
		IgnoreCentralWidget: m.cfg.TestFlag(PerspectivesWithOutCentralWidget),
	}
	if m.central != nil {
		exp.CentralWidget = m.central.Name()
	}
	if err := doc.CheckHeader(exp); err != nil {
		return nil, err
	}

	var unknown []string
	for _, name := range doc.WidgetNames() {
		if m.widgets[name] == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		if m.strict {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDockWidget, unknown)
		}
		m.log.Warn().Strs("dock_widgets", unknown).Msg("skipping unknown dock widgets")
	}

	plan := &restorePlan{closed: make(map[*entity.DockWidget]bool)}
	for _, c := range doc.Containers {
		plan.containers = append(plan.containers, containerPlan{
			floating: c.Floating,
			geometry: c.Geometry,
			layout:   m.layoutSpec(c.Root, plan),
			sideBars: m.sideBarSpecs(c.SideBars, plan),
		})
	}
	return plan, nil
}

// claim resolves name and records its stored state. Unknown names and
// widgets already claimed elsewhere in the document yield nil.
func (m *Manager) claim(plan *restorePlan, name string, closed bool) *entity.DockWidget {
	w := m.widgets[name]
	if w == nil {
		return nil
	}
	if _, dup := plan.closed[w]; dup {
		m.log.Debug().Str("dock_widget", name).Msg("dock widget referenced twice, keeping first")
		return nil
	}
	plan.closed[w] = closed
	plan.order = append(plan.order, w)
	return w
}

func (m *Manager) layoutSpec(n *statexml.Node, plan *restorePlan) *entity.LayoutSpec {
	if n == nil {
		return nil
	}
	if a := n.Area; a != nil {
		spec := &entity.AreaSpec{Current: a.CurrentDockWidget, AllowedAreas: a.AllowedAreas, Flags: a.Flags}
		for _, wd := range a.Widgets {
			spec.Widgets = append(spec.Widgets, m.claim(plan, wd.Name, wd.Closed))
		}
		return &entity.LayoutSpec{Area: spec}
	}
	out := &entity.LayoutSpec{Orientation: n.Orientation, Sizes: n.Sizes}
	for _, child := range n.Children {
		out.Children = append(out.Children, m.layoutSpec(child, plan))
	}
	return out
}

func (m *Manager) sideBarSpecs(bars []*statexml.SideBar, plan *restorePlan) []entity.SideBarSpec {
	var out []entity.SideBarSpec
	for _, sb := range bars {
		spec := entity.SideBarSpec{Location: sb.Location}
		for _, wd := range sb.Widgets {
			if w := m.claim(plan, wd.Name, wd.Closed); w != nil {
				spec.Items = append(spec.Items, entity.AutoHideSpec{Widget: w, Size: wd.Size})
			}
		}
		out = append(out, spec)
	}
	return out
}

// applyState rebuilds every container from plan. Containers are matched by
// position: the first is the main one, the next ones reuse floating
// containers in creation order and new ones are created as needed.
func (m *Manager) applyState(plan *restorePlan) {
	for _, fc := range m.floating {
		fc.setVisible(false)
	}
	m.autoHide.reset()
	for _, w := range m.widgets {
		w.SetDirty(true)
	}

	existing := m.FloatingWidgets()
	for i, cp := range plan.containers {
		c := m.main
		if i > 0 {
			var fc *FloatingContainer
			if i-1 < len(existing) {
				fc = existing[i-1]
			} else {
				fc = m.newFloatingContainer()
				if !m.floatersShown {
					m.uninitialized = append(m.uninitialized, fc)
				}
			}
			if g := cp.geometry; g != nil {
				fc.container.SetGeometry(entity.Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height})
				fc.container.SetWindowState(g.State)
				if fc.window != nil {
					fc.window.SetGeometry(fc.container.Geometry())
					fc.window.SetWindowState(g.State)
				}
			}
			c = fc.container
		}
		c.ReplaceLayout(cp.layout)
		c.ReplaceSideBars(cp.sideBars)
	}
	if len(plan.containers) == 0 {
		m.main.ReplaceLayout(nil)
		m.main.ReplaceSideBars(nil)
	}

	// Floating containers the state does not mention go away.
	if extra := len(plan.containers) - 1; extra < len(existing) {
		for _, fc := range existing[max(extra, 0):] {
			fc.container.ReplaceLayout(nil)
			fc.container.ReplaceSideBars(nil)
			m.dropFloating(fc)
		}
	}

	for _, w := range plan.order {
		w.SetDirty(false)
	}
	for _, w := range m.DockWidgets() {
		if !w.IsDirty() {
			continue
		}
		w.SetDirty(false)
		w.SetUnassigned(true)
		m.toggleViewInternal(w, false)
	}
	for _, w := range plan.order {
		m.toggleViewInternal(w, !plan.closed[w])
	}

	m.restoreCurrentTabs()
	m.restoreCentralArea()
	m.emitTopLevelEvents()
}

// restoreCurrentTabs re-seats the current tab of every area from the stored
// name, falling back to the first open tab.
func (m *Manager) restoreCurrentTabs() {
	for _, c := range m.DockContainers() {
		for _, a := range c.DockAreas() {
			var stored *entity.DockWidget
			if name := a.StoredCurrentName(); name != "" {
				for _, w := range a.DockWidgets() {
					if w.Name() == name {
						stored = w
						break
					}
				}
			}
			if stored != nil && !stored.IsClosed() {
				a.SetCurrentDockWidget(stored)
				continue
			}
			if i := a.IndexOfFirstOpenDockWidget(); i >= 0 {
				a.SetCurrentIndex(i)
			}
		}
	}
}

func (m *Manager) restoreCentralArea() {
	if m.central == nil {
		return
	}
	a := m.central.DockArea()
	if a == nil || a.DockContainer() != m.main {
		return
	}
	a.SetFlag(entity.HideSingleWidgetTitleBar, true)
	m.main.SetCentralArea(a)
}

// emitTopLevelEvents tells every widget whether it is alone in its
// container, and syncs the floating containers with it.
func (m *Manager) emitTopLevelEvents() {
	for _, c := range m.DockContainers() {
		top := c.TopLevelDockWidget()
		if fc := m.FloatingContainerOf(c); fc != nil {
			fc.topLevel = top
		}
		if top != nil {
			top.TopLevelChanged.Emit(true)
			continue
		}
		for _, a := range c.DockAreas() {
			for _, w := range a.DockWidgets() {
				w.TopLevelChanged.Emit(false)
			}
		}
	}
}

// CheckState runs the validation of RestoreStateErr without applying it.
func (m *Manager) CheckState(state []byte, userVersion int) error {
	_, err := m.testState(state, userVersion)
	return err
}

// IsStateRejection reports whether err means the state was refused as a
// whole rather than failing to decode.
func IsStateRejection(err error) bool {
	return errors.Is(err, ErrVersionTooNew) ||
		errors.Is(err, ErrUserVersionMismatch) ||
		errors.Is(err, ErrCentralWidgetMissing) ||
		errors.Is(err, ErrCentralWidgetMismatch) ||
		errors.Is(err, ErrUnknownDockWidget)
}
