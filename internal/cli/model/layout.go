// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/cli/styles"
	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/bnema/dockit/internal/domain/repository"
	"github.com/bnema/dockit/internal/logging"
)

const (
	stateFilePerm = 0o644

	// rows taken by the header, tabs, sidebars, status and help
	chromeHeight = 9
)

// LayoutModel hosts a docking manager in the terminal. The main container
// is drawn as boxes; floating containers and sidebars are listed below it.
type LayoutModel struct {
	// UI components
	help     help.Model
	keys     styles.LayoutKeyMap
	tabs     styles.PerspectiveTabs
	input    textinput.Model
	confirm  *styles.ConfirmModel
	loading  *styles.LoadingModel
	renderer *styles.LayoutRenderer

	// State
	naming   bool
	selected int
	width    int
	height   int
	status   string
	err      error

	// Dependencies
	ctx         context.Context
	mgr         *docking.Manager
	repo        repository.PerspectiveRepository
	theme       *styles.Theme
	statePath   string
	userVersion int
	autosave    StateAutosaver
}

// StateAutosaver receives the serialized layout after each change.
type StateAutosaver interface {
	MarkDirty(data []byte)
}

// LayoutModelConfig holds configuration for the layout model.
type LayoutModelConfig struct {
	Manager *docking.Manager
	// Repo is optional; without it perspectives live only in memory.
	Repo repository.PerspectiveRepository
	// StatePath is where the write key saves the current state.
	StatePath   string
	UserVersion int
	// Autosave is optional and only used with a StatePath.
	Autosave StateAutosaver
}

// NewLayoutModel creates a new layout host model.
func NewLayoutModel(ctx context.Context, theme *styles.Theme, cfg LayoutModelConfig) LayoutModel {
	m := LayoutModel{
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultLayoutKeyMap(),
		input:       styles.NewNameInput(theme),
		renderer:    styles.NewLayoutRenderer(theme),
		width:       100,
		height:      30,
		ctx:         ctx,
		mgr:         cfg.Manager,
		repo:        cfg.Repo,
		theme:       theme,
		statePath:   cfg.StatePath,
		userVersion: cfg.UserVersion,
		autosave:    cfg.Autosave,
	}
	if m.mgr != nil {
		m.renderer.TitleBar = m.mgr.ShowsTitleBar
	}
	m.refreshTabs()
	return m
}

// perspectivesLoadedMsg is sent when stored perspectives are read.
type perspectivesLoadedMsg struct {
	perspectives []*entity.Perspective
	err          error
}

// perspectivesStoredMsg is sent when the perspective set was written.
type perspectivesStoredMsg struct {
	count int
	err   error
}

// EngineConfigMsg carries a reloaded engine configuration.
type EngineConfigMsg struct {
	Config *docking.EngineConfig
}

// Init implements tea.Model.
func (m LayoutModel) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return m.loadPerspectives
}

func (m LayoutModel) loadPerspectives() tea.Msg {
	list, err := m.repo.List(m.ctx)
	return perspectivesLoadedMsg{perspectives: list, err: err}
}

// storePerspectives snapshots the manager's perspectives and writes them
// outside the update loop.
func (m LayoutModel) storePerspectives() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	names := m.mgr.PerspectiveNames()
	snapshot := make([]*entity.Perspective, 0, len(names))
	now := time.Now().UTC()
	for _, name := range names {
		state, _ := m.mgr.Perspective(name)
		snapshot = append(snapshot, &entity.Perspective{Name: name, State: state, UpdatedAt: now})
	}
	return func() tea.Msg {
		err := m.repo.ReplaceAll(m.ctx, snapshot)
		return perspectivesStoredMsg{count: len(snapshot), err: err}
	}
}

// Update implements tea.Model.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}
	if m.naming {
		return m.handleNaming(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.mgr.MainContainer().SetGeometry(entity.Rect{W: msg.Width, H: max(msg.Height-chromeHeight, 1)})
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.loading == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case EngineConfigMsg:
		m.mgr.SetConfig(msg.Config)
		m.status = "Configuration reloaded"
		return m, nil

	case perspectivesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		for _, p := range msg.perspectives {
			if err := m.mgr.ImportPerspective(p.Name, p.State); err != nil {
				logging.FromContext(m.ctx).Warn().Err(err).Str("perspective", p.Name).Msg("skipping stored perspective")
			}
		}
		m.refreshTabs()
		m.status = fmt.Sprintf("%d perspective(s) loaded", len(m.mgr.PerspectiveNames()))
		return m, nil

	case perspectivesStoredMsg:
		m.loading = nil
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = fmt.Sprintf("%d perspective(s) stored", msg.count)
		}
		return m, nil
	}

	return m, nil
}

func (m LayoutModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		if name := m.currentPerspective(); name != "" {
			m.mgr.RemovePerspective(name)
			m.refreshTabs()
			m.status = fmt.Sprintf("Perspective %s deleted", name)
			cmd = m.startStore()
		}
	}
	m.confirm = nil
	return m, cmd
}

func (m LayoutModel) handleNaming(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEsc:
			m.naming = false
			m.input.Blur()
			return m, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			m.naming = false
			m.input.Blur()
			if name == "" {
				m.status = "Perspective name cannot be empty"
				return m, nil
			}
			m.mgr.AddPerspective(name)
			m.refreshTabs()
			m.tabs.Select(name)
			m.status = fmt.Sprintf("Perspective %s saved", name)
			return m, m.startStore()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m LayoutModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	widgets := m.mgr.DockWidgets()
	changed := false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(widgets)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Focus):
		if w := m.selectedWidget(); w != nil {
			if a := w.DockArea(); a != nil {
				a.SetCurrentDockWidget(w)
			}
			m.mgr.SetDockWidgetFocused(w)
			changed = true
		}

	case key.Matches(msg, m.keys.Float):
		if w := m.selectedWidget(); w != nil {
			if m.mgr.FloatDockWidget(w) == nil {
				m.status = fmt.Sprintf("%s cannot float", w.Name())
			} else {
				m.status = fmt.Sprintf("%s floated", w.Name())
				changed = true
			}
		}

	case key.Matches(msg, m.keys.Pin):
		if w := m.selectedWidget(); w != nil {
			if !m.mgr.SetAutoHide(w, !w.IsAutoHide(), entity.SideBarNone) {
				m.status = fmt.Sprintf("%s cannot be pinned", w.Name())
			} else {
				changed = true
			}
		}

	case key.Matches(msg, m.keys.Close):
		if w := m.selectedWidget(); w != nil {
			m.mgr.ToggleView(w, w.IsClosed())
			changed = true
		}

	case key.Matches(msg, m.keys.NextPersp):
		m.tabs.Next()

	case key.Matches(msg, m.keys.PrevPersp):
		m.tabs.Prev()

	case key.Matches(msg, m.keys.Open):
		if name := m.currentPerspective(); name != "" {
			if m.mgr.OpenPerspective(name) {
				m.status = fmt.Sprintf("Perspective %s opened", name)
				m.tabs.Opened = name
				changed = true
			} else {
				m.status = fmt.Sprintf("Perspective %s could not be restored", name)
			}
		}

	case key.Matches(msg, m.keys.Save):
		m.naming = true
		m.input.SetValue(m.currentPerspective())
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		if name := m.currentPerspective(); name != "" {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete perspective %s?", name),
				"the current layout is kept")
			m.confirm = &confirm
		}

	case key.Matches(msg, m.keys.WriteState):
		m.writeState()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	if changed {
		m.markDirty()
	}
	return m, nil
}

// markDirty hands the current state to the autosaver.
func (m *LayoutModel) markDirty() {
	if m.autosave == nil || m.statePath == "" {
		return
	}
	data, err := m.mgr.SaveStateErr(m.userVersion)
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("autosave skipped")
		return
	}
	m.autosave.MarkDirty(data)
}

func (m *LayoutModel) startStore() tea.Cmd {
	cmd := m.storePerspectives()
	if cmd == nil {
		return nil
	}
	loading := styles.NewLoading(m.theme, "storing perspectives...")
	m.loading = &loading
	return tea.Batch(cmd, loading.Spinner.Tick)
}

func (m *LayoutModel) writeState() {
	if m.statePath == "" {
		m.status = "No state file given"
		return
	}
	data, err := m.mgr.SaveStateErr(m.userVersion)
	if err != nil {
		m.err = err
		return
	}
	if err := os.WriteFile(m.statePath, data, stateFilePerm); err != nil {
		m.err = fmt.Errorf("write state: %w", err)
		return
	}
	logging.FromContext(m.ctx).Info().Str("path", m.statePath).Int("bytes", len(data)).Msg("state written")
	m.status = fmt.Sprintf("State written to %s", m.statePath)
}

func (m *LayoutModel) refreshTabs() {
	active, opened := m.tabs.Current(), m.tabs.Opened
	m.tabs = styles.NewPerspectiveTabs(m.theme, m.mgr.PerspectiveNames()...)
	m.tabs.Select(active)
	if slices.Contains(m.tabs.Names, opened) {
		m.tabs.Opened = opened
	}
}

func (m LayoutModel) currentPerspective() string {
	return m.tabs.Current()
}

func (m LayoutModel) selectedWidget() *entity.DockWidget {
	widgets := m.mgr.DockWidgets()
	if len(widgets) == 0 {
		return nil
	}
	return widgets[min(m.selected, len(widgets)-1)]
}

// View implements tea.Model.
func (m LayoutModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.tabs.View(m.width))
	b.WriteString("\n")

	sel := m.selectedWidget()
	m.renderer.Selected = sel
	m.renderer.Central = m.mgr.CentralWidget()
	b.WriteString(m.renderer.Render(m.mgr.MainContainer(), m.width, max(m.height-chromeHeight, 3)))
	b.WriteString("\n")

	if bars := m.renderer.RenderSideBars(m.mgr.MainContainer()); bars != "" {
		b.WriteString(bars)
		b.WriteString("\n")
	}
	for _, fc := range m.mgr.FloatingWidgets() {
		b.WriteString(m.renderFloating(fc, sel))
		b.WriteString("\n")
	}

	if sel != nil {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", t.Highlight.Render(sel.Name()), m.widgetState(sel), t.FeatureBadges(m.mgr.EffectiveFeatures(sel))))
	}

	switch {
	case m.naming:
		b.WriteString(t.InputBox(m.input.View(), true, m.input.Err))
		b.WriteString("\n")
	case m.loading != nil:
		b.WriteString(m.loading.View())
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(t.Subtle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	titleStyle := t.Title.MarginLeft(1)

	open := 0
	widgets := m.mgr.DockWidgets()
	for _, w := range widgets {
		if !w.IsClosed() {
			open++
		}
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d/%d open  %s %d floating",
		open, len(widgets),
		styles.IconFloating, len(m.mgr.FloatingWidgets()),
	))

	return iconStyle.Render(styles.IconWindow) + titleStyle.Render("dockit") + stats
}

func (m LayoutModel) renderFloating(fc *docking.FloatingContainer, sel *entity.DockWidget) string {
	t := m.theme
	names := make([]string, 0)
	for _, w := range fc.DockWidgets() {
		label := w.Title()
		if w == sel {
			label = t.Highlight.Render(styles.IconCursor + label)
		} else if w.IsClosed() {
			label = t.ClosedTab.Render(label)
		}
		names = append(names, label)
	}
	g := fc.Geometry()
	return fmt.Sprintf("%s %s %s",
		t.Highlight.Render(styles.IconFloating),
		t.Subtle.Render(fmt.Sprintf("%dx%d+%d+%d:", g.W, g.H, g.X, g.Y)),
		strings.Join(names, ", "),
	)
}

func (m LayoutModel) widgetState(w *entity.DockWidget) string {
	t := m.theme
	switch {
	case w.IsClosed():
		return t.MutedBadge("closed")
	case w.IsAutoHide():
		return t.AccentBadge("pinned " + w.AutoHideContainer().SideBarLocation().String())
	case w.IsFloating():
		return t.AccentBadge("floating")
	default:
		return t.MutedBadge("docked")
	}
}
