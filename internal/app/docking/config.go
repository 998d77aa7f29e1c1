package docking

import (
	"sync"
	"time"
)

// ConfigFlag is a process-wide engine option.
type ConfigFlag uint32

const (
	ActiveTabHasCloseButton                 ConfigFlag = 0x0001
	DockAreaHasCloseButton                  ConfigFlag = 0x0002
	DockAreaCloseButtonClosesTab            ConfigFlag = 0x0004
	OpaqueSplitterResize                    ConfigFlag = 0x0008
	XmlAutoFormattingEnabled                ConfigFlag = 0x0010
	XmlCompressionEnabled                   ConfigFlag = 0x0020
	TabCloseButtonIsToolButton              ConfigFlag = 0x0040
	AllTabsHaveCloseButton                  ConfigFlag = 0x0080
	RetainTabSizeWhenCloseButtonHidden      ConfigFlag = 0x0100
	DragPreviewIsDynamic                    ConfigFlag = 0x0400
	DragPreviewShowsContentPixmap           ConfigFlag = 0x0800
	DragPreviewHasWindowFrame               ConfigFlag = 0x1000
	AlwaysShowTabs                          ConfigFlag = 0x2000
	DockAreaHasUndockButton                 ConfigFlag = 0x4000
	DockAreaHasTabsMenuButton               ConfigFlag = 0x8000
	DockAreaHideDisabledButtons             ConfigFlag = 0x10000
	DockAreaDynamicTabsMenuButtonVisibility ConfigFlag = 0x20000
	FloatingContainerHasWidgetTitle         ConfigFlag = 0x40000
	FloatingContainerHasWidgetIcon          ConfigFlag = 0x80000
	HideSingleCentralWidgetTitleBar         ConfigFlag = 0x100000
	FocusHighlighting                       ConfigFlag = 0x200000
	EqualSplitOnInsertion                   ConfigFlag = 0x400000
	FloatingContainerForceNativeTitleBar    ConfigFlag = 0x800000
	FloatingContainerForceQWidgetTitleBar   ConfigFlag = 0x1000000
	MiddleMouseButtonClosesTab              ConfigFlag = 0x2000000
	DisableTabTextEliding                   ConfigFlag = 0x4000000
	ShowTabTextOnlyForActiveTab             ConfigFlag = 0x8000000
	DoubleClickUndocksWidget                ConfigFlag = 0x10000000
	PerspectivesWithOutCentralWidget        ConfigFlag = 0x20000000
	FluentUILightStyleSheet                 ConfigFlag = 0x40000000
	FluentUIDarkStyleSheet                  ConfigFlag = 0x80000000

	DefaultDockAreaButtons = DockAreaHasCloseButton | DockAreaHasUndockButton | DockAreaHasTabsMenuButton

	DefaultBaseConfig = DefaultDockAreaButtons |
		ActiveTabHasCloseButton |
		XmlCompressionEnabled |
		FloatingContainerHasWidgetTitle |
		DoubleClickUndocksWidget

	DefaultOpaqueConfig      = DefaultBaseConfig | OpaqueSplitterResize | DragPreviewShowsContentPixmap
	DefaultNonOpaqueConfig   = DefaultBaseConfig | DragPreviewShowsContentPixmap
	NonOpaqueWithWindowFrame = DefaultNonOpaqueConfig | DragPreviewHasWindowFrame
)

// Has reports whether every bit of f is set.
func (c ConfigFlag) Has(f ConfigFlag) bool { return c&f == f }

// AutoHideFlag is a process-wide auto-hide option.
type AutoHideFlag uint32

const (
	AutoHideFeatureEnabled           AutoHideFlag = 0x001
	DockAreaHasAutoHideButton        AutoHideFlag = 0x002
	AutoHideButtonTogglesArea        AutoHideFlag = 0x004
	AutoHideButtonCheckable          AutoHideFlag = 0x008
	AutoHideSideBarsIconOnly         AutoHideFlag = 0x010
	AutoHideShowOnMouseOver          AutoHideFlag = 0x020
	AutoHideCloseButtonCollapsesDock AutoHideFlag = 0x040
	AutoHideHasCloseButton           AutoHideFlag = 0x080
	AutoHideHasMinimizeButton        AutoHideFlag = 0x100
	AutoHideOpenOnDragHover          AutoHideFlag = 0x200
	AutoHideCloseOnOutsideMouseClick AutoHideFlag = 0x400

	DefaultAutoHideConfig = AutoHideFeatureEnabled |
		DockAreaHasAutoHideButton |
		AutoHideHasMinimizeButton |
		AutoHideCloseOnOutsideMouseClick
)

func (a AutoHideFlag) Has(f AutoHideFlag) bool { return a&f == f }

// ConfigParam names a typed engine parameter.
type ConfigParam int

const (
	// AutoHideOpenOnDragHoverDelay is a time.Duration.
	AutoHideOpenOnDragHoverDelay ConfigParam = iota
)

// DefaultDragHoverDelay applies when AutoHideOpenOnDragHoverDelay is unset.
const DefaultDragHoverDelay = 300 * time.Millisecond

// IconProvider resolves custom icons for engine chrome by name.
type IconProvider interface {
	Icon(name string) (string, bool)
}

// EngineConfig groups the options shared by all managers of a process.
// Configure it before creating the first Manager; managers pick up later
// changes on RefreshConfig.
type EngineConfig struct {
	mu sync.RWMutex

	flags           ConfigFlag
	autoHideFlags   AutoHideFlag
	params          map[ConfigParam]any
	floatingTitle   string
	applicationName string
	iconProvider    IconProvider
	platform        string
}

// NewEngineConfig returns the default configuration: non-opaque resizing
// with content pixmaps and auto-hide disabled.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		flags:           DefaultNonOpaqueConfig,
		params:          make(map[ConfigParam]any),
		applicationName: "dockit",
		platform:        defaultPlatform(),
	}
}

var (
	globalMu     sync.RWMutex
	globalConfig = NewEngineConfig()
)

// GlobalConfig returns the process configuration.
func GlobalConfig() *EngineConfig {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process configuration and returns the
// previous one, which makes it easy to restore in tests.
func SetGlobalConfig(cfg *EngineConfig) *EngineConfig {
	if cfg == nil {
		cfg = NewEngineConfig()
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := globalConfig
	globalConfig = cfg
	return prev
}

// Clone returns an independent copy.
func (c *EngineConfig) Clone() *EngineConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &EngineConfig{
		flags:           c.flags,
		autoHideFlags:   c.autoHideFlags,
		params:          make(map[ConfigParam]any, len(c.params)),
		floatingTitle:   c.floatingTitle,
		applicationName: c.applicationName,
		iconProvider:    c.iconProvider,
		platform:        c.platform,
	}
	for k, v := range c.params {
		out.params[k] = v
	}
	return out
}

func (c *EngineConfig) Flags() ConfigFlag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flags
}

func (c *EngineConfig) SetFlags(f ConfigFlag) {
	c.mu.Lock()
	c.flags = f
	c.mu.Unlock()
}

// SetFlag switches a single config flag.
func (c *EngineConfig) SetFlag(f ConfigFlag, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.flags |= f
	} else {
		c.flags &^= f
	}
}

func (c *EngineConfig) TestFlag(f ConfigFlag) bool { return c.Flags().Has(f) }

func (c *EngineConfig) AutoHideFlags() AutoHideFlag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoHideFlags
}

func (c *EngineConfig) SetAutoHideFlags(f AutoHideFlag) {
	c.mu.Lock()
	c.autoHideFlags = f
	c.mu.Unlock()
}

func (c *EngineConfig) SetAutoHideFlag(f AutoHideFlag, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.autoHideFlags |= f
	} else {
		c.autoHideFlags &^= f
	}
}

func (c *EngineConfig) TestAutoHideFlag(f AutoHideFlag) bool { return c.AutoHideFlags().Has(f) }

// SetParam stores a parameter value. A nil value clears it.
func (c *EngineConfig) SetParam(p ConfigParam, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v == nil {
		delete(c.params, p)
		return
	}
	c.params[p] = v
}

// Param returns the stored value of p, or def when unset.
func (c *EngineConfig) Param(p ConfigParam, def any) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.params[p]; ok {
		return v
	}
	return def
}

// DragHoverDelay returns AutoHideOpenOnDragHoverDelay. Integer values are
// read as milliseconds.
func (c *EngineConfig) DragHoverDelay() time.Duration {
	switch v := c.Param(AutoHideOpenOnDragHoverDelay, DefaultDragHoverDelay).(type) {
	case time.Duration:
		return v
	case int:
		return time.Duration(v) * time.Millisecond
	case int64:
		return time.Duration(v) * time.Millisecond
	}
	return DefaultDragHoverDelay
}

// SetFloatingContainersTitle sets the title used by floating containers
// that do not show a widget title.
func (c *EngineConfig) SetFloatingContainersTitle(title string) {
	c.mu.Lock()
	c.floatingTitle = title
	c.mu.Unlock()
}

// FloatingContainersTitle falls back to the application name.
func (c *EngineConfig) FloatingContainersTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.floatingTitle == "" {
		return c.applicationName
	}
	return c.floatingTitle
}

func (c *EngineConfig) SetApplicationName(name string) {
	c.mu.Lock()
	c.applicationName = name
	c.mu.Unlock()
}

func (c *EngineConfig) IconProvider() IconProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.iconProvider
}

func (c *EngineConfig) SetIconProvider(p IconProvider) {
	c.mu.Lock()
	c.iconProvider = p
	c.mu.Unlock()
}

// Platform is the windowing platform name, "xcb" for X11.
func (c *EngineConfig) Platform() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.platform
}

func (c *EngineConfig) SetPlatform(name string) {
	c.mu.Lock()
	c.platform = name
	c.mu.Unlock()
}
