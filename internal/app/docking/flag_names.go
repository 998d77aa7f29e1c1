package docking

import (
	"fmt"
	"sort"
	"strings"
)

var configFlagNames = map[string]ConfigFlag{
	"ActiveTabHasCloseButton":                 ActiveTabHasCloseButton,
	"DockAreaHasCloseButton":                  DockAreaHasCloseButton,
	"DockAreaCloseButtonClosesTab":            DockAreaCloseButtonClosesTab,
	"OpaqueSplitterResize":                    OpaqueSplitterResize,
	"XmlAutoFormattingEnabled":                XmlAutoFormattingEnabled,
	"XmlCompressionEnabled":                   XmlCompressionEnabled,
	"TabCloseButtonIsToolButton":              TabCloseButtonIsToolButton,
	"AllTabsHaveCloseButton":                  AllTabsHaveCloseButton,
	"RetainTabSizeWhenCloseButtonHidden":      RetainTabSizeWhenCloseButtonHidden,
	"DragPreviewIsDynamic":                    DragPreviewIsDynamic,
	"DragPreviewShowsContentPixmap":           DragPreviewShowsContentPixmap,
	"DragPreviewHasWindowFrame":               DragPreviewHasWindowFrame,
	"AlwaysShowTabs":                          AlwaysShowTabs,
	"DockAreaHasUndockButton":                 DockAreaHasUndockButton,
	"DockAreaHasTabsMenuButton":               DockAreaHasTabsMenuButton,
	"DockAreaHideDisabledButtons":             DockAreaHideDisabledButtons,
	"DockAreaDynamicTabsMenuButtonVisibility": DockAreaDynamicTabsMenuButtonVisibility,
	"FloatingContainerHasWidgetTitle":         FloatingContainerHasWidgetTitle,
	"FloatingContainerHasWidgetIcon":          FloatingContainerHasWidgetIcon,
	"HideSingleCentralWidgetTitleBar":         HideSingleCentralWidgetTitleBar,
	"FocusHighlighting":                       FocusHighlighting,
	"EqualSplitOnInsertion":                   EqualSplitOnInsertion,
	"FloatingContainerForceNativeTitleBar":    FloatingContainerForceNativeTitleBar,
	"FloatingContainerForceQWidgetTitleBar":   FloatingContainerForceQWidgetTitleBar,
	"MiddleMouseButtonClosesTab":              MiddleMouseButtonClosesTab,
	"DisableTabTextEliding":                   DisableTabTextEliding,
	"ShowTabTextOnlyForActiveTab":             ShowTabTextOnlyForActiveTab,
	"DoubleClickUndocksWidget":                DoubleClickUndocksWidget,
	"PerspectivesWithOutCentralWidget":        PerspectivesWithOutCentralWidget,
	"FluentUILightStyleSheet":                 FluentUILightStyleSheet,
	"FluentUIDarkStyleSheet":                  FluentUIDarkStyleSheet,

	"DefaultDockAreaButtons":   DefaultDockAreaButtons,
	"DefaultBaseConfig":        DefaultBaseConfig,
	"DefaultOpaqueConfig":      DefaultOpaqueConfig,
	"DefaultNonOpaqueConfig":   DefaultNonOpaqueConfig,
	"NonOpaqueWithWindowFrame": NonOpaqueWithWindowFrame,
}

var autoHideFlagNames = map[string]AutoHideFlag{
	"AutoHideFeatureEnabled":           AutoHideFeatureEnabled,
	"DockAreaHasAutoHideButton":        DockAreaHasAutoHideButton,
	"AutoHideButtonTogglesArea":        AutoHideButtonTogglesArea,
	"AutoHideButtonCheckable":          AutoHideButtonCheckable,
	"AutoHideSideBarsIconOnly":         AutoHideSideBarsIconOnly,
	"AutoHideShowOnMouseOver":          AutoHideShowOnMouseOver,
	"AutoHideCloseButtonCollapsesDock": AutoHideCloseButtonCollapsesDock,
	"AutoHideHasCloseButton":           AutoHideHasCloseButton,
	"AutoHideHasMinimizeButton":        AutoHideHasMinimizeButton,
	"AutoHideOpenOnDragHover":          AutoHideOpenOnDragHover,
	"AutoHideCloseOnOutsideMouseClick": AutoHideCloseOnOutsideMouseClick,

	"DefaultAutoHideConfig": DefaultAutoHideConfig,
}

func lookupFold[T any](names map[string]T, name string) (T, bool) {
	name = strings.TrimSpace(name)
	if v, ok := names[name]; ok {
		return v, true
	}
	for k, v := range names {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ParseConfigFlags ORs the named config flags together. Names match
// case-insensitively and may name composite defaults.
func ParseConfigFlags(names []string) (ConfigFlag, error) {
	var out ConfigFlag
	for _, n := range names {
		f, ok := lookupFold(configFlagNames, n)
		if !ok {
			return 0, fmt.Errorf("unknown config flag %q", n)
		}
		out |= f
	}
	return out, nil
}

// ParseAutoHideFlags ORs the named auto-hide flags together.
func ParseAutoHideFlags(names []string) (AutoHideFlag, error) {
	var out AutoHideFlag
	for _, n := range names {
		f, ok := lookupFold(autoHideFlagNames, n)
		if !ok {
			return 0, fmt.Errorf("unknown auto-hide flag %q", n)
		}
		out |= f
	}
	return out, nil
}

// ConfigFlagNames lists the names of the single-bit flags set in f.
func ConfigFlagNames(f ConfigFlag) []string {
	return setNames(configFlagNames, func(v ConfigFlag) bool { return isSingleBit(uint32(v)) && f.Has(v) })
}

// AutoHideFlagNames lists the names of the single-bit flags set in f.
func AutoHideFlagNames(f AutoHideFlag) []string {
	return setNames(autoHideFlagNames, func(v AutoHideFlag) bool { return isSingleBit(uint32(v)) && f.Has(v) })
}

func isSingleBit(v uint32) bool { return v != 0 && v&(v-1) == 0 }

func setNames[T any](names map[string]T, keep func(T) bool) []string {
	var out []string
	for k, v := range names {
		if keep(v) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
