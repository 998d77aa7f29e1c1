package docking

import (
	"io/fs"

	"github.com/bnema/dockit/assets"
)

// styleSheets is swapped in tests.
var styleSheets fs.FS = assets.StyleSheets

// styleSheetName picks the stylesheet file for the flags and platform.
func styleSheetName(flags ConfigFlag, linux bool) string {
	name := "default"
	switch {
	case flags.Has(FocusHighlighting):
		name = "focus_highlighting"
	case flags.Has(FluentUILightStyleSheet):
		name = "fluent_ui_light"
	case flags.Has(FluentUIDarkStyleSheet):
		name = "fluent_ui_dark"
	}
	if linux {
		name += "_linux"
	}
	return "stylesheets/" + name + ".css"
}

// LoadStyleSheet reads the stylesheet matching the current flags and
// applies it to the manager and every floating container. A missing file
// yields an empty stylesheet.
func (m *Manager) LoadStyleSheet() {
	name := styleSheetName(m.cfg.Flags(), isLinuxLike())
	data, err := fs.ReadFile(styleSheets, name)
	if err != nil {
		m.log.Warn().Err(err).Str("stylesheet", name).Msg("stylesheet not found")
		data = nil
	}
	m.styleSheet = string(data)
	for _, fc := range m.floating {
		fc.styleSheet = m.styleSheet
	}
}

// StyleSheet returns the stylesheet applied to the manager.
func (m *Manager) StyleSheet() string { return m.styleSheet }
