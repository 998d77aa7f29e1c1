package config

import "github.com/bnema/dockit/internal/app/docking"

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3

	defaultAutosaveIntervalMs = 2000
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		State: StateConfig{
			Compression:        true,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
		},
		Docking: DockingConfig{
			ConfigFlags:      []string{"DefaultNonOpaqueConfig"},
			AutoHideFlags:    []string{},
			DragHoverDelayMs: int(docking.DefaultDragHoverDelay.Milliseconds()),
		},
		Theme: ThemeConfig{
			Background: "#0a0a0b",
			Surface:    "#2d2d2d",
			Text:       "#ffffff",
			Muted:      "#909090",
			Accent:     "#4ade80",
			Border:     "#333333",
			Error:      "#ef4444",
			Warning:    "#f59e0b",
		},
	}
}
