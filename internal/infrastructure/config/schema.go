package config

// Config is the dockit configuration file.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"description=Logging output"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database" jsonschema:"description=Perspective store"`
	State    StateConfig    `mapstructure:"state" toml:"state" json:"state" jsonschema:"description=Saved layout format"`
	Docking  DockingConfig  `mapstructure:"docking" toml:"docking" json:"docking" jsonschema:"description=Docking engine options"`
	Theme    ThemeConfig    `mapstructure:"theme" toml:"theme" json:"theme" jsonschema:"description=Terminal colors; empty values keep the dark default"`
}

// ThemeConfig overrides the terminal palette with #rrggbb colors.
type ThemeConfig struct {
	Background string `mapstructure:"background" toml:"background" json:"background,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text       string `mapstructure:"text" toml:"text" json:"text,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border     string `mapstructure:"border" toml:"border" json:"border,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Error      string `mapstructure:"error" toml:"error" json:"error,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Warning    string `mapstructure:"warning" toml:"warning" json:"warning,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// Colors returns the theme fields keyed by their config names.
func (t ThemeConfig) Colors() map[string]string {
	return map[string]string{
		"background": t.Background,
		"surface":    t.Surface,
		"text":       t.Text,
		"muted":      t.Muted,
		"accent":     t.Accent,
		"border":     t.Border,
		"error":      t.Error,
		"warning":    t.Warning,
	}
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty" jsonschema:"description=Defaults to $XDG_STATE_HOME/dockit/logs"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
}

// DatabaseConfig locates the sqlite perspective store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty" jsonschema:"description=Defaults to $XDG_DATA_HOME/dockit/dockit.sqlite"`
}

// StateConfig controls how layouts are written.
type StateConfig struct {
	AutoFormatting     bool `mapstructure:"xml_auto_formatting" toml:"xml_auto_formatting" json:"xml_auto_formatting" jsonschema:"description=Indent saved XML"`
	Compression        bool `mapstructure:"xml_compression" toml:"xml_compression" json:"xml_compression" jsonschema:"description=zlib-compress saved state,default=true"`
	// StrictRestore rejects layouts that name unknown dock widgets.
	StrictRestore      bool `mapstructure:"strict_restore" toml:"strict_restore" json:"strict_restore"`
	UserVersion        int  `mapstructure:"user_version" toml:"user_version" json:"user_version" jsonschema:"minimum=0"`
	// AutosaveIntervalMs debounces state file writes in the terminal host. Zero disables autosave.
	AutosaveIntervalMs int  `mapstructure:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms" jsonschema:"minimum=0,default=2000"`
}

// DockingConfig maps onto docking.EngineConfig.
type DockingConfig struct {
	// ConfigFlags replaces the default flag set when not empty.
	ConfigFlags             []string `mapstructure:"config_flags" toml:"config_flags" json:"config_flags,omitempty" jsonschema:"description=Config flag names such as FocusHighlighting or DefaultOpaqueConfig"`
	AutoHideFlags           []string `mapstructure:"auto_hide_flags" toml:"auto_hide_flags" json:"auto_hide_flags,omitempty" jsonschema:"description=Auto-hide flag names such as DefaultAutoHideConfig"`
	DragHoverDelayMs        int      `mapstructure:"drag_hover_delay_ms" toml:"drag_hover_delay_ms" json:"drag_hover_delay_ms" jsonschema:"minimum=0,default=300"`
	FloatingContainersTitle string   `mapstructure:"floating_containers_title" toml:"floating_containers_title" json:"floating_containers_title,omitempty"`
	// SettingsFile is the TOML settings file used by perspective export and import.
	SettingsFile string `mapstructure:"settings_file" toml:"settings_file" json:"settings_file,omitempty"`
}
