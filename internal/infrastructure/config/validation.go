package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/bnema/dockit/internal/app/docking"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json"}

	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// validateConfig reports every problem found, joined in one error.
func validateConfig(cfg *Config) error {
	var problems []string

	if !contains(validLogLevels, strings.ToLower(cfg.Logging.Level)) {
		problems = append(problems, fmt.Sprintf("logging.level %q must be one of %s", cfg.Logging.Level, strings.Join(validLogLevels, ", ")))
	}
	if !contains(validLogFormats, cfg.Logging.Format) {
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", cfg.Logging.Format))
	}
	if cfg.Logging.MaxSizeMB < 1 {
		problems = append(problems, "logging.max_size_mb must be at least 1")
	}
	if cfg.Logging.MaxBackups < 0 {
		problems = append(problems, "logging.max_backups cannot be negative")
	}
	if cfg.State.UserVersion < 0 {
		problems = append(problems, "state.user_version cannot be negative")
	}
	if cfg.State.AutosaveIntervalMs < 0 {
		problems = append(problems, "state.autosave_interval_ms cannot be negative")
	}
	if _, err := docking.ParseConfigFlags(cfg.Docking.ConfigFlags); err != nil {
		problems = append(problems, "docking.config_flags: "+err.Error())
	}
	if _, err := docking.ParseAutoHideFlags(cfg.Docking.AutoHideFlags); err != nil {
		problems = append(problems, "docking.auto_hide_flags: "+err.Error())
	}
	if cfg.Docking.DragHoverDelayMs < 0 {
		problems = append(problems, "docking.drag_hover_delay_ms cannot be negative")
	}
	colors := cfg.Theme.Colors()
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		if v := colors[name]; v != "" && !hexColor.MatchString(v) {
			problems = append(problems, fmt.Sprintf("theme.%s %q must be a #rrggbb color", name, v))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d invalid value(s):\n  - %s", len(problems), strings.Join(problems, "\n  - "))
	}
	return nil
}

// normalizeConfig folds case and fills empty values with defaults.
func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = defaultMaxSizeMB
	}
	cfg.Docking.ConfigFlags = trimEmpty(cfg.Docking.ConfigFlags)
	cfg.Docking.AutoHideFlags = trimEmpty(cfg.Docking.AutoHideFlags)
}

func trimEmpty(list []string) []string {
	out := list[:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
