package config

import (
	"fmt"
	"time"

	"github.com/bnema/dockit/internal/app/docking"
	"github.com/bnema/dockit/internal/logging"
)

// ApplyTo writes the docking and state sections into an engine config.
// Flags not named keep the engine defaults only when the list is empty.
func (c *Config) ApplyTo(engine *docking.EngineConfig) error {
	if len(c.Docking.ConfigFlags) > 0 {
		flags, err := docking.ParseConfigFlags(c.Docking.ConfigFlags)
		if err != nil {
			return fmt.Errorf("docking.config_flags: %w", err)
		}
		engine.SetFlags(flags)
	}
	engine.SetFlag(docking.XmlAutoFormattingEnabled, c.State.AutoFormatting)
	engine.SetFlag(docking.XmlCompressionEnabled, c.State.Compression)

	autoHide, err := docking.ParseAutoHideFlags(c.Docking.AutoHideFlags)
	if err != nil {
		return fmt.Errorf("docking.auto_hide_flags: %w", err)
	}
	engine.SetAutoHideFlags(autoHide)

	if c.Docking.DragHoverDelayMs > 0 {
		engine.SetParam(docking.AutoHideOpenOnDragHoverDelay, time.Duration(c.Docking.DragHoverDelayMs)*time.Millisecond)
	} else {
		engine.SetParam(docking.AutoHideOpenOnDragHoverDelay, nil)
	}
	engine.SetFloatingContainersTitle(c.Docking.FloatingContainersTitle)
	return nil
}

// EngineConfig returns a fresh engine config built from c.
func (c *Config) EngineConfig() (*docking.EngineConfig, error) {
	engine := docking.NewEngineConfig()
	if err := c.ApplyTo(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// LoggingConfig converts the logging section for logging.New.
func (c *Config) LoggingConfig() logging.Config {
	out := logging.DefaultConfig()
	out.Level = logging.ParseLevel(c.Logging.Level)
	out.Format = c.Logging.Format
	out.MaxSizeMB = c.Logging.MaxSizeMB
	out.MaxBackups = c.Logging.MaxBackups
	if c.Logging.EnableFileLog {
		out.FileDir = c.Logging.LogDir
		if out.FileDir == "" {
			if dir, err := GetLogDir(); err == nil {
				out.FileDir = dir
			}
		}
	}
	return out
}
