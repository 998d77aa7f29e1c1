package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockit/internal/app/docking"
)

func TestConfig_EngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docking.ConfigFlags = []string{"DefaultOpaqueConfig", "FocusHighlighting"}
	cfg.Docking.AutoHideFlags = []string{"DefaultAutoHideConfig"}
	cfg.Docking.DragHoverDelayMs = 50
	cfg.Docking.FloatingContainersTitle = "Tools"
	cfg.State.Compression = false
	cfg.State.AutoFormatting = true

	engine, err := cfg.EngineConfig()
	require.NoError(t, err)

	assert.True(t, engine.TestFlag(docking.OpaqueSplitterResize|docking.FocusHighlighting|docking.XmlAutoFormattingEnabled))
	assert.False(t, engine.TestFlag(docking.XmlCompressionEnabled))
	assert.Equal(t, docking.DefaultAutoHideConfig, engine.AutoHideFlags())
	assert.Equal(t, 50*time.Millisecond, engine.DragHoverDelay())
	assert.Equal(t, "Tools", engine.FloatingContainersTitle())
}

func TestConfig_ApplyToKeepsFlagsWhenEmpty(t *testing.T) {
	engine := docking.NewEngineConfig()
	engine.SetFlag(docking.FocusHighlighting, true)
	engine.SetParam(docking.AutoHideOpenOnDragHoverDelay, time.Second)
	cfg := DefaultConfig()
	cfg.Docking.ConfigFlags = nil
	cfg.Docking.DragHoverDelayMs = 0

	require.NoError(t, cfg.ApplyTo(engine))

	assert.True(t, engine.TestFlag(docking.FocusHighlighting))
	assert.Equal(t, docking.DefaultDragHoverDelay, engine.DragHoverDelay())
}

func TestConfig_LoggingConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = "/tmp/dockit-logs"

	out := cfg.LoggingConfig()

	assert.Equal(t, zerolog.DebugLevel, out.Level)
	assert.Equal(t, "/tmp/dockit-logs", out.FileDir)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "dockit configuration", doc["title"])
	assert.Contains(t, string(data), "drag_hover_delay_ms")
	assert.Contains(t, string(data), "xml_compression")

	path, err := GenerateSchemaFile(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
