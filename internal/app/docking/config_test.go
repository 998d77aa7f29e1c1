package docking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineConfig_Defaults(t *testing.T) {
	cfg := NewEngineConfig()

	assert.Equal(t, DefaultNonOpaqueConfig, cfg.Flags())
	assert.True(t, cfg.TestFlag(XmlCompressionEnabled))
	assert.False(t, cfg.TestAutoHideFlag(AutoHideFeatureEnabled))
	assert.Equal(t, DefaultDragHoverDelay, cfg.DragHoverDelay())
	assert.Equal(t, "dockit", cfg.FloatingContainersTitle())
}

func TestEngineConfig_Flags(t *testing.T) {
	cfg := NewEngineConfig()

	cfg.SetFlag(FocusHighlighting, true)
	assert.True(t, cfg.TestFlag(FocusHighlighting))
	cfg.SetFlag(FocusHighlighting, false)
	assert.False(t, cfg.TestFlag(FocusHighlighting))

	cfg.SetAutoHideFlags(DefaultAutoHideConfig)
	cfg.SetAutoHideFlag(AutoHideShowOnMouseOver, true)
	assert.True(t, cfg.TestAutoHideFlag(AutoHideFeatureEnabled|AutoHideShowOnMouseOver))
}

func TestEngineConfig_DragHoverDelay(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Duration
	}{
		{name: "duration", value: 50 * time.Millisecond, want: 50 * time.Millisecond},
		{name: "milliseconds", value: 700, want: 700 * time.Millisecond},
		{name: "int64 milliseconds", value: int64(20), want: 20 * time.Millisecond},
		{name: "wrong type", value: "fast", want: DefaultDragHoverDelay},
		{name: "cleared", value: nil, want: DefaultDragHoverDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewEngineConfig()
			cfg.SetParam(AutoHideOpenOnDragHoverDelay, time.Second)
			cfg.SetParam(AutoHideOpenOnDragHoverDelay, tt.value)

			assert.Equal(t, tt.want, cfg.DragHoverDelay())
		})
	}
}

func TestEngineConfig_CloneIsIndependent(t *testing.T) {
	cfg := NewEngineConfig()
	cfg.SetFloatingContainersTitle("Tools")

	clone := cfg.Clone()
	clone.SetFlag(FocusHighlighting, true)
	clone.SetFloatingContainersTitle("Other")

	assert.False(t, cfg.TestFlag(FocusHighlighting))
	assert.Equal(t, "Tools", cfg.FloatingContainersTitle())
}

func TestSetGlobalConfig(t *testing.T) {
	cfg := NewEngineConfig()
	cfg.SetApplicationName("editor")

	prev := SetGlobalConfig(cfg)
	t.Cleanup(func() { SetGlobalConfig(prev) })

	assert.Same(t, cfg, GlobalConfig())
	assert.Equal(t, "editor", GlobalConfig().FloatingContainersTitle())
}
