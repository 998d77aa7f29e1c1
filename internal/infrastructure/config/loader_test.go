package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("DOCKIT_LOG_LEVEL", "")
	t.Setenv("DOCKIT_LOG_FORMAT", "")
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.True(t, mgr.viper.GetBool("state.xml_compression"))
	assert.Equal(t, 300, mgr.viper.GetInt("docking.drag_hover_delay_ms"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	cfg := mgr.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"DefaultNonOpaqueConfig"}, cfg.Docking.ConfigFlags)
	assert.Equal(t, filepath.Join(root, "data", "dockit", "dockit.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "config", "dockit", "perspectives.toml"), cfg.Docking.SettingsFile)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[logging]
level = "DEBUG"

[docking]
config_flags = ["DefaultOpaqueConfig", "FocusHighlighting"]
auto_hide_flags = ["DefaultAutoHideConfig"]
drag_hover_delay_ms = 120
`), 0o600))
	t.Setenv("DOCKIT_LOG_FORMAT", "json")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"DefaultOpaqueConfig", "FocusHighlighting"}, cfg.Docking.ConfigFlags)
	assert.Equal(t, 120, cfg.Docking.DragHoverDelayMs)
	assert.True(t, cfg.State.Compression, "defaults fill missing sections")
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[docking]
config_flags = ["Sparkles"]
`), 0o600))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sparkles")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Docking.ConfigFlags[0] = "changed"

	assert.Equal(t, "DefaultNonOpaqueConfig", mgr.Get().Docking.ConfigFlags[0])
}

func TestManager_Save(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.State.AutoFormatting = true
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Get().State.AutoFormatting)

	cfg.Logging.Format = "xml"
	assert.Error(t, mgr.Save(cfg))
}

func TestManager_WatchReloads(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(c *Config) { changed <- c })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second call is a no-op")

	cfg := DefaultConfig()
	cfg.Docking.DragHoverDelayMs = 42
	tmp := filepath.Join(dir, "config.toml.tmp")
	require.NoError(t, WriteConfigOrdered(cfg, tmp))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "config.toml")))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Docking.DragHoverDelayMs == 42 {
				return
			}
		case <-timeout:
			t.Fatal("config change not observed")
		}
	}
}

func TestManager_ApplyReloadKeepsLastGoodConfig(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified []*Config
	mgr.OnConfigChange(func(c *Config) { notified = append(notified, c) })
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.State.UserVersion = 7
	require.NoError(t, WriteConfigOrdered(cfg, path))
	mgr.applyReload()
	require.Len(t, notified, 1)
	assert.Equal(t, 7, notified[0].State.UserVersion)

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644))
	mgr.applyReload()

	assert.Len(t, notified, 1, "invalid file is not announced")
	assert.Equal(t, 7, mgr.Get().State.UserVersion)
}
