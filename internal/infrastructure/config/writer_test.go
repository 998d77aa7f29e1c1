package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"[database]", "[docking]", "[logging]", "[state]", "[theme]"}, sectionHeaders(string(content)))
	assert.Contains(t, string(content), "DefaultNonOpaqueConfig")
	assert.Contains(t, string(content), "xml_compression = true")
	assert.Contains(t, string(content), "#4ade80")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestEncodeTOML_SortsKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.State.UserVersion = 3

	data, err := EncodeTOML(cfg)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# dockit configuration"))
	autosave := strings.Index(content, "autosave_interval_ms")
	strict := strings.Index(content, "strict_restore")
	user := strings.Index(content, "user_version = 3")
	require.NotEqual(t, -1, autosave)
	assert.Less(t, autosave, strict)
	assert.Less(t, strict, user)
}

func TestEncodeTOML_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docking.ConfigFlags = []string{"FocusHighlighting", "AlwaysShowTabs"}

	data, err := EncodeTOML(cfg)
	require.NoError(t, err)

	var got Config
	require.NoError(t, toml.Unmarshal(data, &got))
	assert.Equal(t, cfg.Docking.ConfigFlags, got.Docking.ConfigFlags)
	assert.Equal(t, cfg.State, got.State)
	assert.Equal(t, cfg.Theme, got.Theme)
}
