package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func themePresetFrom(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw struct {
		Theme struct {
			Preset string `yaml:"preset"`
		} `yaml:"theme"`
	}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	return raw.Theme.Preset
}

func TestSaveThemePreset_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveThemePreset(path, "nord"))

	assert.Equal(t, "nord", themePresetFrom(t, path))
}

func TestSaveThemePreset_UpdatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveThemePreset(path, "mono"))

	assert.Equal(t, "mono", themePresetFrom(t, path))
}

func TestSaveThemePreset_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := `# my settings
format: html

theme:
  preset: default
  colors:
    keyword: "#123456"
`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	require.NoError(t, SaveThemePreset(path, "nord"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# my settings", "comments must survive a save")
	assert.Contains(t, content, "format: html")
	assert.Contains(t, content, `keyword: "#123456"`)
	assert.Equal(t, "nord", themePresetFrom(t, path))
}

func TestSaveThemePreset_ThemeKeyMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	require.NoError(t, SaveThemePreset(path, "mono"))

	assert.Equal(t, "mono", themePresetFrom(t, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: json")
}
