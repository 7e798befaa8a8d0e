package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/xenon/internal/template/render"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(afero.NewMemMapFs(), "/missing/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, render.DefaultEngine, s.Engine)
}

func TestLoadSettings_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/settings.yaml", `
engine: gotemplate
output:
  no_color: true
  debug: true
prompt:
  accept_defaults: true
`)

	s, err := LoadSettings(fs, "/cfg/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, "gotemplate", s.Engine)
	assert.True(t, s.Output.NoColor)
	assert.True(t, s.Output.Debug)
	assert.False(t, s.Output.Quiet)
	assert.True(t, s.Prompt.AcceptDefaults)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/settings.yaml", "engine: gotemplate\n")

	t.Setenv("XENON_ENGINE", "mustache")
	t.Setenv("XENON_OUTPUT__QUIET", "true")
	t.Setenv("XENON_PROMPT__ACCEPT_DEFAULTS", "1")

	s, err := LoadSettings(fs, "/cfg/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, "mustache", s.Engine)
	assert.True(t, s.Output.Quiet)
	assert.True(t, s.Prompt.AcceptDefaults)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/cfg/settings.yaml", "engine: [")
		_, err := LoadSettings(fs, "/cfg/settings.yaml")
		assert.True(t, IsImportConfigError(err))
	})

	t.Run("unknown engine", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/cfg/settings.yaml", "engine: jinja\n")
		_, err := LoadSettings(fs, "/cfg/settings.yaml")
		require.Error(t, err)
		assert.True(t, IsType(err, ConfigValidationFailed))
	})

	t.Run("env engine", func(t *testing.T) {
		t.Setenv("XENON_ENGINE", "jinja")
		_, err := LoadSettings(afero.NewMemMapFs(), "")
		assert.Error(t, err)
	})
}

func TestDefaultSettingsPath(t *testing.T) {
	path := DefaultSettingsPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join("xenon", "settings.yaml")), path)
}
