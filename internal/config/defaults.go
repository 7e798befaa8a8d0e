package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/tacogips/xenon/internal/template/render"
)

// SettingsEnvPrefix prefixes environment variables that override user settings.
// Nested keys are separated by a double underscore: XENON_OUTPUT__NO_COLOR=true.
const SettingsEnvPrefix = "XENON_"

// DefaultSettings returns the default user settings.
func DefaultSettings() *Settings {
	return &Settings{
		Engine: render.DefaultEngine,
		Output: OutputSettings{
			NoColor: false,
			Quiet:   false,
			Debug:   false,
		},
		Prompt: PromptSettings{
			AcceptDefaults: false,
		},
	}
}

// defaultSettingsMap is DefaultSettings in koanf key form.
func defaultSettingsMap() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"engine":                 d.Engine,
		"output.no_color":        d.Output.NoColor,
		"output.quiet":           d.Output.Quiet,
		"output.debug":           d.Output.Debug,
		"prompt.accept_defaults": d.Prompt.AcceptDefaults,
	}
}

// DefaultSettingsPath returns the user settings file path under the XDG config home.
func DefaultSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, "xenon", "settings.yaml")
}
