package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/tacogips/xenon/internal/template/render"
)

// Settings holds user-level preferences that apply to every project.
type Settings struct {
	// Engine is the template engine used when a project does not name one.
	Engine string `koanf:"engine"`
	// Output controls terminal output.
	Output OutputSettings `koanf:"output"`
	// Prompt controls variable prompting.
	Prompt PromptSettings `koanf:"prompt"`
}

// OutputSettings represents output and logging preferences.
type OutputSettings struct {
	// NoColor disables colored output.
	NoColor bool `koanf:"no_color"`
	// Quiet suppresses non-error output.
	Quiet bool `koanf:"quiet"`
	// Debug enables debug logging.
	Debug bool `koanf:"debug"`
}

// PromptSettings represents prompting preferences.
type PromptSettings struct {
	// AcceptDefaults answers every prompt with its declared default.
	AcceptDefaults bool `koanf:"accept_defaults"`
}

// LoadSettings layers defaults, the settings file at path (if present) and
// XENON_* environment variables. A missing file is not an error.
func LoadSettings(fs afero.Fs, path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettingsMap(), "."), nil); err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to load default settings", err)
	}

	if path != "" {
		if exists, _ := afero.Exists(fs, path); exists {
			data, err := afero.ReadFile(fs, path)
			if err != nil {
				return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to read settings", err)
			}
			if err := k.Load(&rawBytesProvider{bytes: data}, yaml.Parser()); err != nil {
				return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "invalid settings file", err)
			}
		}
	}

	err := k.Load(env.Provider(SettingsEnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, SettingsEnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to load environment settings", err)
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to decode settings", err)
	}

	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateSettings validates user settings.
func ValidateSettings(s *Settings) error {
	if s.Engine != "" && !render.IsEngine(s.Engine) {
		return NewConfigErrorWithField(ConfigValidationFailed, "settings", "engine",
			"unknown template engine "+s.Engine+" (supported: "+strings.Join(render.EngineNames(), ", ")+")")
	}
	return nil
}
