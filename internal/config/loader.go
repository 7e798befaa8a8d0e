package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tacogips/xenon/internal/template/model"
)

// Loader defines the interface for locating and loading a project configuration.
type Loader interface {
	// Load locates the configuration from a directory or file path and returns it
	// bound to its directory. An empty path means the working directory.
	Load(ctx context.Context, path string) (*model.ResolvedConfig, error)
}

// FileLoader implements Loader on top of an afero filesystem.
type FileLoader struct {
	fs         afero.Fs
	workingDir string
	logger     zerolog.Logger
}

// LoaderOption configures a FileLoader.
type LoaderOption func(*FileLoader)

// WithWorkingDir sets the directory used for empty and relative paths.
// Defaults to the process working directory.
func WithWorkingDir(dir string) LoaderOption {
	return func(l *FileLoader) {
		l.workingDir = dir
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(l *FileLoader) {
		l.logger = logger.With().Str("component", "config").Logger()
	}
}

// NewLoader creates a new FileLoader reading from fs.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *FileLoader {
	l := &FileLoader{
		fs:     fs,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Define returns cfg unchanged. It exists so configurations assembled in Go
// read the same way as the ones loaded from disk.
func Define(cfg model.RawConfig) model.RawConfig {
	return cfg
}

// Load locates and loads the configuration.
func (l *FileLoader) Load(ctx context.Context, path string) (*model.ResolvedConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	configPath, err := l.resolvePath(path)
	if err != nil {
		return nil, NewConfigErrorWithCause(PathNotFound, path, "path not found", err)
	}
	l.logger.Debug().Str("path", configPath).Msg("Resolving configuration path")

	configDir, err := l.configDirectory(configPath)
	if err != nil {
		return nil, err
	}

	configFile, err := l.findConfigFile(configDir)
	if err != nil {
		return nil, err
	}
	l.logger.Debug().Str("file", configFile).Msg("Found configuration file")

	raw, err := l.loadFile(configFile)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().
		Int("globalVariables", len(raw.GlobalVariables)).
		Int("templates", len(raw.Templates)).
		Msg("Configuration loaded")

	return &model.ResolvedConfig{
		RawConfig:       *raw,
		ConfigDirectory: configDir,
		ConfigFile:      configFile,
	}, nil
}

// resolvePath makes path absolute against the working directory.
func (l *FileLoader) resolvePath(path string) (string, error) {
	wd := l.workingDir
	if wd == "" {
		var err error
		wd, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	if path == "" {
		return filepath.Clean(wd), nil
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(wd, expanded), nil
}

// configDirectory returns path itself for directories and the parent for files.
func (l *FileLoader) configDirectory(path string) (string, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return "", NewConfigErrorWithCause(PathNotFound, path, "path not found", err)
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// findConfigFile returns the first supported configuration file present in dir.
func (l *FileLoader) findConfigFile(dir string) (string, error) {
	for _, name := range model.ConfigFileNames() {
		candidate := filepath.Join(dir, name)
		info, err := l.fs.Stat(candidate)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			return candidate, nil
		}
	}
	return "", NewConfigError(ConfigNotFound, dir, "configuration not found")
}

// loadFile parses and decodes a configuration file.
func (l *FileLoader) loadFile(path string) (*model.RawConfig, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to import config", err)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to import config", err)
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to import config", err)
	}

	var fc fileConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &fc,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &fc, unmarshalConf); err != nil {
		return nil, NewConfigErrorWithCause(ImportConfigFailed, path, "failed to import config", err)
	}

	d := &decoder{path: path}
	return d.decodeConfig(&fc)
}

// parserFor picks the koanf parser for a configuration file.
// JSON is parsed as YAML, of which it is a subset.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", filepath.Ext(path))
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
