package app

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tacogips/xenon/internal/config"
	"github.com/tacogips/xenon/internal/logging"
	"github.com/tacogips/xenon/internal/template/generator"
	"github.com/tacogips/xenon/internal/template/render"
)

// GenerateOptions contains options for a generation run.
type GenerateOptions struct {
	// ConfigPath is the directory or file used to locate the configuration.
	// Empty means the working directory.
	ConfigPath string
	// WorkingDir resolves empty and relative config paths. Empty means the process working directory.
	WorkingDir string
	// Fs is the filesystem templates are read from and written to. Defaults to the OS filesystem.
	Fs afero.Fs
	// Loader overrides the configuration loader. Defaults to a config.FileLoader over Fs.
	Loader config.Loader
	// Prompter answers variable prompts.
	Prompter Prompter
	// Logger receives progress and debug output.
	Logger zerolog.Logger
	// Engine overrides the template engine named by the configuration.
	Engine string
	// DefaultEngine is used when neither Engine nor the configuration names one.
	DefaultEngine string
	// DryRun renders templates without writing files.
	DryRun bool
}

// GenerateResult contains the results of a generation run.
type GenerateResult struct {
	// ConfigFile is the configuration file that was loaded.
	ConfigFile string
	// ConfigDirectory is the directory relative paths were resolved against.
	ConfigDirectory string
	// Engine is the template engine that rendered the templates.
	Engine string
	// Save holds the per-file results.
	Save *generator.SaveResult
}

// Generate loads the configuration, prompts for every variable, renders the
// templates and saves them. Stages run strictly in sequence and the first
// error is returned unchanged.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Prompter == nil {
		return nil, NewValidationError("prompter is required", nil)
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := logging.Component(opts.Logger, "app")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	loader := opts.Loader
	if loader == nil {
		loader = config.NewLoader(fs,
			config.WithWorkingDir(opts.WorkingDir),
			config.WithLogger(opts.Logger))
	}

	resolved, err := loader.Load(ctx, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("configFile", resolved.ConfigFile).
		Str("configDirectory", resolved.ConfigDirectory).
		Msg("Configuration resolved")

	engineName := selectEngine(opts.Engine, resolved.Engine, opts.DefaultEngine)
	engine, err := render.NewEngine(engineName)
	if err != nil {
		return nil, NewEngineError("failed to select template engine", err)
	}
	logger.Debug().Str("engine", engine.Name()).Msg("Template engine selected")

	withData, err := PromptUserForData(ctx, opts.Prompter, resolved)
	if err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(fs, engine, opts.Logger)
	rendered, err := renderer.Populate(ctx, withData)
	if err != nil {
		return nil, err
	}

	saver := generator.NewSaver(
		generator.NewFileWriter(fs, opts.Logger),
		opts.Logger,
		generator.WithDryRun(opts.DryRun))
	saved, err := saver.Save(ctx, rendered)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		ConfigFile:      resolved.ConfigFile,
		ConfigDirectory: resolved.ConfigDirectory,
		Engine:          engine.Name(),
		Save:            saved,
	}, nil
}

// selectEngine picks the first non-empty engine name in precedence order.
func selectEngine(override, configured, fallback string) string {
	for _, name := range []string{override, configured, fallback} {
		if name != "" {
			return name
		}
	}
	return render.DefaultEngine
}
