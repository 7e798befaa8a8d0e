// Package cli implements the xenon command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tacogips/xenon/internal/app"
	"github.com/tacogips/xenon/internal/build"
	"github.com/tacogips/xenon/internal/config"
	"github.com/tacogips/xenon/internal/logging"
)

// errReported marks an error that has already been logged.
var errReported = errors.New("error already reported")

// rootOptions holds flag values and injected dependencies for one invocation.
type rootOptions struct {
	configPath   string
	settingsPath string
	engine       string
	yes          bool
	dryRun       bool
	noColor      bool
	quiet        bool
	debug        bool
	logJSON      bool

	fs         afero.Fs
	workingDir string
	prompter   app.Prompter
	out        io.Writer
	errOut     io.Writer
}

// Option customizes the root command. Used by tests and embedding callers.
type Option func(*rootOptions)

// WithFs sets the filesystem used for configuration, templates and output.
func WithFs(fs afero.Fs) Option {
	return func(o *rootOptions) { o.fs = fs }
}

// WithWorkingDir sets the directory an empty or relative --config resolves against.
func WithWorkingDir(dir string) Option {
	return func(o *rootOptions) { o.workingDir = dir }
}

// WithPrompter replaces the interactive terminal prompter.
func WithPrompter(p app.Prompter) Option {
	return func(o *rootOptions) { o.prompter = p }
}

// WithOutput sets the writers for results and for logs and errors.
func WithOutput(out, errOut io.Writer) Option {
	return func(o *rootOptions) {
		o.out = out
		o.errOut = errOut
	}
}

// NewRootCommand creates the xenon command.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := &rootOptions{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	cmd := &cobra.Command{
		Use:   "xenon",
		Short: "Scaffold files from templates",
		Long: `xenon generates files from templates described by a project configuration.

It looks for xenon.config.yaml, .yml, .toml or .json (in that order) in the
current directory or the one given with --config, asks for every declared
variable, renders each template and writes the result to its output directory.

Output file names drop the template's final extension:
  templates/README.md.tmpl -> <outputPath>/README.md`,
		Args:          cobra.NoArgs,
		Version:       build.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("xenon %s\n", build.Info()))
	cmd.SetOut(o.out)
	cmd.SetErr(o.errOut)

	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, FlagConfig, "c", "", DescConfig)
	flags.BoolVarP(&o.yes, FlagYes, "y", false, DescYes)
	flags.BoolVar(&o.dryRun, FlagDryRun, false, DescDryRun)
	flags.StringVar(&o.engine, FlagEngine, "", DescEngine)
	flags.StringVar(&o.settingsPath, FlagSettings, config.DefaultSettingsPath(), DescSettings)
	flags.BoolVar(&o.noColor, FlagNoColor, false, DescNoColor)
	flags.BoolVarP(&o.quiet, FlagQuiet, "q", false, DescQuiet)
	flags.BoolVar(&o.debug, FlagDebug, false, DescDebug)
	flags.BoolVar(&o.logJSON, FlagLogJSON, false, DescLogJSON)

	return cmd
}

// run resolves settings, builds the logger and runs one generation.
func (o *rootOptions) run(ctx context.Context) error {
	settings, err := config.LoadSettings(o.fs, o.settingsPath)
	if err != nil {
		return err
	}

	debug := o.debug || settings.Output.Debug
	quiet := o.quiet || settings.Output.Quiet
	noColor := o.noColor || settings.Output.NoColor || os.Getenv("NO_COLOR") != ""

	logger := logging.New(logging.Options{
		Out:     o.errOut,
		Debug:   debug,
		Quiet:   quiet,
		NoColor: noColor || !isTerminal(o.errOut),
		JSON:    o.logJSON,
	})
	p := newPrinter(o.out, o.errOut, quiet, noColor || !isTerminal(o.out))

	logger.Debug().
		Str("settings", o.settingsPath).
		Str("settingsEngine", settings.Engine).
		Bool("acceptDefaults", settings.Prompt.AcceptDefaults).
		Msg("Settings loaded")

	result, err := app.Generate(ctx, app.GenerateOptions{
		ConfigPath:    o.configPath,
		WorkingDir:    o.workingDir,
		Fs:            o.fs,
		Prompter:      o.selectPrompter(settings),
		Logger:        logger,
		Engine:        o.engine,
		DefaultEngine: settings.Engine,
		DryRun:        o.dryRun,
	})
	if err != nil {
		reportError(logger, err)
		return errReported
	}

	p.printResult(result.Save, result.ConfigDirectory)
	return nil
}

func (o *rootOptions) selectPrompter(settings *config.Settings) app.Prompter {
	if o.yes || settings.Prompt.AcceptDefaults {
		return app.NewDefaultsPrompter()
	}
	if o.prompter != nil {
		return o.prompter
	}
	return NewSurveyPrompter()
}

// reportError logs err once at error level.
func reportError(logger zerolog.Logger, err error) {
	if errors.Is(err, terminal.InterruptErr) {
		logger.Error().Msg("Cancelled")
		return
	}
	logger.Error().Err(err).Msg("Error generating templates")
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		if !errors.Is(err, errReported) {
			newPrinter(os.Stdout, os.Stderr, false, !isTerminal(os.Stderr)).printErrorMsg(err.Error())
		}
		os.Exit(1)
	}
}
