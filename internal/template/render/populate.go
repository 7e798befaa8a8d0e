package render

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tacogips/xenon/internal/template/model"
)

// Renderer reads template sources and renders them with an Engine.
type Renderer struct {
	fs     afero.Fs
	engine Engine
	logger zerolog.Logger
}

// NewRenderer creates a new Renderer.
func NewRenderer(fs afero.Fs, engine Engine, logger zerolog.Logger) *Renderer {
	return &Renderer{
		fs:     fs,
		engine: engine,
		logger: logger.With().Str("component", "render").Str("engine", engine.Name()).Logger(),
	}
}

// Populate renders every template of cfg in declaration order.
// The first read or render failure aborts the pass and no partial result is returned.
func (r *Renderer) Populate(ctx context.Context, cfg *model.ConfigWithData) (*model.RenderedConfig, error) {
	rendered := make([]model.RenderedTemplate, 0, len(cfg.Templates))

	for _, tmpl := range cfg.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := r.renderTemplate(cfg, tmpl)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, tmpl.Render(out))
	}

	return cfg.Rendered(rendered), nil
}

func (r *Renderer) renderTemplate(cfg *model.ConfigWithData, tmpl model.PopulatedTemplate) (string, error) {
	sourcePath := ResolveSourcePath(cfg.ConfigDirectory, tmpl.SourcePath)
	log := r.logger.With().Str("template", tmpl.SourcePath).Logger()

	text, err := r.readSource(sourcePath)
	if err != nil {
		return "", err
	}

	for _, name := range MissingGlobals(cfg.GlobalVariables, tmpl.GlobalVariableNames) {
		log.Debug().Str("variable", name).Msg("Referenced global variable is not declared, skipping")
	}

	vars := Flatten(MergeVariables(tmpl.FilledVariables, cfg.GlobalVariables, tmpl.GlobalVariableNames))
	r.warnUnresolved(log, text, vars)

	log.Debug().Int("variables", len(vars)).Msg("Rendering template")
	return r.engine.Render(tmpl.SourcePath, text, vars)
}

func (r *Renderer) readSource(path string) (string, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return "", newRenderError(TemplateReadFailed, "failed to read template", path, err)
	}
	if info.IsDir() {
		return "", newRenderError(TemplateReadFailed, "failed to read template", path, errIsDirectory)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", newRenderError(TemplateReadFailed, "failed to read template", path, err)
	}
	return string(data), nil
}

// warnUnresolved logs placeholders that have no value. Engines that cannot
// list placeholders are skipped.
func (r *Renderer) warnUnresolved(log zerolog.Logger, text string, vars map[string]interface{}) {
	lister, ok := r.engine.(PlaceholderLister)
	if !ok {
		return
	}
	names, err := lister.Placeholders(text)
	if err != nil {
		// the render call reports the parse error
		return
	}
	for _, name := range names {
		if _, ok := vars[name]; !ok {
			log.Warn().Str("placeholder", name).Msg("Placeholder has no value and renders empty")
		}
	}
}

// ResolveSourcePath joins a relative template path onto the config directory.
// Absolute paths are returned unchanged.
func ResolveSourcePath(configDir, sourcePath string) string {
	if filepath.IsAbs(sourcePath) {
		return filepath.Clean(sourcePath)
	}
	return filepath.Join(configDir, sourcePath)
}
