package generator

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tacogips/xenon/internal/template/model"
)

// Saver writes rendered templates to their output locations.
type Saver struct {
	writer Writer
	logger zerolog.Logger
	dryRun bool
}

// SaverOption configures a Saver.
type SaverOption func(*Saver)

// WithDryRun makes the Saver record planned writes without touching the filesystem.
func WithDryRun(dryRun bool) SaverOption {
	return func(s *Saver) {
		s.dryRun = dryRun
	}
}

// NewSaver creates a new Saver writing through writer.
func NewSaver(writer Writer, logger zerolog.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		writer: writer,
		logger: logger.With().Str("component", "generator").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlannedFile describes one output file of a save pass.
type PlannedFile struct {
	// SourcePath is the template the file is rendered from.
	SourcePath string
	// Path is the absolute output file path.
	Path string
	// Size is the rendered content length in bytes.
	Size int
	// Exists reports whether a file was already present at Path before the pass.
	Exists bool
}

// SaveResult contains save statistics.
type SaveResult struct {
	// FilesCreated is the number of new files created.
	FilesCreated int
	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int
	// Files lists every output file in template order.
	Files []PlannedFile
	// Directories lists the output directories, deduplicated, in first-use order.
	Directories []string
	// DryRun reports whether the pass only planned writes.
	DryRun bool
}

// Save writes every rendered template in declaration order. For each template
// it creates the output directory, writes the file and logs the output path.
// The first failure stops the pass; files already written stay on disk.
func (s *Saver) Save(ctx context.Context, cfg *model.RenderedConfig) (*SaveResult, error) {
	result := &SaveResult{
		Files:       []PlannedFile{},
		Directories: []string{},
		DryRun:      s.dryRun,
	}
	seenDirs := make(map[string]bool)

	for _, tmpl := range cfg.Templates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		path, err := OutputPath(cfg.ConfigDirectory, tmpl.SourcePath, tmpl.OutputPath)
		if err != nil {
			return result, err
		}
		dir := filepath.Dir(path)
		exists := s.writer.Exists(path)

		if !seenDirs[dir] {
			seenDirs[dir] = true
			result.Directories = append(result.Directories, dir)
		}

		planned := PlannedFile{
			SourcePath: tmpl.SourcePath,
			Path:       path,
			Size:       len(tmpl.RenderedText),
			Exists:     exists,
		}

		if s.dryRun {
			s.logger.Debug().Str("path", path).Bool("exists", exists).Msg("Dry run: would write file")
		} else {
			if err := s.writer.CreateDir(dir); err != nil {
				return result, newGeneratorError(GeneratorWriteFailed, "failed to create output directory", path, err)
			}
			if err := s.writer.WriteFile(path, []byte(tmpl.RenderedText)); err != nil {
				return result, err
			}
			s.logger.Info().Str("path", path).Msgf("Saved %s", path)
		}

		result.Files = append(result.Files, planned)
		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
	}

	s.logger.Debug().
		Int("created", result.FilesCreated).
		Int("overwritten", result.FilesOverwritten).
		Bool("dryRun", s.dryRun).
		Msg("Save complete")

	return result, nil
}
