package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/xenon/internal/template/model"
)

func newTestRenderer(t *testing.T, fs afero.Fs) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewRenderer(fs, NewMustacheEngine(), logger), &buf
}

func writeTemplate(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestRenderer_Populate_HelloWorld(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/hello.txt.tmpl", "Hello, {{name}}!")
	r, _ := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates: []model.PopulatedTemplate{{
			SourcePath:      "hello.txt.tmpl",
			OutputPath:      "out",
			FilledVariables: []model.FilledVariable{textVar("name", "World")},
		}},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, got.Templates, 1)
	assert.Equal(t, "Hello, World!", got.Templates[0].RenderedText)
	assert.Equal(t, "out", got.Templates[0].OutputPath)
	assert.Equal(t, "/project", got.ConfigDirectory)
}

func TestRenderer_Populate_LocalShadowsGlobal(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/a.tmpl", "{{name}} by {{author}}")
	writeTemplate(t, fs, "/project/b.tmpl", "{{name}}")
	r, _ := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{textVar("name", "global"), textVar("author", "Jane")},
		Templates: []model.PopulatedTemplate{
			{
				SourcePath:          "a.tmpl",
				FilledVariables:     []model.FilledVariable{textVar("name", "local")},
				GlobalVariableNames: []string{"name", "author"},
			},
			{
				SourcePath:          "b.tmpl",
				FilledVariables:     []model.FilledVariable{},
				GlobalVariableNames: []string{"name"},
			},
		},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "local by Jane", got.Templates[0].RenderedText)
	assert.Equal(t, "global", got.Templates[1].RenderedText)
}

func TestRenderer_Populate_MissingGlobalIsLogged(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/a.tmpl", "[{{ghost}}]")
	r, logs := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates: []model.PopulatedTemplate{{
			SourcePath:          "a.tmpl",
			FilledVariables:     []model.FilledVariable{},
			GlobalVariableNames: []string{"ghost"},
		}},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "[]", got.Templates[0].RenderedText)
	assert.Contains(t, logs.String(), "Referenced global variable is not declared")
	assert.Contains(t, logs.String(), "Placeholder has no value")
	assert.Contains(t, logs.String(), `"placeholder":"ghost"`)
}

func TestRenderer_Populate_GoTemplateMissingGlobal(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/a.tmpl", "[{{.ghost}}] {{.name}}")
	var logs bytes.Buffer
	r := NewRenderer(fs, NewGoTemplateEngine(), zerolog.New(&logs).Level(zerolog.DebugLevel))

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates: []model.PopulatedTemplate{{
			SourcePath:          "a.tmpl",
			FilledVariables:     []model.FilledVariable{textVar("name", "go")},
			GlobalVariableNames: []string{"ghost"},
		}},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "[] go", got.Templates[0].RenderedText)
	assert.Contains(t, logs.String(), `"placeholder":"ghost"`)
}

func TestRenderer_Populate_ReadError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/ok.tmpl", "ok")
	r, _ := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates: []model.PopulatedTemplate{
			{SourcePath: "ok.tmpl", FilledVariables: []model.FilledVariable{}},
			{SourcePath: "missing.tmpl", FilledVariables: []model.FilledVariable{}},
		},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, IsTemplateReadError(err))

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "/project/missing.tmpl", renderErr.Path)
}

func TestRenderer_Populate_DirectoryIsReadError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project/templates", 0o755))
	r, _ := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates:       []model.PopulatedTemplate{{SourcePath: "templates", FilledVariables: []model.FilledVariable{}}},
	}

	_, err := r.Populate(context.Background(), cfg)
	assert.True(t, IsTemplateReadError(err))
}

func TestRenderer_Populate_AbsoluteSourcePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/shared/license.tmpl", "MIT")
	r, _ := newTestRenderer(t, fs)

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates:       []model.PopulatedTemplate{{SourcePath: "/shared/license.tmpl", FilledVariables: []model.FilledVariable{}}},
	}

	got, err := r.Populate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "MIT", got.Templates[0].RenderedText)
}

func TestRenderer_Populate_Canceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTemplate(t, fs, "/project/a.tmpl", "a")
	r, _ := newTestRenderer(t, fs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &model.ConfigWithData{
		ConfigDirectory: "/project",
		GlobalVariables: []model.FilledVariable{},
		Templates:       []model.PopulatedTemplate{{SourcePath: "a.tmpl", FilledVariables: []model.FilledVariable{}}},
	}

	_, err := r.Populate(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveSourcePath(t *testing.T) {
	assert.Equal(t, "/project/templates/a.tmpl", ResolveSourcePath("/project", "templates/a.tmpl"))
	assert.Equal(t, "/abs/a.tmpl", ResolveSourcePath("/project", "/abs/a.tmpl"))
	assert.Equal(t, "/a.tmpl", ResolveSourcePath("/project", "../a.tmpl"))
}
