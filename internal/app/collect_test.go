package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/xenon/internal/template/model"
)

// scriptedPrompter answers prompts from a fixed script keyed by variable name
// and records the order in which variables were asked.
type scriptedPrompter struct {
	answers map[string]interface{}
	fail    map[string]error
	asked   []string
}

func newScriptedPrompter(answers map[string]interface{}) *scriptedPrompter {
	return &scriptedPrompter{answers: answers, fail: map[string]error{}}
}

func (p *scriptedPrompter) next(name string) (interface{}, error) {
	p.asked = append(p.asked, name)
	if err, ok := p.fail[name]; ok {
		return nil, err
	}
	v, ok := p.answers[name]
	if !ok {
		return nil, errors.New("no scripted answer for " + name)
	}
	return v, nil
}

func (p *scriptedPrompter) Text(_ context.Context, name string, _ model.TextPrompt) (string, error) {
	v, err := p.next(name)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, name string, _ model.ConfirmPrompt) (bool, error) {
	v, err := p.next(name)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (p *scriptedPrompter) Select(_ context.Context, name string, _ model.SelectPrompt) (model.Primitive, error) {
	v, err := p.next(name)
	if err != nil {
		return model.Primitive{}, err
	}
	return model.MustPrimitive(v), nil
}

func (p *scriptedPrompter) MultiSelect(_ context.Context, name string, _ model.MultiSelectPrompt) ([]model.Primitive, error) {
	v, err := p.next(name)
	if err != nil {
		return nil, err
	}
	var out []model.Primitive
	for _, item := range v.([]interface{}) {
		out = append(out, model.MustPrimitive(item))
	}
	return out, nil
}

func allKindSpecs() []model.VariableSpec {
	return []model.VariableSpec{
		{Name: "name", Prompt: model.TextPrompt{Message: "Name?"}},
		{Name: "docker", Prompt: model.ConfirmPrompt{Message: "Docker?"}},
		{Name: "license", Prompt: model.SelectPrompt{Options: []model.Option{{Value: model.MustPrimitive("MIT")}}}},
		{Name: "features", Prompt: model.MultiSelectPrompt{Options: []model.Option{{Value: model.MustPrimitive("auth")}, {Value: model.MustPrimitive("db")}}}},
	}
}

func TestCollectVariables(t *testing.T) {
	p := newScriptedPrompter(map[string]interface{}{
		"name":     "World",
		"docker":   true,
		"license":  "MIT",
		"features": []interface{}{"auth", "db"},
	})

	filled, err := CollectVariables(context.Background(), p, allKindSpecs())
	require.NoError(t, err)
	require.Len(t, filled, 4)

	assert.Equal(t, []string{"name", "docker", "license", "features"}, p.asked)
	assert.Equal(t, "name", filled[0].Name)
	assert.Equal(t, "World", filled[0].Value.Raw())
	assert.Equal(t, true, filled[1].Value.Raw())
	assert.Equal(t, "MIT", filled[2].Value.Raw())
	assert.Equal(t, []interface{}{"auth", "db"}, filled[3].Value.Raw())

	for _, fv := range filled {
		assert.Equal(t, fv.Kind(), fv.Value.Kind())
	}
}

func TestCollectVariables_Empty(t *testing.T) {
	p := newScriptedPrompter(nil)
	filled, err := CollectVariables(context.Background(), p, nil)
	require.NoError(t, err)
	assert.NotNil(t, filled)
	assert.Empty(t, filled)
	assert.Empty(t, p.asked)
}

func TestCollectVariables_PromptErrorAborts(t *testing.T) {
	p := newScriptedPrompter(map[string]interface{}{"name": "World"})
	p.fail["docker"] = errors.New("interrupt")

	_, err := CollectVariables(context.Background(), p, allKindSpecs())
	require.Error(t, err)
	assert.True(t, IsPromptError(err))
	assert.Contains(t, err.Error(), "docker")
	assert.Equal(t, []string{"name", "docker"}, p.asked, "no prompts after the failure")
}

func TestCollectVariables_UnknownPrompt(t *testing.T) {
	p := newScriptedPrompter(nil)
	_, err := CollectVariables(context.Background(), p, []model.VariableSpec{{Name: "x"}})
	require.Error(t, err)
	assert.True(t, IsPromptError(err))
}

func TestPromptUserForData(t *testing.T) {
	p := newScriptedPrompter(map[string]interface{}{
		"author": "Jane",
		"title":  "Intro",
	})

	cfg := &model.ResolvedConfig{
		RawConfig: model.RawConfig{
			GlobalVariables: []model.VariableSpec{{Name: "author", Prompt: model.TextPrompt{}}},
			Templates: []model.TemplateSpec{
				{SourcePath: "a.tmpl", LocalVariables: []model.VariableSpec{{Name: "title", Prompt: model.TextPrompt{}}}},
				{SourcePath: "b.tmpl"},
			},
		},
		ConfigDirectory: "/project",
	}

	got, err := PromptUserForData(context.Background(), p, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"author", "title"}, p.asked, "globals first, each prompted once")
	assert.Equal(t, "/project", got.ConfigDirectory)
	require.Len(t, got.GlobalVariables, 1)
	require.Len(t, got.Templates, 2)
	assert.Len(t, got.Templates[0].FilledVariables, 1)
	assert.NotNil(t, got.Templates[1].FilledVariables)
	assert.Empty(t, got.Templates[1].FilledVariables)
}

func TestPromptUserForData_NoGlobals(t *testing.T) {
	p := newScriptedPrompter(nil)
	cfg := &model.ResolvedConfig{
		RawConfig: model.RawConfig{Templates: []model.TemplateSpec{{SourcePath: "a.tmpl"}}},
	}

	got, err := PromptUserForData(context.Background(), p, cfg)
	require.NoError(t, err)
	assert.NotNil(t, got.GlobalVariables)
	assert.Empty(t, got.GlobalVariables)
	assert.Empty(t, p.asked)
}

func TestDefaultsPrompter(t *testing.T) {
	ctx := context.Background()
	p := NewDefaultsPrompter()

	s, err := p.Text(ctx, "name", model.TextPrompt{Default: "World"})
	require.NoError(t, err)
	assert.Equal(t, "World", s)

	_, err = p.Text(ctx, "name", model.TextPrompt{Required: true})
	assert.Error(t, err)

	b, err := p.Confirm(ctx, "docker", model.ConfirmPrompt{Default: true})
	require.NoError(t, err)
	assert.True(t, b)

	options := []model.Option{{Value: model.MustPrimitive("MIT")}, {Value: model.MustPrimitive("Apache-2.0")}}
	v, err := p.Select(ctx, "license", model.SelectPrompt{Options: options})
	require.NoError(t, err)
	assert.Equal(t, "MIT", v.Value())

	def := model.MustPrimitive("Apache-2.0")
	v, err = p.Select(ctx, "license", model.SelectPrompt{Options: options, Default: &def})
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0", v.Value())

	vs, err := p.MultiSelect(ctx, "features", model.MultiSelectPrompt{Defaults: []model.Primitive{model.MustPrimitive("auth")}})
	require.NoError(t, err)
	assert.Len(t, vs, 1)

	_, err = p.MultiSelect(ctx, "features", model.MultiSelectPrompt{Required: true})
	assert.Error(t, err)
}
