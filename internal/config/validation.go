package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tacogips/xenon/internal/template/model"
	"github.com/tacogips/xenon/internal/template/render"
)

// variableNamePattern matches names usable as template placeholders.
var variableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// decoder converts the file schema into the model, reporting the first structural problem.
type decoder struct {
	path string
}

func (d *decoder) fieldError(field, format string, args ...interface{}) *ConfigError {
	return NewConfigErrorWithField(ConfigValidationFailed, d.path, field, fmt.Sprintf(format, args...))
}

func (d *decoder) decodeConfig(fc *fileConfig) (*model.RawConfig, error) {
	engine := strings.TrimSpace(fc.Engine)
	if engine != "" && !render.IsEngine(engine) {
		return nil, d.fieldError("engine", "unknown template engine %q (supported: %s)",
			engine, strings.Join(render.EngineNames(), ", "))
	}

	globals, err := d.decodeVariables("globalVariables", fc.GlobalVariables)
	if err != nil {
		return nil, err
	}

	if len(fc.Templates) == 0 {
		return nil, d.fieldError("templates", "at least one template is required")
	}

	templates := make([]model.TemplateSpec, 0, len(fc.Templates))
	for i, ft := range fc.Templates {
		field := fmt.Sprintf("templates[%d]", i)

		if strings.TrimSpace(ft.SourcePath) == "" {
			return nil, d.fieldError(field+".sourcePath", "template source path is required")
		}

		locals, err := d.decodeVariables(field+".variables", ft.Variables)
		if err != nil {
			return nil, err
		}

		for j, name := range ft.UseGlobalVariables {
			if strings.TrimSpace(name) == "" {
				return nil, d.fieldError(fmt.Sprintf("%s.useGlobalVariables[%d]", field, j),
					"global variable name cannot be empty")
			}
		}

		templates = append(templates, model.TemplateSpec{
			SourcePath:          ft.SourcePath,
			OutputPath:          ft.OutputPath,
			LocalVariables:      locals,
			GlobalVariableNames: ft.UseGlobalVariables,
		})
	}

	return &model.RawConfig{
		Engine:          engine,
		GlobalVariables: globals,
		Templates:       templates,
	}, nil
}

// decodeVariables converts one scope of variable declarations. Names must be unique within the scope.
func (d *decoder) decodeVariables(scope string, vars []fileVariable) ([]model.VariableSpec, error) {
	if len(vars) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(vars))
	specs := make([]model.VariableSpec, 0, len(vars))

	for i, fv := range vars {
		field := fmt.Sprintf("%s[%d]", scope, i)

		if !variableNamePattern.MatchString(fv.Name) {
			return nil, d.fieldError(field+".name",
				"variable name %q must start with a letter or underscore and contain only letters, digits, underscores, and hyphens", fv.Name)
		}
		if seen[fv.Name] {
			return nil, d.fieldError(field+".name", "duplicate variable name %q", fv.Name)
		}
		seen[fv.Name] = true

		prompt, err := d.decodePrompt(field, model.PromptKind(strings.ToLower(strings.TrimSpace(fv.Type))), fv.Prompt)
		if err != nil {
			return nil, err
		}

		specs = append(specs, model.VariableSpec{Name: fv.Name, Prompt: prompt})
	}

	return specs, nil
}

func (d *decoder) decodePrompt(field string, kind model.PromptKind, fp filePrompt) (model.Prompt, error) {
	switch kind {
	case model.PromptText:
		return d.decodeTextPrompt(field, fp)
	case model.PromptConfirm:
		return d.decodeConfirmPrompt(field, fp)
	case model.PromptSelect:
		return d.decodeSelectPrompt(field, fp)
	case model.PromptMultiSelect:
		return d.decodeMultiSelectPrompt(field, fp)
	default:
		kinds := make([]string, 0, 4)
		for _, k := range model.PromptKinds() {
			kinds = append(kinds, k.String())
		}
		return nil, d.fieldError(field+".type", "invalid variable type %q (must be one of %s)",
			kind, strings.Join(kinds, ", "))
	}
}

func (d *decoder) decodeTextPrompt(field string, fp filePrompt) (model.Prompt, error) {
	if len(fp.Options) > 0 {
		return nil, d.fieldError(field+".prompt.options", "options can only be specified for select and multiselect variables")
	}

	p := model.TextPrompt{
		Message:     fp.Message,
		Placeholder: fp.Placeholder,
		Required:    fp.Required,
		Pattern:     fp.Pattern,
	}

	if fp.Default != nil {
		prim, err := model.NewPrimitive(fp.Default)
		if err != nil {
			return nil, d.fieldError(field+".prompt.default", "default value type mismatch: %v", err)
		}
		p.Default = prim.String()
	}

	if p.Pattern != "" {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, d.fieldError(field+".prompt.pattern", "invalid regex pattern: %v", err)
		}
		if p.Default != "" && !re.MatchString(p.Default) {
			return nil, d.fieldError(field+".prompt.default", "default value %q does not match pattern %q", p.Default, p.Pattern)
		}
	}

	return p, nil
}

func (d *decoder) decodeConfirmPrompt(field string, fp filePrompt) (model.Prompt, error) {
	if len(fp.Options) > 0 {
		return nil, d.fieldError(field+".prompt.options", "options can only be specified for select and multiselect variables")
	}
	if fp.Pattern != "" {
		return nil, d.fieldError(field+".prompt.pattern", "pattern can only be specified for text variables")
	}

	p := model.ConfirmPrompt{Message: fp.Message}
	if fp.Default != nil {
		b, ok := fp.Default.(bool)
		if !ok {
			return nil, d.fieldError(field+".prompt.default", "default value type mismatch: expected bool, got %T", fp.Default)
		}
		p.Default = b
	}
	return p, nil
}

func (d *decoder) decodeSelectPrompt(field string, fp filePrompt) (model.Prompt, error) {
	options, err := d.decodeOptions(field, fp)
	if err != nil {
		return nil, err
	}

	p := model.SelectPrompt{Message: fp.Message, Options: options}
	if fp.Default != nil {
		prim, err := model.NewPrimitive(fp.Default)
		if err != nil {
			return nil, d.fieldError(field+".prompt.default", "default value type mismatch: %v", err)
		}
		if model.IndexOfOption(options, prim) < 0 {
			return nil, d.fieldError(field+".prompt.default", "default value %q is not one of the options", prim.String())
		}
		p.Default = &prim
	}
	return p, nil
}

func (d *decoder) decodeMultiSelectPrompt(field string, fp filePrompt) (model.Prompt, error) {
	options, err := d.decodeOptions(field, fp)
	if err != nil {
		return nil, err
	}

	p := model.MultiSelectPrompt{Message: fp.Message, Options: options, Required: fp.Required}
	if fp.Default == nil {
		return p, nil
	}

	raw, ok := fp.Default.([]interface{})
	if !ok {
		raw = []interface{}{fp.Default}
	}
	for i, v := range raw {
		prim, err := model.NewPrimitive(v)
		if err != nil {
			return nil, d.fieldError(fmt.Sprintf("%s.prompt.default[%d]", field, i), "default value type mismatch: %v", err)
		}
		if model.IndexOfOption(options, prim) < 0 {
			return nil, d.fieldError(fmt.Sprintf("%s.prompt.default[%d]", field, i),
				"default value %q is not one of the options", prim.String())
		}
		p.Defaults = append(p.Defaults, prim)
	}
	return p, nil
}

func (d *decoder) decodeOptions(field string, fp filePrompt) ([]model.Option, error) {
	if fp.Pattern != "" {
		return nil, d.fieldError(field+".prompt.pattern", "pattern can only be specified for text variables")
	}
	if len(fp.Options) == 0 {
		return nil, d.fieldError(field+".prompt.options", "at least one option is required")
	}

	options := make([]model.Option, 0, len(fp.Options))
	for i, fo := range fp.Options {
		prim, err := model.NewPrimitive(fo.Value)
		if err != nil {
			return nil, d.fieldError(fmt.Sprintf("%s.prompt.options[%d].value", field, i), "invalid option value: %v", err)
		}
		if model.IndexOfOption(options, prim) >= 0 {
			return nil, d.fieldError(fmt.Sprintf("%s.prompt.options[%d].value", field, i), "duplicate option value %q", prim.String())
		}
		options = append(options, model.Option{Value: prim, Label: fo.Label, Hint: fo.Hint})
	}
	return options, nil
}
