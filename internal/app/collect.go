package app

import (
	"context"
	"fmt"

	"github.com/tacogips/xenon/internal/template/model"
)

// CollectVariables prompts for each spec in order and returns one filled
// variable per spec in the same order. The first failed prompt aborts the collection.
func CollectVariables(ctx context.Context, p Prompter, specs []model.VariableSpec) ([]model.FilledVariable, error) {
	filled := make([]model.FilledVariable, 0, len(specs))

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := promptFor(ctx, p, spec)
		if err != nil {
			return nil, NewPromptError(fmt.Sprintf("failed to prompt for variable %q", spec.Name), err)
		}

		fv, err := model.NewFilledVariable(spec, value)
		if err != nil {
			return nil, NewPromptError(fmt.Sprintf("invalid answer for variable %q", spec.Name), err)
		}
		filled = append(filled, fv)
	}

	return filled, nil
}

func promptFor(ctx context.Context, p Prompter, spec model.VariableSpec) (model.Value, error) {
	switch prompt := spec.Prompt.(type) {
	case model.TextPrompt:
		s, err := p.Text(ctx, spec.Name, prompt)
		if err != nil {
			return nil, err
		}
		return model.TextValue(s), nil
	case model.ConfirmPrompt:
		b, err := p.Confirm(ctx, spec.Name, prompt)
		if err != nil {
			return nil, err
		}
		return model.ConfirmValue(b), nil
	case model.SelectPrompt:
		v, err := p.Select(ctx, spec.Name, prompt)
		if err != nil {
			return nil, err
		}
		return model.SelectValue{Primitive: v}, nil
	case model.MultiSelectPrompt:
		vs, err := p.MultiSelect(ctx, spec.Name, prompt)
		if err != nil {
			return nil, err
		}
		return model.MultiSelectValue(vs), nil
	default:
		return nil, fmt.Errorf("unsupported prompt %T", spec.Prompt)
	}
}

// PromptUserForData fills the global variables once, then the local variables
// of each template in declaration order. Templates without local variables
// issue no prompts.
func PromptUserForData(ctx context.Context, p Prompter, cfg *model.ResolvedConfig) (*model.ConfigWithData, error) {
	var globals []model.FilledVariable
	if len(cfg.GlobalVariables) > 0 {
		var err error
		globals, err = CollectVariables(ctx, p, cfg.GlobalVariables)
		if err != nil {
			return nil, err
		}
	}

	templates := make([]model.PopulatedTemplate, 0, len(cfg.Templates))
	for _, tmpl := range cfg.Templates {
		var locals []model.FilledVariable
		if len(tmpl.LocalVariables) > 0 {
			var err error
			locals, err = CollectVariables(ctx, p, tmpl.LocalVariables)
			if err != nil {
				return nil, err
			}
		}
		templates = append(templates, tmpl.Populate(locals))
	}

	return cfg.WithData(globals, templates), nil
}
