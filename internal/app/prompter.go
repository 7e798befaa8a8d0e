package app

import (
	"context"
	"fmt"

	"github.com/tacogips/xenon/internal/template/model"
)

// Prompter asks the user for variable values, one method per prompt kind.
// name identifies the variable and serves as the question when the prompt has no message.
type Prompter interface {
	Text(ctx context.Context, name string, prompt model.TextPrompt) (string, error)
	Confirm(ctx context.Context, name string, prompt model.ConfirmPrompt) (bool, error)
	Select(ctx context.Context, name string, prompt model.SelectPrompt) (model.Primitive, error)
	MultiSelect(ctx context.Context, name string, prompt model.MultiSelectPrompt) ([]model.Primitive, error)
}

// DefaultsPrompter answers every prompt with its declared default without user interaction.
type DefaultsPrompter struct{}

// NewDefaultsPrompter creates a new DefaultsPrompter.
func NewDefaultsPrompter() *DefaultsPrompter {
	return &DefaultsPrompter{}
}

// Text returns the default. A required prompt without a default fails.
func (p *DefaultsPrompter) Text(_ context.Context, name string, prompt model.TextPrompt) (string, error) {
	if prompt.Required && prompt.Default == "" {
		return "", fmt.Errorf("variable %q is required and has no default", name)
	}
	return prompt.Default, nil
}

// Confirm returns the default.
func (p *DefaultsPrompter) Confirm(_ context.Context, _ string, prompt model.ConfirmPrompt) (bool, error) {
	return prompt.Default, nil
}

// Select returns the default, or the first option when none is declared.
func (p *DefaultsPrompter) Select(_ context.Context, name string, prompt model.SelectPrompt) (model.Primitive, error) {
	if prompt.Default != nil {
		return *prompt.Default, nil
	}
	if len(prompt.Options) == 0 {
		return model.Primitive{}, fmt.Errorf("variable %q has no options", name)
	}
	return prompt.Options[0].Value, nil
}

// MultiSelect returns the defaults. A required prompt without defaults fails.
func (p *DefaultsPrompter) MultiSelect(_ context.Context, name string, prompt model.MultiSelectPrompt) ([]model.Primitive, error) {
	if prompt.Required && len(prompt.Defaults) == 0 {
		return nil, fmt.Errorf("variable %q requires at least one selection and has no defaults", name)
	}
	out := make([]model.Primitive, len(prompt.Defaults))
	copy(out, prompt.Defaults)
	return out, nil
}
