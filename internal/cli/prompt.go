package cli

import (
	"context"
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/xenon/internal/template/model"
)

// SurveyPrompter asks for variable values on the terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter. opts are passed to every survey.AskOne call.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Text prompts for a text variable.
func (p *SurveyPrompter) Text(ctx context.Context, name string, prompt model.TextPrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	q := &survey.Input{
		Message: questionFor(name, prompt.Message, prompt.Required),
		Default: prompt.Default,
		Help:    textHelp(prompt),
	}

	var validators []survey.Validator
	if prompt.Required {
		validators = append(validators, survey.Required)
	}
	if prompt.Pattern != "" {
		validators = append(validators, matchPattern(prompt.Pattern, "value must match pattern: "+prompt.Pattern))
	}

	var result string
	if err := survey.AskOne(q, &result, p.askOpts(validators)...); err != nil {
		return "", err
	}
	return result, nil
}

// Confirm prompts for a yes/no variable.
func (p *SurveyPrompter) Confirm(ctx context.Context, name string, prompt model.ConfirmPrompt) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	q := &survey.Confirm{
		Message: questionFor(name, prompt.Message, false),
		Default: prompt.Default,
	}

	var result bool
	if err := survey.AskOne(q, &result, p.opts...); err != nil {
		return false, err
	}
	return result, nil
}

// Select prompts for a single choice.
func (p *SurveyPrompter) Select(ctx context.Context, name string, prompt model.SelectPrompt) (model.Primitive, error) {
	if err := ctx.Err(); err != nil {
		return model.Primitive{}, err
	}
	if len(prompt.Options) == 0 {
		return model.Primitive{}, fmt.Errorf("variable %q has no options", name)
	}

	q := &survey.Select{
		Message:     questionFor(name, prompt.Message, false),
		Options:     optionLabels(prompt.Options),
		Description: optionHints(prompt.Options),
	}
	if prompt.Default != nil {
		if i := model.IndexOfOption(prompt.Options, *prompt.Default); i >= 0 {
			q.Default = i
		}
	}

	var index int
	if err := survey.AskOne(q, &index, p.opts...); err != nil {
		return model.Primitive{}, err
	}
	return prompt.Options[index].Value, nil
}

// MultiSelect prompts for any number of choices.
func (p *SurveyPrompter) MultiSelect(ctx context.Context, name string, prompt model.MultiSelectPrompt) ([]model.Primitive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(prompt.Options) == 0 {
		return nil, fmt.Errorf("variable %q has no options", name)
	}

	q := &survey.MultiSelect{
		Message:     questionFor(name, prompt.Message, prompt.Required),
		Options:     optionLabels(prompt.Options),
		Description: optionHints(prompt.Options),
	}
	if defaults := defaultIndices(prompt.Options, prompt.Defaults); len(defaults) > 0 {
		q.Default = defaults
	}

	var validators []survey.Validator
	if prompt.Required {
		validators = append(validators, survey.MinItems(1))
	}

	var indices []int
	if err := survey.AskOne(q, &indices, p.askOpts(validators)...); err != nil {
		return nil, err
	}
	return selectedValues(prompt.Options, indices), nil
}

func (p *SurveyPrompter) askOpts(validators []survey.Validator) []survey.AskOpt {
	opts := append([]survey.AskOpt{}, p.opts...)
	if len(validators) > 0 {
		opts = append(opts, survey.WithValidator(survey.ComposeValidators(validators...)))
	}
	return opts
}

// questionFor builds the prompt message, falling back to the variable name.
func questionFor(name, message string, required bool) string {
	q := message
	if q == "" {
		q = name
	}
	if required {
		q += " (required)"
	}
	return q
}

func textHelp(prompt model.TextPrompt) string {
	help := ""
	if prompt.Placeholder != "" {
		help = "e.g. " + prompt.Placeholder
	}
	if prompt.Pattern != "" {
		if help != "" {
			help += ", "
		}
		help += "must match " + prompt.Pattern
	}
	return help
}

func optionLabels(options []model.Option) []string {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Display()
	}
	return labels
}

// optionHints returns a survey description func showing option hints.
func optionHints(options []model.Option) func(value string, index int) string {
	return func(_ string, index int) string {
		if index < 0 || index >= len(options) {
			return ""
		}
		return options[index].Hint
	}
}

func defaultIndices(options []model.Option, defaults []model.Primitive) []int {
	var indices []int
	for _, d := range defaults {
		if i := model.IndexOfOption(options, d); i >= 0 {
			indices = append(indices, i)
		}
	}
	return indices
}

func selectedValues(options []model.Option, indices []int) []model.Primitive {
	values := make([]model.Primitive, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(options) {
			values = append(values, options[i].Value)
		}
	}
	return values
}

// matchPattern creates a survey validator for regex pattern matching.
func matchPattern(pattern string, message string) survey.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(val interface{}) error {
			return fmt.Errorf("invalid pattern: %s", pattern)
		}
	}
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
