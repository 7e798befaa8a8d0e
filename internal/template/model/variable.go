package model

import "fmt"

// Prompt is the kind-specific configuration of a variable prompt.
// It is implemented only by TextPrompt, ConfirmPrompt, SelectPrompt and MultiSelectPrompt.
type Prompt interface {
	// Kind returns the prompt kind this configuration belongs to.
	Kind() PromptKind
	// PromptMessage returns the question shown to the user.
	PromptMessage() string

	isPrompt()
}

// TextPrompt asks for a string.
type TextPrompt struct {
	// Message is the question shown to the user.
	Message string
	// Default is used when the user submits an empty answer.
	Default string
	// Placeholder is shown as help text.
	Placeholder string
	// Required rejects empty answers.
	Required bool
	// Pattern is an optional regular expression the answer must match.
	Pattern string
}

// ConfirmPrompt asks a yes/no question.
type ConfirmPrompt struct {
	// Message is the question shown to the user.
	Message string
	// Default is the preselected answer.
	Default bool
}

// SelectPrompt asks for exactly one option.
type SelectPrompt struct {
	// Message is the question shown to the user.
	Message string
	// Options are the available choices (at least one).
	Options []Option
	// Default is the preselected option value, if any.
	Default *Primitive
}

// MultiSelectPrompt asks for any number of options.
type MultiSelectPrompt struct {
	// Message is the question shown to the user.
	Message string
	// Options are the available choices (at least one).
	Options []Option
	// Defaults are the preselected option values.
	Defaults []Primitive
	// Required rejects an empty selection.
	Required bool
}

func (TextPrompt) Kind() PromptKind        { return PromptText }
func (ConfirmPrompt) Kind() PromptKind     { return PromptConfirm }
func (SelectPrompt) Kind() PromptKind      { return PromptSelect }
func (MultiSelectPrompt) Kind() PromptKind { return PromptMultiSelect }

func (p TextPrompt) PromptMessage() string        { return p.Message }
func (p ConfirmPrompt) PromptMessage() string     { return p.Message }
func (p SelectPrompt) PromptMessage() string      { return p.Message }
func (p MultiSelectPrompt) PromptMessage() string { return p.Message }

func (TextPrompt) isPrompt()        {}
func (ConfirmPrompt) isPrompt()     {}
func (SelectPrompt) isPrompt()      {}
func (MultiSelectPrompt) isPrompt() {}

// VariableSpec declares a variable that must be filled by the user.
type VariableSpec struct {
	// Name is the placeholder name, unique within its scope.
	Name string
	// Prompt describes how the value is asked for.
	Prompt Prompt
}

// Kind returns the prompt kind of the variable.
func (v VariableSpec) Kind() PromptKind {
	if v.Prompt == nil {
		return ""
	}
	return v.Prompt.Kind()
}

// Message returns the prompt message, falling back to the variable name.
func (v VariableSpec) Message() string {
	if v.Prompt != nil && v.Prompt.PromptMessage() != "" {
		return v.Prompt.PromptMessage()
	}
	return v.Name
}

// Value is the answer to a prompt.
// It is implemented only by TextValue, ConfirmValue, SelectValue and MultiSelectValue.
type Value interface {
	// Kind returns the prompt kind that produces this value.
	Kind() PromptKind
	// Raw returns the value in the form handed to template engines.
	Raw() interface{}

	isValue()
}

// TextValue is the answer to a text prompt.
type TextValue string

// ConfirmValue is the answer to a confirm prompt.
type ConfirmValue bool

// SelectValue is the answer to a select prompt.
type SelectValue struct {
	Primitive
}

// MultiSelectValue is the answer to a multiselect prompt.
type MultiSelectValue []Primitive

func (TextValue) Kind() PromptKind        { return PromptText }
func (ConfirmValue) Kind() PromptKind     { return PromptConfirm }
func (SelectValue) Kind() PromptKind      { return PromptSelect }
func (MultiSelectValue) Kind() PromptKind { return PromptMultiSelect }

func (v TextValue) Raw() interface{}    { return string(v) }
func (v ConfirmValue) Raw() interface{} { return bool(v) }
func (v SelectValue) Raw() interface{}  { return v.Primitive.Value() }

// Raw returns the selected values as a []interface{}.
func (v MultiSelectValue) Raw() interface{} {
	out := make([]interface{}, len(v))
	for i, p := range v {
		out[i] = p.Value()
	}
	return out
}

func (TextValue) isValue()        {}
func (ConfirmValue) isValue()     {}
func (SelectValue) isValue()      {}
func (MultiSelectValue) isValue() {}

// FilledVariable is a VariableSpec with the value provided by the user.
type FilledVariable struct {
	VariableSpec
	// Value is the user's answer. Its kind matches the spec's prompt kind.
	Value Value
}

// NewFilledVariable pairs a spec with a value, rejecting mismatched kinds.
func NewFilledVariable(spec VariableSpec, value Value) (FilledVariable, error) {
	if value == nil {
		return FilledVariable{}, fmt.Errorf("variable %q: value cannot be nil", spec.Name)
	}
	if spec.Kind() != value.Kind() {
		return FilledVariable{}, fmt.Errorf("variable %q: %s value does not match %s prompt",
			spec.Name, value.Kind(), spec.Kind())
	}
	return FilledVariable{VariableSpec: spec, Value: value}, nil
}
