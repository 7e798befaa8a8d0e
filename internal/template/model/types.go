package model

import (
	"fmt"
	"strconv"
)

// Config file names searched in a config directory, in precedence order.
const (
	// ConfigFileYAML is the preferred configuration file name.
	ConfigFileYAML = "xenon.config.yaml"
	// ConfigFileYML is the short-extension YAML configuration file name.
	ConfigFileYML = "xenon.config.yml"
	// ConfigFileTOML is the TOML configuration file name.
	ConfigFileTOML = "xenon.config.toml"
	// ConfigFileJSON is the JSON configuration file name.
	ConfigFileJSON = "xenon.config.json"
)

// ConfigFileNames returns the supported configuration file names in precedence order.
func ConfigFileNames() []string {
	return []string{ConfigFileYAML, ConfigFileYML, ConfigFileTOML, ConfigFileJSON}
}

// PromptKind represents the interaction type of a variable.
type PromptKind string

const (
	// PromptText asks for free-form text.
	PromptText PromptKind = "text"
	// PromptConfirm asks a yes/no question.
	PromptConfirm PromptKind = "confirm"
	// PromptSelect asks the user to pick one option.
	PromptSelect PromptKind = "select"
	// PromptMultiSelect asks the user to pick any number of options.
	PromptMultiSelect PromptKind = "multiselect"
)

// PromptKinds returns all supported prompt kinds.
func PromptKinds() []PromptKind {
	return []PromptKind{PromptText, PromptConfirm, PromptSelect, PromptMultiSelect}
}

// Valid reports whether k is a known prompt kind.
func (k PromptKind) Valid() bool {
	switch k {
	case PromptText, PromptConfirm, PromptSelect, PromptMultiSelect:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (k PromptKind) String() string {
	return string(k)
}

// Primitive is a scalar option value: a string, an int64, a float64 or a bool.
// The zero Primitive holds no value.
type Primitive struct {
	value interface{}
}

// NewPrimitive wraps v as a Primitive.
// All integer types are normalized to int64 and float32 to float64.
func NewPrimitive(v interface{}) (Primitive, error) {
	switch val := v.(type) {
	case string, bool, int64, float64:
		return Primitive{value: val}, nil
	case int:
		return Primitive{value: int64(val)}, nil
	case int8:
		return Primitive{value: int64(val)}, nil
	case int16:
		return Primitive{value: int64(val)}, nil
	case int32:
		return Primitive{value: int64(val)}, nil
	case uint:
		return Primitive{value: int64(val)}, nil
	case uint8:
		return Primitive{value: int64(val)}, nil
	case uint16:
		return Primitive{value: int64(val)}, nil
	case uint32:
		return Primitive{value: int64(val)}, nil
	case uint64:
		return Primitive{value: int64(val)}, nil
	case float32:
		return Primitive{value: float64(val)}, nil
	case Primitive:
		return val, nil
	case nil:
		return Primitive{}, fmt.Errorf("primitive value cannot be nil")
	default:
		return Primitive{}, fmt.Errorf("unsupported primitive type %T (want string, number or bool)", v)
	}
}

// MustPrimitive is like NewPrimitive but panics on error.
func MustPrimitive(v interface{}) Primitive {
	p, err := NewPrimitive(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the wrapped Go value.
func (p Primitive) Value() interface{} {
	return p.value
}

// IsZero reports whether p holds no value.
func (p Primitive) IsZero() bool {
	return p.value == nil
}

// Equal reports whether p and other hold the same value.
func (p Primitive) Equal(other Primitive) bool {
	return p.value == other.value
}

// String returns the display form of the value.
func (p Primitive) String() string {
	switch v := p.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Option is a choice offered by select and multiselect prompts.
type Option struct {
	// Value is what gets substituted into templates.
	Value Primitive
	// Label is the text shown to the user (defaults to Value).
	Label string
	// Hint is an optional description shown next to the label.
	Hint string
}

// Display returns the label shown to the user.
func (o Option) Display() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value.String()
}

// IndexOfOption returns the index of the option holding value, or -1.
func IndexOfOption(options []Option, value Primitive) int {
	for i, opt := range options {
		if opt.Value.Equal(value) {
			return i
		}
	}
	return -1
}
