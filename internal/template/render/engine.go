// Package render merges filled variables and renders template text with a
// pluggable template engine.
package render

import (
	"sort"
	"strings"
)

// Supported engine names.
const (
	// EngineMustache renders {{name}} placeholders.
	EngineMustache = "mustache"
	// EngineGoTemplate renders Go text/template syntax ({{.name}}) with sprig functions.
	EngineGoTemplate = "gotemplate"

	// DefaultEngine is used when neither the project nor the user picks one.
	DefaultEngine = EngineMustache
)

// Engine substitutes variables into template text.
type Engine interface {
	// Name returns the engine name.
	Name() string
	// Render renders text with vars. name identifies the template in error messages.
	Render(name, text string, vars map[string]interface{}) (string, error)
}

// PlaceholderLister is implemented by engines that can report the variable
// names a template refers to.
type PlaceholderLister interface {
	// Placeholders returns the distinct top-level variable names used by text, sorted.
	Placeholders(text string) ([]string, error)
}

var engines = map[string]func() Engine{
	EngineMustache:   func() Engine { return NewMustacheEngine() },
	EngineGoTemplate: func() Engine { return NewGoTemplateEngine() },
}

// EngineNames returns the supported engine names, sorted.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEngine reports whether name is a supported engine.
func IsEngine(name string) bool {
	_, ok := engines[strings.ToLower(name)]
	return ok
}

// NewEngine returns the engine with the given name. An empty name selects DefaultEngine.
func NewEngine(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngine
	}
	factory, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, newRenderError(UnknownEngine,
			"unknown template engine "+name+" (supported: "+strings.Join(EngineNames(), ", ")+")", "", nil)
	}
	return factory(), nil
}
