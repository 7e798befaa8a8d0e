package render

import (
	"sort"
	"strings"

	"github.com/cbroglie/mustache"
)

// MustacheEngine renders mustache templates without HTML escaping.
// Variables without a value render as empty strings.
type MustacheEngine struct{}

// NewMustacheEngine creates a new MustacheEngine.
func NewMustacheEngine() *MustacheEngine {
	return &MustacheEngine{}
}

// Name implements Engine.
func (e *MustacheEngine) Name() string {
	return EngineMustache
}

// Render implements Engine.
func (e *MustacheEngine) Render(name, text string, vars map[string]interface{}) (string, error) {
	tmpl, err := mustache.ParseStringRaw(text, true)
	if err != nil {
		return "", newRenderError(TemplateRenderFailed, "failed to parse template", name, err)
	}
	out, err := tmpl.Render(vars)
	if err != nil {
		return "", newRenderError(TemplateRenderFailed, "failed to render template", name, err)
	}
	return out, nil
}

// Placeholders implements PlaceholderLister.
// Dotted names report their first segment; the implicit iterator "." is skipped.
func (e *MustacheEngine) Placeholders(text string) ([]string, error) {
	tmpl, err := mustache.ParseStringRaw(text, true)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, tag := range tmpl.Tags() {
		switch tag.Type() {
		case mustache.Variable, mustache.Section, mustache.InvertedSection:
		default:
			continue
		}
		name := tag.Name()
		if name == "." || name == "" {
			continue
		}
		if i := strings.Index(name, "."); i > 0 {
			name = name[:i]
		}
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
