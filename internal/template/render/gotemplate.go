package render

import (
	"sort"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/Masterminds/sprig/v3"
)

// GoTemplateEngine renders Go text/template syntax with the sprig function library.
// Top-level fields without a value render as empty strings.
type GoTemplateEngine struct{}

// NewGoTemplateEngine creates a new GoTemplateEngine.
func NewGoTemplateEngine() *GoTemplateEngine {
	return &GoTemplateEngine{}
}

// Name implements Engine.
func (e *GoTemplateEngine) Name() string {
	return EngineGoTemplate
}

func (e *GoTemplateEngine) parse(name, text string) (*template.Template, error) {
	return template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=zero").
		Parse(text)
}

// Render implements Engine.
func (e *GoTemplateEngine) Render(name, text string, vars map[string]interface{}) (string, error) {
	tmpl, err := e.parse(name, text)
	if err != nil {
		return "", newRenderError(TemplateRenderFailed, "failed to parse template", name, err)
	}

	// text/template prints "<no value>" for missing map keys
	data := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		data[k] = v
	}
	for _, field := range rootFields(tmpl) {
		if _, ok := data[field]; !ok {
			data[field] = ""
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", newRenderError(TemplateRenderFailed, "failed to render template", name, err)
	}
	return sb.String(), nil
}

// Placeholders implements PlaceholderLister.
// Only fields read from the root data ({{.name}}, {{$.name}}) are reported.
func (e *GoTemplateEngine) Placeholders(text string) ([]string, error) {
	tmpl, err := e.parse("placeholders", text)
	if err != nil {
		return nil, err
	}
	return rootFields(tmpl), nil
}

// rootFields returns the sorted first identifiers of every field chain
// evaluated against the root data, across all templates defined by tmpl.
func rootFields(tmpl *template.Template) []string {
	seen := make(map[string]bool)
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			collectNode(t.Tree.Root, true, seen)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// collectNode walks node. atRoot reports whether dot is still the root data;
// range and with rebind dot inside their bodies but not in their else branches.
func collectNode(node parse.Node, atRoot bool, seen map[string]bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collectNode(child, atRoot, seen)
		}
	case *parse.ActionNode:
		collectPipe(n.Pipe, atRoot, seen)
	case *parse.IfNode:
		collectPipe(n.Pipe, atRoot, seen)
		collectNode(n.List, atRoot, seen)
		collectNode(n.ElseList, atRoot, seen)
	case *parse.RangeNode:
		collectPipe(n.Pipe, atRoot, seen)
		collectNode(n.List, false, seen)
		collectNode(n.ElseList, atRoot, seen)
	case *parse.WithNode:
		collectPipe(n.Pipe, atRoot, seen)
		collectNode(n.List, false, seen)
		collectNode(n.ElseList, atRoot, seen)
	case *parse.TemplateNode:
		collectPipe(n.Pipe, atRoot, seen)
	}
}

func collectPipe(pipe *parse.PipeNode, atRoot bool, seen map[string]bool) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			collectArg(arg, atRoot, seen)
		}
	}
}

func collectArg(arg parse.Node, atRoot bool, seen map[string]bool) {
	switch a := arg.(type) {
	case *parse.FieldNode:
		if atRoot && len(a.Ident) > 0 {
			seen[a.Ident[0]] = true
		}
	case *parse.VariableNode:
		if len(a.Ident) > 1 && a.Ident[0] == "$" {
			seen[a.Ident[1]] = true
		}
	case *parse.ChainNode:
		collectArg(a.Node, atRoot, seen)
	case *parse.PipeNode:
		collectPipe(a, atRoot, seen)
	}
}
