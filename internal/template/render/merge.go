package render

import "github.com/tacogips/xenon/internal/template/model"

// MergeVariables builds the variable set for one template.
// It starts from the local variables; each referenced global that exists and
// is not shadowed by a local of the same name is added. Referenced names
// missing from globals are skipped.
func MergeVariables(local, global []model.FilledVariable, referenced []string) map[string]model.FilledVariable {
	merged := make(map[string]model.FilledVariable, len(local)+len(referenced))
	for _, v := range local {
		merged[v.Name] = v
	}

	if referenced == nil {
		return merged
	}

	globals := make(map[string]model.FilledVariable, len(global))
	for _, v := range global {
		if _, dup := globals[v.Name]; !dup {
			globals[v.Name] = v
		}
	}

	for _, name := range referenced {
		g, ok := globals[name]
		if !ok {
			continue
		}
		if _, shadowed := merged[name]; shadowed {
			continue
		}
		merged[name] = g
	}

	return merged
}

// MissingGlobals returns the referenced names that are not declared in global, in reference order.
func MissingGlobals(global []model.FilledVariable, referenced []string) []string {
	declared := make(map[string]bool, len(global))
	for _, v := range global {
		declared[v.Name] = true
	}

	var missing []string
	for _, name := range referenced {
		if !declared[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Flatten maps each variable name to the value handed to template engines.
func Flatten(vars map[string]model.FilledVariable) map[string]interface{} {
	out := make(map[string]interface{}, len(vars))
	for name, v := range vars {
		if v.Value == nil {
			continue
		}
		out[name] = v.Value.Raw()
	}
	return out
}
