package model

// TemplateSpec is a template as declared in the configuration file.
type TemplateSpec struct {
	// SourcePath is the template file, relative to the config directory.
	SourcePath string
	// OutputPath is the output directory; relative paths resolve against the config directory.
	OutputPath string
	// LocalVariables are prompted for this template only.
	LocalVariables []VariableSpec
	// GlobalVariableNames lists the global variables this template uses.
	// Nil means the template references no globals.
	GlobalVariableNames []string
}

// PopulatedTemplate is a template whose local variables have been filled.
type PopulatedTemplate struct {
	// SourcePath is the template file, relative to the config directory.
	SourcePath string
	// OutputPath is the output directory.
	OutputPath string
	// FilledVariables holds the answered local variables. Never nil.
	FilledVariables []FilledVariable
	// GlobalVariableNames lists the global variables this template uses.
	GlobalVariableNames []string
}

// RenderedTemplate is a populated template with its rendered text.
type RenderedTemplate struct {
	PopulatedTemplate
	// RenderedText is the template output.
	RenderedText string
}

// Populate returns the populated form of t using the given filled local variables.
func (t TemplateSpec) Populate(filled []FilledVariable) PopulatedTemplate {
	if filled == nil {
		filled = []FilledVariable{}
	}
	return PopulatedTemplate{
		SourcePath:          t.SourcePath,
		OutputPath:          t.OutputPath,
		FilledVariables:     filled,
		GlobalVariableNames: t.GlobalVariableNames,
	}
}

// Render returns the rendered form of t.
func (t PopulatedTemplate) Render(text string) RenderedTemplate {
	return RenderedTemplate{PopulatedTemplate: t, RenderedText: text}
}
