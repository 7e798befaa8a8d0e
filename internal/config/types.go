package config

// fileConfig mirrors the on-disk configuration schema.
// It is decoded by koanf and then converted into model.RawConfig.
type fileConfig struct {
	// Engine names the template engine ("mustache" or "gotemplate").
	Engine string `koanf:"engine"`
	// GlobalVariables are prompted once and shared by referencing templates.
	GlobalVariables []fileVariable `koanf:"globalVariables"`
	// Templates lists the templates to render.
	Templates []fileTemplate `koanf:"templates"`
}

// fileVariable is a variable declaration.
type fileVariable struct {
	// Name is the placeholder name.
	Name string `koanf:"name"`
	// Type is the prompt kind: text, confirm, select or multiselect.
	Type string `koanf:"type"`
	// Prompt holds the kind-specific prompt options.
	Prompt filePrompt `koanf:"prompt"`
}

// filePrompt is the union of all prompt options. Which fields apply depends on the variable type.
type filePrompt struct {
	// Message is the question shown to the user.
	Message string `koanf:"message"`
	// Default is a string (text), a bool (confirm), a primitive (select) or a list of primitives (multiselect).
	Default interface{} `koanf:"default"`
	// Placeholder is help text for text prompts.
	Placeholder string `koanf:"placeholder"`
	// Required rejects empty text answers and empty multiselect selections.
	Required bool `koanf:"required"`
	// Pattern is a regular expression text answers must match.
	Pattern string `koanf:"pattern"`
	// Options are the choices of select and multiselect prompts.
	Options []fileOption `koanf:"options"`
}

// fileOption is a select or multiselect choice.
type fileOption struct {
	// Value is substituted into templates.
	Value interface{} `koanf:"value"`
	// Label is shown to the user.
	Label string `koanf:"label"`
	// Hint is an optional description.
	Hint string `koanf:"hint"`
}

// fileTemplate is a template declaration.
type fileTemplate struct {
	// SourcePath is the template file, relative to the config directory.
	SourcePath string `koanf:"sourcePath"`
	// OutputPath is the output directory.
	OutputPath string `koanf:"outputPath"`
	// Variables are the template's local variables.
	Variables []fileVariable `koanf:"variables"`
	// UseGlobalVariables names the global variables the template uses.
	UseGlobalVariables []string `koanf:"useGlobalVariables"`
}
