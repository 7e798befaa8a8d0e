package model

// RawConfig is the configuration as authored by the user.
type RawConfig struct {
	// Engine names the template engine. Empty selects the default engine.
	Engine string
	// GlobalVariables are prompted once and shared by referencing templates.
	GlobalVariables []VariableSpec
	// Templates are rendered in declaration order.
	Templates []TemplateSpec
}

// ResolvedConfig is a RawConfig bound to the directory it was loaded from.
type ResolvedConfig struct {
	RawConfig
	// ConfigDirectory is the absolute directory used to resolve relative paths.
	ConfigDirectory string
	// ConfigFile is the absolute path of the loaded configuration file.
	ConfigFile string
}

// ConfigWithData is a resolved configuration with every variable filled.
type ConfigWithData struct {
	// Engine names the template engine.
	Engine string
	// ConfigDirectory is the absolute directory used to resolve relative paths.
	ConfigDirectory string
	// ConfigFile is the absolute path of the loaded configuration file.
	ConfigFile string
	// GlobalVariables holds the answered global variables. Never nil.
	GlobalVariables []FilledVariable
	// Templates holds the populated templates in declaration order.
	Templates []PopulatedTemplate
}

// RenderedConfig is a configuration whose templates have all been rendered.
type RenderedConfig struct {
	// Engine names the template engine used.
	Engine string
	// ConfigDirectory is the absolute directory used to resolve relative paths.
	ConfigDirectory string
	// ConfigFile is the absolute path of the loaded configuration file.
	ConfigFile string
	// GlobalVariables holds the answered global variables.
	GlobalVariables []FilledVariable
	// Templates holds the rendered templates in declaration order.
	Templates []RenderedTemplate
}

// WithData returns the next pipeline shape of c.
func (c ResolvedConfig) WithData(globals []FilledVariable, templates []PopulatedTemplate) *ConfigWithData {
	if globals == nil {
		globals = []FilledVariable{}
	}
	if templates == nil {
		templates = []PopulatedTemplate{}
	}
	return &ConfigWithData{
		Engine:          c.Engine,
		ConfigDirectory: c.ConfigDirectory,
		ConfigFile:      c.ConfigFile,
		GlobalVariables: globals,
		Templates:       templates,
	}
}

// Rendered returns the next pipeline shape of c.
func (c ConfigWithData) Rendered(templates []RenderedTemplate) *RenderedConfig {
	if templates == nil {
		templates = []RenderedTemplate{}
	}
	return &RenderedConfig{
		Engine:          c.Engine,
		ConfigDirectory: c.ConfigDirectory,
		ConfigFile:      c.ConfigFile,
		GlobalVariables: c.GlobalVariables,
		Templates:       templates,
	}
}
