package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig   = "config"
	FlagYes      = "yes"
	FlagDryRun   = "dry-run"
	FlagEngine   = "engine"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"
	FlagLogJSON  = "log-json"
	FlagSettings = "settings"

	// Flag descriptions
	DescConfig   = "Directory or file used to locate xenon.config.{yaml,yml,toml,json} (default: current directory)"
	DescYes      = "Accept declared defaults without prompting"
	DescDryRun   = "Render templates and show planned files without writing"
	DescEngine   = "Template engine override (mustache, gotemplate)"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
	DescLogJSON  = "Write logs as JSON lines"
	DescSettings = "Path to the user settings file"
)
