package config

const (
	SchemaVersion = 1

	FileName  = ".plugincheck.toml"
	EnvPrefix = "PLUGINCHECK"

	FormatText = "text"
	FormatJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultLayout matches the Claude Code plugin marketplace conventions.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ManifestDir:     ".claude-plugin",
		MarketplaceFile: "marketplace.json",
		PluginFile:      "plugin.json",
		SkillsDir:       "skills",
		SkillFile:       "SKILL.md",
		AgentsDir:       "agents",
		CommandsDir:     "commands",
		MCPFile:         ".mcp.json",
		HooksFile:       "hooks/hooks.json",
	}
}

// DefaultConfig returns a fully-populated v1 config document.
func DefaultConfig() Config {
	return Config{
		Version: SchemaVersion,
		Layout:  DefaultLayout(),
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
	}
}
