package config

// Config is the optional .plugincheck.toml read from a marketplace root.
type Config struct {
	Version    int           `toml:"version" json:"version"`
	MinVersion string        `toml:"min_version,omitempty" json:"minVersion,omitempty"`
	Layout     LayoutConfig  `toml:"layout" json:"layout"`
	Output     OutputConfig  `toml:"output" json:"output"`
	Report     ReportConfig  `toml:"report" json:"report"`
	Metrics    MetricsConfig `toml:"metrics" json:"metrics"`
	Audit      AuditConfig   `toml:"audit" json:"audit"`
}

// LayoutConfig names the files and directories the validators look for.
// All paths are relative: ManifestDir and MarketplaceFile to the
// repository root, the rest to each plugin directory.
type LayoutConfig struct {
	ManifestDir     string `toml:"manifest_dir" json:"manifestDir"`
	MarketplaceFile string `toml:"marketplace_file" json:"marketplaceFile"`
	PluginFile      string `toml:"plugin_file" json:"pluginFile"`
	SkillsDir       string `toml:"skills_dir" json:"skillsDir"`
	SkillFile       string `toml:"skill_file" json:"skillFile"`
	AgentsDir       string `toml:"agents_dir" json:"agentsDir"`
	CommandsDir     string `toml:"commands_dir" json:"commandsDir"`
	MCPFile         string `toml:"mcp_file" json:"mcpFile"`
	HooksFile       string `toml:"hooks_file" json:"hooksFile"`
}

type OutputConfig struct {
	Format string `toml:"format" json:"format"`
	Color  string `toml:"color" json:"color"`
}

type ReportConfig struct {
	JSONFile string `toml:"json_file,omitempty" json:"jsonFile,omitempty"`
}

type MetricsConfig struct {
	Textfile string `toml:"textfile,omitempty" json:"textfile,omitempty"`
}

type AuditConfig struct {
	Path string `toml:"path,omitempty" json:"path,omitempty"`
}
