package config

import "strings"

func Normalize(cfg Config) Config {
	if cfg.Version == 0 {
		cfg.Version = SchemaVersion
	}
	cfg.MinVersion = strings.TrimSpace(cfg.MinVersion)

	def := DefaultLayout()
	l := &cfg.Layout
	for _, f := range []struct {
		val *string
		def string
	}{
		{&l.ManifestDir, def.ManifestDir},
		{&l.MarketplaceFile, def.MarketplaceFile},
		{&l.PluginFile, def.PluginFile},
		{&l.SkillsDir, def.SkillsDir},
		{&l.SkillFile, def.SkillFile},
		{&l.AgentsDir, def.AgentsDir},
		{&l.CommandsDir, def.CommandsDir},
		{&l.MCPFile, def.MCPFile},
		{&l.HooksFile, def.HooksFile},
	} {
		*f.val = strings.TrimSpace(*f.val)
		if *f.val == "" {
			*f.val = f.def
		}
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}
	cfg.Report.JSONFile = strings.TrimSpace(cfg.Report.JSONFile)
	cfg.Metrics.Textfile = strings.TrimSpace(cfg.Metrics.Textfile)
	cfg.Audit.Path = strings.TrimSpace(cfg.Audit.Path)
	return cfg
}
