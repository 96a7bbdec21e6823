package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides are read from PLUGINCHECK_* variables and win over the file.
type envOverrides struct {
	Format      string `envconfig:"FORMAT"`
	Color       string `envconfig:"COLOR"`
	NoColor     bool   `envconfig:"NO_COLOR"`
	ReportFile  string `envconfig:"REPORT_FILE"`
	MetricsFile string `envconfig:"METRICS_FILE"`
	AuditLog    string `envconfig:"AUDIT_LOG"`
}

// ApplyEnv overlays PLUGINCHECK_* environment variables onto cfg.
func ApplyEnv(cfg Config) (Config, error) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("CFG_ENV: %w", err)
	}
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Color != "" {
		cfg.Output.Color = env.Color
	}
	if env.NoColor {
		cfg.Output.Color = ColorNever
	}
	if env.ReportFile != "" {
		cfg.Report.JSONFile = env.ReportFile
	}
	if env.MetricsFile != "" {
		cfg.Metrics.Textfile = env.MetricsFile
	}
	if env.AuditLog != "" {
		cfg.Audit.Path = env.AuditLog
	}
	cfg = Normalize(cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
