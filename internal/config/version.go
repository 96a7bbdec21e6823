package config

// Build metadata, overridden with -ldflags "-X plugincheck/internal/config.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
