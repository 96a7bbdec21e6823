package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

var allowedFormats = map[string]struct{}{
	FormatText: {},
	FormatJSON: {},
}

var allowedColors = map[string]struct{}{
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

func Validate(cfg Config) error {
	if cfg.Version != SchemaVersion {
		return fmt.Errorf("CFG_VERSION: unsupported version %d", cfg.Version)
	}
	if cfg.MinVersion != "" && !semver.IsValid(canonicalVersion(cfg.MinVersion)) {
		return fmt.Errorf("CFG_MIN_VERSION: invalid min_version %q", cfg.MinVersion)
	}
	l := cfg.Layout
	for _, f := range []struct{ key, val string }{
		{"manifest_dir", l.ManifestDir},
		{"marketplace_file", l.MarketplaceFile},
		{"plugin_file", l.PluginFile},
		{"skills_dir", l.SkillsDir},
		{"skill_file", l.SkillFile},
		{"agents_dir", l.AgentsDir},
		{"commands_dir", l.CommandsDir},
		{"mcp_file", l.MCPFile},
		{"hooks_file", l.HooksFile},
	} {
		if err := validateRelative(f.key, f.val); err != nil {
			return err
		}
	}
	if _, ok := allowedFormats[cfg.Output.Format]; !ok {
		return fmt.Errorf("CFG_OUTPUT: unsupported format %q", cfg.Output.Format)
	}
	if _, ok := allowedColors[cfg.Output.Color]; !ok {
		return fmt.Errorf("CFG_OUTPUT: unsupported color mode %q", cfg.Output.Color)
	}
	return nil
}

func validateRelative(key, val string) error {
	if val == "" {
		return fmt.Errorf("CFG_LAYOUT: %s is required", key)
	}
	if filepath.IsAbs(val) {
		return fmt.Errorf("CFG_LAYOUT: %s must be relative, got %q", key, val)
	}
	clean := filepath.ToSlash(filepath.Clean(val))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("CFG_LAYOUT: %s escapes its directory: %q", key, val)
	}
	return nil
}

// CheckMinVersion fails when cfg asks for a newer plugincheck than current.
// Development builds without a semantic version are never rejected.
func CheckMinVersion(cfg Config, current string) error {
	if cfg.MinVersion == "" {
		return nil
	}
	cur := canonicalVersion(current)
	if !semver.IsValid(cur) {
		return nil
	}
	if semver.Compare(cur, canonicalVersion(cfg.MinVersion)) < 0 {
		return fmt.Errorf("CFG_MIN_VERSION: config requires plugincheck %s or newer, running %s", cfg.MinVersion, current)
	}
	return nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
