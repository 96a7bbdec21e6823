// Package validate checks a plugin marketplace tree: the root manifest, every
// plugin it lists and the skills, agents, commands, hooks and MCP servers
// inside each plugin.
//
// Validators never stop at the first problem. Every violation is recorded
// in the shared report.Report and validation carries on with the next
// field, resource or plugin, so one run surfaces every defect in the tree.
package validate

import (
	"fmt"
	"os"
	"path"
	"sort"

	"plugincheck/internal/config"
	"plugincheck/internal/report"
)

// Validator walks one marketplace root. It is not safe for concurrent use;
// directory entries are visited in lexical order so repeated runs produce
// identical reports.
type Validator struct {
	Root   string
	Layout config.LayoutConfig
	Report *report.Report
}

// PluginResult is the outcome for one plugin of a run.
type PluginResult struct {
	Ref    PluginRef `json:"ref"`
	Errors int       `json:"errors"`
}

// Result lists the plugins a run fanned out over.
type Result struct {
	Plugins []PluginResult `json:"plugins"`
}

func New(root string, layout config.LayoutConfig, r *report.Report) *Validator {
	return &Validator{Root: root, Layout: layout, Report: r}
}

// Run validates the whole tree: the root must not be a plugin, the
// marketplace manifest must be sound, and every listed plugin is checked.
func (v *Validator) Run() Result {
	v.CheckNoRootPlugin()
	refs := v.ValidateMarketplace()

	res := Result{Plugins: make([]PluginResult, 0, len(refs))}
	for _, ref := range refs {
		before := v.Report.ErrorCount()
		v.ValidatePlugin(ref)
		res.Plugins = append(res.Plugins, PluginResult{Ref: ref, Errors: v.Report.ErrorCount() - before})
	}
	return res
}

func (v *Validator) errorf(format string, args ...any) {
	v.Report.RecordError(fmt.Sprintf(format, args...))
}

// pluginErrorf records a violation attributed to plugin.
func (v *Validator) pluginErrorf(plugin, format string, args ...any) {
	v.Report.RecordError(fmt.Sprintf("Plugin '%s': ", plugin) + fmt.Sprintf(format, args...))
}

func (v *Validator) manifestPath(file string) string {
	return path.Join(v.Layout.ManifestDir, file)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
