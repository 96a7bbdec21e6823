package validate

import (
	"path/filepath"

	"plugincheck/internal/report"
)

// ValidateMCP checks the plugin's MCP server descriptor. Each server needs
// either a "command" (stdio) or both "type" and "url" (network). The
// {"mcpServers": {...}} wrapper is accepted as well as the bare map.
func (v *Validator) ValidateMCP(plugin, dir string) {
	rel := v.Layout.MCPFile
	data, err := readObject(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		v.pluginErrorf(plugin, "%s %s", rel, describeLoadError(err))
		return
	}

	servers := data
	if wrapped, ok := data["mcpServers"]; ok {
		m, ok := wrapped.(map[string]any)
		if !ok {
			v.pluginErrorf(plugin, "%s 'mcpServers' must be an object", rel)
			return
		}
		servers = m
	}

	for _, name := range sortedKeys(servers) {
		v.Report.RecordResource(plugin, report.KindMCPServer)
		entry, ok := servers[name].(map[string]any)
		if !ok {
			v.pluginErrorf(plugin, "%s server '%s' must be an object", rel, name)
			continue
		}
		if has(entry, "command") {
			continue
		}
		if has(entry, "type") && has(entry, "url") {
			continue
		}
		v.pluginErrorf(plugin, "%s server '%s' needs 'command' (stdio) or both 'type' and 'url'", rel, name)
	}
}
