package validate

import (
	"fmt"
	"path/filepath"
)

// PluginRef is one entry of the marketplace "plugins" array.
type PluginRef struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

const unnamedPlugin = "unknown"

// CheckNoRootPlugin records an error when the repository root carries a
// plugin manifest: the root is a marketplace, not a plugin.
func (v *Validator) CheckNoRootPlugin() {
	rel := v.manifestPath(v.Layout.PluginFile)
	v.Report.Step(fmt.Sprintf("Checking no root %s ...", v.Layout.PluginFile))
	if isFile(filepath.Join(v.Root, filepath.FromSlash(rel))) {
		v.errorf("Root %s should not exist; the root is a marketplace, not a plugin", rel)
	}
}

// ValidateMarketplace checks the root manifest and returns the plugins to
// validate, in manifest order. A manifest that cannot be loaded, or one
// without a plugins array, yields no plugins.
func (v *Validator) ValidateMarketplace() []PluginRef {
	file := v.Layout.MarketplaceFile
	rel := v.manifestPath(file)
	v.Report.Step(fmt.Sprintf("Checking %s ...", rel))

	data, err := readObject(filepath.Join(v.Root, filepath.FromSlash(rel)))
	if err != nil {
		v.errorf("%s %s", file, describeLoadError(err))
		return nil
	}

	if _, st := stringField(data, "name"); st != fieldOK {
		v.errorf("%s missing 'name'", file)
	}
	owner, _ := data["owner"].(map[string]any)
	if owner == nil {
		v.errorf("%s missing 'owner.name'", file)
	} else if _, st := stringField(owner, "name"); st != fieldOK {
		v.errorf("%s missing 'owner.name'", file)
	}

	plugins, _ := data["plugins"].([]any)
	if len(plugins) == 0 {
		v.errorf("%s missing 'plugins' array", file)
		return nil
	}

	refs := make([]PluginRef, 0, len(plugins))
	seen := map[string]struct{}{}
	for i, raw := range plugins {
		entry, ok := raw.(map[string]any)
		if !ok {
			v.errorf("%s plugin entry #%d is not an object", file, i+1)
			continue
		}
		name, nameState := stringField(entry, "name")
		switch nameState {
		case fieldMissing:
			v.errorf("%s plugin entry missing 'name'", file)
		case fieldNotString:
			v.errorf("%s plugin entry #%d 'name' must be a string", file, i+1)
		}
		display := name
		if nameState != fieldOK {
			display = unnamedPlugin
		} else if _, dup := seen[name]; dup {
			v.errorf("%s lists plugin '%s' more than once", file, name)
		} else {
			seen[name] = struct{}{}
		}

		source, sourceState := stringField(entry, "source")
		switch sourceState {
		case fieldMissing:
			v.errorf("%s plugin '%s' missing 'source'", file, display)
			continue
		case fieldNotString:
			v.errorf("%s plugin '%s' 'source' must be a relative path", file, display)
			continue
		}
		refs = append(refs, PluginRef{Name: display, Source: source})
	}
	return refs
}
