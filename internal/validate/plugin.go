package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var kebabCase = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsKebabCase reports whether name is lowercase alphanumeric segments
// joined by single hyphens.
func IsKebabCase(name string) bool {
	return kebabCase.MatchString(name)
}

// ValidatePlugin checks one plugin directory. A source that is not a
// directory is reported once and nothing beneath it is examined.
func (v *Validator) ValidatePlugin(ref PluginRef) {
	v.Report.Step(fmt.Sprintf("Checking plugin '%s' at %s ...", ref.Name, ref.Source))
	v.Report.Track(ref.Name)

	dir := filepath.Join(v.Root, filepath.FromSlash(ref.Source))
	if !isDir(dir) {
		v.pluginErrorf(ref.Name, "source directory '%s' not found", ref.Source)
		return
	}

	v.checkPluginManifest(ref.Name, dir)
	v.checkSkills(ref.Name, dir)
	v.checkMarkdownDir(ref.Name, filepath.Join(dir, filepath.FromSlash(v.Layout.AgentsDir)), v.ValidateAgent)
	v.checkMarkdownDir(ref.Name, filepath.Join(dir, filepath.FromSlash(v.Layout.CommandsDir)), v.ValidateCommand)
	if isFile(filepath.Join(dir, filepath.FromSlash(v.Layout.MCPFile))) {
		v.ValidateMCP(ref.Name, dir)
	}
	if isFile(filepath.Join(dir, filepath.FromSlash(v.Layout.HooksFile))) {
		v.ValidateHooks(ref.Name, dir)
	}
}

func (v *Validator) checkPluginManifest(plugin, dir string) {
	file := v.Layout.PluginFile
	rel := v.manifestPath(file)

	data, err := readObject(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			v.pluginErrorf(plugin, "%s not found", rel)
			return
		}
		v.pluginErrorf(plugin, "%s %s", file, describeLoadError(err))
		// An unreadable manifest is checked as if it were empty.
		data = map[string]any{}
	}

	name, st := stringField(data, "name")
	switch {
	case st == fieldMissing:
		v.pluginErrorf(plugin, "%s missing 'name'", file)
	case st == fieldNotString:
		v.pluginErrorf(plugin, "%s 'name' must be a string", file)
	case !IsKebabCase(name):
		v.pluginErrorf(plugin, "%s 'name' must be kebab-case, got '%s'", file, name)
	}

	if _, st := stringField(data, "version"); st == fieldMissing {
		v.pluginErrorf(plugin, "%s missing 'version'", file)
	} else if st == fieldNotString {
		v.pluginErrorf(plugin, "%s 'version' must be a string", file)
	}
}

func (v *Validator) checkSkills(plugin, dir string) {
	skillsDir := filepath.Join(dir, filepath.FromSlash(v.Layout.SkillsDir))
	entries, ok := v.listDir(plugin, skillsDir)
	if !ok {
		return
	}
	for _, e := range entries {
		p := filepath.Join(skillsDir, e.Name())
		if !isDir(p) {
			continue
		}
		v.ValidateSkill(plugin, p)
	}
}

// checkMarkdownDir hands every *.md file directly inside dir to check.
func (v *Validator) checkMarkdownDir(plugin, dir string, check func(plugin, file string)) {
	entries, ok := v.listDir(plugin, dir)
	if !ok {
		return
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if !isFile(p) {
			continue
		}
		check(plugin, p)
	}
}

// listDir returns the sorted entries of an optional resource directory.
// ok is false when the directory is absent or unreadable.
func (v *Validator) listDir(plugin, dir string) ([]os.DirEntry, bool) {
	if !isDir(dir) {
		return nil, false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		v.pluginErrorf(plugin, "cannot read %s: %v", filepath.Base(dir), err)
		return nil, false
	}
	return entries, true
}
