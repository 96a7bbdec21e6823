package validate

import (
	"errors"
	"io/fs"
	"os"

	"plugincheck/internal/frontmatter"
)

// loadDocument reads a markdown resource and extracts its frontmatter,
// recording an error and returning false when either step fails.
func (v *Validator) loadDocument(plugin, file, rel string) (frontmatter.Document, bool) {
	content, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.pluginErrorf(plugin, "%s not found", rel)
		} else {
			v.pluginErrorf(plugin, "%s could not be read: %v", rel, err)
		}
		return frontmatter.Document{}, false
	}
	doc, ok := frontmatter.Extract(string(content))
	if !ok {
		v.pluginErrorf(plugin, "%s missing YAML frontmatter", rel)
		return frontmatter.Document{}, false
	}
	return doc, true
}

// checkName requires the frontmatter name to equal want.
func (v *Validator) checkName(plugin, rel string, doc frontmatter.Document, want string) {
	name, ok := doc.Scalar("name")
	switch {
	case !ok || name == "":
		v.pluginErrorf(plugin, "%s frontmatter missing 'name'", rel)
	case name != want:
		v.pluginErrorf(plugin, "%s 'name' is '%s', expected '%s'", rel, name, want)
	}
}

// checkDescription requires a non-empty description. With block, a "|" or
// ">" indicator must be followed by an indented line.
func (v *Validator) checkDescription(plugin, rel string, doc frontmatter.Document, block bool) {
	if block {
		if indicator, hasContent, ok := doc.BlockScalar("description"); ok {
			if !hasContent {
				v.pluginErrorf(plugin, "%s 'description' block scalar '%s' has no indented content", rel, indicator)
			}
			return
		}
	}
	if desc, _ := doc.Scalar("description"); desc == "" {
		v.pluginErrorf(plugin, "%s frontmatter missing 'description'", rel)
	}
}

// checkListNotEmpty applies to optional list keys: when key is written as a
// bare list header it needs at least one "  - item" line.
func (v *Validator) checkListNotEmpty(plugin, rel string, doc frontmatter.Document, key string) {
	val, ok := doc.Scalar(key)
	if !ok {
		return
	}
	if val != "" && val != "[]" && !frontmatter.IsBlockIndicator(val) {
		return
	}
	if len(doc.List(key)) == 0 {
		v.pluginErrorf(plugin, "%s '%s' has no entries", rel, key)
	}
}

func (v *Validator) checkBody(plugin, rel string, doc frontmatter.Document) {
	if !doc.HasBody() {
		v.pluginErrorf(plugin, "%s has no content after frontmatter", rel)
	}
}
