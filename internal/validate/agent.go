package validate

import (
	"path"
	"path/filepath"
	"strings"

	"plugincheck/internal/report"
)

// ValidateAgent checks agents/<stem>.md. The frontmatter name must match
// the file stem; a mismatch is reported, never corrected.
func (v *Validator) ValidateAgent(plugin, file string) {
	stem := strings.TrimSuffix(filepath.Base(file), ".md")
	v.Report.RecordResource(plugin, report.KindAgent)

	rel := path.Join(v.Layout.AgentsDir, stem+".md")
	doc, ok := v.loadDocument(plugin, file, rel)
	if !ok {
		return
	}
	v.checkName(plugin, rel, doc, stem)
	v.checkDescription(plugin, rel, doc, true)
	v.checkListNotEmpty(plugin, rel, doc, "tools")
	v.checkBody(plugin, rel, doc)
}
