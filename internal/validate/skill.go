package validate

import (
	"path"
	"path/filepath"

	"plugincheck/internal/report"
)

// ValidateSkill checks skills/<name>/SKILL.md: frontmatter name equal to
// the directory name, a description and a body.
func (v *Validator) ValidateSkill(plugin, skillDir string) {
	name := filepath.Base(skillDir)
	v.Report.RecordResource(plugin, report.KindSkill)

	rel := path.Join(v.Layout.SkillsDir, name, v.Layout.SkillFile)
	doc, ok := v.loadDocument(plugin, filepath.Join(skillDir, filepath.FromSlash(v.Layout.SkillFile)), rel)
	if !ok {
		return
	}
	v.checkName(plugin, rel, doc, name)
	v.checkDescription(plugin, rel, doc, false)
	v.checkBody(plugin, rel, doc)
}
