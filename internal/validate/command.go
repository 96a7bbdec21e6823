package validate

import (
	"path"
	"path/filepath"

	"plugincheck/internal/report"
)

func (v *Validator) ValidateCommand(plugin, file string) {
	v.Report.RecordResource(plugin, report.KindCommand)

	rel := path.Join(v.Layout.CommandsDir, filepath.Base(file))
	doc, ok := v.loadDocument(plugin, file, rel)
	if !ok {
		return
	}
	v.checkDescription(plugin, rel, doc, false)
	v.checkListNotEmpty(plugin, rel, doc, "allowed-tools")
	v.checkBody(plugin, rel, doc)
}
