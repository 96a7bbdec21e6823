package render

import (
	"encoding/json"
	"time"

	"plugincheck/internal/fsutil"
	"plugincheck/internal/report"
	"plugincheck/internal/validate"
)

// Document is the machine-readable form of a finished run.
type Document struct {
	Root       string          `json:"root"`
	Passed     bool            `json:"passed"`
	ErrorCount int             `json:"errorCount"`
	Errors     []string        `json:"errors"`
	Plugins    []PluginSummary `json:"plugins"`
	StartedAt  time.Time       `json:"startedAt"`
	Duration   string          `json:"duration"`
	RunID      string          `json:"runId,omitempty"`
}

type PluginSummary struct {
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	Errors    int            `json:"errors"`
	Resources map[string]int `json:"resources"`
}

func BuildDocument(root string, r *report.Report, res validate.Result) Document {
	doc := Document{
		Root:       root,
		Passed:     r.Passed(),
		ErrorCount: r.ErrorCount(),
		Errors:     r.Errors(),
		Plugins:    make([]PluginSummary, 0, len(res.Plugins)),
		StartedAt:  r.StartedAt.UTC(),
		Duration:   time.Since(r.StartedAt).Round(time.Millisecond).String(),
	}
	for _, p := range res.Plugins {
		doc.Plugins = append(doc.Plugins, PluginSummary{
			Name:      p.Ref.Name,
			Source:    p.Ref.Source,
			Errors:    p.Errors,
			Resources: r.Counts(p.Ref.Name),
		})
	}
	return doc
}

func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// WriteDocument stores d at path, replacing any previous report atomically.
func WriteDocument(path string, d Document) error {
	blob, err := d.Marshal()
	if err != nil {
		return err
	}
	return fsutil.AtomicWrite(path, append(blob, '\n'), 0o644)
}
