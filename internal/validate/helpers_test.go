package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plugincheck/internal/config"
	"plugincheck/internal/report"
)

const (
	salesMarketplace = `{"name":"skill-overflow","owner":{"name":"Ops"},"plugins":[{"name":"sales","source":"./plugins/sales"}]}`
	salesManifest    = `{"name":"sales","version":"1.0.0"}`
	fooSkill         = "---\nname: foo\ndescription: Does foo things\n---\n\n# Foo\n\nUse it.\n"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// salesTree is a fully valid single-plugin marketplace plus extra files.
func salesTree(t *testing.T, extra map[string]string) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		".claude-plugin/marketplace.json":          salesMarketplace,
		"plugins/sales/.claude-plugin/plugin.json": salesManifest,
		"plugins/sales/skills/foo/SKILL.md":        fooSkill,
	}
	for k, v := range extra {
		files[k] = v
	}
	writeTree(t, root, files)
	return root
}

func newTestValidator(root string) (*Validator, *report.Report) {
	r := report.New(nil)
	return New(root, config.DefaultLayout(), r), r
}

func runTree(root string) *report.Report {
	v, r := newTestValidator(root)
	v.Run()
	return r
}

// expectErrors asserts the report holds exactly len(want) errors, the i-th
// containing every " && "-separated fragment of want[i].
func expectErrors(t *testing.T, r *report.Report, want ...string) {
	t.Helper()
	got := r.Errors()
	if len(got) != len(want) {
		t.Fatalf("expected %d errors, got %d:\n%s", len(want), len(got), strings.Join(got, "\n"))
	}
	for i, w := range want {
		for _, frag := range strings.Split(w, " && ") {
			if !strings.Contains(got[i], frag) {
				t.Fatalf("error %d = %q, want it to contain %q", i, got[i], frag)
			}
		}
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
