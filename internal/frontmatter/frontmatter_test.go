package frontmatter

import (
	"reflect"
	"testing"
)

func TestExtractSplitsHeaderAndBody(t *testing.T) {
	doc, ok := Extract("---\nname: foo\ndescription: does foo\n---\n\n# Foo\n")
	if !ok {
		t.Fatalf("expected frontmatter")
	}
	if doc.Header != "name: foo\ndescription: does foo" {
		t.Fatalf("unexpected header %q", doc.Header)
	}
	if doc.Body != "\n# Foo\n" {
		t.Fatalf("unexpected body %q", doc.Body)
	}
	if !doc.HasBody() {
		t.Fatalf("expected body")
	}
}

func TestExtractRejectsMissingMarkers(t *testing.T) {
	cases := map[string]string{
		"no opening":          "name: foo\n---\nbody",
		"no closing":          "---\nname: foo\nbody",
		"adjacent markers":    "---\n---\nbody",
		"empty":               "",
		"opening not on top":  "\n---\nname: foo\n---\n",
		"marker with content": "--- x\nname: foo\n---\n",
	}
	for name, content := range cases {
		if _, ok := Extract(content); ok {
			t.Fatalf("%s: expected no frontmatter", name)
		}
	}
}

func TestExtractAllowsEmptyHeaderAndBody(t *testing.T) {
	doc, ok := Extract("---\n\n---")
	if !ok {
		t.Fatalf("expected frontmatter")
	}
	if doc.Header != "" || doc.HasBody() {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestExtractToleratesCRLF(t *testing.T) {
	doc, ok := Extract("---\r\nname: foo\r\n---\r\nbody\r\n")
	if !ok {
		t.Fatalf("expected frontmatter")
	}
	if v, _ := doc.Scalar("name"); v != "foo" {
		t.Fatalf("expected name foo, got %q", v)
	}
}

func TestScalar(t *testing.T) {
	doc, _ := Extract("---\nname:   spaced  \ndescription:\nnested:\n  name: inner\n---\n")
	if v, ok := doc.Scalar("name"); !ok || v != "spaced" {
		t.Fatalf("name = %q, %v", v, ok)
	}
	if v, ok := doc.Scalar("description"); !ok || v != "" {
		t.Fatalf("description = %q, %v", v, ok)
	}
	if _, ok := doc.Scalar("missing"); ok {
		t.Fatalf("expected missing key")
	}
	if _, ok := doc.Scalar("inner"); ok {
		t.Fatalf("indented keys must not match")
	}
}

func TestList(t *testing.T) {
	doc, _ := Extract("---\ntools:\n  - Read\n  - Write\n    - Nested\n  - Edit\nother: x\n---\n")
	got := doc.List("tools")
	want := []string{"Read", "Write"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	if items := doc.List("other"); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
	if items := doc.List("absent"); items != nil {
		t.Fatalf("expected nil, got %v", items)
	}
}

func TestListRequiresTwoSpaceIndent(t *testing.T) {
	doc, _ := Extract("---\ntools:\n- Read\n   - Write\n---\n")
	if items := doc.List("tools"); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
}

func TestBlockScalar(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantOK      bool
		wantContent bool
	}{
		{"literal with content", "---\ndescription: |\n  line one\n---\n", true, true},
		{"folded with tab", "---\ndescription: >\n\tline one\n---\n", true, true},
		{"chomping", "---\ndescription: |-\n  x\n---\n", true, true},
		{"no continuation", "---\ndescription: |\nname: foo\n---\n", true, false},
		{"last header line", "---\ndescription: >\n---\n", true, false},
		{"blank continuation", "---\ndescription: |\n   \n---\n", true, false},
		{"plain scalar", "---\ndescription: hello\n---\n", false, false},
		{"absent", "---\nname: x\n---\n", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := Extract(tt.content)
			if !ok {
				t.Fatalf("expected frontmatter")
			}
			_, hasContent, ok := doc.BlockScalar("description")
			if ok != tt.wantOK || hasContent != tt.wantContent {
				t.Fatalf("BlockScalar = (%v, %v), want (%v, %v)", hasContent, ok, tt.wantContent, tt.wantOK)
			}
		})
	}
}
