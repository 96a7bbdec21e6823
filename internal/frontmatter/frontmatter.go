// Package frontmatter reads the "---" delimited header block at the top of
// SKILL.md, agent and command files.
//
// The lookups are textual: only top-level "key: value" lines and a single
// level of two-space indented "- item" lines are recognized. Anything nested
// deeper is ignored rather than rejected.
package frontmatter

import (
	"strings"
)

const marker = "---"

// Document is a resource split into its header block and body.
type Document struct {
	Header string
	Body   string
	lines  []string
}

// Extract splits content into header and body. It returns false when the
// content does not open with a marker line closed by a second marker line.
func Extract(content string) (Document, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || !isMarker(lines[0]) {
		return Document{}, false
	}

	// The closing marker cannot directly follow the opening one: an empty
	// header still needs a line of its own.
	end := -1
	for i := 2; i < len(lines); i++ {
		if isMarker(lines[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		return Document{}, false
	}

	header := lines[1:end]
	return Document{
		Header: strings.Join(header, "\n"),
		Body:   strings.Join(lines[end+1:], "\n"),
		lines:  header,
	}, true
}

func isMarker(line string) bool {
	return strings.TrimRight(line, " \t\r") == marker
}

// HasBody reports whether anything other than whitespace follows the header.
func (d Document) HasBody() bool {
	return strings.TrimSpace(d.Body) != ""
}

// Scalar returns the trimmed value of the first header line starting with
// "key:". The value may be empty.
func (d Document) Scalar(key string) (string, bool) {
	i := d.keyLine(key)
	if i < 0 {
		return "", false
	}
	return valueOf(d.lines[i], key), true
}

// List collects the "  - item" lines directly following the key line. It
// stops at the first line that is not a list item.
func (d Document) List(key string) []string {
	i := d.keyLine(key)
	if i < 0 {
		return nil
	}
	var items []string
	for _, line := range d.lines[i+1:] {
		item, ok := listItem(line)
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items
}

// BlockScalar reports whether key's value is a block scalar indicator
// ("|" or ">", optionally with a chomping suffix) and, if so, whether the
// next header line carries indented content.
func (d Document) BlockScalar(key string) (indicator string, hasContent bool, ok bool) {
	i := d.keyLine(key)
	if i < 0 {
		return "", false, false
	}
	v := valueOf(d.lines[i], key)
	if !IsBlockIndicator(v) {
		return "", false, false
	}
	if i+1 < len(d.lines) {
		next := strings.TrimRight(d.lines[i+1], "\r")
		indented := strings.HasPrefix(next, " ") || strings.HasPrefix(next, "\t")
		hasContent = indented && strings.TrimSpace(next) != ""
	}
	return v, hasContent, true
}

// IsBlockIndicator reports whether v opens a literal or folded block.
func IsBlockIndicator(v string) bool {
	switch v {
	case "|", ">", "|-", ">-", "|+", ">+":
		return true
	}
	return false
}

func (d Document) keyLine(key string) int {
	prefix := key + ":"
	for i, line := range d.lines {
		if strings.HasPrefix(line, prefix) {
			return i
		}
	}
	return -1
}

func valueOf(line, key string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, key+":"))
}

func listItem(line string) (string, bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, "  - ") {
		return "", false
	}
	item := strings.TrimSpace(line[len("  - "):])
	if item == "" {
		return "", false
	}
	return item, true
}
