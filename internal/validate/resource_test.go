package validate

import (
	"testing"
)

func TestSkillNameMismatchReportedOnce(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"otherwise valid", "---\nname: bar\ndescription: d\n---\nbody\n", []string{"'name' is 'bar', expected 'foo'"}},
		{"also missing description", "---\nname: bar\n---\nbody\n", []string{
			"'name' is 'bar', expected 'foo'",
			"frontmatter missing 'description'",
		}},
		{"quoted name is compared verbatim", "---\nname: \"foo\"\ndescription: d\n---\nbody\n", []string{`'name' is '"foo"', expected 'foo'`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := salesTree(t, map[string]string{"plugins/sales/skills/foo/SKILL.md": tt.content})
			expectErrors(t, runTree(root), tt.want...)
		})
	}
}

func TestSkillMissingFrontmatterStopsChecks(t *testing.T) {
	root := salesTree(t, map[string]string{"plugins/sales/skills/foo/SKILL.md": "# Foo\n\nno header\n"})
	expectErrors(t, runTree(root), "skills/foo/SKILL.md missing YAML frontmatter")
}

func TestAgentRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"valid block description", "---\nname: closer\ndescription: >\n  Closes deals\n  quickly.\ntools:\n  - Read\n  - Grep\n---\nBody\n", nil},
		{"inline tools", "---\nname: closer\ndescription: d\ntools: Read, Grep\n---\nBody\n", nil},
		{"name mismatch", "---\nname: opener\ndescription: d\n---\nBody\n", []string{"agents/closer.md 'name' is 'opener', expected 'closer'"}},
		{"empty description", "---\nname: closer\ndescription:\n---\nBody\n", []string{"frontmatter missing 'description'"}},
		{"block without content", "---\nname: closer\ndescription: >-\n---\nBody\n", []string{"block scalar '>-' has no indented content"}},
		{"empty tools list", "---\nname: closer\ndescription: d\ntools:\nmodel: sonnet\n---\nBody\n", []string{"'tools' has no entries"}},
		{"flow empty tools", "---\nname: closer\ndescription: d\ntools: []\n---\nBody\n", []string{"'tools' has no entries"}},
		{"no body", "---\nname: closer\ndescription: d\n---\n\n  \n", []string{"agents/closer.md has no content after frontmatter"}},
		{"everything wrong", "---\ntools:\n---\n", []string{
			"frontmatter missing 'name'",
			"frontmatter missing 'description'",
			"'tools' has no entries",
			"has no content after frontmatter",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := salesTree(t, map[string]string{"plugins/sales/agents/closer.md": tt.content})
			expectErrors(t, runTree(root), tt.want...)
		})
	}
}

func TestCommandRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"valid", "---\ndescription: Deploy it\nallowed-tools:\n  - Bash(git:*)\n---\nDeploy.\n", nil},
		{"inline allowed tools", "---\ndescription: Deploy it\nallowed-tools: Bash\n---\nDeploy.\n", nil},
		{"no name needed", "---\ndescription: Deploy it\n---\nDeploy.\n", nil},
		{"missing description", "---\nargument-hint: env\n---\nDeploy.\n", []string{"commands/deploy.md frontmatter missing 'description'"}},
		{"empty allowed tools", "---\ndescription: d\nallowed-tools: |\n---\nDeploy.\n", []string{"'allowed-tools' has no entries"}},
		{"no frontmatter", "Deploy.\n", []string{"commands/deploy.md missing YAML frontmatter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := salesTree(t, map[string]string{"plugins/sales/commands/deploy.md": tt.content})
			expectErrors(t, runTree(root), tt.want...)
		})
	}
}
