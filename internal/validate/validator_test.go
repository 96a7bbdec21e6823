package validate

import (
	"reflect"
	"testing"

	"plugincheck/internal/report"
)

func TestRunValidMarketplace(t *testing.T) {
	root := salesTree(t, nil)
	v, r := newTestValidator(root)
	res := v.Run()

	expectErrors(t, r)
	if !r.Passed() {
		t.Fatalf("expected report to pass")
	}
	if got := r.Count("sales", report.KindSkill); got != 1 {
		t.Fatalf("expected 1 skill for sales, got %d", got)
	}
	if len(res.Plugins) != 1 || res.Plugins[0].Ref.Name != "sales" || res.Plugins[0].Errors != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunRejectsNonKebabPluginName(t *testing.T) {
	root := salesTree(t, map[string]string{
		"plugins/sales/.claude-plugin/plugin.json": `{"name":"Sales","version":"1.0.0"}`,
	})
	r := runTree(root)
	expectErrors(t, r, "Plugin 'sales' && kebab-case && 'Sales'")
}

func TestRunHookUnknownEventAndMissingCommand(t *testing.T) {
	root := salesTree(t, map[string]string{
		"plugins/sales/hooks/hooks.json": `{"hooks":{"Foo":[{"matcher":"*","type":"command"}]}}`,
	})
	r := runTree(root)
	expectErrors(t, r,
		"unknown hook event 'Foo'",
		"Foo[0] type 'command' requires a 'command' field",
	)
	if r.Count("sales", report.KindHook) != 1 {
		t.Fatalf("expected hook entry to be counted")
	}
}

func TestRunAgentBlockScalarWithoutContent(t *testing.T) {
	root := salesTree(t, map[string]string{
		"plugins/sales/agents/closer.md": "---\nname: closer\ndescription: |\ntools: Read\n---\n\nYou close deals.\n",
	})
	r := runTree(root)
	expectErrors(t, r, "agents/closer.md && block scalar '|' && no indented content")
}

func TestRunMissingSourceDirectoryShortCircuits(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".claude-plugin/marketplace.json": `{"name":"m","owner":{"name":"o"},"plugins":[{"name":"ghost","source":"./plugins/ghost"}]}`,
	})
	v, r := newTestValidator(root)
	res := v.Run()
	expectErrors(t, r, "Plugin 'ghost': source directory './plugins/ghost' not found")
	if res.Plugins[0].Errors != 1 {
		t.Fatalf("expected one error attributed to ghost, got %+v", res.Plugins[0])
	}
	if !reflect.DeepEqual(r.Plugins(), []string{"ghost"}) {
		t.Fatalf("ghost should still appear in the summary, got %v", r.Plugins())
	}
}

func TestRunIsDeterministic(t *testing.T) {
	root := salesTree(t, map[string]string{
		".claude-plugin/plugin.json":               `{}`,
		"plugins/sales/.claude-plugin/plugin.json": `{"name":"sales--ops"}`,
		"plugins/sales/skills/bar/SKILL.md":        "---\nname: baz\n---\n",
		"plugins/sales/skills/alpha/SKILL.md":      "no frontmatter",
		"plugins/sales/agents/b.md":                "---\nname: a\n---\n",
		"plugins/sales/agents/a.md":                "---\ndescription: x\ntools:\n---\nbody",
		"plugins/sales/commands/run.md":            "---\nallowed-tools:\n---\n",
		"plugins/sales/.mcp.json":                  `{"z":{},"a":{"type":"http"},"m":{"command":"x"}}`,
		"plugins/sales/hooks/hooks.json":           `{"hooks":{"Stop":[{"type":"cron"}],"PreToolUse":[{"matcher":"*","type":"prompt"}]}}`,
	})
	first := runTree(root)
	second := runTree(root)
	if first.ErrorCount() == 0 {
		t.Fatalf("fixture should produce errors")
	}
	if !reflect.DeepEqual(first.Errors(), second.Errors()) {
		t.Fatalf("runs differ:\n%v\n%v", first.Errors(), second.Errors())
	}
	if first.Passed() != second.Passed() {
		t.Fatalf("verdicts differ")
	}
}

func TestRunReportsEveryDefectInOnePass(t *testing.T) {
	root := salesTree(t, map[string]string{
		".claude-plugin/plugin.json":               `{}`,
		"plugins/sales/.claude-plugin/plugin.json": `{"name":"sales--ops"}`,
		"plugins/sales/skills/bar/SKILL.md":        "---\nname: baz\n---\n",
		"plugins/sales/agents/a.md":                "---\ndescription: x\ntools:\n---\nbody",
		"plugins/sales/commands/run.md":            "---\nallowed-tools:\n---\n",
		"plugins/sales/.mcp.json":                  `{"z":{},"a":{"type":"http"},"m":{"command":"x"}}`,
		"plugins/sales/hooks/hooks.json":           `{"hooks":{"Stop":[{"type":"cron"}],"PreToolUse":[{"matcher":"*","type":"prompt"}]}}`,
	})
	r := runTree(root)
	expectErrors(t, r,
		"Root .claude-plugin/plugin.json should not exist",
		"plugin.json 'name' must be kebab-case, got 'sales--ops'",
		"plugin.json missing 'version'",
		"skills/bar/SKILL.md 'name' is 'baz', expected 'bar'",
		"skills/bar/SKILL.md frontmatter missing 'description'",
		"skills/bar/SKILL.md has no content after frontmatter",
		"agents/a.md frontmatter missing 'name'",
		"agents/a.md 'tools' has no entries",
		"commands/run.md frontmatter missing 'description'",
		"commands/run.md 'allowed-tools' has no entries",
		"commands/run.md has no content after frontmatter",
		".mcp.json server 'a' needs 'command'",
		".mcp.json server 'z' needs 'command'",
		"PreToolUse[0] type 'prompt' requires a 'prompt' field",
		"Stop[0] missing 'matcher'",
		"Stop[0] unknown type 'cron'",
	)

	want := map[string]int{
		report.KindSkill:     2,
		report.KindAgent:     1,
		report.KindCommand:   1,
		report.KindMCPServer: 3,
		report.KindHook:      2,
	}
	if got := r.Counts("sales"); !reflect.DeepEqual(got, want) {
		t.Fatalf("counts = %v, want %v", got, want)
	}
}
