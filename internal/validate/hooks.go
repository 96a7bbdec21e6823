package validate

import (
	"fmt"
	"path/filepath"
	"slices"

	"plugincheck/internal/report"
)

// HookEvents are the lifecycle events a hook may attach to.
var HookEvents = []string{
	"PreToolUse",
	"PostToolUse",
	"Notification",
	"UserPromptSubmit",
	"Stop",
	"SubagentStop",
	"PreCompact",
	"SessionStart",
	"SessionEnd",
}

// HookTypes are the handler kinds. Each names the field carrying its
// content: a "command" hook needs "command", a "prompt" hook "prompt".
var HookTypes = []string{"command", "prompt"}

// ValidateHooks checks the plugin's hooks descriptor:
//
//	{"hooks": {"<event>": [{"matcher": "...", "type": "command", "command": "..."}]}}
//
// Entries may also group handlers as {"matcher": "...", "hooks": [{...}]}.
// Unknown events and types are reported without skipping sibling entries.
func (v *Validator) ValidateHooks(plugin, dir string) {
	rel := v.Layout.HooksFile
	data, err := readObject(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		v.pluginErrorf(plugin, "%s %s", rel, describeLoadError(err))
		return
	}
	rawHooks, ok := data["hooks"]
	if !ok {
		v.pluginErrorf(plugin, "%s missing 'hooks' object", rel)
		return
	}
	events, ok := rawHooks.(map[string]any)
	if !ok {
		v.pluginErrorf(plugin, "%s 'hooks' must be an object", rel)
		return
	}

	for _, event := range sortedKeys(events) {
		if !slices.Contains(HookEvents, event) {
			v.pluginErrorf(plugin, "%s unknown hook event '%s'%s", rel, event, didYouMean(event, HookEvents))
		}
		entries, ok := events[event].([]any)
		if !ok {
			v.pluginErrorf(plugin, "%s event '%s' must be a list of hook entries", rel, event)
			continue
		}
		for i, raw := range entries {
			v.Report.RecordResource(plugin, report.KindHook)
			where := fmt.Sprintf("%s %s[%d]", rel, event, i)
			entry, ok := raw.(map[string]any)
			if !ok {
				v.pluginErrorf(plugin, "%s must be an object", where)
				continue
			}
			if !has(entry, "matcher") {
				v.pluginErrorf(plugin, "%s missing 'matcher'", where)
			}
			if group, grouped := entry["hooks"]; grouped && !has(entry, "type") {
				v.checkHookGroup(plugin, where, group)
				continue
			}
			v.checkHookHandler(plugin, where, entry)
		}
	}
}

func (v *Validator) checkHookGroup(plugin, where string, group any) {
	handlers, ok := group.([]any)
	if !ok || len(handlers) == 0 {
		v.pluginErrorf(plugin, "%s 'hooks' must be a non-empty list", where)
		return
	}
	for j, raw := range handlers {
		at := fmt.Sprintf("%s.hooks[%d]", where, j)
		handler, ok := raw.(map[string]any)
		if !ok {
			v.pluginErrorf(plugin, "%s must be an object", at)
			continue
		}
		v.checkHookHandler(plugin, at, handler)
	}
}

// checkHookHandler validates "type" and the content field it names. An
// unknown type has no correlated field, so only the type is reported.
func (v *Validator) checkHookHandler(plugin, where string, h map[string]any) {
	raw, ok := h["type"]
	if !ok || raw == nil {
		v.pluginErrorf(plugin, "%s missing 'type'", where)
		return
	}
	typ, isString := raw.(string)
	if !isString || !slices.Contains(HookTypes, typ) {
		v.pluginErrorf(plugin, "%s unknown type '%v'%s", where, raw, didYouMean(typ, HookTypes))
		return
	}
	if !has(h, typ) {
		v.pluginErrorf(plugin, "%s type '%s' requires a '%s' field", where, typ, typ)
	}
}
