package report

import "time"

// Resource kinds tallied per plugin.
const (
	KindSkill     = "skills"
	KindAgent     = "agents"
	KindCommand   = "commands"
	KindHook      = "hooks"
	KindMCPServer = "mcp servers"
	unknownPlugin = "unknown"
)

// Kinds lists resource kinds in summary order.
var Kinds = []string{KindSkill, KindAgent, KindCommand, KindHook, KindMCPServer}

// Printer receives progress as validation runs.
type Printer interface {
	Step(msg string)
	Fail(msg string)
}

// Report is the single sink every validator writes to. Errors keep the
// order they were recorded in; plugins keep the order they were first seen.
type Report struct {
	StartedAt time.Time

	printer Printer
	errors  []string
	plugins []string
	counts  map[string]map[string]int
}

// New returns an empty report that echoes progress to p. p may be nil.
func New(p Printer) *Report {
	return &Report{
		StartedAt: time.Now(),
		printer:   p,
		counts:    map[string]map[string]int{},
	}
}

// Step announces the check that is about to run.
func (r *Report) Step(msg string) {
	if r.printer != nil {
		r.printer.Step(msg)
	}
}

// RecordError appends a violation.
func (r *Report) RecordError(msg string) {
	r.errors = append(r.errors, msg)
	if r.printer != nil {
		r.printer.Fail(msg)
	}
}

// RecordResource counts one discovered resource of kind for plugin,
// regardless of whether it later fails validation.
func (r *Report) RecordResource(plugin, kind string) {
	r.Track(plugin)
	if plugin == "" {
		plugin = unknownPlugin
	}
	r.counts[plugin][kind]++
}

// Track registers plugin in the summary even when it has no resources.
func (r *Report) Track(plugin string) {
	if plugin == "" {
		plugin = unknownPlugin
	}
	if _, ok := r.counts[plugin]; ok {
		return
	}
	r.plugins = append(r.plugins, plugin)
	r.counts[plugin] = map[string]int{}
}

// ErrorCount is the number of recorded violations.
func (r *Report) ErrorCount() int { return len(r.errors) }

// Passed reports whether the run recorded no violations.
func (r *Report) Passed() bool { return len(r.errors) == 0 }

// Errors returns a copy of the recorded violations in detection order.
func (r *Report) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// Plugins returns tracked plugin names in first-seen order.
func (r *Report) Plugins() []string {
	out := make([]string, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// Count returns how many resources of kind were found for plugin.
func (r *Report) Count(plugin, kind string) int {
	return r.counts[plugin][kind]
}

// Counts returns the non-zero tallies for plugin.
func (r *Report) Counts(plugin string) map[string]int {
	out := map[string]int{}
	for kind, n := range r.counts[plugin] {
		if n > 0 {
			out[kind] = n
		}
	}
	return out
}
