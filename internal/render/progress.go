// Package render turns a validation report into terminal output and JSON.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"plugincheck/internal/config"
)

// ColorEnabled resolves a color mode. "auto" defers to fatih/color's own
// terminal and NO_COLOR detection.
func ColorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Progress prints validation steps and failures as they happen.
type Progress struct {
	w    io.Writer
	step *color.Color
	fail *color.Color
}

func NewProgress(w io.Writer, colored bool) *Progress {
	p := &Progress{
		w:    w,
		step: color.New(color.FgCyan),
		fail: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.step, p.fail} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Progress) Step(msg string) {
	fmt.Fprintln(p.w, p.step.Sprint(msg))
}

func (p *Progress) Fail(msg string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.fail.Sprint("FAIL:"), msg)
}
