package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"plugincheck/internal/report"
)

// SummaryLine formats one plugin's tallies, e.g. "sales: 1 skills, 2 agents".
func SummaryLine(r *report.Report, plugin string) string {
	var parts []string
	for _, kind := range report.Kinds {
		if n := r.Count(plugin, kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) == 0 {
		return plugin + ": no resources"
	}
	return plugin + ": " + strings.Join(parts, ", ")
}

// Summary writes the per-plugin resource counts. Colored output uses a
// table; plain output one line per plugin.
func Summary(w io.Writer, r *report.Report, colored bool) {
	plugins := r.Plugins()
	if len(plugins) == 0 {
		return
	}
	if colored {
		fmt.Fprintln(w, summaryTable(r, plugins))
		return
	}
	fmt.Fprintln(w, "Resources:")
	for _, p := range plugins {
		fmt.Fprintln(w, "  "+SummaryLine(r, p))
	}
}

func summaryTable(r *report.Report, plugins []string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	headers := append([]string{"plugin"}, report.Kinds...)

	rows := make([][]string, 0, len(plugins))
	for _, p := range plugins {
		row := []string{p}
		for _, kind := range report.Kinds {
			row = append(row, strconv.Itoa(r.Count(p, kind)))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}

// Verdict writes the final pass/fail line.
func Verdict(w io.Writer, r *report.Report, plugins int, colored bool) {
	if r.Passed() {
		c := color.New(color.FgGreen, color.Bold)
		setColor(c, colored)
		fmt.Fprintln(w, c.Sprintf("All checks passed (%d plugins validated).", plugins))
		return
	}
	c := color.New(color.FgRed, color.Bold)
	setColor(c, colored)
	fmt.Fprintln(w, c.Sprintf("Validation failed with %d error(s).", r.ErrorCount()))
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
