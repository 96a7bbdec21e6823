package audit

import (
	"fmt"
	"strconv"

	"plugincheck/internal/report"
	"plugincheck/internal/validate"
)

const operation = "validate"

// RunStarted records the beginning of a validation of root.
func (l *Logger) RunStarted(root string) error {
	return l.Log(Event{
		Operation: operation,
		Phase:     PhaseStart,
		Status:    "ok",
		Fields:    map[string]string{"root": root},
	})
}

// RunFinished records one event per validated plugin and a closing event
// carrying the verdict.
func (l *Logger) RunFinished(r *report.Report, res validate.Result) error {
	for _, p := range res.Plugins {
		status := "ok"
		if p.Errors > 0 {
			status = "fail"
		}
		if err := l.Log(Event{
			Operation: operation,
			Phase:     PhasePlugin,
			Status:    status,
			Fields: map[string]string{
				"plugin": p.Ref.Name,
				"source": p.Ref.Source,
				"errors": strconv.Itoa(p.Errors),
			},
		}); err != nil {
			return err
		}
	}

	ev := Event{
		Operation: operation,
		Phase:     PhaseFinish,
		Status:    "pass",
		Fields: map[string]string{
			"plugins": strconv.Itoa(len(res.Plugins)),
			"errors":  strconv.Itoa(r.ErrorCount()),
		},
	}
	if !r.Passed() {
		ev.Status = "fail"
		ev.Code = "VAL_FAILED"
		ev.Message = fmt.Sprintf("validation failed with %d error(s)", r.ErrorCount())
	}
	return l.Log(ev)
}
