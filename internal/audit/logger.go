// Package audit appends one JSON object per line describing each
// validation run, so CI history can be inspected after the fact.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run phases, in the order a run emits them.
const (
	PhaseStart  = "start"
	PhasePlugin = "plugin"
	PhaseFinish = "finish"
)

// Event is one line of the log. Every event of a run shares its RunID.
type Event struct {
	Timestamp string            `json:"timestamp"`
	RunID     string            `json:"runId"`
	Operation string            `json:"operation"`
	Phase     string            `json:"phase"`
	Status    string            `json:"status"`
	Code      string            `json:"code,omitempty"`
	Message   string            `json:"message,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Logger appends the events of a single run. A nil Logger, or one with an
// empty path, discards everything.
type Logger struct {
	path  string
	runID string
	now   func() time.Time
	mu    sync.Mutex
}

func New(path string) *Logger {
	return &Logger{path: path, runID: uuid.NewString(), now: time.Now}
}

func (l *Logger) RunID() string {
	if l == nil {
		return ""
	}
	return l.runID
}

func (l *Logger) enabled() bool {
	return l != nil && l.path != ""
}

// Log stamps ev with the time and run id and appends it.
func (l *Logger) Log(ev Event) error {
	if !l.enabled() {
		return nil
	}
	ev.Timestamp = l.now().UTC().Format(time.RFC3339Nano)
	ev.RunID = l.runID

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.open()
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(ev); err != nil {
		f.Close()
		return fmt.Errorf("encode %s event: %w", ev.Phase, err)
	}
	return f.Close()
}

func (l *Logger) open() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
