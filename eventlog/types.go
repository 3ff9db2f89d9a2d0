// Package eventlog records and parses solve-run lifecycle events.
// Every run gets a unique ID; its events capture the puzzle shape, the
// engine configuration, and the outcome with timing counters. Logs are
// stored as JSONL (one event per line) and exportable as CSV.
package eventlog

import (
	"sort"
	"time"
)

// EventType names a solve-run lifecycle stage.
type EventType string

const (
	// RunStarted is emitted before the engine begins searching.
	RunStarted EventType = "run_started"

	// RunSolved is emitted when the engine returns a solution.
	RunSolved EventType = "run_solved"

	// RunExhausted is emitted when no valid completion exists.
	RunExhausted EventType = "run_exhausted"

	// RunFailed is emitted when the run aborts on an error that is not
	// the unsolvable outcome (cancellation, bad input).
	RunFailed EventType = "run_failed"
)

// Event is a single solve-run record.
type Event struct {
	RunID       string    `json:"run_id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Dimension   int       `json:"dimension,omitempty"`
	FreeCells   int       `json:"free_cells,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Workers     int       `json:"workers,omitempty"`
	MaxDepth    int       `json:"max_depth,omitempty"`
	DurationMS  float64   `json:"duration_ms,omitempty"`
	Cells       int64     `json:"cells,omitempty"`
	Branches    int64     `json:"branches,omitempty"`
	Tasks       int64     `json:"tasks,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// Log is an in-memory collection of events.
type Log struct {
	Events []Event
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{Events: make([]Event, 0)}
}

// Append adds an event to the log.
func (l *Log) Append(ev Event) {
	l.Events = append(l.Events, ev)
}

// Sort orders events by timestamp, oldest first.
func (l *Log) Sort() {
	sort.SliceStable(l.Events, func(i, j int) bool {
		return l.Events[i].Timestamp.Before(l.Events[j].Timestamp)
	})
}

// ByRun returns the events belonging to one run, in log order.
func (l *Log) ByRun(runID string) []Event {
	var out []Event
	for _, ev := range l.Events {
		if ev.RunID == runID {
			out = append(out, ev)
		}
	}
	return out
}

// Runs returns the distinct run IDs in first-seen order.
func (l *Log) Runs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ev := range l.Events {
		if !seen[ev.RunID] {
			seen[ev.RunID] = true
			out = append(out, ev.RunID)
		}
	}
	return out
}
