package eventlog

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/search"
)

// Recorder emits the events of one solve run. Events are appended as
// JSONL to the sink (if any) and mirrored to the structured logger.
// Pass a disabled logger (zerolog.Nop) to keep runs quiet.
type Recorder struct {
	runID    string
	sink     io.Writer
	log      zerolog.Logger
	workers  int
	maxDepth int
}

// NewRecorder creates a recorder with a fresh run ID. sink may be nil.
func NewRecorder(sink io.Writer, logger zerolog.Logger) *Recorder {
	return &Recorder{
		runID: uuid.NewString(),
		sink:  sink,
		log:   logger,
	}
}

// RunID returns the unique ID shared by this run's events.
func (r *Recorder) RunID() string { return r.runID }

// Started records the beginning of a run against the given puzzle and
// engine configuration.
func (r *Recorder) Started(b *board.Board, workers, maxDepth int) error {
	r.workers = workers
	r.maxDepth = maxDepth

	ev := Event{
		RunID:     r.runID,
		Type:      RunStarted,
		Timestamp: time.Now(),
		Dimension: b.Dim(),
		FreeCells: b.FreeCells(),
		Workers:   workers,
		MaxDepth:  maxDepth,
	}
	if occ, ok := b.Occupancy(); ok {
		ev.Fingerprint = occ.Hex()
	}
	return r.record(ev)
}

// Solved records a successful run.
func (r *Recorder) Solved(stats search.Stats) error {
	return r.finish(RunSolved, stats, "")
}

// Exhausted records a run that proved the puzzle unsolvable.
func (r *Recorder) Exhausted(stats search.Stats) error {
	return r.finish(RunExhausted, stats, "")
}

// Failed records a run aborted by an error.
func (r *Recorder) Failed(stats search.Stats, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return r.finish(RunFailed, stats, msg)
}

func (r *Recorder) finish(t EventType, stats search.Stats, errMsg string) error {
	return r.record(Event{
		RunID:      r.runID,
		Type:       t,
		Timestamp:  time.Now(),
		Workers:    r.workers,
		MaxDepth:   r.maxDepth,
		DurationMS: float64(stats.Duration) / float64(time.Millisecond),
		Cells:      stats.Cells,
		Branches:   stats.Branches,
		Tasks:      stats.Tasks,
		Error:      errMsg,
	})
}

func (r *Recorder) record(ev Event) error {
	r.log.Info().
		Str("run_id", ev.RunID).
		Int("dimension", ev.Dimension).
		Int("workers", ev.Workers).
		Int("max_depth", ev.MaxDepth).
		Float64("duration_ms", ev.DurationMS).
		Int64("branches", ev.Branches).
		Int64("tasks", ev.Tasks).
		Msg(string(ev.Type))

	if r.sink == nil {
		return nil
	}
	return WriteJSONL(r.sink, []Event{ev})
}
