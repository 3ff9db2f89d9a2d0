package eventlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "type", "timestamp", "dimension", "free_cells",
	"fingerprint", "workers", "max_depth", "duration_ms",
	"cells", "branches", "tasks", "error",
}

// WriteCSV exports events as CSV with a fixed header row.
func WriteCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, ev := range events {
		record := []string{
			ev.RunID,
			string(ev.Type),
			ev.Timestamp.Format(time.RFC3339Nano),
			strconv.Itoa(ev.Dimension),
			strconv.Itoa(ev.FreeCells),
			ev.Fingerprint,
			strconv.Itoa(ev.Workers),
			strconv.Itoa(ev.MaxDepth),
			strconv.FormatFloat(ev.DurationMS, 'f', -1, 64),
			strconv.FormatInt(ev.Cells, 10),
			strconv.FormatInt(ev.Branches, 10),
			strconv.FormatInt(ev.Tasks, 10),
			ev.Error,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write event %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads an event log previously written by WriteCSV.
func ParseCSV(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return NewLog(), nil
	}

	log := NewLog()
	for i, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: %d columns, want %d", i+2, len(rec), len(csvHeader))
		}
		ts, err := time.Parse(time.RFC3339Nano, rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad timestamp: %w", i+2, err)
		}
		ev := Event{
			RunID:       rec[0],
			Type:        EventType(rec[1]),
			Timestamp:   ts,
			Fingerprint: rec[5],
			Error:       rec[12],
		}
		for _, field := range []struct {
			col int
			dst *int
		}{
			{3, &ev.Dimension}, {4, &ev.FreeCells}, {6, &ev.Workers}, {7, &ev.MaxDepth},
		} {
			v, err := strconv.Atoi(rec[field.col])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+2, field.col, err)
			}
			*field.dst = v
		}
		if ev.DurationMS, err = strconv.ParseFloat(rec[8], 64); err != nil {
			return nil, fmt.Errorf("row %d: bad duration: %w", i+2, err)
		}
		for _, field := range []struct {
			col int
			dst *int64
		}{
			{9, &ev.Cells}, {10, &ev.Branches}, {11, &ev.Tasks},
		} {
			v, err := strconv.ParseInt(rec[field.col], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+2, field.col, err)
			}
			*field.dst = v
		}
		log.Append(ev)
	}
	return log, nil
}
