package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/eventlog"
)

func events(args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	run := fs.String("run", "", "Show only this run ID")
	csvOut := fs.String("csv", "", "Export the events as CSV to this file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku events <log.jsonl> [options]

Show a timeline from a solve event log.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("event log file required")
	}

	log, err := eventlog.ParseJSONLFile(fs.Arg(0))
	if err != nil {
		return err
	}
	log.Sort()

	evs := log.Events
	if *run != "" {
		evs = log.ByRun(*run)
		if len(evs) == 0 {
			return fmt.Errorf("no events for run %s", *run)
		}
	}

	for _, ev := range evs {
		id := ev.RunID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("%s %-14s run=%s", ev.Timestamp.Format("15:04:05.000"), ev.Type, id)
		switch ev.Type {
		case eventlog.RunStarted:
			fmt.Printf(" dim=%d free=%d workers=%d depth=%d",
				ev.Dimension, ev.FreeCells, ev.Workers, ev.MaxDepth)
		case eventlog.RunSolved, eventlog.RunExhausted:
			fmt.Printf(" %.3fms cells=%d branches=%d tasks=%d",
				ev.DurationMS, ev.Cells, ev.Branches, ev.Tasks)
		case eventlog.RunFailed:
			fmt.Printf(" %.3fms error=%q", ev.DurationMS, ev.Error)
		}
		fmt.Println()
	}
	fmt.Printf("%d events across %d runs\n", len(evs), len(log.Runs()))

	if *csvOut != "" {
		f, err := os.Create(*csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := eventlog.WriteCSV(f, evs); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *csvOut)
	}
	return nil
}
