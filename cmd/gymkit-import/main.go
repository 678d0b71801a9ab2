package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/gymkit/internal/ingest/schedule"
	"github.com/claude/gymkit/internal/match"
)

// gymkit-import lints a schedule file: it parses it the way the server does
// and reports what survives, so malformed rows are caught before the file is
// bundled.
func main() {
	path := flag.String("path", "", "path to schedule file (required)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *path == "" {
		fmt.Fprintf(os.Stderr, "Usage: gymkit-import -path /path/to/schedule.csv\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Error("failed to read schedule file", "path", *path, "error", err)
		os.Exit(1)
	}

	// No catalog here, so every media key is a synthesized fallback; the
	// lint cares about row structure, not matching.
	resolver := match.NewResolver(nil, "", nil)
	workouts, err := schedule.Parse(bytes.NewReader(raw), resolver.ResolveMediaKey)
	if err != nil {
		log.Error("parse failed", "error", err)
		os.Exit(1)
	}

	dataLines := countDataLines(raw)
	rows := 0
	for _, w := range workouts {
		rows += len(w.Exercises)
	}

	log.Info("schedule parsed",
		"data_lines", dataLines,
		"rows_kept", rows,
		"rows_skipped", dataLines-rows,
		"scheduled_workouts", len(workouts))
	for _, w := range workouts {
		log.Info("scheduled workout",
			"date", w.Date.Format("2006-01-02"),
			"workoutID", w.WorkoutID,
			"category", w.Category,
			"exercises", len(w.Exercises))
	}
}

// countDataLines counts non-empty lines after the header.
func countDataLines(raw []byte) int {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	n := -1 // discount the header
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			n++
		}
	}
	if n < 0 {
		return 0
	}
	return n
}
