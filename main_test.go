package main

import (
	"strings"
	"testing"
	"time"

	"github.com/timberline-data/harvest.report/internal/rundb"
)

func TestPrintRunsEmpty(t *testing.T) {
	var sb strings.Builder
	printRuns(&sb, nil)
	if got := sb.String(); got != "no runs recorded\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPrintRunsTable(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	runs := []rundb.RunRecord{
		{
			RunID:           "0b9c6f2a-0000-0000-0000-000000000001",
			StartedAt:       started,
			FinishedAt:      started.Add(2 * time.Second),
			HarvestedPixels: 120,
			Pass1Rows:       100,
			Pass2Rows:       97,
			ExitReason:      "completed",
		},
	}
	var sb strings.Builder
	printRuns(&sb, runs)
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "run_id") {
		t.Errorf("missing header: %q", lines[0])
	}
	for _, want := range []string{"0b9c6f2a", "2026-03-14 09:30:00", "120", "97", "completed"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row missing %q: %q", want, lines[1])
		}
	}
}

func TestBuildConfigDefaults(t *testing.T) {
	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if got := cfg.GetBiomassMin(); got != 1 {
		t.Errorf("default biomass min = %v, want 1", got)
	}
	if got := cfg.GetBiomassMax(); got != 800 {
		t.Errorf("default biomass max = %v, want 800", got)
	}
	if !cfg.GetCheckShapes() {
		t.Error("shape check should default to enabled")
	}
}
