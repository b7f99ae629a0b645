// Package testutil provides shared test fixtures and helpers.
//
// This package centralises common test helpers to reduce duplication across
// pipeline-level test files.
package testutil

import (
	"testing"

	"github.com/timberline-data/harvest.report/internal/fsutil"
	"github.com/timberline-data/harvest.report/internal/monitoring"
	"github.com/timberline-data/harvest.report/internal/raster"
)

// WriteASC writes an ESRI ASCII grid with the given shape and values to fs.
func WriteASC(t *testing.T, fs fsutil.FileSystem, path string, rows, cols int, values []float64) {
	t.Helper()
	g := raster.New(rows, cols)
	copy(g.Data, values)
	if err := raster.WriteFile(fs, path, g); err != nil {
		t.Fatalf("write grid %s: %v", path, err)
	}
}

// Mute silences pipeline diagnostics for the duration of the test.
func Mute(t *testing.T) {
	t.Helper()
	original := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.Logf = original })
}
