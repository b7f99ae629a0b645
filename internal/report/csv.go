// Package report serializes the filtered pixel table and renders the
// human-readable and chart summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/timberline-data/harvest.report/internal/extract"
	"github.com/timberline-data/harvest.report/internal/fsutil"
)

// Header is the output CSV header row. The column set and order are the
// one external contract of the tool.
var Header = []string{"biomass", "forest_type", "harvest_probability"}

// CSVWriter wraps csv.Writer with methods for pixel-table output.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSVWriter over w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (c *CSVWriter) WriteHeader() error {
	return c.w.Write(Header)
}

// WriteRecord writes one pixel record. The numeric forest-type code is
// intentionally not serialized.
func (c *CSVWriter) WriteRecord(r extract.PixelRecord) error {
	return c.w.Write([]string{
		formatFloat(r.Biomass),
		r.ForestType,
		formatFloat(r.HarvestProb),
	})
}

// WriteRecords writes all records in order.
func (c *CSVWriter) WriteRecords(recs []extract.PixelRecord) error {
	for _, r := range recs {
		if err := c.WriteRecord(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows and reports any deferred write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// WriteCSVFile writes the header plus all records to path. The same record
// order always produces byte-identical output.
func WriteCSVFile(fs fsutil.FileSystem, path string, recs []extract.PixelRecord) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	c := NewCSVWriter(f)
	if err := c.WriteHeader(); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := c.WriteRecords(recs); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := c.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
