// Package pipeline runs the extraction stages in order: load the four
// layers, locate harvested pixels, join per-pixel values, filter, and write
// the outputs. The run either completes, exits early at one of the two
// defined points, or fails on the first I/O error.
package pipeline

import (
	"fmt"

	"github.com/timberline-data/harvest.report/internal/config"
	"github.com/timberline-data/harvest.report/internal/extract"
	"github.com/timberline-data/harvest.report/internal/fsutil"
	"github.com/timberline-data/harvest.report/internal/monitoring"
	"github.com/timberline-data/harvest.report/internal/raster"
	"github.com/timberline-data/harvest.report/internal/report"
	"github.com/timberline-data/harvest.report/internal/stats"
)

// Exit reasons recorded with each run. The two early exits are defined
// outcomes, not errors: no output file is produced for them.
const (
	ReasonCompleted   = "completed"
	ReasonNoHarvest   = "no harvested pixels"
	ReasonNoSurvivors = "no rows after validity filter"
)

// Result reports what one run did, for the console summary and run history.
type Result struct {
	GridRows, GridCols int
	HarvestedPixels    int
	Pass1Rows          int
	Pass2Rows          int
	Summary            stats.Summary
	Records            []extract.PixelRecord
	OutputPath         string // empty on early exit
	ExitReason         string
}

// Run executes the pipeline described by cfg against fs.
func Run(cfg *config.RunConfig, fs fsutil.FileSystem) (*Result, error) {
	harvest, err := raster.Load(fs, cfg.GetHarvestPath())
	if err != nil {
		return nil, err
	}
	biomass, err := raster.Load(fs, cfg.GetBiomassPath())
	if err != nil {
		return nil, err
	}
	forestType, err := raster.Load(fs, cfg.GetForestTypePath())
	if err != nil {
		return nil, err
	}
	harvestProb, err := raster.Load(fs, cfg.GetHarvestProbPath())
	if err != nil {
		return nil, err
	}

	monitoring.Logf("loaded 4 layers, harvest grid is %d x %d (%d cells)",
		harvest.Rows, harvest.Cols, len(harvest.Data))

	if cfg.GetCheckShapes() {
		if err := raster.CheckShapes(harvest, biomass, forestType, harvestProb); err != nil {
			return nil, err
		}
	}

	res := &Result{
		GridRows: harvest.Rows,
		GridCols: harvest.Cols,
	}

	mask := extract.HarvestMask(harvest, cfg.GetHarvestValue())
	res.HarvestedPixels = mask.Count
	monitoring.Logf("harvested pixels: %d", mask.Count)
	if mask.Count == 0 {
		res.ExitReason = ReasonNoHarvest
		res.Summary = stats.Summarize(nil)
		monitoring.Logf("no harvested pixels found, nothing to extract")
		return res, nil
	}

	recs := extract.Collect(mask, biomass, forestType, harvestProb)

	recs = extract.FilterKnown(recs)
	res.Pass1Rows = len(recs)
	monitoring.Logf("rows after validity filter (biomass > 0, known type): %d", len(recs))
	if len(recs) == 0 {
		res.ExitReason = ReasonNoSurvivors
		res.Summary = stats.Summarize(nil)
		monitoring.Logf("no valid rows, nothing to write")
		return res, nil
	}

	min, max := cfg.GetBiomassMin(), cfg.GetBiomassMax()
	recs = extract.FilterRange(recs, min, max)
	res.Pass2Rows = len(recs)
	monitoring.Logf("rows after range filter (%g <= biomass <= %g, probability present): %d",
		min, max, len(recs))

	res.Records = recs
	res.Summary = stats.Summarize(recs)

	outputPath := cfg.GetOutputPath()
	if err := report.WriteCSVFile(fs, outputPath, recs); err != nil {
		return nil, err
	}
	res.OutputPath = outputPath
	monitoring.Logf("wrote %d rows to %s", len(recs), outputPath)

	if path := cfg.GetHTMLReportPath(); path != "" {
		if err := report.RenderHTML(fs, path, res.Summary, recs); err != nil {
			return nil, fmt.Errorf("pipeline: html report: %w", err)
		}
		monitoring.Logf("wrote HTML report to %s", path)
	}

	if path := cfg.GetHistogramPath(); path != "" && len(recs) > 0 {
		if err := report.SaveHistogram(path, recs); err != nil {
			return nil, fmt.Errorf("pipeline: histogram: %w", err)
		}
		monitoring.Logf("wrote biomass histogram to %s", path)
	}

	res.ExitReason = ReasonCompleted
	return res, nil
}
