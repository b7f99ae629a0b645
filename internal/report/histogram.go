package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/timberline-data/harvest.report/internal/extract"
)

// SaveHistogram renders a PNG histogram of the biomass column. plot.Save
// writes straight to the OS filesystem, so this output (unlike the CSV and
// HTML reports) does not go through fsutil.
func SaveHistogram(path string, recs []extract.PixelRecord) error {
	if len(recs) == 0 {
		return fmt.Errorf("report: no records to plot")
	}

	vals := make(plotter.Values, len(recs))
	for i, r := range recs {
		vals[i] = r.Biomass
	}

	p := plot.New()
	p.Title.Text = "Biomass at harvested pixels"
	p.X.Label.Text = "AGB (t/ha)"
	p.Y.Label.Text = "pixels"

	h, err := plotter.NewHist(vals, 16)
	if err != nil {
		return fmt.Errorf("report: histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
