package report

import (
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/timberline-data/harvest.report/internal/extract"
	"github.com/timberline-data/harvest.report/internal/fsutil"
	"github.com/timberline-data/harvest.report/internal/stats"
)

// biomassBinWidth is the histogram bin width in t/ha for the HTML report.
const biomassBinWidth = 50

// RenderHTML writes a standalone HTML report with a biomass histogram and a
// forest-type breakdown for the filtered pixel set.
func RenderHTML(fs fsutil.FileSystem, path string, s stats.Summary, recs []extract.PixelRecord) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Biomass at harvested pixels",
			Subtitle: fmt.Sprintf("%d pixels", s.Rows),
		}),
	)
	labels, counts := biomassHistogram(recs)
	data := make([]opts.BarData, len(counts))
	for i, n := range counts {
		data[i] = opts.BarData{Value: n}
	}
	bar.SetXAxis(labels).AddSeries("pixels", data)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Forest type"}),
	)
	types := make([]string, 0, len(s.ByForestType))
	for ft := range s.ByForestType {
		types = append(types, ft)
	}
	sort.Strings(types)
	pieData := make([]opts.PieData, 0, len(types))
	for _, ft := range types {
		pieData = append(pieData, opts.PieData{Name: ft, Value: s.ByForestType[ft]})
	}
	pie.AddSeries("forest type", pieData)

	page := components.NewPage()
	page.AddCharts(bar, pie)

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("report: render %s: %w", path, err)
	}
	return f.Close()
}

// biomassHistogram bins biomass values into fixed-width bins from zero.
func biomassHistogram(recs []extract.PixelRecord) (labels []string, counts []int) {
	if len(recs) == 0 {
		return nil, nil
	}
	maxBin := 0
	for _, r := range recs {
		bin := int(r.Biomass) / biomassBinWidth
		if bin > maxBin {
			maxBin = bin
		}
	}
	counts = make([]int, maxBin+1)
	for _, r := range recs {
		counts[int(r.Biomass)/biomassBinWidth]++
	}
	labels = make([]string, len(counts))
	for i := range labels {
		labels[i] = fmt.Sprintf("%d-%d", i*biomassBinWidth, (i+1)*biomassBinWidth)
	}
	return labels, counts
}
