// Package stats computes summary statistics over the filtered pixel table.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/timberline-data/harvest.report/internal/extract"
)

// Summary describes the final filtered table: per-category tallies and the
// value ranges reported alongside the CSV output.
type Summary struct {
	Rows         int
	ByForestType map[string]int

	BiomassMin    float64
	BiomassMax    float64
	BiomassMean   float64
	BiomassMedian float64
	BiomassP25    float64
	BiomassP75    float64
	BiomassP95    float64

	ProbMin float64
	ProbMax float64
}

// Summarize computes the Summary for a filtered record set. An empty input
// yields a zero Summary with a non-nil tally map.
func Summarize(recs []extract.PixelRecord) Summary {
	s := Summary{
		Rows:         len(recs),
		ByForestType: make(map[string]int),
	}
	if len(recs) == 0 {
		return s
	}

	biomass := make([]float64, len(recs))
	probs := make([]float64, len(recs))
	for i, r := range recs {
		biomass[i] = r.Biomass
		probs[i] = r.HarvestProb
		s.ByForestType[r.ForestType]++
	}

	s.BiomassMin = floats.Min(biomass)
	s.BiomassMax = floats.Max(biomass)
	s.BiomassMean = stat.Mean(biomass, nil)

	sort.Float64s(biomass)
	s.BiomassMedian = stat.Quantile(0.5, stat.Empirical, biomass, nil)
	s.BiomassP25 = stat.Quantile(0.25, stat.Empirical, biomass, nil)
	s.BiomassP75 = stat.Quantile(0.75, stat.Empirical, biomass, nil)
	s.BiomassP95 = stat.Quantile(0.95, stat.Empirical, biomass, nil)

	s.ProbMin = floats.Min(probs)
	s.ProbMax = floats.Max(probs)

	return s
}
