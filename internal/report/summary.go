package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/timberline-data/harvest.report/internal/stats"
)

// WriteSummary prints the human-readable run summary: per-category tallies,
// value ranges and the output location. These lines are observational, not
// part of the CSV contract.
func WriteSummary(w io.Writer, s stats.Summary, outputPath string) {
	fmt.Fprintf(w, "Rows written: %d\n", s.Rows)

	types := make([]string, 0, len(s.ByForestType))
	for ft := range s.ByForestType {
		types = append(types, ft)
	}
	sort.Strings(types)
	for _, ft := range types {
		fmt.Fprintf(w, "  %-10s %d\n", ft, s.ByForestType[ft])
	}

	if s.Rows > 0 {
		fmt.Fprintf(w, "Biomass (t/ha): min=%.1f max=%.1f mean=%.1f median=%.1f\n",
			s.BiomassMin, s.BiomassMax, s.BiomassMean, s.BiomassMedian)
		fmt.Fprintf(w, "Biomass percentiles: p25=%.1f p75=%.1f p95=%.1f\n",
			s.BiomassP25, s.BiomassP75, s.BiomassP95)
		fmt.Fprintf(w, "Harvest probability: min=%.4f max=%.4f\n", s.ProbMin, s.ProbMax)
	}
	fmt.Fprintf(w, "Output: %s\n", outputPath)
}
