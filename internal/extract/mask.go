// Package extract locates harvested pixels in the harvest mask layer and
// joins co-located values from the biomass, forest-type and harvest
// probability layers into per-pixel records.
package extract

import "github.com/timberline-data/harvest.report/internal/raster"

// Mask marks which cells of a grid are flagged as harvested. Cells is
// index-aligned with Grid.Data (row-major); Count is the number of true
// cells.
type Mask struct {
	Rows  int
	Cols  int
	Cells []bool
	Count int
}

// HarvestMask builds the mask of cells whose harvest-layer value equals
// harvestValue. NoData cells never match.
func HarvestMask(g *raster.Grid, harvestValue float64) Mask {
	m := Mask{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: make([]bool, len(g.Data)),
	}
	for i, v := range g.Data {
		if g.IsNoData(v) {
			continue
		}
		if v == harvestValue {
			m.Cells[i] = true
			m.Count++
		}
	}
	return m
}
