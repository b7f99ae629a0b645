package extract

import (
	"math"

	"github.com/timberline-data/harvest.report/internal/raster"
)

// Forest type labels produced by the recoder.
const (
	Broadleaf = "broadleaf"
	Conifer   = "conifer"
	Unknown   = "unknown"
)

// Numeric forest-type codes as encoded in the forest-type raster.
const (
	codeBroadleaf = 1
	codeConifer   = 2
)

// PixelRecord is one harvested pixel joined across the three value layers.
// ForestCode is the raw numeric code; it is dropped before serialization.
// A missing biomass or harvest probability value is stored as NaN.
type PixelRecord struct {
	Row, Col    int
	X, Y        float64 // cell-center map coordinates
	Biomass     float64
	ForestCode  float64
	ForestType  string
	HarvestProb float64
}

// ForestTypeLabel recodes a numeric forest-type value to its label. Any code
// other than the two known classes (including NoData) maps to Unknown.
func ForestTypeLabel(code float64) string {
	switch code {
	case codeBroadleaf:
		return Broadleaf
	case codeConifer:
		return Conifer
	default:
		return Unknown
	}
}

// Collect gathers one PixelRecord per masked cell in a single row-major
// pass. Every field of a record is read at the same flat index, so all
// values are guaranteed to refer to the same physical pixel regardless of
// how many layers are joined. NoData values in the biomass and probability
// layers become NaN so downstream filters need only one missing-value test.
func Collect(m Mask, biomass, forestType, harvestProb *raster.Grid) []PixelRecord {
	recs := make([]PixelRecord, 0, m.Count)
	for i, harvested := range m.Cells {
		if !harvested {
			continue
		}
		row := i / m.Cols
		col := i % m.Cols

		b := biomass.Data[i]
		if biomass.IsNoData(b) {
			b = math.NaN()
		}
		p := harvestProb.Data[i]
		if harvestProb.IsNoData(p) {
			p = math.NaN()
		}
		code := forestType.Data[i]

		x, y := biomass.CellCenter(row, col)
		recs = append(recs, PixelRecord{
			Row:         row,
			Col:         col,
			X:           x,
			Y:           y,
			Biomass:     b,
			ForestCode:  code,
			ForestType:  ForestTypeLabel(code),
			HarvestProb: p,
		})
	}
	return recs
}
