package extract

import "math"

// FilterKnown is the first filter pass: keep records with positive biomass
// and a known forest type. NaN biomass fails the > 0 comparison, so pixels
// with missing biomass are dropped here as well.
func FilterKnown(recs []PixelRecord) []PixelRecord {
	out := recs[:0:0]
	for _, r := range recs {
		if r.Biomass > 0 && r.ForestType != Unknown {
			out = append(out, r)
		}
	}
	return out
}

// FilterRange is the second filter pass, applied to FilterKnown survivors:
// keep records whose biomass lies in [min, max] and whose harvest
// probability is present.
func FilterRange(recs []PixelRecord, min, max float64) []PixelRecord {
	out := recs[:0:0]
	for _, r := range recs {
		if r.Biomass < min || r.Biomass > max {
			continue
		}
		if math.IsNaN(r.HarvestProb) {
			continue
		}
		out = append(out, r)
	}
	return out
}
