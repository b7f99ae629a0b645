// Package raster provides the in-memory grid model and ESRI ASCII grid I/O
// for the extraction pipeline. All four input layers load into row-major
// float64 grids that are expected to share one shape and spatial reference.
package raster

import (
	"fmt"
	"math"
)

// DefaultNoData is the sentinel used for cells without valid data when the
// source file does not declare one. Matches the common GIS convention.
const DefaultNoData = -9999

// Grid is a 2-D raster stored row-major with the northernmost row first,
// the layout ESRI ASCII grids use on disk.
type Grid struct {
	Name     string  // layer name, usually derived from the file name
	Rows     int     // grid height in cells
	Cols     int     // grid width in cells
	XLL      float64 // x of the lower-left corner, map units
	YLL      float64 // y of the lower-left corner, map units
	CellSize float64 // cell edge length, map units
	NoData   float64 // sentinel for missing cells
	Data     []float64
}

// New returns an empty grid of the given shape with unit cells and the
// default NoData sentinel.
func New(rows, cols int) *Grid {
	return &Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: 1,
		NoData:   DefaultNoData,
		Data:     make([]float64, rows*cols),
	}
}

// Index converts a (row, col) pair into the flat Data offset.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Data[g.Index(row, col)]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.Data[g.Index(row, col)] = v
}

// IsNoData reports whether v is missing: either NaN or the grid's declared
// NoData sentinel.
func (g *Grid) IsNoData(v float64) bool {
	return math.IsNaN(v) || v == g.NoData
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

// CellCenter returns the map coordinates of the center of cell (row, col).
// Row 0 is the northernmost row.
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	x = g.XLL + (float64(col)+0.5)*g.CellSize
	y = g.YLL + (float64(g.Rows-row)-0.5)*g.CellSize
	return x, y
}

// CheckShapes verifies that all grids share the shape of the first one.
// The reference workflow assumed co-registered inputs without checking;
// this check is an explicit extension so misaligned layers fail fast
// instead of silently joining values from different pixels.
func CheckShapes(grids ...*Grid) error {
	if len(grids) < 2 {
		return nil
	}
	first := grids[0]
	for _, g := range grids[1:] {
		if !first.SameShape(g) {
			return fmt.Errorf("raster: shape mismatch: %s is %dx%d but %s is %dx%d",
				first.Name, first.Rows, first.Cols, g.Name, g.Rows, g.Cols)
		}
	}
	return nil
}
