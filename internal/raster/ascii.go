package raster

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/timberline-data/harvest.report/internal/fsutil"
)

// Read parses an ESRI ASCII grid. Header keywords (ncols, nrows, xllcorner,
// yllcorner, cellsize, nodata_value) may appear in any order before the
// first data value; nodata_value is optional and defaults to DefaultNoData.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	g := &Grid{CellSize: 1, NoData: DefaultNoData}

	// Header: keyword/value pairs until the first bare number.
	var first string
	for first == "" {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("raster: missing grid data")
		}
		tok := sc.Text()
		switch strings.ToLower(tok) {
		case "ncols":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.Cols = int(v)
		case "nrows":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.Rows = int(v)
		case "xllcorner":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.XLL = v
		case "yllcorner":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.YLL = v
		case "cellsize":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.CellSize = v
		case "nodata_value":
			v, err := headerValue(sc, tok)
			if err != nil {
				return nil, err
			}
			g.NoData = v
		default:
			first = tok
		}
	}

	if g.Cols <= 0 || g.Rows <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", g.Rows, g.Cols)
	}
	if g.CellSize <= 0 {
		return nil, fmt.Errorf("raster: invalid cellsize %g", g.CellSize)
	}

	g.Data = make([]float64, g.Rows*g.Cols)
	v, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return nil, fmt.Errorf("raster: bad value %q: %w", first, err)
	}
	g.Data[0] = v

	for i := 1; i < len(g.Data); i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("raster: truncated grid: got %d of %d values", i, len(g.Data))
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("raster: bad value %q at cell %d: %w", sc.Text(), i, err)
		}
		g.Data[i] = v
	}

	return g, nil
}

func headerValue(sc *bufio.Scanner, key string) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("raster: header %s has no value", key)
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("raster: header %s: bad value %q: %w", key, sc.Text(), err)
	}
	return v, nil
}

// Write serializes g in ESRI ASCII grid format, one row of cells per line.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", g.Cols)
	fmt.Fprintf(bw, "nrows %d\n", g.Rows)
	fmt.Fprintf(bw, "xllcorner %s\n", formatValue(g.XLL))
	fmt.Fprintf(bw, "yllcorner %s\n", formatValue(g.YLL))
	fmt.Fprintf(bw, "cellsize %s\n", formatValue(g.CellSize))
	fmt.Fprintf(bw, "NODATA_value %s\n", formatValue(g.NoData))

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(formatValue(g.At(row, col))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Load reads the grid at path. A missing or unreadable file is fatal to the
// run and is returned wrapped so the caller can report which layer failed.
func Load(fs fsutil.FileSystem, path string) (*Grid, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("raster: read %s: %w", path, err)
	}
	name := filepath.Base(path)
	g.Name = strings.TrimSuffix(name, filepath.Ext(name))
	return g, nil
}

// WriteFile serializes g to path, creating the file.
func WriteFile(fs fsutil.FileSystem, path string, g *Grid) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("raster: write %s: %w", path, err)
	}
	return f.Close()
}
