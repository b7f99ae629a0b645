package raster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timberline-data/harvest.report/internal/fsutil"
)

const sampleASC = `ncols 3
nrows 2
xllcorner 100.5
yllcorner 200
cellsize 10
NODATA_value -9999
1 0 -9999
0 1 0
`

func TestRead(t *testing.T) {
	g, err := Read(strings.NewReader(sampleASC))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if g.Rows != 2 || g.Cols != 3 {
		t.Errorf("shape = %dx%d, want 2x3", g.Rows, g.Cols)
	}
	if g.XLL != 100.5 || g.YLL != 200 || g.CellSize != 10 {
		t.Errorf("georeference = (%g,%g,%g)", g.XLL, g.YLL, g.CellSize)
	}
	if g.NoData != -9999 {
		t.Errorf("NoData = %g, want -9999", g.NoData)
	}

	want := []float64{1, 0, -9999, 0, 1, 0}
	if diff := cmp.Diff(want, g.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if !g.IsNoData(g.At(0, 2)) {
		t.Error("cell (0,2) should be NoData")
	}
}

func TestRead_HeaderOrderAndCase(t *testing.T) {
	in := "NROWS 1\nnCols 2\nCELLSIZE 5\n7 8\n"
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if g.Rows != 1 || g.Cols != 2 || g.CellSize != 5 {
		t.Errorf("parsed %dx%d cellsize %g", g.Rows, g.Cols, g.CellSize)
	}
	if g.NoData != DefaultNoData {
		t.Errorf("NoData = %g, want default", g.NoData)
	}
	if g.At(0, 1) != 8 {
		t.Errorf("At(0,1) = %g, want 8", g.At(0, 1))
	}
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no dimensions", "cellsize 10\n1 2 3\n"},
		{"truncated data", "ncols 3\nnrows 2\n1 2 3 4\n"},
		{"bad value", "ncols 2\nnrows 1\n1 abc\n"},
		{"bad header value", "ncols x\n"},
		{"zero cellsize", "ncols 1\nnrows 1\ncellsize 0\n1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(c.in)); err == nil {
				t.Errorf("Read(%q) succeeded, want error", c.in)
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := New(2, 3)
	g.XLL, g.YLL, g.CellSize, g.NoData = -15.25, 62.5, 0.1, -9999
	copy(g.Data, []float64{1.5, 0, -9999, 42, 0.001, 7})

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	if err := mfs.WriteFile("/grids/harvest_10m.asc", []byte(sampleASC), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(mfs, "/grids/harvest_10m.asc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Name != "harvest_10m" {
		t.Errorf("Name = %q, want harvest_10m", g.Name)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Errorf("shape = %dx%d", g.Rows, g.Cols)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()

	_, err := Load(mfs, "/grids/absent.asc")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "absent.asc") {
		t.Errorf("error %q should name the path", err)
	}
}

func TestWriteFile(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	g := New(1, 2)
	copy(g.Data, []float64{3, 4})

	if err := WriteFile(mfs, "/out/g.asc", g); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	back, err := Load(mfs, "/out/g.asc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if back.At(0, 0) != 3 || back.At(0, 1) != 4 {
		t.Errorf("round trip data = %v", back.Data)
	}
}
