// Command gen-grids generates a synthetic set of four co-registered .asc
// raster layers for testing the extraction pipeline end to end.
package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/timberline-data/harvest.report/internal/fsutil"
	"github.com/timberline-data/harvest.report/internal/raster"
)

func main() {
	dir := flag.String("dir", "testgrids", "output directory")
	rows := flag.Int("rows", 50, "grid rows")
	cols := flag.Int("cols", 50, "grid columns")
	seed := flag.Int64("seed", 1, "random seed")
	harvestFrac := flag.Float64("harvest-frac", 0.2, "fraction of pixels marked harvested")
	nodataFrac := flag.Float64("nodata-frac", 0.05, "fraction of NoData cells per value layer")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	fs := fsutil.OSFileSystem{}
	if err := fs.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", *dir, err)
	}

	harvest := raster.New(*rows, *cols)
	biomass := raster.New(*rows, *cols)
	forestType := raster.New(*rows, *cols)
	harvestProb := raster.New(*rows, *cols)

	for i := range harvest.Data {
		if rng.Float64() < *harvestFrac {
			harvest.Data[i] = 1
		} else {
			harvest.Data[i] = 0
		}

		if rng.Float64() < *nodataFrac {
			biomass.Data[i] = biomass.NoData
		} else {
			biomass.Data[i] = rng.Float64() * 900
		}

		switch rng.Intn(3) {
		case 0:
			forestType.Data[i] = 1
		case 1:
			forestType.Data[i] = 2
		default:
			forestType.Data[i] = 9
		}

		if rng.Float64() < *nodataFrac {
			harvestProb.Data[i] = harvestProb.NoData
		} else {
			harvestProb.Data[i] = rng.Float64()
		}
	}

	layers := map[string]*raster.Grid{
		"harvest.asc":      harvest,
		"biomass.asc":      biomass,
		"forest_type.asc":  forestType,
		"harvest_prob.asc": harvestProb,
	}
	for name, g := range layers {
		path := filepath.Join(*dir, name)
		if err := raster.WriteFile(fs, path, g); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("✓ Created: %s (%dx%d)", path, g.Rows, g.Cols)
	}
}
