// Command harvest.report extracts per-pixel statistics at forest-harvest
// locations from four co-registered raster layers, filters the joined table
// and writes it as CSV with a console summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/timberline-data/harvest.report/internal/config"
	"github.com/timberline-data/harvest.report/internal/fsutil"
	"github.com/timberline-data/harvest.report/internal/pipeline"
	"github.com/timberline-data/harvest.report/internal/report"
	"github.com/timberline-data/harvest.report/internal/rundb"
	"github.com/timberline-data/harvest.report/internal/version"
)

var (
	configPath      = flag.String("config", "", "JSON run configuration file (flags override it)")
	harvestPath     = flag.String("harvest", "", "Harvest mask raster (.asc)")
	biomassPath     = flag.String("biomass", "", "Above-ground biomass raster (.asc)")
	forestTypePath  = flag.String("forest-type", "", "Forest type raster (.asc)")
	harvestProbPath = flag.String("harvest-prob", "", "Harvest probability raster (.asc)")
	outputPath      = flag.String("output", config.DefaultOutputPath, "Output CSV path")
	biomassMin      = flag.Float64("min-biomass", config.DefaultBiomassMin, "Lower biomass bound (t/ha)")
	biomassMax      = flag.Float64("max-biomass", config.DefaultBiomassMax, "Upper biomass bound (t/ha)")
	harvestValue    = flag.Float64("harvest-value", config.DefaultHarvestValue, "Harvest-layer value marking a harvested pixel")
	noShapeCheck    = flag.Bool("no-shape-check", false, "Skip the grid dimension precondition check")
	htmlReport      = flag.String("html-report", "", "Write an HTML chart report to this path")
	histogramPath   = flag.String("histogram", "", "Write a PNG biomass histogram to this path")
	dbPath          = flag.String("db", "", "Run-history sqlite database (optional)")
	listRuns        = flag.Int("runs", 0, "List the N most recent runs from -db and exit")
	migrationsDir   = flag.String("migrate", "", "Apply schema migrations from this directory to -db and exit")
	migrateDownDir  = flag.String("migrate-down", "", "Roll back the most recent migration from this directory on -db and exit")
	migrateVerDir   = flag.String("migrate-version", "", "Print the migration version of -db using this directory and exit")
	showVersion     = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("harvest.report %s (%s)\n", version.Version, version.GitSHA)
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if *migrationsDir != "" {
		db := mustOpenRunDB(cfg)
		defer db.Close()
		if err := db.MigrateUp(*migrationsDir); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		log.Printf("run database migrated")
		return
	}

	if *migrateDownDir != "" {
		db := mustOpenRunDB(cfg)
		defer db.Close()
		if err := db.MigrateDown(*migrateDownDir); err != nil {
			log.Fatalf("migration rollback failed: %v", err)
		}
		log.Printf("rolled back most recent migration")
		return
	}

	if *migrateVerDir != "" {
		db := mustOpenRunDB(cfg)
		defer db.Close()
		ver, dirty, err := db.MigrateVersion(*migrateVerDir)
		if err != nil {
			log.Fatalf("failed to read migration version: %v", err)
		}
		fmt.Printf("migration version: %d (dirty: %v)\n", ver, dirty)
		return
	}

	if *listRuns > 0 {
		db := mustOpenRunDB(cfg)
		defer db.Close()
		runs, err := db.RecentRuns(*listRuns)
		if err != nil {
			log.Fatalf("failed to list runs: %v", err)
		}
		printRuns(os.Stdout, runs)
		return
	}

	if missing := cfg.MissingInputs(); len(missing) > 0 {
		log.Fatalf("missing required input layers: %v (set via flags or -config)", missing)
	}

	started := time.Now()
	res, err := pipeline.Run(cfg, fsutil.OSFileSystem{})
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	finished := time.Now()

	if path := cfg.GetRunDBPath(); path != "" {
		db, err := rundb.Open(path)
		if err != nil {
			log.Fatalf("failed to open run database: %v", err)
		}
		defer db.Close()
		rec := rundb.RunRecord{
			RunID:           rundb.NewRunID(),
			StartedAt:       started,
			FinishedAt:      finished,
			HarvestPath:     cfg.GetHarvestPath(),
			BiomassPath:     cfg.GetBiomassPath(),
			ForestTypePath:  cfg.GetForestTypePath(),
			HarvestProbPath: cfg.GetHarvestProbPath(),
			OutputPath:      res.OutputPath,
			HarvestedPixels: res.HarvestedPixels,
			Pass1Rows:       res.Pass1Rows,
			Pass2Rows:       res.Pass2Rows,
			BiomassMin:      res.Summary.BiomassMin,
			BiomassMax:      res.Summary.BiomassMax,
			ExitReason:      res.ExitReason,
		}
		if err := db.RecordRun(rec); err != nil {
			log.Printf("failed to record run: %v", err)
		}
	}

	if res.ExitReason != pipeline.ReasonCompleted {
		fmt.Printf("No output produced: %s\n", res.ExitReason)
		return
	}
	report.WriteSummary(os.Stdout, res.Summary, res.OutputPath)
}

// buildConfig loads the optional config file and applies any explicitly set
// CLI flags on top of it.
func buildConfig() (*config.RunConfig, error) {
	cfg := &config.RunConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "harvest":
			cfg.HarvestPath = harvestPath
		case "biomass":
			cfg.BiomassPath = biomassPath
		case "forest-type":
			cfg.ForestTypePath = forestTypePath
		case "harvest-prob":
			cfg.HarvestProbPath = harvestProbPath
		case "output":
			cfg.OutputPath = outputPath
		case "min-biomass":
			cfg.BiomassMin = biomassMin
		case "max-biomass":
			cfg.BiomassMax = biomassMax
		case "harvest-value":
			cfg.HarvestValue = harvestValue
		case "no-shape-check":
			check := !*noShapeCheck
			cfg.CheckShapes = &check
		case "html-report":
			cfg.HTMLReportPath = htmlReport
		case "histogram":
			cfg.HistogramPath = histogramPath
		case "db":
			cfg.RunDBPath = dbPath
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mustOpenRunDB(cfg *config.RunConfig) *rundb.RunDB {
	path := cfg.GetRunDBPath()
	if path == "" {
		log.Fatal("no run database configured (use -db)")
	}
	db, err := rundb.Open(path)
	if err != nil {
		log.Fatalf("failed to open run database: %v", err)
	}
	return db
}

// printRuns renders the run history as a fixed-width table.
func printRuns(w io.Writer, runs []rundb.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return
	}
	fmt.Fprintf(w, "%-36s  %-20s  %9s  %7s  %7s  %s\n",
		"run_id", "started", "harvested", "pass1", "pass2", "exit_reason")
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %9d  %7d  %7d  %s\n",
			r.RunID, r.StartedAt.UTC().Format("2006-01-02 15:04:05"),
			r.HarvestedPixels, r.Pass1Rows, r.Pass2Rows, r.ExitReason)
	}
}
