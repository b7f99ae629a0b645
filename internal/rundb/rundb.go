// Package rundb persists one row per pipeline run so past extractions can
// be compared without re-reading their CSV outputs.
package rundb

import (
	"database/sql"
	_ "embed"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// RunDB is the run-history database.
type RunDB struct {
	*sql.DB
}

// schema.sql creates the runs table. Schema changes beyond the initial
// version go through the migrations directory (see migrate.go).
//
//go:embed schema.sql
var schemaSQL string

// Open opens (and if necessary initializes) the run database at path.
func Open(path string) (*RunDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, err
	}

	return &RunDB{db}, nil
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// RunRecord is one pipeline execution, completed or early-exited.
type RunRecord struct {
	RunID           string
	StartedAt       time.Time
	FinishedAt      time.Time
	HarvestPath     string
	BiomassPath     string
	ForestTypePath  string
	HarvestProbPath string
	OutputPath      string // empty when the run exited before writing
	HarvestedPixels int
	Pass1Rows       int
	Pass2Rows       int
	BiomassMin      float64
	BiomassMax      float64
	ExitReason      string
}

// RecordRun inserts one run row.
func (db *RunDB) RecordRun(r RunRecord) error {
	_, err := db.Exec(`INSERT INTO runs (
			run_id, started_at, finished_at,
			harvest_path, biomass_path, forest_type_path, harvest_prob_path,
			output_path, harvested_pixels, pass1_rows, pass2_rows,
			biomass_min, biomass_max, exit_reason
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.StartedAt, r.FinishedAt,
		r.HarvestPath, r.BiomassPath, r.ForestTypePath, r.HarvestProbPath,
		r.OutputPath, r.HarvestedPixels, r.Pass1Rows, r.Pass2Rows,
		r.BiomassMin, r.BiomassMax, r.ExitReason)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (db *RunDB) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := db.Query(`SELECT
			run_id, started_at, finished_at,
			harvest_path, biomass_path, forest_type_path, harvest_prob_path,
			output_path, harvested_pixels, pass1_rows, pass2_rows,
			biomass_min, biomass_max, exit_reason
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(
			&r.RunID, &r.StartedAt, &r.FinishedAt,
			&r.HarvestPath, &r.BiomassPath, &r.ForestTypePath, &r.HarvestProbPath,
			&r.OutputPath, &r.HarvestedPixels, &r.Pass1Rows, &r.Pass2Rows,
			&r.BiomassMin, &r.BiomassMax, &r.ExitReason,
		); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
