// Package config holds the run configuration for the extraction pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default filter bounds and harvest flag value. The bounds match the AGB
// plausibility window used when the workflow was run by hand.
const (
	DefaultBiomassMin   = 1
	DefaultBiomassMax   = 800
	DefaultHarvestValue = 1
	DefaultOutputPath   = "harvest_pixels.csv"
)

// RunConfig is the configuration for one extraction run. Fields use
// pointers so a partial JSON config file only overrides what it names; the
// Get* methods supply defaults. CLI flags override file values in main.
type RunConfig struct {
	// Input raster layers (all four required)
	HarvestPath     *string `json:"harvest_path,omitempty"`
	BiomassPath     *string `json:"biomass_path,omitempty"`
	ForestTypePath  *string `json:"forest_type_path,omitempty"`
	HarvestProbPath *string `json:"harvest_prob_path,omitempty"`

	// Output CSV
	OutputPath *string `json:"output_path,omitempty"`

	// Filter parameters
	BiomassMin   *float64 `json:"biomass_min,omitempty"`
	BiomassMax   *float64 `json:"biomass_max,omitempty"`
	HarvestValue *float64 `json:"harvest_value,omitempty"`

	// CheckShapes enables the fail-fast dimension check across the four
	// input grids. The original workflow assumed alignment silently.
	CheckShapes *bool `json:"check_shapes,omitempty"`

	// Optional report outputs
	HTMLReportPath *string `json:"html_report_path,omitempty"`
	HistogramPath  *string `json:"histogram_path,omitempty"`

	// Optional run-history database
	RunDBPath *string `json:"run_db_path,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }

// Load reads a RunConfig from a JSON file. Fields omitted from the file
// retain their defaults, so partial configs are safe.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are consistent. It does not
// require the input paths; main enforces them after merging CLI flags.
func (c *RunConfig) Validate() error {
	min := c.GetBiomassMin()
	max := c.GetBiomassMax()
	if min > max {
		return fmt.Errorf("biomass_min (%g) must not exceed biomass_max (%g)", min, max)
	}
	return nil
}

// MissingInputs returns the names of required paths that are still unset.
func (c *RunConfig) MissingInputs() []string {
	var missing []string
	if c.GetHarvestPath() == "" {
		missing = append(missing, "harvest_path")
	}
	if c.GetBiomassPath() == "" {
		missing = append(missing, "biomass_path")
	}
	if c.GetForestTypePath() == "" {
		missing = append(missing, "forest_type_path")
	}
	if c.GetHarvestProbPath() == "" {
		missing = append(missing, "harvest_prob_path")
	}
	return missing
}

// GetHarvestPath returns the harvest mask layer path or "".
func (c *RunConfig) GetHarvestPath() string {
	if c.HarvestPath == nil {
		return ""
	}
	return *c.HarvestPath
}

// GetBiomassPath returns the AGB layer path or "".
func (c *RunConfig) GetBiomassPath() string {
	if c.BiomassPath == nil {
		return ""
	}
	return *c.BiomassPath
}

// GetForestTypePath returns the forest-type layer path or "".
func (c *RunConfig) GetForestTypePath() string {
	if c.ForestTypePath == nil {
		return ""
	}
	return *c.ForestTypePath
}

// GetHarvestProbPath returns the harvest probability layer path or "".
func (c *RunConfig) GetHarvestProbPath() string {
	if c.HarvestProbPath == nil {
		return ""
	}
	return *c.HarvestProbPath
}

// GetOutputPath returns the output CSV path or the default.
func (c *RunConfig) GetOutputPath() string {
	if c.OutputPath == nil || *c.OutputPath == "" {
		return DefaultOutputPath
	}
	return *c.OutputPath
}

// GetBiomassMin returns the lower biomass bound or the default.
func (c *RunConfig) GetBiomassMin() float64 {
	if c.BiomassMin == nil {
		return DefaultBiomassMin
	}
	return *c.BiomassMin
}

// GetBiomassMax returns the upper biomass bound or the default.
func (c *RunConfig) GetBiomassMax() float64 {
	if c.BiomassMax == nil {
		return DefaultBiomassMax
	}
	return *c.BiomassMax
}

// GetHarvestValue returns the harvest-layer value that marks a harvested
// pixel, or the default.
func (c *RunConfig) GetHarvestValue() float64 {
	if c.HarvestValue == nil {
		return DefaultHarvestValue
	}
	return *c.HarvestValue
}

// GetCheckShapes returns whether the grid dimension check is enabled.
func (c *RunConfig) GetCheckShapes() bool {
	if c.CheckShapes == nil {
		return true
	}
	return *c.CheckShapes
}

// GetHTMLReportPath returns the HTML report path or "" when disabled.
func (c *RunConfig) GetHTMLReportPath() string {
	if c.HTMLReportPath == nil {
		return ""
	}
	return *c.HTMLReportPath
}

// GetHistogramPath returns the PNG histogram path or "" when disabled.
func (c *RunConfig) GetHistogramPath() string {
	if c.HistogramPath == nil {
		return ""
	}
	return *c.HistogramPath
}

// GetRunDBPath returns the run-history database path or "" when disabled.
func (c *RunConfig) GetRunDBPath() string {
	if c.RunDBPath == nil {
		return ""
	}
	return *c.RunDBPath
}
