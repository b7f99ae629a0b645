package rundb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *RunDB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecentRuns(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := RunRecord{
		RunID:           NewRunID(),
		StartedAt:       base,
		FinishedAt:      base.Add(2 * time.Second),
		HarvestPath:     "harvest.asc",
		BiomassPath:     "agb.asc",
		ForestTypePath:  "ftype.asc",
		HarvestProbPath: "prob.asc",
		OutputPath:      "out.csv",
		HarvestedPixels: 120,
		Pass1Rows:       100,
		Pass2Rows:       90,
		BiomassMin:      3.5,
		BiomassMax:      640,
		ExitReason:      "completed",
	}
	require.NoError(t, db.RecordRun(first))

	second := first
	second.RunID = NewRunID()
	second.StartedAt = base.Add(time.Hour)
	second.FinishedAt = base.Add(time.Hour + time.Second)
	second.OutputPath = ""
	second.HarvestedPixels = 0
	second.Pass1Rows = 0
	second.Pass2Rows = 0
	second.ExitReason = "no harvested pixels"
	require.NoError(t, db.RecordRun(second))

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, second.RunID, runs[0].RunID)
	assert.Equal(t, "no harvested pixels", runs[0].ExitReason)
	assert.Equal(t, first.RunID, runs[1].RunID)
	assert.Equal(t, 120, runs[1].HarvestedPixels)
	assert.Equal(t, 90, runs[1].Pass2Rows)
	assert.InDelta(t, 3.5, runs[1].BiomassMin, 1e-9)
}

func TestRecentRuns_Limit(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := RunRecord{
			RunID:           NewRunID(),
			StartedAt:       base.Add(time.Duration(i) * time.Minute),
			FinishedAt:      base.Add(time.Duration(i)*time.Minute + time.Second),
			HarvestPath:     "harvest.asc",
			BiomassPath:     "agb.asc",
			ForestTypePath:  "ftype.asc",
			HarvestProbPath: "prob.asc",
			ExitReason:      "completed",
		}
		require.NoError(t, db.RecordRun(r))
	}

	runs, err := db.RecentRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecentRuns_Empty(t *testing.T) {
	db := openTestDB(t)

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestNewRunID_Unique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
