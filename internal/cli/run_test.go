package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"life-lab/internal/app"
	"life-lab/internal/life"
)

func TestBuildReport(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Density, cfg.Seed = 8, 8, 0.4, 5

	ctrl, err := life.NewController(cfg.Width, cfg.Height, cfg.Density, cfg.Seed)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		ctrl.Advance()
	}

	r := buildReport(cfg, ctrl)
	assert.Equal(t, 10, r.Generations)
	assert.Len(t, r.LiveCells, 10)
	assert.Len(t, r.OccupancyPct, 10)
	assert.Len(t, r.Growth, 10)
	assert.Equal(t, r.LiveCells[9], r.FinalLive)
	assert.Equal(t, r.OccupancyPct[9], r.FinalOccupancy)
	assert.Equal(t, 0, r.Growth[0])
}

func TestBuildReportEmptyRun(t *testing.T) {
	cfg := app.NewConfig()
	ctrl, err := life.NewController(cfg.Width, cfg.Height, cfg.Density, cfg.Seed)
	require.NoError(t, err)

	r := buildReport(cfg, ctrl)
	assert.Equal(t, 0, r.Generations)
	assert.Equal(t, 0, r.FinalLive)
	assert.Empty(t, r.LiveCells)
}

func TestWriteReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	want := metricsReport{
		Width:        4,
		Height:       4,
		Density:      0.25,
		Seed:         7,
		Generations:  2,
		FinalLive:    4,
		LiveCells:    []int{4, 4},
		OccupancyPct: []float64{25, 25},
		Growth:       []int{0, 0},
	}
	want.FinalOccupancy = want.OccupancyPct[1]

	require.NoError(t, writeReport(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got metricsReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}
