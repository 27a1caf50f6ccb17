package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-lab/internal/app"
	"life-lab/internal/life"
)

func TestSweepDensityAllDead(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 6, 6, 1

	res, err := sweepDensity(cfg, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Density)
	assert.Equal(t, 0, res.FinalLive)
	assert.Equal(t, 0.0, res.FinalOccupancy)
	assert.Equal(t, 0.0, res.MeanGrowth)
}

func TestSweepDensityRejectsBadDensity(t *testing.T) {
	cfg := app.NewConfig()
	_, err := sweepDensity(cfg, 1.5, 5)
	assert.ErrorIs(t, err, life.ErrInvalidDensity)
}

func TestSweepDensityDeterministicPerSeed(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 12, 12, 99

	a, err := sweepDensity(cfg, 0.3, 20)
	require.NoError(t, err)
	b, err := sweepDensity(cfg, 0.3, 20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
