package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"life-lab/internal/app"
	"life-lab/internal/life"
)

var (
	sweepCfg         = app.NewConfig()
	sweepDensities   []float64
	sweepGenerations int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate seed densities over a fixed horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(cmd, sweepCfg); err != nil {
			return err
		}
		if len(sweepDensities) == 0 {
			return errors.New("at least one density is required")
		}
		fmt.Printf("%dx%d board, %d generations per density (seed %d)\n",
			sweepCfg.Width, sweepCfg.Height, sweepGenerations, sweepCfg.Seed)
		for _, density := range sweepDensities {
			res, err := sweepDensity(sweepCfg, density, sweepGenerations)
			if err != nil {
				return err
			}
			fmt.Printf("density=%.2f live=%5d occupancy=%6.2f%% mean-growth=%+.2f\n",
				res.Density, res.FinalLive, res.FinalOccupancy, res.MeanGrowth)
		}
		return nil
	},
}

func init() {
	fs := sweepCmd.Flags()
	fs.IntVar(&sweepCfg.Width, "width", sweepCfg.Width, "grid width in cells")
	fs.IntVar(&sweepCfg.Height, "height", sweepCfg.Height, "grid height in cells")
	fs.Int64Var(&sweepCfg.Seed, "seed", sweepCfg.Seed, "seed shared by all runs")
	fs.Float64SliceVar(&sweepDensities, "densities", []float64{0.1, 0.2, 0.3, 0.4}, "seed densities to evaluate")
	fs.IntVar(&sweepGenerations, "generations", 200, "generations per density")
	rootCmd.AddCommand(sweepCmd)
}

type sweepResult struct {
	Density        float64
	FinalLive      int
	FinalOccupancy float64
	MeanGrowth     float64
}

func sweepDensity(cfg *app.Config, density float64, generations int) (sweepResult, error) {
	ctrl, err := life.NewController(cfg.Width, cfg.Height, density, cfg.Seed)
	if err != nil {
		return sweepResult{}, err
	}
	for i := 0; i < generations; i++ {
		ctrl.Advance()
	}

	m := ctrl.Metrics()
	res := sweepResult{Density: density}
	if history := m.LiveHistory(); len(history) > 0 {
		res.FinalLive = history[len(history)-1]
		occ := m.OccupancySeries()
		res.FinalOccupancy = occ[len(occ)-1]
		sum := 0
		for _, g := range m.GrowthSeries() {
			sum += g
		}
		res.MeanGrowth = float64(sum) / float64(len(history))
	}
	return res, nil
}
