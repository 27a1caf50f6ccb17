//go:build ebiten

package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"life-lab/internal/app"
	"life-lab/internal/life"
)

var guiCfg = app.NewConfig()

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the interactive board with the metrics chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(cmd, guiCfg); err != nil {
			return err
		}
		ctrl, err := life.NewController(guiCfg.Width, guiCfg.Height, guiCfg.Density, guiCfg.Seed)
		if err != nil {
			return err
		}
		game := app.New(ctrl, guiCfg)

		logrus.Infof("opening %dx%d board at density %.2f (seed %d)",
			guiCfg.Width, guiCfg.Height, guiCfg.Density, guiCfg.Seed)

		ebiten.SetWindowTitle("life-lab")
		ebiten.SetTPS(60)
		ebiten.SetWindowSize(guiCfg.Width*guiCfg.Scale+guiCfg.PanelWidth, guiCfg.Height*guiCfg.Scale)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	guiCfg.Bind(guiCmd.Flags())
	rootCmd.AddCommand(guiCmd)
}
