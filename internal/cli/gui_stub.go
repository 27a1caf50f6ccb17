//go:build !ebiten

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"life-lab/internal/app"
)

var guiCfg = app.NewConfig()

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the interactive board with the metrics chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("the gui command requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/life`")
	},
}

func init() {
	guiCfg.Bind(guiCmd.Flags())
	rootCmd.AddCommand(guiCmd)
}
