package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/models"
	"github.com/hypertrophy/hypertrophy/internal/storage"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data and start from a fresh state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("This erases the mesocycle, history and all custom data. Continue?", resetYes) {
			fmt.Println("Aborted")
			return nil
		}

		st := storage.NewStorage()
		if err := persist(st, models.DefaultState()); err != nil {
			return err
		}

		fmt.Println("✅ State reset to defaults")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
