package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var removeSetCmd = &cobra.Command{
	Use:   "remove-set [exercise-index] [set-index]",
	Short: "Remove a set from an exercise in the active workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, setIdx, err := parseIndexes(args)
		if err != nil {
			return err
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		removed, err := session.RemoveSet(state, exIdx, setIdx)
		if err != nil {
			return fmt.Errorf("Failed to remove set: %w", err)
		}
		if !removed {
			fmt.Println("Every exercise keeps at least one set; nothing removed")
			return nil
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Removed set %d from '%s'\n", setIdx+1, state.ActiveWorkout.Exercises[exIdx].Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeSetCmd)
}
