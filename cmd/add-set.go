package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add a set to an exercise in the active workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("Invalid exercise index. Must be a positive integer")
		}
		exIdx--

		st, state, err := loadState()
		if err != nil {
			return err
		}

		if err := session.AddSet(state, exIdx); err != nil {
			return fmt.Errorf("Failed to add set: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		ex := state.ActiveWorkout.Exercises[exIdx]
		fmt.Printf("✅ Added set %d to '%s'\n", len(ex.Sets), ex.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSetCmd)
}
