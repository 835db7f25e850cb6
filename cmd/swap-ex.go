package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/catalog"
	"github.com/hypertrophy/hypertrophy/internal/session"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-id]",
	Short: "Swap an exercise in the active workout with another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("Invalid exercise index")
		}
		exIdx--

		st, state, err := loadState()
		if err != nil {
			return err
		}

		newExercise, ok := catalog.FindExercise(state, args[1])
		if !ok {
			return fmt.Errorf("Failed to find exercise %q (see 'hypertrophy exercises')", args[1])
		}

		if err := session.ReplaceExercise(state, exIdx, newExercise); err != nil {
			return fmt.Errorf("Failed to swap exercise: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Swapped exercise to %s\n", newExercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
