package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var removeExCmd = &cobra.Command{
	Use:   "remove-ex [exercise-index]",
	Short: "Remove an exercise from the active workout",
	Args:  cobra.ExactArgs(1),
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

		name := ""
		if state.ActiveWorkout != nil && exIdx < len(state.ActiveWorkout.Exercises) {
			name = state.ActiveWorkout.Exercises[exIdx].Name
		}

		removed, err := session.RemoveExercise(state, exIdx)
		if err != nil {
			return fmt.Errorf("Failed to remove exercise: %w", err)
		}
		if !removed {
			fmt.Println("Every workout keeps at least one exercise; nothing removed")
			return nil
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Removed %s from the active workout\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeExCmd)
}
