package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/catalog"
	"github.com/hypertrophy/hypertrophy/internal/session"
)

var addExCmd = &cobra.Command{
	Use:   "add-ex [exercise-id]",
	Short: "Add an exercise to the active workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, state, err := loadState()
		if err != nil {
			return err
		}

		exercise, ok := catalog.FindExercise(state, args[0])
		if !ok {
			return fmt.Errorf("Failed to find exercise %q (see 'hypertrophy exercises')", args[0])
		}

		if err := session.AddExercise(state, exercise, exercise.PrimaryMuscle); err != nil {
			return fmt.Errorf("Failed to add exercise: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Added %s to the active workout\n", exercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addExCmd)
}
