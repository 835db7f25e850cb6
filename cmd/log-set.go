package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/session"
)

var (
	logSetWeight float64
	logSetReps   int
	logSetRIR    float64
)

var logSetCmd = &cobra.Command{
	Use:   "log-set [exercise-index] [set-index]",
	Short: "Log weight/reps/RIR on a set of the active workout",
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

		var weight, rir *float64
		var reps *int
		if cmd.Flags().Changed("weight") {
			weight = &logSetWeight
		}
		if cmd.Flags().Changed("reps") {
			reps = &logSetReps
		}
		if cmd.Flags().Changed("rir") {
			rir = &logSetRIR
		}
		if weight == nil && reps == nil && rir == nil {
			return fmt.Errorf("Nothing to log: pass --weight, --reps and/or --rir")
		}

		if err := session.UpdateSet(state, exIdx, setIdx, weight, rir, reps); err != nil {
			if errors.Is(err, session.ErrSetCompleted) {
				return fmt.Errorf("Set %d is already completed and cannot be edited", setIdx+1)
			}
			return fmt.Errorf("Failed to update set: %w", err)
		}

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Logged set %d of exercise '%s'\n", setIdx+1, state.ActiveWorkout.Exercises[exIdx].Name)
		return nil
	},
}

// parseIndexes converts 1-based CLI indexes to 0-based.
func parseIndexes(args []string) (int, int, error) {
	exIdx, err := strconv.Atoi(args[0])
	if err != nil || exIdx < 1 {
		return 0, 0, fmt.Errorf("Invalid exercise index. Must be a positive integer")
	}
	setIdx, err := strconv.Atoi(args[1])
	if err != nil || setIdx < 1 {
		return 0, 0, fmt.Errorf("Invalid set index. Must be a positive integer")
	}
	return exIdx - 1, setIdx - 1, nil
}

func init() {
	rootCmd.AddCommand(logSetCmd)
	logSetCmd.Flags().Float64VarP(&logSetWeight, "weight", "w", 0, "Weight used for the set")
	logSetCmd.Flags().IntVarP(&logSetReps, "reps", "r", 0, "Reps performed")
	logSetCmd.Flags().Float64Var(&logSetRIR, "rir", 0, "Reps left in reserve")
}
