package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/models"
	"github.com/hypertrophy/hypertrophy/internal/planner"
)

var (
	planTemplate string
	planWeeks    int
	planGoal     string
	planYes      bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a new mesocycle from a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := models.VolumeGoal(planGoal)
		if goal != models.GoalMEV && goal != models.GoalMAV && goal != models.GoalMRV {
			return fmt.Errorf("Invalid volume goal %q (want mev, mav or mrv)", planGoal)
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		if state.ActiveWorkout != nil {
			return fmt.Errorf("Finish the active workout before planning a new mesocycle")
		}
		if state.Mesocycle != nil {
			if !confirm("A mesocycle already exists and will be discarded. Continue?", planYes) {
				fmt.Println("Aborted")
				return nil
			}
		}

		meso, err := planner.GenerateMesocycle(state, planTemplate, planWeeks, goal)
		if err != nil {
			return fmt.Errorf("Failed to generate mesocycle: %w", err)
		}
		state.Mesocycle = meso

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Planned %d-week %s mesocycle (%s volume goal)\n", meso.Weeks, meso.TemplateName, meso.VolumeGoal)
		fmt.Printf("   First workout: week 1, day 1 (%s)\n", meso.WeeksData[0].Workouts[0].Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVarP(&planTemplate, "template", "t", "ppl_6day", "Template key (see 'hypertrophy templates')")
	planCmd.Flags().IntVarP(&planWeeks, "weeks", "w", 5, "Mesocycle length in weeks (deload on the last)")
	planCmd.Flags().StringVarP(&planGoal, "goal", "g", "mav", "Volume goal landmark: mev, mav or mrv")
	planCmd.Flags().BoolVarP(&planYes, "yes", "y", false, "Skip the confirmation prompt")
}
