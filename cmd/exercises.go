package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/catalog"
	"github.com/hypertrophy/hypertrophy/internal/models"
)

var (
	exMuscleFilter string
	newExName      string
	newExMuscle    string
	newExEquipment string
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise catalog, optionally filtered by muscle",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		db := catalog.Exercises(state)
		muscles := models.AllMuscles
		if exMuscleFilter != "" {
			muscles = []models.MuscleGroup{models.MuscleGroup(exMuscleFilter)}
		}

		bold := color.New(color.FgMagenta, color.Bold).SprintFunc()
		for _, muscle := range muscles {
			list := db[muscle]
			if len(list) == 0 {
				continue
			}
			fmt.Printf("%s\n", bold(catalog.MuscleLabels[muscle]))
			for _, ex := range list {
				tag := ""
				if ex.IsCustom {
					tag = " (custom)"
				}
				fmt.Printf("  • %s — %s [%s]%s\n", ex.ID, ex.Name, ex.Equipment, tag)
			}
		}
		return nil
	},
}

var addExerciseCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom exercise to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		muscle := models.MuscleGroup(newExMuscle)
		if _, ok := catalog.MuscleLabels[muscle]; !ok {
			return fmt.Errorf("Unknown muscle group %q", newExMuscle)
		}
		validEquipment := false
		for _, eq := range models.EquipmentOptions {
			if eq == newExEquipment {
				validEquipment = true
			}
		}
		if !validEquipment {
			return fmt.Errorf("Unknown equipment %q (want one of %v)", newExEquipment, models.EquipmentOptions)
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		exercise := models.Exercise{
			ID:            uuid.New().String(),
			Name:          newExName,
			Equipment:     newExEquipment,
			PrimaryMuscle: muscle,
			IsCustom:      true,
		}
		state.CustomExercises[muscle] = append(state.CustomExercises[muscle], exercise)

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Added custom exercise %s (%s)\n", exercise.Name, exercise.ID)
		return nil
	},
}

var removeExerciseCmd = &cobra.Command{
	Use:   "remove [exercise-id]",
	Short: "Remove a custom exercise from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, state, err := loadState()
		if err != nil {
			return err
		}

		for muscle, list := range state.CustomExercises {
			for i, ex := range list {
				if ex.ID != args[0] {
					continue
				}
				state.CustomExercises[muscle] = append(list[:i], list[i+1:]...)
				if err := persist(st, state); err != nil {
					return err
				}
				fmt.Printf("✅ Removed custom exercise %s\n", ex.Name)
				return nil
			}
		}
		return fmt.Errorf("No custom exercise with id %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
	exercisesCmd.AddCommand(addExerciseCmd)
	exercisesCmd.AddCommand(removeExerciseCmd)
	exercisesCmd.Flags().StringVarP(&exMuscleFilter, "muscle", "m", "", "Only show one muscle group")
	addExerciseCmd.Flags().StringVarP(&newExName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&newExMuscle, "muscle", "m", "", "Primary muscle group")
	addExerciseCmd.Flags().StringVarP(&newExEquipment, "equipment", "e", "other", "Equipment type")
	addExerciseCmd.MarkFlagRequired("name")
	addExerciseCmd.MarkFlagRequired("muscle")
}
