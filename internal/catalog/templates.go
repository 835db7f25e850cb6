package catalog

import "github.com/hypertrophy/hypertrophy/internal/models"

// DefaultTemplates is the built-in set of training splits, keyed by a
// stable template key.
var DefaultTemplates = map[string]models.Template{
	"ppl_6day": {
		Name: "Push Pull Legs (6 days)",
		Days: 6,
		Split: []models.DayDefinition{
			{Name: "Push A", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleShoulders, models.MuscleTriceps}},
			{Name: "Pull A", Muscles: []models.MuscleGroup{models.MuscleBack, models.MuscleBiceps, models.MuscleTraps, models.MuscleForearms}},
			{Name: "Legs A", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves}},
			{Name: "Push B", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleShoulders, models.MuscleTriceps}},
			{Name: "Pull B", Muscles: []models.MuscleGroup{models.MuscleBack, models.MuscleBiceps, models.MuscleTraps, models.MuscleForearms}},
			{Name: "Legs B", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves}},
		},
	},
	"upper_lower_4day": {
		Name: "Upper Lower (4 days)",
		Days: 4,
		Split: []models.DayDefinition{
			{Name: "Upper A", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleBiceps, models.MuscleTriceps, models.MuscleTraps}},
			{Name: "Lower A", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves, models.MuscleAbs}},
			{Name: "Upper B", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleBiceps, models.MuscleTriceps, models.MuscleForearms}},
			{Name: "Lower B", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves, models.MuscleAbs}},
		},
	},
	"full_body_3day": {
		Name: "Full Body (3 days)",
		Days: 3,
		Split: []models.DayDefinition{
			{Name: "Full Body A", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleQuads, models.MuscleHamstrings, models.MuscleBiceps, models.MuscleTriceps}},
			{Name: "Full Body B", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleQuads, models.MuscleGlutes, models.MuscleBiceps, models.MuscleTriceps}},
			{Name: "Full Body C", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleBiceps, models.MuscleTriceps, models.MuscleAbs}},
		},
	},
	"bro_split_5day": {
		Name: "Bro Split (5 days)",
		Days: 5,
		Split: []models.DayDefinition{
			{Name: "Chest", Muscles: []models.MuscleGroup{models.MuscleChest}},
			{Name: "Back", Muscles: []models.MuscleGroup{models.MuscleBack, models.MuscleTraps}},
			{Name: "Shoulders", Muscles: []models.MuscleGroup{models.MuscleShoulders}},
			{Name: "Legs", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves}},
			{Name: "Arms", Muscles: []models.MuscleGroup{models.MuscleBiceps, models.MuscleTriceps, models.MuscleForearms, models.MuscleAbs}},
		},
	},
	"arnold_split": {
		Name: "Arnold Split (6 days)",
		Days: 6,
		Split: []models.DayDefinition{
			{Name: "Chest & Back", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack}},
			{Name: "Shoulders & Arms", Muscles: []models.MuscleGroup{models.MuscleShoulders, models.MuscleBiceps, models.MuscleTriceps}},
			{Name: "Legs", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves}},
			{Name: "Chest & Back", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack}},
			{Name: "Shoulders & Arms", Muscles: []models.MuscleGroup{models.MuscleShoulders, models.MuscleBiceps, models.MuscleTriceps}},
			{Name: "Legs", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves}},
		},
	},
	"torso_limbs": {
		Name: "Torso/Limbs (4 days)",
		Days: 4,
		Split: []models.DayDefinition{
			{Name: "Torso A", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleAbs}},
			{Name: "Limbs A", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleBiceps, models.MuscleTriceps, models.MuscleCalves}},
			{Name: "Torso B", Muscles: []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleTraps}},
			{Name: "Limbs B", Muscles: []models.MuscleGroup{models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleBiceps, models.MuscleTriceps, models.MuscleForearms}},
		},
	},
}
