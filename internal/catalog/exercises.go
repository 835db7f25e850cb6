package catalog

import "github.com/hypertrophy/hypertrophy/internal/models"

// DefaultExercises is the built-in exercise table, keyed by primary muscle.
// List order matters: the planner selects the leading entries of each list.
var DefaultExercises = map[models.MuscleGroup][]models.Exercise{
	models.MuscleChest: {
		{ID: "bench_press", Name: "Barbell Bench Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleChest},
		{ID: "incline_bench_press", Name: "Incline Barbell Bench Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleChest},
		{ID: "decline_bench_press", Name: "Decline Barbell Bench Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleChest},
		{ID: "close_grip_bench", Name: "Close Grip Bench Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleChest},
		{ID: "floor_press", Name: "Floor Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleChest},
		{ID: "db_bench_press", Name: "Dumbbell Bench Press", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleChest},
		{ID: "incline_db_press", Name: "Incline Dumbbell Press", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleChest},
		{ID: "cable_fly", Name: "Cable Fly", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleChest},
	},
	models.MuscleBack: {
		{ID: "barbell_row", Name: "Barbell Row", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBack},
		{ID: "pendlay_row", Name: "Pendlay Row", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBack},
		{ID: "deadlift", Name: "Conventional Deadlift", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBack},
		{ID: "t_bar_row", Name: "T-Bar Row", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBack},
		{ID: "yates_row", Name: "Yates Row (Underhand)", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBack},
		{ID: "lat_pulldown", Name: "Lat Pulldown", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleBack},
		{ID: "seated_cable_row", Name: "Seated Cable Row", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleBack},
		{ID: "pull_up", Name: "Pull Up", Equipment: models.EquipmentBodyweight, PrimaryMuscle: models.MuscleBack},
	},
	models.MuscleShoulders: {
		{ID: "ohp", Name: "Overhead Press (Standing)", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleShoulders},
		{ID: "seated_ohp", Name: "Seated Overhead Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleShoulders},
		{ID: "push_press", Name: "Push Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleShoulders},
		{ID: "behind_neck_press", Name: "Behind Neck Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleShoulders},
		{ID: "db_shoulder_press", Name: "Dumbbell Shoulder Press", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleShoulders},
		{ID: "db_lateral_raise", Name: "Dumbbell Lateral Raise", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleShoulders},
		{ID: "cable_lateral_raise", Name: "Cable Lateral Raise", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleShoulders},
		{ID: "face_pull", Name: "Face Pull", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleShoulders},
	},
	models.MuscleBiceps: {
		{ID: "barbell_curl", Name: "Barbell Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBiceps},
		{ID: "ez_bar_curl", Name: "EZ Bar Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBiceps},
		{ID: "preacher_curl_bb", Name: "Barbell Preacher Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleBiceps},
		{ID: "db_curl", Name: "Dumbbell Curl", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleBiceps},
		{ID: "hammer_curl", Name: "Hammer Curl", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleBiceps},
		{ID: "incline_db_curl", Name: "Incline Dumbbell Curl", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleBiceps},
		{ID: "cable_curl", Name: "Cable Curl", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleBiceps},
	},
	models.MuscleTriceps: {
		{ID: "close_grip_bench_tri", Name: "Close Grip Bench Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTriceps},
		{ID: "skull_crusher", Name: "Skull Crusher", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTriceps},
		{ID: "ez_bar_skull_crusher", Name: "EZ Bar Skull Crusher", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTriceps},
		{ID: "jm_press", Name: "JM Press", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTriceps},
		{ID: "overhead_db_extension", Name: "Overhead Dumbbell Extension", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleTriceps},
		{ID: "cable_pushdown", Name: "Cable Pushdown", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleTriceps},
		{ID: "overhead_cable_extension", Name: "Overhead Cable Extension", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleTriceps},
	},
	models.MuscleQuads: {
		{ID: "squat", Name: "Barbell Back Squat", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleQuads},
		{ID: "front_squat", Name: "Front Squat", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleQuads},
		{ID: "zercher_squat", Name: "Zercher Squat", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleQuads},
		{ID: "pause_squat", Name: "Pause Squat", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleQuads},
		{ID: "barbell_lunge", Name: "Barbell Lunge", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleQuads},
		{ID: "leg_press", Name: "Leg Press", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleQuads},
		{ID: "hack_squat_machine", Name: "Hack Squat Machine", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleQuads},
		{ID: "leg_extension", Name: "Leg Extension", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleQuads},
	},
	models.MuscleHamstrings: {
		{ID: "rdl", Name: "Romanian Deadlift", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "stiff_leg_deadlift", Name: "Stiff Leg Deadlift", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "good_morning", Name: "Good Morning", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "db_rdl", Name: "Dumbbell Romanian Deadlift", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "lying_leg_curl", Name: "Lying Leg Curl", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "seated_leg_curl", Name: "Seated Leg Curl", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleHamstrings},
		{ID: "nordic_curl", Name: "Nordic Hamstring Curl", Equipment: models.EquipmentBodyweight, PrimaryMuscle: models.MuscleHamstrings},
	},
	models.MuscleGlutes: {
		{ID: "hip_thrust", Name: "Barbell Hip Thrust", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleGlutes},
		{ID: "sumo_deadlift", Name: "Sumo Deadlift", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleGlutes},
		{ID: "barbell_glute_bridge", Name: "Barbell Glute Bridge", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleGlutes},
		{ID: "db_hip_thrust", Name: "Dumbbell Hip Thrust", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleGlutes},
		{ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleGlutes},
		{ID: "cable_kickback", Name: "Cable Kickback", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleGlutes},
		{ID: "hip_abduction_machine", Name: "Hip Abduction Machine", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleGlutes},
	},
	models.MuscleCalves: {
		{ID: "standing_calf_raise", Name: "Standing Calf Raise", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleCalves},
		{ID: "seated_calf_raise", Name: "Seated Calf Raise", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleCalves},
		{ID: "leg_press_calf", Name: "Leg Press Calf Raise", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleCalves},
		{ID: "donkey_calf_raise", Name: "Donkey Calf Raise", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleCalves},
		{ID: "db_calf_raise", Name: "Dumbbell Calf Raise", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleCalves},
		{ID: "single_leg_calf_raise", Name: "Single Leg Calf Raise", Equipment: models.EquipmentBodyweight, PrimaryMuscle: models.MuscleCalves},
	},
	models.MuscleAbs: {
		{ID: "cable_crunch", Name: "Cable Crunch", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleAbs},
		{ID: "cable_woodchop", Name: "Cable Woodchop", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleAbs},
		{ID: "pallof_press", Name: "Pallof Press", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleAbs},
		{ID: "ab_machine", Name: "Ab Crunch Machine", Equipment: models.EquipmentMachine, PrimaryMuscle: models.MuscleAbs},
		{ID: "hanging_leg_raise", Name: "Hanging Leg Raise", Equipment: models.EquipmentBodyweight, PrimaryMuscle: models.MuscleAbs},
		{ID: "plank", Name: "Plank", Equipment: models.EquipmentBodyweight, PrimaryMuscle: models.MuscleAbs},
	},
	models.MuscleTraps: {
		{ID: "barbell_shrug", Name: "Barbell Shrug", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTraps},
		{ID: "behind_back_shrug", Name: "Behind Back Barbell Shrug", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTraps},
		{ID: "power_shrug", Name: "Power Shrug", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleTraps},
		{ID: "db_shrug", Name: "Dumbbell Shrug", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleTraps},
		{ID: "cable_shrug", Name: "Cable Shrug", Equipment: models.EquipmentCables, PrimaryMuscle: models.MuscleTraps},
	},
	models.MuscleForearms: {
		{ID: "wrist_curl_bb", Name: "Barbell Wrist Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleForearms},
		{ID: "reverse_wrist_curl_bb", Name: "Reverse Barbell Wrist Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleForearms},
		{ID: "reverse_curl", Name: "Reverse Curl", Equipment: models.EquipmentBarbell, PrimaryMuscle: models.MuscleForearms},
		{ID: "wrist_curl_db", Name: "Dumbbell Wrist Curl", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleForearms},
		{ID: "farmers_carry", Name: "Farmer's Carry", Equipment: models.EquipmentDumbbells, PrimaryMuscle: models.MuscleForearms},
	},
}

// MuscleLabels maps muscle groups to display names.
var MuscleLabels = map[models.MuscleGroup]string{
	models.MuscleChest:      "Chest",
	models.MuscleBack:       "Back",
	models.MuscleShoulders:  "Shoulders",
	models.MuscleBiceps:     "Biceps",
	models.MuscleTriceps:    "Triceps",
	models.MuscleQuads:      "Quadriceps",
	models.MuscleHamstrings: "Hamstrings",
	models.MuscleGlutes:     "Glutes",
	models.MuscleCalves:     "Calves",
	models.MuscleAbs:        "Abs",
	models.MuscleTraps:      "Traps",
	models.MuscleForearms:   "Forearms",
}
