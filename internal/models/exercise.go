package models

// MuscleGroup is one of the twelve trainable muscle groups the planner
// knows about.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleAbs        MuscleGroup = "abs"
	MuscleTraps      MuscleGroup = "traps"
	MuscleForearms   MuscleGroup = "forearms"
)

// AllMuscles lists every muscle group in display order.
var AllMuscles = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps,
	MuscleTriceps, MuscleQuads, MuscleHamstrings, MuscleGlutes,
	MuscleCalves, MuscleAbs, MuscleTraps, MuscleForearms,
}

const (
	EquipmentBarbell    = "barbell"
	EquipmentDumbbells  = "dumbbells"
	EquipmentCables     = "cables"
	EquipmentMachine    = "machine"
	EquipmentBodyweight = "bodyweight"
	EquipmentOther      = "other"
)

// EquipmentOptions lists the accepted equipment tags for custom exercises.
var EquipmentOptions = []string{
	EquipmentBarbell, EquipmentDumbbells, EquipmentCables,
	EquipmentMachine, EquipmentBodyweight, EquipmentOther,
}

type Exercise struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Equipment     string      `json:"equipment"`
	PrimaryMuscle MuscleGroup `json:"primary"`
	IsCustom      bool        `json:"isCustom"`
}

// VolumeLandmark holds the weekly set-count landmarks for one muscle group.
// Invariant: MEV <= MAV <= MRV.
type VolumeLandmark struct {
	MEV int `json:"mev"`
	MAV int `json:"mav"`
	MRV int `json:"mrv"`
}

// VolumeGoal selects which landmark a mesocycle ramps toward.
type VolumeGoal string

const (
	GoalMEV VolumeGoal = "mev"
	GoalMAV VolumeGoal = "mav"
	GoalMRV VolumeGoal = "mrv"
)

// Landmark returns the set count for the given goal.
func (v VolumeLandmark) Landmark(goal VolumeGoal) int {
	switch goal {
	case GoalMEV:
		return v.MEV
	case GoalMRV:
		return v.MRV
	default:
		return v.MAV
	}
}
