package catalog

import "github.com/hypertrophy/hypertrophy/internal/models"

// VolumeLandmarks holds the weekly set-count landmarks (MEV/MAV/MRV) per
// muscle group.
var VolumeLandmarks = map[models.MuscleGroup]models.VolumeLandmark{
	models.MuscleChest:      {MEV: 8, MAV: 12, MRV: 20},
	models.MuscleBack:       {MEV: 10, MAV: 14, MRV: 22},
	models.MuscleShoulders:  {MEV: 8, MAV: 12, MRV: 18},
	models.MuscleBiceps:     {MEV: 6, MAV: 10, MRV: 16},
	models.MuscleTriceps:    {MEV: 6, MAV: 10, MRV: 16},
	models.MuscleQuads:      {MEV: 8, MAV: 12, MRV: 18},
	models.MuscleHamstrings: {MEV: 6, MAV: 10, MRV: 16},
	models.MuscleGlutes:     {MEV: 4, MAV: 8, MRV: 14},
	models.MuscleCalves:     {MEV: 6, MAV: 10, MRV: 16},
	models.MuscleAbs:        {MEV: 4, MAV: 8, MRV: 14},
	models.MuscleTraps:      {MEV: 4, MAV: 8, MRV: 12},
	models.MuscleForearms:   {MEV: 4, MAV: 6, MRV: 10},
}
