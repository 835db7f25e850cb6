package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hypertrophy/hypertrophy/internal/models"
)

// ParseTemplateFromTOML reads a custom template definition:
//
//	name = "My Split"
//	[[day]]
//	name = "Upper"
//	muscles = ["chest", "back"]
func ParseTemplateFromTOML(path string) (*models.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc models.TemplateTOML
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("template needs a name")
	}
	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("template needs at least one [[day]]")
	}
	known := make(map[models.MuscleGroup]bool, len(models.AllMuscles))
	for _, m := range models.AllMuscles {
		known[m] = true
	}
	for _, day := range doc.Days {
		if len(day.Muscles) == 0 {
			return nil, fmt.Errorf("day %q lists no muscles", day.Name)
		}
		for _, m := range day.Muscles {
			if !known[m] {
				return nil, fmt.Errorf("day %q has unknown muscle %q", day.Name, m)
			}
		}
	}

	return &models.Template{
		Name:     doc.Name,
		Days:     len(doc.Days),
		IsCustom: true,
		Split:    doc.Days,
	}, nil
}
