package models

// DayDefinition names one training day and the muscle groups it hits.
type DayDefinition struct {
	Name    string        `json:"name" toml:"name"`
	Muscles []MuscleGroup `json:"muscles" toml:"muscles"`
}

// Template is a named training split. Built-in templates live in the
// catalog package and are never mutated; custom ones are keyed by a
// generated id in AppState.CustomTemplates.
type Template struct {
	Name     string          `json:"name"`
	Days     int             `json:"days"`
	IsCustom bool            `json:"isCustom"`
	Split    []DayDefinition `json:"split"`
}

//
// For TOML parsing only
//

type TemplateTOML struct {
	Name string            `toml:"name"`
	Days []DayDefinition   `toml:"day"`
}
