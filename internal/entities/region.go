package entities

// Region groups locations and is tied to a main generation
type Region struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	MainGeneration string          `json:"main_generation,omitempty"`
	Names          []LocalizedText `json:"names,omitempty"`
	Locations      []NamedResource `json:"locations,omitempty"`
	Pokedexes      []NamedResource `json:"pokedexes,omitempty"`
	VersionGroups  []NamedResource `json:"version_groups,omitempty"`
}

// Location is a place within a region, split into one or more areas
type Location struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Region string          `json:"region,omitempty"`
	Names  []LocalizedText `json:"names,omitempty"`
	Areas  []NamedResource `json:"areas,omitempty"`
}

// LocationArea lists the encounters available in one area of a location
type LocationArea struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	GameIndex  int         `json:"game_index"`
	Location   string      `json:"location,omitempty"`
	Encounters []Encounter `json:"encounters,omitempty"`
}

// Encounter is one entity that can be met in an area, per game version
type Encounter struct {
	Entity   NamedResource      `json:"entity"`
	Versions []VersionEncounter `json:"versions,omitempty"`
}

// VersionEncounter holds the encounter details for a single game version
type VersionEncounter struct {
	Version   string            `json:"version"`
	MaxChance int               `json:"max_chance"`
	Details   []EncounterDetail `json:"details,omitempty"`
}

// EncounterDetail describes one way of meeting an entity
type EncounterDetail struct {
	MinLevel   int      `json:"min_level"`
	MaxLevel   int      `json:"max_level"`
	Chance     int      `json:"chance"`
	Method     string   `json:"method"`
	Conditions []string `json:"conditions,omitempty"`
}
