package pokeapi

// Wire formats of the remote source. Only the fields the core reads are
// declared; everything else in the payload is ignored by the decoder.

type apiNamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiList struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []apiNamedResource `json:"results"`
}

type apiPokemon struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Height  int               `json:"height"`
	Weight  int               `json:"weight"`
	Species apiNamedResource  `json:"species"`
	Types   []apiPokemonType  `json:"types"`
	Stats   []apiPokemonStat  `json:"stats"`
	Sprites apiPokemonSprites `json:"sprites"`
}

type apiPokemonType struct {
	Slot int              `json:"slot"`
	Type apiNamedResource `json:"type"`
}

type apiPokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     apiNamedResource `json:"stat"`
}

type apiPokemonSprites struct {
	FrontDefault *string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault *string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type apiSpecies struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	FlavorTextEntries []apiFlavorText     `json:"flavor_text_entries"`
	Genera            []apiGenus          `json:"genera"`
	EvolutionChain    *apiAPIResource     `json:"evolution_chain"`
	Varieties         []apiSpeciesVariety `json:"varieties"`
}

type apiAPIResource struct {
	URL string `json:"url"`
}

type apiFlavorText struct {
	FlavorText string           `json:"flavor_text"`
	Language   apiNamedResource `json:"language"`
}

type apiGenus struct {
	Genus    string           `json:"genus"`
	Language apiNamedResource `json:"language"`
}

type apiSpeciesVariety struct {
	IsDefault bool             `json:"is_default"`
	Pokemon   apiNamedResource `json:"pokemon"`
}

type apiEvolutionChain struct {
	ID    int           `json:"id"`
	Chain *apiChainLink `json:"chain"`
}

type apiChainLink struct {
	Species          apiNamedResource     `json:"species"`
	EvolutionDetails []apiEvolutionDetail `json:"evolution_details"`
	EvolvesTo        []*apiChainLink      `json:"evolves_to"`
}

type apiEvolutionDetail struct {
	Trigger            *apiNamedResource `json:"trigger"`
	MinLevel           *int              `json:"min_level"`
	Item               *apiNamedResource `json:"item"`
	MinHappiness       *int              `json:"min_happiness"`
	TimeOfDay          string            `json:"time_of_day"`
	KnownMove          *apiNamedResource `json:"known_move"`
	HeldItem           *apiNamedResource `json:"held_item"`
	NeedsOverworldRain bool              `json:"needs_overworld_rain"`
	TradeSpecies       *apiNamedResource `json:"trade_species"`
}

type apiName struct {
	Name     string           `json:"name"`
	Language apiNamedResource `json:"language"`
}

type apiRegion struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Locations      []apiNamedResource `json:"locations"`
	MainGeneration *apiNamedResource  `json:"main_generation"`
	Names          []apiName          `json:"names"`
	Pokedexes      []apiNamedResource `json:"pokedexes"`
	VersionGroups  []apiNamedResource `json:"version_groups"`
}

type apiLocation struct {
	ID     int                `json:"id"`
	Name   string             `json:"name"`
	Region *apiNamedResource  `json:"region"`
	Names  []apiName          `json:"names"`
	Areas  []apiNamedResource `json:"areas"`
}

type apiLocationArea struct {
	ID                int                   `json:"id"`
	Name              string                `json:"name"`
	GameIndex         int                   `json:"game_index"`
	Location          apiNamedResource      `json:"location"`
	PokemonEncounters []apiPokemonEncounter `json:"pokemon_encounters"`
}

type apiPokemonEncounter struct {
	Pokemon        apiNamedResource            `json:"pokemon"`
	VersionDetails []apiVersionEncounterDetail `json:"version_details"`
}

type apiVersionEncounterDetail struct {
	Version          apiNamedResource     `json:"version"`
	MaxChance        int                  `json:"max_chance"`
	EncounterDetails []apiEncounterDetail `json:"encounter_details"`
}

type apiEncounterDetail struct {
	MinLevel        int                `json:"min_level"`
	MaxLevel        int                `json:"max_level"`
	Chance          int                `json:"chance"`
	Method          apiNamedResource   `json:"method"`
	ConditionValues []apiNamedResource `json:"condition_values"`
}
