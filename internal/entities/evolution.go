package entities

// EvolutionChain is the recursive tree of species linked by transitions
type EvolutionChain struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution chain. Details describe how this
// node is reached from its parent; EvolvesTo keeps the source order.
type ChainLink struct {
	Species   NamedResource     `json:"species"`
	Details   []EvolutionDetail `json:"details,omitempty"`
	EvolvesTo []*ChainLink      `json:"evolves_to,omitempty"`
}

// EvolutionDetail is one condition set that triggers an evolution
type EvolutionDetail struct {
	Trigger            string `json:"trigger"`
	MinLevel           int    `json:"min_level,omitempty"`
	Item               string `json:"item,omitempty"`
	MinHappiness       int    `json:"min_happiness,omitempty"`
	TimeOfDay          string `json:"time_of_day,omitempty"`
	KnownMove          string `json:"known_move,omitempty"`
	HeldItem           string `json:"held_item,omitempty"`
	NeedsOverworldRain bool   `json:"needs_overworld_rain,omitempty"`
	TradeSpecies       string `json:"trade_species,omitempty"`
}

// Trigger kinds reported by the remote source
const (
	TriggerLevelUp = "level-up"
	TriggerUseItem = "use-item"
	TriggerTrade   = "trade"
)
