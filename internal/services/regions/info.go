package regions

import (
	"strings"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// Info is static presentation metadata for a region
type Info struct {
	Generation  int
	MapURL      string
	Description string
}

var regionInfo = map[string]Info{
	"kanto": {
		Generation:  1,
		MapURL:      "https://archives.bulbagarden.net/media/upload/2/25/LGPE_Kanto_Map.png",
		Description: "The first region introduced, home to the original 151 species.",
	},
	"johto": {
		Generation:  2,
		MapURL:      "https://archives.bulbagarden.net/media/upload/6/64/JohtoMap.png",
		Description: "Lies west of Kanto and shares its Elite Four.",
	},
	"hoenn": {
		Generation:  3,
		MapURL:      "https://archives.bulbagarden.net/media/upload/8/85/Hoenn_ORAS.png",
		Description: "A tropical region with many water routes.",
	},
	"sinnoh": {
		Generation:  4,
		MapURL:      "https://archives.bulbagarden.net/media/upload/0/08/Sinnoh_BDSP_artwork.png",
		Description: "A mountainous region divided by Mt. Coronet.",
	},
	"unova": {
		Generation:  5,
		MapURL:      "https://archives.bulbagarden.net/media/upload/f/fc/Unova_B2W2_alt.png",
		Description: "A region far from the others, modelled on a large city and its surroundings.",
	},
	"kalos": {
		Generation:  6,
		MapURL:      "https://archives.bulbagarden.net/media/upload/8/8a/Kalos_alt.png",
		Description: "The region where Mega Evolution was introduced.",
	},
	"alola": {
		Generation:  7,
		MapURL:      "https://archives.bulbagarden.net/media/upload/0/0b/Alola_USUM_artwork.png",
		Description: "Four natural islands and one artificial one, home to regional variants.",
	},
	"galar": {
		Generation:  8,
		MapURL:      "https://archives.bulbagarden.net/media/upload/c/ce/Galar_artwork.png",
		Description: "Home of the Dynamax phenomenon.",
	},
	"hisui": {
		Generation:  8,
		MapURL:      "https://archives.bulbagarden.net/media/upload/f/ff/Legends_Arceus_Hisui.png",
		Description: "An ancient version of Sinnoh.",
	},
	"paldea": {
		Generation:  9,
		MapURL:      "https://archives.bulbagarden.net/media/upload/d/dc/Paldea_artwork.png",
		Description: "An open-world region that introduced the Terastal phenomenon.",
	},
}

// RegionInfo returns the static metadata for a region name
func RegionInfo(name string) (Info, bool) {
	info, ok := regionInfo[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}

// FilterEncounters returns the area's encounters whose entity name contains
// term, ignoring case. An empty term returns every encounter.
func FilterEncounters(area *entities.LocationArea, term string) []entities.Encounter {
	if area == nil {
		return []entities.Encounter{}
	}
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]entities.Encounter, 0, len(area.Encounters))
	for _, enc := range area.Encounters {
		if term == "" || strings.Contains(strings.ToLower(enc.Entity.Name), term) {
			out = append(out, enc)
		}
	}
	return out
}
