package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/services/regions"
)

func TestRegionInfo(t *testing.T) {
	testCases := []struct {
		name           string
		region         string
		wantOK         bool
		wantGeneration int
	}{
		{name: "first region", region: "kanto", wantOK: true, wantGeneration: 1},
		{name: "case and space", region: " Paldea ", wantOK: true, wantGeneration: 9},
		{name: "shared generation", region: "hisui", wantOK: true, wantGeneration: 8},
		{name: "unknown", region: "orre", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := regions.RegionInfo(tc.region)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantGeneration, info.Generation)
		})
	}
}

func TestFilterEncounters(t *testing.T) {
	area := &entities.LocationArea{
		Name: "viridian-forest-area",
		Encounters: []entities.Encounter{
			{Entity: entities.NamedResource{Name: "caterpie"}},
			{Entity: entities.NamedResource{Name: "pikachu"}},
			{Entity: entities.NamedResource{Name: "metapod"}},
			{Entity: entities.NamedResource{Name: "pidgeotto"}},
		},
	}

	testCases := []struct {
		name string
		area *entities.LocationArea
		term string
		want []string
	}{
		{name: "empty term keeps all", area: area, term: "", want: []string{"caterpie", "pikachu", "metapod", "pidgeotto"}},
		{name: "case insensitive", area: area, term: "PI", want: []string{"caterpie", "pikachu", "pidgeotto"}},
		{name: "no match", area: area, term: "mew", want: []string{}},
		{name: "nil area", area: nil, term: "pi", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := regions.FilterEncounters(tc.area, tc.term)
			names := make([]string, len(got))
			for i, enc := range got {
				names[i] = enc.Entity.Name
			}
			assert.Equal(t, tc.want, names)
		})
	}
}
