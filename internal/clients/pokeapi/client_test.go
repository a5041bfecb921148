package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

const bulbasaurJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"height": 7,
	"weight": 69,
	"species": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
	"types": [
		{"slot": 2, "type": {"name": "poison", "url": ""}},
		{"slot": 1, "type": {"name": "grass", "url": ""}}
	],
	"stats": [
		{"base_stat": 45, "effort": 0, "stat": {"name": "hp", "url": ""}},
		{"base_stat": 49, "effort": 0, "stat": {"name": "attack", "url": ""}}
	],
	"sprites": {
		"front_default": "https://img/1.png",
		"other": {"official-artwork": {"front_default": "https://art/1.png"}}
	}
}`

const speciesJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"flavor_text_entries": [
		{"flavor_text": "Une graine.", "language": {"name": "fr", "url": ""}},
		{"flavor_text": "A strange seed\nwas planted.", "language": {"name": "en", "url": ""}}
	],
	"genera": [{"genus": "Seed Pokémon", "language": {"name": "en", "url": ""}}],
	"evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/1/"},
	"varieties": [{"is_default": true, "pokemon": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"}}]
}`

const chainJSON = `{
	"id": 1,
	"chain": {
		"species": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
		"evolution_details": [],
		"evolves_to": [{
			"species": {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"},
			"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 16, "time_of_day": ""}],
			"evolves_to": [{
				"species": {"name": "venusaur", "url": "https://pokeapi.co/api/v2/pokemon-species/3/"},
				"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 32, "time_of_day": ""}],
				"evolves_to": []
			}]
		}]
	}
}`

type ClientTestSuite struct {
	suite.Suite

	server   *httptest.Server
	mux      *http.ServeMux
	registry *prometheus.Registry
	metrics  *Metrics
	client   Client
	requests atomic.Int32
	lastURL  atomic.Value
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests.Store(0)
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.lastURL.Store(r.URL.String())
		s.mux.ServeHTTP(w, r)
	}))

	s.registry = prometheus.NewRegistry()
	var err error
	s.metrics, err = NewMetrics(s.registry)
	s.Require().NoError(err)

	s.client, err = New(&Config{
		BaseURL: s.server.URL + "/api/v2",
		Metrics: s.metrics,
	})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(pattern, body string) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	})
}

func (s *ClientTestSuite) TestConfigValidate() {
	s.Run("fills defaults", func() {
		cfg := &Config{}
		s.Require().NoError(cfg.Validate())
		s.Equal("https://pokeapi.co/api/v2/", cfg.BaseURL)
		s.Equal(30*time.Second, cfg.HTTPTimeout)
		s.NotNil(cfg.Logger)
	})

	s.Run("rejects relative base URL", func() {
		cfg := &Config{BaseURL: "pokeapi/v2"}
		err := cfg.Validate()
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects negative pacing", func() {
		cfg := &Config{RequestsPerSecond: -1}
		s.Error(cfg.Validate())
	})

	s.Run("nil config", func() {
		var cfg *Config
		s.Error(cfg.Validate())
	})
}

func (s *ClientTestSuite) TestGetEntity() {
	s.respond("/api/v2/pokemon/bulbasaur", bulbasaurJSON)

	entity, err := s.client.GetEntity(context.Background(), "  Bulbasaur ")
	s.Require().NoError(err)

	s.Equal(1, entity.ID)
	s.Equal("bulbasaur", entity.Name)
	s.Equal([]string{"grass", "poison"}, entity.Types, "types follow slot order")
	s.Equal("https://art/1.png", entity.ArtworkURL)
	s.Equal("https://img/1.png", entity.SpriteURL)
	s.Equal("bulbasaur", entity.SpeciesName)
	hp, ok := entity.Stat("hp")
	s.True(ok)
	s.Equal(45, hp)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues(endpointPokemon, "200")))
}

func (s *ClientTestSuite) TestGetEntityEmptyKey() {
	_, err := s.client.GetEntity(context.Background(), "   ")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestStatusMapping() {
	testCases := []struct {
		name   string
		status int
		code   errors.Code
	}{
		{name: "not found", status: http.StatusNotFound, code: errors.CodeNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, code: errors.CodeResourceExhausted},
		{name: "server error", status: http.StatusInternalServerError, code: errors.CodeUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, code: errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			key := fmt.Sprintf("status-%d", tc.status)
			s.mux.HandleFunc("/api/v2/pokemon/"+key, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := s.client.GetEntity(context.Background(), key)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(tc.status, errors.GetMeta(err)["status"])
		})
	}
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.respond("/api/v2/pokemon/bulbasaur", `{"id": "not a number"`)

	_, err := s.client.GetEntity(context.Background(), "bulbasaur")
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	s.respond("/api/v2/pokemon/bulbasaur", bulbasaurJSON)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.GetEntity(ctx, "bulbasaur")
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *ClientTestSuite) TestListEntities() {
	s.respond("/api/v2/pokemon", `{
		"count": 1302,
		"next": "https://pokeapi.co/api/v2/pokemon?offset=40&limit=20",
		"previous": null,
		"results": [
			{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}
		]
	}`)

	page, err := s.client.ListEntities(context.Background(), 20, 20)
	s.Require().NoError(err)

	s.Equal(1302, page.Count)
	s.True(page.HasNext())
	s.False(page.HasPrevious())
	s.Require().Len(page.Results, 1)
	s.Equal(25, page.Results[0].ID())
	s.Equal("/api/v2/pokemon?limit=20&offset=20", s.lastURL.Load())
}

func (s *ClientTestSuite) TestListEntitiesRejectsBadWindow() {
	_, err := s.client.ListEntities(context.Background(), 0, -1)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestListAllEntities() {
	s.respond("/api/v2/pokemon", `{"count": 2, "next": null, "previous": null, "results": [
		{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
		{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
	]}`)

	all, err := s.client.ListAllEntities(context.Background())
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal(fmt.Sprintf("/api/v2/pokemon?limit=%d&offset=0", FullIndexLimit), s.lastURL.Load())
}

func (s *ClientTestSuite) TestListAllEntitiesEmpty() {
	s.respond("/api/v2/pokemon", `{"count": 0, "next": null, "previous": null, "results": []}`)

	all, err := s.client.ListAllEntities(context.Background())
	s.Require().NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

func (s *ClientTestSuite) TestGetSpecies() {
	s.respond("/api/v2/pokemon-species/1", speciesJSON)

	species, err := s.client.GetSpecies(context.Background(), "1")
	s.Require().NoError(err)

	s.Equal("bulbasaur", species.Name)
	s.True(species.HasEvolutionChain())
	s.Equal("https://pokeapi.co/api/v2/evolution-chain/1/", species.EvolutionChainURL)
	s.Equal("A strange seed was planted.", species.Description("en"))
	s.Equal("Seed Pokémon", species.Genus("en"))
	s.Require().Len(species.Varieties, 1)
	s.True(species.Varieties[0].IsDefault)
}

func (s *ClientTestSuite) TestGetEvolutionChain() {
	s.respond("/api/v2/evolution-chain/1/", chainJSON)

	s.Run("absolute URL", func() {
		chain, err := s.client.GetEvolutionChain(context.Background(), s.server.URL+"/api/v2/evolution-chain/1/")
		s.Require().NoError(err)
		s.Require().NotNil(chain.Chain)
		s.Equal("bulbasaur", chain.Chain.Species.Name)
		s.Require().Len(chain.Chain.EvolvesTo, 1)

		ivysaur := chain.Chain.EvolvesTo[0]
		s.Equal("ivysaur", ivysaur.Species.Name)
		s.Require().Len(ivysaur.Details, 1)
		s.Equal("level-up", ivysaur.Details[0].Trigger)
		s.Equal(16, ivysaur.Details[0].MinLevel)
		s.Equal(32, ivysaur.EvolvesTo[0].Details[0].MinLevel)
	})

	s.Run("relative URL", func() {
		chain, err := s.client.GetEvolutionChain(context.Background(), "evolution-chain/1/")
		s.Require().NoError(err)
		s.Equal(1, chain.ID)
	})

	s.Run("empty URL", func() {
		_, err := s.client.GetEvolutionChain(context.Background(), "")
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ClientTestSuite) TestGetEvolutionChainWithoutRoot() {
	s.respond("/api/v2/evolution-chain/9/", `{"id": 9, "chain": null}`)

	_, err := s.client.GetEvolutionChain(context.Background(), "evolution-chain/9/")
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *ClientTestSuite) TestRegionsAndLocations() {
	s.respond("/api/v2/region", `{"count": 1, "next": null, "previous": null, "results": [
		{"name": "kanto", "url": "https://pokeapi.co/api/v2/region/1/"}
	]}`)
	s.respond("/api/v2/region/kanto", `{
		"id": 1, "name": "kanto",
		"main_generation": {"name": "generation-i", "url": ""},
		"names": [{"name": "Kanto", "language": {"name": "en", "url": ""}}],
		"locations": [{"name": "pallet-town", "url": "https://pokeapi.co/api/v2/location/86/"}]
	}`)
	s.respond("/api/v2/location/pallet-town", `{
		"id": 86, "name": "pallet-town",
		"region": {"name": "kanto", "url": ""},
		"areas": [{"name": "pallet-town-area", "url": "https://pokeapi.co/api/v2/location-area/285/"}]
	}`)
	s.respond("/api/v2/location-area/pallet-town-area", `{
		"id": 285, "name": "pallet-town-area", "game_index": 1,
		"location": {"name": "pallet-town", "url": ""},
		"pokemon_encounters": [{
			"pokemon": {"name": "tentacool", "url": "https://pokeapi.co/api/v2/pokemon/72/"},
			"version_details": [{
				"version": {"name": "red", "url": ""},
				"max_chance": 100,
				"encounter_details": [{"min_level": 5, "max_level": 20, "chance": 100,
					"method": {"name": "surf", "url": ""}, "condition_values": []}]
			}]
		}]
	}`)

	ctx := context.Background()

	regions, err := s.client.ListRegions(ctx)
	s.Require().NoError(err)
	s.Require().Len(regions.Results, 1)

	region, err := s.client.GetRegion(ctx, "kanto")
	s.Require().NoError(err)
	s.Equal("generation-i", region.MainGeneration)
	s.Require().Len(region.Locations, 1)
	s.Equal(86, region.Locations[0].ID())

	location, err := s.client.GetLocation(ctx, "pallet-town")
	s.Require().NoError(err)
	s.Equal("kanto", location.Region)
	s.Require().Len(location.Areas, 1)

	area, err := s.client.GetLocationArea(ctx, "pallet-town-area")
	s.Require().NoError(err)
	s.Equal("pallet-town", area.Location)
	s.Require().Len(area.Encounters, 1)
	s.Equal("tentacool", area.Encounters[0].Entity.Name)
	s.Equal("surf", area.Encounters[0].Versions[0].Details[0].Method)
}

func (s *ClientTestSuite) TestNilMetricsIsSafe() {
	s.respond("/api/v2/pokemon/bulbasaur", bulbasaurJSON)

	c, err := New(&Config{BaseURL: s.server.URL + "/api/v2/"})
	s.Require().NoError(err)

	_, err = c.GetEntity(context.Background(), "bulbasaur")
	s.NoError(err)
}
