package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/browse"
	browsemock "github.com/KirkDiggler/pokedex/internal/orchestrators/browse/mock"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/evolution"
	evolutionmock "github.com/KirkDiggler/pokedex/internal/orchestrators/evolution/mock"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
	catalogmock "github.com/KirkDiggler/pokedex/internal/services/catalog/mock"
	"github.com/KirkDiggler/pokedex/internal/services/compare"
	comparemock "github.com/KirkDiggler/pokedex/internal/services/compare/mock"
	"github.com/KirkDiggler/pokedex/internal/services/favorites"
	favoritesmock "github.com/KirkDiggler/pokedex/internal/services/favorites/mock"
	"github.com/KirkDiggler/pokedex/internal/services/regions"
	regionsmock "github.com/KirkDiggler/pokedex/internal/services/regions/mock"
	"github.com/KirkDiggler/pokedex/internal/testutils"
	"github.com/KirkDiggler/pokedex/internal/testutils/builders"
)

type CLITestSuite struct {
	suite.Suite

	ctrl          *gomock.Controller
	mockCatalog   *catalogmock.MockService
	mockBrowse    *browsemock.MockService
	mockEvolution *evolutionmock.MockService
	mockFavorites *favoritesmock.MockService
	mockRegions   *regionsmock.MockService
	mockCompare   *comparemock.MockService
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.mockBrowse = browsemock.NewMockService(s.ctrl)
	s.mockEvolution = evolutionmock.NewMockService(s.ctrl)
	s.mockFavorites = favoritesmock.NewMockService(s.ctrl)
	s.mockRegions = regionsmock.NewMockService(s.ctrl)
	s.mockCompare = comparemock.NewMockService(s.ctrl)
}

func (s *CLITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// run executes the root command against the mocked core
func (s *CLITestSuite) run(args ...string) (string, error) {
	factory := func(context.Context) (*app, error) {
		return &app{
			catalog:   s.mockCatalog,
			browse:    s.mockBrowse,
			evolution: s.mockEvolution,
			favorites: s.mockFavorites,
			regions:   s.mockRegions,
			compare:   s.mockCompare,
			logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}, nil
	}

	var buf bytes.Buffer
	root := newRootCmd(factory)
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func (s *CLITestSuite) TestListGoesToPage() {
	s.mockBrowse.EXPECT().Load(gomock.Any()).Return(&browse.State{Mode: browse.ModePaginated, Page: 1, PageCount: 66}, nil)
	s.mockBrowse.EXPECT().
		GoToPage(gomock.Any(), &browse.GoToPageInput{Page: 2}).
		Return(&browse.State{
			Mode:        browse.ModePaginated,
			Page:        2,
			PageCount:   66,
			Total:       1302,
			Items:       []browse.Item{{ID: 21, Name: "spearow"}, {ID: 22, Name: "fearow"}},
			HasNext:     true,
			HasPrevious: true,
		}, nil)

	out, err := s.run("list", "--page", "2")
	s.Require().NoError(err)
	s.Contains(out, "Mode: paginated  Page 2/66  Total 1302")
	s.Contains(out, "#0021 Spearow")
	s.Contains(out, "More: previous, next")
}

func (s *CLITestSuite) TestSearchShowsTypes() {
	s.mockBrowse.EXPECT().
		SetSearch(gomock.Any(), &browse.SetSearchInput{Term: "pika"}).
		Return(&browse.State{
			Mode:       browse.ModeSearched,
			Page:       1,
			PageCount:  1,
			SearchTerm: "pika",
			Total:      1,
			Items:      []browse.Item{{ID: 25, Name: "pikachu"}},
			Entities:   []*entities.Entity{testutils.CreateTestEntity(25, "pikachu", "electric")},
		}, nil)

	out, err := s.run("search", "pika")
	s.Require().NoError(err)
	s.Contains(out, `Mode: search ("pika")`)
	s.Contains(out, "#0025 Pikachu  [electric]")
}

func (s *CLITestSuite) TestFilterEmptyAndInvalid() {
	s.Run("no matches", func() {
		s.mockBrowse.EXPECT().
			SetCategory(gomock.Any(), &browse.SetCategoryInput{Category: "fairy"}).
			Return(&browse.State{Mode: browse.ModeCategoryFiltered, Page: 1, Category: "fairy", Items: []browse.Item{}}, nil)

		out, err := s.run("filter", "fairy")
		s.Require().NoError(err)
		s.Contains(out, "No Pokémon found.")
	})

	s.Run("unknown category", func() {
		s.mockBrowse.EXPECT().
			SetCategory(gomock.Any(), &browse.SetCategoryInput{Category: "shadow"}).
			Return(nil, errors.InvalidArgument("unknown category shadow"))

		_, err := s.run("filter", "shadow")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *CLITestSuite) TestShowMarksFavorite() {
	pikachu := builders.NewEntityBuilder(25, "pikachu").
		WithTypes("electric").
		WithStats(35, 55, 40, 50, 50, 90).
		WithSize(4, 60).
		Build()
	s.mockCatalog.EXPECT().
		GetEntity(gomock.Any(), &catalog.GetEntityInput{NameOrID: "pikachu"}).
		Return(&catalog.GetEntityOutput{Entity: pikachu}, nil)
	s.mockFavorites.EXPECT().Load(gomock.Any()).Return(&favorites.ListOutput{IDs: []int{25}}, nil)
	s.mockFavorites.EXPECT().IsFavorite(25).Return(true)

	out, err := s.run("show", "pikachu")
	s.Require().NoError(err)
	s.Contains(out, "#0025 Pikachu ★")
	s.Contains(out, "Types:  electric")
	s.Contains(out, "Height: 0.4 m")
	s.Contains(out, "Weight: 6.0 kg")
	s.Contains(out, "Total            320")
}

func (s *CLITestSuite) TestCompare() {
	pikachu := builders.NewEntityBuilder(25, "pikachu").WithStats(35, 55, 40, 50, 50, 90).Build()
	charizard := builders.NewEntityBuilder(6, "charizard").WithStats(78, 84, 78, 109, 85, 100).Build()
	s.mockCompare.EXPECT().
		Compare(gomock.Any(), &compare.CompareInput{Left: "pikachu", Right: "charizard"}).
		Return(&compare.CompareOutput{Comparison: compare.Stats(pikachu, charizard)}, nil)

	out, err := s.run("compare", "pikachu", "charizard")
	s.Require().NoError(err)
	s.Contains(out, "Pikachu (#25)  vs  Charizard (#6)")
	s.Contains(out, "Special Attack     50  109  >")
	s.Contains(out, "Total             320  534  >")
	s.Contains(out, "Leads: 0 - 6")
	s.Contains(out, "Charizard might have the advantage")
}

func (s *CLITestSuite) TestCompareCandidates() {
	s.mockCompare.EXPECT().
		Candidates(gomock.Any(), &compare.CandidatesInput{Term: "pik"}).
		Return(&compare.CandidatesOutput{Results: []entities.NamedResource{testutils.ResourceFor(25, "pikachu")}}, nil)

	out, err := s.run("compare", "candidates", "pik")
	s.Require().NoError(err)
	s.Contains(out, "#0025 Pikachu")
}

func (s *CLITestSuite) TestEvolution() {
	res := &evolution.Resolution{
		Stages: []evolution.Stage{
			{Entity: testutils.CreateTestEntity(1, "bulbasaur", "grass")},
			{Entity: testutils.CreateTestEntity(2, "ivysaur", "grass"), Transition: &evolution.Transition{Text: "Evolves at level 16"}},
		},
		AlternateForms: []evolution.Stage{},
	}

	s.Run("by id", func() {
		s.mockEvolution.EXPECT().
			Resolve(gomock.Any(), &evolution.ResolveInput{EntityID: 1}).
			Return(&evolution.ResolveOutput{Resolution: res, Applied: true}, nil)

		out, err := s.run("evolution", "1")
		s.Require().NoError(err)
		s.Contains(out, "1. Bulbasaur (#1)")
		s.Contains(out, "↓ Evolves at level 16")
		s.Contains(out, "2. Ivysaur (#2)")
	})

	s.Run("stepping", func() {
		s.mockEvolution.EXPECT().
			Resolve(gomock.Any(), &evolution.ResolveInput{Name: "bulbasaur"}).
			Return(&evolution.ResolveOutput{Resolution: res, Applied: true}, nil)

		out, err := s.run("evolution", "bulbasaur", "--step")
		s.Require().NoError(err)
		s.Contains(out, "Start: Bulbasaur (#1)")
		s.Contains(out, "Step 1/1: Evolves at level 16 → Ivysaur (#2)")
		s.Contains(out, "Fully Evolved")
	})

	s.Run("no stages", func() {
		s.mockEvolution.EXPECT().
			Resolve(gomock.Any(), &evolution.ResolveInput{Name: "ditto"}).
			Return(&evolution.ResolveOutput{Resolution: &evolution.Resolution{}, Applied: true}, nil)

		out, err := s.run("evolution", "ditto")
		s.Require().NoError(err)
		s.Contains(out, "This Pokémon has no evolution stages.")
	})
}

func (s *CLITestSuite) TestFavorites() {
	s.Run("add", func() {
		s.mockFavorites.EXPECT().Load(gomock.Any()).Return(&favorites.ListOutput{IDs: []int{1}}, nil)
		s.mockFavorites.EXPECT().
			Add(gomock.Any(), &favorites.AddInput{ID: 25}).
			Return(&favorites.ListOutput{IDs: []int{1, 25}}, nil)

		out, err := s.run("favorites", "add", "25")
		s.Require().NoError(err)
		s.Contains(out, "Favorites: [1 25]")
	})

	s.Run("toggle", func() {
		s.mockFavorites.EXPECT().Load(gomock.Any()).Return(&favorites.ListOutput{IDs: []int{1}}, nil)
		s.mockFavorites.EXPECT().
			Toggle(gomock.Any(), &favorites.ToggleInput{ID: 1}).
			Return(&favorites.ToggleOutput{IsFavorite: false, IDs: []int{}}, nil)

		out, err := s.run("favorites", "toggle", "1")
		s.Require().NoError(err)
		s.Contains(out, "Favorites: []")
	})

	s.Run("non numeric id", func() {
		_, err := s.run("favorites", "remove", "pikachu")
		s.Require().Error(err)
	})

	s.Run("list keeps unavailable entries", func() {
		s.mockFavorites.EXPECT().Load(gomock.Any()).Return(&favorites.ListOutput{IDs: []int{25, 9999}}, nil)
		s.mockCatalog.EXPECT().
			GetEntity(gomock.Any(), &catalog.GetEntityInput{NameOrID: "25"}).
			Return(&catalog.GetEntityOutput{Entity: testutils.CreateTestEntity(25, "pikachu", "electric")}, nil)
		s.mockCatalog.EXPECT().
			GetEntity(gomock.Any(), &catalog.GetEntityInput{NameOrID: "9999"}).
			Return(nil, errors.NotFound("entity 9999 not found"))

		out, err := s.run("favorites", "list")
		s.Require().NoError(err)
		s.Contains(out, "#0025 Pikachu")
		s.Contains(out, "#9999 (unavailable)")
	})
}

func (s *CLITestSuite) TestRegions() {
	kanto := &entities.Region{
		Name:           "kanto",
		MainGeneration: "generation-i",
		Locations:      []entities.NamedResource{{Name: "pallet-town"}, {Name: "viridian-forest"}},
	}
	s.mockRegions.EXPECT().
		ListRegions(gomock.Any(), &regions.ListRegionsInput{WithDetails: true}).
		Return(&regions.ListRegionsOutput{
			Page:    &entities.Page{Count: 2, Results: []entities.NamedResource{{Name: "kanto"}, {Name: "johto"}}},
			Details: []*entities.Region{kanto, nil},
		}, nil)

	out, err := s.run("regions")
	s.Require().NoError(err)
	s.Contains(out, "Kanto     Gen 1  2 locations")
	s.Contains(out, "Johto     Gen 2\n")
}

func (s *CLITestSuite) TestRegionListsLocations() {
	kanto := &entities.Region{
		Name:           "kanto",
		MainGeneration: "generation-i",
		Locations:      []entities.NamedResource{{Name: "pallet-town"}},
	}
	s.mockRegions.EXPECT().
		GetRegion(gomock.Any(), &regions.GetRegionInput{Name: "kanto"}).
		Return(&regions.GetRegionOutput{Region: kanto}, nil)
	s.mockRegions.EXPECT().
		ListLocationsByRegion(gomock.Any(), &regions.ListLocationsByRegionInput{Region: "kanto"}).
		Return(&regions.ListLocationsOutput{Page: &entities.Page{Count: 1, Results: kanto.Locations}}, nil)

	out, err := s.run("region", "kanto")
	s.Require().NoError(err)
	s.Contains(out, "Kanto (generation-i)")
	s.Contains(out, "Locations (1):")
	s.Contains(out, "- pallet-town")
}

func (s *CLITestSuite) TestLocationAreaEncounters() {
	area := &entities.LocationArea{
		Name: "viridian-forest-area",
		Encounters: []entities.Encounter{
			{Entity: entities.NamedResource{Name: "caterpie"}, Versions: []entities.VersionEncounter{{Version: "red", MaxChance: 50}}},
			{Entity: entities.NamedResource{Name: "pikachu"}, Versions: []entities.VersionEncounter{{Version: "red", MaxChance: 5}, {Version: "blue", MaxChance: 5}}},
		},
	}
	s.mockRegions.EXPECT().
		GetLocationArea(gomock.Any(), &regions.GetLocationAreaInput{Name: "viridian-forest-area"}).
		Return(&regions.GetLocationAreaOutput{Area: area}, nil)

	out, err := s.run("location", "viridian-forest", "--area", "viridian-forest-area", "--filter", "PIKA")
	s.Require().NoError(err)
	s.Contains(out, "Pikachu  2 versions  up to 5%")
	s.NotContains(out, "Caterpie")
}

func TestOpenFavoritesSQLite(t *testing.T) {
	cfg := &config.Config{
		FavoritesBackend: config.BackendSQLite,
		FavoritesKey:     "pokemonFavorites",
		SQLitePath:       filepath.Join(t.TempDir(), "favorites.db"),
	}

	repo, closeRepo, err := openFavorites(cfg)
	if err != nil {
		t.Fatalf("open favorites: %v", err)
	}
	defer func() {
		_ = closeRepo()
	}()

	out, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.IDs) != 0 {
		t.Fatalf("expected empty favorites, got %v", out.IDs)
	}
}

func TestBuildAppFromEnvironment(t *testing.T) {
	t.Setenv("POKEDEX_SQLITE_PATH", filepath.Join(t.TempDir(), "pokedex.db"))
	t.Setenv("POKEDEX_LOG_LEVEL", "debug")

	a, err := buildApp(context.Background())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if a.catalog == nil || a.browse == nil || a.evolution == nil || a.favorites == nil || a.regions == nil {
		t.Fatal("expected every component to be wired")
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
