package regions_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/services/regions"
)

type RegionsServiceTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	service    regions.Service
	ctx        context.Context
}

func TestRegionsServiceSuite(t *testing.T) {
	suite.Run(t, new(RegionsServiceTestSuite))
}

func (s *RegionsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := regions.NewService(&regions.Config{Client: s.mockClient})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RegionsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func kanto() *entities.Region {
	return &entities.Region{
		ID:             1,
		Name:           "kanto",
		MainGeneration: "generation-i",
		Locations: []entities.NamedResource{
			{Name: "pallet-town", URL: "https://pokeapi.co/api/v2/location/86/"},
			{Name: "viridian-forest", URL: "https://pokeapi.co/api/v2/location/155/"},
			{Name: "cerulean-cave", URL: "https://pokeapi.co/api/v2/location/147/"},
		},
	}
}

func (s *RegionsServiceTestSuite) TestNewServiceValidation() {
	_, err := regions.NewService(nil)
	s.Error(err)

	_, err = regions.NewService(&regions.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegionsServiceTestSuite) TestGetRegionFetchesOnce() {
	s.mockClient.EXPECT().GetRegion(gomock.Any(), "kanto").Return(kanto(), nil).Times(1)

	first, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "Kanto"})
	s.Require().NoError(err)
	s.False(first.Cached)

	second, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
	s.Require().NoError(err)
	s.True(second.Cached)
	s.Same(first.Region, second.Region)
}

func (s *RegionsServiceTestSuite) TestConcurrentGetRegionSharesRequest() {
	release := make(chan struct{})
	s.mockClient.EXPECT().
		GetRegion(gomock.Any(), "kanto").
		DoAndReturn(func(_ context.Context, _ string) (*entities.Region, error) {
			<-release
			return kanto(), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	results := make([]*entities.Region, 4)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
			if err == nil {
				results[i] = out.Region
			}
		}()
	}
	close(release)
	wg.Wait()

	for _, r := range results {
		s.Require().NotNil(r)
		s.Equal("kanto", r.Name)
	}
}

func (s *RegionsServiceTestSuite) TestCanceledCallerDoesNotFailSharedFetch() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.mockClient.EXPECT().
		GetRegion(gomock.Any(), "kanto").
		DoAndReturn(func(ctx context.Context, _ string) (*entities.Region, error) {
			close(started)
			<-release
			if ctx.Err() != nil {
				return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "request canceled")
			}
			return kanto(), nil
		}).
		Times(1)

	firstCtx, cancel := context.WithCancel(s.ctx)
	firstDone := make(chan error)
	go func() {
		_, err := s.service.GetRegion(firstCtx, &regions.GetRegionInput{Name: "kanto"})
		firstDone <- err
	}()
	<-started

	secondDone := make(chan *regions.GetRegionOutput)
	go func() {
		out, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
		s.NoError(err)
		secondDone <- out
	}()

	cancel()
	err := <-firstDone
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))

	close(release)
	second := <-secondDone
	s.Require().NotNil(second)
	s.Equal("kanto", second.Region.Name)

	cached, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
	s.Require().NoError(err)
	s.True(cached.Cached)
}

func (s *RegionsServiceTestSuite) TestGetRegionFailureIsNotCached() {
	gomock.InOrder(
		s.mockClient.EXPECT().GetRegion(gomock.Any(), "kanto").Return(nil, errors.Unavailable("upstream down")),
		s.mockClient.EXPECT().GetRegion(gomock.Any(), "kanto").Return(kanto(), nil),
	)

	_, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	out, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
	s.Require().NoError(err)
	s.False(out.Cached)
}

func (s *RegionsServiceTestSuite) TestGetRegionInvalidInput() {
	testCases := []struct {
		name  string
		input *regions.GetRegionInput
	}{
		{name: "nil input", input: nil},
		{name: "empty name", input: &regions.GetRegionInput{}},
		{name: "blank name", input: &regions.GetRegionInput{Name: "  "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.GetRegion(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RegionsServiceTestSuite) TestListLocationsByRegion() {
	s.mockClient.EXPECT().GetRegion(gomock.Any(), "kanto").Return(kanto(), nil)

	out, err := s.service.ListLocationsByRegion(s.ctx, &regions.ListLocationsByRegionInput{Region: "kanto"})
	s.Require().NoError(err)
	s.Equal(3, out.Page.Count)
	s.Empty(out.Page.Next)
	s.Empty(out.Page.Previous)
	s.Equal("pallet-town", out.Page.Results[0].Name)

	// served from the region cache
	again, err := s.service.ListLocationsByRegion(s.ctx, &regions.ListLocationsByRegionInput{Region: "kanto"})
	s.Require().NoError(err)
	s.Equal(out.Page.Results, again.Page.Results)
}

func (s *RegionsServiceTestSuite) TestListLocationsByRegionFailure() {
	s.mockClient.EXPECT().GetRegion(gomock.Any(), "atlantis").Return(nil, errors.NotFound("region atlantis not found"))

	_, err := s.service.ListLocationsByRegion(s.ctx, &regions.ListLocationsByRegionInput{Region: "atlantis"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RegionsServiceTestSuite) TestListRegions() {
	page := &entities.Page{
		Count: 2,
		Results: []entities.NamedResource{
			{Name: "kanto", URL: "https://pokeapi.co/api/v2/region/1/"},
			{Name: "johto", URL: "https://pokeapi.co/api/v2/region/2/"},
		},
	}

	s.Run("index only", func() {
		s.mockClient.EXPECT().ListRegions(gomock.Any()).Return(page, nil)

		out, err := s.service.ListRegions(s.ctx, nil)
		s.Require().NoError(err)
		s.Equal(page, out.Page)
		s.Nil(out.Details)
	})

	s.Run("with details drops failures", func() {
		s.mockClient.EXPECT().ListRegions(gomock.Any()).Return(page, nil)
		s.mockClient.EXPECT().GetRegion(gomock.Any(), "kanto").Return(kanto(), nil)
		s.mockClient.EXPECT().GetRegion(gomock.Any(), "johto").Return(nil, errors.Unavailable("upstream down"))

		out, err := s.service.ListRegions(s.ctx, &regions.ListRegionsInput{WithDetails: true})
		s.Require().NoError(err)
		s.Require().Len(out.Details, 2)
		s.Equal("kanto", out.Details[0].Name)
		s.Nil(out.Details[1])

		// the warmed detail is cached
		region, err := s.service.GetRegion(s.ctx, &regions.GetRegionInput{Name: "kanto"})
		s.Require().NoError(err)
		s.True(region.Cached)
	})

	s.Run("index failure", func() {
		s.mockClient.EXPECT().ListRegions(gomock.Any()).Return(nil, errors.Unavailable("upstream down"))

		_, err := s.service.ListRegions(s.ctx, &regions.ListRegionsInput{})
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
	})
}

func (s *RegionsServiceTestSuite) TestLocationPassThrough() {
	s.mockClient.EXPECT().
		ListLocations(gomock.Any(), 20, 40).
		Return(&entities.Page{Count: 1000, Results: []entities.NamedResource{{Name: "canalave-city"}}}, nil)
	s.mockClient.EXPECT().
		GetLocation(gomock.Any(), "pallet-town").
		Return(&entities.Location{ID: 86, Name: "pallet-town", Region: "kanto"}, nil)
	s.mockClient.EXPECT().
		GetLocationArea(gomock.Any(), "missing-area").
		Return(nil, errors.NotFound("area missing-area not found"))

	list, err := s.service.ListLocations(s.ctx, &regions.ListLocationsInput{Limit: 20, Offset: 40})
	s.Require().NoError(err)
	s.Equal(1000, list.Page.Count)

	loc, err := s.service.GetLocation(s.ctx, &regions.GetLocationInput{Name: "pallet-town"})
	s.Require().NoError(err)
	s.Equal("kanto", loc.Location.Region)

	_, err = s.service.GetLocationArea(s.ctx, &regions.GetLocationAreaInput{Name: "missing-area"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
