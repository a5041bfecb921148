package favorites_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/repositories/favorites"
)

type SQLiteFavoritesTestSuite struct {
	suite.Suite
	path  string
	store *favorites.SQLiteStore
	repo  favorites.Repository
	ctx   context.Context
}

func TestSQLiteFavoritesSuite(t *testing.T) {
	suite.Run(t, new(SQLiteFavoritesTestSuite))
}

func (s *SQLiteFavoritesTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "favorites.db")
	s.ctx = context.Background()
	s.open()
}

func (s *SQLiteFavoritesTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *SQLiteFavoritesTestSuite) open() {
	store, err := favorites.OpenSQLite(s.path)
	s.Require().NoError(err)
	s.store = store

	repo, err := favorites.NewSQLite(&favorites.SQLiteConfig{Store: store})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteFavoritesTestSuite) TestOpenRequiresPath() {
	_, err := favorites.OpenSQLite("  ")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteFavoritesTestSuite) TestNewSQLiteValidation() {
	_, err := favorites.NewSQLite(nil)
	s.Error(err)

	_, err = favorites.NewSQLite(&favorites.SQLiteConfig{})
	s.Error(err)
}

func (s *SQLiteFavoritesTestSuite) TestLoadEmpty() {
	out, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.NotNil(out.IDs)
	s.Empty(out.IDs)
}

func (s *SQLiteFavoritesTestSuite) TestSaveOverwrites() {
	_, err := s.repo.Save(s.ctx, favorites.SaveInput{IDs: []int{4, 7}})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, favorites.SaveInput{IDs: []int{7, 25}})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int{7, 25}, out.IDs)
}

func (s *SQLiteFavoritesTestSuite) TestSurvivesReopen() {
	_, err := s.repo.Save(s.ctx, favorites.SaveInput{IDs: []int{150, 151}})
	s.Require().NoError(err)

	s.Require().NoError(s.store.Close())
	s.open()

	out, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int{150, 151}, out.IDs)
}

func (s *SQLiteFavoritesTestSuite) TestStoresJSONArray() {
	_, err := s.repo.Save(s.ctx, favorites.SaveInput{IDs: []int{1, 2}})
	s.Require().NoError(err)

	db, err := sql.Open("sqlite", s.path)
	s.Require().NoError(err)
	defer func() {
		_ = db.Close()
	}()

	var value string
	s.Require().NoError(db.QueryRow(`SELECT value FROM kv WHERE key = ?`, favorites.DefaultKey).Scan(&value))
	s.JSONEq(`[1, 2]`, value)
}

func (s *SQLiteFavoritesTestSuite) TestLoadCorrupted() {
	db, err := sql.Open("sqlite", s.path)
	s.Require().NoError(err)
	defer func() {
		_ = db.Close()
	}()
	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, favorites.DefaultKey, "{broken")
	s.Require().NoError(err)

	_, err = s.repo.Load(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}
