package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jpmeyers/santaswap/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) testGame(code model.GameCode) *model.Game {
	return &model.Game{
		Code: code,
		Participants: []model.Participant{
			{ID: "Alice", Secret: "1990", BirthYear: 1990, Interests: []string{"hiking"}},
			{ID: "Bob", Secret: "1985", BirthYear: 1985, Interests: []string{"chess"}},
		},
		Assignment: model.Assignment{
			"Alice": "Bob",
			"Bob":   "Alice",
		},
		CreatedAt: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.testGame("12345678")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "12345678")
	s.Require().NoError(err)
	s.Equal(game.Code, retrieved.Code)
	s.Len(retrieved.Participants, 2)
	s.Equal(model.ParticipantID("Bob"), retrieved.Assignment["Alice"])
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "00000000")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, s.testGame("12345678"))

	err := s.storage.DeleteGame(s.ctx, "12345678")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "12345678")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameExists() {
	exists, err := s.storage.GameExists(s.ctx, "12345678")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveGame(s.ctx, s.testGame("12345678"))

	exists, err = s.storage.GameExists(s.ctx, "12345678")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestGameTTL() {
	err := s.storage.SaveGame(s.ctx, s.testGame("12345678"))
	s.Require().NoError(err)

	s.mini.FastForward(2 * time.Hour)

	_, err = s.storage.GetGame(s.ctx, "12345678")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestCorruptRecordRejected() {
	s.Require().NoError(s.mini.Set(gameKey("12345678"), "not json"))

	_, err := s.storage.GetGame(s.ctx, "12345678")
	s.ErrorIs(err, model.ErrCorruptGameRecord)
}

func (s *StorageSuite) TestInvalidRecordRejected() {
	// A syntactically valid record whose assignment maps a giver to themselves
	s.Require().NoError(s.mini.Set(gameKey("12345678"),
		`{"Code":"12345678","Participants":[{"ID":"Alice","Secret":"1990"},{"ID":"Bob","Secret":"1985"}],"Assignment":{"Alice":"Alice","Bob":"Bob"}}`))

	_, err := s.storage.GetGame(s.ctx, "12345678")
	s.ErrorIs(err, model.ErrCorruptGameRecord)
}
