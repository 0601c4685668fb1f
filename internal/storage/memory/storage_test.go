package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmeyers/santaswap/internal/model"
)

func testGame(code model.GameCode) *model.Game {
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

func TestSaveAndGetGame(t *testing.T) {
	s := New()
	ctx := context.Background()

	game := testGame("12345678")
	require.NoError(t, s.SaveGame(ctx, game))

	retrieved, err := s.GetGame(ctx, "12345678")
	require.NoError(t, err)
	assert.Equal(t, game.Code, retrieved.Code)
	assert.Len(t, retrieved.Participants, 2)
	assert.Equal(t, model.ParticipantID("Bob"), retrieved.Assignment["Alice"])
}

func TestGetGameNotFound(t *testing.T) {
	s := New()

	_, err := s.GetGame(context.Background(), "00000000")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestDeleteGame(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveGame(ctx, testGame("12345678")))
	require.NoError(t, s.DeleteGame(ctx, "12345678"))

	_, err := s.GetGame(ctx, "12345678")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestGameExists(t *testing.T) {
	s := New()
	ctx := context.Background()

	exists, err := s.GameExists(ctx, "12345678")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.SaveGame(ctx, testGame("12345678")))

	exists, err = s.GameExists(ctx, "12345678")
	require.NoError(t, err)
	assert.True(t, exists)
}
