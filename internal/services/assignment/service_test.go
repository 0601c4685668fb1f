package assignment

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jpmeyers/santaswap/internal/dependencies/mocks"
	"github.com/jpmeyers/santaswap/internal/dependencies/random"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

func ids(names ...string) []model.ParticipantID {
	out := make([]model.ParticipantID, len(names))
	for i, n := range names {
		out[i] = model.ParticipantID(n)
	}
	return out
}

func (s *ServiceSuite) TestGenerateFailsForEmptyRoster() {
	_, err := s.service.Generate(nil)
	s.ErrorIs(err, model.ErrNotEnoughParticipants)
}

func (s *ServiceSuite) TestGenerateFailsForSingleParticipant() {
	_, err := s.service.Generate(ids("A"))
	s.ErrorIs(err, model.ErrNotEnoughParticipants)
}

func (s *ServiceSuite) TestGeneratePairSwapsBothWays() {
	result, err := s.service.Generate(ids("A", "B"))
	s.Require().NoError(err)

	s.Equal(model.ParticipantID("B"), result["A"])
	s.Equal(model.ParticipantID("A"), result["B"])
}

func (s *ServiceSuite) TestGenerateThreeParticipantsIsACycle() {
	roster := ids("A", "B", "C")
	result, err := s.service.Generate(roster)
	s.Require().NoError(err)

	s.Len(result, 3)
	s.NoError(result.Validate(roster))

	// Follow the chain: with three participants the single cycle must
	// visit everyone before returning to the start
	visited := map[model.ParticipantID]bool{}
	current := roster[0]
	for i := 0; i < 3; i++ {
		s.False(visited[current])
		visited[current] = true
		current = result[current]
	}
	s.Equal(roster[0], current)
}

func (s *ServiceSuite) TestGenerateIsDeterministicWithMockRandom() {
	// Fisher-Yates over [A B C D] draws j for i=3,2,1
	s.random.QueueIntn(3, 2, 1)
	result, err := s.service.Generate(ids("A", "B", "C", "D"))
	s.Require().NoError(err)

	// No swaps occur, so the cycle is the roster order
	s.Equal(model.Assignment{
		"A": "B",
		"B": "C",
		"C": "D",
		"D": "A",
	}, result)
}

func (s *ServiceSuite) TestGenerateShuffleChangesCycleOrder() {
	// i=3 swaps with j=0, i=2 with j=2, i=1 with j=1: [D B C A]
	s.random.QueueIntn(0, 2, 1)
	result, err := s.service.Generate(ids("A", "B", "C", "D"))
	s.Require().NoError(err)

	s.Equal(model.Assignment{
		"D": "B",
		"B": "C",
		"C": "A",
		"A": "D",
	}, result)
}

func (s *ServiceSuite) TestGenerateInvariantsWithRealRandom() {
	service := New(random.New(), testutil.NopLogger())
	roster := ids("A", "B", "C", "D", "E", "F", "G", "H")

	// Generation is randomized, so assert the invariants rather than a
	// specific mapping, across enough runs to cover many permutations
	for i := 0; i < 200; i++ {
		result, err := service.Generate(roster)
		s.Require().NoError(err)
		s.Len(result, len(roster))

		recipients := map[model.ParticipantID]bool{}
		for giver, recipient := range result {
			s.NotEqual(giver, recipient, "no participant may draw themselves")
			recipients[recipient] = true
		}
		s.Len(recipients, len(roster), "every participant must receive exactly once")
	}
}
