package auth

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jpmeyers/santaswap/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	game    *model.Game
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.game = &model.Game{
		Code: "12345678",
		Participants: []model.Participant{
			{ID: "Alice", Secret: "1990"},
			{ID: "Bob", Secret: "1985"},
		},
		Assignment: model.Assignment{"Alice": "Bob", "Bob": "Alice"},
	}
}

func (s *ServiceSuite) TestAuthenticateSucceeds() {
	identity, err := s.service.Authenticate(s.game, "Alice", "1990")
	s.Require().NoError(err)

	s.Equal(model.ParticipantID("Alice"), identity.ParticipantID)
	s.Equal(model.GameCode("12345678"), identity.GameCode)
}

func (s *ServiceSuite) TestAuthenticateWrongSecret() {
	_, err := s.service.Authenticate(s.game, "Alice", "1991")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateUnknownName() {
	_, err := s.service.Authenticate(s.game, "Zelda", "1990")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestFailuresAreUniform() {
	// Unknown name and wrong secret must be indistinguishable
	_, errUnknown := s.service.Authenticate(s.game, "Zelda", "1990")
	_, errWrong := s.service.Authenticate(s.game, "Alice", "9999")
	s.Equal(errUnknown, errWrong)
}

func (s *ServiceSuite) TestAuthenticateEmptySecretNeverMatches() {
	_, err := s.service.Authenticate(s.game, "Alice", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateIsRepeatable() {
	// Stateless: repeated failures never lock anything out
	for i := 0; i < 5; i++ {
		_, err := s.service.Authenticate(s.game, "Bob", "wrong")
		s.ErrorIs(err, ErrInvalidCredentials)
	}
	identity, err := s.service.Authenticate(s.game, "Bob", "1985")
	s.Require().NoError(err)
	s.Equal(model.ParticipantID("Bob"), identity.ParticipantID)
}
