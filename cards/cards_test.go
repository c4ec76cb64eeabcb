package cards

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardsTestSuite struct {
	suite.Suite
}

func TestCardsSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of hearts",
			card:     Card{Suit: Hearts, Rank: Ace},
			expected: "AH",
		},
		{
			name:     "seven of diamonds",
			card:     Card{Suit: Diamonds, Rank: Seven},
			expected: "7D",
		},
		{
			name:     "knight of clubs",
			card:     Card{Suit: Clubs, Rank: Knight},
			expected: "NC",
		},
		{
			name:     "king of spades",
			card:     Card{Suit: Spades, Rank: King},
			expected: "KS",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardsTestSuite) TestEnumerations() {
	s.Len(Suits(), 4, "there are four suits")
	s.Len(Ranks(), 10, "an Italian deck has ten ranks")

	// Deterministic ordering: two calls agree.
	s.Equal(Suits(), Suits())
	s.Equal(Ranks(), Ranks())
}
