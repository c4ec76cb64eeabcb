package cards

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeck() {
	deck := NewDeck()

	s.Equal(DeckSize, deck.Len(), "deck should have 40 cards")

	suits := map[Suit]int{}
	ranks := map[Rank]int{}
	seen := map[Card]int{}
	for _, card := range deck.Cards() {
		suits[card.Suit]++
		ranks[card.Rank]++
		seen[card]++
	}

	for suit, count := range suits {
		s.Equal(10, count, "each suit should have 10 cards: %s", suit)
	}
	for rank, count := range ranks {
		s.Equal(4, count, "each rank should have 4 cards: %s", rank)
	}
	for card, count := range seen {
		s.Equal(1, count, "card %v should appear exactly once", card)
	}
}

func (s *DeckTestSuite) TestShuffleKeepsMultiset() {
	deck := NewDeck()
	deck.Shuffle(NewSource(42))

	s.Equal(DeckSize, deck.Len(), "shuffled deck should still have 40 cards")
	counts := map[Card]int{}
	for _, card := range deck.Cards() {
		counts[card]++
	}
	s.Len(counts, DeckSize)
	for card, count := range counts {
		s.Equal(1, count, "card %v should appear exactly once", card)
	}
}

func (s *DeckTestSuite) TestShuffleChangesOrder() {
	reference := NewDeck()
	shuffled := NewDeck()
	shuffled.Shuffle(NewSource(42))

	ref, got := reference.Cards(), shuffled.Cards()
	moved := 0
	for i := range ref {
		if ref[i] != got[i] {
			moved++
		}
	}
	s.NotZero(moved, "shuffle should move at least one card")
}

func (s *DeckTestSuite) TestShuffleDeterministicForSeed() {
	a := NewDeck()
	b := NewDeck()
	a.Shuffle(NewSource(7))
	b.Shuffle(NewSource(7))

	s.Equal(a.Cards(), b.Cards(), "same seed should produce the same permutation")
}

// Every card should land in the top position with frequency near 1/40.
// The bound is five standard deviations wide, so a correct shuffle with
// this fixed seed stays comfortably inside it.
func (s *DeckTestSuite) TestShuffleUniformity() {
	const trials = 4000
	src := NewSource(1)
	counts := map[Card]int{}
	for i := 0; i < trials; i++ {
		deck := NewDeck()
		deck.Shuffle(src)
		counts[deck.Cards()[0]]++
	}

	expected := trials / DeckSize
	for _, card := range NewDeck().Cards() {
		got := counts[card]
		s.InDelta(expected, got, float64(expected)/2,
			"card %v landed on top %d times, expected about %d", card, got, expected)
	}
}

func (s *DeckTestSuite) TestDealRoundRobin() {
	deck := NewDeck()
	order := deck.Cards()

	hands, err := deck.Deal(4)
	s.Require().NoError(err)
	s.Require().Len(hands, 4)

	for i, hand := range hands {
		s.Len(hand, 10, "each player should receive 10 cards")
		for j, card := range hand {
			s.Equal(order[j*4+i], card, "round-robin order for seat %d card %d", i, j)
		}
	}
	s.Zero(deck.Len(), "deal consumes the deck")
}

func (s *DeckTestSuite) TestDealPartitionsDeck() {
	deck := NewDeck()
	deck.Shuffle(NewSource(11))

	hands, err := deck.Deal(5)
	s.Require().NoError(err)

	counts := map[Card]int{}
	for _, hand := range hands {
		s.Len(hand, 8)
		for _, card := range hand {
			counts[card]++
		}
	}
	s.Len(counts, DeckSize, "hands together should cover the whole deck")
	for card, count := range counts {
		s.Equal(1, count, "card %v dealt more than once", card)
	}
}

func (s *DeckTestSuite) TestDealInvalidPlayerCount() {
	for _, n := range []int{0, -1, 3, 7, 9} {
		deck := NewDeck()
		_, err := deck.Deal(n)
		s.ErrorIs(err, ErrInvalidPlayerCount, "player count %d", n)
		s.Equal(DeckSize, deck.Len(), "failed deal should leave the deck intact")
	}
}
