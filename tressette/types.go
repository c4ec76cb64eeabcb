// Package tressette implements the state machine for a single 40-card
// hand of Tressette: turn rotation, follow-suit legality, trick
// resolution and exact fractional scoring. A Game instance owns all of
// its state; front-ends drive it through Play and the read-only
// accessors.
package tressette

import (
	"math/big"

	"github.com/Shuftle/shuftlib/cards"
)

// NumPlayers is the number of seats at a Tressette table.
const NumPlayers = 4

// NumTricks is the number of tricks in a full hand.
const NumTricks = 10

// PlayerID identifies a seat, 0 through 3. Play rotates in seat order.
type PlayerID int

// Team groups seats for scoring: seats 0 and 2 form Team 0, seats 1
// and 3 form Team 1.
type Team int

// TeamOf returns the team a seat belongs to.
func TeamOf(p PlayerID) Team {
	return Team(int(p) % 2)
}

// Phase represents the game phase.
type Phase int

const (
	PhaseAwaitingDeal Phase = iota
	PhaseInProgress
	PhaseComplete
)

func (ph Phase) String() string {
	switch ph {
	case PhaseAwaitingDeal:
		return "awaiting deal"
	case PhaseInProgress:
		return "in progress"
	case PhaseComplete:
		return "complete"
	default:
		return "?"
	}
}

// Play represents a single card played into a trick.
type Play struct {
	Player PlayerID
	Card   cards.Card
}

// Trick is a completed trick: the plays in the order they were made,
// the seat that led, and the seat that took it.
type Trick struct {
	Plays  []Play
	Leader PlayerID
	Winner PlayerID
}

// Points returns the exact point value of the cards in the trick.
func (t Trick) Points() *big.Rat {
	pts := new(big.Rat)
	for _, p := range t.Plays {
		pts.Add(pts, CardPoints(p.Card))
	}
	return pts
}

// trickOrder ranks cards for trick superiority, weakest first. The
// three is the strongest card of a suit, ahead of the two and the ace.
var trickOrder = [...]cards.Rank{
	cards.Four, cards.Five, cards.Six, cards.Seven,
	cards.Jack, cards.Knight, cards.King,
	cards.Ace, cards.Two, cards.Three,
}

// TrickRank returns the trick strength of a rank; within the led suit
// a higher value beats a lower one.
func TrickRank(r cards.Rank) int {
	for i, v := range trickOrder {
		if v == r {
			return i
		}
	}
	return -1
}

// CardPoints returns the exact point value of a card: one point for
// the ace, a third of a point for twos, threes and court cards,
// nothing for the rest.
func CardPoints(c cards.Card) *big.Rat {
	switch c.Rank {
	case cards.Ace:
		return big.NewRat(1, 1)
	case cards.Two, cards.Three, cards.Jack, cards.Knight, cards.King:
		return big.NewRat(1, 3)
	default:
		return new(big.Rat)
	}
}

// DeckPoints returns the total point value of the 40-card deck, 32/3,
// excluding the last-trick bonus.
func DeckPoints() *big.Rat {
	return big.NewRat(32, 3)
}

// Score accumulates a team's points over a hand. CardPoints is the
// exact sum of card values taken; LastTrick records the one-point
// bonus for taking the final trick, kept separate so that card points
// always conserve the deck total.
type Score struct {
	CardPoints *big.Rat
	LastTrick  bool
}

// GamePoints settles the score into whole game points: card points
// rounded down, plus one for the last trick.
func (s Score) GamePoints() int {
	pts := int(new(big.Int).Quo(s.CardPoints.Num(), s.CardPoints.Denom()).Int64())
	if s.LastTrick {
		pts++
	}
	return pts
}

// Outcome tags the result of a play.
type Outcome int

const (
	Ongoing Outcome = iota
	TrickResolved
	GameOver
)

// PlayResult reports what a play produced. Winner and Points are set
// when the play completed a trick; FinalScores is set only on GameOver.
type PlayResult struct {
	Outcome     Outcome
	Winner      PlayerID
	Points      *big.Rat
	FinalScores [2]Score
}
