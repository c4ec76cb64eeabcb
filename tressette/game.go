package tressette

import (
	"fmt"
	"math/big"

	"github.com/Shuftle/shuftlib/cards"
)

// Game is the root state container for one 40-card Tressette hand.
// It is not safe for concurrent use; each game belongs to one driver.
type Game struct {
	phase  Phase
	hands  [NumPlayers][]cards.Card
	leader PlayerID
	plays  []Play
	tricks []Trick
	scores [2]Score
}

// NewGame shuffles a fresh deck with src and deals ten cards to each
// of the four seats, round-robin. Seat 0 leads the first trick.
// Player counts other than four are rejected with
// cards.ErrInvalidPlayerCount.
func NewGame(playerCount int, src cards.Source) (*Game, error) {
	if playerCount != NumPlayers {
		return nil, fmt.Errorf("%w: tressette is played by %d players, got %d",
			cards.ErrInvalidPlayerCount, NumPlayers, playerCount)
	}
	deck := cards.NewDeck()
	deck.Shuffle(src)
	dealt, err := deck.Deal(playerCount)
	if err != nil {
		return nil, err
	}
	g := newGame()
	for i := range g.hands {
		g.hands[i] = dealt[i]
	}
	return g, nil
}

// NewGameFromHands starts a game from predetermined hands, with the
// given seat leading the first trick. Each hand must hold ten cards
// and together they must cover the full deck exactly once.
func NewGameFromHands(hands [NumPlayers][]cards.Card, leader PlayerID) (*Game, error) {
	if leader < 0 || leader >= NumPlayers {
		return nil, fmt.Errorf("invalid leader seat %d", leader)
	}
	seen := map[cards.Card]bool{}
	for i, hand := range hands {
		if len(hand) != NumTricks {
			return nil, fmt.Errorf("seat %d must hold %d cards, got %d", i, NumTricks, len(hand))
		}
		for _, c := range hand {
			if seen[c] {
				return nil, fmt.Errorf("duplicate card detected: %v", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != cards.DeckSize {
		return nil, fmt.Errorf("expected %d unique cards, got %d", cards.DeckSize, len(seen))
	}
	g := newGame()
	g.leader = leader
	for i := range g.hands {
		g.hands[i] = append([]cards.Card(nil), hands[i]...)
	}
	return g, nil
}

func newGame() *Game {
	g := &Game{phase: PhaseInProgress}
	for t := range g.scores {
		g.scores[t] = Score{CardPoints: new(big.Rat)}
	}
	return g
}

// Play plays card c for seat p. A rejected play has no side effects.
// The result reports whether the trick is still open, who took a
// completed trick and its points, or the final scores once all forty
// cards are down.
func (g *Game) Play(p PlayerID, c cards.Card) (PlayResult, error) {
	if g.phase != PhaseInProgress {
		return PlayResult{}, fmt.Errorf("%w: game is %s", ErrInvalidGameState, g.phase)
	}
	if p != g.CurrentTurn() {
		return PlayResult{}, fmt.Errorf("%w: seat %d (turn is seat %d)", ErrNotPlayerTurn, p, g.CurrentTurn())
	}
	idx, ok := indexOfCard(g.hands[p], c)
	if !ok {
		return PlayResult{}, fmt.Errorf("%w: %v", ErrCardNotInHand, c)
	}
	if led, open := g.LedSuit(); open && c.Suit != led && hasSuit(g.hands[p], led) {
		return PlayResult{}, fmt.Errorf("%w: must follow %v", ErrIllegalPlay, led)
	}

	g.hands[p] = append(g.hands[p][:idx], g.hands[p][idx+1:]...)
	g.plays = append(g.plays, Play{Player: p, Card: c})
	if len(g.plays) < NumPlayers {
		return PlayResult{Outcome: Ongoing}, nil
	}

	trick := g.resolveTrick()
	g.tricks = append(g.tricks, trick)
	pts := trick.Points()
	team := TeamOf(trick.Winner)
	g.scores[team].CardPoints.Add(g.scores[team].CardPoints, pts)
	g.leader = trick.Winner
	g.plays = nil

	if len(g.tricks) == NumTricks {
		g.scores[team].LastTrick = true
		g.phase = PhaseComplete
		return PlayResult{Outcome: GameOver, Winner: trick.Winner, Points: pts, FinalScores: g.Scores()}, nil
	}
	return PlayResult{Outcome: TrickResolved, Winner: trick.Winner, Points: pts}, nil
}

// resolveTrick determines the taker of the four cards on the table:
// the highest trick-rank card of the led suit. Off-suit cards never
// win; there is no trump in Tressette.
func (g *Game) resolveTrick() Trick {
	led := g.plays[0].Card.Suit
	best := 0
	for i := 1; i < len(g.plays); i++ {
		c := g.plays[i].Card
		if c.Suit != led {
			continue
		}
		if TrickRank(c.Rank) > TrickRank(g.plays[best].Card.Rank) {
			best = i
		}
	}
	return Trick{
		Plays:  append([]Play(nil), g.plays...),
		Leader: g.leader,
		Winner: g.plays[best].Player,
	}
}

// CurrentTurn returns the seat expected to play next.
func (g *Game) CurrentTurn() PlayerID {
	return PlayerID((int(g.leader) + len(g.plays)) % NumPlayers)
}

// LedSuit returns the suit led in the current trick. open is false
// when no card has been played into it yet.
func (g *Game) LedSuit() (led cards.Suit, open bool) {
	if len(g.plays) == 0 {
		return 0, false
	}
	return g.plays[0].Card.Suit, true
}

// Playable returns the cards seat p may legally play now. On lead any
// card is legal; otherwise the cards of the led suit, or the whole
// hand when the seat is void in it.
func (g *Game) Playable(p PlayerID) []cards.Card {
	if g.phase != PhaseInProgress {
		return nil
	}
	hand := g.hands[p]
	led, open := g.LedSuit()
	if !open || !hasSuit(hand, led) {
		return append([]cards.Card(nil), hand...)
	}
	var out []cards.Card
	for _, c := range hand {
		if c.Suit == led {
			out = append(out, c)
		}
	}
	return out
}

// Hand returns a copy of seat p's current hand. Other seats' hands are
// not reachable through the public surface.
func (g *Game) Hand(p PlayerID) []cards.Card {
	return append([]cards.Card(nil), g.hands[p]...)
}

// CurrentTrick returns a copy of the plays made into the in-progress
// trick, in play order.
func (g *Game) CurrentTrick() []Play {
	return append([]Play(nil), g.plays...)
}

// Tricks returns copies of the completed tricks, in order.
func (g *Game) Tricks() []Trick {
	out := make([]Trick, len(g.tricks))
	for i, t := range g.tricks {
		out[i] = Trick{
			Plays:  append([]Play(nil), t.Plays...),
			Leader: t.Leader,
			Winner: t.Winner,
		}
	}
	return out
}

// Scores returns a copy of the running team scores.
func (g *Game) Scores() [2]Score {
	var out [2]Score
	for t, s := range g.scores {
		out[t] = Score{CardPoints: new(big.Rat).Set(s.CardPoints), LastTrick: s.LastTrick}
	}
	return out
}

// Phase returns the current phase of the game.
func (g *Game) Phase() Phase {
	return g.phase
}

// Winner reports the winning team of a completed game by settled game
// points. tie is true when both teams finish level; no side is
// preferred in that case. Calling it before completion returns
// ErrInvalidGameState.
func (g *Game) Winner() (winner Team, tie bool, err error) {
	if g.phase != PhaseComplete {
		return 0, false, fmt.Errorf("%w: game is %s", ErrInvalidGameState, g.phase)
	}
	a, b := g.scores[0].GamePoints(), g.scores[1].GamePoints()
	switch {
	case a == b:
		return 0, true, nil
	case a > b:
		return 0, false, nil
	default:
		return 1, false, nil
	}
}

func indexOfCard(hand []cards.Card, target cards.Card) (int, bool) {
	for i, c := range hand {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func hasSuit(hand []cards.Card, s cards.Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}
