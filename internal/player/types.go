package player

import "github.com/Shuftle/shuftlib/cards"

// Player decides moves for a seat driven by the simulation.
type Player interface {
	Name() string
	PlayCard(hand, playable []cards.Card) (cards.Card, error)
}

type PlayerFactory func() Player
