package cards

import (
	"errors"
	"fmt"
)

// DeckSize is the number of cards in an Italian deck.
const DeckSize = 40

// ErrInvalidPlayerCount is returned when a deck cannot be dealt evenly
// to the requested number of players.
var ErrInvalidPlayerCount = errors.New("invalid player count")

// Deck is an ordered sequence of cards.
type Deck struct {
	cards []Card
}

// NewDeck creates the full 40-card deck in canonical order: suits in
// Suits() order, ranks in Ranks() order within each suit. Every
// (suit, rank) pair appears exactly once.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's current order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Deal splits the deck round-robin into numPlayers equal hands, seat 0
// receiving the top card. The deck is consumed by the deal.
func (d *Deck) Deal(numPlayers int) ([][]Card, error) {
	if numPlayers <= 0 || len(d.cards)%numPlayers != 0 {
		return nil, fmt.Errorf("%w: %d cards cannot be dealt evenly to %d players",
			ErrInvalidPlayerCount, len(d.cards), numPlayers)
	}
	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, len(d.cards)/numPlayers)
	}
	for i, c := range d.cards {
		hands[i%numPlayers] = append(hands[i%numPlayers], c)
	}
	d.cards = nil
	return hands, nil
}
