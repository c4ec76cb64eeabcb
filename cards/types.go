// Package cards provides the deck primitives shared by the game engines
// in this module: the card value type, the 40-card Italian deck, and
// shuffling and dealing with an injected random source.
package cards

// Suit represents a card suit. Names follow the French deck; Latin
// decks map Hearts to Cups, Diamonds to Coins, Clubs to Batons and
// Spades to Swords.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Rank represents a card rank in a 40-card Italian deck: ace through
// seven, then the three court cards.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Jack
	Knight
	King
)

// Card represents a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Jack:
		return "J"
	case Knight:
		return "N"
	case King:
		return "K"
	default:
		return "?"
	}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Suits returns the four suits in deterministic order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Ranks returns the ten ranks in canonical deck order.
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Jack, Knight, King}
}
