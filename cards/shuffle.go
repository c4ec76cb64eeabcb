package cards

import "math/rand"

// Source produces random indexes for shuffling. *math/rand.Rand
// satisfies it, so a fixed-seed source makes shuffles reproducible.
type Source interface {
	Intn(n int) int
}

// NewSource returns a Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes the deck in place with a single Fisher-Yates pass
// over the injected source. For a uniform source every permutation of
// the deck is equally likely.
func (d *Deck) Shuffle(src Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
