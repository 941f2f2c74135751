package game

import (
	"fmt"
	"math/rand/v2"
)

// CardValue is the symbol printed on a card face.
type CardValue string

// Deck is an ordered sequence of cards in which every value appears exactly twice.
type Deck []CardValue

// BuildDeck returns the unshuffled deck of a tier: each of its four values, doubled.
func (t *Tuning) BuildDeck(d Difficulty) Deck {
	values := t.Level(d).Values
	deck := make(Deck, 0, 2*len(values))
	for _, v := range values {
		deck = append(deck, v, v)
	}
	return deck
}

// Shuffle returns a uniformly random permutation of deck, leaving deck untouched.
//
// It is a plain Fisher-Yates: walking from the last index down to 1, each
// position is swapped with a uniformly chosen one in [0, i].
func Shuffle(deck Deck, rng *rand.Rand) Deck {
	shuffled := make(Deck, len(deck))
	copy(shuffled, deck)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Validate checks the deck is a multiset of pairs.
func (d Deck) Validate() error {
	if len(d)%2 != 0 {
		return fmt.Errorf("deck has an odd number of cards (%d)", len(d))
	}
	counts := make(map[CardValue]int, len(d)/2)
	for _, v := range d {
		counts[v]++
	}
	for v, n := range counts {
		if n != 2 {
			return fmt.Errorf("card %q appears %d times, want 2", v, n)
		}
	}
	return nil
}
