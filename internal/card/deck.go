package card

import (
	"fmt"
	"math/rand/v2"
)

// Deck is an ordered sequence of 52 distinct cards, used only for the
// initial deal. Position 0 is the top of the deck, the first card dealt.
type Deck []Card

// New returns a standard 52-card deck in suit-major, value-ascending order.
func New() Deck {
	deck := make(Deck, 0, NumSuits*NumValues)
	for s := Spades; s <= Clubs; s++ {
		for v := Ace; v <= King; v++ {
			deck = append(deck, Card{Value: v, Suit: s})
		}
	}
	return deck
}

// ShuffleFunc shuffles a slice of cards in place.
type ShuffleFunc func([]Card)

// Shuffle reorders the deck in place using the default Fisher-Yates
// shuffle, or fn if it is non-nil.
func (d Deck) Shuffle(fn ShuffleFunc) {
	if fn != nil {
		fn(d)
		return
	}
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// String renders the deck as a 104-character line: two characters per
// card, no separator, in order.
func (d Deck) String() string {
	buf := make([]byte, 0, len(d)*2)
	for _, c := range d {
		buf = append(buf, c.String()...)
	}
	return string(buf)
}

// ParseDeck reads a deck from a 104-character line: pairs of (value, suit)
// characters, no separator. It rejects malformed lines (wrong length,
// non-card characters, or duplicate/missing cards).
func ParseDeck(line string) (Deck, error) {
	if len(line)%2 != 0 {
		return nil, fmt.Errorf("deck: odd length %d", len(line))
	}
	n := len(line) / 2
	if n != NumSuits*NumValues {
		return nil, fmt.Errorf("deck: %d cards, want %d", n, NumSuits*NumValues)
	}

	deck := make(Deck, 0, n)
	seen := make(map[Card]bool, n)
	for i := 0; i < len(line); i += 2 {
		c, err := Parse(line[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("deck: card %d: %w", i/2, err)
		}
		if seen[c] {
			return nil, fmt.Errorf("deck: duplicate card %v", c)
		}
		seen[c] = true
		deck = append(deck, c)
	}
	return deck, nil
}
