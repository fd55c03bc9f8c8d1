package klondike

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kflex/klondike-solver/internal/card"
)

// CanonicalID produces a compact key such that positions the solver
// should treat as equivalent map to the same key. canFlipDeck records
// whether the draw-cycle guard currently permits one more deck flip; it is
// not part of Game and must be supplied by the caller (the Solver).
func (g *Game) CanonicalID(canFlipDeck bool) string {
	var b strings.Builder

	if canFlipDeck {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('|')

	wasteTop, hasWasteTop := g.WasteTop()
	if hasWasteTop {
		b.WriteString(wasteTop.String())
	}
	b.WriteByte('|')

	for _, c := range g.accessibleDrawCards() {
		b.WriteString(c.String())
	}
	b.WriteByte('|')

	for s := 0; s < card.NumSuits; s++ {
		if s > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(g.Foundation[s]) + 1))
	}
	b.WriteByte('|')

	cols := make([]string, len(g.Tableau))
	for i, col := range g.Tableau {
		cols[i] = columnKey(col)
	}
	sort.Strings(cols)
	b.WriteString(strings.Join(cols, ","))

	return b.String()
}

// columnKey serializes one tableau column for CanonicalID. Only the
// face-down count and the face-up cards are encoded -- never the column's
// own array position -- so that two games differing only by a permutation
// of tableau columns produce identical canonical IDs.
func columnKey(col Column) string {
	var faceUp strings.Builder
	for _, c := range col.FaceUp {
		faceUp.WriteString(c.String())
	}
	if len(col.FaceDown) == 0 {
		return faceUp.String()
	}
	return strconv.Itoa(len(col.FaceDown)) + ":" + faceUp.String()
}

// accessibleDrawCards returns, in insertion order with duplicates removed,
// the cards that would be revealed as waste tops by future DRAWs from the
// current (hand, waste) without any intervening play from the waste.
func (g *Game) accessibleDrawCards() []card.Card {
	// newDeck is the draw cycle with the next card to draw at the end.
	// Hand and Waste both keep their top card at index 0.
	newDeck := make([]card.Card, 0, len(g.Waste)+len(g.Hand))
	newDeck = append(newDeck, g.Waste...)
	for i := len(g.Hand) - 1; i >= 0; i-- {
		newDeck = append(newDeck, g.Hand[i])
	}

	seen := make(map[card.Card]bool)
	var out []card.Card
	add := func(c card.Card) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	n := len(newDeck)
	drawSize := g.Rules.DrawSize
	if n > 0 {
		for i := n - drawSize; i >= 0; i -= drawSize {
			add(newDeck[i])
		}
		add(newDeck[0])
	}
	if top, ok := g.WasteTop(); ok {
		add(top)
	}
	return out
}
