// Package klondike implements the Klondike Solitaire position model: the
// mutable Game state, move legality and application, cloning, win
// detection, and canonical-state identification. It holds no search logic.
package klondike

import "github.com/kflex/klondike-solver/internal/card"

// Column is one tableau column: a face-down stack (bottom-rooted, never
// reordered) with a face-up stack on top of it. In both slices, index 0
// is the bottom of that sub-stack and the last element is the top.
type Column struct {
	FaceDown []card.Card
	FaceUp   []card.Card
}

// Game is the mutable Klondike position: rules, hand (stock), waste, the
// four foundations, and the tableau columns.
type Game struct {
	Rules Rules
	// Hand[0] is the top of the stock, the next card to draw.
	Hand []card.Card
	// Waste[0] is the top of the waste, the only playable waste card.
	Waste []card.Card
	// Foundation holds, per suit (indexed by card.Suit), the value index
	// of the highest card placed, or -1 if the foundation is empty.
	Foundation [card.NumSuits]int8
	Tableau    []Column
}

// NewGame deals a fresh game from deck under rules. The conventional deal
// places exactly k face-down cards under one face-up card in column k
// (0-indexed), consuming the top rules.TableauSize*(rules.TableauSize+1)/2
// cards from the top of deck; the remaining cards stay in Hand in deal
// order.
func NewGame(rules Rules, deck card.Deck) *Game {
	rules = rules.Normalize()
	g := &Game{
		Rules:   rules,
		Tableau: make([]Column, rules.TableauSize),
	}
	for i := range g.Foundation {
		g.Foundation[i] = -1
	}

	pos := 0
	for col := 0; col < rules.TableauSize; col++ {
		faceDown := append([]card.Card(nil), deck[pos:pos+col]...)
		pos += col
		faceUp := []card.Card{deck[pos]}
		pos++
		g.Tableau[col] = Column{FaceDown: faceDown, FaceUp: faceUp}
	}
	g.Hand = append([]card.Card(nil), deck[pos:]...)
	return g
}

// WasteTop returns the top waste card and true, or a zero Card and false.
func (g *Game) WasteTop() (card.Card, bool) {
	if len(g.Waste) == 0 {
		return card.Card{}, false
	}
	return g.Waste[0], true
}

// canPlaceOnTableau reports whether c may be placed on top of column dst:
// empty columns accept only a King; otherwise c must be one below and
// opposite color from the current face-up top.
func (g *Game) canPlaceOnTableau(c card.Card, dst int) bool {
	col := g.Tableau[dst]
	if len(col.FaceUp) == 0 {
		return c.Value == card.King
	}
	top := col.FaceUp[len(col.FaceUp)-1]
	return int(top.Value) == int(c.Value)+1 && top.IsRed() != c.IsRed()
}

// IsValid reports whether m is legal in the current position. It never
// mutates.
func (g *Game) IsValid(m Move) bool {
	switch m.Kind {
	case Draw:
		return len(g.Hand) > 0 || len(g.Waste) > 0

	case WasteToFoundation:
		c, ok := g.WasteTop()
		if !ok {
			return false
		}
		return int(g.Foundation[c.Suit]) == int(c.Value)-1

	case WasteToTableau:
		c, ok := g.WasteTop()
		if !ok || m.Dst < 0 || m.Dst >= len(g.Tableau) {
			return false
		}
		return g.canPlaceOnTableau(c, m.Dst)

	case TableauToFoundation:
		if m.Src < 0 || m.Src >= len(g.Tableau) {
			return false
		}
		col := g.Tableau[m.Src]
		if len(col.FaceUp) == 0 {
			return false
		}
		c := col.FaceUp[len(col.FaceUp)-1]
		return int(g.Foundation[c.Suit]) == int(c.Value)-1

	case TableauToTableau:
		if m.Src < 0 || m.Src >= len(g.Tableau) || m.Dst < 0 || m.Dst >= len(g.Tableau) || m.Src == m.Dst {
			return false
		}
		src := g.Tableau[m.Src]
		if m.Row < 0 || m.Row >= len(src.FaceUp) {
			return false
		}
		return g.canPlaceOnTableau(src.FaceUp[m.Row], m.Dst)

	case FoundationToTableau:
		if m.Src < 0 || m.Src >= card.NumSuits || g.Foundation[m.Src] < 0 {
			return false
		}
		if m.Dst < 0 || m.Dst >= len(g.Tableau) {
			return false
		}
		dst := g.Tableau[m.Dst]
		if len(dst.FaceUp) == 0 {
			return false
		}
		c := card.Card{Value: card.Value(g.Foundation[m.Src]), Suit: card.Suit(m.Src)}
		top := dst.FaceUp[len(dst.FaceUp)-1]
		return int(top.Value) == int(c.Value)+1 && top.IsRed() != c.IsRed()
	}
	return false
}

// Apply mutates the game by performing m, which must already be valid.
func (g *Game) Apply(m Move) {
	switch m.Kind {
	case Draw:
		g.applyDraw()

	case WasteToFoundation:
		c := g.Waste[0]
		g.Foundation[c.Suit]++
		g.Waste = g.Waste[1:]

	case WasteToTableau:
		c := g.Waste[0]
		g.Waste = g.Waste[1:]
		g.Tableau[m.Dst].FaceUp = append(g.Tableau[m.Dst].FaceUp, c)

	case TableauToFoundation:
		col := &g.Tableau[m.Src]
		c := col.FaceUp[len(col.FaceUp)-1]
		col.FaceUp = col.FaceUp[:len(col.FaceUp)-1]
		g.Foundation[c.Suit]++

	case TableauToTableau:
		src := &g.Tableau[m.Src]
		moving := append([]card.Card(nil), src.FaceUp[m.Row:]...)
		src.FaceUp = src.FaceUp[:m.Row]
		g.Tableau[m.Dst].FaceUp = append(g.Tableau[m.Dst].FaceUp, moving...)

	case FoundationToTableau:
		c := card.Card{Value: card.Value(g.Foundation[m.Src]), Suit: card.Suit(m.Src)}
		g.Foundation[m.Src]--
		g.Tableau[m.Dst].FaceUp = append(g.Tableau[m.Dst].FaceUp, c)
	}
	g.flipAll()
}

// applyDraw implements DRAW: recycling the waste back to hand first if the
// hand is empty, then drawing up to Rules.DrawSize cards.
func (g *Game) applyDraw() {
	if len(g.Hand) == 0 {
		g.recycleWaste()
	}
	n := g.Rules.DrawSize
	if n > len(g.Hand) {
		n = len(g.Hand)
	}
	for i := 0; i < n; i++ {
		c := g.Hand[0]
		g.Hand = g.Hand[1:]
		g.Waste = append([]card.Card{c}, g.Waste...)
	}
}

// recycleWaste flips the waste back into the hand: the new hand order is
// the reverse of the current waste, so the draw sequence that follows
// reproduces the order cards were originally drawn in.
func (g *Game) recycleWaste() {
	newHand := make([]card.Card, len(g.Waste))
	for i, c := range g.Waste {
		newHand[len(g.Waste)-1-i] = c
	}
	g.Hand = newHand
	g.Waste = nil
}

// flipAll applies the post-move flip rule: for every column whose
// face-up is empty and face-down is non-empty, move the top face-down
// card to face-up, exactly once.
func (g *Game) flipAll() {
	for i := range g.Tableau {
		col := &g.Tableau[i]
		if len(col.FaceUp) == 0 && len(col.FaceDown) > 0 {
			top := col.FaceDown[len(col.FaceDown)-1]
			col.FaceDown = col.FaceDown[:len(col.FaceDown)-1]
			col.FaceUp = append(col.FaceUp, top)
		}
	}
}

// IsWon reports whether hand, waste, and every face-down stack are empty.
func (g *Game) IsWon() bool {
	if len(g.Hand) != 0 || len(g.Waste) != 0 {
		return false
	}
	for _, col := range g.Tableau {
		if len(col.FaceDown) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g. Rules is immutable and shared.
func (g *Game) Clone() *Game {
	clone := &Game{Rules: g.Rules, Foundation: g.Foundation}
	clone.Hand = append([]card.Card(nil), g.Hand...)
	clone.Waste = append([]card.Card(nil), g.Waste...)
	clone.Tableau = make([]Column, len(g.Tableau))
	for i, col := range g.Tableau {
		clone.Tableau[i] = Column{
			FaceDown: append([]card.Card(nil), col.FaceDown...),
			FaceUp:   append([]card.Card(nil), col.FaceUp...),
		}
	}
	return clone
}
