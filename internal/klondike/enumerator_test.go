package klondike

import (
	"testing"

	"github.com/kflex/klondike-solver/internal/card"
)

func TestEnumerateOnlyReturnsLegalMoves(t *testing.T) {
	g := NewGame(DefaultRules(), card.New())
	e := NewEnumerator()
	for i := 0; i < 200; i++ {
		moves := e.Enumerate(g)
		if len(moves) == 0 {
			return
		}
		for _, m := range moves {
			if !g.IsValid(m) {
				t.Fatalf("step %d: enumerated illegal move %+v", i, m)
			}
		}
		g.Apply(moves[0])
	}
}

func TestAceMovesComeFirst(t *testing.T) {
	g := &Game{Rules: Rules{DrawSize: 1, TableauSize: 2}, Tableau: make([]Column, 2)}
	for i := range g.Foundation {
		g.Foundation[i] = -1
	}
	g.Tableau[0].FaceUp = []card.Card{{Value: card.Ace, Suit: card.Spades}}
	g.Tableau[1].FaceUp = []card.Card{{Value: card.Five, Suit: card.Hearts}}
	g.Waste = []card.Card{{Value: card.Ace, Suit: card.Hearts}}

	e := NewEnumerator()
	moves := e.Enumerate(g)
	if len(moves) < 2 {
		t.Fatalf("expected at least 2 moves, got %d", len(moves))
	}
	for i, m := range moves[:2] {
		aceMove := (m.Kind == WasteToFoundation) ||
			(m.Kind == TableauToFoundation && g.Tableau[m.Src].FaceUp[len(g.Tableau[m.Src].FaceUp)-1].Value == card.Ace)
		if !aceMove {
			t.Errorf("move %d = %+v, want an ace move in the first two slots", i, m)
		}
	}
}

// TestRevealingMoveOrderPrefersFewerFaceDownWithoutKingSpace exercises the
// sort direction used when no tableau column is completely empty: sources
// with fewer face-down cards underneath sort first, since there is no
// empty column to justify exposing a deeper one.
func TestRevealingMoveOrderPrefersFewerFaceDownWithoutKingSpace(t *testing.T) {
	g := &Game{Rules: Rules{DrawSize: 1, TableauSize: 3}, Tableau: make([]Column, 3)}
	// Column 0: a single face-down card under a movable red ten.
	g.Tableau[0] = Column{
		FaceDown: []card.Card{{Value: card.Two, Suit: card.Clubs}},
		FaceUp:   []card.Card{{Value: card.Ten, Suit: card.Hearts}},
	}
	// Column 1: three face-down cards under another movable red ten.
	g.Tableau[1] = Column{
		FaceDown: []card.Card{
			{Value: card.Three, Suit: card.Clubs},
			{Value: card.Four, Suit: card.Clubs},
			{Value: card.Five, Suit: card.Clubs},
		},
		FaceUp: []card.Card{{Value: card.Ten, Suit: card.Diamonds}},
	}
	// Column 2: a bare black jack, able to receive either ten; not
	// completely empty, so no king space exists anywhere in the tableau.
	g.Tableau[2] = Column{FaceUp: []card.Card{{Value: card.Jack, Suit: card.Clubs}}}

	moves := g.enumerateRevealing()
	if len(moves) != 2 {
		t.Fatalf("want 2 revealing moves, got %d: %+v", len(moves), moves)
	}
	if moves[0].Src != 0 {
		t.Errorf("first revealing move should be from the shallower column 0, got src=%d", moves[0].Src)
	}
}

func TestNonRevealingMovesNeverStartAtRowZero(t *testing.T) {
	g := &Game{Rules: Rules{DrawSize: 1, TableauSize: 2}, Tableau: make([]Column, 2)}
	g.Tableau[0].FaceUp = []card.Card{
		{Value: card.Queen, Suit: card.Hearts},
		{Value: card.Eight, Suit: card.Spades},
	}
	g.Tableau[1].FaceUp = []card.Card{{Value: card.Nine, Suit: card.Hearts}}

	moves := g.enumerateNonRevealing()
	if len(moves) == 0 {
		t.Fatal("expected at least one legal partial-stack move")
	}
	for _, m := range moves {
		if m.Row == 0 {
			t.Errorf("enumerateNonRevealing returned a row-0 move, which would reveal a card: %+v", m)
		}
	}
}

func TestEnumeratorCacheHitRatioIncreases(t *testing.T) {
	g := NewGame(DefaultRules(), card.New())
	e := NewEnumerator()
	e.Enumerate(g)
	if e.HitRatio() != 0 {
		t.Fatalf("first lookup should miss: ratio = %v", e.HitRatio())
	}
	e.Enumerate(g)
	if e.HitRatio() == 0 {
		t.Errorf("second lookup on an unchanged face-up layout should hit")
	}
}
