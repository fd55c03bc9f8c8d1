package solver

import (
	"testing"
	"time"

	"github.com/kflex/klondike-solver/internal/card"
	"github.com/kflex/klondike-solver/internal/klondike"
)

// foundationReadyDeck arranges a deck so the tableau deals out already in
// ascending foundation order and the remaining hand follows the same
// pattern, giving the solver a trivially winnable position (scenario E1).
func foundationReadyDeck() card.Deck {
	var deck card.Deck
	for v := card.Ace; v <= card.King; v++ {
		for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
			deck = append(deck, card.Card{Value: v, Suit: s})
		}
	}
	return deck
}

func TestSolveWinsAnAlreadyOrderedDeck(t *testing.T) {
	rules := klondike.Rules{DrawSize: 1, TableauSize: 1}
	g := klondike.NewGame(rules, foundationReadyDeck())
	s := New(g, 0, nil)

	result := s.Solve(5 * time.Second)
	if !result.Won() {
		t.Fatalf("expected a win, got timed_out=%v moves=%v", result.TimedOut, result.Moves)
	}

	replay := klondike.NewGame(rules, foundationReadyDeck())
	for i, m := range result.Moves {
		if !replay.IsValid(m) {
			t.Fatalf("move %d (%+v) is not valid during replay", i, m)
		}
		replay.Apply(m)
	}
	if !replay.IsWon() {
		t.Fatal("replaying the winning move list did not end in a won game")
	}
}

func TestSolveDoesNotMutateInputGame(t *testing.T) {
	rules := klondike.DefaultRules()
	g := klondike.NewGame(rules, card.New())
	before := g.Clone()

	s := New(g, 0, nil)
	s.Solve(50 * time.Millisecond)

	if len(g.Hand) != len(before.Hand) || len(g.Waste) != len(before.Waste) {
		t.Error("Solve mutated the input game")
	}
}

func TestSolveRespectsTimeout(t *testing.T) {
	rules := klondike.DefaultRules()
	g := klondike.NewGame(rules, card.New())
	s := New(g, 0, nil)

	result := s.Solve(1 * time.Nanosecond)
	if !result.TimedOut {
		t.Error("an effectively zero timeout should produce TimedOut = true")
	}
	if result.Won() {
		t.Error("a timed-out result should never report Won()")
	}
}
