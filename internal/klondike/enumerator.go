package klondike

import (
	"sort"
	"strings"

	"github.com/kflex/klondike-solver/internal/card"
)

// Enumerator produces the ordered list of candidate moves to try at a
// position, per the priority groups below. It caches the two tableau-to-
// tableau groups keyed by the tableau's face-up layout, since that layout
// recurs across many positions reached via different hand/waste/foundation
// states. Which moves are legal depends only on that layout; the order of
// the revealing group also uses face-down counts, and a cache hit reuses
// the order computed for the position that first filled the entry. A
// cache is scoped to one Solver and lives for the whole search.
type Enumerator struct {
	cache         map[string]faceUpMoves
	lookups, hits int
}

// faceUpMoves holds the two move groups that depend only on the tableau's
// face-up layout: card-revealing and non-revealing tableau-to-tableau.
type faceUpMoves struct {
	revealing    []Move
	nonRevealing []Move
}

// NewEnumerator returns an Enumerator with an empty cache.
func NewEnumerator() *Enumerator {
	return &Enumerator{cache: make(map[string]faceUpMoves)}
}

// HitRatio returns the enumerator cache's hit ratio so far, or 0 if it has
// never been consulted.
func (e *Enumerator) HitRatio() float64 {
	if e.lookups == 0 {
		return 0
	}
	return float64(e.hits) / float64(e.lookups)
}

// Enumerate returns the candidate moves for g, in priority order:
//
//  1. Ace moves (waste top, then tableau tops, column order)
//  2. Other moves to foundation (waste top, then tableau tops)
//  3. Card-revealing tableau-to-tableau moves (whole face-up stacks)
//  4. Waste-to-tableau
//  5. Draw
//  6. Non-revealing tableau-to-tableau moves (partial stacks)
func (e *Enumerator) Enumerate(g *Game) []Move {
	var moves []Move

	if c, ok := g.WasteTop(); ok && c.Value == card.Ace {
		moves = append(moves, Move{Kind: WasteToFoundation})
	}
	for col := range g.Tableau {
		if top, ok := faceUpTop(g.Tableau[col]); ok && top.Value == card.Ace {
			moves = append(moves, Move{Kind: TableauToFoundation, Src: col})
		}
	}

	if c, ok := g.WasteTop(); ok && c.Value != card.Ace {
		if m := (Move{Kind: WasteToFoundation}); g.IsValid(m) {
			moves = append(moves, m)
		}
	}
	for col := range g.Tableau {
		top, ok := faceUpTop(g.Tableau[col])
		if !ok || top.Value == card.Ace {
			continue
		}
		if m := (Move{Kind: TableauToFoundation, Src: col}); g.IsValid(m) {
			moves = append(moves, m)
		}
	}

	fm, ok := e.cache[g.faceUpLayoutKey()]
	e.lookups++
	if ok {
		e.hits++
	} else {
		fm = faceUpMoves{
			revealing:    g.enumerateRevealing(),
			nonRevealing: g.enumerateNonRevealing(),
		}
		e.cache[g.faceUpLayoutKey()] = fm
	}
	moves = append(moves, fm.revealing...)

	for dst := range g.Tableau {
		if m := (Move{Kind: WasteToTableau, Dst: dst}); g.IsValid(m) {
			moves = append(moves, m)
		}
	}

	if m := (Move{Kind: Draw}); g.IsValid(m) {
		moves = append(moves, m)
	}

	moves = append(moves, fm.nonRevealing...)

	return moves
}

// faceUpTop returns the top face-up card of col, or false if it has none.
func faceUpTop(col Column) (card.Card, bool) {
	if len(col.FaceUp) == 0 {
		return card.Card{}, false
	}
	return col.FaceUp[len(col.FaceUp)-1], true
}

// faceUpLayoutKey concatenates every column's face-up cards, in column
// order, as the cache key for the face-up-dependent move groups.
func (g *Game) faceUpLayoutKey() string {
	var b strings.Builder
	for i, col := range g.Tableau {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, c := range col.FaceUp {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// enumerateRevealing returns the legal whole-face-up-stack moves (group
// 3), sorted per §4.3: when any tableau column is completely empty (king
// space is available), prefer sources with more face-down cards, since an
// empty column can absorb the biggest reveal; otherwise prefer sources
// with fewer face-down cards, since no empty slot exists to justify
// exposing a deep card. Ties break by source column index.
func (g *Game) enumerateRevealing() []Move {
	kingSpaceAvailable := false
	for _, col := range g.Tableau {
		if len(col.FaceDown) == 0 && len(col.FaceUp) == 0 {
			kingSpaceAvailable = true
			break
		}
	}

	type candidate struct {
		move        Move
		faceDownLen int
	}
	var cands []candidate
	for src := range g.Tableau {
		if len(g.Tableau[src].FaceUp) == 0 {
			continue
		}
		for dst := range g.Tableau {
			if src == dst {
				continue
			}
			m := Move{Kind: TableauToTableau, Src: src, Row: 0, Dst: dst}
			if g.IsValid(m) {
				cands = append(cands, candidate{m, len(g.Tableau[src].FaceDown)})
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].faceDownLen != cands[j].faceDownLen {
			if kingSpaceAvailable {
				return cands[i].faceDownLen > cands[j].faceDownLen
			}
			return cands[i].faceDownLen < cands[j].faceDownLen
		}
		return cands[i].move.Src < cands[j].move.Src
	})

	out := make([]Move, len(cands))
	for i, c := range cands {
		out[i] = c.move
	}
	return out
}

// enumerateNonRevealing returns the legal partial-stack tableau-to-tableau
// moves (group 6): every source row at or above index 1, so none of them
// expose a face-down card.
func (g *Game) enumerateNonRevealing() []Move {
	var out []Move
	for src := range g.Tableau {
		faceUpLen := len(g.Tableau[src].FaceUp)
		for row := 1; row < faceUpLen; row++ {
			for dst := range g.Tableau {
				if src == dst {
					continue
				}
				m := Move{Kind: TableauToTableau, Src: src, Row: row, Dst: dst}
				if g.IsValid(m) {
					out = append(out, m)
				}
			}
		}
	}
	return out
}
