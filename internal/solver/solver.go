// Package solver implements the depth-first backtracking search engine:
// the transposition prune, draw-cycle guard, stack-loop guard, move
// ordering (delegated to klondike.Enumerator), and diagnostics.
package solver

import (
	"time"

	"github.com/kflex/klondike-solver/internal/cache"
	"github.com/kflex/klondike-solver/internal/klondike"
)

// Result is the outcome of a Solve call.
type Result struct {
	// Moves is the winning move sequence, or nil if none was found.
	Moves []klondike.Move
	// TimedOut is true if the search stopped because the timeout elapsed,
	// as opposed to exhausting the search space.
	TimedOut bool
	// Calls is the number of search-node entries.
	Calls int
	// Elapsed is the wall-clock search duration.
	Elapsed time.Duration
}

// Won reports whether Result represents a winning search.
func (r Result) Won() bool {
	return !r.TimedOut && r.Moves != nil
}

// Solver is a depth-first backtracker over one Game. It owns exclusive
// mutable references to its transposition cache and its per-path
// seen-card-stacks set; both are created by New and last as long as the
// Solver, since Solve does not reset them.
type Solver struct {
	game  *klondike.Game
	cache *cache.Transposition
	enum  *klondike.Enumerator
	diag  Diagnostics

	seen     map[string]int
	calls    int
	start    time.Time
	timeout  time.Duration
	timedOut bool
}

// New returns a Solver over game. cacheSize <= 0 uses cache.DefaultMaxSize.
// diag may be nil, in which case diagnostics are discarded.
func New(game *klondike.Game, cacheSize int, diag Diagnostics) *Solver {
	if diag == nil {
		diag = NoDiagnostics{}
	}
	return &Solver{
		game:  game,
		cache: cache.New(cacheSize),
		enum:  klondike.NewEnumerator(),
		diag:  diag,
		seen:  make(map[string]int),
	}
}

// Solve runs the search to completion, a win, or timeout, whichever comes
// first. It never mutates the Game passed to New; all work happens on
// clones.
func (s *Solver) Solve(timeout time.Duration) Result {
	s.start = time.Now()
	s.timeout = timeout
	s.calls = 0
	s.timedOut = false

	moves, won := s.search(s.game, false, 0)

	return Result{
		Moves:    moves,
		TimedOut: s.timedOut,
		Calls:    s.calls,
		Elapsed:  time.Since(s.start),
	}
}

// search is the per-node procedure of §4.5: timeout, win check,
// transposition prune, enumerate, and for each candidate move in order,
// the draw-cycle guard, the deck-flip re-enable rule, clone-apply, the
// stack-loop guard, recursion, and strict undo of any per-path state on
// backtrack.
func (s *Solver) search(g *klondike.Game, canFlipDeck bool, depth int) ([]klondike.Move, bool) {
	s.calls++
	if s.calls%5000 == 0 {
		s.diag.Log(s.calls, s.cache.Len(), depth, time.Since(s.start), s.enum.HitRatio())
	}

	if time.Since(s.start) > s.timeout {
		s.timedOut = true
		return nil, false
	}

	if g.IsWon() {
		return nil, true
	}

	key := g.CanonicalID(canFlipDeck)
	if s.cache.Has(key) {
		return nil, false
	}
	s.cache.Add(key)

	for _, m := range s.enum.Enumerate(g) {
		childCanFlip := canFlipDeck

		if m.Kind == klondike.Draw && len(g.Hand) == 0 {
			if canFlipDeck {
				childCanFlip = false
			} else {
				continue // consecutive deck flips without an intervening waste play
			}
		} else if m.Kind == klondike.WasteToFoundation || m.Kind == klondike.WasteToTableau {
			childCanFlip = true
		}

		child := g.Clone()
		child.Apply(m)

		var srcKey, dstKey string
		guarded := false
		if m.Kind == klondike.TableauToTableau {
			srcKey = child.ColumnFaceUpKey(m.Src)
			dstKey = child.ColumnFaceUpKey(m.Dst)
			if s.seen[srcKey] > 0 && s.seen[dstKey] > 0 {
				continue // both stack patterns already on this path
			}
			s.seen[srcKey]++
			s.seen[dstKey]++
			guarded = true
		}

		childMoves, won := s.search(child, childCanFlip, depth+1)
		if won {
			return append([]klondike.Move{m}, childMoves...), true
		}

		if guarded {
			s.release(srcKey)
			s.release(dstKey)
		}

		if s.timedOut {
			return nil, false
		}
	}

	return nil, false
}

// release undoes one seen_card_stacks insertion made on the way down.
func (s *Solver) release(key string) {
	s.seen[key]--
	if s.seen[key] <= 0 {
		delete(s.seen, key)
	}
}
