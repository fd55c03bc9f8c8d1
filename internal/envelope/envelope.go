// Package envelope defines the structured result emitted for each solved
// deck, and the move-kind tags used within it.
package envelope

import (
	"github.com/kflex/klondike-solver/internal/klondike"
)

// Status is the outcome of one solve attempt.
type Status string

const (
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
	StatusTimeout Status = "timeout"
)

// Move is the JSON form of a klondike.Move.
type Move struct {
	Type   string `json:"type"`
	Extras []int  `json:"extras"`
}

// FromMove converts a klondike.Move to its envelope form.
func FromMove(m klondike.Move) Move {
	return Move{Type: m.Kind.String(), Extras: m.Extras()}
}

// FromMoves converts a slice of klondike.Move to their envelope form.
// It returns nil (which marshals to JSON null) for a nil input.
func FromMoves(moves []klondike.Move) []Move {
	if moves == nil {
		return nil
	}
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = FromMove(m)
	}
	return out
}

// Result is the structured envelope emitted once per input deck.
type Result struct {
	Deck            []string `json:"deck"`
	Status          Status   `json:"status"`
	WinningMoves    []Move   `json:"winningMoves"`
	MovesConsidered int      `json:"movesConsidered"`
	ElapsedSeconds  float64  `json:"elapsedSeconds"`
	TimeoutSeconds  float64  `json:"timeoutSeconds"`
	Version         string   `json:"version"`
}
