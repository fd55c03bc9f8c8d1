package klondike

import "strings"

// ColumnFaceUpKey returns the concatenation of column i's face-up cards.
// The Solver's stack-loop guard uses this to recognize a face-up stack
// pattern reappearing during the current search path.
func (g *Game) ColumnFaceUpKey(i int) string {
	var b strings.Builder
	for _, c := range g.Tableau[i].FaceUp {
		b.WriteString(c.String())
	}
	return b.String()
}
