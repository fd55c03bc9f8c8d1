// Package render prints a static textual snapshot of a klondike.Game
// position. It is adapted from the original terminal suite's interactive
// Solitaire view: the same card styling and column layout, stripped of
// cursor, selection, and the input loop, since the solver only ever needs
// one frozen picture of a position at a time.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kflex/klondike-solver/internal/card"
	"github.com/kflex/klondike-solver/internal/klondike"
)

var (
	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	faceDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	foundationCompleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00E632"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Snapshot renders one static frame of g: the hand/waste/foundation row
// followed by the tableau, with an optional move label above it. Unlike
// the interactive view there is no cursor or selection highlighting and
// no score or footer line, since a snapshot has neither.
func Snapshot(g *klondike.Game, label string) string {
	var b strings.Builder
	if label != "" {
		b.WriteString(labelStyle.Render(label))
		b.WriteByte('\n')
	}
	b.WriteString(renderTopRow(g))
	b.WriteByte('\n')
	b.WriteString(renderTableau(g))
	return b.String()
}

func renderTopRow(g *klondike.Game) string {
	var handStr string
	if len(g.Hand) > 0 {
		handStr = faceDownStyle.Render("[##]")
	} else {
		handStr = emptyStyle.Render("[  ]")
	}

	var wasteStr string
	if top, ok := g.WasteTop(); ok {
		wasteStr = cardStyle(top).Render(cardText(top))
	} else {
		wasteStr = emptyStyle.Render("[  ]")
	}

	gap := "    "

	fStrs := make([]string, card.NumSuits)
	for suit := 0; suit < card.NumSuits; suit++ {
		height := g.Foundation[suit]
		if height < 0 {
			fStrs[suit] = emptyStyle.Render("[  ]")
			continue
		}
		top := card.Card{Value: card.Value(height), Suit: card.Suit(suit)}
		style := cardStyle(top)
		if int(height)+1 == card.NumValues {
			style = foundationCompleteStyle
		}
		fStrs[suit] = style.Render(cardText(top))
	}

	return handStr + " " + wasteStr + gap + strings.Join(fStrs, " ")
}

func renderTableau(g *klondike.Game) string {
	maxLen := 1
	for _, col := range g.Tableau {
		n := len(col.FaceDown) + len(col.FaceUp)
		if n > maxLen {
			maxLen = n
		}
	}

	var rows []string
	for row := 0; row < maxLen; row++ {
		var cols []string
		for _, col := range g.Tableau {
			down, up := len(col.FaceDown), len(col.FaceUp)
			switch {
			case row < down:
				cols = append(cols, faceDownStyle.Render("[##]"))
			case row < down+up:
				c := col.FaceUp[row-down]
				cols = append(cols, cardStyle(c).Render(cardText(c)))
			case row == 0:
				cols = append(cols, emptyStyle.Render("[  ]"))
			default:
				cols = append(cols, "    ")
			}
		}
		rows = append(rows, strings.Join(cols, " "))
	}
	return strings.Join(rows, "\n")
}

func cardText(c card.Card) string {
	return "[" + c.Label() + "]"
}

func cardStyle(c card.Card) lipgloss.Style {
	if c.IsRed() {
		return redCardStyle
	}
	return blackCardStyle
}

// MoveLabel formats one applied move for the label line above a snapshot,
// e.g. "12: TABLEAU_TO_TABLEAU 2 3 5".
func MoveLabel(index int, m klondike.Move) string {
	parts := []string{strconv.Itoa(index) + ":", m.Kind.String()}
	for _, e := range m.Extras() {
		parts = append(parts, strconv.Itoa(e))
	}
	return strings.Join(parts, " ")
}
