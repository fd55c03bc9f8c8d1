package envelope

import (
	"encoding/json"
	"testing"

	"github.com/kflex/klondike-solver/internal/klondike"
)

func TestFromMoveExtractsKindSpecificExtras(t *testing.T) {
	cases := []struct {
		move   klondike.Move
		wantTy string
		wantEx []int
	}{
		{klondike.Move{Kind: klondike.Draw}, "DRAW", []int{}},
		{klondike.Move{Kind: klondike.WasteToTableau, Dst: 4}, "WASTE_TO_TABLEAU", []int{4}},
		{klondike.Move{Kind: klondike.TableauToTableau, Src: 1, Row: 2, Dst: 3}, "TABLEAU_TO_TABLEAU", []int{1, 2, 3}},
		{klondike.Move{Kind: klondike.FoundationToTableau, Src: 0, Dst: 5}, "FOUNDATION_TO_TABLEAU", []int{0, 5}},
	}
	for _, c := range cases {
		got := FromMove(c.move)
		if got.Type != c.wantTy {
			t.Errorf("Type = %q, want %q", got.Type, c.wantTy)
		}
		if len(got.Extras) != len(c.wantEx) {
			t.Fatalf("Extras = %v, want %v", got.Extras, c.wantEx)
		}
		for i := range c.wantEx {
			if got.Extras[i] != c.wantEx[i] {
				t.Errorf("Extras[%d] = %d, want %d", i, got.Extras[i], c.wantEx[i])
			}
		}
	}
}

func TestFromMovesPreservesNil(t *testing.T) {
	if got := FromMoves(nil); got != nil {
		t.Errorf("FromMoves(nil) = %v, want nil", got)
	}
}

func TestResultMarshalsNullWinningMovesOnLoss(t *testing.T) {
	r := Result{Status: StatusLose, WinningMoves: nil}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(out["winningMoves"]) != "null" {
		t.Errorf("winningMoves = %s, want null", out["winningMoves"])
	}
}
