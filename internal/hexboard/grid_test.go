package hexboard

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid()

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			p := P(row, col)
			cell := g.At(p)
			if Valid(p) && cell.Kind != KindEmpty {
				t.Errorf("valid cell %v should start empty, got %v", p, cell.Kind)
			}
			if !Valid(p) && cell.Kind != KindBlocked {
				t.Errorf("invalid cell %v should be blocked, got %v", p, cell.Kind)
			}
		}
	}

	if got := len(g.EmptyCells()); got != ValidCellCount {
		t.Errorf("new grid should have %d empty cells, got %d", ValidCellCount, got)
	}
	if got := g.OccupiedCount(); got != 0 {
		t.Errorf("new grid should have 0 occupied cells, got %d", got)
	}
}

func TestBlockedCellsNeverChange(t *testing.T) {
	g := NewGrid()
	blocked := P(0, 0)

	g.SetToken(blocked, ColorRed)
	if g.At(blocked).Kind != KindBlocked {
		t.Errorf("write to blocked cell %v must be ignored", blocked)
	}

	g.SetEmpty(blocked)
	if g.At(blocked).Kind != KindBlocked {
		t.Errorf("clear of blocked cell %v must be ignored", blocked)
	}
}

func TestOccupancy(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 4), ColorRed)
	g.SetToken(P(4, 5), Joker)

	if got := g.OccupiedCount(); got != 2 {
		t.Errorf("expected 2 occupied cells, got %d", got)
	}
	if got := len(g.EmptyCells()); got != ValidCellCount-2 {
		t.Errorf("expected %d empty cells, got %d", ValidCellCount-2, got)
	}
	if g.IsEmpty(P(4, 4)) {
		t.Error("occupied cell should not report empty")
	}
	if !g.IsEmpty(P(4, 6)) {
		t.Error("untouched valid cell should report empty")
	}
	if g.IsEmpty(P(0, 0)) {
		t.Error("blocked cell should not report empty")
	}
}

func TestClone(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 4), ColorBlue)

	c := g.Clone()
	g.SetEmpty(P(4, 4))

	if !c.At(P(4, 4)).IsToken() {
		t.Error("clone should not be affected by original mutation")
	}
}

func TestGameOverOracle(t *testing.T) {
	g := NewGrid()

	if g.IsFull() {
		t.Error("empty board is not full")
	}
	if HasAnyMove(g) {
		t.Error("board without tokens has no move")
	}
	if !GameOver(g) {
		t.Error("tokenless board is game over by the no-move rule")
	}

	g.SetToken(P(4, 4), ColorRed)
	if !HasAnyMove(g) {
		t.Error("lone token surrounded by empty cells has a move")
	}
	if GameOver(g) {
		t.Error("board with a movable token is not game over")
	}

	// Fill everything: full board can have no move.
	for _, p := range AllPositions() {
		g.SetToken(p, ColorGreen)
	}
	if !g.IsFull() {
		t.Error("fully occupied board should report full")
	}
	if HasAnyMove(g) {
		t.Error("full board has no empty neighbor anywhere")
	}
	if !GameOver(g) {
		t.Error("full board is game over")
	}
}
