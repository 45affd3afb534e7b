package hexboard

import "testing"

func TestAllPositionsClosure(t *testing.T) {
	all := AllPositions()

	if len(all) != ValidCellCount {
		t.Fatalf("expected %d valid cells, got %d", ValidCellCount, len(all))
	}

	seen := make(map[Pos]bool, len(all))
	for _, p := range all {
		if !Valid(p) {
			t.Errorf("AllPositions returned invalid cell %v", p)
		}
		if seen[p] {
			t.Errorf("AllPositions returned %v twice", p)
		}
		seen[p] = true
	}

	// Every coordinate not returned must fail Valid.
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			p := P(row, col)
			if !seen[p] && Valid(p) {
				t.Errorf("valid cell %v missing from AllPositions", p)
			}
		}
	}
}

func TestValidCells(t *testing.T) {
	tests := []struct {
		pos   Pos
		valid bool
	}{
		{P(4, 4), true},  // center
		{P(4, 0), true},  // west edge of middle row
		{P(4, 8), true},  // east edge of middle row
		{P(0, 4), true},  // top-left corner of hexagon
		{P(0, 8), true},  // top-right corner
		{P(8, 0), true},  // bottom-left corner
		{P(0, 0), false}, // rectangular corner, outside hexagon
		{P(0, 3), false},
		{P(8, 8), false},
		{P(-1, 4), false},
		{P(4, 9), false},
		{P(9, 4), false},
	}

	for _, tt := range tests {
		if got := Valid(tt.pos); got != tt.valid {
			t.Errorf("Valid(%v) = %v, want %v", tt.pos, got, tt.valid)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for _, p := range AllPositions() {
		for _, n := range Neighbors(p) {
			back := Neighbors(n)
			found := false
			for _, b := range back {
				if b == p {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%v is a neighbor of %v, but not vice versa", n, p)
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	if got := len(Neighbors(P(4, 4))); got != 6 {
		t.Errorf("center should have 6 neighbors, got %d", got)
	}
	// Hexagon corners have exactly 3 neighbors.
	corners := []Pos{P(0, 4), P(0, 8), P(4, 0), P(4, 8), P(8, 0), P(8, 4)}
	for _, c := range corners {
		if got := len(Neighbors(c)); got != 3 {
			t.Errorf("corner %v should have 3 neighbors, got %d", c, got)
		}
	}
	// No cell ever exceeds 6.
	for _, p := range AllPositions() {
		if got := len(Neighbors(p)); got < 3 || got > 6 {
			t.Errorf("cell %v has %d neighbors, want 3..6", p, got)
		}
	}
}
