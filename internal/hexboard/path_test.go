package hexboard

import "testing"

func TestFindPathAdjacent(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 4), ColorRed)

	path, ok := FindPath(g, P(4, 4), P(4, 5))
	if !ok {
		t.Fatal("adjacent empty cell should be reachable")
	}
	if len(path) != 1 || path[0] != P(4, 5) {
		t.Errorf("expected path [(4,5)], got %v", path)
	}
}

func TestFindPathSameCell(t *testing.T) {
	g := NewGrid()
	path, ok := FindPath(g, P(4, 4), P(4, 4))
	if !ok {
		t.Fatal("from == to should succeed")
	}
	if len(path) != 0 {
		t.Errorf("from == to should yield an empty path, got %v", path)
	}
}

func TestFindPathRejections(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 5), ColorBlue)

	tests := []struct {
		name     string
		from, to Pos
	}{
		{"occupied destination", P(4, 4), P(4, 5)},
		{"invalid destination", P(4, 4), P(0, 0)},
		{"invalid source", P(0, 0), P(4, 4)},
		{"out of bounds", P(4, 4), P(9, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if path, ok := FindPath(g, tt.from, tt.to); ok || path != nil {
				t.Errorf("FindPath(%v, %v) = %v, %v; want nil, false", tt.from, tt.to, path, ok)
			}
		})
	}
}

func TestFindPathShortest(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 0), ColorRed)

	// Straight line across the middle row: hex distance is 8 hops.
	path, ok := FindPath(g, P(4, 0), P(4, 8))
	if !ok {
		t.Fatal("east edge should be reachable on an empty board")
	}
	if len(path) != 8 {
		t.Errorf("shortest path length = %d, want 8", len(path))
	}
	assertWalkable(t, g, P(4, 0), path, P(4, 8))
}

func TestFindPathAroundObstacles(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 4), ColorRed)

	// Wall splitting the middle row just east of the token.
	for row := 1; row < 8; row++ {
		p := P(row, 5)
		if Valid(p) {
			g.SetToken(p, ColorBlue)
		}
	}

	path, ok := FindPath(g, P(4, 4), P(4, 6))
	if !ok {
		t.Fatal("destination should be reachable around the wall")
	}
	if len(path) <= 2 {
		t.Errorf("detour must be longer than the direct route, got %d hops", len(path))
	}
	assertWalkable(t, g, P(4, 4), path, P(4, 6))
}

func TestFindPathUnreachable(t *testing.T) {
	g := NewGrid()
	g.SetToken(P(4, 4), ColorRed)

	// Seal off the (0,4) hexagon corner: it has exactly three neighbors.
	g.SetToken(P(1, 4), ColorBlue)
	g.SetToken(P(1, 3), ColorBlue)
	g.SetToken(P(0, 5), ColorBlue)

	if path, ok := FindPath(g, P(4, 4), P(0, 4)); ok || path != nil {
		t.Errorf("sealed corner must be unreachable, got %v, %v", path, ok)
	}
}

func TestFindPathSourceDoesNotBlock(t *testing.T) {
	g := NewGrid()
	// The moving token itself occupies the source; the search must still
	// expand through it.
	g.SetToken(P(4, 4), ColorRed)

	path, ok := FindPath(g, P(4, 4), P(4, 6))
	if !ok {
		t.Fatal("destination reachable through the source's own neighbors")
	}
	if len(path) != 2 {
		t.Errorf("expected 2 hops, got %d (%v)", len(path), path)
	}
}

// assertWalkable checks that from plus path is a chain of distinct adjacent
// empty cells ending at to.
func assertWalkable(t *testing.T, g *Grid, from Pos, path []Pos, to Pos) {
	t.Helper()

	if path[len(path)-1] != to {
		t.Fatalf("path must end at %v, got %v", to, path[len(path)-1])
	}

	seen := map[Pos]bool{from: true}
	prev := from
	for _, p := range path {
		if seen[p] {
			t.Errorf("path revisits %v", p)
		}
		seen[p] = true

		if !g.IsEmpty(p) {
			t.Errorf("path crosses non-empty cell %v", p)
		}

		adjacent := false
		for _, n := range Neighbors(prev) {
			if n == p {
				adjacent = true
				break
			}
		}
		if !adjacent {
			t.Errorf("consecutive path cells %v -> %v are not neighbors", prev, p)
		}
		prev = p
	}
}
