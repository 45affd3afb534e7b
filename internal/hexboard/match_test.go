package hexboard

import "testing"

func placeRun(g *Grid, color Color, cells ...Pos) {
	for _, p := range cells {
		g.SetToken(p, color)
	}
}

func TestFindMatchesStraightRun(t *testing.T) {
	g := NewGrid()
	run := []Pos{P(4, 2), P(4, 3), P(4, 4), P(4, 5), P(4, 6)}
	placeRun(g, ColorRed, run...)

	res := FindMatches(g)

	if len(res.Cells) != 5 {
		t.Fatalf("expected removal set of 5, got %d (%v)", len(res.Cells), res.Cells)
	}
	if res.Groups != 1 {
		t.Errorf("expected 1 group, got %d", res.Groups)
	}
	if res.Jokers != 0 {
		t.Errorf("expected 0 jokers, got %d", res.Jokers)
	}
	if res.Score != 10 {
		t.Errorf("expected score 10, got %d", res.Score)
	}

	want := make(map[Pos]bool)
	for _, p := range run {
		want[p] = true
	}
	for _, p := range res.Cells {
		if !want[p] {
			t.Errorf("unexpected cell %v in removal set", p)
		}
	}
}

func TestFindMatchesBelowMinimum(t *testing.T) {
	g := NewGrid()
	placeRun(g, ColorRed, P(4, 2), P(4, 3), P(4, 4), P(4, 5))

	res := FindMatches(g)
	if res.HasMatch() {
		t.Errorf("group of 4 must not match, got %v", res.Cells)
	}
	if res.Score != 0 {
		t.Errorf("no match should score 0, got %d", res.Score)
	}
}

func TestFindMatchesBlobShape(t *testing.T) {
	// Connected same-color blob, not a straight line. Hex topology makes any
	// connected shape of MinMatch cells a valid match.
	g := NewGrid()
	placeRun(g, ColorGreen, P(4, 4), P(4, 5), P(3, 5), P(5, 4), P(5, 3))

	res := FindMatches(g)
	if len(res.Cells) != 5 {
		t.Fatalf("blob of 5 should match, got %d cells", len(res.Cells))
	}
	if res.Score != 10 {
		t.Errorf("expected score 10, got %d", res.Score)
	}
}

func TestFindMatchesTwoGroups(t *testing.T) {
	g := NewGrid()
	// Disjoint groups of 5 and 6 of the same color, far apart.
	placeRun(g, ColorBlue, P(4, 0), P(4, 1), P(4, 2), P(4, 3), P(4, 4))
	placeRun(g, ColorBlue, P(0, 4), P(0, 5), P(0, 6), P(0, 7), P(0, 8), P(1, 8))

	res := FindMatches(g)

	if len(res.Cells) != 11 {
		t.Fatalf("expected 11 cells, got %d", len(res.Cells))
	}
	if res.Groups != 2 {
		t.Errorf("expected 2 groups, got %d", res.Groups)
	}
	// (5+6)*2 + (11-5)*2 + (2-1)*6 = 22 + 12 + 6
	if res.Score != 40 {
		t.Errorf("expected score 40, got %d", res.Score)
	}
}

func TestFindMatchesJokerCompletesGroup(t *testing.T) {
	g := NewGrid()
	placeRun(g, ColorRed, P(4, 2), P(4, 3), P(4, 4), P(4, 5))
	g.SetToken(P(4, 6), Joker)

	res := FindMatches(g)

	if len(res.Cells) != 5 {
		t.Fatalf("4 reds + joker should match, got %d cells", len(res.Cells))
	}
	if res.Jokers != 1 {
		t.Errorf("expected 1 joker removed, got %d", res.Jokers)
	}
	// 5*2 + 0 + 0 + 1*2
	if res.Score != 12 {
		t.Errorf("expected score 12, got %d", res.Score)
	}
}

func TestFindMatchesJokerSharedBetweenColors(t *testing.T) {
	g := NewGrid()
	// One joker bridging a red group and a blue group across the middle row.
	placeRun(g, ColorRed, P(4, 0), P(4, 1), P(4, 2), P(4, 3))
	g.SetToken(P(4, 4), Joker)
	placeRun(g, ColorBlue, P(4, 5), P(4, 6), P(4, 7), P(4, 8))

	res := FindMatches(g)

	// Both color components include the joker, but the removal set
	// deduplicates by position: 4 + 4 + 1 shared joker.
	if len(res.Cells) != 9 {
		t.Fatalf("expected 9 unique cells, got %d", len(res.Cells))
	}
	if res.Groups != 2 {
		t.Errorf("expected 2 groups, got %d", res.Groups)
	}
	if res.Jokers != 1 {
		t.Errorf("shared joker counts once, got %d", res.Jokers)
	}
	// 9*2 + (9-5)*2 + 6 + 2
	if res.Score != 34 {
		t.Errorf("expected score 34, got %d", res.Score)
	}
}

func TestFindMatchesIdempotent(t *testing.T) {
	g := NewGrid()
	placeRun(g, ColorYellow, P(4, 2), P(4, 3), P(4, 4), P(4, 5), P(4, 6))
	g.SetToken(P(2, 4), ColorRed)

	first := FindMatches(g)
	second := FindMatches(g)

	if first.Score != second.Score || first.Groups != second.Groups ||
		first.Jokers != second.Jokers || len(first.Cells) != len(second.Cells) {
		t.Fatalf("repeated detection diverged: %+v vs %+v", first, second)
	}
	for i := range first.Cells {
		if first.Cells[i] != second.Cells[i] {
			t.Errorf("cell %d differs: %v vs %v", i, first.Cells[i], second.Cells[i])
		}
	}
}

func TestRemoveMatches(t *testing.T) {
	g := NewGrid()
	placeRun(g, ColorCyan, P(4, 2), P(4, 3), P(4, 4), P(4, 5), P(4, 6))
	bystander := P(2, 4)
	g.SetToken(bystander, ColorRed)

	res := FindMatches(g)
	before := g.Clone()
	RemoveMatches(g, res.Cells)

	removed := make(map[Pos]bool)
	for _, p := range res.Cells {
		removed[p] = true
		if g.At(p).Kind != KindEmpty {
			t.Errorf("removed cell %v should be empty", p)
		}
	}
	for _, p := range AllPositions() {
		if !removed[p] && g.At(p) != before.At(p) {
			t.Errorf("cell %v outside removal set changed", p)
		}
	}
	if !g.At(bystander).IsToken() {
		t.Error("bystander token must survive removal")
	}
}

func TestScoreMonotonicInCells(t *testing.T) {
	// Equal groups and jokers: more cells scores strictly more.
	prev := scoreFor(MinMatch, 1, 0)
	for cells := MinMatch + 1; cells <= 15; cells++ {
		cur := scoreFor(cells, 1, 0)
		if cur <= prev {
			t.Errorf("score(%d cells) = %d, not greater than %d", cells, cur, prev)
		}
		prev = cur
	}
	if scoreFor(0, 0, 0) != 0 {
		t.Error("empty removal set scores 0")
	}
}
