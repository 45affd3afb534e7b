package hexboard

// MatchResult is the transient outcome of one match detection pass.
// Cells holds the deduplicated removal set in first-claimed order.
type MatchResult struct {
	Cells  []Pos // unique positions to remove
	Groups int   // groups that contributed at least one new position
	Jokers int   // joker cells inside the removal set
	Score  int   // total score for this result
}

// HasMatch reports whether the result clears anything.
func (r MatchResult) HasMatch() bool {
	return len(r.Cells) > 0
}

// Score bonuses. A clear is worth 2 per cell, plus 2 per cell beyond the
// minimum group size, 6 per extra simultaneous group, and 2 per joker removed.
const (
	scorePerCell   = 2
	lengthBonus    = 2
	multiLineBonus = 6
	jokerBonus     = 2
)

// FindMatches runs flood-fill connected-component analysis over the grid and
// returns the removal set with its score. The grid is not modified.
//
// Each color channel is scanned independently with its own visited marker:
// jokers are universal connectors, so a single joker can legitimately belong
// to components of several different colors within one invocation. The
// removal set deduplicates by position, so such a joker is removed once,
// credited to whichever groups claim it in scan order.
func FindMatches(g *Grid) MatchResult {
	var res MatchResult

	// Per-color visited flags, local to this call so the detector stays a
	// pure function of its input grid.
	var visited [NumColors][GridSize * GridSize]bool
	var inSet [GridSize * GridSize]bool

	for _, seed := range AllPositions() {
		cell := g.At(seed)
		if !cell.IsToken() || cell.IsJoker() {
			continue
		}
		color := cell.Color
		if visited[color][index(seed)] {
			continue
		}

		group := floodFill(g, seed, color, &visited[color])
		if len(group) < MinMatch {
			continue
		}
		// A component of nothing but unclaimed jokers cannot score. The seed
		// is always of the base color, so this guards an invariant rather
		// than a reachable state.
		if !containsColor(g, group, color) {
			continue
		}

		contributed := false
		for _, p := range group {
			if inSet[index(p)] {
				continue
			}
			inSet[index(p)] = true
			res.Cells = append(res.Cells, p)
			contributed = true
		}
		if contributed {
			res.Groups++
		}
	}

	for _, p := range res.Cells {
		if g.At(p).IsJoker() {
			res.Jokers++
		}
	}
	res.Score = scoreFor(len(res.Cells), res.Groups, res.Jokers)
	return res
}

// floodFill collects the connected component of same-color-or-joker cells
// reachable from seed, marking them in visited.
func floodFill(g *Grid, seed Pos, color Color, visited *[GridSize * GridSize]bool) []Pos {
	group := []Pos{seed}
	visited[index(seed)] = true

	for i := 0; i < len(group); i++ {
		for _, n := range Neighbors(group[i]) {
			if visited[index(n)] {
				continue
			}
			c := g.At(n)
			if !c.IsToken() || (c.Color != color && !c.IsJoker()) {
				continue
			}
			visited[index(n)] = true
			group = append(group, n)
		}
	}
	return group
}

func containsColor(g *Grid, group []Pos, color Color) bool {
	for _, p := range group {
		c := g.At(p)
		if c.IsToken() && c.Color == color {
			return true
		}
	}
	return false
}

// scoreFor applies the scoring formula to a deduplicated removal set.
func scoreFor(cells, groups, jokers int) int {
	if cells == 0 {
		return 0
	}
	score := cells * scorePerCell
	if extra := cells - MinMatch; extra > 0 {
		score += extra * lengthBonus
	}
	if groups > 1 {
		score += (groups - 1) * multiLineBonus
	}
	score += jokers * jokerBonus
	return score
}

// RemoveMatches sets every position in cells to Empty. It performs no scoring;
// callers consume the MatchResult first so the UI can render cells before
// they vanish.
func RemoveMatches(g *Grid, cells []Pos) {
	for _, p := range cells {
		g.SetEmpty(p)
	}
}
