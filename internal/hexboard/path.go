package hexboard

// FindPath performs a breadth-first search from from to to over empty cells.
// A cell is traversable iff it is empty or is the from cell itself, so the
// moving token does not block the search through its own source.
//
// Returns (nil, false) when either endpoint is invalid or to is not empty.
// Returns an empty path and true when from == to. On success the returned
// sequence holds the positions strictly after from up to and including to;
// BFS discovery order guarantees the hop count is minimal. The grid is never
// mutated.
func FindPath(g *Grid, from, to Pos) ([]Pos, bool) {
	if !Valid(from) || !Valid(to) {
		return nil, false
	}
	if from == to {
		return []Pos{}, true
	}
	if !g.IsEmpty(to) {
		return nil, false
	}

	// parent[i] records the predecessor of cell i; -1 marks unvisited.
	var parent [GridSize * GridSize]int
	for i := range parent {
		parent[i] = -1
	}
	parent[index(from)] = index(from)

	queue := make([]Pos, 0, ValidCellCount)
	queue = append(queue, from)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range Neighbors(cur) {
			if parent[index(n)] != -1 {
				continue
			}
			if !g.IsEmpty(n) {
				continue
			}
			parent[index(n)] = index(cur)
			if n == to {
				return reconstruct(parent, from, to), true
			}
			queue = append(queue, n)
		}
	}

	return nil, false
}

// reconstruct walks parent links back from to, producing the path after from.
func reconstruct(parent [GridSize * GridSize]int, from, to Pos) []Pos {
	rev := []Pos{to}
	cur := to
	for cur != from {
		pi := parent[index(cur)]
		cur = P(pi/GridSize, pi%GridSize)
		if cur != from {
			rev = append(rev, cur)
		}
	}

	path := make([]Pos, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
