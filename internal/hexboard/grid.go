package hexboard

// Grid owns all cell values for one game session. Cells are stored in a flat
// row-major array of length GridSize*GridSize; coordinates outside the hexagon
// stay Blocked for the grid's whole lifetime.
type Grid struct {
	cells [GridSize * GridSize]Cell
}

// NewGrid creates a grid where every valid cell is Empty and every invalid
// cell is Blocked.
func NewGrid() *Grid {
	g := &Grid{}
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if Valid(P(row, col)) {
				g.cells[row*GridSize+col] = EmptyCell()
			}
		}
	}
	return g
}

func index(p Pos) int {
	return p.Row*GridSize + p.Col
}

func inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// At returns the cell at p. Coordinates outside the index space read as Blocked.
func (g *Grid) At(p Pos) Cell {
	if !inBounds(p) {
		return Cell{Kind: KindBlocked}
	}
	return g.cells[index(p)]
}

// Set writes a cell value at p. Writes to blocked or out-of-range coordinates
// are silently ignored, so blocked cells can never change after creation.
func (g *Grid) Set(p Pos, c Cell) {
	if !Valid(p) {
		return
	}
	g.cells[index(p)] = c
}

// SetToken places a token of the given color at p.
func (g *Grid) SetToken(p Pos, c Color) {
	g.Set(p, TokenCell(c))
}

// SetEmpty clears the cell at p.
func (g *Grid) SetEmpty(p Pos) {
	g.Set(p, EmptyCell())
}

// IsEmpty reports whether p is a valid, currently unoccupied cell.
func (g *Grid) IsEmpty(p Pos) bool {
	return Valid(p) && g.At(p).Kind == KindEmpty
}

// EmptyCells returns all valid positions currently empty, in geometry scan order.
func (g *Grid) EmptyCells() []Pos {
	out := make([]Pos, 0, ValidCellCount)
	for _, p := range AllPositions() {
		if g.At(p).Kind == KindEmpty {
			out = append(out, p)
		}
	}
	return out
}

// OccupiedCount returns the number of valid cells holding a token.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, p := range AllPositions() {
		if g.At(p).IsToken() {
			count++
		}
	}
	return count
}

// OccupiedRatio returns OccupiedCount divided by the number of valid cells.
func (g *Grid) OccupiedRatio() float64 {
	return float64(g.OccupiedCount()) / float64(ValidCellCount)
}

// IsFull reports whether no empty cells remain.
func (g *Grid) IsFull() bool {
	for _, p := range AllPositions() {
		if g.At(p).Kind == KindEmpty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{}
	c.cells = g.cells
	return c
}

// HasAnyMove reports whether some occupied cell has at least one empty
// neighbor. A non-full board can still be move-less when every empty cell is
// isolated from every token, so game-over needs both IsFull and HasAnyMove.
func HasAnyMove(g *Grid) bool {
	for _, p := range AllPositions() {
		if !g.At(p).IsToken() {
			continue
		}
		for _, n := range Neighbors(p) {
			if g.At(n).Kind == KindEmpty {
				return true
			}
		}
	}
	return false
}

// GameOver reports whether the session has ended: board full or no legal move.
func GameOver(g *Grid) bool {
	return g.IsFull() || !HasAnyMove(g)
}
