// Package hexboard provides the core board/match engine for the Hexa Lines
// puzzle game. This package is UI-agnostic and deterministic: every operation
// is a pure function or an explicit in-place mutation of a Grid passed in by
// the caller. Randomness is injected through Spawner.
package hexboard

import "fmt"

// Board constants. The playing field is a regular hexagon of radius HexRadius
// embedded in a GridSize x GridSize rectangular index space.
const (
	HexRadius      = 4
	GridSize       = 2*HexRadius + 1
	ValidCellCount = 61 // cells inside a radius-4 hexagon
	MinMatch       = 5  // minimum connected group size to clear
	PreviewSize    = 3  // default number of previewed spawn colors
)

// Pos is a (row, col) board coordinate. Value type; never a live reference
// into a grid.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// neighborDeltas are the six axial hex directions expressed as (dRow, dCol),
// via the col = q + HexRadius, row = r + HexRadius mapping.
var neighborDeltas = [6]Pos{
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
}

// Valid reports whether p lies inside the hexagonal playing field.
// Translates to centered axial coordinates q = col-HexRadius, r = row-HexRadius
// with implicit s = -q-r; the cell is valid iff max(|q|,|r|,|s|) <= HexRadius.
func Valid(p Pos) bool {
	q := p.Col - HexRadius
	r := p.Row - HexRadius
	s := -q - r
	return abs(q) <= HexRadius && abs(r) <= HexRadius && abs(s) <= HexRadius
}

// AllPositions returns every valid coordinate in row-major scan order.
// The order is deterministic; callers may rely on it for stable iteration.
func AllPositions() []Pos {
	out := make([]Pos, 0, ValidCellCount)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			p := P(row, col)
			if Valid(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Neighbors returns the valid cells adjacent to p in the fixed hex direction
// order. Corner cells of the hexagon have as few as 3 neighbors.
func Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 6)
	for _, d := range neighborDeltas {
		n := P(p.Row+d.Row, p.Col+d.Col)
		if Valid(n) {
			out = append(out, n)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
