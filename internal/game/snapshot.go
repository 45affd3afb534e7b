package game

import "github.com/vovakirdan/hexalines/internal/hexboard"

// PhaseName is the external name of a controller phase.
type PhaseName string

const (
	PhaseSelecting PhaseName = "selecting"
	PhaseMoving    PhaseName = "moving"
	PhaseClearing  PhaseName = "clearing"
	PhaseSpawning  PhaseName = "spawning"
	PhaseGameOver  PhaseName = "game_over"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Moves    int
	Combo    int
	Occupied int
	Preview  []hexboard.Color
	Phase    PhaseName
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	name := PhaseSelecting
	switch {
	case g.gameOver:
		name = PhaseGameOver
	case g.phase == phaseMoving:
		name = PhaseMoving
	case g.phase == phaseClearing:
		name = PhaseClearing
	case g.phase == phaseSpawning:
		name = PhaseSpawning
	}

	preview := make([]hexboard.Color, len(g.preview))
	copy(preview, g.preview)

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score,
		Moves:    g.moveCount,
		Combo:    g.comboStreak,
		Occupied: g.grid.OccupiedCount(),
		Preview:  preview,
		Phase:    name,
	}
}

// Grid exposes the live grid for rendering-adjacent consumers and tests.
func (g *Game) Grid() *hexboard.Grid {
	return g.grid
}

// Cursor returns the current cursor position.
func (g *Game) Cursor() hexboard.Pos {
	return g.cursor
}
