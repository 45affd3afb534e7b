package hexboard

import "math/rand"

// Tuning holds the difficulty ramp parameters. Defaults reproduce the
// standard game; the config layer may override them per preset.
type Tuning struct {
	JokerBase  float64 // starting per-token joker probability
	JokerSlope float64 // probability gained per completed move
	JokerCap   float64 // ceiling for the joker probability

	// Spawn batch breakpoints: EarlyCount tokens while moves < EarlyMoves and
	// occupancy < EarlyRatio, MidCount while moves < MidMoves and occupancy
	// < MidRatio, LateCount afterwards.
	EarlyMoves int
	EarlyRatio float64
	EarlyCount int
	MidMoves   int
	MidRatio   float64
	MidCount   int
	LateCount  int
}

// DefaultTuning returns the standard difficulty ramp.
func DefaultTuning() Tuning {
	return Tuning{
		JokerBase:  0.03,
		JokerSlope: 0.0015,
		JokerCap:   0.12,
		EarlyMoves: 10,
		EarlyRatio: 0.58,
		EarlyCount: 3,
		MidMoves:   25,
		MidRatio:   0.82,
		MidCount:   4,
		LateCount:  5,
	}
}

// ZenTuning returns a flat ramp for the relaxed mode: always the early batch
// size and a fixed joker chance.
func ZenTuning() Tuning {
	t := DefaultTuning()
	t.JokerSlope = 0
	t.MidCount = t.EarlyCount
	t.LateCount = t.EarlyCount
	t.EarlyMoves = 1 << 30
	t.MidMoves = 1 << 30
	t.EarlyRatio = 1.1
	t.MidRatio = 1.1
	return t
}

// Spawner generates upcoming token colors and places spawn batches. The
// random source is injected so move sequences are reproducible in tests.
type Spawner struct {
	rng    *rand.Rand
	tuning Tuning
}

// NewSpawner creates a spawner over the given source and tuning.
func NewSpawner(rng *rand.Rand, tuning Tuning) *Spawner {
	return &Spawner{rng: rng, tuning: tuning}
}

// JokerChance returns the per-token wildcard probability after moveCount
// completed moves: monotonically increasing and capped.
func (s *Spawner) JokerChance(moveCount int) float64 {
	chance := s.tuning.JokerBase + float64(moveCount)*s.tuning.JokerSlope
	if chance > s.tuning.JokerCap {
		chance = s.tuning.JokerCap
	}
	return chance
}

// RandomColor draws Joker with probability JokerChance(moveCount), else a
// uniform regular color.
func (s *Spawner) RandomColor(moveCount int) Color {
	if s.rng.Float64() < s.JokerChance(moveCount) {
		return Joker
	}
	return Color(s.rng.Intn(NumColors))
}

// NextColors returns count independent color draws. This is the preview of
// upcoming spawns, generated before placement so the UI can show them.
func (s *Spawner) NextColors(count, moveCount int) []Color {
	colors := make([]Color, count)
	for i := range colors {
		colors[i] = s.RandomColor(moveCount)
	}
	return colors
}

// SpawnCount returns the number of tokens to spawn this turn. The batch grows
// as the game progresses and the board fills; this is the sole difficulty ramp.
func (s *Spawner) SpawnCount(moveCount int, occupiedRatio float64) int {
	t := s.tuning
	if moveCount < t.EarlyMoves && occupiedRatio < t.EarlyRatio {
		return t.EarlyCount
	}
	if moveCount < t.MidMoves && occupiedRatio < t.MidRatio {
		return t.MidCount
	}
	return t.LateCount
}

// Place puts each color, in input order, into a uniformly random currently
// empty cell, never reusing a cell within one call. Stops early when no empty
// cells remain and returns exactly the positions actually placed; an empty
// result signals the caller to evaluate game-over.
func (s *Spawner) Place(g *Grid, colors []Color) []Pos {
	placed := make([]Pos, 0, len(colors))
	for _, color := range colors {
		empty := g.EmptyCells()
		if len(empty) == 0 {
			break
		}
		p := empty[s.rng.Intn(len(empty))]
		g.SetToken(p, color)
		placed = append(placed, p)
	}
	return placed
}
