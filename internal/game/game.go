// Package game implements the Hexa Lines turn controller on top of the
// hexboard engine: cursor-driven token selection, move animation along the
// BFS path, clear/spawn phases with chain resolution, and combo tracking.
package game

import (
	"math/rand"

	"github.com/vovakirdan/hexalines/internal/config"
	"github.com/vovakirdan/hexalines/internal/core"
	"github.com/vovakirdan/hexalines/internal/hexboard"
	"github.com/vovakirdan/hexalines/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeZen     Mode = "zen"
)

// phase is the controller's current turn phase. The hexboard engine holds no
// phase state; all turn sequencing lives here.
type phase int

const (
	phaseSelecting phase = iota // cursor roams, waiting for a move
	phaseMoving                 // token walks its path
	phaseClearing               // removal set blinks before it vanishes
	phaseSpawning               // fresh tokens flash in
)

// Animation pacing in ticks (at 60 ticks per second).
const (
	moveStepTicks    = 3
	clearBlinkTicks  = 24
	spawnFlashTicks  = 12
	noPathFlashTicks = 18
)

// Game implements the Hexa Lines puzzle.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	spawner *hexboard.Spawner
	grid    *hexboard.Grid
	tick    uint64

	score       int
	moveCount   int
	comboStreak int

	// Cursor and selection state.
	cursor      hexboard.Pos
	selected    hexboard.Pos
	hasSelected bool
	noPathTicks int // frames left of the "unreachable" flash

	// Phase state.
	phase        phase
	phaseTicks   int
	path         []hexboard.Pos // remaining cells the moving token will visit
	movingColor  hexboard.Color
	movingAt     hexboard.Pos
	clearing     []hexboard.Pos
	pendingScore int
	turnCleared  bool // this turn produced at least one clear
	postSpawn    bool // current clear was chained from a spawn

	// Upcoming spawn colors, drawn before placement so the HUD can show them.
	preview []hexboard.Color
	spawned []hexboard.Pos

	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level configuration applied at Reset, set from the CLI before the
// game instance is created (same pattern as the other flag plumbing).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the tuning config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a new zen mode game: flat spawn batches and joker chance.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("hexalines", func() registry.Game {
		return New()
	})
	registry.Register("hexalines_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "hexalines_zen"
	}
	return "hexalines"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Hexa Lines (Zen)"
	}
	return "Hexa Lines"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = hexboard.NewSpawner(g.rng, g.tuning())
	g.grid = hexboard.NewGrid()
	g.tick = 0
	g.score = 0
	g.moveCount = 0
	g.comboStreak = 0
	g.cursor = hexboard.P(hexboard.HexRadius, hexboard.HexRadius)
	g.hasSelected = false
	g.noPathTicks = 0
	g.phase = phaseSelecting
	g.phaseTicks = 0
	g.path = nil
	g.clearing = nil
	g.pendingScore = 0
	g.turnCleared = false
	g.postSpawn = false
	g.spawned = nil
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	// Opening board: one early batch, then the first preview.
	opening := g.spawner.NextColors(g.spawner.SpawnCount(0, 0), 0)
	g.spawner.Place(g.grid, opening)
	g.refreshPreview()
}

// tuning resolves the spawn/joker ramp from mode and loaded configuration.
func (g *Game) tuning() hexboard.Tuning {
	if g.mode == ModeZen {
		return hexboard.ZenTuning()
	}
	cfg, err := config.LoadHexalines(configPath)
	if err != nil {
		return hexboard.DefaultTuning()
	}
	config.ApplyHexalinesPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	return cfg.Tuning()
}

// refreshPreview draws the next spawn batch so the HUD can display it.
func (g *Game) refreshPreview() {
	count := g.spawner.SpawnCount(g.moveCount, g.grid.OccupiedRatio())
	g.preview = g.spawner.NextColors(count, g.moveCount)
}

func (g *Game) checkScreenSize() {
	// Board is 33 columns wide plus HUD rows.
	g.tooSmall = g.screenW < boardPixelWidth+2 || g.screenH < boardPixelHeight+hudHeight+2
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.noPathTicks > 0 {
		g.noPathTicks--
	}

	switch g.phase {
	case phaseSelecting:
		g.processInput(input)
	case phaseMoving:
		g.stepMoving()
	case phaseClearing:
		g.stepClearing()
	case phaseSpawning:
		g.stepSpawning()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles cursor movement and selection while idle.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case input.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case input.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case input.Has(core.ActionRight):
		g.moveCursor(0, 1)
	case input.Has(core.ActionBack):
		g.hasSelected = false
	case input.Has(core.ActionConfirm):
		g.confirm()
	}
}

// moveCursor shifts the cursor, clamping to the hexagon. Row changes clamp
// the column into the destination row's valid span.
func (g *Game) moveCursor(dRow, dCol int) {
	row := g.cursor.Row + dRow
	if row < 0 || row >= hexboard.GridSize {
		return
	}
	min, max := rowColSpan(row)
	col := core.Clamp(g.cursor.Col+dCol, min, max)
	g.cursor = hexboard.P(row, col)
}

// rowColSpan returns the inclusive valid column range of a board row.
func rowColSpan(row int) (int, int) {
	r := row - hexboard.HexRadius
	qmin := core.Max(-hexboard.HexRadius, -hexboard.HexRadius-r)
	qmax := core.Min(hexboard.HexRadius, hexboard.HexRadius-r)
	return qmin + hexboard.HexRadius, qmax + hexboard.HexRadius
}

// confirm selects a token, reselects, or attempts the move to an empty cell.
func (g *Game) confirm() {
	cell := g.grid.At(g.cursor)

	if cell.IsToken() {
		g.selected = g.cursor
		g.hasSelected = true
		return
	}

	if !g.hasSelected || cell.Kind != hexboard.KindEmpty {
		return
	}

	path, ok := hexboard.FindPath(g.grid, g.selected, g.cursor)
	if !ok {
		// Unreachable: surface as a no-op with visual feedback.
		g.noPathTicks = noPathFlashTicks
		return
	}
	if len(path) == 0 {
		return
	}

	g.movingColor = g.grid.At(g.selected).Color
	g.grid.SetEmpty(g.selected)
	g.movingAt = g.selected
	g.path = path
	g.hasSelected = false
	g.turnCleared = false
	g.phase = phaseMoving
	g.phaseTicks = 0
}

// stepMoving walks the token one cell every few ticks until it lands.
func (g *Game) stepMoving() {
	g.phaseTicks++
	if g.phaseTicks < moveStepTicks {
		return
	}
	g.phaseTicks = 0

	g.movingAt = g.path[0]
	g.path = g.path[1:]
	if len(g.path) > 0 {
		return
	}

	// Landed.
	g.grid.SetToken(g.movingAt, g.movingColor)
	g.moveCount++
	g.postSpawn = false
	g.resolveMatches()
}

// resolveMatches runs detection and routes to clearing, spawning, or back to
// selection. Called after a landing and again after each spawn batch.
func (g *Game) resolveMatches() {
	res := hexboard.FindMatches(g.grid)
	if res.HasMatch() {
		g.clearing = res.Cells
		g.pendingScore = res.Score
		g.turnCleared = true
		g.phase = phaseClearing
		g.phaseTicks = 0
		return
	}

	if g.postSpawn {
		g.finishTurn()
		return
	}
	g.startSpawn()
}

// stepClearing blinks the removal set, then removes it and continues the turn.
func (g *Game) stepClearing() {
	g.phaseTicks++
	if g.phaseTicks < clearBlinkTicks {
		return
	}

	hexboard.RemoveMatches(g.grid, g.clearing)
	g.score += g.pendingScore
	g.clearing = nil
	g.pendingScore = 0

	// Chains from a spawn settle without another spawn; a clear directly
	// after the move still spawns this turn.
	if g.postSpawn {
		g.finishTurn()
		return
	}
	g.startSpawn()
}

// startSpawn places the previewed batch onto random empty cells.
func (g *Game) startSpawn() {
	g.spawned = g.spawner.Place(g.grid, g.preview)
	g.postSpawn = true
	g.phase = phaseSpawning
	g.phaseTicks = 0

	if len(g.spawned) == 0 {
		// Spawn exhaustion: evaluate game-over immediately.
		g.finishTurn()
	}
}

// stepSpawning flashes the fresh tokens, then checks for chained clears.
func (g *Game) stepSpawning() {
	g.phaseTicks++
	if g.phaseTicks < spawnFlashTicks {
		return
	}
	g.spawned = nil
	g.resolveMatches()
}

// finishTurn updates the combo streak, the preview, and the game-over state.
func (g *Game) finishTurn() {
	if g.turnCleared {
		g.comboStreak++
	} else {
		g.comboStreak = 0
	}
	g.refreshPreview()

	if hexboard.GameOver(g.grid) {
		g.gameOver = true
	}
	g.phase = phaseSelecting
	g.phaseTicks = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
