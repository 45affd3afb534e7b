package hexboard

// Color is a token color. Valid gameplay colors are [0, NumColors); the
// reserved Joker value acts as a wildcard that connects to any color.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	colorCount // sentinel for iteration
)

// NumColors is the number of regular token colors.
const NumColors = int(colorCount)

// Joker is the wildcard color. It matches any color for connectivity
// purposes during flood fill.
const Joker = Color(colorCount)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case Joker:
		return "joker"
	default:
		return "unknown"
	}
}

// CellKind discriminates the three cell states.
type CellKind uint8

const (
	KindBlocked CellKind = iota // outside the hexagon, never touched by game logic
	KindEmpty                   // playable, unoccupied
	KindToken                   // holds a colored token or a joker
)

// Cell is a single board cell. Color is meaningful only when Kind is KindToken.
type Cell struct {
	Kind  CellKind
	Color Color
}

// EmptyCell returns a playable empty cell.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// TokenCell returns a cell holding a token of the given color (or Joker).
func TokenCell(c Color) Cell {
	return Cell{Kind: KindToken, Color: c}
}

// IsToken reports whether the cell holds a token (colored or joker).
func (c Cell) IsToken() bool {
	return c.Kind == KindToken
}

// IsJoker reports whether the cell holds the wildcard token.
func (c Cell) IsJoker() bool {
	return c.Kind == KindToken && c.Color == Joker
}
