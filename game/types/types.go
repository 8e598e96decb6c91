package types

import "fmt"

// Board geometry in pixels. The grid is derived from these.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20
)

// Game constants
const (
	TickRate = 10 // ticks per second
	Title    = "Snake"
)

// Cell is one discrete grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a cardinal heading. The zero value is not a valid heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four cardinal headings.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta converts a Direction into its unit displacement vector.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the heading whose delta is the additive inverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Grid represents the game grid dimensions. Both axes wrap.
type Grid struct {
	Width  int
	Height int
}

// NewGrid maps pixel bounds and a cell size onto a grid of whole cells.
func NewGrid(pixelWidth, pixelHeight, cellSize int) Grid {
	return Grid{
		Width:  pixelWidth / cellSize,
		Height: pixelHeight / cellSize,
	}
}

// DefaultGrid is the 32x24 board.
func DefaultGrid() Grid {
	return NewGrid(ScreenWidth, ScreenHeight, CellSize)
}

// Size returns the number of cells on the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Center is the canonical start cell.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap returns the cell one step from c in direction d. Leaving one edge
// re-enters from the opposite edge.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{
		X: mod(c.X+dx, g.Width),
		Y: mod(c.Y+dy, g.Height),
	}
}

// Cells enumerates the grid in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Color is an 8-bit per channel colour.
type Color struct {
	R, G, B uint8
}

// Palette holds the four board colours.
type Palette struct {
	Background Color
	Border     Color
	Snake      Color
	Apple      Color
}

// DefaultPalette is black board, cyan borders, green snake, red apple.
var DefaultPalette = Palette{
	Background: Color{R: 0, G: 0, B: 0},
	Border:     Color{R: 93, G: 216, B: 228},
	Snake:      Color{R: 0, G: 255, B: 0},
	Apple:      Color{R: 255, G: 0, B: 0},
}
