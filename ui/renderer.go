package ui

import (
	"toroid-snake/game"
	"toroid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type paint struct {
	fill   rl.Color
	border rl.Color
}

// Renderer is a raylib window. raylib swaps buffers every frame, so the board
// is kept as a map of painted cells and redrawn in full on Present.
type Renderer struct {
	cellSize   int32
	background rl.Color
	canvas     map[types.Cell]paint
}

// NewRenderer opens a window sized to the grid.
func NewRenderer(cfg game.Config) *Renderer {
	width := int32(cfg.Grid.Width * cfg.CellSize)
	height := int32(cfg.Grid.Height * cfg.CellSize)

	rl.InitWindow(width, height, types.Title)
	// Escape is handled as a quit event instead of closing the window behind our back.
	rl.SetExitKey(rl.KeyNull)

	return &Renderer{
		cellSize:   int32(cfg.CellSize),
		background: toColor(cfg.Palette.Background),
		canvas:     make(map[types.Cell]paint),
	}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// cellRect returns the pixel origin and side of a cell.
func (r *Renderer) cellRect(c types.Cell) (x, y, side int32) {
	return int32(c.X) * r.cellSize, int32(c.Y) * r.cellSize, r.cellSize
}

func (r *Renderer) Clear(bg types.Color) {
	r.background = toColor(bg)
	clear(r.canvas)
}

func (r *Renderer) DrawCell(c types.Cell, fill, border types.Color) {
	r.canvas[c] = paint{fill: toColor(fill), border: toColor(border)}
}

func (r *Renderer) EraseCell(c types.Cell, bg types.Color) {
	delete(r.canvas, c)
}

func (r *Renderer) Present() error {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)
	for c, p := range r.canvas {
		x, y, side := r.cellRect(c)
		rl.DrawRectangle(x, y, side, side, p.fill)
		rl.DrawRectangleLines(x, y, side, side, p.border)
	}
	rl.EndDrawing()
	return nil
}
