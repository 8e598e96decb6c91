package entity

import (
	"toroid-snake/game/render"
	"toroid-snake/game/types"

	"github.com/pkg/errors"
)

// MaxPlacementAttempts bounds random sampling before Place falls back to a
// row-major scan of the grid.
const MaxPlacementAttempts = 1024

// ErrNoFreeCell is returned when every cell of the grid is occupied.
var ErrNoFreeCell = errors.New("no free cell available")

type Apple struct {
	Position types.Cell
}

// IsConsumedBy reports whether head sits on the apple.
func (a *Apple) IsConsumedBy(head types.Cell) bool {
	return head == a.Position
}

// Place samples uniformly random cells until valid accepts one. If sampling
// keeps failing the first valid cell in row-major order is used. Position is
// left unchanged when no cell is valid.
func (a *Apple) Place(grid types.Grid, rng Rand, valid func(types.Cell) bool) error {
	for i := 0; i < MaxPlacementAttempts; i++ {
		c := types.Cell{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if valid(c) {
			a.Position = c
			return nil
		}
	}

	for _, c := range grid.Cells() {
		if valid(c) {
			a.Position = c
			return nil
		}
	}
	return ErrNoFreeCell
}

// Outside returns a predicate accepting cells not in occupied.
func Outside(occupied map[types.Cell]struct{}) func(types.Cell) bool {
	return func(c types.Cell) bool {
		_, taken := occupied[c]
		return !taken
	}
}

func (a *Apple) Draw(surface render.Surface, p types.Palette) {
	surface.DrawCell(a.Position, p.Apple, p.Border)
}

// Erase paints the apple's cell with the background.
func (a *Apple) Erase(surface render.Surface, p types.Palette) {
	surface.EraseCell(a.Position, p.Background)
}
