// Package render defines the drawing capability shared by the board entities
// and the adapters that put pixels or runes on screen.
package render

import "toroid-snake/game/types"

// Surface is the render target. Cells are in grid coordinates; adapters scale
// them to their own units.
type Surface interface {
	Clear(bg types.Color)
	DrawCell(c types.Cell, fill, border types.Color)
	EraseCell(c types.Cell, bg types.Color)
	Present() error
}

// Drawable is anything that can paint itself onto a Surface.
type Drawable interface {
	Draw(s Surface, p types.Palette)
}
