package game

import "toroid-snake/game/types"

// Config holds the fixed board parameters handed to the loop and adapters.
type Config struct {
	Grid     types.Grid
	CellSize int
	TickRate int // ticks per second
	Palette  types.Palette
	Seed     uint64 // 0 means seed from the clock
}

// DefaultConfig returns the 640x480 board with 20px cells at 10 ticks/s.
func DefaultConfig() Config {
	return Config{
		Grid:     types.DefaultGrid(),
		CellSize: types.CellSize,
		TickRate: types.TickRate,
		Palette:  types.DefaultPalette,
	}
}
