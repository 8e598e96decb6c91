package ui

import (
	"toroid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input reads raylib's key queue. The queue is refilled when the renderer
// ends a frame, so Drain sees every key pressed since the previous tick.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Drain() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.EventQuit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev := keyEvent(key); ev != game.EventNone {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) game.Event {
	switch key {
	case rl.KeyUp:
		return game.EventUp
	case rl.KeyDown:
		return game.EventDown
	case rl.KeyLeft:
		return game.EventLeft
	case rl.KeyRight:
		return game.EventRight
	case rl.KeyEscape, rl.KeyQ:
		return game.EventQuit
	default:
		return game.EventNone
	}
}
