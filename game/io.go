package game

import (
	"context"
	"time"

	"toroid-snake/game/render"
	"toroid-snake/game/types"
)

// Event is one discrete key press delivered by an Input.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventQuit
)

// Direction maps a movement event to its heading.
func (e Event) Direction() types.Direction {
	switch e {
	case EventUp:
		return types.Up
	case EventDown:
		return types.Down
	case EventLeft:
		return types.Left
	case EventRight:
		return types.Right
	default:
		return types.None
	}
}

// Input delivers the key presses collected since the previous call, oldest first.
type Input interface {
	Drain() []Event
}

// Surface is the render target, see render.Surface.
type Surface = render.Surface

// Clock paces the loop. Wait blocks until the next tick is due.
type Clock interface {
	Wait(ctx context.Context) error
}

// RunContext bundles the collaborators owned by the process entry point.
type RunContext struct {
	Surface Surface
	Input   Input
	Clock   Clock
}

// TickerClock is a fixed-rate Clock.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(rate int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
