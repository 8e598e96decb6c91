// Package tui renders the board in a terminal and reads keys from it.
// Each grid cell takes two terminal columns so squares look square.
package tui

import (
	"toroid-snake/game"
	"toroid-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const cellColumns = 2

type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// NewScreen takes over the terminal.
func NewScreen(cfg game.Config) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "problem creating screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "problem initialising screen")
	}
	return newScreen(s, cfg), nil
}

func newScreen(s tcell.Screen, cfg game.Config) *Screen {
	if w, h := s.Size(); w < cfg.Grid.Width*cellColumns || h < cfg.Grid.Height {
		glog.Warningf("terminal is %dx%d, board needs %dx%d", w, h, cfg.Grid.Width*cellColumns, cfg.Grid.Height)
	}
	s.HideCursor()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go scr.poll()
	return scr
}

// poll forwards terminal events until the screen is finalised.
func (s *Screen) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Screen) Close() {
	close(s.done)
	s.screen.Fini()
}

// Drain returns the key events received since the last call without blocking.
func (s *Screen) Drain() []game.Event {
	var out []game.Event
	for {
		select {
		case ev := <-s.events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if e := keyEvent(key); e != game.EventNone {
					out = append(out, e)
				}
			}
		default:
			return out
		}
	}
}

func keyEvent(ev *tcell.EventKey) game.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.EventUp
	case tcell.KeyDown:
		return game.EventDown
	case tcell.KeyLeft:
		return game.EventLeft
	case tcell.KeyRight:
		return game.EventRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.EventUp
		case 's', 'S':
			return game.EventDown
		case 'a', 'A':
			return game.EventLeft
		case 'd', 'D':
			return game.EventRight
		case 'q', 'Q':
			return game.EventQuit
		}
	}
	return game.EventNone
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Screen) Clear(bg types.Color) {
	s.screen.SetStyle(tcell.StyleDefault.Background(toColor(bg)))
	s.screen.Clear()
}

// DrawCell paints "[]" in the border colour over the fill colour.
func (s *Screen) DrawCell(c types.Cell, fill, border types.Color) {
	style := tcell.StyleDefault.Background(toColor(fill)).Foreground(toColor(border))
	x := c.X * cellColumns
	s.screen.SetContent(x, c.Y, '[', nil, style)
	s.screen.SetContent(x+1, c.Y, ']', nil, style)
}

func (s *Screen) EraseCell(c types.Cell, bg types.Color) {
	style := tcell.StyleDefault.Background(toColor(bg))
	x := c.X * cellColumns
	s.screen.SetContent(x, c.Y, ' ', nil, style)
	s.screen.SetContent(x+1, c.Y, ' ', nil, style)
}

func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}
