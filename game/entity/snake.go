package entity

import (
	"toroid-snake/game/render"
	"toroid-snake/game/types"

	"github.com/gammazero/deque"
)

// Rand is the source of randomness for headings and placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Snake struct {
	grid      types.Grid
	start     types.Cell
	body      deque.Deque[types.Cell] // head at the front
	direction types.Direction
	next      types.Direction // pending, applied at the start of a tick
	length    int             // target length
	last      types.Cell
	hasLast   bool
	rng       Rand
}

// Option customises a new Snake.
type Option func(*Snake)

// WithHeading fixes the initial heading instead of picking a random one.
func WithHeading(d types.Direction) Option {
	return func(s *Snake) {
		if d.Valid() {
			s.direction = d
		}
	}
}

// NewSnake creates a one-cell snake at start with a random heading.
func NewSnake(grid types.Grid, start types.Cell, rng Rand, opts ...Option) *Snake {
	s := &Snake{
		grid:  grid,
		start: start,
		rng:   rng,
	}
	s.Reset()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset puts the snake back on its start cell with length 1 and a new
// random heading.
func (s *Snake) Reset() {
	s.body.Clear()
	s.body.PushFront(s.start)
	s.length = 1
	s.direction = randomDirection(s.rng)
	s.next = types.None
	s.hasLast = false
}

func randomDirection(rng Rand) types.Direction {
	return types.Directions[rng.Intn(len(types.Directions))]
}

// RequestDirection queues d for the next tick. A request that reverses the
// current heading is ignored. Later valid requests replace earlier ones.
func (s *Snake) RequestDirection(d types.Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.next = d
	return true
}

// ApplyDirection makes the pending heading current.
func (s *Snake) ApplyDirection() {
	if s.next != types.None {
		s.direction = s.next
		s.next = types.None
	}
}

// Advance moves the head one cell. The tail is dropped only while the body
// is longer than the target length; otherwise the snake grows in place.
func (s *Snake) Advance() {
	s.body.PushFront(s.grid.Wrap(s.Head(), s.direction))
	s.hasLast = false
	if s.body.Len() > s.length {
		s.last = s.body.PopBack()
		s.hasLast = true
	}
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

// Grow raises the target length by one. The tail catches up over the
// following advances.
func (s *Snake) Grow() {
	s.length++
}

func (s *Snake) Head() types.Cell {
	return s.body.Front()
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Cell {
	cells := make([]types.Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[types.Cell]struct{} {
	set := make(map[types.Cell]struct{}, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		set[s.body.At(i)] = struct{}{}
	}
	return set
}

func (s *Snake) Occupies(c types.Cell) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}

// Vacated returns the tail cell dropped by the last Advance, if any.
func (s *Snake) Vacated() (types.Cell, bool) {
	return s.last, s.hasLast
}

func (s *Snake) Len() int                   { return s.body.Len() }
func (s *Snake) Target() int                { return s.length }
func (s *Snake) Direction() types.Direction { return s.direction }
func (s *Snake) Pending() types.Direction   { return s.next }
func (s *Snake) Start() types.Cell          { return s.start }

// Draw erases the cell vacated by the last advance, then paints the body
// with the head last.
func (s *Snake) Draw(surface render.Surface, p types.Palette) {
	if last, ok := s.Vacated(); ok {
		surface.EraseCell(last, p.Background)
	}
	for i := s.body.Len() - 1; i >= 0; i-- {
		surface.DrawCell(s.body.At(i), p.Snake, p.Border)
	}
}
