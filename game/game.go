package game

import (
	"context"
	"time"

	"toroid-snake/game/entity"
	"toroid-snake/game/manager"
	"toroid-snake/game/render"
	"toroid-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Outcome describes what happened during one tick.
type Outcome struct {
	Quit  bool
	Reset bool // self-collision; the board must be wiped
	Ate   bool
	// EatenAt is where the consumed apple stood.
	EatenAt types.Cell
}

type Game struct {
	Session   string
	Config    Config
	Grid      types.Grid
	StartTime time.Time
	Steps     int
	Resets    int

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	last         Outcome
}

// New builds a game with the snake on the centre cell and the apple placed
// anywhere else.
func New(cfg Config, rng entity.Rand) (*Game, error) {
	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		Session:      uuid.New().String(),
		Config:       cfg,
		Grid:         cfg.Grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(cfg.Grid, cfg.Grid.Center(), rng),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, collisionMgr),
	}
	if err := g.foodMgr.Spawn(g.snake); err != nil {
		return nil, errors.Wrap(err, "spawning first apple")
	}
	glog.Infof("session %s: %dx%d grid, snake at %v heading %v, apple at %v",
		g.Session, g.Grid.Width, g.Grid.Height, g.snake.Head(), g.snake.Direction(), g.foodMgr.Position())
	return g, nil
}

func (g *Game) Snake() *entity.Snake { return g.snake }
func (g *Game) Apple() *entity.Apple { return g.foodMgr.Apple() }

// Tick runs one step: direction requests, movement, collision, consumption.
// A quit event stops the tick before anything moves.
func (g *Game) Tick(events []Event) (Outcome, error) {
	var out Outcome
	for _, ev := range events {
		if ev == EventQuit {
			out.Quit = true
			g.last = out
			return out, nil
		}
		if d := ev.Direction(); d != types.None {
			if !g.snake.RequestDirection(d) {
				glog.V(2).Infof("ignored %v while heading %v", d, g.snake.Direction())
			}
		}
	}

	g.Steps++
	switch g.collisionMgr.HandleMovement(g.snake) {
	case manager.SelfCollision:
		glog.Infof("session %s: collision at %v with length %d after %d steps, resetting",
			g.Session, g.snake.Head(), g.snake.Len(), g.Steps)
		g.snake.Reset()
		g.Resets++
		out.Reset = true
	default:
		if head := g.snake.Head(); g.foodMgr.Eaten(head) {
			g.snake.Grow()
			out.Ate = true
			out.EatenAt = head
			if err := g.foodMgr.Spawn(g.snake); err != nil {
				g.last = out
				return out, errors.Wrapf(err, "tick %d", g.Steps)
			}
			glog.V(1).Infof("apple eaten at %v, target length %d", head, g.snake.Target())
		}
	}

	glog.V(2).Infof("tick %d: head %v heading %v length %d/%d",
		g.Steps, g.snake.Head(), g.snake.Direction(), g.snake.Len(), g.snake.Target())
	g.last = out
	return out, nil
}

// Draw renders the result of the last tick.
func (g *Game) Draw(s render.Surface) error {
	p := g.Config.Palette
	if g.last.Reset {
		s.Clear(p.Background)
	}
	if g.last.Ate {
		s.EraseCell(g.last.EatenAt, p.Background)
	}
	for _, d := range []render.Drawable{g.snake, g.foodMgr.Apple()} {
		d.Draw(s, p)
	}
	return s.Present()
}

// Run drives the loop until a quit event or ctx is cancelled. Both end with a
// nil error.
func (g *Game) Run(ctx context.Context, rc RunContext) error {
	g.last = Outcome{Reset: true}
	if err := g.Draw(rc.Surface); err != nil {
		return errors.Wrap(err, "drawing first frame")
	}

	for {
		if err := rc.Clock.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				glog.Infof("session %s: stopped after %d steps", g.Session, g.Steps)
				return nil
			}
			return errors.Wrap(err, "waiting for tick")
		}

		out, err := g.Tick(rc.Input.Drain())
		if err != nil {
			return err
		}
		if out.Quit {
			glog.Infof("session %s: quit after %d steps, %d resets, %s",
				g.Session, g.Steps, g.Resets, time.Since(g.StartTime).Round(time.Second))
			return nil
		}

		if err := g.Draw(rc.Surface); err != nil {
			return errors.Wrap(err, "presenting frame")
		}
	}
}
