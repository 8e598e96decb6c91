package manager

import (
	"toroid-snake/game/entity"
	"toroid-snake/game/types"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrNoFreeCell is returned when the snake covers the whole grid.
var ErrNoFreeCell = entity.ErrNoFreeCell

// FoodManager keeps the single apple on the board.
type FoodManager struct {
	grid         types.Grid
	apple        *entity.Apple
	rng          entity.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng entity.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		apple:        &entity.Apple{},
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn places the apple on a cell the snake does not cover.
func (fm *FoodManager) Spawn(snake *entity.Snake) error {
	valid := func(c types.Cell) bool {
		return fm.collisionMgr.ValidateSpawnPosition(c, snake)
	}
	if err := fm.apple.Place(fm.grid, fm.rng, valid); err != nil {
		return errors.Wrapf(err, "placing apple around %d segments", snake.Len())
	}
	glog.V(1).Infof("apple placed at %v", fm.apple.Position)
	return nil
}

// Eaten reports whether head is on the apple.
func (fm *FoodManager) Eaten(head types.Cell) bool {
	return fm.collisionMgr.IsFoodCollision(head, fm.apple)
}

func (fm *FoodManager) Apple() *entity.Apple {
	return fm.apple
}

func (fm *FoodManager) Position() types.Cell {
	return fm.apple.Position
}
