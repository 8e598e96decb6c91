package manager

import (
	"toroid-snake/game/entity"
	"toroid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// HandleMovement applies the pending heading, advances the snake one cell and
// reports whether the new head ran into the body.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake) CollisionType {
	snake.ApplyDirection()
	snake.Advance()
	if snake.CheckSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is on the grid and clear of the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, apple *entity.Apple) bool {
	return apple.IsConsumedBy(pos)
}
