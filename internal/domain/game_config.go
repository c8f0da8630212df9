package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	Width         int
	Height        int
	CellSize      int
	StateDelayMs  int
	FoodReward    int
	InitialLength int
	FoodMargin    int
	Seed          int64
}

// DefaultGameConfig is the classic 400x400 board: 40x40 cells of 10 units,
// one step every 100ms.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:         40,
		Height:        40,
		CellSize:      10,
		StateDelayMs:  100,
		FoodReward:    10,
		InitialLength: 3,
		FoodMargin:    3,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < 10 || c.Width > 100 {
		return fmt.Errorf("%w: width %d out of range [10, 100]", ErrInvalidConfig, c.Width)
	}
	if c.Height < 10 || c.Height > 100 {
		return fmt.Errorf("%w: height %d out of range [10, 100]", ErrInvalidConfig, c.Height)
	}
	if c.CellSize < 2 || c.CellSize > 64 {
		return fmt.Errorf("%w: cell size %d out of range [2, 64]", ErrInvalidConfig, c.CellSize)
	}
	if c.StateDelayMs < 20 || c.StateDelayMs > 3000 {
		return fmt.Errorf("%w: state delay %dms out of range [20, 3000]", ErrInvalidConfig, c.StateDelayMs)
	}
	if c.FoodReward < 1 {
		return fmt.Errorf("%w: food reward must be positive, got %d", ErrInvalidConfig, c.FoodReward)
	}
	head := c.StartHead()
	if c.InitialLength < 3 || c.InitialLength > head.X+1 {
		return fmt.Errorf("%w: initial length %d out of range [3, %d]", ErrInvalidConfig, c.InitialLength, head.X+1)
	}
	maxMargin := min(c.Width, c.Height)/2 - 1
	if c.FoodMargin < 0 || c.FoodMargin > maxMargin {
		return fmt.Errorf("%w: food margin %d out of range [0, %d]", ErrInvalidConfig, c.FoodMargin, maxMargin)
	}
	return nil
}

// StartHead is where every round begins. On the default board this is
// (10,10); smaller boards pull it toward the centre.
func (c *GameConfig) StartHead() Coord {
	return Coord{
		X: min(10, c.Width/2),
		Y: min(10, c.Height/2),
	}
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
