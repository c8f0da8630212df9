package domain

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

var (
	directionNames = [...]string{
		DirectionUp:    "Up",
		DirectionDown:  "Down",
		DirectionLeft:  "Left",
		DirectionRight: "Right",
	}
	directionDeltas = [...]Coord{
		DirectionUp:    {X: 0, Y: -1},
		DirectionDown:  {X: 0, Y: 1},
		DirectionLeft:  {X: -1, Y: 0},
		DirectionRight: {X: 1, Y: 0},
	}
	directionOpposites = [...]Direction{
		DirectionUp:    DirectionDown,
		DirectionDown:  DirectionUp,
		DirectionLeft:  DirectionRight,
		DirectionRight: DirectionLeft,
	}
)

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// Opposite returns 0 for an invalid direction.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return 0
	}
	return directionOpposites[d]
}

// Delta is the one-cell step in d, with Y growing downwards.
func (d Direction) Delta() Coord {
	if !d.Valid() {
		return Coord{}
	}
	return directionDeltas[d]
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the direction names case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.TrimSpace(s)
	for d := DirectionUp; d <= DirectionRight; d++ {
		if strings.EqualFold(name, directionNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
