package domain

import (
	"math/rand"
	"time"
)

type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

// Game is the authoritative state of one board. It is not safe for
// concurrent use: a single owner (the loop) calls every method.
type Game struct {
	field  *Field
	config *GameConfig
	rng    *rand.Rand

	snake    *Snake
	food     Coord
	hasFood  bool
	score    int
	paused   bool
	terminal bool

	turn  int
	round int
}

// NewGame builds a board in its initial state. A nil rng is seeded from
// config.Seed, or from the clock when the seed is zero.
func NewGame(config *GameConfig, rng *rand.Rand) *Game {
	if rng == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		field:  NewField(config.Width, config.Height),
		config: config.Copy(),
		rng:    rng,
	}
	g.init()
	return g
}

func (g *Game) init() {
	g.snake = NewSnake(g.config.StartHead(), g.config.InitialLength, DirectionRight)
	g.score = 0
	g.paused = false
	g.terminal = false
	g.turn = 0
	g.hasFood = false
	g.food, g.hasFood = g.SpawnFood()
}

// Reset starts a new round from any status.
func (g *Game) Reset() {
	g.round++
	g.init()
}

// ChangeDirection queues a turn for the next tick. Reversals are dropped
// silently; the result only says whether the request was taken.
func (g *Game) ChangeDirection(requested Direction) bool {
	if g.terminal {
		return false
	}
	return g.snake.SetDirection(requested)
}

// TogglePause flips the paused flag and returns its new value. A finished
// game cannot be paused.
func (g *Game) TogglePause() bool {
	if g.terminal {
		return g.paused
	}
	g.paused = !g.paused
	return g.paused
}

func (g *Game) Status() Status {
	switch {
	case g.terminal:
		return StatusGameOver
	case g.paused:
		return StatusPaused
	}
	return StatusRunning
}

func (g *Game) Field() *Field {
	return g.field
}

func (g *Game) Config() *GameConfig {
	return g.config
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Direction() Direction {
	return g.snake.HeadDirection
}

func (g *Game) Head() Coord {
	return g.snake.Head()
}

func (g *Game) Segments() []Coord {
	return g.snake.Body()
}

func (g *Game) Food() (Coord, bool) {
	return g.food, g.hasFood
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Terminal() bool {
	return g.terminal
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) Round() int {
	return g.round
}
