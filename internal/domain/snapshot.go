package domain

// Snapshot is a read-only copy of everything a renderer may show. Round
// changes whenever the board was reset and has to be redrawn from scratch.
type Snapshot struct {
	Width    int
	Height   int
	CellSize int

	Snake   []Coord
	Food    Coord
	HasFood bool

	Score    int
	Paused   bool
	Terminal bool
	Status   Status

	Turn  int
	Round int
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:    g.field.Width,
		Height:   g.field.Height,
		CellSize: g.config.CellSize,
		Snake:    g.snake.Body(),
		Food:     g.food,
		HasFood:  g.hasFood,
		Score:    g.score,
		Paused:   g.paused,
		Terminal: g.terminal,
		Status:   g.Status(),
		Turn:     g.turn,
		Round:    g.round,
	}
}

func (s Snapshot) Head() Coord {
	if len(s.Snake) == 0 {
		return Coord{}
	}
	return s.Snake[0]
}

// Length is the snake length, zero for an empty snapshot.
func (s Snapshot) Length() int {
	return len(s.Snake)
}
