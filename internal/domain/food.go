package domain

// SpawnFood picks a uniformly random free cell, preferring cells at least
// FoodMargin away from the walls. When the interior is full any free cell
// will do; a full board yields false and the caller tries again next tick.
func (g *Game) SpawnFood() (Coord, bool) {
	interior, anywhere := g.freeCells()

	candidates := interior
	if len(candidates) == 0 {
		candidates = anywhere
	}
	if len(candidates) == 0 {
		return Coord{}, false
	}

	return candidates[g.rng.Intn(len(candidates))], true
}

func (g *Game) freeCells() (interior, anywhere []Coord) {
	occupied := make(map[Coord]struct{}, g.snake.Length())
	for _, p := range g.snake.Points {
		occupied[p] = struct{}{}
	}

	anywhere = make([]Coord, 0, g.field.Cells()-len(occupied))
	for y := 0; y < g.field.Height; y++ {
		for x := 0; x < g.field.Width; x++ {
			c := Coord{X: x, Y: y}
			if _, ok := occupied[c]; ok {
				continue
			}
			anywhere = append(anywhere, c)
			if g.field.Interior(c, g.config.FoodMargin) {
				interior = append(interior, c)
			}
		}
	}
	return interior, anywhere
}
