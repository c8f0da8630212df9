package domain

type TickResult struct {
	Collided    bool
	Grew        bool
	ScoreGained int
	FoodSpawned bool
}

// Tick advances the board by one step. It is a no-op unless the game is
// running.
func (g *Game) Tick() TickResult {
	var result TickResult
	if g.Status() != StatusRunning {
		return result
	}

	g.turn++

	newHead := g.snake.NextHead(g.field)
	grows := g.hasFood && newHead.Equals(g.food)

	// A growing snake keeps its tail, so the tail only counts as free when
	// nothing is eaten.
	if !g.field.Contains(newHead) || g.snake.Occupies(newHead, !grows) {
		g.terminal = true
		result.Collided = true
		return result
	}

	g.snake.Move(g.field, grows)

	if grows {
		g.score += g.config.FoodReward
		g.hasFood = false
		result.Grew = true
		result.ScoreGained = g.config.FoodReward
	}

	if !g.hasFood {
		g.food, g.hasFood = g.SpawnFood()
		result.FoodSpawned = g.hasFood
	}

	return result
}
