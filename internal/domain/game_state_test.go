package domain

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, 1)

	if want := []Coord{{10, 10}, {9, 10}, {8, 10}}; !slices.Equal(g.Segments(), want) {
		t.Errorf("snake = %v, want %v", g.Segments(), want)
	}
	if g.Direction() != DirectionRight {
		t.Errorf("direction = %v, want Right", g.Direction())
	}
	if g.Score() != 0 || g.Paused() || g.Terminal() {
		t.Errorf("unexpected flags: score=%d paused=%v terminal=%v", g.Score(), g.Paused(), g.Terminal())
	}
	if g.Status() != StatusRunning {
		t.Errorf("status = %v, want running", g.Status())
	}
	food, ok := g.Food()
	if !ok || g.snake.Occupies(food, false) {
		t.Errorf("bad initial food %v (present=%v)", food, ok)
	}
}

func TestChangeDirection(t *testing.T) {
	g := newTestGame(t, 1)

	if g.ChangeDirection(DirectionLeft) {
		t.Error("reversal accepted")
	}
	if g.Direction() != DirectionRight {
		t.Errorf("direction = %v, want Right", g.Direction())
	}

	if !g.ChangeDirection(DirectionUp) {
		t.Error("turn rejected")
	}
	if g.Direction() != DirectionUp {
		t.Errorf("direction = %v, want Up", g.Direction())
	}
}

func TestChangeDirectionLatestWins(t *testing.T) {
	g := newTestGame(t, 1)
	placeFood(g, Coord{30, 30})

	g.ChangeDirection(DirectionUp)
	g.ChangeDirection(DirectionDown)
	g.Tick()

	if got := g.Head(); got != (Coord{10, 9}) {
		t.Fatalf("head = %v, want (10,9)", got)
	}

	g.ChangeDirection(DirectionLeft)
	g.ChangeDirection(DirectionUp)
	g.Tick()
	if got := g.Head(); got != (Coord{10, 8}) {
		t.Fatalf("head = %v, want (10,8)", got)
	}

	// Down is not the reverse of Right, but it is the reverse of the last
	// move and would put the head on the neck.
	g.ChangeDirection(DirectionRight)
	g.ChangeDirection(DirectionDown)
	g.Tick()
	if got := g.Head(); got != (Coord{11, 8}) {
		t.Fatalf("head = %v, want (11,8)", got)
	}
}

func TestChangeDirectionGuardsNeckBetweenTicks(t *testing.T) {
	g := newTestGame(t, 1)
	placeFood(g, Coord{30, 30})

	if !g.ChangeDirection(DirectionUp) {
		t.Fatal("Up rejected while moving Right")
	}
	// Left is fine against the pending Up, but the snake still last moved
	// Right, so Left would step onto (9,10).
	if g.ChangeDirection(DirectionLeft) {
		t.Fatal("Left accepted before the Up move was made")
	}
	if g.Direction() != DirectionUp {
		t.Fatalf("direction = %v, want Up", g.Direction())
	}

	g.Tick()
	if got := g.Head(); got != (Coord{10, 9}) {
		t.Fatalf("head = %v, want (10,9)", got)
	}
	if !g.ChangeDirection(DirectionLeft) {
		t.Fatal("Left rejected after moving Up")
	}
	g.Tick()
	if got := g.Head(); got != (Coord{9, 9}) || g.Terminal() {
		t.Fatalf("head = %v terminal=%v, want (9,9) alive", got, g.Terminal())
	}
}

func TestTogglePauseTwiceIsIdentity(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.Snapshot()

	if !g.TogglePause() {
		t.Fatal("first toggle did not pause")
	}
	if g.Status() != StatusPaused {
		t.Errorf("status = %v, want paused", g.Status())
	}
	if g.TogglePause() {
		t.Fatal("second toggle did not resume")
	}

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Errorf("state changed:\n before %+v\n after  %+v", before, g.Snapshot())
	}
}

func TestTogglePauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.terminal = true

	if g.TogglePause() {
		t.Error("paused a finished game")
	}
	if g.Status() != StatusGameOver {
		t.Errorf("status = %v, want game over", g.Status())
	}
	if g.ChangeDirection(DirectionUp) {
		t.Error("steered a finished game")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	cfg := DefaultGameConfig()
	a := NewGame(cfg, rand.New(rand.NewSource(1)))
	b := NewGame(cfg, rand.New(rand.NewSource(2)))

	a.ChangeDirection(DirectionDown)
	for i := 0; i < 50; i++ {
		a.Tick()
	}
	a.TogglePause()
	a.Reset()

	b.TogglePause()
	b.Reset()

	for _, g := range []*Game{a, b} {
		if !slices.Equal(g.Segments(), []Coord{{10, 10}, {9, 10}, {8, 10}}) {
			t.Errorf("snake = %v", g.Segments())
		}
		if g.Direction() != DirectionRight || g.Score() != 0 || g.Status() != StatusRunning || g.Turn() != 0 {
			t.Errorf("not fresh: dir=%v score=%d status=%v turn=%d", g.Direction(), g.Score(), g.Status(), g.Turn())
		}
		if g.Round() != 1 {
			t.Errorf("round = %d, want 1", g.Round())
		}
		if food, ok := g.Food(); !ok || g.snake.Occupies(food, false) {
			t.Errorf("bad food after reset: %v", food)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()
	snap.Snake[0] = Coord{0, 0}

	if g.Head() != (Coord{10, 10}) {
		t.Fatal("mutating a snapshot changed the game")
	}
	if snap.Width != 40 || snap.Height != 40 || snap.CellSize != 10 {
		t.Errorf("unexpected dimensions %dx%d@%d", snap.Width, snap.Height, snap.CellSize)
	}
}
