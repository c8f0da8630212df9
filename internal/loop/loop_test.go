package loop

import (
	"context"
	"math/rand"
	"testing"
	"testing/synctest"
	"time"

	"snake/internal/domain"
)

const interval = 100 * time.Millisecond

func startLoop(t *testing.T) (*Loop, func()) {
	t.Helper()

	game := domain.NewGame(domain.DefaultGameConfig(), rand.New(rand.NewSource(7)))
	l := New(game, interval)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()
	synctest.Wait()

	return l, func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() = %v", err)
		}
	}
}

func TestLoopTicksAtFixedInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := startLoop(t)
		defer stop()

		if got := l.Latest().Turn; got != 0 {
			t.Fatalf("turn = %d before the first interval", got)
		}
		if !l.Armed() {
			t.Fatal("loop not armed while running")
		}

		time.Sleep(3*interval + interval/2)
		synctest.Wait()

		if got := l.Latest().Turn; got != 3 {
			t.Fatalf("turn = %d, want 3", got)
		}
	})
}

func TestLoopPublishesSnapshots(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := startLoop(t)
		defer stop()

		first := <-l.Snapshots()
		if first.Turn != 0 || first.Length() != 3 {
			t.Fatalf("initial snapshot %+v", first)
		}

		time.Sleep(interval)
		synctest.Wait()

		next := <-l.Snapshots()
		if next.Turn != 1 {
			t.Fatalf("turn = %d, want 1", next.Turn)
		}
	})
}

func TestLoopPauseStopsTicking(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := startLoop(t)
		defer stop()

		time.Sleep(interval)
		synctest.Wait()

		l.Submit(TogglePause())
		synctest.Wait()
		if l.Armed() {
			t.Fatal("scheduler still armed while paused")
		}
		if !l.Latest().Paused {
			t.Fatal("snapshot not paused")
		}

		time.Sleep(10 * interval)
		synctest.Wait()
		if got := l.Latest().Turn; got != 1 {
			t.Fatalf("turn advanced to %d while paused", got)
		}

		l.Submit(TogglePause())
		synctest.Wait()
		if !l.Armed() {
			t.Fatal("scheduler not re-armed on resume")
		}

		time.Sleep(interval)
		synctest.Wait()
		if got := l.Latest().Turn; got != 2 {
			t.Fatalf("turn = %d after resume, want 2", got)
		}
	})
}

func TestLoopStopsOnGameOverUntilReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := startLoop(t)
		defer stop()

		// From (10,10) heading up the wall is eleven steps away.
		l.Submit(Steer(domain.DirectionUp))
		time.Sleep(20 * interval)
		synctest.Wait()

		snap := l.Latest()
		if snap.Status != domain.StatusGameOver {
			t.Fatalf("status = %v, want game over", snap.Status)
		}
		if snap.Turn != 11 {
			t.Errorf("turn = %d, want 11", snap.Turn)
		}
		if l.Armed() {
			t.Fatal("scheduler armed after game over")
		}

		l.Submit(TogglePause())
		synctest.Wait()
		if l.Armed() || l.Latest().Paused {
			t.Fatal("pause toggle revived a finished game")
		}

		l.Submit(Reset())
		synctest.Wait()
		snap = l.Latest()
		if snap.Status != domain.StatusRunning || snap.Round != 1 || snap.Turn != 0 {
			t.Fatalf("after reset: %+v", snap)
		}
		if !l.Armed() {
			t.Fatal("scheduler not armed after reset")
		}

		time.Sleep(interval)
		synctest.Wait()
		if got := l.Latest().Turn; got != 1 {
			t.Fatalf("turn = %d after reset, want 1", got)
		}
	})
}

func TestLoopAppliesInputBeforeNextTick(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := startLoop(t)
		defer stop()

		time.Sleep(interval / 2)
		l.Submit(Steer(domain.DirectionDown))
		l.Submit(Steer(domain.DirectionLeft))
		time.Sleep(interval / 2)
		synctest.Wait()

		// Left would fold back onto the neck and is dropped; Down stands.
		if got := l.Latest().Head(); got != (domain.Coord{X: 10, Y: 11}) {
			t.Fatalf("head = %v, want (10,11)", got)
		}
	})
}

func TestLoopResetQueuedAtFireWaitsFullInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		game := domain.NewGame(domain.DefaultGameConfig(), rand.New(rand.NewSource(7)))
		l := New(game, interval)
		l.sync()
		defer l.scheduler.Disarm()

		time.Sleep(interval)
		<-l.scheduler.C()
		l.Submit(Reset())
		l.onTimer()

		snap := l.Latest()
		if snap.Round != 1 || snap.Turn != 0 {
			t.Fatalf("round=%d turn=%d after reset at fire, want 1 and 0", snap.Round, snap.Turn)
		}
		if !l.Armed() {
			t.Fatal("scheduler not armed for the new round")
		}

		time.Sleep(interval)
		<-l.scheduler.C()
		l.onTimer()
		if got := l.Latest().Turn; got != 1 {
			t.Fatalf("turn = %d one interval after reset, want 1", got)
		}
	})
}

func TestLoopSteerQueuedAtFireStillTicks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		game := domain.NewGame(domain.DefaultGameConfig(), rand.New(rand.NewSource(7)))
		l := New(game, interval)
		l.sync()
		defer l.scheduler.Disarm()

		time.Sleep(interval)
		<-l.scheduler.C()
		l.Submit(Steer(domain.DirectionDown))
		l.onTimer()

		snap := l.Latest()
		if snap.Turn != 1 || snap.Head() != (domain.Coord{X: 10, Y: 11}) {
			t.Fatalf("turn=%d head=%v, want 1 and (10,11)", snap.Turn, snap.Head())
		}
	})
}
