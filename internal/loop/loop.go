// Package loop drives a domain.Game in real time.
//
// A Loop goroutine is the only owner of its game. Timer fires and player
// inputs are multiplexed through one select, so they never interleave, and
// every input submitted before a fire is applied before that tick runs.
package loop

import (
	"context"
	"log"
	"sync"
	"time"

	"snake/internal/domain"
)

const inputBuffer = 32

type Loop struct {
	game      *domain.Game
	scheduler *Scheduler

	inputCh    chan Input
	snapshotCh chan domain.Snapshot

	latest domain.Snapshot
	mu     sync.RWMutex
}

func New(game *domain.Game, interval time.Duration) *Loop {
	l := &Loop{
		game:       game,
		scheduler:  NewScheduler(interval),
		inputCh:    make(chan Input, inputBuffer),
		snapshotCh: make(chan domain.Snapshot, 1),
	}
	l.latest = game.Snapshot()
	return l
}

// Run processes ticks and inputs until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("Loop: started, interval=%v", l.scheduler.Interval())
	defer log.Println("Loop: stopped")
	defer l.scheduler.Disarm()

	l.publish()
	l.sync()

	for {
		select {
		case <-ctx.Done():
			return nil

		case input := <-l.inputCh:
			l.handleInput(input)

		case <-l.scheduler.C():
			l.onTimer()
		}
	}
}

// Submit queues an input for the loop. It never blocks; false means the
// queue was full and the input was dropped.
func (l *Loop) Submit(input Input) bool {
	select {
	case l.inputCh <- input:
		return true
	default:
		log.Printf("Loop: input queue full, dropping %v", input.Type)
		return false
	}
}

// Snapshots delivers the newest state after every change. Unread snapshots
// are replaced, never queued.
func (l *Loop) Snapshots() <-chan domain.Snapshot {
	return l.snapshotCh
}

func (l *Loop) Latest() domain.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.latest
}

// Armed reports whether another tick is scheduled.
func (l *Loop) Armed() bool {
	return l.scheduler.Armed()
}

// onTimer applies the inputs that raced the fire, then steps. A reset among
// them starts a fresh board, which waits a full interval before moving.
func (l *Loop) onTimer() {
	l.scheduler.fired()
	if l.drainInputs() {
		return
	}
	l.step()
}

func (l *Loop) step() {
	if l.game.Status() != domain.StatusRunning {
		return
	}

	result := l.game.Tick()
	if result.Collided {
		log.Printf("Loop: game over, score=%d turn=%d", l.game.Score(), l.game.Turn())
	}
	l.sync()
	l.publish()
}

// drainInputs reports whether any of the drained inputs was a reset.
func (l *Loop) drainInputs() bool {
	reset := false
	for {
		select {
		case input := <-l.inputCh:
			if input.Type == InputReset {
				reset = true
			}
			l.handleInput(input)
		default:
			return reset
		}
	}
}

func (l *Loop) handleInput(input Input) {
	switch input.Type {
	case InputSteer:
		if !l.game.ChangeDirection(input.Direction) {
			return
		}

	case InputTogglePause:
		if l.game.Terminal() {
			return
		}
		l.game.TogglePause()

	case InputReset:
		l.game.Reset()
		// The fresh round starts a full interval from now.
		l.scheduler.Disarm()
		log.Printf("Loop: reset, round=%d", l.game.Round())

	default:
		return
	}

	l.sync()
	l.publish()
}

// sync arms the scheduler exactly when the game can advance.
func (l *Loop) sync() {
	if l.game.Status() == domain.StatusRunning {
		l.scheduler.Arm()
	} else {
		l.scheduler.Disarm()
	}
}

func (l *Loop) publish() {
	snap := l.game.Snapshot()

	l.mu.Lock()
	l.latest = snap
	l.mu.Unlock()

	select {
	case <-l.snapshotCh:
	default:
	}
	select {
	case l.snapshotCh <- snap:
	default:
	}
}
