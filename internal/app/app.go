package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"snake/internal/domain"
	"snake/internal/loop"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotPlaying   = errors.New("no game in progress")
	ErrStopped      = errors.New("app stopped")
	ErrInputDropped = errors.New("loop input queue full")
)

// App moves the player between the menu and a game. While playing it owns a
// loop.Loop and watches its snapshots to notice the end of a round.
type App struct {
	config  *domain.GameConfig
	machine *StateMachine

	round     *round
	bestScore int
	seq       int64

	eventCh chan AppEvent

	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool

	mu sync.RWMutex
}

type round struct {
	id   string
	loop *loop.Loop
	// Snapshots of boards older than this were published before the last
	// retry and are skipped.
	minRound int

	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewApp(config *domain.GameConfig) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return &App{
		config:  config.Copy(),
		machine: NewStateMachine(),
		eventCh: make(chan AppEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return ErrStopped
	}
	a.ctx, a.cancel = context.WithCancel(ctx)

	log.Printf("App started, board %dx%d, step %dms", a.config.Width, a.config.Height, a.config.StateDelayMs)
	return nil
}

func (a *App) Stop() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	r := a.round
	a.round = nil
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()

	if r != nil {
		r.stop()
	}
	close(a.eventCh)
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Phase() Phase {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.machine.Phase()
}

func (a *App) BestScore() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bestScore
}

func (a *App) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.round == nil {
		return ""
	}
	return a.round.id
}

func (a *App) Config() *domain.GameConfig {
	return a.config.Copy()
}

// Snapshot returns the latest board, or false from the menu.
func (a *App) Snapshot() (domain.Snapshot, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.round == nil {
		return domain.Snapshot{}, false
	}
	return a.round.loop.Latest(), true
}

func (a *App) StartGame() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil || a.stopped {
		return ErrStopped
	}
	from, err := a.machine.Fire(TransitionStart)
	if err != nil {
		return err
	}

	a.round = a.startRound()
	a.emitPhase(from, 0)
	return nil
}

func (a *App) Steer(dir domain.Direction) error {
	return a.submit(loop.Steer(dir))
}

func (a *App) TogglePause() error {
	return a.submit(loop.TogglePause())
}

// Retry resets the board, from a finished round or mid-game.
func (a *App) Retry() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.round == nil {
		return ErrNotPlaying
	}
	if !a.machine.Can(TransitionRetry) {
		return fmt.Errorf("%w: %v from %v", ErrInvalidTransition, TransitionRetry, a.machine.Phase())
	}

	latest := a.round.loop.Latest()
	if !a.round.loop.Submit(loop.Reset()) {
		return fmt.Errorf("retry: %w", ErrInputDropped)
	}
	from, err := a.machine.Fire(TransitionRetry)
	if err != nil {
		return err
	}

	score := latest.Score
	a.round.id = uuid.NewString()
	a.round.minRound = latest.Round + 1
	log.Printf("App: retry, round %s", a.round.id)
	a.emitPhase(from, score)
	return nil
}

func (a *App) ExitToMenu() error {
	a.mu.Lock()
	if a.round == nil {
		a.mu.Unlock()
		return ErrNotPlaying
	}
	score := a.round.loop.Latest().Score
	from, err := a.machine.Fire(TransitionExit)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	r := a.round
	a.round = nil
	a.emitPhase(from, score)
	a.mu.Unlock()

	// The watcher takes a.mu, so wait without holding it.
	r.stop()
	log.Printf("App: left round %s, score=%d", r.id, score)
	return nil
}

func (a *App) submit(input loop.Input) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.round == nil || a.machine.Phase() != PhasePlaying {
		return ErrNotPlaying
	}
	a.round.loop.Submit(input)
	return nil
}

// startRound must be called with a.mu held.
func (a *App) startRound() *round {
	cfg := a.config.Copy()
	var rng *rand.Rand
	if cfg.Seed != 0 {
		// Successive rounds get distinct but reproducible boards.
		a.seq++
		rng = rand.New(rand.NewSource(cfg.Seed + a.seq - 1))
	}
	game := domain.NewGame(cfg, rng)
	interval := time.Duration(cfg.StateDelayMs) * time.Millisecond

	ctx, cancel := context.WithCancel(a.ctx)
	group, ctx := errgroup.WithContext(ctx)

	r := &round{
		id:     uuid.NewString(),
		loop:   loop.New(game, interval),
		cancel: cancel,
		group:  group,
	}

	group.Go(func() error {
		return r.loop.Run(ctx)
	})
	group.Go(func() error {
		a.watch(ctx, r)
		return nil
	})

	log.Printf("App: round %s started", r.id)
	return r
}

func (r *round) stop() {
	r.cancel()
	if err := r.group.Wait(); err != nil {
		log.Printf("App: round %s: %v", r.id, err)
	}
}

func (a *App) watch(ctx context.Context, r *round) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-r.loop.Snapshots():
			a.onSnapshot(r, snap)
		}
	}
}

func (a *App) onSnapshot(r *round, snap domain.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.round != r || snap.Round < r.minRound {
		return
	}

	if snap.Score > a.bestScore {
		a.bestScore = snap.Score
	}

	a.emit(AppEvent{
		Type:    AppEventStateUpdated,
		Payload: StatePayload{SessionID: r.id, Snapshot: snap},
	})

	if snap.Terminal && a.machine.Can(TransitionGameOver) {
		from, _ := a.machine.Fire(TransitionGameOver)
		log.Printf("App: round %s over, score=%d best=%d", r.id, snap.Score, a.bestScore)
		a.emitPhase(from, snap.Score)
	}
}

func (a *App) emitPhase(from Phase, score int) {
	id := ""
	if a.round != nil {
		id = a.round.id
	}
	a.emit(AppEvent{
		Type: AppEventPhaseChanged,
		Payload: PhasePayload{
			From:      from,
			To:        a.machine.Phase(),
			SessionID: id,
			Score:     score,
			BestScore: a.bestScore,
		},
	})
}

func (a *App) emit(event AppEvent) {
	if a.stopped {
		return
	}
	select {
	case a.eventCh <- event:
	default:
		log.Println("App: event channel full, dropping event")
	}
}
