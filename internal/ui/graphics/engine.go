package graphics

import (
	"log"
	"sync"
	"sync/atomic"

	"snake/internal/domain"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine is the ebiten.Game. It forwards screen events to Events and shows
// whatever snapshot the application pushed last.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	snap     domain.Snapshot
	hasState bool
	best     int
	dataMu   sync.RWMutex

	// Screen switches come from the app goroutine but run on the ebiten one.
	pendingScreen chan types.ScreenType

	eventCh chan types.UIEvent
	quit    atomic.Bool
}

func NewEngine(config *domain.GameConfig) *Engine {
	w, h := layout.WindowSize(config.Width, config.Height, config.CellSize)

	return &Engine{
		width:         w,
		height:        h,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		pendingScreen: make(chan types.ScreenType, 8),
		eventCh:       make(chan types.UIEvent, 100),
	}
}

func (e *Engine) RegisterScreens(menu types.Screen, game types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if e.quit.Load() {
		return ebiten.Termination
	}

	for drained := false; !drained; {
		select {
		case screen := <-e.pendingScreen:
			e.switchScreen(screen)
		default:
			drained = true
		}
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.handleEvent(screen.Update())

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		if e.hasState {
			updater.SetState(e.snap, e.best)
		}
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// SetScreen is safe to call from any goroutine.
func (e *Engine) SetScreen(screen types.ScreenType) {
	select {
	case e.pendingScreen <- screen:
	default:
		log.Println("Engine: screen queue full, dropping switch")
	}
}

func (e *Engine) SetState(snap domain.Snapshot, best int) {
	e.dataMu.Lock()
	e.snap = snap
	e.hasState = true
	e.best = best
	e.dataMu.Unlock()
}

func (e *Engine) ClearState() {
	e.dataMu.Lock()
	e.hasState = false
	e.dataMu.Unlock()
}

func (e *Engine) switchScreen(screen types.ScreenType) {
	if e.currentScreen == screen {
		return
	}
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnExit()
	}
	e.currentScreen = screen
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventQuit:
		e.quit.Store(true)
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Engine: event channel full, dropping event")
		}
	}
}

// Close ends Run at the next frame.
func (e *Engine) Close() {
	e.quit.Store(true)
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

type GameStateUpdater interface {
	SetState(snap domain.Snapshot, best int)
}
