package screens

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	hud           *components.HUD
	keyboard      *input.KeyboardHandler

	snap     domain.Snapshot
	hasState bool
	best     int
}

func NewGameScreen(ctx types.ScreenContext, showGrid bool) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(showGrid),
		hud:           components.NewHUD(),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(snap domain.Snapshot, best int) {
	s.snap = snap
	s.hasState = true
	s.best = best
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventExitGame}
	}
	if input.IsRetryPressed() {
		return types.UIEvent{Type: types.UIEventRetry}
	}
	if input.IsPausePressed() {
		return types.UIEvent{Type: types.UIEventTogglePause}
	}
	if input.IsGridPressed() {
		s.fieldRenderer.ShowGrid = !s.fieldRenderer.ShowGrid
	}

	if dir := s.keyboard.Direction(); dir != 0 {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()

	if !s.hasState {
		face := types.GetFonts().Normal
		msg := "Starting..."
		text.Draw(screen, msg, face, layout.Center(w, types.TextWidth(face, msg)), h/2, types.ColorTextDim)
		return
	}

	board := layout.Fit(w, h, s.snap.Width, s.snap.Height)
	s.fieldRenderer.Draw(screen, board, s.snap)
	s.hud.Draw(screen, w, s.snap, s.best)

	switch {
	case s.snap.Terminal:
		components.Banner(screen, board,
			fmt.Sprintf("Game Over! Score: %d", s.snap.Score),
			"Press R to retry, Esc for menu")
	case s.snap.Paused:
		components.Banner(screen, board, "Paused", "Press P to resume")
	}
}

func (s *GameScreen) OnEnter() {
	s.hasState = false
}

func (s *GameScreen) OnExit() {}
