package screens

import (
	"fmt"

	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type BestScoreSource interface {
	BestScore() int
}

type MenuScreen struct {
	ctx  types.ScreenContext
	best BestScoreSource

	btnStart *components.Button
	btnQuit  *components.Button
}

func NewMenuScreen(ctx types.ScreenContext, best BestScoreSource) *MenuScreen {
	return &MenuScreen{
		ctx:      ctx,
		best:     best,
		btnStart: components.NewButton(160, 40, "Start Game"),
		btnQuit:  components.NewButton(160, 40, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	bw, _ := s.btnStart.Size()
	x := layout.Center(w, bw)

	s.btnStart.SetPosition(x, h/2-30)
	s.btnQuit.SetPosition(x, h/2+25)

	if s.btnStart.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() || input.IsQuitPressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	face := types.GetFonts().Normal
	w, h := s.ctx.Size()

	title := "Snake Game"
	x := layout.Center(w, types.TextWidth(face, title))
	for dx := -1; dx <= 1; dx++ {
		text.Draw(screen, title, face, x+dx, h/4, types.ColorTextHighlight)
	}

	if best := s.best.BestScore(); best > 0 {
		line := fmt.Sprintf("Best this session: %d", best)
		text.Draw(screen, line, face, layout.Center(w, types.TextWidth(face, line)), h/4+24, types.ColorTextDim)
	}

	s.btnStart.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "Enter to start  |  Esc to quit"
	small := types.GetFonts().Small
	text.Draw(screen, hint, small, layout.Center(w, types.TextWidth(small, hint)), h-16, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
