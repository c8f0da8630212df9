package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD is the strip above the board: score on the left, best on the right.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Draw(screen *ebiten.Image, width int, snap domain.Snapshot, best int) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), layout.HUDHeight, types.ColorBackground, false)

	face := types.GetFonts().Normal
	baseline := (layout.HUDHeight + types.LineHeight(face)) / 2

	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), face, 8, baseline, types.ColorTextHighlight)

	bestText := fmt.Sprintf("Best: %d", best)
	text.Draw(screen, bestText, face, width-types.TextWidth(face, bestText)-8, baseline, types.ColorTextDim)
}

// Banner draws centred lines over a dimmed board.
func Banner(screen *ebiten.Image, board layout.Board, lines ...string) {
	bounds := board.Bounds()
	vector.DrawFilledRect(screen,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		types.ColorOverlay, false)

	face := types.GetFonts().Normal
	lineHeight := types.LineHeight(face) + 4
	y := bounds.Min.Y + (bounds.Dy()-lineHeight*len(lines))/2 + lineHeight

	for i, line := range lines {
		clr := types.ColorText
		if i == 0 {
			clr = types.ColorTextHighlight
		}
		x := bounds.Min.X + layout.Center(bounds.Dx(), types.TextWidth(face, line))
		text.Draw(screen, line, face, x, y, clr)
		y += lineHeight
	}
}
