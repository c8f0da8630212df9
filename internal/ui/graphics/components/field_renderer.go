package components

import (
	"image"
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/layout"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	ShowGrid bool
}

func NewFieldRenderer(showGrid bool) *FieldRenderer {
	return &FieldRenderer{ShowGrid: showGrid}
}

func (fr *FieldRenderer) Draw(screen *ebiten.Image, board layout.Board, snap domain.Snapshot) {
	fr.drawField(screen, board)
	if snap.HasFood {
		fr.drawFood(screen, board, snap.Food)
	}
	fr.drawSnake(screen, board, snap.Snake)
}

func (fr *FieldRenderer) drawField(screen *ebiten.Image, board layout.Board) {
	fillRect(screen, board.Bounds(), types.ColorFieldBg)

	if !fr.ShowGrid {
		return
	}
	for _, line := range board.GridLines() {
		vector.StrokeLine(screen,
			float32(line[0].X), float32(line[0].Y),
			float32(line[1].X), float32(line[1].Y),
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) drawFood(screen *ebiten.Image, board layout.Board, food domain.Coord) {
	fillRect(screen, layout.Inset(board.CellRect(food), board.CellSize/5), types.ColorFood)
}

func (fr *FieldRenderer) drawSnake(screen *ebiten.Image, board layout.Board, body []domain.Coord) {
	// Tail first so the head is never painted over.
	for i := len(body) - 1; i >= 0; i-- {
		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.Darken(types.ColorSnake, 0.7)
		}
		fillRect(screen, layout.Inset(board.CellRect(body[i]), 1), cellColor)
	}
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		clr, false)
}
