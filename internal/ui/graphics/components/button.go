package components

import (
	"image"
	"image/color"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable label. A click completes when the left mouse button
// is released over it.
type Button struct {
	Label string

	rect    image.Rectangle
	hovered bool
	held    bool
}

func NewButton(width, height int, label string) *Button {
	return &Button{
		Label: label,
		rect:  image.Rect(0, 0, width, height),
	}
}

func (b *Button) Size() (int, int) {
	return b.rect.Dx(), b.rect.Dy()
}

func (b *Button) SetPosition(x, y int) {
	b.rect = b.rect.Sub(b.rect.Min).Add(image.Pt(x, y))
}

func (b *Button) Update() bool {
	b.hovered = image.Pt(ebiten.CursorPosition()).In(b.rect)

	released := b.held
	b.held = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return released && !b.held && b.hovered
}

func (b *Button) fill() color.RGBA {
	if b.held {
		return types.Darken(types.ColorButtonHover, 0.8)
	}
	if b.hovered {
		return types.ColorButtonHover
	}
	return types.ColorButton
}

func (b *Button) Draw(screen *ebiten.Image) {
	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, b.fill(), false)
	vector.StrokeRect(screen, x, y, w, h, 1, types.ColorBorder, false)

	face := types.GetFonts().Normal
	tx := b.rect.Min.X + (b.rect.Dx()-types.TextWidth(face, b.Label))/2
	ty := b.rect.Min.Y + (b.rect.Dy()+types.LineHeight(face))/2 - 2
	text.Draw(screen, b.Label, face, tx, ty, types.ColorButtonText)
}
