// Package layout converts board cells to screen pixels. The simulation only
// knows cells; every scale factor lives here.
package layout

import (
	"image"

	"snake/internal/domain"
)

const (
	// HUDHeight is the strip above the board that holds the score line.
	HUDHeight = 24
	MinCell   = 4
	MaxCell   = 40
)

type Board struct {
	Cols     int
	Rows     int
	CellSize int
	OffsetX  int
	OffsetY  int
}

// WindowSize is the natural window for a board drawn at cellSize.
func WindowSize(cols, rows, cellSize int) (int, int) {
	return cols * cellSize, rows*cellSize + HUDHeight
}

// Fit picks the largest cell size that shows the whole board below the HUD,
// clamped to [MinCell, MaxCell], and centres the board in what is left.
func Fit(screenWidth, screenHeight, cols, rows int) Board {
	b := Board{Cols: cols, Rows: rows, CellSize: MinCell}
	if cols <= 0 || rows <= 0 {
		return b
	}

	availableHeight := screenHeight - HUDHeight
	cellW := screenWidth / cols
	cellH := availableHeight / rows

	b.CellSize = min(cellW, cellH)
	b.CellSize = max(b.CellSize, MinCell)
	b.CellSize = min(b.CellSize, MaxCell)

	w, h := b.Size()
	b.OffsetX = Center(screenWidth, w)
	b.OffsetY = HUDHeight + Center(availableHeight, h)
	return b
}

func (b Board) Size() (int, int) {
	return b.Cols * b.CellSize, b.Rows * b.CellSize
}

func (b Board) Bounds() image.Rectangle {
	w, h := b.Size()
	return image.Rect(b.OffsetX, b.OffsetY, b.OffsetX+w, b.OffsetY+h)
}

func (b Board) CellRect(c domain.Coord) image.Rectangle {
	x := b.OffsetX + c.X*b.CellSize
	y := b.OffsetY + c.Y*b.CellSize
	return image.Rect(x, y, x+b.CellSize, y+b.CellSize)
}

// GridLines returns the cell borders as segments, verticals first, including
// the outer frame.
func (b Board) GridLines() [][2]image.Point {
	r := b.Bounds()
	lines := make([][2]image.Point, 0, b.Cols+b.Rows+2)
	for x := 0; x <= b.Cols; x++ {
		px := r.Min.X + x*b.CellSize
		lines = append(lines, [2]image.Point{image.Pt(px, r.Min.Y), image.Pt(px, r.Max.Y)})
	}
	for y := 0; y <= b.Rows; y++ {
		py := r.Min.Y + y*b.CellSize
		lines = append(lines, [2]image.Point{image.Pt(r.Min.X, py), image.Pt(r.Max.X, py)})
	}
	return lines
}

// Inset shrinks r by pad on every side, never below a single pixel.
func Inset(r image.Rectangle, pad int) image.Rectangle {
	if r.Dx() <= 2*pad || r.Dy() <= 2*pad {
		c := image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
		return image.Rectangle{Min: c, Max: c.Add(image.Pt(1, 1))}
	}
	return image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Max.X-pad, r.Max.Y-pad)
}

func Center(outer, inner int) int {
	if inner >= outer {
		return 0
	}
	return (outer - inner) / 2
}
