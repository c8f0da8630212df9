package layout

import (
	"image"
	"testing"

	"snake/internal/domain"
)

func TestWindowSizeDefaultBoard(t *testing.T) {
	w, h := WindowSize(40, 40, 10)
	if w != 400 || h != 400+HUDHeight {
		t.Fatalf("WindowSize = %dx%d, want 400x%d", w, h, 400+HUDHeight)
	}
}

func TestFitNaturalWindow(t *testing.T) {
	w, h := WindowSize(40, 40, 10)
	b := Fit(w, h, 40, 40)

	if b.CellSize != 10 {
		t.Fatalf("cell = %d, want 10", b.CellSize)
	}
	if b.OffsetX != 0 || b.OffsetY != HUDHeight {
		t.Fatalf("offset = (%d,%d), want (0,%d)", b.OffsetX, b.OffsetY, HUDHeight)
	}
	// The source drew segment (100,100) for cell (10,10).
	want := image.Rect(100, 100+HUDHeight, 110, 110+HUDHeight)
	if got := b.CellRect(domain.Coord{X: 10, Y: 10}); got != want {
		t.Fatalf("CellRect = %v, want %v", got, want)
	}
}

func TestFitClampsAndCenters(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantCell      int
	}{
		{"wide window", 1000, 424, 10},
		{"huge window", 4000, 4000, MaxCell},
		{"tiny window", 50, 50, MinCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Fit(tt.width, tt.height, 40, 40)
			if b.CellSize != tt.wantCell {
				t.Fatalf("cell = %d, want %d", b.CellSize, tt.wantCell)
			}
			w, _ := b.Size()
			if w < tt.width && b.OffsetX != (tt.width-w)/2 {
				t.Errorf("offsetX = %d, not centred", b.OffsetX)
			}
			if b.OffsetY < HUDHeight && b.Bounds().Dy() < tt.height-HUDHeight {
				t.Errorf("board overlaps the HUD: offsetY = %d", b.OffsetY)
			}
		})
	}
}

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	if got := Inset(r, 2); got != image.Rect(2, 2, 8, 8) {
		t.Errorf("Inset = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 3, 3), 2); got.Dx() != 1 || got.Dy() != 1 {
		t.Errorf("Inset of a tiny rect = %v", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center(100, 40); got != 30 {
		t.Errorf("Center(100, 40) = %d", got)
	}
	if got := Center(10, 40); got != 0 {
		t.Errorf("Center(10, 40) = %d", got)
	}
}

func TestGridLinesFrameEveryCell(t *testing.T) {
	b := Board{Cols: 2, Rows: 3, CellSize: 10, OffsetX: 5, OffsetY: HUDHeight}
	lines := b.GridLines()

	if len(lines) != 3+4 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}

	top := HUDHeight
	bottom := HUDHeight + 30
	tests := []struct {
		i    int
		want [2]image.Point
	}{
		{0, [2]image.Point{image.Pt(5, top), image.Pt(5, bottom)}},
		{2, [2]image.Point{image.Pt(25, top), image.Pt(25, bottom)}},
		{3, [2]image.Point{image.Pt(5, top), image.Pt(25, top)}},
		{6, [2]image.Point{image.Pt(5, bottom), image.Pt(25, bottom)}},
	}
	for _, tt := range tests {
		if lines[tt.i] != tt.want {
			t.Errorf("line %d = %v, want %v", tt.i, lines[tt.i], tt.want)
		}
	}
}
