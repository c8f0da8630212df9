package domain

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirectionUp, DirectionDown},
		{DirectionDown, DirectionUp},
		{DirectionLeft, DirectionRight},
		{DirectionRight, DirectionLeft},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
		if !tt.dir.IsOpposite(tt.want) {
			t.Errorf("%v.IsOpposite(%v) = false", tt.dir, tt.want)
		}
		if tt.dir.IsOpposite(tt.dir) {
			t.Errorf("%v.IsOpposite(itself) = true", tt.dir)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirectionUp, Coord{0, -1}},
		{DirectionDown, Coord{0, 1}},
		{DirectionLeft, Coord{-1, 0}},
		{DirectionRight, Coord{1, 0}},
		{Direction(0), Coord{}},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"Up", "down", " LEFT ", "right"} {
		d, err := ParseDirection(name)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", name, err)
		}
		if !d.Valid() {
			t.Errorf("ParseDirection(%q) = %v, not valid", name, d)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
