package domain

// Field is the bounded playfield. Unlike a torus, stepping off an edge is a
// wall collision.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}

// Interior reports whether c lies in the food area [margin, W-margin] x
// [margin, H-margin], both ends inclusive: columns 3..37 on a 40 wide board.
func (f *Field) Interior(c Coord, margin int) bool {
	return f.Contains(c) &&
		c.X >= margin && c.X <= f.Width-margin &&
		c.Y >= margin && c.Y <= f.Height-margin
}
