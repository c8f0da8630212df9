package domain

// Snake keeps its cells head first. HeadDirection is the heading the next
// move will use; moved is the heading of the move already made, so two quick
// turns cannot fold the head back onto the neck between ticks.
type Snake struct {
	Points        []Coord
	HeadDirection Direction

	moved Direction
}

// NewSnake lays length cells out behind head, opposite to heading.
func NewSnake(head Coord, length int, heading Direction) *Snake {
	points := make([]Coord, 0, length)
	back := heading.Opposite().Delta()

	current := head
	for i := 0; i < length; i++ {
		points = append(points, current)
		current = current.Add(back)
	}

	return &Snake{
		Points:        points,
		HeadDirection: heading,
		moved:         heading,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Length() int {
	return len(s.Points)
}

func (s *Snake) Body() []Coord {
	result := make([]Coord, len(s.Points))
	copy(result, s.Points)
	return result
}

func (s *Snake) NextHead(field *Field) Coord {
	return field.Move(s.Head(), s.HeadDirection)
}

// Occupies reports whether c is one of the snake's cells. With vacating set
// the tail is left out because it moves away during the same step.
func (s *Snake) Occupies(c Coord, vacating bool) bool {
	n := len(s.Points)
	if vacating && n > 0 {
		n--
	}
	for _, p := range s.Points[:n] {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	if dir.IsOpposite(s.HeadDirection) || dir.IsOpposite(s.moved) {
		return false
	}
	s.HeadDirection = dir
	return true
}

// Move advances the head one cell. The tail stays in place when ate is set,
// which is how the snake grows.
func (s *Snake) Move(field *Field, ate bool) {
	if len(s.Points) == 0 {
		return
	}

	newHead := s.NextHead(field)
	if ate {
		s.Points = append(s.Points, Coord{})
	}
	copy(s.Points[1:], s.Points[:len(s.Points)-1])
	s.Points[0] = newHead
	s.moved = s.HeadDirection
}
