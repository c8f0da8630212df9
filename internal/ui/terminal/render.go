package terminal

import (
	"fmt"
	"strings"

	"snake/internal/domain"
)

const (
	glyphWall  = '#'
	glyphEmpty = ' '
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphFood  = '*'
)

// RenderBoard draws one character per cell inside a wall border.
func RenderBoard(snap domain.Snapshot) string {
	if snap.Width <= 0 || snap.Height <= 0 {
		return ""
	}

	rows := make([][]rune, snap.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(string(glyphEmpty), snap.Width))
	}

	put := func(c domain.Coord, r rune) {
		if c.X >= 0 && c.X < snap.Width && c.Y >= 0 && c.Y < snap.Height {
			rows[c.Y][c.X] = r
		}
	}

	if snap.HasFood {
		put(snap.Food, glyphFood)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(snap.Snake[i], glyphHead)
		} else {
			put(snap.Snake[i], glyphBody)
		}
	}

	border := strings.Repeat(string(glyphWall), snap.Width+2)

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteRune(glyphWall)
		sb.WriteString(string(row))
		sb.WriteRune(glyphWall)
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteByte('\n')
	return sb.String()
}

func statusLine(snap domain.Snapshot, best int) string {
	return fmt.Sprintf("Score: %d   Best: %d   Length: %d", snap.Score, best, snap.Length())
}
