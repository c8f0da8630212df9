package types

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var GetFonts = sync.OnceValue(func() *Fonts {
	return &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
})

func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}
