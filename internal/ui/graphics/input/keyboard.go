// Package input maps ebiten key presses to game commands.
package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var steerKeys = []struct {
	dir  domain.Direction
	keys []ebiten.Key
}{
	{domain.DirectionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{domain.DirectionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{domain.DirectionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{domain.DirectionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Direction returns the steer key pressed this frame, or 0.
func (kh *KeyboardHandler) Direction() domain.Direction {
	for _, binding := range steerKeys {
		if justPressed(binding.keys...) {
			return binding.dir
		}
	}
	return 0
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func IsPausePressed() bool  { return justPressed(ebiten.KeyP, ebiten.KeySpace) }
func IsRetryPressed() bool  { return justPressed(ebiten.KeyR) }
func IsEscapePressed() bool { return justPressed(ebiten.KeyEscape) }
func IsEnterPressed() bool  { return justPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) }
func IsQuitPressed() bool   { return justPressed(ebiten.KeyQ) }
func IsGridPressed() bool   { return justPressed(ebiten.KeyG) }
