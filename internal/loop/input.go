package loop

import "snake/internal/domain"

type InputType int

const (
	InputSteer InputType = iota
	InputTogglePause
	InputReset
)

func (t InputType) String() string {
	switch t {
	case InputSteer:
		return "steer"
	case InputTogglePause:
		return "toggle-pause"
	case InputReset:
		return "reset"
	}
	return "unknown"
}

type Input struct {
	Type      InputType
	Direction domain.Direction
}

func Steer(dir domain.Direction) Input {
	return Input{Type: InputSteer, Direction: dir}
}

func TogglePause() Input {
	return Input{Type: InputTogglePause}
}

func Reset() Input {
	return Input{Type: InputReset}
}
