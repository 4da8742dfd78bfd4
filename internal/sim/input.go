package sim

import (
	"errors"
	"fmt"
)

// ErrMalformedInput marks an input snapshot the engine refuses to apply.
var ErrMalformedInput = errors.New("sim: malformed input")

// Input is the per-tick intent snapshot.
type Input struct {
	MoveX int // -1 left, 0 none, 1 right
	MoveY int // -1 up, 0 none, 1 down
	Fire  bool
	Pause bool // Toggles pause
}

// Validate reports movement intents outside {-1, 0, 1}.
func (in Input) Validate() error {
	if in.MoveX < -1 || in.MoveX > 1 || in.MoveY < -1 || in.MoveY > 1 {
		return fmt.Errorf("%w: move (%d, %d) outside [-1, 1]", ErrMalformedInput, in.MoveX, in.MoveY)
	}
	return nil
}
