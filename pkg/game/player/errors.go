package player

import (
	"fmt"

	"alphapoint/pkg/engine/world"
)

// MoveError is returned when the player cannot enter a cell.
type MoveError struct {
	From   world.Coord
	To     world.Coord
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move from %v to %v: %s", e.From, e.To, e.Reason)
}

// ActionError is returned for an action key that is not currently available.
type ActionError struct {
	Key int
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("no action %d", e.Key)
}
