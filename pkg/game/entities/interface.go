package entities

import (
	"fmt"
	"math/rand"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
)

// InterfaceType selects how an interface is reached and what using it does.
type InterfaceType string

// Interface types
const (
	InterfaceButton       InterfaceType = "button"
	InterfaceToggleSwitch InterfaceType = "toggleswitch"
	InterfaceHandwheel    InterfaceType = "handwheel"
	InterfaceTerminal     InterfaceType = "terminal"
	InterfacePad          InterfaceType = "pad"
)

// WallMounted reports whether the interface is used from the cell it faces
// rather than from its own cell.
func (t InterfaceType) WallMounted() bool {
	switch t {
	case InterfaceButton, InterfaceToggleSwitch, InterfaceHandwheel, InterfaceTerminal:
		return true
	}
	return false
}

// Known reports whether t is one of the supported interface types
func (t InterfaceType) Known() bool {
	return t.WallMounted() || t == InterfacePad
}

// Interface is a player-facing fixture linked to one or more devices.
type Interface struct {
	Component
	Type          InterfaceType
	Position      world.Coord
	MsgActionVerb string
}

// NewInterface builds an interface from its content definition. Unknown types
// and orientations outside 0..3 are rejected.
func NewInterface(cfg content.InterfaceConfig, rng *rand.Rand) (*Interface, error) {
	typ := InterfaceType(cfg.Type)
	if !typ.Known() {
		return nil, fmt.Errorf("interface %d: unknown type %q", cfg.ID, cfg.Type)
	}
	orientation := world.Direction(cfg.Orientation)
	if !orientation.IsValid() {
		return nil, fmt.Errorf("interface %d: invalid orientation %d", cfg.ID, cfg.Orientation)
	}

	i := &Interface{
		Component:     newComponent(cfg.ID, cfg.Name, cfg.Description, cfg.Enabled, rng),
		Type:          typ,
		Position:      world.At(cfg.X, cfg.Y),
		MsgActionVerb: cfg.MsgActionVerb,
	}
	i.Orientation = orientation
	if cfg.Interactive != nil {
		i.Interactive = *cfg.Interactive
	}
	return i, nil
}

// UseCell returns the cell the player must stand on to use the interface
func (i *Interface) UseCell() world.Coord {
	if i.Type.WallMounted() {
		return i.Position.Step(i.Orientation)
	}
	return i.Position
}

// ReachableFrom reports whether a player standing at c can use the interface
func (i *Interface) ReachableFrom(c world.Coord) bool {
	return i.UseCell() == c
}

// IsTerminal reports whether using the interface opens a terminal session
func (i *Interface) IsTerminal() bool {
	return i.Type == InterfaceTerminal
}

// ActionDescription returns the action text shown to the player, e.g.
// "push the exit door button".
func (i *Interface) ActionDescription() string {
	return i.MsgActionVerb + " the " + i.Name
}
