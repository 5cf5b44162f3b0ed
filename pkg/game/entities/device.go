package entities

import (
	"math/rand"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
)

// DeviceTypeDoor is the device type that blocks movement while closed.
const DeviceTypeDoor = "door"

// Dependency requires device DeviceID to have Active == ActiveState.
type Dependency struct {
	DeviceID    int
	ActiveState bool
}

// DeathCondition makes a device lethal while its Active equals ActiveState.
type DeathCondition struct {
	ActiveState bool
	Description string
}

// DeviceLookup resolves device ids to devices. The System implements it.
type DeviceLookup interface {
	Device(id int) (*Device, bool)
}

// Device is a controllable object with a boolean state gated by dependencies
// on other devices of the same system.
type Device struct {
	Component
	Type         string
	Position     world.Coord
	Active       bool
	Dependencies []Dependency
	Death        *DeathCondition

	MsgActionTrue        string
	MsgActionFalse       string
	MsgActiveTrue        string
	MsgActiveFalse       string
	MsgToggleActiveTrue  string
	MsgToggleActiveFalse string
	MsgUnmetDependencies string
}

// NewDevice builds a device from its content definition
func NewDevice(cfg content.DeviceConfig, rng *rand.Rand) *Device {
	d := &Device{
		Component:            newComponent(cfg.ID, cfg.Name, cfg.Description, cfg.Enabled, rng),
		Type:                 cfg.Type,
		Position:             world.At(cfg.X, cfg.Y),
		Active:               cfg.Active,
		MsgActionTrue:        cfg.MsgActionTrue,
		MsgActionFalse:       cfg.MsgActionFalse,
		MsgActiveTrue:        cfg.MsgActiveTrue,
		MsgActiveFalse:       cfg.MsgActiveFalse,
		MsgToggleActiveTrue:  cfg.MsgToggleActiveTrue,
		MsgToggleActiveFalse: cfg.MsgToggleActiveFalse,
		MsgUnmetDependencies: cfg.MsgUnmetDependencies,
	}
	for _, dep := range cfg.Dependencies {
		d.Dependencies = append(d.Dependencies, Dependency{DeviceID: dep.DeviceID, ActiveState: dep.ActiveState})
	}
	if cfg.Death != nil {
		d.Death = &DeathCondition{ActiveState: cfg.Death.ActiveState, Description: cfg.Death.Description}
	}
	return d
}

// UnmetDependencies returns the dependencies that do not currently hold, in
// declaration order. A dependency on a device the lookup cannot find is unmet.
func (d *Device) UnmetDependencies(lookup DeviceLookup) []Dependency {
	var unmet []Dependency
	for _, dep := range d.Dependencies {
		other, ok := lookup.Device(dep.DeviceID)
		if !ok || other.Active != dep.ActiveState {
			unmet = append(unmet, dep)
		}
	}
	return unmet
}

// Toggle flips the device state and returns the transition message.
// A disabled device fails with ErrInteraction and a device with unmet
// dependencies fails with *DependencyError; in both cases Active is unchanged.
func (d *Device) Toggle(lookup DeviceLookup) (string, error) {
	if !d.Enabled {
		return "", ErrInteraction
	}
	if unmet := d.UnmetDependencies(lookup); len(unmet) > 0 {
		return "", &DependencyError{DeviceID: d.ID, Unmet: unmet, Message: d.MsgUnmetDependencies}
	}

	d.Active = !d.Active
	if d.Active {
		return d.MsgToggleActiveTrue, nil
	}
	return d.MsgToggleActiveFalse, nil
}

// DescribeState returns the static message for the current state
func (d *Device) DescribeState() string {
	if d.Active {
		return d.MsgActiveTrue
	}
	return d.MsgActiveFalse
}

// ActionLabel returns the verb the next toggle would perform ("open" for a
// closed door)
func (d *Device) ActionLabel() string {
	if d.Active {
		return d.MsgActionFalse
	}
	return d.MsgActionTrue
}

// Blocks reports whether the device stops the player entering its cell.
// Doors block while closed, whether or not they are enabled.
func (d *Device) Blocks() bool {
	return d.Type == DeviceTypeDoor && !d.Active
}

// IsLethal reports whether the device is currently in its lethal state
func (d *Device) IsLethal() bool {
	return d.Death != nil && d.Active == d.Death.ActiveState
}
