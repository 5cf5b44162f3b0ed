package entities

import (
	"errors"
	"fmt"
)

// ErrInteraction is returned when a disabled device is toggled.
var ErrInteraction = errors.New("device does not respond")

// DependencyError is returned by Toggle when another device is not in the
// state this device requires. Message is the device's unmet dependency text.
type DependencyError struct {
	DeviceID int
	Unmet    []Dependency
	Message  string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("device %d: %d unmet dependencies: %s", e.DeviceID, len(e.Unmet), e.Message)
}

// InterfaceError is returned when an interface cannot be used at all.
type InterfaceError struct {
	InterfaceID int
	Reason      string
}

func (e *InterfaceError) Error() string {
	return fmt.Sprintf("interface %d: %s", e.InterfaceID, e.Reason)
}

// Interface error reasons
const (
	ReasonUnknown  = "unknown interface"
	ReasonDisabled = "interface disabled"
)
