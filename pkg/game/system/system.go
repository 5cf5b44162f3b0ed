// Package system owns the devices and interfaces of one level and the links
// between them. It resolves interface activations into device toggles and
// evaluates the level's death conditions.
package system

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/entities"
	"alphapoint/pkg/logger"
)

// ErrNoDeath is returned by Death when no device is in its lethal state.
var ErrNoDeath = errors.New("no lethal device")

// Link connects an interface to a device it toggles.
type Link struct {
	InterfaceID int
	DeviceID    int
}

// ToggleResult is the outcome of toggling one linked device during an
// activation. Err is nil on success, in which case Message is the device's
// transition text.
type ToggleResult struct {
	DeviceID int
	Message  string
	Err      error
}

// OK reports whether the toggle succeeded
func (r ToggleResult) OK() bool {
	return r.Err == nil
}

// Text returns the player-facing message for the result: the transition
// text on success, the unmet dependency text or the device's disabled text
// on failure.
func (r ToggleResult) Text(s *System) string {
	if r.Err == nil {
		return r.Message
	}
	var depErr *entities.DependencyError
	if errors.As(r.Err, &depErr) {
		return depErr.Message
	}
	if d, ok := s.Device(r.DeviceID); ok {
		return d.MsgDisabled
	}
	return r.Err.Error()
}

// System is the device/interface graph of a level.
type System struct {
	devices    map[int]*entities.Device
	interfaces map[int]*entities.Interface
	links      []Link

	deviceIDs    []int
	interfaceIDs []int
	byInterface  map[int][]int
	byDevice     map[int][]int
}

// New builds a system from its content definition. Duplicate ids, links to
// missing components and dependencies on missing devices are rejected.
func New(cfg content.SystemConfig, rng *rand.Rand) (*System, error) {
	s := &System{
		devices:     make(map[int]*entities.Device, len(cfg.Devices)),
		interfaces:  make(map[int]*entities.Interface, len(cfg.Interfaces)),
		byInterface: make(map[int][]int),
		byDevice:    make(map[int][]int),
	}

	for _, dc := range cfg.Devices {
		if _, dup := s.devices[dc.ID]; dup {
			return nil, fmt.Errorf("device %d: defined twice", dc.ID)
		}
		s.devices[dc.ID] = entities.NewDevice(dc, rng)
		s.deviceIDs = append(s.deviceIDs, dc.ID)
	}
	for _, ic := range cfg.Interfaces {
		if _, dup := s.interfaces[ic.ID]; dup {
			return nil, fmt.Errorf("interface %d: defined twice", ic.ID)
		}
		iface, err := entities.NewInterface(ic, rng)
		if err != nil {
			return nil, err
		}
		s.interfaces[ic.ID] = iface
		s.interfaceIDs = append(s.interfaceIDs, ic.ID)
	}
	sort.Ints(s.deviceIDs)
	sort.Ints(s.interfaceIDs)

	for _, id := range s.deviceIDs {
		for _, dep := range s.devices[id].Dependencies {
			if _, ok := s.devices[dep.DeviceID]; !ok {
				return nil, fmt.Errorf("device %d: dependency on unknown device %d", id, dep.DeviceID)
			}
		}
	}

	seen := make(map[Link]bool, len(cfg.Links))
	for _, lc := range cfg.Links {
		link := Link{InterfaceID: lc.InterfaceID, DeviceID: lc.DeviceID}
		if _, ok := s.interfaces[link.InterfaceID]; !ok {
			return nil, fmt.Errorf("link %d->%d: unknown interface", link.InterfaceID, link.DeviceID)
		}
		if _, ok := s.devices[link.DeviceID]; !ok {
			return nil, fmt.Errorf("link %d->%d: unknown device", link.InterfaceID, link.DeviceID)
		}
		if seen[link] {
			return nil, fmt.Errorf("link %d->%d: defined twice", link.InterfaceID, link.DeviceID)
		}
		seen[link] = true
		s.links = append(s.links, link)
		s.byInterface[link.InterfaceID] = append(s.byInterface[link.InterfaceID], link.DeviceID)
		s.byDevice[link.DeviceID] = append(s.byDevice[link.DeviceID], link.InterfaceID)
	}

	return s, nil
}

// Device returns the device with the given id
func (s *System) Device(id int) (*entities.Device, bool) {
	d, ok := s.devices[id]
	return d, ok
}

// Interface returns the interface with the given id
func (s *System) Interface(id int) (*entities.Interface, bool) {
	i, ok := s.interfaces[id]
	return i, ok
}

// Devices returns all devices in ascending id order
func (s *System) Devices() []*entities.Device {
	out := make([]*entities.Device, 0, len(s.deviceIDs))
	for _, id := range s.deviceIDs {
		out = append(out, s.devices[id])
	}
	return out
}

// Interfaces returns all interfaces in ascending id order
func (s *System) Interfaces() []*entities.Interface {
	out := make([]*entities.Interface, 0, len(s.interfaceIDs))
	for _, id := range s.interfaceIDs {
		out = append(out, s.interfaces[id])
	}
	return out
}

// Links returns the links in registration order
func (s *System) Links() []Link {
	out := make([]Link, len(s.links))
	copy(out, s.links)
	return out
}

// DevicesFor returns the devices linked to an interface, in link order
func (s *System) DevicesFor(interfaceID int) []*entities.Device {
	ids := s.byInterface[interfaceID]
	out := make([]*entities.Device, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.devices[id])
	}
	return out
}

// InterfacesFor returns the interfaces that can trigger a device, in link order
func (s *System) InterfacesFor(deviceID int) []*entities.Interface {
	ids := s.byDevice[deviceID]
	out := make([]*entities.Interface, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.interfaces[id])
	}
	return out
}

// Activate uses an interface: every linked device is toggled in link order and
// each outcome is collected independently, so the result always has one entry
// per link. An unknown or disabled interface fails with *entities.InterfaceError
// before any device is touched.
func (s *System) Activate(interfaceID int) ([]ToggleResult, error) {
	iface, ok := s.interfaces[interfaceID]
	if !ok {
		return nil, &entities.InterfaceError{InterfaceID: interfaceID, Reason: entities.ReasonUnknown}
	}
	if !iface.Enabled {
		return nil, &entities.InterfaceError{InterfaceID: interfaceID, Reason: entities.ReasonDisabled}
	}

	ids := s.byInterface[interfaceID]
	results := make([]ToggleResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, s.toggle(id))
	}

	logger.Log.WithFields(logrus.Fields{
		"interface": iface.Name,
		"toggles":   len(results),
	}).Debug("interface activated")

	return results, nil
}

// ToggleDevice toggles a single device directly, as a terminal does.
func (s *System) ToggleDevice(deviceID int) ToggleResult {
	if _, ok := s.devices[deviceID]; !ok {
		return ToggleResult{DeviceID: deviceID, Err: fmt.Errorf("device %d: unknown", deviceID)}
	}
	return s.toggle(deviceID)
}

func (s *System) toggle(deviceID int) ToggleResult {
	d := s.devices[deviceID]
	msg, err := d.Toggle(s)
	logger.Log.WithFields(logrus.Fields{
		"device": d.Name,
		"active": d.Active,
		"ok":     err == nil,
	}).Debug("device toggle")
	return ToggleResult{DeviceID: deviceID, Message: msg, Err: err}
}

// KillsPlayer reports whether any device is currently in its lethal state
func (s *System) KillsPlayer() bool {
	for _, id := range s.deviceIDs {
		if s.devices[id].IsLethal() {
			return true
		}
	}
	return false
}

// Death returns the description of the first lethal device in id order, or
// ErrNoDeath when nothing is lethal.
func (s *System) Death() (string, error) {
	for _, id := range s.deviceIDs {
		if d := s.devices[id]; d.IsLethal() {
			return d.Death.Description, nil
		}
	}
	return "", ErrNoDeath
}

// DevicesAt returns the devices positioned on a cell, in id order
func (s *System) DevicesAt(c world.Coord) []*entities.Device {
	var out []*entities.Device
	for _, id := range s.deviceIDs {
		if d := s.devices[id]; d.Position == c {
			out = append(out, d)
		}
	}
	return out
}

// Blocked reports whether a device on the cell stops the player entering it
func (s *System) Blocked(c world.Coord) bool {
	for _, d := range s.DevicesAt(c) {
		if d.Blocks() {
			return true
		}
	}
	return false
}

// InterfacesReachableFrom returns the interfaces usable from a cell, in id order
func (s *System) InterfacesReachableFrom(c world.Coord) []*entities.Interface {
	var out []*entities.Interface
	for _, id := range s.interfaceIDs {
		if i := s.interfaces[id]; i.ReachableFrom(c) {
			out = append(out, i)
		}
	}
	return out
}

// UpdateVisibility reveals what a player standing at pos and facing the
// given direction can see: interfaces usable from pos, and devices on pos or
// on the faced cell. Everything else is hidden.
func (s *System) UpdateVisibility(pos world.Coord, facing world.Direction) {
	ahead := pos.Step(facing)
	for _, i := range s.interfaces {
		i.Visible = i.ReachableFrom(pos)
	}
	for _, d := range s.devices {
		d.Visible = d.Position == pos || d.Position == ahead
	}
}
