// Package entities contains the controllable objects of a level: devices such
// as doors and valves, and the interfaces (buttons, switches, terminals) the
// player uses to toggle them.
package entities

import (
	"fmt"
	"math/rand"
	"strings"

	"alphapoint/pkg/engine/world"
)

// Default messages shared by every component.
const (
	DefaultMsgEnabled  = "Something happened."
	DefaultMsgDisabled = "Nothing happened."
)

// Component holds the state common to devices and interfaces.
type Component struct {
	ID          int
	Name        string
	Description string
	Enabled     bool
	Visible     bool
	Interactive bool
	Orientation world.Direction
	Address     string // flavour text only, not guaranteed unique
	MsgEnabled  string
	MsgDisabled string
}

// newComponent fills in the shared defaults. Components start hidden; the
// system reveals them as the player approaches.
func newComponent(id int, name, description string, enabled bool, rng *rand.Rand) Component {
	return Component{
		ID:          id,
		Name:        name,
		Description: description,
		Enabled:     enabled,
		Interactive: true,
		Address:     FormatAddress(rng),
		MsgEnabled:  DefaultMsgEnabled,
		MsgDisabled: DefaultMsgDisabled,
	}
}

// String returns the component name
func (c *Component) String() string {
	return c.Name
}

// Slug returns the name in lower case with dashes instead of spaces, as used
// in terminal host names.
func (c *Component) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(c.Name)), "-")
}

// FormatAddress returns six colon separated groups of four hex digits drawn
// from rng, e.g. "0a1f:93bc:0000:ffff:1234:beef".
func FormatAddress(rng *rand.Rand) string {
	groups := make([]string, 6)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", rng.Intn(0x10000))
	}
	return strings.Join(groups, ":")
}
