// Package player tracks the player on the current level: position, facing,
// inventory and the numbered actions available from where they stand.
package player

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/entities"
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/logger"
)

// Action is a numbered interface the player can use from the current cell.
type Action struct {
	Key       int
	Interface *entities.Interface
}

// Description returns the text listed next to the action key
func (a Action) Description() string {
	return a.Interface.ActionDescription()
}

// Outcome is the result of using an action. Terminal is set when the action
// opens a terminal session instead of toggling devices directly.
type Outcome struct {
	Terminal *entities.Interface
	Messages []string
}

// Player is the player character.
type Player struct {
	Name        string
	Position    world.Coord
	Orientation world.Direction

	inventory mapset.Set[string]
	items     []string
	actions   map[int]Action
	lvl       *level.Level
}

// New creates a player who is not on any level yet
func New(name string) *Player {
	return &Player{
		Name:      name,
		inventory: mapset.New[string](),
		actions:   make(map[int]Action),
	}
}

// Enter places the player at a level's entry with an empty inventory. Items
// lying on the entry cell are picked up straight away.
func (p *Player) Enter(l *level.Level) []*level.Item {
	p.lvl = l
	p.Position = l.Map.Enter
	p.Orientation = l.Map.EnterOrientation
	p.inventory = mapset.New[string]()
	p.items = nil
	picked := p.pickUp()
	p.Refresh()
	return picked
}

// Level returns the level the player is on
func (p *Player) Level() *level.Level {
	return p.lvl
}

// Move steps one cell in direction d and turns to face it. It fails with
// *MoveError, leaving position and orientation unchanged, when the
// destination is not a path cell or a closed door stands on it. Items on the
// new cell are picked up and returned.
func (p *Player) Move(d world.Direction) ([]*level.Item, error) {
	to := p.Position.Step(d)
	if !p.lvl.Map.IsPath(to) {
		return nil, &MoveError{From: p.Position, To: to, Reason: "not a path cell"}
	}
	for _, dev := range p.lvl.System.DevicesAt(to) {
		if dev.Blocks() {
			return nil, &MoveError{From: p.Position, To: to, Reason: "blocked by the " + dev.Name}
		}
	}

	p.Position = to
	p.Orientation = d
	picked := p.pickUp()
	p.Refresh()

	logger.Log.WithFields(logrus.Fields{
		"x":      to.X,
		"y":      to.Y,
		"facing": d.String(),
	}).Debug("player moved")
	return picked, nil
}

// MoveUp moves one cell north
func (p *Player) MoveUp() ([]*level.Item, error) { return p.Move(world.North) }

// MoveRight moves one cell east
func (p *Player) MoveRight() ([]*level.Item, error) { return p.Move(world.East) }

// MoveDown moves one cell south
func (p *Player) MoveDown() ([]*level.Item, error) { return p.Move(world.South) }

// MoveLeft moves one cell west
func (p *Player) MoveLeft() ([]*level.Item, error) { return p.Move(world.West) }

func (p *Player) pickUp() []*level.Item {
	picked := p.lvl.Map.TakeItems(p.Position)
	for _, it := range picked {
		if !p.inventory.Has(it.Name) {
			p.inventory.Put(it.Name)
			p.items = append(p.items, it.Name)
		}
	}
	return picked
}

// Refresh recomputes what the player can see and the numbered actions. Keys
// run from 1 in ascending interface id order, skipping non-interactive
// interfaces. Facing only changes which devices are visible; reach depends
// on each interface's own orientation.
func (p *Player) Refresh() {
	sys := p.lvl.System
	sys.UpdateVisibility(p.Position, p.Orientation)

	p.actions = make(map[int]Action)
	key := 0
	for _, iface := range sys.InterfacesReachableFrom(p.Position) {
		if !iface.Interactive {
			continue
		}
		key++
		p.actions[key] = Action{Key: key, Interface: iface}
	}
}

// Actions returns the available actions ordered by key
func (p *Player) Actions() []Action {
	out := make([]Action, 0, len(p.actions))
	for _, a := range p.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// DoAction uses the action bound to key. Unknown keys fail with
// *ActionError and disabled interfaces with *entities.InterfaceError. A
// terminal is not activated here; the outcome asks for a terminal session.
func (p *Player) DoAction(key int) (Outcome, error) {
	a, ok := p.actions[key]
	if !ok {
		return Outcome{}, &ActionError{Key: key}
	}
	iface := a.Interface
	if iface.IsTerminal() {
		if !iface.Enabled {
			return Outcome{}, &entities.InterfaceError{InterfaceID: iface.ID, Reason: entities.ReasonDisabled}
		}
		return Outcome{Terminal: iface}, nil
	}

	sys := p.lvl.System
	results, err := sys.Activate(iface.ID)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{}
	for _, r := range results {
		if msg := r.Text(sys); msg != "" {
			out.Messages = append(out.Messages, msg)
		}
	}
	if len(results) == 0 {
		out.Messages = append(out.Messages, iface.MsgDisabled)
	} else if len(out.Messages) == 0 {
		out.Messages = append(out.Messages, iface.MsgEnabled)
	}
	p.Refresh()
	return out, nil
}

// ReportVisibleObjects describes the visible interfaces and the state of the
// visible devices, one sentence per line.
func (p *Player) ReportVisibleObjects() string {
	var lines []string
	for _, iface := range p.lvl.System.Interfaces() {
		if iface.Visible {
			lines = append(lines, locale.Getf("REPORT_INTERFACE", iface.Description))
		}
	}
	for _, dev := range p.lvl.System.Devices() {
		if dev.Visible {
			if s := dev.DescribeState(); s != "" {
				lines = append(lines, s)
			}
		}
	}
	if len(lines) == 0 {
		return locale.Get("REPORT_NOTHING")
	}
	return strings.Join(lines, "\n")
}

// Inventory returns the collected item names in pickup order
func (p *Player) Inventory() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

// Has returns true if the player carries an item with this name
func (p *Player) Has(name string) bool {
	return p.inventory.Has(name)
}

// Cell returns the path cell the player stands on
func (p *Player) Cell() *level.PathCell {
	c, _ := p.lvl.Map.Cell(p.Position)
	return c
}
