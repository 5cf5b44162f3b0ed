package level

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
)

// PathCell is a walkable cell. Cells with story text show it once, on the
// first visit.
type PathCell struct {
	Coord     world.Coord
	StoryText string
	storySeen bool
}

// HasStory returns true if the cell carries story text
func (c *PathCell) HasStory() bool {
	return c.StoryText != ""
}

// StorySeen returns true once the story has been shown
func (c *PathCell) StorySeen() bool {
	return c.storySeen
}

// MarkStorySeen records that the story was shown. It never reverts.
func (c *PathCell) MarkStorySeen() {
	c.storySeen = true
}

// ItemKind distinguishes tools from artifacts
type ItemKind int

const (
	ItemTool ItemKind = iota
	ItemArtifact
)

// Item is a tool or artifact lying on a path cell
type Item struct {
	Kind        ItemKind
	Type        string
	Name        string
	Description string
	Position    world.Coord
}

// Map is the walkable geometry of a level.
type Map struct {
	Bounds           world.Bounds
	Enter            world.Coord
	Exit             world.Coord
	EnterOrientation world.Direction

	path  mapset.Set[world.Coord]
	cells map[world.Coord]*PathCell
	items []*Item
}

// NewMap builds a map from its content definition. Path cells must lie within
// the map and appear once; the entry, exit and items must be on path cells.
func NewMap(cfg content.MapConfig) (*Map, error) {
	m := &Map{
		Bounds:           world.Bounds{Width: cfg.XDim, Height: cfg.YDim},
		Enter:            world.At(cfg.CoordEnter.X, cfg.CoordEnter.Y),
		Exit:             world.At(cfg.CoordExit.X, cfg.CoordExit.Y),
		EnterOrientation: world.Direction(cfg.OrientationEnter),
		path:             mapset.New[world.Coord](),
		cells:            make(map[world.Coord]*PathCell, len(cfg.PathCells)),
	}
	if !m.Bounds.Valid() {
		return nil, fmt.Errorf("invalid dimensions %dx%d", cfg.XDim, cfg.YDim)
	}
	if !m.EnterOrientation.IsValid() {
		return nil, fmt.Errorf("invalid entry orientation %d", cfg.OrientationEnter)
	}

	for _, pc := range cfg.PathCells {
		c := world.At(pc.Coordinates.X, pc.Coordinates.Y)
		if !m.Bounds.Contains(c) {
			return nil, fmt.Errorf("path cell %v outside %dx%d map", c, cfg.XDim, cfg.YDim)
		}
		if m.path.Has(c) {
			return nil, fmt.Errorf("path cell %v defined twice", c)
		}
		m.path.Put(c)
		m.cells[c] = &PathCell{Coord: c, StoryText: pc.StoryText}
	}

	if !m.IsPath(m.Enter) {
		return nil, fmt.Errorf("entry %v is not a path cell", m.Enter)
	}
	if !m.IsPath(m.Exit) {
		return nil, fmt.Errorf("exit %v is not a path cell", m.Exit)
	}

	if err := m.addItems(ItemTool, cfg.Tools); err != nil {
		return nil, err
	}
	if err := m.addItems(ItemArtifact, cfg.Artifacts); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) addItems(kind ItemKind, cfgs []content.ItemConfig) error {
	for _, ic := range cfgs {
		pos := world.At(ic.X, ic.Y)
		if !m.IsPath(pos) {
			return fmt.Errorf("item %q at %v is not on a path cell", ic.Name, pos)
		}
		m.items = append(m.items, &Item{
			Kind:        kind,
			Type:        ic.Type,
			Name:        ic.Name,
			Description: ic.Description,
			Position:    pos,
		})
	}
	return nil
}

// IsPath returns true if c is a walkable cell
func (m *Map) IsPath(c world.Coord) bool {
	return m.path.Has(c)
}

// Cell returns the path cell at c
func (m *Map) Cell(c world.Coord) (*PathCell, bool) {
	cell, ok := m.cells[c]
	return cell, ok
}

// PendingStory returns the cell at c if it has story text not yet shown
func (m *Map) PendingStory(c world.Coord) (*PathCell, bool) {
	cell, ok := m.cells[c]
	if !ok || !cell.HasStory() || cell.StorySeen() {
		return nil, false
	}
	return cell, true
}

// PathCells returns the walkable coordinates in row-major order
func (m *Map) PathCells() []world.Coord {
	out := make([]world.Coord, 0, m.path.Size())
	m.path.Each(func(c world.Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Items returns the items still lying on the map
func (m *Map) Items() []*Item {
	out := make([]*Item, len(m.items))
	copy(out, m.items)
	return out
}

// TakeItems removes and returns the items lying on c
func (m *Map) TakeItems(c world.Coord) []*Item {
	var taken []*Item
	kept := m.items[:0]
	for _, it := range m.items {
		if it.Position == c {
			taken = append(taken, it)
		} else {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return taken
}
