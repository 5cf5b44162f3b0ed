package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var defaultLevels []byte

// ErrUnknownLevel is returned when a level number has no content.
var ErrUnknownLevel = errors.New("unknown level")

// playerPlaceholder is replaced by the player name in every text field.
const playerPlaceholder = "{player}"

// Provider supplies the content the game is built from.
type Provider interface {
	// Game returns the global text content.
	Game() GameConfig
	// Level returns the configuration of level n, or ErrUnknownLevel.
	Level(n int) (LevelConfig, error)
	// HasLevel reports whether level n exists.
	HasLevel(n int) bool
	// Numbers returns every level number in ascending order.
	Numbers() []int
}

// file is the on-disk layout of a content file.
type file struct {
	Game   GameConfig    `yaml:"game"`
	Levels []LevelConfig `yaml:"levels"`
}

// Catalogue is the default Provider, backed by decoded YAML.
type Catalogue struct {
	game    GameConfig
	levels  map[int]LevelConfig
	numbers []int
}

// Default returns the catalogue built from the embedded level content.
func Default() (*Catalogue, error) {
	return Parse(defaultLevels)
}

// Load reads and parses a content file.
func Load(path string) (*Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates and decodes content YAML. Unknown fields and duplicate
// level numbers are rejected.
func Parse(raw []byte) (*Catalogue, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	c := &Catalogue{
		game:   f.Game,
		levels: make(map[int]LevelConfig, len(f.Levels)),
	}
	name := f.Game.PlayerName
	c.game.IntroText1 = substitute(c.game.IntroText1, name)
	c.game.IntroText2 = substitute(c.game.IntroText2, name)
	c.game.GameOverText = substitute(c.game.GameOverText, name)

	for _, lvl := range f.Levels {
		if _, dup := c.levels[lvl.Number]; dup {
			return nil, fmt.Errorf("level %d: defined twice", lvl.Number)
		}
		fillPlayerName(&lvl, name)
		c.levels[lvl.Number] = lvl
		c.numbers = append(c.numbers, lvl.Number)
	}
	sort.Ints(c.numbers)

	return c, nil
}

// fillPlayerName substitutes the player name in every text a level shows:
// story, items, interfaces, device messages and death descriptions.
func fillPlayerName(lvl *LevelConfig, name string) {
	for i := range lvl.Map.PathCells {
		pc := &lvl.Map.PathCells[i]
		pc.StoryText = substitute(pc.StoryText, name)
	}
	for _, items := range [][]ItemConfig{lvl.Map.Tools, lvl.Map.Artifacts} {
		for i := range items {
			items[i].Description = substitute(items[i].Description, name)
		}
	}
	for i := range lvl.System.Interfaces {
		iface := &lvl.System.Interfaces[i]
		iface.Description = substitute(iface.Description, name)
		iface.MsgActionVerb = substitute(iface.MsgActionVerb, name)
	}
	for i := range lvl.System.Devices {
		d := &lvl.System.Devices[i]
		for _, field := range []*string{
			&d.Description,
			&d.MsgActionTrue,
			&d.MsgActionFalse,
			&d.MsgActiveTrue,
			&d.MsgActiveFalse,
			&d.MsgToggleActiveTrue,
			&d.MsgToggleActiveFalse,
			&d.MsgUnmetDependencies,
		} {
			*field = substitute(*field, name)
		}
		if d.Death != nil {
			death := *d.Death
			death.Description = substitute(death.Description, name)
			d.Death = &death
		}
	}
}

// substitute fills in the player name and drops surrounding whitespace
// introduced by YAML block scalars.
func substitute(text, name string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, playerPlaceholder, name))
}

// Game returns the global text content
func (c *Catalogue) Game() GameConfig {
	return c.game
}

// Level returns the configuration for level n
func (c *Catalogue) Level(n int) (LevelConfig, error) {
	lvl, ok := c.levels[n]
	if !ok {
		return LevelConfig{}, fmt.Errorf("level %d: %w", n, ErrUnknownLevel)
	}
	return lvl, nil
}

// HasLevel reports whether level n exists
func (c *Catalogue) HasLevel(n int) bool {
	_, ok := c.levels[n]
	return ok
}

// Numbers returns all level numbers in ascending order
func (c *Catalogue) Numbers() []int {
	out := make([]int, len(c.numbers))
	copy(out, c.numbers)
	return out
}
