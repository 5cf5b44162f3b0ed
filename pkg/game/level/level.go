// Package level builds playable levels from content: the walkable map and the
// device system, created together and discarded together.
package level

import (
	"errors"
	"fmt"
	"math/rand"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/system"
)

// Level is one playable level.
type Level struct {
	Number int
	Name   string
	Map    *Map
	System *system.System
}

// New builds a level. The random source only seeds component addresses.
func New(cfg content.LevelConfig, rng *rand.Rand) (*Level, error) {
	m, err := NewMap(cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("level %d map: %w", cfg.Number, err)
	}
	sys, err := system.New(cfg.System, rng)
	if err != nil {
		return nil, fmt.Errorf("level %d system: %w", cfg.Number, err)
	}
	for _, d := range sys.Devices() {
		if !m.Bounds.Contains(d.Position) {
			return nil, fmt.Errorf("level %d: device %d at %v outside the map", cfg.Number, d.ID, d.Position)
		}
	}
	for _, i := range sys.Interfaces() {
		if !m.Bounds.Contains(i.Position) {
			return nil, fmt.Errorf("level %d: interface %d at %v outside the map", cfg.Number, i.ID, i.Position)
		}
	}

	return &Level{
		Number: cfg.Number,
		Name:   cfg.Name,
		Map:    m,
		System: sys,
	}, nil
}

// IsComplete returns true when pos is the level exit
func (l *Level) IsComplete(pos world.Coord) bool {
	return pos == l.Map.Exit
}

// Load builds level n from a content provider
func Load(p content.Provider, n int, rng *rand.Rand) (*Level, error) {
	cfg, err := p.Level(n)
	if err != nil {
		return nil, err
	}
	return New(cfg, rng)
}

// ValidateAll builds every level of the provider once and reports all
// failures together.
func ValidateAll(p content.Provider) error {
	rng := rand.New(rand.NewSource(0))
	var errs []error
	for _, n := range p.Numbers() {
		if _, err := Load(p, n, rng); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
