package ui

import (
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/game/renderer"
)

// Story shows the one-time text of a path cell. Any input marks it seen and
// restores the precedent mode.
type Story struct {
	base
	cell      *level.PathCell
	precedent Mode
}

// NewStory creates a story screen for cell
func NewStory(h Host, cell *level.PathCell, precedent Mode) *Story {
	return &Story{base: base{host: h}, cell: cell, precedent: precedent}
}

func (m *Story) Kind() Kind { return KindStory }

// Precedent returns the mode restored when the story is dismissed
func (m *Story) Precedent() Mode {
	return m.precedent
}

func (m *Story) Render() string {
	m.alert = ""
	return "\n" + screen(m.separator(), wrap(m.cell.StoryText, m.width()), m.separator())
}

func (m *Story) Prompt() Prompt {
	return Prompt{Text: locale.Get("PRESS_ENTER")}
}

func (m *Story) HandleInput(string) error {
	m.cell.MarkStorySeen()
	m.host.SetMode(m.precedent)
	return nil
}

func (m *Story) Effect() renderer.Effect {
	return renderer.EffectReveal
}
