// Package ui implements the screens of the game as a state machine. Exactly
// one Mode is current; modes render their own text, interpret input and
// request transitions through the Host.
package ui

import (
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/player"
	"alphapoint/pkg/game/renderer"
)

// Kind identifies a mode without a type switch on the concrete value.
type Kind int

const (
	KindStart Kind = iota
	KindLevelSelect
	KindMain
	KindTerminal
	KindStory
	KindLevelComplete
	KindPlayerDead
	KindGameComplete
)

// String returns the mode name
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindLevelSelect:
		return "level-select"
	case KindMain:
		return "main"
	case KindTerminal:
		return "terminal"
	case KindStory:
		return "story"
	case KindLevelComplete:
		return "level-complete"
	case KindPlayerDead:
		return "player-dead"
	case KindGameComplete:
		return "game-complete"
	default:
		return "unknown"
	}
}

// Prompt says how the mode wants to read its next input. Line modes read a
// whole line; the others read a single keypress.
type Prompt struct {
	Line bool
	Text string
}

// Mode is one screen of the game.
type Mode interface {
	Kind() Kind
	// Render builds the full screen text and consumes the pending alert.
	Render() string
	Prompt() Prompt
	// HandleInput interprets one input token. An *Alert error is shown on the
	// next render; any other error is fatal.
	HandleInput(token string) error
	SetAlert(msg string)
	// Effect returns the presentation effect for the next frame.
	Effect() renderer.Effect
}

// Settings are the presentation options modes read from the host.
type Settings struct {
	Width int
	Debug bool
}

// Host is the game as seen by the modes.
type Host interface {
	Content() content.Provider
	Player() *player.Player
	Level() *level.Level
	Settings() Settings
	// StartLevel builds level n fresh and places the player at its entry.
	StartLevel(n int) error
	SetMode(m Mode)
	Mode() Mode
	// Quit ends the game loop.
	Quit()
}

// base carries the one-shot alert shared by every mode.
type base struct {
	host  Host
	alert string
}

// SetAlert replaces the pending alert
func (b *base) SetAlert(msg string) {
	b.alert = msg
}

// takeAlert returns the pending alert, formatted and marked up, and clears it
func (b *base) takeAlert() string {
	msg := b.alert
	b.alert = ""
	if msg == "" {
		return ""
	}
	return markLines(renderer.FuncAlert, wrap(msg, b.width()))
}

func (b *base) width() int {
	if w := b.host.Settings().Width; w > 0 {
		return w
	}
	return DefaultWidth
}

func (b *base) separator() string {
	return separator(b.width())
}

// Effect is EffectNone unless a mode overrides it
func (b *base) Effect() renderer.Effect {
	return renderer.EffectNone
}

// startLevel builds level n and switches to the main screen
func startLevel(h Host, n int) error {
	if err := h.StartLevel(n); err != nil {
		return err
	}
	h.SetMode(NewMain(h))
	return nil
}
