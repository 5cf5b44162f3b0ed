package ui

import (
	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/game/locale"
)

// LevelComplete is shown on reaching an exit when a next level exists.
type LevelComplete struct {
	base
}

// NewLevelComplete creates the level complete screen
func NewLevelComplete(h Host) *LevelComplete {
	return &LevelComplete{base: base{host: h}}
}

func (m *LevelComplete) Kind() Kind { return KindLevelComplete }

func (m *LevelComplete) Render() string {
	return screen(
		"\n"+locale.Get("CMD_MAIN_MENU"),
		m.separator(),
		locale.Get("LEVEL_COMPLETE"),
		locale.Get("OPTION_NEXT_LEVEL")+"\n"+locale.Get("OPTION_RESTART_LEVEL"),
		m.takeAlert(),
		m.separator(),
	)
}

func (m *LevelComplete) Prompt() Prompt {
	return Prompt{Line: true, Text: locale.Get("CHOOSE_OPTION")}
}

func (m *LevelComplete) HandleInput(token string) error {
	current := m.host.Level().Number
	switch token {
	case "1":
		if !m.host.Content().HasLevel(current + 1) {
			return alertf("ALERT_LAST_LEVEL")
		}
		return startLevel(m.host, current+1)
	case "2":
		return startLevel(m.host, current)
	}
	if input.MapToIntent(token).Action == input.ActionQuit {
		m.host.SetMode(NewLevelSelect(m.host))
		return nil
	}
	return alertf("ALERT_NOT_AN_OPTION")
}

// PlayerDead is shown when a lethal device is active.
type PlayerDead struct {
	base
	message string
}

// NewPlayerDead creates the death screen with the lethal device's description
func NewPlayerDead(h Host, message string) *PlayerDead {
	return &PlayerDead{base: base{host: h}, message: message}
}

func (m *PlayerDead) Kind() Kind { return KindPlayerDead }

func (m *PlayerDead) Render() string {
	return screen(
		"\n"+locale.Get("CMD_RESTART")+"\n"+locale.Get("CMD_MAIN_MENU"),
		m.separator(),
		wrap(m.message, m.width()),
		m.takeAlert(),
		m.separator(),
	)
}

func (m *PlayerDead) Prompt() Prompt {
	return Prompt{Line: true, Text: locale.Get("WHAT_WOULD_YOU_LIKE")}
}

func (m *PlayerDead) HandleInput(token string) error {
	switch input.MapToIntent(token).Action {
	case input.ActionRestart:
		return startLevel(m.host, m.host.Level().Number)
	case input.ActionQuit:
		m.host.SetMode(NewLevelSelect(m.host))
		return nil
	}
	return alertf("ALERT_NOT_AN_OPTION")
}

// GameComplete is shown on reaching the exit of the last level.
type GameComplete struct {
	base
}

// NewGameComplete creates the game over screen
func NewGameComplete(h Host) *GameComplete {
	return &GameComplete{base: base{host: h}}
}

func (m *GameComplete) Kind() Kind { return KindGameComplete }

func (m *GameComplete) Render() string {
	m.alert = ""
	text := wrap(m.host.Content().Game().GameOverText, m.width())
	return "\n" + screen(m.separator(), text, m.separator())
}

func (m *GameComplete) Prompt() Prompt {
	return Prompt{Text: locale.Get("PRESS_ENTER_MENU")}
}

func (m *GameComplete) HandleInput(string) error {
	m.host.SetMode(NewLevelSelect(m.host))
	return nil
}
