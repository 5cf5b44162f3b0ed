package ui

import (
	"fmt"
	"strconv"
	"strings"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/game/locale"
)

// LevelSelect lists the playable levels and starts the chosen one.
type LevelSelect struct {
	base
	confirmExit bool
}

// NewLevelSelect creates the level selection screen
func NewLevelSelect(h Host) *LevelSelect {
	return &LevelSelect{base: base{host: h}}
}

func (m *LevelSelect) Kind() Kind { return KindLevelSelect }

// Listed returns the level numbers offered to the player. Levels below one
// are test content and only listed in debug mode.
func (m *LevelSelect) Listed() []int {
	var out []int
	for _, n := range m.host.Content().Numbers() {
		if n > 0 || m.host.Settings().Debug {
			out = append(out, n)
		}
	}
	return out
}

func (m *LevelSelect) Render() string {
	var names []string
	for _, n := range m.Listed() {
		cfg, err := m.host.Content().Level(n)
		if err != nil {
			continue
		}
		names = append(names, option(strconv.Itoa(n), cfg.Name, m.width()))
	}

	return screen(
		"\n"+locale.Get("CMD_LEAVE_GAME"),
		m.separator(),
		strings.Join(names, "\n"),
		m.takeAlert(),
		m.separator(),
	)
}

func (m *LevelSelect) Prompt() Prompt {
	if m.confirmExit {
		return Prompt{Line: true, Text: locale.Get("CONFIRM_EXIT")}
	}
	return Prompt{Line: true, Text: locale.Get("CHOOSE_LEVEL")}
}

func (m *LevelSelect) HandleInput(token string) error {
	if m.confirmExit {
		m.confirmExit = false
		if input.MapToIntent(token).Action == input.ActionConfirm {
			m.host.Quit()
		}
		return nil
	}

	if n, ok := m.parseLevel(token); ok {
		if !m.host.Content().HasLevel(n) {
			return alertf("ALERT_INVALID_LEVEL")
		}
		if err := startLevel(m.host, n); err != nil {
			return fmt.Errorf("start level %d: %w", n, err)
		}
		return nil
	}

	if input.MapToIntent(token).Action == input.ActionQuit {
		m.confirmExit = true
		return nil
	}
	return alertf("ALERT_NOT_AN_OPTION")
}

// parseLevel accepts digits only, or any integer in debug mode so negative
// test levels can be chosen.
func (m *LevelSelect) parseLevel(token string) (int, bool) {
	if intent := input.MapToIntent(token); intent.Action == input.ActionSelect {
		return intent.Index, true
	}
	if m.host.Settings().Debug {
		if n, err := strconv.Atoi(token); err == nil {
			return n, true
		}
	}
	return 0, false
}
