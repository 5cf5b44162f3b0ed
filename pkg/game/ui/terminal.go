package ui

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/game/entities"
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/game/renderer"
	"alphapoint/pkg/logger"
)

// Terminal is a session on a terminal interface. It offers one action per
// linked device and returns to the precedent mode on 'q'.
type Terminal struct {
	base
	terminal  *entities.Interface
	precedent Mode
	flickered bool
}

// NewTerminal opens a session on iface, returning to precedent when left
func NewTerminal(h Host, iface *entities.Interface, precedent Mode) *Terminal {
	logger.Log.WithFields(logrus.Fields{
		"terminal": iface.Name,
		"address":  iface.Address,
	}).Info("terminal session opened")
	return &Terminal{base: base{host: h}, terminal: iface, precedent: precedent}
}

func (m *Terminal) Kind() Kind { return KindTerminal }

// Precedent returns the mode restored when the session ends
func (m *Terminal) Precedent() Mode {
	return m.precedent
}

// devices returns the devices controlled from this terminal, in link order
func (m *Terminal) devices() []*entities.Device {
	return m.host.Level().System.DevicesFor(m.terminal.ID)
}

func (m *Terminal) Render() string {
	var lines []string
	for i, d := range m.devices() {
		lines = append(lines, option(strconv.Itoa(i+1), d.ActionLabel()+" the "+d.Name, m.width()))
	}

	return screen(
		"\n"+locale.Getf("CMD_LEAVE_TERMINAL", m.terminal.Name),
		m.separator(),
		renderer.Mark(renderer.FuncTitle, locale.Getf("TERMINAL_WELCOME", m.terminal.Address)),
		strings.Join(lines, "\n"),
		m.takeAlert(),
		m.separator(),
	)
}

func (m *Terminal) Prompt() Prompt {
	return Prompt{Line: true, Text: locale.Getf("TERMINAL_PROMPT", m.host.Player().Name, m.terminal.Slug())}
}

func (m *Terminal) HandleInput(token string) error {
	intent := input.MapToIntent(token)
	switch intent.Action {
	case input.ActionQuit:
		m.host.Player().Refresh()
		m.host.SetMode(m.precedent)
		return nil
	case input.ActionSelect:
		devices := m.devices()
		if intent.Index < 1 || intent.Index > len(devices) {
			return alertf("ALERT_UNRECOGNIZED")
		}
		sys := m.host.Level().System
		r := sys.ToggleDevice(devices[intent.Index-1].ID)
		m.host.Player().Refresh()
		return &Alert{Message: r.Text(sys)}
	}
	return alertf("ALERT_UNRECOGNIZED")
}

// Effect flickers the first frame of the session
func (m *Terminal) Effect() renderer.Effect {
	if m.flickered {
		return renderer.EffectNone
	}
	m.flickered = true
	return renderer.EffectFlicker
}
