package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/entities"
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/game/player"
	"alphapoint/pkg/game/renderer"
)

// Player symbols by orientation
var playerSymbols = map[world.Direction]string{
	world.North: "^",
	world.East:  ">",
	world.South: "v",
	world.West:  "<",
}

// pending confirmation in the main screen
type confirm int

const (
	confirmNone confirm = iota
	confirmRestart
	confirmMenu
)

// Main is the in-level screen: legend, map, what the player sees and the
// numbered actions.
type Main struct {
	base
	pending confirm
}

// NewMain creates the in-level screen
func NewMain(h Host) *Main {
	return &Main{base: base{host: h}}
}

func (m *Main) Kind() Kind { return KindMain }

func (m *Main) Render() string {
	p := m.host.Player()
	lvl := m.host.Level()

	var inventory string
	if items := p.Inventory(); len(items) > 0 {
		inventory = locale.Getf("INVENTORY", strings.Join(items, ", "))
	}

	return screen(
		renderer.Mark(renderer.FuncTitle, locale.Getf("LEVEL_HEADER", lvl.Number, lvl.Name)),
		m.legend(),
		m.separator(),
		m.drawMap(),
		m.separator(),
		wrap(p.ReportVisibleObjects(), m.width()),
		m.actions(),
		inventory,
		m.takeAlert(),
		m.separator(),
	)
}

// legend lists the movement and meta commands in two columns
func (m *Main) legend() string {
	symbol := renderer.Mark(renderer.FuncPlayer, playerSymbols[m.host.Player().Orientation])
	row := func(a, b, c string) string {
		return strings.TrimRight(fmt.Sprintf("%-20s%-20s%s", a, b, c), " ")
	}
	return strings.Join([]string{
		row(locale.Get("CMD_MOVE_UP"), locale.Get("CMD_RESTART"), locale.Getf("LEGEND_PLAYER", symbol)),
		row(locale.Get("CMD_MOVE_DOWN"), locale.Get("CMD_MAIN_MENU"), locale.Get("LEGEND_PATH")),
		locale.Get("CMD_MOVE_LEFT"),
		locale.Get("CMD_MOVE_RIGHT"),
	}, "\n")
}

// drawMap draws path cells as '.' and the player as its facing symbol, one
// space between columns, centred in the UI width.
func (m *Main) drawMap() string {
	lvl := m.host.Level()
	p := m.host.Player()
	b := lvl.Map.Bounds

	mapWidth := 2*b.Width - 1
	pad := strings.Repeat(" ", max((m.width()-mapWidth)/2, 0))

	rows := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		cells := make([]string, b.Width)
		for x := 0; x < b.Width; x++ {
			c := world.At(x, y)
			switch {
			case c == p.Position:
				cells[x] = renderer.Mark(renderer.FuncPlayer, playerSymbols[p.Orientation])
			case lvl.Map.IsPath(c):
				cells[x] = "."
			default:
				cells[x] = " "
			}
		}
		rows[y] = strings.TrimRight(pad+strings.Join(cells, " "), " ")
	}
	return strings.Join(rows, "\n")
}

func (m *Main) actions() string {
	var lines []string
	for _, a := range m.host.Player().Actions() {
		lines = append(lines, option(strconv.Itoa(a.Key), a.Description(), m.width()))
	}
	return strings.Join(lines, "\n")
}

func (m *Main) Prompt() Prompt {
	switch m.pending {
	case confirmRestart:
		return Prompt{Line: true, Text: locale.Get("CONFIRM_RESTART")}
	case confirmMenu:
		return Prompt{Line: true, Text: locale.Get("CONFIRM_MENU")}
	}
	return Prompt{Text: locale.Get("WHAT_NOW")}
}

func (m *Main) HandleInput(token string) error {
	intent := input.MapToIntent(token)

	if m.pending != confirmNone {
		pending := m.pending
		m.pending = confirmNone
		if intent.Action != input.ActionConfirm {
			return nil
		}
		if pending == confirmRestart {
			return startLevel(m.host, m.host.Level().Number)
		}
		m.host.SetMode(NewLevelSelect(m.host))
		return nil
	}

	p := m.host.Player()
	switch intent.Action {
	case input.ActionMoveUp:
		return m.move(p.MoveUp)
	case input.ActionMoveRight:
		return m.move(p.MoveRight)
	case input.ActionMoveDown:
		return m.move(p.MoveDown)
	case input.ActionMoveLeft:
		return m.move(p.MoveLeft)
	case input.ActionSelect:
		return m.doAction(intent.Index)
	case input.ActionRestart:
		m.pending = confirmRestart
		return nil
	case input.ActionQuit:
		m.pending = confirmMenu
		return nil
	case input.ActionContinue:
		return nil
	}
	return alertf("ALERT_UNKNOWN_INPUT")
}

func (m *Main) move(step func() ([]*level.Item, error)) error {
	picked, err := step()
	var moveErr *player.MoveError
	if errors.As(err, &moveErr) {
		return alertf("ALERT_CANT_MOVE")
	}
	if err != nil {
		return err
	}
	if len(picked) > 0 {
		var msgs []string
		for _, it := range picked {
			msgs = append(msgs, locale.Getf("PICKED_UP", it.Name))
		}
		return &Alert{Message: strings.Join(msgs, "\n")}
	}
	return nil
}

func (m *Main) doAction(key int) error {
	out, err := m.host.Player().DoAction(key)
	var actErr *player.ActionError
	var ifErr *entities.InterfaceError
	switch {
	case errors.As(err, &actErr):
		return alertf("ALERT_NOT_AN_ACTION")
	case errors.As(err, &ifErr):
		return alertf("ALERT_DOESNT_WORK")
	case err != nil:
		return err
	}

	if out.Terminal != nil {
		m.host.SetMode(NewTerminal(m.host, out.Terminal, m))
		return nil
	}
	if len(out.Messages) > 0 {
		return &Alert{Message: strings.Join(out.Messages, "\n")}
	}
	return nil
}
