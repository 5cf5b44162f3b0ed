package gameplay

import (
	"errors"
	"fmt"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/game/renderer"
	"alphapoint/pkg/game/ui"
)

// Upper bound on automatic transitions evaluated before a frame is shown.
const maxTransitions = 8

// Evaluate applies at most one automatic transition for the current mode.
// In the main screen reaching the exit takes precedence over death, which
// takes precedence over pending story text.
func (g *Game) Evaluate() error {
	switch g.mode.Kind() {
	case ui.KindStart:
		if g.opts.Debug {
			g.SetMode(ui.NewLevelSelect(g))
		}

	case ui.KindMain:
		if g.level.IsComplete(g.player.Position) {
			g.log.WithField("level", g.level.Number).Info("level complete")
			switch {
			case !g.HasNextLevel():
				g.SetMode(ui.NewGameComplete(g))
			case g.opts.AutoAdvance:
				if err := g.Advance(); err != nil {
					return err
				}
				g.SetMode(ui.NewMain(g))
			default:
				g.SetMode(ui.NewLevelComplete(g))
			}
			return nil
		}

		sys := g.level.System
		if sys.KillsPlayer() {
			desc, err := sys.Death()
			if err != nil {
				return err
			}
			g.log.WithField("level", g.level.Number).Info("player died")
			g.SetMode(ui.NewPlayerDead(g, desc))
			return nil
		}

		if cell, ok := g.level.Map.PendingStory(g.player.Position); ok {
			g.SetMode(ui.NewStory(g, cell, g.mode))
		}
	}
	return nil
}

// settle evaluates transitions until the mode stops changing
func (g *Game) settle() error {
	for i := 0; i < maxTransitions; i++ {
		before := g.mode
		if err := g.Evaluate(); err != nil {
			return err
		}
		if g.mode == before {
			return nil
		}
	}
	return nil
}

// Step runs one iteration of the loop: evaluate transitions, show the
// current mode, read one input and hand it to the mode. The returned error is
// fatal; recoverable input problems become the mode's alert.
func (g *Game) Step(src input.Source, r renderer.Renderer) error {
	if err := g.settle(); err != nil {
		return err
	}

	m := g.mode
	r.Clear()
	r.Present(m.Render(), m.Effect())
	prompt := m.Prompt()
	r.Prompt(prompt.Text)

	token, err := read(src, prompt)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if err := m.HandleInput(token); err != nil {
		var alert *ui.Alert
		if errors.As(err, &alert) {
			m.SetAlert(alert.Message)
			return nil
		}
		return fmt.Errorf("%s: %w", m.Kind(), err)
	}
	return nil
}

// Run loops until the player quits or input fails
func (g *Game) Run(src input.Source, r renderer.Renderer) error {
	r.Init()
	g.log.Info("game started")
	for !g.done {
		if err := g.Step(src, r); err != nil {
			return err
		}
	}
	g.log.Info("game finished")
	return nil
}

func read(src input.Source, p ui.Prompt) (string, error) {
	if p.Line {
		return src.Line()
	}
	return src.Keypress()
}
