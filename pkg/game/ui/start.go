package ui

import (
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/game/renderer"
)

// Start pages through the splash and the two intro texts. Input on the last
// page opens level selection.
type Start struct {
	base
	page int
}

const startPages = 3

// NewStart creates the start screen
func NewStart(h Host) *Start {
	return &Start{base: base{host: h}}
}

func (m *Start) Kind() Kind { return KindStart }

// Page returns the index of the page shown: 0 splash, 1 and 2 intro
func (m *Start) Page() int {
	return m.page
}

func (m *Start) Render() string {
	g := m.host.Content().Game()
	var body string
	switch m.page {
	case 0:
		body = renderer.Mark(renderer.FuncTitle, g.Splash())
	case 1:
		body = wrap(g.IntroText1, m.width())
	default:
		body = wrap(g.IntroText2, m.width())
	}
	m.alert = ""
	return "\n" + screen(m.separator(), body, m.separator())
}

func (m *Start) Prompt() Prompt {
	return Prompt{Text: locale.Get("PRESS_ENTER")}
}

func (m *Start) HandleInput(string) error {
	m.page++
	if m.page >= startPages {
		m.host.SetMode(NewLevelSelect(m.host))
	}
	return nil
}

func (m *Start) Effect() renderer.Effect {
	return renderer.EffectReveal
}
