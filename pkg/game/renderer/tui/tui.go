// Package tui renders frames to an ANSI terminal.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"

	"alphapoint/pkg/game/renderer"
)

// Indentation applied to every line the TUI prints
const margin = "  "

// Animation timings
const (
	revealLineDelay = 10 * time.Millisecond
	flickerMaxGap   = 50 * time.Millisecond
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	animate bool
	rng     *rand.Rand
	sleep   func(time.Duration)

	colorTitle  color.Style
	colorAction color.Style
	colorAlert  color.Style
	colorPlayer color.Style
	colorSubtle color.Style
}

// New creates a TUI renderer writing to out. When animate is false the
// reveal and flicker effects are skipped.
func New(out io.Writer, animate bool, rng *rand.Rand) *TUIRenderer {
	return &TUIRenderer{
		out:     out,
		animate: animate,
		rng:     rng,
		sleep:   time.Sleep,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorAlert = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout {
		fmt.Fprint(t.out, "\033[H\033[2J")
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	if err := c.Run(); err != nil {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// Present prints a frame, applying the effect when animation is enabled
func (t *TUIRenderer) Present(text string, fx renderer.Effect) {
	frame := renderer.Indent(t.FormatText(text), margin)

	if !t.animate {
		fx = renderer.EffectNone
	}

	switch fx {
	case renderer.EffectReveal:
		for _, line := range strings.Split(frame, "\n") {
			fmt.Fprintln(t.out, line)
			t.sleep(revealLineDelay)
		}
	case renderer.EffectFlicker:
		fmt.Fprintln(t.out, frame)
		for i := 0; i < 2; i++ {
			t.Clear()
			t.sleep(time.Duration(t.rng.Float64() * float64(flickerMaxGap)))
			fmt.Fprintln(t.out, frame)
		}
	default:
		fmt.Fprintln(t.out, frame)
	}
}

// Prompt prints the input prompt
func (t *TUIRenderer) Prompt(text string) {
	fmt.Fprint(t.out, margin+t.FormatText(text))
}

// FormatText expands the markup into ANSI styles
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.Expand(msg, func(function, operand string) string {
		switch function {
		case renderer.FuncTitle:
			return t.colorTitle.Sprint(operand)
		case renderer.FuncAction:
			return t.colorAction.Sprint(operand)
		case renderer.FuncAlert:
			return t.colorAlert.Sprint(operand)
		case renderer.FuncPlayer:
			return t.colorPlayer.Sprint(operand)
		case renderer.FuncSubtle:
			return t.colorSubtle.Sprint(operand)
		default:
			return operand
		}
	})
}

// VisibleWidth returns the printed width of styled text
func VisibleWidth(s string) int {
	return len([]rune(color.ClearCode(s)))
}
