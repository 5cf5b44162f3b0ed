// Package renderer defines how screens reach the player. A screen is plain
// text with inline markup of the form FUNC{operand}; backends decide how to
// style it.
package renderer

// Effect is a presentation-only animation applied when a frame is shown.
// Effects never change game state and backends may ignore them.
type Effect int

const (
	EffectNone    Effect = iota
	EffectReveal         // print the frame line by line
	EffectFlicker        // redraw the frame a few times with short gaps
)

// String returns the effect name
func (e Effect) String() string {
	switch e {
	case EffectReveal:
		return "reveal"
	case EffectFlicker:
		return "flicker"
	default:
		return "none"
	}
}

// Renderer defines the interface for display backends
type Renderer interface {
	// Init prepares the backend (colours, terminal state)
	Init()

	// Clear clears the display
	Clear()

	// Present shows a complete frame
	Present(text string, fx Effect)

	// Prompt shows the input prompt after the frame, without a newline
	Prompt(text string)
}
