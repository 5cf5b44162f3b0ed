package renderer

// Frame is one presented screen as captured by a Recorder
type Frame struct {
	Text   string
	Effect Effect
	Prompt string
}

// Recorder is a Renderer that keeps every frame as plain text. It backs
// tests and headless runs.
type Recorder struct {
	Frames []Frame
	Clears int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Init is a no-op
func (r *Recorder) Init() {}

// Clear counts screen clears
func (r *Recorder) Clear() {
	r.Clears++
}

// Present records the frame with markup removed
func (r *Recorder) Present(text string, fx Effect) {
	r.Frames = append(r.Frames, Frame{Text: StripMarkup(text), Effect: fx})
}

// Prompt attaches the prompt to the latest frame
func (r *Recorder) Prompt(text string) {
	if len(r.Frames) == 0 {
		r.Frames = append(r.Frames, Frame{})
	}
	r.Frames[len(r.Frames)-1].Prompt = StripMarkup(text)
}

// Last returns the most recent frame
func (r *Recorder) Last() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}
