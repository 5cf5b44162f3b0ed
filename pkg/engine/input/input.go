// Package input reads player input: single keypresses in raw terminal mode and
// whole lines in cooked mode.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C.
var ErrInterrupted = errors.New("input interrupted")

// Source is a blocking supplier of player input. Both methods return the empty
// string as a no-op sentinel the caller should re-prompt on.
type Source interface {
	// Keypress reads a single key. Arrow keys are reported as "arrow_up",
	// "arrow_down", "arrow_left" and "arrow_right"; Enter as "enter".
	Keypress() (string, error)
	// Line reads a line of text terminated by Enter, without the newline.
	Line() (string, error)
}

// Terminal reads from a file descriptor backed terminal (normally os.Stdin).
type Terminal struct {
	in     *os.File
	echo   io.Writer
	reader *bufio.Reader
}

// NewTerminal creates a terminal source. Echo receives the line after an arrow
// key is read in raw mode so the next frame starts on a fresh line.
func NewTerminal(in *os.File, echo io.Writer) *Terminal {
	return &Terminal{in: in, echo: echo}
}

// Line reads a line of input
func (t *Terminal) Line() (string, error) {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.in)
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Keypress reads one key in raw mode. When the input is not a terminal (for
// example piped input) it falls back to reading a line.
func (t *Terminal) Keypress() (string, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return t.Line()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	t.reader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := t.readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == 0x1b:
		key := t.readEscape()
		if key != "" && t.echo != nil {
			fmt.Fprint(t.echo, "\r\n")
		}
		return key, nil
	case b1 >= 32 && b1 < 127:
		return string(b1), nil
	}

	return "", nil
}

// readByte reads a single byte from the terminal
func (t *Terminal) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := t.in.Read(buf)
	return buf[0], err
}

// readEscape decodes the remainder of an escape sequence after ESC.
// Returns the arrow name, "escape" for a bare ESC, or "" for anything else.
func (t *Terminal) readEscape() string {
	b2, err := t.readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := t.readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// Script replays a fixed sequence of tokens. It is used by tests and by
// non-interactive runs. Once exhausted every read returns io.EOF.
type Script struct {
	tokens []string
	pos    int
}

// NewScript creates a scripted source
func NewScript(tokens ...string) *Script {
	return &Script{tokens: tokens}
}

// Keypress returns the next token
func (s *Script) Keypress() (string, error) {
	return s.next()
}

// Line returns the next token
func (s *Script) Line() (string, error) {
	return s.next()
}

// Remaining returns the number of tokens not yet consumed
func (s *Script) Remaining() int {
	return len(s.tokens) - s.pos
}

func (s *Script) next() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}
