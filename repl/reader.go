package repl

import (
	"bufio"
	"io"

	"golang.org/x/term"

	"github.com/ezrec/iridium/translate"
)

// Scanner reads lines from a plain input stream, writing a prompt before
// each one.
type Scanner struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewScanner creates a line reader on input. A nil prompt writer disables
// the prompt.
func NewScanner(input io.Reader, prompt io.Writer) *Scanner {
	return &Scanner{
		scanner: bufio.NewScanner(input),
		prompt:  prompt,
	}
}

func (s *Scanner) ReadLine() (line string, err error) {
	if s.prompt != nil {
		translate.Fprintf(s.prompt, PROMPT)
	}

	if !s.scanner.Scan() {
		err = s.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = s.scanner.Text()
	return
}

// Terminal reads lines from an interactive terminal with line editing.
// The terminal is in raw mode until Close.
type Terminal struct {
	*term.Terminal

	fd    int
	state *term.State
}

// OpenTerminal puts the terminal fd in raw mode, and creates a line editor
// reading and writing through rw.
func OpenTerminal(fd int, rw io.ReadWriter) (t *Terminal, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	t = &Terminal{
		Terminal: term.NewTerminal(rw, PROMPT),
		fd:       fd,
		state:    state,
	}

	return
}

// Close restores the terminal state. It is safe to call more than once.
func (t *Terminal) Close() (err error) {
	if t.state == nil {
		return
	}

	err = term.Restore(t.fd, t.state)
	t.state = nil
	return
}
