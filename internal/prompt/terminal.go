package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultHistory is the number of remembered lines when none is configured.
const DefaultHistory = 10

// Terminal is a small raw-mode line editor with backspace and up/down history.
// When stdin is not a terminal it degrades to a LineReader.
type Terminal struct {
	in       *os.File
	out      io.Writer
	fd       int
	lines    []string
	max      int
	pending  []byte
	fallback *LineReader
}

// NewTerminal builds a line editor on in. history <= 0 selects DefaultHistory.
func NewTerminal(in *os.File, out io.Writer, history int) *Terminal {
	if history <= 0 {
		history = DefaultHistory
	}
	t := &Terminal{in: in, out: out, fd: int(in.Fd()), max: history}
	if !term.IsTerminal(t.fd) {
		t.fallback = NewLineReader(in, out)
	}
	return t
}

func (t *Terminal) ReadLine(ctx context.Context, label string) (string, error) {
	if t.fallback != nil {
		return t.fallback.ReadLine(ctx, label)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(t.out, label)
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		t.fallback = NewLineReader(t.in, t.out)
		return t.fallback.ReadLine(ctx, "")
	}
	defer term.Restore(t.fd, oldState)

	ed := &edit{histIdx: len(t.lines)}
	// bytes left over from a paste that spanned lines
	if len(t.pending) > 0 {
		pending := t.pending
		t.pending = nil
		if line, state := t.feed(ed, pending); state != editing {
			return t.finish(line, state)
		}
	}

	buf := make([]byte, 256)
	for {
		n, err := t.in.Read(buf)
		if err != nil || n == 0 {
			fmt.Fprint(t.out, "\r\n")
			if len(ed.line) > 0 {
				return string(ed.line), nil
			}
			return "", io.EOF
		}
		if line, state := t.feed(ed, buf[:n]); state != editing {
			return t.finish(line, state)
		}
	}
}

type editState int

const (
	editing editState = iota
	editDone
	editEOF
)

// edit is the in-progress line of one ReadLine call.
type edit struct {
	line    []rune
	histIdx int
	partial []byte
}

// feed applies every byte of p to ed. Once a line ends, the unread rest is kept for the next call.
func (t *Terminal) feed(ed *edit, p []byte) (string, editState) {
	data := append(ed.partial, p...)
	ed.partial = nil

	for i := 0; i < len(data); {
		switch b := data[i]; {
		case b == '\r' || b == '\n':
			i++
			if b == '\r' && i < len(data) && data[i] == '\n' {
				i++
			}
			if i < len(data) {
				t.pending = append([]byte(nil), data[i:]...)
			}
			return string(ed.line), editDone

		case b == 0x03 || b == 0x04: // Ctrl-C, Ctrl-D
			return "", editEOF

		case b == 0x7f || b == 0x08:
			if len(ed.line) > 0 {
				ed.line = ed.line[:len(ed.line)-1]
				fmt.Fprint(t.out, "\b \b")
			}
			i++

		case b == 0x1b:
			if i+2 >= len(data) {
				ed.partial = append([]byte(nil), data[i:]...)
				return "", editing
			}
			if data[i+1] == '[' {
				t.recall(ed, data[i+2])
				i += 3
				continue
			}
			i++

		case b >= ' ':
			if !utf8.FullRune(data[i:]) {
				ed.partial = append([]byte(nil), data[i:]...)
				return "", editing
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				ed.line = append(ed.line, r)
				fmt.Fprint(t.out, string(r))
			}
			i += size

		default:
			i++
		}
	}
	return "", editing
}

// recall walks the remembered lines on the up and down arrows.
func (t *Terminal) recall(ed *edit, key byte) {
	switch key {
	case 'A':
		if ed.histIdx > 0 {
			ed.histIdx--
			ed.line = t.replace(ed.line, []rune(t.lines[ed.histIdx]))
		}
	case 'B':
		if ed.histIdx < len(t.lines) {
			ed.histIdx++
			var next []rune
			if ed.histIdx < len(t.lines) {
				next = []rune(t.lines[ed.histIdx])
			}
			ed.line = t.replace(ed.line, next)
		}
	}
}

func (t *Terminal) finish(line string, state editState) (string, error) {
	fmt.Fprint(t.out, "\r\n")
	if state == editEOF {
		return "", io.EOF
	}
	t.remember(line)
	return line, nil
}

func (t *Terminal) replace(current, next []rune) []rune {
	for range current {
		fmt.Fprint(t.out, "\b \b")
	}
	fmt.Fprint(t.out, string(next))
	return next
}

func (t *Terminal) remember(line string) {
	if line == "" {
		return
	}
	if n := len(t.lines); n > 0 && t.lines[n-1] == line {
		return
	}
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}
