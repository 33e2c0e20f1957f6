// Package prompt provides the line-at-a-time input used by both games.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"knlang-arcade/internal/domain"
)

// Prompter reads one line of player input, showing label first.
// Implementations return io.EOF (or domain.ErrInputClosed) once input is exhausted.
type Prompter interface {
	ReadLine(ctx context.Context, label string) (string, error)
}

// Func adapts a plain function to Prompter.
type Func func(ctx context.Context, label string) (string, error)

func (f Func) ReadLine(ctx context.Context, label string) (string, error) {
	return f(ctx, label)
}

// IsClosed reports whether err means the input stream ended rather than failed.
func IsClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, domain.ErrInputClosed)
}

// LineReader prompts on out and reads newline-terminated lines from in.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader wraps in once so buffered data survives between calls.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{in: bufio.NewReader(in), out: out}
}

func (r *LineReader) ReadLine(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if label != "" {
		_, _ = fmt.Fprint(r.out, label)
	}
	line, err := r.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Script replays a fixed list of lines, then reports io.EOF.
// With an echo writer it prints label and line like a transcript.
type Script struct {
	lines []string
	pos   int
	echo  io.Writer
}

// NewScript returns a Script over lines.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// WithEcho makes the script write each label and answer to w.
func (s *Script) WithEcho(w io.Writer) *Script {
	s.echo = w
	return s
}

func (s *Script) ReadLine(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	if s.echo != nil {
		_, _ = fmt.Fprintf(s.echo, "%s%s\n", label, line)
	}
	return line, nil
}

// Remaining reports how many scripted lines have not been consumed.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}
