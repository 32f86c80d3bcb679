package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Input is a handle over resolved puzzle input. It is single-pass: consume
// it with either Lines or Chars, once.
type Input struct {
	file *os.File // non-nil when the input is backed by a file
	mem  []string // lines from args or stdin
}

// New returns an in-memory Input, one line per argument. Intended for
// tests and for callers that already hold the content.
func New(lines ...string) *Input {
	return &Input{mem: lines}
}

func fromFile(f *os.File) *Input {
	return &Input{file: f}
}

func fromLines(lines []string) *Input {
	return &Input{mem: lines}
}

// Close releases the underlying file, if any. Draining Lines or Chars
// closes it as well; Close is only needed when the input is abandoned
// early.
func (in *Input) Close() error {
	if in.file == nil {
		return nil
	}
	f := in.file
	in.file = nil
	return f.Close()
}

// Lines returns a single-pass iterator over the input lines. File-backed
// input streams line by line and never holds the whole file in memory;
// line boundaries follow newlines, line length is unbounded, and no
// trailing empty line is produced.
func (in *Input) Lines() *Lines {
	if in.file != nil {
		return &Lines{in: in, r: bufio.NewReader(in.file)}
	}
	return &Lines{in: in, mem: in.mem}
}

// Lines iterates input lines in the bufio.Scanner style:
//
//	for lines.Next() {
//		use(lines.Text())
//	}
//	if err := lines.Err(); err != nil { ... }
type Lines struct {
	in   *Input
	r    *bufio.Reader // nil for in-memory input
	mem  []string
	pos  int
	text string
	err  error
	done bool
}

// Next advances to the next line. It returns false at the end of input or
// on error; check Err afterwards.
func (l *Lines) Next() bool {
	if l.err != nil || l.done {
		return false
	}
	if l.r == nil {
		if l.pos >= len(l.mem) {
			return false
		}
		l.text = l.mem[l.pos]
		l.pos++
		return true
	}

	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		l.err = fmt.Errorf("read input file: %w", err)
		_ = l.in.Close()
		return false
	}
	if err == io.EOF {
		l.done = true
		if cerr := l.in.Close(); cerr != nil {
			l.err = cerr
		}
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !utf8.ValidString(line) {
		l.err = fmt.Errorf("input file is not valid UTF-8")
		_ = l.in.Close()
		return false
	}
	l.text = line
	return true
}

// Text returns the current line, without its newline.
func (l *Lines) Text() string { return l.text }

// Err returns the first error encountered while iterating.
func (l *Lines) Err() error { return l.err }

// Slurp drains the remaining lines into a slice.
func (l *Lines) Slurp() ([]string, error) {
	var out []string
	for l.Next() {
		out = append(out, l.Text())
	}
	return out, l.Err()
}

// Chars returns a single-pass iterator over the input characters. Lines
// are separated by a single newline character. The whole content is
// buffered in memory for the life of the iterator; fine for a short-lived
// process, but prefer Lines for anything large or long-running.
func (in *Input) Chars() *Chars {
	if in.file == nil {
		return &Chars{runes: []rune(strings.Join(in.mem, "\n"))}
	}
	raw, err := io.ReadAll(in.file)
	if cerr := in.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &Chars{err: fmt.Errorf("read input file: %w", err)}
	}
	if !utf8.Valid(raw) {
		return &Chars{err: fmt.Errorf("input file is not valid UTF-8")}
	}
	return &Chars{runes: []rune(string(raw))}
}

// Chars iterates input characters; same contract as Lines.
type Chars struct {
	runes []rune
	pos   int
	cur   rune
	err   error
}

// Next advances to the next character.
func (c *Chars) Next() bool {
	if c.err != nil || c.pos >= len(c.runes) {
		return false
	}
	c.cur = c.runes[c.pos]
	c.pos++
	return true
}

// Rune returns the current character.
func (c *Chars) Rune() rune { return c.cur }

// Err returns the first error encountered while iterating.
func (c *Chars) Err() error { return c.err }
