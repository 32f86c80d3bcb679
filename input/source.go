package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kk2simon/puzzlein/cli"
)

// errNoInput signals that a source had nothing to offer. During the auto
// fallback it is the expected "try the next source" branch; at the top
// level it becomes an informational message and a clean exit, never an
// error the caller sees.
var errNoInput = errors.New("no input provided or found")

// engine bundles the process-wide collaborators so tests can substitute
// buffers for the real streams.
type engine struct {
	stdin      io.Reader
	stdout     io.Writer
	log        *slog.Logger
	stdinIsTTY func() bool
}

// selectSource picks and reads the input source according to the parsed
// flags. It returns the method that actually produced the input, which
// persistence depends on. pathErr carries a failed path resolution; only
// the file method needs the path, so args and stdin ignore it and the
// auto fallback treats it like an absent file.
func (e *engine) selectSource(parsed cli.ParsedArgs, path string, pathErr error) (cli.Method, *Input, error) {
	switch parsed.Input {
	case cli.MethodFile:
		if pathErr != nil {
			return cli.MethodFile, nil, pathErr
		}
		return e.readFile(path)
	case cli.MethodArgs:
		return e.readArgs(parsed.Data)
	case cli.MethodStdin:
		return e.readStdin()
	default:
		return e.selectAuto(parsed.Data, path, pathErr)
	}
}

// selectAuto implements the fallback policy: the file takes strict
// precedence, then args if any data was given, then interactive stdin.
func (e *engine) selectAuto(data []string, path string, pathErr error) (cli.Method, *Input, error) {
	if pathErr == nil {
		method, in, err := e.readFile(path)
		if !errors.Is(err, errNoInput) {
			return method, in, err
		}
		e.log.Debug("input file absent, falling back", "path", path)
	} else {
		e.log.Debug("input path unresolvable, falling back", "error", pathErr)
	}

	if len(data) > 0 {
		return e.readArgs(data)
	}
	return e.readStdin()
}

func (e *engine) readFile(path string) (cli.Method, *Input, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cli.MethodFile, nil, errNoInput
	}
	if err != nil {
		return cli.MethodFile, nil, fmt.Errorf("open input file: %w", err)
	}
	return cli.MethodFile, fromFile(f), nil
}

func (e *engine) readArgs(data []string) (cli.Method, *Input, error) {
	if len(data) == 0 {
		return cli.MethodArgs, nil, errNoInput
	}
	return cli.MethodArgs, fromLines(data), nil
}

func (e *engine) readStdin() (cli.Method, *Input, error) {
	lines, err := cli.CaptureStdin(e.stdout, e.stdin)
	if err != nil {
		return cli.MethodStdin, nil, err
	}
	if len(lines) == 0 {
		return cli.MethodStdin, nil, errNoInput
	}
	return cli.MethodStdin, fromLines(lines), nil
}
