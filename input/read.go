// Package input resolves puzzle input for short-lived command-line
// programs from a file, the command-line arguments, or interactive
// standard input, with a deterministic fallback between them and optional
// persistence of newly provided input.
package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/kk2simon/puzzlein/cli"
)

// Outcome tells the caller whether to keep going.
type Outcome struct {
	// Exit reports that the program should terminate successfully without
	// further action: help was printed, or no usable input was found and
	// the operator has been told.
	Exit bool
	// Input is ready for consumption when Exit is false.
	Input *Input
}

// Read resolves puzzle input from os.Args and the environment. It parses
// the flags, picks a source (explicit or the auto fallback of file, then
// args, then stdin), reads it, and saves the input back to the file when
// asked to.
//
//	out, err := input.Read()
//	if err != nil { ... }
//	if out.Exit {
//		return
//	}
//	lines := out.Input.Lines()
func Read() (Outcome, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Outcome{}, err
	}
	return ReadWith(cfg, nil)
}

// ReadWith is Read with an explicit config and logger. A nil logger
// discards.
func ReadWith(cfg Config, logger *slog.Logger) (Outcome, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := &engine{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		log:    logger,
		stdinIsTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	return e.run(os.Args[1:], cfg)
}

func (e *engine) run(args []string, cfg Config) (Outcome, error) {
	parsed := cli.ParseArgs(args)

	identifier := cfg.Identifier
	if identifier == "" {
		var err error
		identifier, err = Identifier()
		if err != nil {
			return Outcome{}, err
		}
	}

	if parsed.Help {
		cli.PrintHelp(e.stdout, identifier)
		return Outcome{Exit: true}, nil
	}

	// Resolution failures are not fatal yet: args and stdin input work
	// outside any repository. The error only surfaces once the file
	// method or a save actually needs the path.
	var path string
	resolver, pathErr := newResolver(cfg)
	if pathErr == nil {
		path, pathErr = resolver.Resolve(identifier)
	}
	if pathErr == nil {
		e.log.Debug("resolved input path", "path", path, "mode", resolver.Mode)
	}

	method, in, err := e.selectSource(parsed, path, pathErr)
	if errors.Is(err, errNoInput) {
		cli.PrintNoInput(e.stdout)
		return Outcome{Exit: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	e.log.Info("input loaded", "method", method)

	if parsed.Save {
		if pathErr != nil {
			return Outcome{}, pathErr
		}
		if err := e.maybeSave(parsed, method, in, path, identifier, resolver); err != nil {
			return Outcome{}, err
		}
	}

	return Outcome{Input: in}, nil
}

// newResolver builds the per-invocation resolver. The development walk
// starts at PUZZLEIN_DEV_ROOT when set (the project directory in scripted
// builds), otherwise at the working directory.
func newResolver(cfg Config) (Resolver, error) {
	r := Resolver{
		Mode:     BuildMode(),
		Marker:   cfg.Marker,
		InputDir: cfg.InputDir,
		DistFile: cfg.DistFile,
	}
	if r.Mode != Development {
		return r, nil
	}
	if dir := os.Getenv("PUZZLEIN_DEV_ROOT"); dir != "" {
		r.StartDir = dir
		return r, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return Resolver{}, fmt.Errorf("%w: determine working directory: %v", ErrEnv, err)
	}
	r.StartDir = wd
	return r, nil
}
