package input

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk2simon/puzzlein/cli"
)

func newTestEngine(stdin string) (*engine, *bytes.Buffer) {
	var out bytes.Buffer
	return &engine{
		stdin:      strings.NewReader(stdin),
		stdout:     &out,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdinIsTTY: func() bool { return false },
	}, &out
}

// devRepo lays out a repository in a temp dir and points the resolver walk
// at it.
func devRepo(t *testing.T) string {
	t.Helper()
	root := repoDir(t, ".git")
	t.Setenv("PUZZLEIN_DEV_ROOT", root)
	return root
}

func inputFile(root string) string {
	return filepath.Join(root, "input", "day01.txt")
}

func TestSelectSource_AutoPrefersFile(t *testing.T) {
	root := devRepo(t)
	require.NoError(t, os.WriteFile(inputFile(root), []byte("from file\n"), 0644))

	e, _ := newTestEngine("")
	parsed := cli.ParseArgs([]string{"from", "args"})
	method, in, err := e.selectSource(parsed, inputFile(root), nil)
	require.NoError(t, err)
	assert.Equal(t, cli.MethodFile, method)

	lines, err := in.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"from file"}, lines)
}

func TestSelectSource_AutoFallsBackToArgs(t *testing.T) {
	root := devRepo(t)

	e, out := newTestEngine("")
	parsed := cli.ParseArgs([]string{"a", "b"})
	method, in, err := e.selectSource(parsed, inputFile(root), nil)
	require.NoError(t, err)
	assert.Equal(t, cli.MethodArgs, method)

	lines, err := in.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
	// Stdin must never have been prompted.
	assert.NotContains(t, out.String(), "provide the input")
}

func TestSelectSource_AutoFallsBackToStdin(t *testing.T) {
	root := devRepo(t)

	e, out := newTestEngine("x\ny\n\n\n")
	method, in, err := e.selectSource(cli.ParseArgs(nil), inputFile(root), nil)
	require.NoError(t, err)
	assert.Equal(t, cli.MethodStdin, method)

	lines, err := in.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lines)
	assert.Contains(t, out.String(), "provide the input")
}

func TestSelectSource_ExplicitFileMissingNeverFallsBack(t *testing.T) {
	root := devRepo(t)

	e, out := newTestEngine("")
	parsed := cli.ParseArgs([]string{"--input", "file", "data"})
	_, _, err := e.selectSource(parsed, inputFile(root), nil)
	assert.ErrorIs(t, err, errNoInput)
	assert.NotContains(t, out.String(), "provide the input")
}

func TestSelectSource_ExplicitStdinIgnoresFileAndData(t *testing.T) {
	root := devRepo(t)
	require.NoError(t, os.WriteFile(inputFile(root), []byte("from file\n"), 0644))

	e, _ := newTestEngine("typed\n\n\n")
	parsed := cli.ParseArgs([]string{"--input", "stdin", "data"})
	method, in, err := e.selectSource(parsed, inputFile(root), nil)
	require.NoError(t, err)
	assert.Equal(t, cli.MethodStdin, method)

	lines, err := in.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"typed"}, lines)
}

func TestSelectSource_ExplicitArgsEmptyIsNoInput(t *testing.T) {
	e, _ := newTestEngine("")
	parsed := cli.ParseArgs([]string{"--input", "args"})
	_, _, err := e.selectSource(parsed, "/nonexistent/input.txt", nil)
	assert.ErrorIs(t, err, errNoInput)
}

func TestSelectSource_StdinWithoutContentIsNoInput(t *testing.T) {
	e, _ := newTestEngine("\n\n")
	parsed := cli.ParseArgs([]string{"--input", "stdin"})
	_, _, err := e.selectSource(parsed, "/nonexistent/input.txt", nil)
	assert.ErrorIs(t, err, errNoInput)
}

// End-to-end runs of the resolution flow.

func TestRun_Help(t *testing.T) {
	root := devRepo(t)

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"--help"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	assert.True(t, outcome.Exit)
	assert.Contains(t, out.String(), "USAGE: day01")

	_, statErr := os.Stat(inputFile(root))
	assert.True(t, os.IsNotExist(statErr), "help must not touch the input file")
}

func TestRun_SaveFromArgs(t *testing.T) {
	root := devRepo(t)

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"--save", "a", "b"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	content, err := os.ReadFile(inputFile(root))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
	assert.NotContains(t, out.String(), "Overwrite?")

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestRun_ExplicitStdin(t *testing.T) {
	devRepo(t)

	e, _ := newTestEngine("x\ny\n\n\n")
	outcome, err := e.run([]string{"-i", "stdin"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lines)
}

func TestRun_ExplicitFileMissingExits(t *testing.T) {
	devRepo(t)

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"--input", "file"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	assert.True(t, outcome.Exit)
	assert.Contains(t, out.String(), "No input data found")
}

func TestRun_ForceOverwriteFromArgs(t *testing.T) {
	root := devRepo(t)
	require.NoError(t, os.WriteFile(inputFile(root), []byte("old\n"), 0644))

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"-i", "args", "--save", "--force", "z"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	content, err := os.ReadFile(inputFile(root))
	require.NoError(t, err)
	assert.Equal(t, "z\n", string(content))
	assert.NotContains(t, out.String(), "Overwrite?")
}

// With the file present, auto selection sticks to the file and persistence
// stays a no-op, even under --save --force with data given.
func TestRun_AutoWithExistingFileKeepsIt(t *testing.T) {
	root := devRepo(t)
	require.NoError(t, os.WriteFile(inputFile(root), []byte("old\n"), 0644))

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"--save", "--force", "z"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	content, err := os.ReadFile(inputFile(root))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(content))
	assert.Contains(t, out.String(), "nothing to save")

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, lines)
}

func TestRun_SaveFromFileIsNoop(t *testing.T) {
	root := devRepo(t)
	require.NoError(t, os.WriteFile(inputFile(root), []byte("keep\n"), 0644))

	e, out := newTestEngine("")
	outcome, err := e.run([]string{"--save", "--force"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	content, err := os.ReadFile(inputFile(root))
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(content))
	assert.Contains(t, out.String(), "nothing to save")
}

func TestRun_NoMarkerSurfacesNotFound(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("")
	_, err := e.run([]string{"--input", "file"}, Config{Identifier: "day01"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Outside any repository, sources that never touch the path still work.

func TestRun_ArgsWorkWithoutRepository(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("")
	outcome, err := e.run([]string{"hello"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, lines)
}

func TestRun_ExplicitArgsWorkWithoutRepository(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("")
	outcome, err := e.run([]string{"--input", "args", "a", "b"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestRun_StdinWorksWithoutRepository(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("x\n\n\n")
	outcome, err := e.run([]string{"-i", "stdin"}, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, lines)
}

func TestRun_AutoStdinFallbackWithoutRepository(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("x\ny\n\n\n")
	outcome, err := e.run(nil, Config{Identifier: "day01"})
	require.NoError(t, err)
	require.False(t, outcome.Exit)

	lines, err := outcome.Input.Lines().Slurp()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lines)
}

// Saving needs the path, so an unresolvable root still fails there.
func TestRun_SaveWithoutRepositoryFails(t *testing.T) {
	t.Setenv("PUZZLEIN_DEV_ROOT", t.TempDir())

	e, _ := newTestEngine("")
	_, err := e.run([]string{"--save", "a"}, Config{Identifier: "day01"})
	assert.ErrorIs(t, err, ErrNotFound)
}
