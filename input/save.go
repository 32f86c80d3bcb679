package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/kk2simon/puzzlein/cli"
)

// ttyLineLimit is close to the kernel's 4096-byte canonical line buffer
// (N_TTY_BUF_SIZE). A terminal line at or beyond it may already have been
// silently truncated on the way in.
const ttyLineLimit = 4000

// maybeSave writes args- or stdin-derived input back to the resolved file
// so later runs can use the file source. Input that came from the file is
// a no-op. An existing file is only overwritten after confirmation, unless
// force is set.
func (e *engine) maybeSave(parsed cli.ParsedArgs, method cli.Method, in *Input, path, identifier string, resolver Resolver) error {
	if method == cli.MethodFile {
		cli.PrintNothingToSave(e.stdout)
		return nil
	}

	lines := trimBlankEdges(in.mem)

	if method == cli.MethodStdin && e.mayBeTruncated(lines) {
		cli.PrintTruncationWarning(e.stdout)
		return nil
	}

	if _, err := os.Stat(path); err == nil && !parsed.Force {
		if !cli.ConfirmOverwrite(e.stdout, e.stdin) {
			cli.PrintSaveAborted(e.stdout)
			return nil
		}
	}

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write input file: %w", err)
	}
	e.log.Info("input saved", "path", path, "lines", len(lines))
	cli.PrintInputSaved(e.stdout, identifier)

	e.adviseGitignore(resolver)
	return nil
}

// trimBlankEdges drops leading and trailing blank lines, keeping interior
// ones. Trimming twice changes nothing.
func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// mayBeTruncated reports whether interactively captured content ran into
// the TTY line buffer limit.
func (e *engine) mayBeTruncated(lines []string) bool {
	if !e.stdinIsTTY() {
		return false
	}
	for _, line := range lines {
		if len(line) >= ttyLineLimit {
			return true
		}
	}
	return false
}

// adviseGitignore prints a one-line note after a development-mode save
// when the repository's .gitignore does not cover the input directory.
// Puzzle inputs usually should not be committed. Best-effort only.
func (e *engine) adviseGitignore(r Resolver) {
	if r.Mode != Development {
		return
	}
	root, err := r.findRoot()
	if err != nil {
		return
	}
	ign, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil || ign == nil {
		return
	}
	if !ign.MatchesPath(r.inputDir() + "/") {
		fmt.Fprintf(e.stdout, "Note: %s/ is not covered by .gitignore; consider ignoring it.\n", r.inputDir())
	}
}
