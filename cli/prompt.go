package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PrintHelp writes the usage message for the named program.
func PrintHelp(w io.Writer, identifier string) {
	fmt.Fprintf(w, `USAGE: %s [OPTIONS] [DATA...]

OPTIONS:
    -h, --help              Print this help message
    -i, --input <METHOD>    Set input method (no value defaults to file)
                            Methods: file, args, stdin
    -s, --save              Save input to file for future runs
    -f, --force             Force operations without prompts

ARGS:
    [DATA...]               Input data (when using args method)

NOTES:
    - Short flags can be grouped: -hsf, -sfi stdin
    - Use -- to treat remaining arguments as data
    - Unknown flags are treated as data
`, identifier)
}

// CaptureStdin prompts on w and reads lines from r until two consecutive
// empty lines are entered. The sentinel lines are not part of the result,
// and blank lines at either edge of the capture are dropped. End of input
// counts as the sentinel.
func CaptureStdin(w io.Writer, r io.Reader) ([]string, error) {
	fmt.Fprintln(w, "Please provide the input, ending with two blank lines:")

	scanner := bufio.NewScanner(r)
	var lines []string
	blanks := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading user input: %w", err)
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// ConfirmOverwrite asks before clobbering an existing input file. Only an
// affirmative answer returns true; read errors count as a refusal.
func ConfirmOverwrite(w io.Writer, r io.Reader) bool {
	fmt.Fprint(w, "Input file already exists. Overwrite? (y/N): ")

	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func PrintNoInput(w io.Writer) {
	fmt.Fprintln(w, "No input data found. Exiting.")
}

func PrintInputSaved(w io.Writer, identifier string) {
	fmt.Fprintf(w, "Input for %s saved.\n", identifier)
}

func PrintNothingToSave(w io.Writer) {
	fmt.Fprintln(w, "Input already comes from the file, nothing to save.")
}

func PrintSaveAborted(w io.Writer) {
	fmt.Fprintln(w, "Save aborted, existing file left untouched.")
}

func PrintTruncationWarning(w io.Writer) {
	fmt.Fprintln(w, "Warning: a terminal line reached the TTY buffer limit and may be truncated; refusing to save.")
}
