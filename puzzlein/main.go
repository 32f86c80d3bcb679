// Demo solver showing the intended use of the input library. Build it as
// dayNN and it reads input/dayNN.txt from the repository root, or takes
// input from args or stdin and can save it back with --save.
package main

import (
	"fmt"
	"os"

	"github.com/kk2simon/puzzlein/base"
	"github.com/kk2simon/puzzlein/input"
)

func main() {
	cfg, err := input.LoadConfig()
	exitIfErr(err, "Failed to parse config")

	logger, closeLogger, err := base.InitLogger(cfg.LogPath, cfg.LogLevel)
	exitIfErr(err, "Failed to initialize logger")
	defer closeLogger()

	out, err := input.ReadWith(cfg, logger)
	exitIfErr(err, "Failed to read input")
	if out.Exit {
		return
	}

	a, b, err := getAnswers(out.Input)
	exitIfErr(err, "Failed to process input")

	fmt.Println("a is:", a)
	fmt.Println("b is:", b)
}

// getAnswers counts the non-blank lines and the non-newline characters,
// a stand-in for real puzzle logic.
func getAnswers(in *input.Input) (int, int, error) {
	a, b := 0, 0
	lines := in.Lines()
	for lines.Next() {
		line := lines.Text()
		if line != "" {
			a++
		}
		b += len([]rune(line))
	}
	if err := lines.Err(); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func exitIfErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
