package cli

import "strings"

// Method selects where puzzle input is read from.
type Method int

const (
	// MethodAuto tries the file first, then args, then stdin.
	MethodAuto Method = iota
	MethodFile
	MethodArgs
	MethodStdin
)

func (m Method) String() string {
	switch m {
	case MethodFile:
		return "file"
	case MethodArgs:
		return "args"
	case MethodStdin:
		return "stdin"
	default:
		return "auto"
	}
}

// ParsedArgs holds the command-line arguments after parsing.
type ParsedArgs struct {
	Help  bool
	Input Method
	Save  bool
	Force bool
	// Data holds positional arguments and unrecognized flags in encounter order.
	Data []string
}

// ParseArgs parses command-line arguments (excluding the program name).
//
// The grammar is fail-safe: unknown flags and invalid values become data
// instead of errors. Supported flags:
//
//	-h, --help            print help
//	-i, --input <method>  input method: file, args or stdin; a missing or
//	                      unrecognized value selects the file method
//	-s, --save            save the input to file for future runs
//	-f, --force           skip confirmation prompts
//	--                    stop flag parsing, everything after is data
//
// Short flags can be grouped (-hsf). A group containing 'i' consumes the
// token following the group as the input method value. Repeated flags
// overwrite earlier occurrences.
func ParseArgs(args []string) ParsedArgs {
	parsed := ParsedArgs{Input: MethodAuto}
	parseFlags := true

	for idx := 0; idx < len(args); idx++ {
		arg := strings.TrimSpace(args[idx])

		if arg == "--" {
			parseFlags = false
			continue
		}
		if !parseFlags {
			parsed.Data = append(parsed.Data, arg)
			continue
		}

		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			switch arg {
			case "--help":
				parsed.Help = true
			case "--input":
				parsed.Input = parseMethodValue(args, &idx)
			case "--save":
				parsed.Save = true
			case "--force":
				parsed.Force = true
			default:
				parsed.Data = append(parsed.Data, arg)
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			pushed := false
			for _, letter := range arg[1:] {
				switch letter {
				case 'h':
					parsed.Help = true
				case 'i':
					parsed.Input = parseMethodValue(args, &idx)
				case 's':
					parsed.Save = true
				case 'f':
					parsed.Force = true
				default:
					// The whole token goes to data once; recognized
					// letters in the same group still take effect.
					if !pushed {
						parsed.Data = append(parsed.Data, arg)
						pushed = true
					}
				}
			}
		default:
			parsed.Data = append(parsed.Data, arg)
		}
	}

	return parsed
}

// parseMethodValue inspects the token after *idx and consumes it only when
// it names a known input method. Anything else leaves the method as file
// and the token in place for normal classification.
func parseMethodValue(args []string, idx *int) Method {
	if *idx+1 >= len(args) {
		return MethodFile
	}
	switch args[*idx+1] {
	case "file":
		*idx++
		return MethodFile
	case "args":
		*idx++
		return MethodArgs
	case "stdin":
		*idx++
		return MethodStdin
	}
	return MethodFile
}
