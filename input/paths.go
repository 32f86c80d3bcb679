package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound reports a missing input file, repository root or input
	// directory.
	ErrNotFound = errors.New("path or directory not found")
	// ErrEnv reports that required path information is unavailable in the
	// environment, development builds only.
	ErrEnv = errors.New("environment information unavailable")
)

// Mode distinguishes development builds from distributed binaries.
type Mode int

const (
	// Development resolves input files under the shared input directory of
	// the enclosing repository.
	Development Mode = iota
	// Distribution resolves a fixed input file next to the executable.
	Distribution
)

func (m Mode) String() string {
	if m == Distribution {
		return "distribution"
	}
	return "development"
}

// distBuild is stamped by release builds:
//
//	go build -ldflags "-X github.com/kk2simon/puzzlein/input.distBuild=1"
var distBuild string

// BuildMode reports how this binary was built. Unstamped builds are
// development builds.
func BuildMode() Mode {
	if distBuild != "" {
		return Distribution
	}
	return Development
}

// Resolver computes the on-disk location of the input file for one
// invocation. It never creates directories and touches the filesystem only
// to probe for the repository marker.
type Resolver struct {
	Mode     Mode
	StartDir string // where the development-mode upward walk begins
	Marker   string // repository marker name, default ".git"
	InputDir string // shared input directory name, default "input"
	DistFile string // distribution-mode filename, default "input.txt"
}

func (r Resolver) marker() string {
	if r.Marker == "" {
		return ".git"
	}
	return r.Marker
}

func (r Resolver) inputDir() string {
	if r.InputDir == "" {
		return "input"
	}
	return r.InputDir
}

func (r Resolver) distFile() string {
	if r.DistFile == "" {
		return "input.txt"
	}
	return r.DistFile
}

// Resolve returns the path of the input file for the identifier. In
// distribution mode the identifier is ignored and the file lives next to
// the executable; in development mode it is
// <repo root>/<input dir>/<identifier>.txt.
func (r Resolver) Resolve(identifier string) (string, error) {
	if r.Mode == Distribution {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		return filepath.Join(filepath.Dir(exe), r.distFile()), nil
	}

	root, err := r.findRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, r.inputDir(), identifier+".txt"), nil
}

// findRoot walks up from StartDir until a directory containing the marker
// is found. The root must also contain the input directory.
func (r Resolver) findRoot() (string, error) {
	if r.StartDir == "" {
		return "", fmt.Errorf("%w: no start directory for the repository walk", ErrEnv)
	}

	dir := r.StartDir
	for {
		if _, err := os.Stat(filepath.Join(dir, r.marker())); err == nil {
			if _, err := os.Stat(filepath.Join(dir, r.inputDir())); err != nil {
				return "", fmt.Errorf("%w: %s contains no %s directory", ErrNotFound, dir, r.inputDir())
			}
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s directory above %s", ErrNotFound, r.marker(), r.StartDir)
		}
		dir = parent
	}
}

// Identifier derives the puzzle identifier from the executable name, e.g.
// a binary built as day01 reads input/day01.txt in development mode.
func Identifier() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	stem := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if stem == "" || stem == string(filepath.Separator) {
		return "", fmt.Errorf("%w: executable has no usable name", ErrNotFound)
	}
	return stem, nil
}
