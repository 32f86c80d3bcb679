package input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config tunes input resolution. Every field is optional; the zero value
// gives the stock behavior.
type Config struct {
	Marker     string // repository marker name, default ".git"
	InputDir   string // shared input directory name, default "input"
	DistFile   string // distribution-mode filename, default "input.txt"
	Identifier string // overrides the executable-derived identifier

	LogLevel string
	LogPath  string
}

// envConfigFile names an explicit config file location, checked before the
// well-known ones.
const envConfigFile = "PUZZLEIN_CONFIG_TOML_FILE"

func configPaths() []string {
	tryPaths := []string{}
	if envPath := os.Getenv(envConfigFile); envPath != "" {
		tryPaths = append(tryPaths, envPath)
	}

	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	return append(tryPaths,
		filepath.Join(cwd, ".puzzlein", "config.toml"),
		filepath.Join(home, ".puzzlein", "config.toml"),
		filepath.Join(home, ".config", "puzzlein", "config.toml"),
	)
}

// LoadConfig reads the first config file found among the known locations.
// A missing config is not an error and yields the zero Config; a config
// that exists but does not decode is.
func LoadConfig() (Config, error) {
	return loadConfigFrom(configPaths())
}

func loadConfigFrom(tryPaths []string) (Config, error) {
	var f *os.File
	var err error
	for _, p := range tryPaths {
		f, err = os.Open(p)
		if err == nil {
			break
		}
	}
	if f == nil {
		return Config{}, nil
	}
	defer f.Close()

	var cfg Config
	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config (%s): %w", f.Name(), err)
	}
	return cfg, nil
}
