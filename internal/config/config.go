package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

type Options struct {
	// ImplicitEnd accepts the end of the token file in place of a `$` line.
	ImplicitEnd bool `toml:"implicit_end"`

	// Trace logs the rules entered by the parser to stderr.
	Trace bool `toml:"trace"`

	// Verbose prints the reason of a rejection to stderr.
	Verbose bool `toml:"verbose"`

	// History is the file used by the interactive prompt.
	History string `toml:"history"`
}

func Default() Options {
	return Options{
		ImplicitEnd: false,
		Trace:       false,
		Verbose:     false,
		History:     filepath.Join(xdg.DataHome, "rdp", ".rdp_history"),
	}
}

type UnknownKeysError struct {
	Keys []string
}

func (e UnknownKeysError) Error() string {
	return fmt.Sprintf("unknown keys: %v", e.Keys)
}

// Load decodes a TOML file over the defaults.
// An empty path returns the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Default(), fmt.Errorf("config %s: %w", path, UnknownKeysError{Keys: keys})
	}

	if opts.History == "" {
		return Default(), fmt.Errorf("config %s: %w", path, errEmptyHistory)
	}

	return opts, nil
}

var errEmptyHistory = errors.New("history must not be empty")
