// Package toml loads saved options from TOML config files.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/diffstyle"
)

// Compile-time interface verification.
var _ diffstyle.OptionsLoader = (*Loader)(nil)

// ErrUnknownKeys is returned when a config file contains keys that map to no option.
var ErrUnknownKeys = errors.New("unknown config keys")

// ErrLightAndDark is returned when a config file sets both light and dark.
var ErrLightAndDark = errors.New("light and dark are mutually exclusive")

// file mirrors the command-line flag names.
type file struct {
	Theme            string `toml:"theme"`
	Light            bool   `toml:"light"`
	Dark             bool   `toml:"dark"`
	MinusColor       string `toml:"minus-color"`
	MinusEmphColor   string `toml:"minus-emph-color"`
	PlusColor        string `toml:"plus-color"`
	PlusEmphColor    string `toml:"plus-emph-color"`
	HighlightRemoved bool   `toml:"highlight-removed"`
	TabWidth         int    `toml:"tabs"`
	Width            int    `toml:"width"`
}

// Loader reads diffstyle.Options from TOML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes the file at path. A missing file yields zero Options.
func (l *Loader) Load(path string) (diffstyle.Options, error) {
	var f file
	md, err := tomllib.DecodeFile(path, &f)
	if errors.Is(err, fs.ErrNotExist) {
		return diffstyle.Options{}, nil
	}
	if err != nil {
		return diffstyle.Options{}, fmt.Errorf("toml: decoding %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return diffstyle.Options{}, fmt.Errorf("toml: %s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if f.Light && f.Dark {
		return diffstyle.Options{}, fmt.Errorf("toml: %s: %w", path, ErrLightAndDark)
	}

	return diffstyle.Options{
		Theme:            f.Theme,
		Light:            f.Light,
		Dark:             f.Dark,
		MinusColor:       f.MinusColor,
		MinusEmphColor:   f.MinusEmphColor,
		PlusColor:        f.PlusColor,
		PlusEmphColor:    f.PlusEmphColor,
		HighlightRemoved: f.HighlightRemoved,
		TabWidth:         f.TabWidth,
		Width:            f.Width,
	}, nil
}

// DefaultPath returns the per-user config file location.
// Follows XDG on Linux and platform conventions elsewhere.
func DefaultPath() string {
	var dir string

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, "Library", "Application Support", "diffstyle")
	case "windows":
		dir = filepath.Join(os.Getenv("APPDATA"), "diffstyle")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dir = filepath.Join(xdg, "diffstyle")
		} else {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".config", "diffstyle")
		}
	}

	return filepath.Join(dir, "config.toml")
}
