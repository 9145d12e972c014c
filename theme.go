package diffstyle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTheme is returned by a ThemeSet for names it does not contain.
var ErrUnknownTheme = errors.New("unknown theme")

// Built-in theme names.
const (
	DefaultLightTheme = "github"
	DefaultDarkTheme  = "monokai"

	// NoTheme selects plain coloring. Compared case-insensitively.
	NoTheme = "none"
)

// lightThemes lists the themes whose palettes are designed for light backgrounds.
var lightThemes = map[string]bool{
	"RPGLE":            true,
	"abap":             true,
	"algol":            true,
	"algol_nu":         true,
	"arduino":          true,
	"autumn":           true,
	"borland":          true,
	"bw":               true,
	"catppuccin-latte": true,
	"colorful":         true,
	"emacs":            true,
	"friendly":         true,
	"github":           true,
	"gruvbox-light":    true,
	"igor":             true,
	"lovelace":         true,
	"manni":            true,
	"modus-operandi":   true,
	"monokailight":     true,
	"murphy":           true,
	"paraiso-light":    true,
	"pastie":           true,
	"perldoc":          true,
	"rainbow_dash":     true,
	"rose-pine-dawn":   true,
	"solarized-light":  true,
	"tango":            true,
	"tokyonight-day":   true,
	"trac":             true,
	"vs":               true,
	"xcode":            true,
}

// LightThemes returns the known light theme names in sorted order.
func LightThemes() []string {
	names := make([]string, 0, len(lightThemes))
	for name := range lightThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLightTheme reports whether name is one of the known light themes.
// The comparison is exact.
func IsLightTheme(name string) bool {
	return lightThemes[name]
}

// Theme is a named syntax-highlighting palette.
type Theme interface {
	// Name returns the name the theme is registered under.
	Name() string
	// Base returns the theme's default text style.
	Base() Style
}

// ThemeSet is a pre-loaded database of themes.
type ThemeSet interface {
	// Theme returns the theme registered under name.
	// Returns an error wrapping ErrUnknownTheme if there is none.
	Theme(name string) (Theme, error)
	// Names returns all registered theme names.
	Names() []string
}

// ThemeChoice is the outcome of theme selection: either no theme (plain
// coloring) or a named theme from a ThemeSet, plus the appearance it implies.
type ThemeChoice struct {
	Name    string // The selected name, after defaulting
	Theme   Theme  // Nil when plain coloring is selected
	IsLight bool
}

// None reports whether plain coloring is selected.
func (c ThemeChoice) None() bool {
	return c.Theme == nil
}

// SelectTheme decides which theme is active and whether the appearance is light.
//
// An empty name falls back to DefaultLightTheme or DefaultDarkTheme depending
// on light. The name "none" (any case) selects no theme; the appearance is
// then light unless dark is set. A named theme decides the appearance itself,
// regardless of dark.
func SelectTheme(name string, dark, light bool, themes ThemeSet) (ThemeChoice, error) {
	if name == "" {
		if light {
			name = DefaultLightTheme
		} else {
			name = DefaultDarkTheme
		}
	}

	if strings.EqualFold(name, NoTheme) {
		return ThemeChoice{Name: name, IsLight: !dark}, nil
	}

	theme, err := themes.Theme(name)
	if err != nil {
		return ThemeChoice{}, fmt.Errorf("selecting theme %q: %w", name, err)
	}

	return ThemeChoice{
		Name:    name,
		Theme:   theme,
		IsLight: IsLightTheme(name),
	}, nil
}
