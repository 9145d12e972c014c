// Package chroma provides the theme and syntax databases using the chroma library.
package chroma

import (
	"fmt"
	"sort"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/diffstyle"
)

// Compile-time interface verification.
var (
	_ diffstyle.ThemeSet = (*ThemeSet)(nil)
	_ diffstyle.Theme    = (*Theme)(nil)
)

// ThemeSet looks up themes in a registry of chroma styles.
type ThemeSet struct {
	registry map[string]*chromalib.Style
}

// NewThemeSet returns a ThemeSet over chroma's built-in styles.
func NewThemeSet() *ThemeSet {
	return NewThemeSetFrom(styles.Registry)
}

// NewThemeSetFrom returns a ThemeSet over the given registry.
// The registry is read, never modified.
func NewThemeSetFrom(registry map[string]*chromalib.Style) *ThemeSet {
	return &ThemeSet{registry: registry}
}

// Theme returns the style registered under exactly name.
func (s *ThemeSet) Theme(name string) (diffstyle.Theme, error) {
	style, ok := s.registry[name]
	if !ok {
		return nil, fmt.Errorf("chroma: %q: %w", name, diffstyle.ErrUnknownTheme)
	}
	return &Theme{name: name, style: style}, nil
}

// Names returns the registered theme names in sorted order.
func (s *ThemeSet) Names() []string {
	names := make([]string, 0, len(s.registry))
	for name := range s.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Theme wraps a chroma style.
type Theme struct {
	name  string
	style *chromalib.Style
}

// Name returns the registry name of the theme.
func (t *Theme) Name() string {
	return t.name
}

// Base returns the style of the theme's background token.
func (t *Theme) Base() diffstyle.Style {
	entry := t.style.Get(chromalib.Background)

	var font diffstyle.FontStyle
	if entry.Bold == chromalib.Yes {
		font |= diffstyle.FontBold
	}
	if entry.Italic == chromalib.Yes {
		font |= diffstyle.FontItalic
	}
	if entry.Underline == chromalib.Yes {
		font |= diffstyle.FontUnderline
	}

	return diffstyle.Style{
		Foreground: colorFromColour(entry.Colour),
		Background: colorFromColour(entry.Background),
		FontStyle:  font,
	}
}

// Style returns the underlying chroma style.
func (t *Theme) Style() *chromalib.Style {
	return t.style
}

// colorFromColour converts a chroma colour; unset colours stay unset.
func colorFromColour(c chromalib.Colour) diffstyle.Color {
	if !c.IsSet() {
		return diffstyle.Color{}
	}
	return diffstyle.RGB(c.Red(), c.Green(), c.Blue())
}
