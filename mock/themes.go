// Package mock provides test doubles for diffstyle interfaces.
package mock

import "github.com/fwojciec/diffstyle"

// Compile-time interface verification.
var (
	_ diffstyle.ThemeSet = (*ThemeSet)(nil)
	_ diffstyle.Theme    = (*Theme)(nil)
)

// ThemeSet is a mock implementation of diffstyle.ThemeSet.
type ThemeSet struct {
	ThemeFn func(name string) (diffstyle.Theme, error)
	NamesFn func() []string
}

func (s *ThemeSet) Theme(name string) (diffstyle.Theme, error) {
	return s.ThemeFn(name)
}

func (s *ThemeSet) Names() []string {
	return s.NamesFn()
}

// Theme is a mock implementation of diffstyle.Theme.
type Theme struct {
	NameFn func() string
	BaseFn func() diffstyle.Style
}

func (t *Theme) Name() string {
	return t.NameFn()
}

func (t *Theme) Base() diffstyle.Style {
	return t.BaseFn()
}
