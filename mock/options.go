package mock

import "github.com/fwojciec/diffstyle"

// Compile-time interface verification.
var _ diffstyle.OptionsLoader = (*OptionsLoader)(nil)

// OptionsLoader is a mock implementation of diffstyle.OptionsLoader.
type OptionsLoader struct {
	LoadFn func(path string) (diffstyle.Options, error)
}

func (l *OptionsLoader) Load(path string) (diffstyle.Options, error) {
	return l.LoadFn(path)
}
