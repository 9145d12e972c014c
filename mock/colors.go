package mock

import "github.com/fwojciec/diffstyle"

// Compile-time interface verification.
var _ diffstyle.ColorParser = (*ColorParser)(nil)

// ColorParser is a mock implementation of diffstyle.ColorParser.
type ColorParser struct {
	ParseColorFn func(s string) (diffstyle.Color, bool)
}

func (p *ColorParser) ParseColor(s string) (diffstyle.Color, bool) {
	return p.ParseColorFn(s)
}
