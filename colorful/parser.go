// Package colorful parses user-supplied color text using the go-colorful library.
package colorful

import (
	"strconv"
	"strings"

	"github.com/fwojciec/diffstyle"
	colorfullib "github.com/lucasb-eyer/go-colorful"
)

// Compile-time interface verification.
var _ diffstyle.ColorParser = (*Parser)(nil)

// Parser accepts "#rgb" and "#rrggbb" hex colors, 256-color palette indexes
// ("0" through "255") and "none" or "default" for the terminal default.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseColor returns false for anything it does not recognize,
// including palette indexes above 255.
func (p *Parser) ParseColor(s string) (diffstyle.Color, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return diffstyle.Color{}, false
	case strings.EqualFold(s, "none"), strings.EqualFold(s, "default"):
		return diffstyle.NoColor, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	default:
		i, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return diffstyle.Color{}, false
		}
		return diffstyle.Indexed(uint8(i)), true
	}
}

func parseHex(s string) (diffstyle.Color, bool) {
	if len(s) != 4 && len(s) != 7 {
		return diffstyle.Color{}, false
	}
	if strings.IndexFunc(s[1:], notHexDigit) >= 0 {
		return diffstyle.Color{}, false
	}
	c, err := colorfullib.Hex(s)
	if err != nil {
		return diffstyle.Color{}, false
	}
	r, g, b := c.RGB255()
	return diffstyle.RGB(r, g, b), true
}

func notHexDigit(r rune) bool {
	return !strings.ContainsRune("0123456789abcdefABCDEF", r)
}
