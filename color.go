package diffstyle

import (
	"fmt"
	"strconv"
)

// ColorKind identifies how a Color is interpreted by the terminal.
type ColorKind uint8

// Color kinds.
const (
	ColorUnset   ColorKind = iota // No value; inherit from the base style
	ColorDefault                  // The terminal's own default color
	ColorRGB                      // 24-bit color
	ColorIndexed                  // Entry in the 256-color palette
)

// Color is an immutable terminal color value.
// The zero value is unset, which means "inherit" wherever a Color is optional.
type Color struct {
	Kind    ColorKind
	R, G, B uint8
	Index   uint8
}

// NoColor is the sentinel for "paint nothing": the terminal's default color.
var NoColor = Color{Kind: ColorDefault}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Indexed returns a 256-color palette entry.
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

// String returns "#rrggbb" for RGB colors, the decimal index for palette
// colors, "none" for NoColor and an empty string when unset.
func (c Color) String() string {
	switch c.Kind {
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case ColorIndexed:
		return strconv.Itoa(int(c.Index))
	case ColorDefault:
		return "none"
	default:
		return ""
	}
}
