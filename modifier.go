package diffstyle

// ColorParser converts user-supplied color text into a Color.
type ColorParser interface {
	// ParseColor returns false for any text it cannot interpret.
	ParseColor(s string) (Color, bool)
}

// Default background colors for each category.
var (
	LightMinusColor     = RGB(0xff, 0xe0, 0xe0)
	LightMinusEmphColor = RGB(0xff, 0xc0, 0xc0)
	LightPlusColor      = RGB(0xd0, 0xff, 0xd0)
	LightPlusEmphColor  = RGB(0xa0, 0xef, 0xa0)

	DarkMinusColor     = RGB(0x3f, 0x00, 0x01)
	DarkMinusEmphColor = RGB(0x90, 0x10, 0x11)
	DarkPlusColor      = RGB(0x01, 0x3b, 0x01)
	DarkPlusEmphColor  = RGB(0x11, 0x80, 0x11)
)

// Category is a semantic kind of changed text.
type Category int

// Categories. The emphasized variants cover the changed region within a line.
const (
	CategoryMinus Category = iota
	CategoryMinusEmph
	CategoryPlus
	CategoryPlusEmph
)

// Categories lists every category in display order.
var Categories = []Category{CategoryMinus, CategoryMinusEmph, CategoryPlus, CategoryPlusEmph}

// String returns the flag-style name of the category.
func (c Category) String() string {
	switch c {
	case CategoryMinus:
		return "minus"
	case CategoryMinusEmph:
		return "minus-emph"
	case CategoryPlus:
		return "plus"
	case CategoryPlusEmph:
		return "plus-emph"
	default:
		return "unknown"
	}
}

// Removed reports whether the category covers removed text.
func (c Category) Removed() bool {
	return c == CategoryMinus || c == CategoryMinusEmph
}

// DefaultColors returns the background used for c when the user supplies none.
func (c Category) DefaultColors() (light, dark Color) {
	switch c {
	case CategoryMinus:
		return LightMinusColor, DarkMinusColor
	case CategoryMinusEmph:
		return LightMinusEmphColor, DarkMinusEmphColor
	case CategoryPlus:
		return LightPlusColor, DarkPlusColor
	case CategoryPlusEmph:
		return LightPlusEmphColor, DarkPlusEmphColor
	default:
		return Color{}, Color{}
	}
}

// ResolveColor returns the parsed arg, or the default for the current
// appearance when arg is empty or does not parse.
func ResolveColor(arg string, isLight bool, light, dark Color, p ColorParser) Color {
	if arg != "" {
		if c, ok := p.ParseColor(arg); ok {
			return c
		}
	}
	if isLight {
		return light
	}
	return dark
}

// BuildStyleModifier returns the modifier for one category. The background is
// always set. When suppressForeground is true the foreground is NoColor so the
// text renders as a flat block; otherwise it inherits the highlighted color.
// The font style is never changed.
func BuildStyleModifier(arg string, isLight bool, light, dark Color, suppressForeground bool, p ColorParser) StyleModifier {
	m := StyleModifier{
		Background: ResolveColor(arg, isLight, light, dark, p),
	}
	if suppressForeground {
		m.Foreground = NoColor
	}
	return m
}
