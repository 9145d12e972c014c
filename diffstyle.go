// Package diffstyle resolves the visual style configuration for rendering diffs.
package diffstyle

// Pass-through defaults.
const (
	DefaultTabWidth         = 4
	DefaultMaxBufferedLines = 32
)

// Options holds the user-facing settings that drive resolution.
// Empty strings mean "not supplied".
type Options struct {
	Theme            string // Theme name, "none" for plain coloring
	Light            bool   // Prefer the default light theme when Theme is empty
	Dark             bool   // Dark appearance when no theme is active
	MinusColor       string // Background for removed lines
	MinusEmphColor   string // Background for changed regions of removed lines
	PlusColor        string // Background for added lines
	PlusEmphColor    string // Background for changed regions of added lines
	HighlightRemoved bool   // Keep syntax highlighting on removed text
	TabWidth         int    // Zero means DefaultTabWidth
	Width            int    // Zero means fill the terminal
}

// OptionsLoader reads saved Options, such as a user config file.
type OptionsLoader interface {
	// Load returns zero Options without error when path does not exist.
	Load(path string) (Options, error)
}

// Arg returns the user-supplied color text for c.
func (o Options) Arg(c Category) string {
	switch c {
	case CategoryMinus:
		return o.MinusColor
	case CategoryMinusEmph:
		return o.MinusEmphColor
	case CategoryPlus:
		return o.PlusColor
	case CategoryPlusEmph:
		return o.PlusEmphColor
	default:
		return ""
	}
}

// Config is the resolved style configuration handed to the renderer.
// It is read-only once built.
type Config struct {
	ThemeName string
	Theme     Theme // Nil when plain coloring is selected
	IsLight   bool

	MinusStyle     StyleModifier
	MinusEmphStyle StyleModifier
	PlusStyle      StyleModifier
	PlusEmphStyle  StyleModifier

	Syntaxes LanguageDetector

	TerminalWidth    int
	Width            int // Zero means fill the terminal
	TabWidth         int
	NoStyle          Style
	MaxBufferedLines int
}

// Modifier returns the style modifier for cat.
func (c *Config) Modifier(cat Category) StyleModifier {
	switch cat {
	case CategoryMinus:
		return c.MinusStyle
	case CategoryMinusEmph:
		return c.MinusEmphStyle
	case CategoryPlus:
		return c.PlusStyle
	case CategoryPlusEmph:
		return c.PlusEmphStyle
	default:
		return StyleModifier{}
	}
}

// DisplayWidth returns the column count the renderer should fill.
func (c *Config) DisplayWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	return c.TerminalWidth
}
