// Package lipgloss converts resolved diff styles into Lipgloss styles.
package lipgloss

import (
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffstyle"
)

// Color converts c to a Lipgloss color. Unset colors and NoColor both map to
// lg.NoColor, which leaves the terminal default in place.
func Color(c diffstyle.Color) lg.TerminalColor {
	switch c.Kind {
	case diffstyle.ColorRGB, diffstyle.ColorIndexed:
		return lg.Color(c.String())
	default:
		return lg.NoColor{}
	}
}

// Style builds a Lipgloss style from a complete diffstyle.Style.
func Style(r *lg.Renderer, s diffstyle.Style) lg.Style {
	return Apply(r.NewStyle(), diffstyle.StyleModifier{
		Foreground: s.Foreground,
		Background: s.Background,
		FontStyle:  &s.FontStyle,
	})
}

// Apply overlays m onto base. Fields m leaves unset keep the base value.
func Apply(base lg.Style, m diffstyle.StyleModifier) lg.Style {
	if m.Foreground.IsSet() {
		base = base.Foreground(Color(m.Foreground))
	}
	if m.Background.IsSet() {
		base = base.Background(Color(m.Background))
	}
	if m.FontStyle != nil {
		base = base.
			Bold(m.FontStyle.Has(diffstyle.FontBold)).
			Italic(m.FontStyle.Has(diffstyle.FontItalic)).
			Underline(m.FontStyle.Has(diffstyle.FontUnderline))
	}
	return base
}

// Styles holds the Lipgloss styles a renderer needs for one Config.
type Styles struct {
	Base      lg.Style // Theme default, or plain when no theme is active
	Minus     lg.Style // Removed lines
	MinusEmph lg.Style // Changed regions of removed lines
	Plus      lg.Style // Added lines
	PlusEmph  lg.Style // Changed regions of added lines
}

// NewStyles builds the category styles for cfg on top of its theme's base style.
func NewStyles(r *lg.Renderer, cfg *diffstyle.Config) *Styles {
	base := cfg.NoStyle
	if cfg.Theme != nil {
		base = cfg.Theme.Base()
	}
	baseStyle := Style(r, base)

	return &Styles{
		Base:      baseStyle,
		Minus:     Apply(baseStyle, cfg.MinusStyle),
		MinusEmph: Apply(baseStyle, cfg.MinusEmphStyle),
		Plus:      Apply(baseStyle, cfg.PlusStyle),
		PlusEmph:  Apply(baseStyle, cfg.PlusEmphStyle),
	}
}

// Category returns the style for cat.
func (s *Styles) Category(cat diffstyle.Category) lg.Style {
	switch cat {
	case diffstyle.CategoryMinus:
		return s.Minus
	case diffstyle.CategoryMinusEmph:
		return s.MinusEmph
	case diffstyle.CategoryPlus:
		return s.Plus
	case diffstyle.CategoryPlusEmph:
		return s.PlusEmph
	default:
		return s.Base
	}
}

// Swatch renders text in style, padded with spaces to width columns so the
// background fills the line. Text wider than width is left as is.
func Swatch(style lg.Style, text string, width int) string {
	if pad := width - lg.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return style.Render(text)
}
