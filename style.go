package diffstyle

// FontStyle is a set of font attributes.
type FontStyle uint8

// Font attributes.
const (
	FontBold FontStyle = 1 << iota
	FontItalic
	FontUnderline
)

// Has reports whether all attributes in f are present in s.
func (s FontStyle) Has(f FontStyle) bool {
	return s&f == f
}

// Style is a complete visual style for a run of text.
type Style struct {
	Foreground Color
	Background Color
	FontStyle  FontStyle
}

// StyleModifier is a delta applied onto a base Style.
// Unset colors and a nil FontStyle leave the base value unchanged.
type StyleModifier struct {
	Background Color
	Foreground Color
	FontStyle  *FontStyle
}

// Apply returns s with every set field of m applied on top.
func (s Style) Apply(m StyleModifier) Style {
	if m.Foreground.IsSet() {
		s.Foreground = m.Foreground
	}
	if m.Background.IsSet() {
		s.Background = m.Background
	}
	if m.FontStyle != nil {
		s.FontStyle = *m.FontStyle
	}
	return s
}
