package diffstyle

// Resolver builds a Config from Options against pre-loaded databases.
type Resolver struct {
	Themes   ThemeSet
	Syntaxes LanguageDetector
	Colors   ColorParser
}

// Resolve selects the theme once and derives all four style modifiers from
// that single light/dark decision. The only error comes from the theme lookup.
func (r *Resolver) Resolve(opts Options, terminalWidth int) (*Config, error) {
	choice, err := SelectTheme(opts.Theme, opts.Dark, opts.Light, r.Themes)
	if err != nil {
		return nil, err
	}

	mods := make(map[Category]StyleModifier, len(Categories))
	for _, cat := range Categories {
		light, dark := cat.DefaultColors()
		suppress := cat.Removed() && !opts.HighlightRemoved
		mods[cat] = BuildStyleModifier(opts.Arg(cat), choice.IsLight, light, dark, suppress, r.Colors)
	}

	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	return &Config{
		ThemeName:        choice.Name,
		Theme:            choice.Theme,
		IsLight:          choice.IsLight,
		MinusStyle:       mods[CategoryMinus],
		MinusEmphStyle:   mods[CategoryMinusEmph],
		PlusStyle:        mods[CategoryPlus],
		PlusEmphStyle:    mods[CategoryPlusEmph],
		Syntaxes:         r.Syntaxes,
		TerminalWidth:    terminalWidth,
		Width:            opts.Width,
		TabWidth:         tabWidth,
		NoStyle:          Style{Foreground: NoColor, Background: NoColor},
		MaxBufferedLines: DefaultMaxBufferedLines,
	}, nil
}
