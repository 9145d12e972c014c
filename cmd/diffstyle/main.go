package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffstyle"
	"github.com/fwojciec/diffstyle/chroma"
	"github.com/fwojciec/diffstyle/colorful"
	"github.com/fwojciec/diffstyle/lipgloss"
	"github.com/fwojciec/diffstyle/toml"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// App encapsulates the application logic for testing.
type App struct {
	Out      io.Writer
	Resolver *diffstyle.Resolver
	Renderer *lg.Renderer
	Logger   *slog.Logger // Nil discards log output
}

// Run resolves opts and prints the resulting configuration with a sample
// line for each category.
func (a *App) Run(opts diffstyle.Options, terminalWidth int) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, cat := range diffstyle.Categories {
		arg := opts.Arg(cat)
		if arg == "" {
			continue
		}
		if _, ok := a.Resolver.Colors.ParseColor(arg); !ok {
			logger.Debug("ignoring unparseable color", "category", cat.String(), "value", arg)
		}
	}

	cfg, err := a.Resolver.Resolve(opts, terminalWidth)
	if err != nil {
		return err
	}

	appearance := "dark"
	if cfg.IsLight {
		appearance = "light"
	}
	logger.Debug("resolved theme", "theme", cfg.ThemeName, "plain", cfg.Theme == nil, "appearance", appearance)

	themeName := cfg.ThemeName
	if cfg.Theme == nil {
		themeName = diffstyle.NoTheme
	}
	fmt.Fprintf(a.Out, "theme:  %s (%s)\n", themeName, appearance)
	fmt.Fprintf(a.Out, "width:  %d (tabs %d)\n", cfg.DisplayWidth(), cfg.TabWidth)

	styles := lipgloss.NewStyles(a.Renderer, cfg)
	for _, cat := range diffstyle.Categories {
		m := cfg.Modifier(cat)
		fmt.Fprintf(a.Out, "%-11s bg %-8s fg %s\n", cat.String(), describe(m.Background), describe(m.Foreground))
		fmt.Fprintln(a.Out, lipgloss.Swatch(styles.Category(cat), sampleText(cat), cfg.DisplayWidth()))
	}
	return nil
}

// ListThemes prints every known theme with its appearance.
func (a *App) ListThemes() error {
	names := a.Resolver.Themes.Names()
	if len(names) == 0 {
		return ErrNoThemes
	}
	for _, name := range names {
		appearance := "dark"
		if diffstyle.IsLightTheme(name) {
			appearance = "light"
		}
		fmt.Fprintf(a.Out, "%s\t%s\n", name, appearance)
	}
	return nil
}

func describe(c diffstyle.Color) string {
	if !c.IsSet() {
		return "inherit"
	}
	return c.String()
}

func sampleText(cat diffstyle.Category) string {
	if cat.Removed() {
		return "- " + cat.String()
	}
	return "+ " + cat.String()
}

func terminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app := &App{
		Out: os.Stdout,
		Resolver: &diffstyle.Resolver{
			Themes:   chroma.NewThemeSet(),
			Syntaxes: chroma.NewDetector(),
			Colors:   colorful.NewParser(),
		},
		Renderer: lg.NewRenderer(os.Stdout),
	}

	cmd := newRootCmd(app, rootDeps{
		Loader:      toml.NewLoader(),
		ConfigPath:  toml.DefaultPath(),
		Width:       func() int { return terminalWidth(os.Stdout) },
		LogOutput:   os.Stderr,
		LogLevelEnv: os.Getenv("DIFFSTYLE_LOG_LEVEL"),
	})
	return cmd.Execute()
}
