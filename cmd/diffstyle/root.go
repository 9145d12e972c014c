package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/diffstyle"
	"github.com/spf13/cobra"
)

// ErrNoThemes is returned when the theme database is empty.
var ErrNoThemes = errors.New("no themes available")

// rootDeps holds the process-level collaborators of the root command.
type rootDeps struct {
	Loader      diffstyle.OptionsLoader
	ConfigPath  string     // Used when --config is not given
	Width       func() int // Terminal width
	LogOutput   io.Writer
	LogLevelEnv string
}

func newRootCmd(app *App, deps rootDeps) *cobra.Command {
	var (
		flags      diffstyle.Options
		configPath string
		listThemes bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "diffstyle",
		Short: "Resolve the colors used to render diffs",
		Long: `diffstyle resolves the background and foreground colors used for removed
and added lines, and for the changed regions within them, from a theme,
a light/dark preference and optional color overrides.

Colors are "#rgb", "#rrggbb", a 256-color palette index or "none".
Overrides that do not parse fall back to the theme's default.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(deps.LogOutput, deps.LogLevelEnv, verbose)
			if err != nil {
				return err
			}
			app.Logger = logger

			if listThemes {
				return app.ListThemes()
			}

			path := deps.ConfigPath
			if cmd.Flags().Changed("config") {
				path = configPath
			}
			opts, err := deps.Loader.Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			opts = mergeFlags(cmd, opts, flags)

			return app.Run(opts, deps.Width())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Theme, "theme", "", `Syntax highlighting theme, or "none" for plain coloring`)
	f.BoolVar(&flags.Light, "light", false, "Use the default light theme")
	f.BoolVar(&flags.Dark, "dark", false, "Use dark defaults when no theme is active")
	f.StringVar(&flags.MinusColor, "minus-color", "", "Background color for removed lines")
	f.StringVar(&flags.MinusEmphColor, "minus-emph-color", "", "Background color for changed text in removed lines")
	f.StringVar(&flags.PlusColor, "plus-color", "", "Background color for added lines")
	f.StringVar(&flags.PlusEmphColor, "plus-emph-color", "", "Background color for changed text in added lines")
	f.BoolVar(&flags.HighlightRemoved, "highlight-removed", false, "Syntax highlight removed lines instead of painting them flat")
	f.IntVar(&flags.TabWidth, "tabs", diffstyle.DefaultTabWidth, "Tab width in columns")
	f.IntVar(&flags.Width, "width", 0, "Display width in columns (default: terminal width)")
	f.StringVar(&configPath, "config", "", "Config file path")
	f.BoolVar(&listThemes, "list-themes", false, "List available themes and exit")
	f.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("light", "dark")

	return cmd
}

// mergeFlags returns opts with every explicitly set flag applied on top.
func mergeFlags(cmd *cobra.Command, opts, flags diffstyle.Options) diffstyle.Options {
	changed := cmd.Flags().Changed
	if changed("theme") {
		opts.Theme = flags.Theme
	}
	if changed("light") || changed("dark") {
		opts.Light, opts.Dark = flags.Light, flags.Dark
	}
	if changed("minus-color") {
		opts.MinusColor = flags.MinusColor
	}
	if changed("minus-emph-color") {
		opts.MinusEmphColor = flags.MinusEmphColor
	}
	if changed("plus-color") {
		opts.PlusColor = flags.PlusColor
	}
	if changed("plus-emph-color") {
		opts.PlusEmphColor = flags.PlusEmphColor
	}
	if changed("highlight-removed") {
		opts.HighlightRemoved = flags.HighlightRemoved
	}
	if changed("tabs") || opts.TabWidth == 0 {
		opts.TabWidth = flags.TabWidth
	}
	if changed("width") {
		opts.Width = flags.Width
	}
	return opts
}
