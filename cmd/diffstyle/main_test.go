package main_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffstyle"
	"github.com/fwojciec/diffstyle/chroma"
	main "github.com/fwojciec/diffstyle/cmd/diffstyle"
	"github.com/fwojciec/diffstyle/colorful"
	"github.com/fwojciec/diffstyle/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(out, logs *bytes.Buffer) *main.App {
	r := lg.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return &main.App{
		Out: out,
		Resolver: &diffstyle.Resolver{
			Themes:   chroma.NewThemeSet(),
			Syntaxes: chroma.NewDetector(),
			Colors:   colorful.NewParser(),
		},
		Renderer: r,
		Logger:   slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func TestApp_Run_PlainDark(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)

	err := app.Run(diffstyle.Options{Theme: "none", Dark: true}, 80)

	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "theme:  none (dark)", lines[0])
	assert.Equal(t, "width:  80 (tabs 4)", lines[1])
	assert.Contains(t, out.String(), "bg #3f0001  fg none")
	assert.Contains(t, out.String(), "bg #013b01  fg inherit")
}

func TestApp_Run_ThemeOverridesDarkFlag(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)

	err := app.Run(diffstyle.Options{Theme: "github", Dark: true}, 80)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "theme:  github (light)\n"))
	assert.Contains(t, out.String(), "bg #ffe0e0")
}

func TestApp_Run_Override(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)

	err := app.Run(diffstyle.Options{Theme: "dracula", MinusColor: "#112233", Width: 40}, 120)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "theme:  dracula (dark)")
	assert.Contains(t, out.String(), "width:  40 (tabs 4)")
	assert.Contains(t, out.String(), "bg #112233  fg none")
	assert.Contains(t, out.String(), "- minus"+strings.Repeat(" ", 40-len("- minus"))+"\n")
}

func TestApp_Run_LogsIgnoredColors(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)

	err := app.Run(diffstyle.Options{Theme: "none", PlusColor: "chartreuse"}, 80)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "bg #d0ffd0")
	assert.Contains(t, logs.String(), "ignoring unparseable color")
	assert.Contains(t, logs.String(), "chartreuse")
}

func TestApp_Run_WithoutLogger(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)
	app.Logger = nil

	err := app.Run(diffstyle.Options{Theme: "none", MinusColor: "not-a-color"}, 80)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "bg #ffe0e0")
}

func TestApp_Run_UnknownTheme(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	app := newApp(&out, &logs)

	err := app.Run(diffstyle.Options{Theme: "no-such-theme"}, 80)

	require.ErrorIs(t, err, diffstyle.ErrUnknownTheme)
	assert.Empty(t, out.String())
}

func TestApp_ListThemes(t *testing.T) {
	t.Parallel()

	t.Run("prints names with appearance", func(t *testing.T) {
		t.Parallel()

		var out, logs bytes.Buffer
		app := newApp(&out, &logs)

		require.NoError(t, app.ListThemes())

		assert.Contains(t, out.String(), "github\tlight\n")
		assert.Contains(t, out.String(), "monokai\tdark\n")
	})

	t.Run("fails on an empty theme set", func(t *testing.T) {
		t.Parallel()

		var out, logs bytes.Buffer
		app := newApp(&out, &logs)
		app.Resolver.Themes = &mock.ThemeSet{NamesFn: func() []string { return nil }}

		require.ErrorIs(t, app.ListThemes(), main.ErrNoThemes)
	})
}
