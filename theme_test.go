package diffstyle_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/fwojciec/diffstyle"
	"github.com/fwojciec/diffstyle/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newThemeSet returns a theme set containing the given names.
func newThemeSet(names ...string) *mock.ThemeSet {
	themes := make(map[string]diffstyle.Theme, len(names))
	for _, name := range names {
		themes[name] = newTheme(name)
	}
	return &mock.ThemeSet{
		ThemeFn: func(name string) (diffstyle.Theme, error) {
			theme, ok := themes[name]
			if !ok {
				return nil, fmt.Errorf("%q: %w", name, diffstyle.ErrUnknownTheme)
			}
			return theme, nil
		},
		NamesFn: func() []string { return names },
	}
}

func newTheme(name string) *mock.Theme {
	return &mock.Theme{
		NameFn: func() string { return name },
		BaseFn: func() diffstyle.Style { return diffstyle.Style{} },
	}
}

// failingThemeSet fails the test if any lookup happens.
func failingThemeSet(t *testing.T) *mock.ThemeSet {
	t.Helper()
	return &mock.ThemeSet{
		ThemeFn: func(name string) (diffstyle.Theme, error) {
			t.Errorf("unexpected theme lookup for %q", name)
			return nil, diffstyle.ErrUnknownTheme
		},
		NamesFn: func() []string { return nil },
	}
}

func TestSelectTheme(t *testing.T) {
	t.Parallel()

	themes := newThemeSet(diffstyle.DefaultLightTheme, diffstyle.DefaultDarkTheme, "dracula", "solarized-light")

	t.Run("defaults to the light theme when light is requested", func(t *testing.T) {
		t.Parallel()

		choice, err := diffstyle.SelectTheme("", false, true, themes)

		require.NoError(t, err)
		assert.Equal(t, diffstyle.DefaultLightTheme, choice.Name)
		require.NotNil(t, choice.Theme)
		assert.Equal(t, diffstyle.DefaultLightTheme, choice.Theme.Name())
		assert.True(t, choice.IsLight)
	})

	t.Run("defaults to the dark theme otherwise", func(t *testing.T) {
		t.Parallel()

		choice, err := diffstyle.SelectTheme("", false, false, themes)

		require.NoError(t, err)
		assert.Equal(t, diffstyle.DefaultDarkTheme, choice.Name)
		assert.False(t, choice.None())
		assert.False(t, choice.IsLight)
	})

	t.Run("none selects no theme in any case without a lookup", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"none", "None", "NONE", "nOnE"} {
			choice, err := diffstyle.SelectTheme(name, false, false, failingThemeSet(t))

			require.NoError(t, err, "name: %s", name)
			assert.True(t, choice.None(), "name: %s", name)
			assert.Nil(t, choice.Theme, "name: %s", name)
		}
	})

	t.Run("without a theme the appearance follows the dark flag", func(t *testing.T) {
		t.Parallel()

		light, err := diffstyle.SelectTheme("none", false, false, themes)
		require.NoError(t, err)
		assert.True(t, light.IsLight)

		dark, err := diffstyle.SelectTheme("none", true, true, themes)
		require.NoError(t, err)
		assert.False(t, dark.IsLight)
	})

	t.Run("a light theme stays light when dark is requested", func(t *testing.T) {
		t.Parallel()

		choice, err := diffstyle.SelectTheme("solarized-light", true, false, themes)

		require.NoError(t, err)
		assert.True(t, choice.IsLight)
	})

	t.Run("a dark theme stays dark when dark is not requested", func(t *testing.T) {
		t.Parallel()

		choice, err := diffstyle.SelectTheme("dracula", false, true, themes)

		require.NoError(t, err)
		assert.Equal(t, "dracula", choice.Theme.Name())
		assert.False(t, choice.IsLight)
	})

	t.Run("propagates unknown theme errors", func(t *testing.T) {
		t.Parallel()

		_, err := diffstyle.SelectTheme("no-such-theme", false, false, themes)

		require.ErrorIs(t, err, diffstyle.ErrUnknownTheme)
		assert.Contains(t, err.Error(), "no-such-theme")
	})
}

func TestIsLightTheme(t *testing.T) {
	t.Parallel()

	assert.True(t, diffstyle.IsLightTheme(diffstyle.DefaultLightTheme))
	assert.False(t, diffstyle.IsLightTheme(diffstyle.DefaultDarkTheme))
	assert.False(t, diffstyle.IsLightTheme("GitHub"), "membership is case-sensitive")
	assert.False(t, diffstyle.IsLightTheme(""))
}

func TestLightThemes(t *testing.T) {
	t.Parallel()

	names := diffstyle.LightThemes()

	assert.True(t, sort.StringsAreSorted(names))
	for _, name := range names {
		assert.True(t, diffstyle.IsLightTheme(name), "name: %s", name)
	}
}
