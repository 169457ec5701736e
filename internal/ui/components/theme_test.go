package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, ThemeNameDefault, theme.Name)
	assert.Equal(t, "#3b82f6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#111827", theme.Palette.Surface.OnBase.Light)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), theme.Borders.Thick)

	assert.Equal(t, 3, theme.Spacing.Padding[SpacingSizeMedium])
	assert.Equal(t, 2, theme.Spacing.Margin[SpacingSizeSmall])

	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, ThemeNameDark, dark.Name)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should invert surface base")
	assert.NotEqual(t, light.Typography.Base.GetForeground(), dark.Typography.Base.GetForeground(), "dark theme should adjust typography foreground")
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "", want: ThemeNameDefault, wantOK: true},
		{name: "default", want: ThemeNameDefault, wantOK: true},
		{name: " Dark ", want: ThemeNameDark, wantOK: true},
		{name: "light", want: ThemeNameLight, wantOK: true},
		{name: "solarized", want: ThemeNameDefault, wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			theme, ok := ThemeByName(tc.name)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, theme.Name)
		})
	}
}

func TestNormalizeFillsZeroTheme(t *testing.T) {
	theme := Theme{}.Normalize()

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 1, PaddingValue(theme, SpacingSizeExtraSmall))
}

func TestPaletteOverride(t *testing.T) {
	red := lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff0000"}

	palette, ok := DefaultTheme().Palette.Override("Danger", red)
	require.True(t, ok)
	assert.Equal(t, red, palette.Danger.Base)
	assert.Equal(t, red, palette.Danger.Muted)

	original := DefaultTheme().Palette
	unchanged, ok := original.Override("chartreuse", red)
	assert.False(t, ok)
	assert.Equal(t, original, unchanged)
}

func TestWithPaletteRebuildsTypography(t *testing.T) {
	theme := DefaultTheme()
	palette := theme.Palette
	palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#000001", Dark: "#000002"}

	updated := theme.WithPalette(palette)

	assert.Equal(t, palette.Primary.Base, updated.Typography.Title.GetForeground())
	assert.NotEqual(t, palette.Primary.Base, theme.Typography.Title.GetForeground(), "original theme must not change")
}

func TestSpacingLookupOutOfRange(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, PaddingValue(theme, SpacingSizeMedium), PaddingValue(theme, SpacingSize(42)))
	assert.Equal(t, 4, MarginValue(theme, SpacingSizeLarge))
}

func TestTypographyStyle(t *testing.T) {
	theme := DefaultTheme()
	assert.True(t, TypographyStyle(theme, TypographyVariantEmphasis).GetBold(), "emphasis typography should be bold")
	assert.Equal(t, theme.Typography.Base, TypographyStyle(theme, TypographyVariant(99)))
}

func TestStyleModifiers(t *testing.T) {
	theme := DefaultTheme()

	style := NewCompositeStrategy(
		Background(PaletteSurface),
		PaddingX(SpacingSizeSmall),
		MarginY(SpacingSizeExtraSmall),
		Border(BorderVariantDouble),
	).Apply(lipgloss.NewStyle(), theme)

	assert.Equal(t, theme.Palette.Surface.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Surface.OnBase, style.GetForeground())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, 1, style.GetMarginTop())
	assert.Equal(t, lipgloss.DoubleBorder(), style.GetBorderStyle())
}
