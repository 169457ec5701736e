package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   Status
		wantOK bool
	}{
		{in: "", want: StatusDefault, wantOK: true},
		{in: "default", want: StatusDefault, wantOK: true},
		{in: "secondary", want: StatusSecondary, wantOK: true},
		{in: " Success ", want: StatusSuccess, wantOK: true},
		{in: "WARNING", want: StatusWarning, wantOK: true},
		{in: "error", want: StatusError, wantOK: true},
		{in: "danger", want: StatusError, wantOK: true},
		{in: "critical", want: StatusDefault, wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseStatus(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "default", StatusDefault.String())
	assert.Equal(t, "Status(42)", Status(42).String())
	assert.False(t, Status(42).Valid())
}

func TestStatusNextCycles(t *testing.T) {
	seen := []Status{StatusDefault}
	s := StatusDefault
	for i := 0; i < 5; i++ {
		s = s.Next()
		seen = append(seen, s)
	}
	assert.Equal(t, []Status{StatusDefault, StatusSecondary, StatusSuccess, StatusWarning, StatusError, StatusDefault}, seen)
	assert.Equal(t, StatusDefault, Status(-3).Next())
}

func TestColorsForStatuses(t *testing.T) {
	p := DefaultTheme().Palette

	cases := []struct {
		status Status
		want   StatusColors
	}{
		{StatusDefault, StatusColors{Text: p.Surface.OnBase, Border: p.Neutral.Muted, HoverBorder: p.Neutral.Base}},
		{StatusSecondary, StatusColors{Text: p.Surface.OnBase, Border: p.Secondary.Base, HoverBorder: p.Secondary.Base}},
		{StatusSuccess, StatusColors{Text: p.Surface.OnBase, Border: p.Success.Muted, HoverBorder: p.Success.Base}},
		{StatusWarning, StatusColors{Text: p.Surface.OnBase, Border: p.Warning.Muted, HoverBorder: p.Warning.Base}},
		{StatusError, StatusColors{Text: p.Danger.Base, Border: p.Danger.Base, HoverBorder: p.Danger.Base}},
	}

	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, ColorsFor(p, tc.status))
		})
	}
}

func TestColorsForUnknownStatusDegradesToDefault(t *testing.T) {
	p := DefaultTheme().Palette
	assert.Equal(t, ColorsFor(p, StatusDefault), ColorsFor(p, Status(99)))
}

func TestColorsForUsesOnlyItsPalette(t *testing.T) {
	light := ColorsFor(DefaultTheme().Palette, StatusDefault)
	dark := ColorsFor(DarkTheme().Palette, StatusDefault)
	assert.NotEqual(t, light, dark)
	assert.Equal(t, light, ColorsFor(DefaultTheme().Palette, StatusDefault))
}

func TestBorderFor(t *testing.T) {
	c := ColorsFor(DefaultTheme().Palette, StatusSuccess)
	assert.Equal(t, c.Border, c.BorderFor(false))
	assert.Equal(t, c.HoverBorder, c.BorderFor(true))
}

func TestDisabledColors(t *testing.T) {
	p := DefaultTheme().Palette
	d := DisabledColors(p)
	assert.Equal(t, p.Surface.Muted, d.Background)
	assert.Equal(t, p.Neutral.Muted, d.Border)
}
