package color

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func lightness(t *testing.T, hex string) float64 {
	t.Helper()

	parsed, err := colorful.Hex(hex)
	require.NoError(t, err)
	_, _, l := parsed.Hsl()
	return l
}

func TestLightenZeroAmountIsIdentity(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#1E1E2E", "#89B4FA", "#000000", "#FFFFFF"} {
		got, err := Lighten(hex, 0.0)
		require.NoError(t, err)
		require.Equal(t, hex, got)
	}
}

func TestLightenBlackByHalfIsMidGray(t *testing.T) {
	t.Parallel()

	got, err := Lighten("#000000", 0.5)
	require.NoError(t, err)
	require.Equal(t, "#808080", got)
}

func TestLightenClampsAtFullLightness(t *testing.T) {
	t.Parallel()

	got, err := Lighten("#89B4FA", 1.0)
	require.NoError(t, err)
	require.Equal(t, "#FFFFFF", got)
}

func TestLightenIsMonotonicInAmount(t *testing.T) {
	t.Parallel()

	base := "#1E1E2E"
	prev := lightness(t, base)
	for _, amount := range []float64{0.08, 0.18, 0.5, 1.0} {
		got, err := Lighten(base, amount)
		require.NoError(t, err)

		l := lightness(t, got)
		require.GreaterOrEqual(t, l+1e-3, prev, "amount %v", amount)
		prev = l
	}
}

func TestLightenPreservesHueAndSaturation(t *testing.T) {
	t.Parallel()

	parsed, err := colorful.Hex("#89b4fa")
	require.NoError(t, err)
	h0, s0, l0 := parsed.Hsl()

	got, err := Lighten("#89B4FA", 0.08)
	require.NoError(t, err)

	lightened, err := colorful.Hex(got)
	require.NoError(t, err)
	h1, s1, l1 := lightened.Hsl()

	require.InDelta(t, h0, h1, 1.0)
	require.InDelta(t, s0, s1, 0.05)
	require.InDelta(t, l0+0.08, l1, 0.01)
}

func TestLightenNegativeAmountDarkens(t *testing.T) {
	t.Parallel()

	got, err := Lighten("#808080", -0.25)
	require.NoError(t, err)
	require.Less(t, lightness(t, got), lightness(t, "#808080"))
}

func TestLightenRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := Lighten("not-a-color", 0.1)
	require.Error(t, err)
}
