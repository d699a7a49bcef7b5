package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	idaerrors "github.com/idawm/idatheme/pkg/errors"
)

// Lighten shifts a color's HSL lightness up by amount, clamped at 1.0, and
// returns the result in canonical form. Hue and saturation are preserved and
// each channel is rounded to the nearest integer. There is no lower clamp:
// a negative amount darkens.
func Lighten(color string, amount float64) (string, error) {
	parsed, err := colorful.Hex("#" + StripHash(color))
	if err != nil {
		return "", idaerrors.NewInvalidColorError(color, "lighten")
	}

	h, s, l := parsed.Hsl()
	l = math.Min(1.0, l+amount)

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}
