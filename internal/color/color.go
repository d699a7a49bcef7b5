// Package color validates hex color strings and derives alternate
// representations (hash-stripped, alpha-extended, lightness-shifted).
package color

import (
	"regexp"
	"strings"

	idaerrors "github.com/idawm/idatheme/pkg/errors"
)

// OpaqueAlpha is the alpha suffix for a fully opaque RGBA color.
const OpaqueAlpha = "FF"

var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// Validate checks raw against a strict 6-digit hex pattern, with or without
// a leading "#", and returns the canonical form: "#" followed by uppercase
// digits. context names the source of the value for diagnostics, e.g.
// "overrides.conf line 3" or "semantic.accent".
func Validate(raw, context string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", idaerrors.NewInvalidColorError(raw, context)
	}

	match := hexPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", idaerrors.NewInvalidColorError(raw, context)
	}

	return "#" + strings.ToUpper(match[1]), nil
}

// StripHash removes the leading "#" if present. No validation is performed;
// callers that need a well-formed result must Validate first.
func StripHash(color string) string {
	return strings.TrimPrefix(color, "#")
}

// ToRGBA packs a color and a 2-digit hex alpha into RRGGBBAA form without
// the leading "#", as Hyprland's rgba() syntax expects.
func ToRGBA(color, alpha string) string {
	return StripHash(color) + alpha
}
