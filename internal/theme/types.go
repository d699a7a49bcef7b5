// Package theme loads and validates the two JSON documents a build starts
// from: the base palette produced by the wallpaper pipeline (theme.json) and
// the default semantic role mapping (semantic.json).
package theme

// Document is the base palette for one theme. Indices 5 and 8 of Colors are
// consumed directly by artifacts, so at least 9 entries are required; a full
// 16-color terminal palette is the normal case.
type Document struct {
	Background string   `json:"background" validate:"required,hex6"`
	Foreground string   `json:"foreground" validate:"required,hex6"`
	Colors     []string `json:"colors" validate:"required,min=9,dive,hex6"`
}

// Semantic maps role names to hex colors. It is mutated exactly once, during
// the override merge, then treated as read-only for all renders.
type Semantic map[string]string

// RequiredRoles are the semantic roles every semantic.json must define.
var RequiredRoles = []string{"urgent", "warning", "success", "info", "accent", "accent2"}
