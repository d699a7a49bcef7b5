package builder

import (
	"github.com/idawm/idatheme/internal/color"
	"github.com/idawm/idatheme/internal/theme"
)

// generateFishTheme writes the fish shell color theme. Fish wants bare hex
// digits, so every value is hash-stripped.
func (b *Builder) generateFishTheme(doc *theme.Document, semantic theme.Semantic) error {
	data := map[string]string{
		"fg":     color.StripHash(doc.Foreground),
		"urgent": color.StripHash(semantic["urgent"]),
		"color8": color.StripHash(doc.Colors[8]),
	}

	return b.writeArtifact("fish-theme.fish", data)
}

// generateWofiColors writes the launcher stylesheet. The two background
// variants are derived by lightening the base background.
func (b *Builder) generateWofiColors(doc *theme.Document, semantic theme.Semantic) error {
	bg := doc.Background

	bgAlt, err := color.Lighten(bg, 0.08)
	if err != nil {
		return err
	}
	bgHover, err := color.Lighten(bg, 0.18)
	if err != nil {
		return err
	}

	data := map[string]string{
		"bg":       bg,
		"bg_alt":   bgAlt,
		"bg_hover": bgHover,
		"fg":       doc.Foreground,
		"accent":   semantic["accent"],
		"color5":   doc.Colors[5],
		"urgent":   semantic["urgent"],
		"warning":  semantic["warning"],
		"success":  semantic["success"],
		"info":     semantic["info"],
	}

	return b.writeArtifact("wofi-colors.css", data)
}

// generateSemanticConf writes the Hyprland config. Hyprland's rgba() takes
// the color and alpha packed as 8 hex digits.
func (b *Builder) generateSemanticConf(_ *theme.Document, semantic theme.Semantic) error {
	data := map[string]string{
		"accent_rgba":  color.ToRGBA(semantic["accent"], color.OpaqueAlpha),
		"accent2_rgba": color.ToRGBA(semantic["accent2"], color.OpaqueAlpha),
		"warning_rgba": color.ToRGBA(semantic["warning"], color.OpaqueAlpha),
		"urgent_rgba":  color.ToRGBA(semantic["urgent"], color.OpaqueAlpha),
	}

	return b.writeArtifact("ida-semantic.conf", data)
}

// generateSemanticCSS writes CSS variables for the full semantic mapping.
func (b *Builder) generateSemanticCSS(_ *theme.Document, semantic theme.Semantic) error {
	return b.writeArtifact("ida-semantic.css", semantic)
}

// generateSemanticFish writes fish variables for the full semantic mapping.
func (b *Builder) generateSemanticFish(_ *theme.Document, semantic theme.Semantic) error {
	return b.writeArtifact("ida-semantic.fish", semantic)
}
