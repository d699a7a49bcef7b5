// Package builder orchestrates one theme build: load the base palette and
// semantic defaults, merge user overrides, validate the result, and render
// every artifact into the current-theme directory.
package builder

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/idawm/idatheme/internal/color"
	"github.com/idawm/idatheme/internal/logger"
	"github.com/idawm/idatheme/internal/override"
	"github.com/idawm/idatheme/internal/render"
	"github.com/idawm/idatheme/internal/theme"
)

const (
	themeFileName    = "theme.json"
	semanticFileName = "semantic.json"
	overrideFileName = "overrides.conf"
)

// Options carries the explicit build context. Every path the build touches
// derives from these values; there is no ambient state.
type Options struct {
	CacheDir string
	RepoRoot string
	ThemeID  string

	// GlobalOverridePath replaces the default per-user override location
	// when set. Tests use this to avoid touching the real config dir.
	GlobalOverridePath string

	Logger *logger.Logger
}

// Builder generates all artifacts for a single theme id.
type Builder struct {
	themeID            string
	currentDir         string
	themeDir           string
	globalOverridePath string

	renderer *render.Renderer
	log      *logger.Logger
}

// New creates a Builder for the given build context.
func New(opts Options) (*Builder, error) {
	globalPath := opts.GlobalOverridePath
	if globalPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		globalPath = filepath.Join(configDir, "ida-theme", overrideFileName)
	}

	return &Builder{
		themeID:            opts.ThemeID,
		currentDir:         filepath.Join(opts.CacheDir, "current"),
		themeDir:           filepath.Join(opts.CacheDir, "themes", opts.ThemeID),
		globalOverridePath: globalPath,
		renderer:           render.New(filepath.Join(opts.RepoRoot, "templates")),
		log:                opts.Logger,
	}, nil
}

// Build runs the full pipeline. Stages are strictly sequential; the first
// failing stage aborts the build, and artifacts already written stay on
// disk (each write is independent).
func (b *Builder) Build() error {
	b.log.WithFields(map[string]any{"theme_id": b.themeID}).Debug("building theme")

	doc, semantic, err := b.loadInputs()
	if err != nil {
		return err
	}

	merged, err := b.mergeOverrides(semantic)
	if err != nil {
		return err
	}

	validated, err := b.validateSemantic(merged)
	if err != nil {
		return err
	}

	generators := []func(*theme.Document, theme.Semantic) error{
		b.generateFishTheme,
		b.generateWofiColors,
		b.generateSemanticConf,
		b.generateSemanticCSS,
		b.generateSemanticFish,
	}
	for _, generate := range generators {
		if err := generate(doc, validated); err != nil {
			return err
		}
	}

	b.log.Debug("build complete")
	return nil
}

func (b *Builder) loadInputs() (*theme.Document, theme.Semantic, error) {
	b.log.Debug("reading theme data")

	doc, err := theme.LoadDocument(filepath.Join(b.currentDir, themeFileName))
	if err != nil {
		return nil, nil, err
	}

	semantic, err := theme.LoadSemantic(filepath.Join(b.currentDir, semanticFileName))
	if err != nil {
		return nil, nil, err
	}

	b.log.WithFields(map[string]any{
		"colors": len(doc.Colors),
		"roles":  len(semantic),
	}).Debug("theme data loaded")

	return doc, semantic, nil
}

func (b *Builder) mergeOverrides(semantic theme.Semantic) (theme.Semantic, error) {
	b.log.Debug("applying semantic overrides")

	manager := override.NewManager(
		b.globalOverridePath,
		filepath.Join(b.themeDir, overrideFileName),
		b.log,
	)
	return manager.ApplyOverrides(semantic)
}

// validateSemantic re-validates every merged value. A failure here is an
// authored or system defect rather than an override typo, so it aborts the
// whole build.
func (b *Builder) validateSemantic(merged theme.Semantic) (theme.Semantic, error) {
	b.log.Debug("validating semantic colors")

	validated := make(theme.Semantic, len(merged))
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		canonical, err := color.Validate(merged[key], "semantic."+key)
		if err != nil {
			return nil, err
		}
		validated[key] = canonical
	}

	return validated, nil
}

// writeArtifact renders the template named after the artifact and writes the
// result into the current-theme directory.
func (b *Builder) writeArtifact(name string, data map[string]string) error {
	content, err := b.renderer.Render(name+".tmpl", data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.currentDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(b.currentDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}

	b.log.WithFields(map[string]any{"artifact": name}).Debug("artifact written")
	return nil
}
