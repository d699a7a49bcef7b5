// Package override reads per-user KEY=VALUE color override files and merges
// them over the default semantic mapping with a fixed precedence: defaults,
// then global overrides, then per-theme overrides.
package override

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/idawm/idatheme/internal/color"
	"github.com/idawm/idatheme/internal/logger"
)

// keyPrefix namespaces override keys so the file can coexist with other
// shell-style configuration. "IDA_ACCENT=..." targets the "accent" role.
const keyPrefix = "IDA_"

// Manager resolves the two override layers for one build.
type Manager struct {
	GlobalPath   string
	PerThemePath string

	log *logger.Logger
}

// NewManager creates a Manager for the given override file locations.
func NewManager(globalPath, perThemePath string, log *logger.Logger) *Manager {
	return &Manager{GlobalPath: globalPath, PerThemePath: perThemePath, log: log}
}

// lineKind classifies one line of an override file.
type lineKind int

const (
	// lineSkip marks blank lines, comments, lines without "=", and lines
	// whose key or value is empty after trimming. None of these are errors.
	lineSkip lineKind = iota
	lineEntry
)

// parseLine splits a single override line into its key and value. Only
// lineEntry results carry data; everything else is non-data and skipped.
func parseLine(line string) (key, value string, kind lineKind) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", lineSkip
	}

	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return "", "", lineSkip
	}

	key = strings.TrimSpace(trimmed[:eq])
	value = strings.TrimSpace(trimmed[eq+1:])
	if key == "" || value == "" {
		return "", "", lineSkip
	}

	return key, value, lineEntry
}

// ReadOverrides parses KEY=VALUE entries from the file at path. A missing
// file yields an empty mapping. Entries whose value fails hex validation are
// dropped with a warning; the rest of the file keeps processing. The last
// occurrence of a duplicate key wins.
func (m *Manager) ReadOverrides(path string) (map[string]string, error) {
	overrides := map[string]string{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides, nil
		}
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		key, value, kind := parseLine(line)
		if kind == lineSkip {
			continue
		}

		context := fmt.Sprintf("%s line %d", filepath.Base(path), i+1)
		validated, err := color.Validate(value, context)
		if err != nil {
			m.log.Warn(err.Error())
			continue
		}

		overrides[key] = validated
	}

	return overrides, nil
}

// ApplyOverrides merges both override layers over defaults and returns the
// result. Global overrides are applied first, then per-theme overrides, so
// per-theme entries take final precedence. Keys that do not match an
// existing semantic role are ignored; defaults is never mutated.
func (m *Manager) ApplyOverrides(defaults map[string]string) (map[string]string, error) {
	result := maps.Clone(defaults)

	layers := []struct {
		name string
		path string
	}{
		{name: "global", path: m.GlobalPath},
		{name: "per-theme", path: m.PerThemePath},
	}

	for _, layer := range layers {
		overrides, err := m.ReadOverrides(layer.path)
		if err != nil {
			return nil, err
		}

		for _, rawKey := range slices.Sorted(maps.Keys(overrides)) {
			semanticKey := strings.ToLower(strings.TrimPrefix(rawKey, keyPrefix))
			if _, known := result[semanticKey]; !known {
				continue
			}

			result[semanticKey] = overrides[rawKey]
			m.log.WithFields(map[string]any{
				"layer": layer.name,
				"role":  semanticKey,
				"value": overrides[rawKey],
			}).Debug("semantic override applied")
		}
	}

	return result, nil
}
