package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateBuildOptions(opts buildOptions) error {
	if strings.TrimSpace(opts.CacheDir) == "" {
		return fmt.Errorf("cache directory is required")
	}

	if strings.TrimSpace(opts.ThemeID) == "" {
		return fmt.Errorf("theme id is required")
	}

	if strings.TrimSpace(opts.RepoRoot) == "" {
		return fmt.Errorf("repo root is required")
	}

	abs, err := filepath.Abs(opts.RepoRoot)
	if err != nil {
		return fmt.Errorf("resolve repo root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("repo root does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repo root %s is not a directory", abs)
	}

	return nil
}
