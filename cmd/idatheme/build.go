package main

import (
	"github.com/spf13/cobra"

	"github.com/idawm/idatheme/internal/builder"
	"github.com/idawm/idatheme/internal/logger"
)

type buildOptions struct {
	CacheDir string
	RepoRoot string
	ThemeID  string
	Verbose  bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate all theme files for a theme id",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateBuildOptions(opts); err != nil {
				return err
			}

			return buildCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Theme cache directory (e.g. ~/.cache/ida-theme)")
	cmd.Flags().StringVar(&opts.RepoRoot, "repo-root", "", "Repository root containing the templates directory")
	cmd.Flags().StringVar(&opts.ThemeID, "theme-id", "", "Theme identifier (e.g. wallpaper-sha)")
	cmd.MarkFlagRequired("cache-dir") //nolint:errcheck
	cmd.MarkFlagRequired("repo-root") //nolint:errcheck
	cmd.MarkFlagRequired("theme-id")  //nolint:errcheck

	return cmd
}

func runBuild(opts buildOptions) error {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	b, err := builder.New(builder.Options{
		CacheDir: opts.CacheDir,
		RepoRoot: opts.RepoRoot,
		ThemeID:  opts.ThemeID,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	if err := b.Build(); err != nil {
		log.Error(err, "theme build failed")
		return err
	}

	return nil
}
