package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCommandParsesFlags(t *testing.T) {
	repoRoot := t.TempDir()
	cacheDir := t.TempDir()

	var captured buildOptions
	originalRunner := buildCmdRunner
	t.Cleanup(func() { buildCmdRunner = originalRunner })
	buildCmdRunner = func(opts buildOptions) error {
		captured = opts
		return nil
	}

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{
		"build",
		"--cache-dir", cacheDir,
		"--repo-root", repoRoot,
		"--theme-id", "wallpaper-abc123",
		"--verbose",
	})

	require.NoError(t, root.Execute())
	require.Equal(t, cacheDir, captured.CacheDir)
	require.Equal(t, repoRoot, captured.RepoRoot)
	require.Equal(t, "wallpaper-abc123", captured.ThemeID)
	require.True(t, captured.Verbose)
}

func TestBuildCommandRequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"build"})

	err := root.Execute()
	require.Error(t, err)
}

func TestValidateBuildOptions(t *testing.T) {
	t.Parallel()

	repoRoot := t.TempDir()

	cases := []struct {
		name    string
		opts    buildOptions
		wantErr string
	}{
		{
			name: "valid options",
			opts: buildOptions{CacheDir: "/tmp/cache", RepoRoot: repoRoot, ThemeID: "abc"},
		},
		{
			name:    "missing cache dir",
			opts:    buildOptions{RepoRoot: repoRoot, ThemeID: "abc"},
			wantErr: "cache directory is required",
		},
		{
			name:    "missing theme id",
			opts:    buildOptions{CacheDir: "/tmp/cache", RepoRoot: repoRoot},
			wantErr: "theme id is required",
		},
		{
			name:    "repo root does not exist",
			opts:    buildOptions{CacheDir: "/tmp/cache", RepoRoot: "/path/does/not/exist", ThemeID: "abc"},
			wantErr: "repo root does not exist",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validateBuildOptions(tc.opts)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
