package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

func TestResolveOutputDir(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Directory = "build"

	require.Equal(t, filepath.Join("/src", "build"), resolveOutputDir("", "/src", cfg))
	require.Equal(t, filepath.Join("/src", "public"), resolveOutputDir("public", "/src", cfg))
	require.Equal(t, "/abs/out", resolveOutputDir("/abs/out", "/src", cfg))
}

func TestTemplateOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Templates.Directory = "my-templates"

	b := &BuildCmd{}
	require.Equal(t, "my-templates", b.templateOverride(cfg))

	b.Templates = "/elsewhere"
	require.Equal(t, "/elsewhere", b.templateOverride(cfg))
}

func TestInitCmd_Scaffold(t *testing.T) {
	source := t.TempDir()
	cmd := &InitCmd{}
	root := &CLI{Source: source, Config: "config.yaml"}

	require.NoError(t, cmd.Run(&Global{}, root))

	for _, rel := range []string{
		"config.yaml",
		"content/posts",
		"content/work",
		"content/devlogs",
		"content/about.md",
		"static/css",
	} {
		_, err := os.Stat(filepath.Join(source, filepath.FromSlash(rel)))
		require.NoError(t, err, "expected %s", rel)
	}

	// A second init without --force must not clobber the config.
	require.Error(t, cmd.Run(&Global{}, root))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))
}
