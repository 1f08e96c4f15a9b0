package main_test

import (
	"bytes"
	"testing"

	main "github.com/aduverger/carnet/cmd/carnet"
	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, stdout, stderr *bytes.Buffer) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&main.CLI{},
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	parser := newParser(t, stdout, &bytes.Buffer{})

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"sections", "tree", "search", "similar", "read", "cache"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParseSearchFlags(t *testing.T) {
	t.Parallel()

	parser := newParser(t, &bytes.Buffer{}, &bytes.Buffer{})

	kongCtx, err := parser.Parse([]string{
		"search", "python", "api",
		"-t", "ia", "-t", "web",
		"--category", "Intelligence Artificielle",
		"--difficulty", "avancé",
		"--min-minutes", "1",
	})
	require.NoError(t, err)
	require.Equal(t, "search <section> <query>", kongCtx.Command())

	cmd := kongCtx.Selected().Target.Interface().(main.SearchCmd)
	assert.Equal(t, "python", cmd.Section)
	assert.Equal(t, "api", cmd.Query)
	assert.Equal(t, []string{"ia", "web"}, cmd.Tag)
	assert.Equal(t, "Intelligence Artificielle", cmd.Category)
	assert.Equal(t, "avancé", cmd.Difficulty)
	assert.Equal(t, 1, cmd.MinMinutes)
}

func TestCLI_SimilarLimitDefaults(t *testing.T) {
	t.Parallel()

	parser := newParser(t, &bytes.Buffer{}, &bytes.Buffer{})

	kongCtx, err := parser.Parse([]string{"similar", "python", "1-variables"})
	require.NoError(t, err)

	cmd := kongCtx.Selected().Target.Interface().(main.SimilarCmd)
	assert.Equal(t, 5, cmd.Limit)
}

func TestCLI_CacheSubcommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"status", []string{"cache", "status"}, "cache status"},
		{"purge", []string{"cache", "purge"}, "cache purge"},
		{"clear", []string{"cache", "clear", "--force"}, "cache clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parser := newParser(t, &bytes.Buffer{}, &bytes.Buffer{})
			kongCtx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kongCtx.Command())
		})
	}
}
