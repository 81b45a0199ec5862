package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/fixture"
	"github.com/thenoetrevino/kanban/internal/models"
)

// run executes the root command in an isolated home directory
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("KANBAN_FIXTURE", "")

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFixture(t *testing.T, b *models.Board) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, fixture.Encode(f, b))
	return path
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"board", "task", "fixture"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("fixture"))
}

func TestRoot_BuiltInBoard(t *testing.T) {
	out, _, err := run(t, "task", "list", "--quiet", "--column", "Backlog")
	require.NoError(t, err)
	assert.Equal(t, "task-1\ntask-2\ntask-3\n", out)
}

func TestRoot_FixtureFlag(t *testing.T) {
	b := fixture.Default()
	b.Title = "Custom Board"
	path := writeFixture(t, b)

	out, _, err := run(t, "--fixture", path, "board", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom Board")
}

func TestRoot_FixtureFromEnv(t *testing.T) {
	b := fixture.Default()
	b.Title = "From Env"
	path := writeFixture(t, b)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("KANBAN_FIXTURE", path)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"board", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "From Env")
}

func TestRoot_MissingFixture(t *testing.T) {
	_, stderr, err := run(t, "--fixture", filepath.Join(t.TempDir(), "nope.yaml"), "board", "show")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "Error")
}

func TestRoot_Apply(t *testing.T) {
	intents := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(intents, []byte("- action: complete\n  task: task-1\n"), 0o644))

	out, _, err := run(t, "board", "apply", "--file", intents)
	require.NoError(t, err)
	assert.Contains(t, out, "Task completed!")
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	_, _, err := run(t, "task", "list", "--nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestRoot_WritesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("KANBAN_FIXTURE", "")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"board", "show", "--quiet"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(home, ".kanban", "logs", "kanban.log"))
	assert.NoError(t, err)
}
