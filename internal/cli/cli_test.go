package cli

import (
	"context"
	"io"
	"testing"
)

// runCommand executes the CLI with the given args and returns the error.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

// isolateEnv points config and credentials at a clean environment.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_API_URL", "")
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("got Use %q, want %q", root.Use, appName)
	}

	for _, name := range []string{"clone", "list", "auth", "config", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	if err := runCommand(t, "does-not-exist"); err == nil {
		t.Error("expected error for unknown command")
	}
}
