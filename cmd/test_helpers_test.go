package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrisonoest/git-branch-search/internal/ui"
)

// appWithDeps creates an App that resolves to the given deps.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps: func() (*deps, error) { return d, nil },
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func() (*deps, error) { return nil, err },
	}
}

// executeCommand runs the CLI command tree with the given stdin and args
// and returns the combined output.
func executeCommand(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	ui.SetNoColor(true)
	t.Cleanup(func() { ui.SetNoColor(false) })

	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
