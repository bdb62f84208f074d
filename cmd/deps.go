package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/harrisonoest/git-branch-search/internal/config"
	gbsexec "github.com/harrisonoest/git-branch-search/internal/exec"
	"github.com/harrisonoest/git-branch-search/internal/git"
	"github.com/harrisonoest/git-branch-search/internal/search"
)

// App holds the dependency resolution function and builds the CLI command tree.
type App struct {
	resolveDeps func() (*deps, error)
	exact       bool
	verbose     bool
}

// NewApp creates an App with the default dependency resolver.
func NewApp() *App {
	return &App{resolveDeps: defaultResolveDeps}
}

type deps struct {
	exec gbsexec.Executor
	git  git.Client
	cfg  *config.Settings
}

func defaultResolveDeps() (*deps, error) {
	return resolveDepsWithExec(gbsexec.NewDefaultExecutor())
}

func resolveDepsWithExec(e gbsexec.Executor) (*deps, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &deps{exec: e, git: git.NewClient(e), cfg: cfg}, nil
}

func (a *App) serviceOpts() []search.Option {
	if a.verbose {
		return []search.Option{search.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))}
	}
	return nil
}
