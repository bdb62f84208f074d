package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	gbsexec "github.com/harrisonoest/git-branch-search/internal/exec"
	"github.com/harrisonoest/git-branch-search/internal/search"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gbs [query]",
		Short: "Search and check out git branches by substring or exact name",
		Long: `gbs searches local and remote-tracking branches for a substring
(or an exact name with --exact), lets you pick a match from a numbered
menu, and checks it out. Remote matches are checked out as local
tracking branches.

Substring search hides remote-qualified names unless the query itself
starts with the remote prefix (e.g. 'origin/'); exact search matches
any branch name as-is.`,
		// Extra positional arguments beyond the query are tolerated
		// and ignored.
		Args:         cobra.ArbitraryArgs,
		RunE:         a.runSearch,
		SilenceUsage: true,
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gbs version %s\n", version))
	rootCmd.Flags().BoolVarP(&a.exact, "exact", "e", false, "Match the branch name exactly (case-insensitive)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	defaultExec := gbsexec.NewDefaultExecutor()
	rootCmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeBranchesWithExec(defaultExec)
	}

	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

func (a *App) runSearch(cmd *cobra.Command, args []string) error {
	d, err := a.resolveDeps()
	if err != nil {
		return err
	}

	var initialQuery string
	if len(args) > 0 {
		initialQuery = args[0]
	}

	opts := []search.Option{
		search.WithParams(search.Params{
			Remote:       d.cfg.Remote,
			Exact:        a.exact,
			UpdateRemote: d.cfg.UpdateRemote,
		}),
		search.WithInput(cmd.InOrStdin()),
		search.WithOutput(cmd.OutOrStdout()),
	}
	opts = append(opts, a.serviceOpts()...)

	return search.New(d.git, opts...).Run(initialQuery)
}

// Execute creates an App and runs the CLI. An interrupt aborts the
// process immediately; any subprocess mid-flight is covered by git's own
// atomicity, so there is nothing to clean up.
func Execute() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		os.Exit(1)
	}()

	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
