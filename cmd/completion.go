package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrisonoest/git-branch-search/internal/branch"
	"github.com/harrisonoest/git-branch-search/internal/config"
	gbsexec "github.com/harrisonoest/git-branch-search/internal/exec"
	"github.com/harrisonoest/git-branch-search/internal/git"
)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// completeBranchesWithExec lists simplified branch names as completion
// candidates for the query argument.
func completeBranchesWithExec(e gbsexec.Executor) ([]string, cobra.ShellCompDirective) {
	if err := e.LookPath("git"); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	remote := "origin"
	if cfg, err := config.Load(); err == nil {
		remote = cfg.Remote
	}
	raw, err := git.NewClient(e).ListAll()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, b := range branch.Dedupe(branch.ParseAll(raw, remote)) {
		names = append(names, b.Short)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
