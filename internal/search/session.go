package search

import (
	"fmt"
	"strings"

	"github.com/harrisonoest/git-branch-search/internal/branch"
	"github.com/harrisonoest/git-branch-search/internal/ui"
)

// Run executes one interactive session. initialQuery, when non-empty,
// seeds the first search instead of prompting for it.
//
// A nil return means the session ended normally: a checkout was attempted
// or the user quit at a prompt. Errors are reserved for the fatal paths —
// not a repository, no branch list to search, or the user declining to
// retry with zero matches.
func (s *Service) Run(initialQuery string) error {
	fmt.Fprintf(s.out, "\n%s\n", ui.Header("Git Branch Search"))

	inRepo, err := s.git.IsInsideWorkTree()
	if err != nil {
		return err
	}
	if !inRepo {
		return fmt.Errorf("not in a git repository")
	}

	if s.params.UpdateRemote {
		s.updateRemote()
	}

	mode := "substring"
	if s.params.Exact {
		mode = "exact name"
	}

	// Session cache: the branch list is fetched at most once per run,
	// even across retries.
	var branches []branch.Branch

	query := strings.TrimSpace(initialQuery)
	for {
		if query == "" {
			label := fmt.Sprintf("Enter branch %s to search for (or 'q' to quit): ", mode)
			q, err := s.prompt("\n" + ui.Bold(label))
			if err != nil {
				fmt.Fprintf(s.out, "\n%s\n", ui.Step("Search cancelled or no query provided. Exiting."))
				return nil
			}
			query = strings.TrimSpace(q)
		}
		if query == "" || strings.EqualFold(query, "q") {
			fmt.Fprintf(s.out, "\n%s\n", ui.Step("Search cancelled or no query provided. Exiting."))
			return nil
		}

		if branches == nil {
			fmt.Fprintf(s.out, "\n%s\n", ui.Step("Fetching all branches..."))
			raw, err := s.git.ListAll()
			if err != nil {
				return fmt.Errorf("failed to retrieve branch list: %w", err)
			}
			if len(raw) == 0 {
				return fmt.Errorf("failed to retrieve branch list: the repository has no branches")
			}
			fmt.Fprintf(s.out, "%s\n", ui.Step(fmt.Sprintf("Found %d branches", len(raw))))
			branches = branch.ParseAll(raw, s.params.Remote)
		}

		matches := branch.Dedupe(branch.Filter(query, branches, s.params.Remote, s.params.Exact))
		if len(matches) == 0 {
			fmt.Fprintf(s.out, "\n%s\n", ui.Failure(fmt.Sprintf("No branches found matching '%s' with %s search.", query, mode)))
			answer, err := s.prompt(ui.Bold("Try another search? (y/n): "))
			if err == nil && strings.EqualFold(strings.TrimSpace(answer), "y") {
				query = ""
				continue
			}
			return fmt.Errorf("no branches found matching '%s'", query)
		}

		selected, err := s.selectBranch(matches)
		if err != nil {
			return err
		}
		if selected == nil {
			fmt.Fprintf(s.out, "\n%s\n", ui.Step("Branch selection aborted by user. Exiting."))
			return nil
		}
		s.checkout(*selected)
		return nil
	}
}

// updateRemote refreshes the remote-tracking branches. Failure is
// reported but does not stop the session.
func (s *Service) updateRemote() {
	fmt.Fprintf(s.out, "\n%s\n", ui.Step("Updating remote branches..."))
	if err := s.git.UpdateRemote(s.params.Remote); err != nil {
		fmt.Fprintf(s.out, "\n%s\n", ui.Failure(fmt.Sprintf("Failed to update remote branches: %s", err)))
		s.logger.Warn("remote update failed", "remote", s.params.Remote, "error", err)
		return
	}
	fmt.Fprintf(s.out, "\n%s\n", ui.Success("Remote branches updated"))
}

// prompt prints label and reads one line of input. Read errors (EOF
// included) are returned so callers can treat them as a quit.
func (s *Service) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
