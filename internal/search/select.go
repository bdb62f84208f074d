package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harrisonoest/git-branch-search/internal/branch"
	"github.com/harrisonoest/git-branch-search/internal/ui"
)

// selectBranch resolves a match set to a single branch. A single match is
// auto-selected; multiple matches render a numbered menu. A nil branch
// means the user quit (or there was nothing to select).
func (s *Service) selectBranch(matches []branch.Branch) (*branch.Branch, error) {
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		b := matches[0]
		fmt.Fprintf(s.out, "\n%s\n", ui.Success("Found single matching branch: "+b.Short))
		return &b, nil
	}

	fmt.Fprintf(s.out, "\n%s\n\n", ui.Header("Matching Branches"))

	current, err := s.git.CurrentBranch()
	if err != nil {
		s.logger.Warn("could not determine current branch", "error", err)
		current = ""
	}
	for i, b := range matches {
		indicator := ""
		if current != "" && b.Short == current {
			indicator = " " + ui.Yellow("(current)")
		}
		fmt.Fprintf(s.out, "%s %s%s\n", ui.Cyan(fmt.Sprintf("%d.", i+1)), b.Short, indicator)
	}

	for {
		choice, err := s.prompt("\n" + ui.Bold("Enter number to checkout (or 'q' to quit): "))
		if err != nil {
			// EOF at the menu behaves as a quit.
			return nil, nil
		}
		choice = strings.TrimSpace(choice)
		if strings.EqualFold(choice, "q") {
			return nil, nil
		}

		index, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintf(s.out, "\n%s\n", ui.Failure("Please enter a valid number or 'q' to quit."))
			continue
		}
		if index < 1 || index > len(matches) {
			fmt.Fprintf(s.out, "\n%s\n", ui.Failure("Invalid selection. Please try again."))
			continue
		}
		b := matches[index-1]
		return &b, nil
	}
}
