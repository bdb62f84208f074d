package search

import (
	"fmt"

	"github.com/harrisonoest/git-branch-search/internal/branch"
	"github.com/harrisonoest/git-branch-search/internal/ui"
)

// checkout checks out the selected branch. Remote-tracking selections
// reuse an existing local branch of the same short name, or create one
// tracking the remote ref. Failure is reported with git's own error text
// and ends the session without a retry.
func (s *Service) checkout(b branch.Branch) bool {
	fmt.Fprintf(s.out, "\n%s\n", ui.Step(fmt.Sprintf("Checking out branch '%s'...", b.Short)))

	var err error
	switch b.Kind {
	case branch.RemoteTracking:
		exists, lookupErr := s.git.LocalBranchExists(b.Short)
		if lookupErr != nil {
			// Treat an unverifiable ref as absent; git will complain on
			// the create if the name is actually taken.
			s.logger.Warn("could not verify local branch", "branch", b.Short, "error", lookupErr)
		}
		if exists {
			err = s.git.Checkout(b.Short)
		} else {
			err = s.git.CheckoutTrack(b.Short, b.Ref)
		}
	default:
		err = s.git.Checkout(b.Ref)
	}

	if err != nil {
		fmt.Fprintf(s.out, "\n%s\n", ui.Failure(fmt.Sprintf("Failed to checkout branch: %s", err)))
		return false
	}
	fmt.Fprintf(s.out, "\n%s\n", ui.Success(fmt.Sprintf("Successfully checked out '%s'", b.Short)))
	return true
}
