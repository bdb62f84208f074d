package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChecksOutLocalMatch(t *testing.T) {
	g := mockGit("main", "develop", "remotes/origin/develop", "remotes/origin/feature/login")
	svc, out := newTestSvc(t, g, "dev\n")

	err := svc.Run("")
	require.NoError(t, err)

	require.Len(t, g.CheckoutCalls(), 1)
	assert.Equal(t, "develop", g.CheckoutCalls()[0].Ref)
	assert.Empty(t, g.CheckoutTrackCalls())
	assert.Empty(t, g.LocalBranchExistsCalls())
	assert.Contains(t, out.String(), "Found single matching branch: develop")
	assert.Contains(t, out.String(), "Successfully checked out 'develop'")
}

func TestRunInitialQuerySkipsPrompt(t *testing.T) {
	g := mockGit("main", "develop")
	svc, out := newTestSvc(t, g, "") // no input available at all

	err := svc.Run("dev")
	require.NoError(t, err)

	require.Len(t, g.CheckoutCalls(), 1)
	assert.Equal(t, "develop", g.CheckoutCalls()[0].Ref)
	assert.NotContains(t, out.String(), "Enter branch substring")
}

func TestRunTrackingCheckoutFromExactMatch(t *testing.T) {
	g := mockGit("main", "develop", "origin/feature/login")
	svc, _ := newTestSvc(t, g, "", WithParams(Params{Remote: "origin", Exact: true, UpdateRemote: true}))

	err := svc.Run("origin/feature/login")
	require.NoError(t, err)

	require.Len(t, g.CheckoutTrackCalls(), 1)
	assert.Equal(t, "feature/login", g.CheckoutTrackCalls()[0].Local)
	assert.Equal(t, "origin/feature/login", g.CheckoutTrackCalls()[0].Remote)
	assert.Empty(t, g.CheckoutCalls())
}

func TestRunRemoteOnlyMatchIsFilteredInSubstringMode(t *testing.T) {
	g := mockGit("main", "develop", "remotes/origin/develop", "remotes/origin/feature/login")
	svc, out := newTestSvc(t, g, "n\n")

	err := svc.Run("feature")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no branches found")
	assert.Contains(t, out.String(), "No branches found matching 'feature'")
	assert.Empty(t, g.CheckoutCalls())
	assert.Empty(t, g.CheckoutTrackCalls())
}

func TestRunRetryAfterNoMatches(t *testing.T) {
	g := mockGit("main", "develop")
	svc, _ := newTestSvc(t, g, "y\ndev\n")

	err := svc.Run("nosuchbranch")
	require.NoError(t, err)

	require.Len(t, g.CheckoutCalls(), 1)
	assert.Equal(t, "develop", g.CheckoutCalls()[0].Ref)
	// The branch list is fetched once and reused across retries.
	assert.Len(t, g.ListAllCalls(), 1)
}

func TestRunQuitAtQueryPrompt(t *testing.T) {
	tests := map[string]string{
		"q token":     "q\n",
		"empty input": "\n",
		"eof":         "",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			g := mockGit("main")
			svc, out := newTestSvc(t, g, input)

			err := svc.Run("")
			require.NoError(t, err)
			assert.Contains(t, out.String(), "Search cancelled or no query provided")
			assert.Empty(t, g.ListAllCalls())
		})
	}
}

func TestRunQuitAtSelectionMenu(t *testing.T) {
	g := mockGit("develop", "development")
	svc, out := newTestSvc(t, g, "dev\nq\n")

	err := svc.Run("")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Branch selection aborted by user")
	assert.Empty(t, g.CheckoutCalls())
	assert.Empty(t, g.CheckoutTrackCalls())
}

func TestRunNotARepository(t *testing.T) {
	g := mockGit()
	g.IsInsideWorkTreeFunc = func() (bool, error) { return false, nil }
	svc, _ := newTestSvc(t, g, "")

	err := svc.Run("dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a git repository")
}

func TestRunInitialFetchFailures(t *testing.T) {
	t.Run("list command fails", func(t *testing.T) {
		g := mockGit()
		g.ListAllFunc = func() ([]string, error) {
			return nil, fmt.Errorf("fatal: could not read refs")
		}
		svc, _ := newTestSvc(t, g, "")

		err := svc.Run("dev")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to retrieve branch list")
	})

	t.Run("empty repository", func(t *testing.T) {
		g := mockGit() // no branches
		svc, _ := newTestSvc(t, g, "")

		err := svc.Run("dev")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to retrieve branch list")
	})
}

func TestRunRemoteUpdateFailureIsNotFatal(t *testing.T) {
	g := mockGit("main", "develop")
	g.UpdateRemoteFunc = func(remote string) error {
		return fmt.Errorf("fatal: could not reach origin")
	}
	rec := &warnRecorder{}
	svc, out := newTestSvc(t, g, "", WithLogger(rec))

	err := svc.Run("dev")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Failed to update remote branches")
	assert.Contains(t, rec.messages(), "remote update failed")
	assert.Len(t, g.CheckoutCalls(), 1)
}

func TestRunRespectsUpdateRemoteSetting(t *testing.T) {
	g := mockGit("main", "develop")
	svc, _ := newTestSvc(t, g, "", WithParams(Params{Remote: "origin", UpdateRemote: false}))

	err := svc.Run("dev")
	require.NoError(t, err)
	assert.Empty(t, g.UpdateRemoteCalls())
}

func TestRunCheckoutFailureEndsSessionNormally(t *testing.T) {
	g := mockGit("main", "develop")
	g.CheckoutFunc = func(ref string) error {
		return fmt.Errorf("error: your local changes would be overwritten")
	}
	svc, out := newTestSvc(t, g, "")

	err := svc.Run("dev")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Failed to checkout branch: error: your local changes would be overwritten")
}

func TestRunDeduplicatesAcrossRemoteForms(t *testing.T) {
	g := mockGit("main", "origin/develop", "remotes/origin/develop")
	svc, _ := newTestSvc(t, g, "")

	// Both remote forms simplify to "develop"; the menu must not appear
	// and the first occurrence wins.
	err := svc.Run("origin/dev")
	require.NoError(t, err)
	require.Len(t, g.CheckoutTrackCalls(), 1)
	assert.Equal(t, "develop", g.CheckoutTrackCalls()[0].Local)
	assert.Equal(t, "origin/develop", g.CheckoutTrackCalls()[0].Remote)
}
