package git

import (
	"strings"

	"github.com/harrisonoest/git-branch-search/internal/exec"
)

var _ Client = (*client)(nil)

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

func (c *client) IsInsideWorkTree() (bool, error) {
	out, err := c.exec.Output("git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		// git exits nonzero outside a repository; that is an answer, not a failure.
		if exec.IsExitError(err) {
			return false, nil
		}
		return false, err
	}
	return out == "true", nil
}

func (c *client) UpdateRemote(remote string) error {
	return c.exec.Run("git", "remote", "update", remote, "--prune")
}

// ListAll returns every local and remote-tracking branch name as reported
// by `git branch -a`, with the current-branch marker stripped. Symbolic
// ref entries such as `remotes/origin/HEAD -> origin/main` are skipped.
func (c *client) ListAll() ([]string, error) {
	out, err := c.exec.Output("git", "branch", "-a")
	if err != nil {
		return nil, err
	}
	var branches []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(name, "*"); ok {
			name = strings.TrimSpace(after)
		}
		if name == "" || strings.Contains(name, " -> ") {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

func (c *client) CurrentBranch() (string, error) {
	return c.exec.Output("git", "branch", "--show-current")
}

func (c *client) LocalBranchExists(name string) (bool, error) {
	err := c.exec.Run("git", "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	if exec.IsExitCode(err, 1) {
		return false, nil
	}
	return false, err
}

func (c *client) Checkout(ref string) error {
	return c.exec.Run("git", "checkout", ref)
}

func (c *client) CheckoutTrack(local, remote string) error {
	return c.exec.Run("git", "checkout", "-b", local, "--track", remote)
}
