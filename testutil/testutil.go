package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t            *testing.T
	branches     []string
	trackingRefs []string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// WithBranch adds a local branch to be created.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// WithRemoteTrackingRef adds a remote-tracking ref refs/remotes/origin/<name>
// pointing at HEAD, without requiring a real remote.
func (b *RepoBuilder) WithRemoteTrackingRef(name string) *RepoBuilder {
	b.trackingRefs = append(b.trackingRefs, name)
	return b
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.t.TempDir()

	run(b.t, dir, "git", "init", "-b", "main")
	run(b.t, dir, "git", "config", "user.email", "test@example.com")
	run(b.t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		b.t.Fatal(err)
	}
	run(b.t, dir, "git", "add", ".")
	run(b.t, dir, "git", "commit", "-m", "initial commit")

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			run(b.t, dir, "git", "branch", branch)
			created[branch] = true
		}
	}

	if len(b.trackingRefs) > 0 {
		// Configure an "origin" remote so git treats refs/remotes/origin/*
		// as remote-tracking branches (required for checkout --track). The
		// URL points at the repo itself; nothing is ever fetched from it.
		run(b.t, dir, "git", "config", "remote.origin.url", dir)
		run(b.t, dir, "git", "config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*")
	}
	for _, name := range b.trackingRefs {
		run(b.t, dir, "git", "update-ref", "refs/remotes/origin/"+name, "HEAD")
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// GitRepoWithBranch creates a temporary git repository with an additional branch.
func GitRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithBranch(branch).Build()
}

func run(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
}
