package search

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/harrisonoest/git-branch-search/internal/git"
	"github.com/harrisonoest/git-branch-search/internal/ui"
)

// newTestSvc creates a Service reading prompt answers from input and
// writing to the returned buffer, with colors disabled so assertions see
// plain text.
func newTestSvc(t *testing.T, g git.Client, input string, opts ...Option) (*Service, *bytes.Buffer) {
	t.Helper()
	ui.SetNoColor(true)
	t.Cleanup(func() { ui.SetNoColor(false) })

	var out bytes.Buffer
	allOpts := []Option{WithInput(strings.NewReader(input)), WithOutput(&out)}
	allOpts = append(allOpts, opts...)
	return New(g, allOpts...), &out
}

// mockGit returns a ClientMock with the happy-path repository answers
// that most session tests need.
func mockGit(branches ...string) *git.ClientMock {
	return &git.ClientMock{
		IsInsideWorkTreeFunc: func() (bool, error) { return true, nil },
		UpdateRemoteFunc:     func(remote string) error { return nil },
		ListAllFunc:          func() ([]string, error) { return branches, nil },
		CurrentBranchFunc:    func() (string, error) { return "main", nil },
		LocalBranchExistsFunc: func(name string) (bool, error) {
			return false, nil
		},
		CheckoutFunc:      func(ref string) error { return nil },
		CheckoutTrackFunc: func(local string, remote string) error { return nil },
	}
}

// warnRecorder captures Warn calls for assertions.
type warnRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *warnRecorder) Warn(msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *warnRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}
