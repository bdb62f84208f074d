// Package search implements the interactive find-and-checkout session:
// query prompt, match selection, and checkout strategy.
package search

import (
	"bufio"
	"io"
	"os"

	"github.com/harrisonoest/git-branch-search/internal/git"
)

// Logger defines an interface for logging best-effort operation failures.
type Logger interface {
	Warn(msg string, args ...any)
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

// Params holds the settings a session runs with.
type Params struct {
	// Remote is the remote whose tracking branches participate in
	// search and tracking checkout.
	Remote string
	// Exact switches the query matching from substring to exact.
	Exact bool
	// UpdateRemote runs `git remote update --prune` before the session.
	UpdateRemote bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for best-effort operation warnings.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithParams sets the session parameters.
func WithParams(p Params) Option {
	return func(s *Service) { s.params = p }
}

// WithInput sets the reader interactive prompts are answered from.
func WithInput(r io.Reader) Option {
	return func(s *Service) { s.input = r }
}

// WithOutput sets the writer prompts and messages are printed to.
func WithOutput(w io.Writer) Option {
	return func(s *Service) { s.out = w }
}

// Service runs interactive branch-search sessions against a git client.
type Service struct {
	git    git.Client
	params Params
	input  io.Reader
	in     *bufio.Reader
	out    io.Writer
	logger Logger
}

// New creates a Service with stdin/stdout prompts and default parameters.
func New(g git.Client, opts ...Option) *Service {
	s := &Service{
		git:    g,
		params: Params{Remote: "origin", UpdateRemote: true},
		input:  os.Stdin,
		out:    os.Stdout,
		logger: nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	s.in = bufio.NewReader(s.input)
	return s
}
