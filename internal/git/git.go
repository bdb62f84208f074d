package git

//go:generate moq -out git_mock.go . Client

// RepoQuerier abstracts read-only repository queries.
type RepoQuerier interface {
	IsInsideWorkTree() (bool, error)
	CurrentBranch() (string, error)
}

// BranchReader abstracts read-only branch operations.
type BranchReader interface {
	ListAll() ([]string, error)
	LocalBranchExists(name string) (bool, error)
}

// CheckoutWriter abstracts operations that modify the repository or working tree.
type CheckoutWriter interface {
	UpdateRemote(remote string) error
	Checkout(ref string) error
	CheckoutTrack(local, remote string) error
}

// Client abstracts git operations for testing.
type Client interface {
	RepoQuerier
	BranchReader
	CheckoutWriter
}
