// Package branch implements branch-name classification, search filtering,
// and display deduplication over the raw names reported by `git branch -a`.
package branch

import "strings"

// Kind classifies where a branch ref points.
type Kind int

const (
	// Local is a branch that lives in refs/heads.
	Local Kind = iota
	// RemoteTracking is a branch qualified by the remote's name
	// (`origin/x` or `remotes/origin/x`).
	RemoteTracking
)

// Branch is a parsed branch entry. Ref is the identifier exactly as git
// reported it; Short is the display name with remote qualification
// stripped, and doubles as the local branch name when a tracking branch
// is created.
type Branch struct {
	Ref   string
	Short string
	Kind  Kind
}

// Parse classifies a raw branch identifier against the given remote name.
// The fully-qualified form carries both prefixes, so `remotes/` is
// stripped before the remote prefix.
func Parse(raw, remote string) Branch {
	rest := strings.TrimPrefix(raw, "remotes/")
	if short, ok := strings.CutPrefix(rest, remote+"/"); ok {
		return Branch{Ref: raw, Short: short, Kind: RemoteTracking}
	}
	return Branch{Ref: raw, Short: rest, Kind: Local}
}

// ParseAll parses every raw identifier, preserving input order.
func ParseAll(raw []string, remote string) []Branch {
	branches := make([]Branch, 0, len(raw))
	for _, r := range raw {
		branches = append(branches, Parse(r, remote))
	}
	return branches
}
