package branch

import "strings"

// Filter returns the branches matching query, case-insensitively.
//
// In exact mode a branch matches when its full identifier equals the
// query, remote-tracking branches included. In substring mode the query
// must be contained in the identifier, and remote-tracking branches are
// skipped unless the query itself carries the remote prefix — substring
// search biases toward local names to keep remote duplicates out of the
// results.
//
// The result is deduplicated by identifier and keeps branch-list order,
// so a given repository always produces the same candidate order.
func Filter(query string, branches []Branch, remote string, exact bool) []Branch {
	queryLower := strings.ToLower(query)
	remotePrefix := strings.ToLower(remote) + "/"
	queryHasRemote := strings.HasPrefix(queryLower, remotePrefix)

	var matches []Branch
	seen := make(map[string]bool, len(branches))
	for _, b := range branches {
		if seen[b.Ref] {
			continue
		}
		refLower := strings.ToLower(b.Ref)
		if exact {
			if refLower != queryLower {
				continue
			}
		} else {
			if b.Kind == RemoteTracking && !queryHasRemote {
				continue
			}
			if !strings.Contains(refLower, queryLower) {
				continue
			}
		}
		seen[b.Ref] = true
		matches = append(matches, b)
	}
	return matches
}

// Dedupe collapses branches that share a short name, keeping the first
// occurrence in input order.
func Dedupe(matches []Branch) []Branch {
	var unique []Branch
	seen := make(map[string]bool, len(matches))
	for _, b := range matches {
		if seen[b.Short] {
			continue
		}
		seen[b.Short] = true
		unique = append(unique, b)
	}
	return unique
}
