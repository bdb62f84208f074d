package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw   string
		short string
		kind  Kind
	}{
		{"feature/x", "feature/x", Local},
		{"origin/feature/x", "feature/x", RemoteTracking},
		{"remotes/origin/feature/x", "feature/x", RemoteTracking},
		{"main", "main", Local},
		// Refs under an unknown remote are not checkout-track candidates.
		{"remotes/upstream/foo", "upstream/foo", Local},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			b := Parse(tt.raw, "origin")
			assert.Equal(t, tt.raw, b.Ref)
			assert.Equal(t, tt.short, b.Short)
			assert.Equal(t, tt.kind, b.Kind)
		})
	}
}

func TestParseShortIsIdempotent(t *testing.T) {
	for _, raw := range []string{"foo", "origin/foo", "remotes/origin/foo"} {
		b := Parse(raw, "origin")
		again := Parse(b.Short, "origin")
		assert.Equal(t, b.Short, again.Short)
	}
}

func TestParseAll(t *testing.T) {
	branches := ParseAll([]string{"main", "origin/main"}, "origin")
	assert.Len(t, branches, 2)
	assert.Equal(t, Local, branches[0].Kind)
	assert.Equal(t, RemoteTracking, branches[1].Kind)
}
