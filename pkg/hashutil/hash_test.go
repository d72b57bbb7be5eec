package hashutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/repoglyph/pkg/hashutil"
)

// Reference constants captured from the canonical implementation.
// These are regression fixtures: a change here breaks reproducibility
// of every signature ever derived.
func TestStringHash_ReferenceConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  uint32
	}{
		{"facebook/react", 1631685878},
		{"torvalds/linux", 1673452578},
		{"acme/widgets", 1665198810},
		{"JavaScript", 1266327981},
		{"Go", 2312},
		{"Unknown", 1379812394},
		{"", 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, hashutil.StringHash(tc.input), "input %q", tc.input)
	}
}

func TestStringHash_Deterministic(t *testing.T) {
	t.Parallel()

	first := hashutil.StringHash("repoglyph")
	for range 100 {
		assert.Equal(t, first, hashutil.StringHash("repoglyph"))
	}
}
