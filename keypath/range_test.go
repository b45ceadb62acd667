package keypath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseRange asserts that range markers are recognized exactly when they
// are well formed, and that malformed markers degrade to "no range".
func TestParseRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		hasRange bool
		from     uint64
		to       uint64
	}{
		{
			name:     "no marker",
			path:     "m/0'/1/2",
			hasRange: false,
		},
		{
			name:     "square brackets",
			path:     "m/0'/[1-3]/2'",
			hasRange: true,
			from:     1,
			to:       3,
		},
		{
			name:     "parentheses",
			path:     "m/0'/(7-9)",
			hasRange: true,
			from:     7,
			to:       9,
		},
		{
			name:     "mixed brackets accepted",
			path:     "m/[1-3)",
			hasRange: true,
			from:     1,
			to:       3,
		},
		{
			name:     "empty range",
			path:     "m/[5-5]/0",
			hasRange: true,
			from:     5,
			to:       5,
		},
		{
			name:     "descending degrades to literal",
			path:     "m/[3-1]",
			hasRange: false,
		},
		{
			name:     "unterminated marker",
			path:     "m/[1-3",
			hasRange: false,
		},
		{
			name:     "missing separator",
			path:     "m/[13]",
			hasRange: false,
		},
		{
			name:     "non-digit in from",
			path:     "m/[1a-3]",
			hasRange: false,
		},
		{
			name:     "non-digit in to",
			path:     "m/[1-3a]",
			hasRange: false,
		},
		{
			name:     "from too long",
			path:     "m/[123456789-123456790]",
			hasRange: false,
		},
		{
			name:     "to too long",
			path:     "m/[1-123456789]",
			hasRange: false,
		},
		{
			name:     "eight digit bounds accepted",
			path:     "m/[12345678-12345678]",
			hasRange: true,
			from:     12345678,
			to:       12345678,
		},
		{
			name:     "empty from parses as zero",
			path:     "m/[-2]",
			hasRange: true,
			from:     0,
			to:       2,
		},
		{
			name:     "only first range honored",
			path:     "m/[1-2]/[3-4]",
			hasRange: true,
			from:     1,
			to:       2,
		},
		{
			name:     "marker beyond scan bound ignored",
			path:     "m/" + strings.Repeat("0/", 600) + "[1-3]",
			hasRange: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spec, ok := ParseRange(tc.path)
			require.Equal(t, tc.hasRange, ok)

			if !tc.hasRange {
				return
			}

			require.Equal(t, tc.from, spec.From())
			require.Equal(t, tc.to, spec.To())
		})
	}
}

// TestExpand asserts the expansion semantics: element count, strict
// ascending order, bracket substitution, and literal passthrough.
func TestExpand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		path  string
		paths []string
	}{
		{
			name:  "literal path",
			path:  "m/44'/0'/0'/0/0",
			paths: []string{"m/44'/0'/0'/0/0"},
		},
		{
			name: "simple range",
			path: "m/0'/[1-3]/2'",
			paths: []string{
				"m/0'/1/2'", "m/0'/2/2'", "m/0'/3/2'",
			},
		},
		{
			name:  "single element range",
			path:  "m/[9-9]",
			paths: []string{"m/9"},
		},
		{
			name:  "malformed marker kept verbatim",
			path:  "m/[1-",
			paths: []string{"m/[1-"},
		},
		{
			name: "suffix after range preserved",
			path: "m/[1-2]/[5-6]",
			paths: []string{
				"m/1/[5-6]", "m/2/[5-6]",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.paths, ExpandAll(tc.path))

			exp := Expand(tc.path)
			require.EqualValues(t, len(tc.paths), exp.Len())
		})
	}
}

// TestExpansionReset asserts that an expansion can be replayed from the
// start and yields the identical sequence.
func TestExpansionReset(t *testing.T) {
	t.Parallel()

	exp := Expand("m/[10-12]")

	first := drain(exp)
	exp.Reset()
	second := drain(exp)

	require.Equal(t, first, second)
	require.Equal(t, []string{"m/10", "m/11", "m/12"}, first)
}

func drain(exp *Expansion) []string {
	var paths []string
	for {
		p, ok := exp.Next()
		if !ok {
			return paths
		}
		paths = append(paths, p)
	}
}
