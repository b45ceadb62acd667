package keypath

import (
	"strconv"
)

const (
	// maxPathLen is the maximum number of bytes of a derivation path
	// string that are considered when scanning for a range marker. Paths
	// longer than this are still usable as literal paths, but any range
	// marker beyond the bound is ignored.
	maxPathLen = 1024

	// maxRangeDigits is the maximum number of decimal digits accepted for
	// either bound of a range marker. Longer digit runs abort range
	// detection and the path is treated as a literal.
	maxRangeDigits = 8
)

// RangeSpec describes a numeric range marker found within a derivation path
// string. The marker has the form "[from-to]" or "(from-to)" and is replaced
// during expansion by each integer of its inclusive bounds in turn, with the
// brackets dropped.
type RangeSpec struct {
	// prefix is the portion of the path before the opening bracket.
	prefix string

	// suffix is the portion of the path after the closing bracket.
	suffix string

	// from and to are the decoded inclusive bounds of the range.
	from uint64
	to   uint64
}

// From returns the inclusive lower bound of the range.
func (r *RangeSpec) From() uint64 {
	return r.from
}

// To returns the inclusive upper bound of the range.
func (r *RangeSpec) To() uint64 {
	return r.to
}

// Count returns the number of concrete paths the range expands to.
func (r *RangeSpec) Count() uint64 {
	return r.to - r.from + 1
}

// PathAt returns the concrete derivation path for index i, which must lie
// within [From, To]. The bracketed marker is replaced by the decimal
// representation of i.
func (r *RangeSpec) PathAt(i uint64) string {
	return r.prefix + strconv.FormatUint(i, 10) + r.suffix
}

// scanState enumerates the states of the range marker scanner.
type scanState uint8

const (
	// stateSearching scans for an opening bracket.
	stateSearching scanState = iota

	// stateReadingFrom accumulates the digits of the lower bound.
	stateReadingFrom

	// stateReadingTo accumulates the digits of the upper bound.
	stateReadingTo
)

// ParseRange scans path for the first well-formed numeric range marker and
// returns its specification. The second return value is false if the path
// contains no marker or a malformed one (unterminated, interrupted by a
// non-digit, a bound longer than eight digits, or from > to); callers must
// then treat the path as a single literal path. Only the first completed
// marker is honored, anything following it is carried into the expanded
// paths unchanged.
func ParseRange(path string) (RangeSpec, bool) {
	var (
		state     = stateSearching
		fromStart int
		numStart  int
		from      uint64
		num       uint64
	)

	limit := len(path)
	if limit > maxPathLen {
		limit = maxPathLen
	}

	for i := 0; i < limit; i++ {
		c := path[i]

		switch state {
		case stateSearching:
			if c == '[' || c == '(' {
				state = stateReadingFrom
				fromStart = i + 1
				numStart = i + 1
				num = 0
			}

		case stateReadingFrom:
			switch {
			case c == '-':
				if i-numStart > maxRangeDigits {
					return RangeSpec{}, false
				}
				from = num
				state = stateReadingTo
				numStart = i + 1
				num = 0

			case c >= '0' && c <= '9':
				num = num*10 + uint64(c-'0')

			default:
				return RangeSpec{}, false
			}

		case stateReadingTo:
			switch {
			case c == ']' || c == ')':
				if i-numStart > maxRangeDigits {
					return RangeSpec{}, false
				}
				if from > num {
					return RangeSpec{}, false
				}

				return RangeSpec{
					prefix: path[:fromStart-1],
					suffix: path[i+1:],
					from:   from,
					to:     num,
				}, true

			case c >= '0' && c <= '9':
				num = num*10 + uint64(c-'0')

			default:
				return RangeSpec{}, false
			}
		}
	}

	// Ran off the end of the path without completing a marker.
	return RangeSpec{}, false
}
