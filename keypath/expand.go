package keypath

// Expansion is a lazy, restartable sequence of concrete derivation paths
// produced from a single path string. A path without a valid range marker
// expands to exactly one element, the original string unchanged.
type Expansion struct {
	path     string
	spec     RangeSpec
	hasRange bool

	next uint64
	done bool
}

// Expand prepares the expansion of the given derivation path. The sequence
// is computed element by element, each one derived purely from the original
// path and the parsed range, so it can be replayed with Reset.
func Expand(path string) *Expansion {
	spec, ok := ParseRange(path)
	return &Expansion{
		path:     path,
		spec:     spec,
		hasRange: ok,
		next:     spec.from,
	}
}

// Next returns the next concrete path in strictly ascending order. The
// second return value is false once the sequence is exhausted.
func (e *Expansion) Next() (string, bool) {
	if e.done {
		return "", false
	}

	if !e.hasRange {
		e.done = true
		return e.path, true
	}

	path := e.spec.PathAt(e.next)
	if e.next == e.spec.to {
		e.done = true
	} else {
		e.next++
	}

	return path, true
}

// Reset rewinds the expansion to its first element.
func (e *Expansion) Reset() {
	e.next = e.spec.from
	e.done = false
}

// Len returns the number of elements the expansion yields.
func (e *Expansion) Len() uint64 {
	if !e.hasRange {
		return 1
	}
	return e.spec.Count()
}

// ExpandAll materializes the full expansion of path into a slice.
func ExpandAll(path string) []string {
	exp := Expand(path)
	paths := make([]string, 0, exp.Len())
	for {
		p, ok := exp.Next()
		if !ok {
			return paths
		}
		paths = append(paths, p)
	}
}
