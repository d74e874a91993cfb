package converter

// PrefixTally is an insertion-ordered set of prefixes
type PrefixTally struct {
	seen  map[string]struct{}
	order []string
}

// NewPrefixTally creates an empty tally
func NewPrefixTally() *PrefixTally {
	return &PrefixTally{seen: make(map[string]struct{})}
}

// Add records prefix if it has not been seen yet and reports whether it was new
func (t *PrefixTally) Add(prefix string) bool {
	if _, ok := t.seen[prefix]; ok {
		return false
	}
	t.seen[prefix] = struct{}{}
	t.order = append(t.order, prefix)
	return true
}

// Len returns the number of distinct prefixes
func (t *PrefixTally) Len() int {
	return len(t.order)
}

// Prefixes returns the distinct prefixes in first-seen order
func (t *PrefixTally) Prefixes() []string {
	return append([]string(nil), t.order...)
}
