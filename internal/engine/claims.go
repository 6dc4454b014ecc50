package engine

// claimSet tracks which byte offsets of the source buffer are already
// owned by an emitted token. One claim set exists per Tokenize call;
// it is what makes the output provably non-overlapping.
//
// A flat bool arena keeps claim checks simple at O(span) per match.
// For very long inputs a sorted interval structure would do the same
// job with better asymptotics, but highlighter inputs are small enough
// that the arena wins on constant factor.
type claimSet []bool

func newClaimSet(n int) claimSet {
	return make(claimSet, n)
}

// any reports whether any offset in [s, e) is already claimed.
func (c claimSet) any(s, e int) bool {
	for i := s; i < e; i++ {
		if c[i] {
			return true
		}
	}
	return false
}

// mark claims every offset in [s, e).
func (c claimSet) mark(s, e int) {
	for i := s; i < e; i++ {
		c[i] = true
	}
}
