package lzss

// matchFinder searches the sliding window for the longest run equal to the lookahead.
//
// Candidates are chained per byte value (last occurrence plus links to earlier
// occurrences), so only positions whose first byte matches are visited, nearest
// first. Any other position would yield a zero-length run, so the result equals a
// full backward scan of the window.
type matchFinder struct {
	src    []byte
	last   [256]int32 // Most recent indexed position of each byte value, -1 if none.
	prev   []int32    // Previous indexed position holding the same byte value.
	next   int        // Positions below next are indexed.
	limit  int
	legacy bool
}

func newMatchFinder(src []byte, opts *EncodeOptions) *matchFinder {
	m := &matchFinder{
		src:    src,
		prev:   make([]int32, len(src)),
		limit:  opts.searchLimit(),
		legacy: opts.Legacy,
	}
	for i := range m.last {
		m.last[i] = -1
	}

	return m
}

// index adds positions up to (not including) tail to the chains.
func (m *matchFinder) index(tail int) {
	for ; m.next < tail; m.next++ {
		b := m.src[m.next]
		m.prev[m.next] = m.last[b]
		m.last[b] = int32(m.next) // #nosec G115 -- len(src) <= MaxSize
	}
}

// find returns the start and length of the longest match for the lookahead at tail.
// Ties keep the nearest candidate. A length of MinMatch-1 or less is not profitable.
func (m *matchFinder) find(tail int) (pos, length int) {
	m.index(tail)

	head := max(tail-m.limit, 0)
	if m.legacy {
		// The reference search never compares the oldest window byte.
		head = max(head, 1)
	}

	for p := int(m.last[m.src[tail]]); p >= head; p = int(m.prev[p]) {
		n := m.runLength(p, tail)
		if n > length {
			pos, length = p, n
			if length == MaxMatch {
				break
			}
		}
	}

	return pos, length
}

// runLength counts equal bytes at p and tail, capped at MaxMatch and the end of input.
// Without legacy the source run may extend into the lookahead, which the decoder
// replays byte by byte.
func (m *matchFinder) runLength(p, tail int) int {
	end := len(m.src) - tail
	if m.legacy {
		end = min(end, tail-p)
	}
	end = min(end, MaxMatch)

	n := 0
	for n < end && m.src[p+n] == m.src[tail+n] {
		n++
	}

	return n
}
