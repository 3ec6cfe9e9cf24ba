package lzss

import "fmt"

// Token is one unit of the compressed stream: a literal byte or a back-reference.
type Token struct {
	Match   bool
	Literal byte // Set when Match is false.
	Offset  int  // Backward distance from the current output position.
	Length  int  // Bytes covered by the back-reference.
}

// Size returns the number of output bytes the token produces.
func (t Token) Size() int {
	if t.Match {
		return t.Length
	}

	return 1
}

// String formats the token for listings.
func (t Token) String() string {
	if t.Match {
		return fmt.Sprintf("match offset=%d length=%d", t.Offset, t.Length)
	}

	return fmt.Sprintf("literal 0x%02x", t.Literal)
}

// Stats summarizes one encoding.
type Stats struct {
	InputSize    int
	OutputSize   int
	Literals     int
	Matches      int
	MatchedBytes int // Input bytes covered by matches.
	Groups       int // Control bytes emitted.
}

// Ratio returns OutputSize/InputSize (lower is better), 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}

	return float64(s.OutputSize) / float64(s.InputSize)
}
