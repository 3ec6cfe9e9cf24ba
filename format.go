package lzss

import "math"

// Wire format constants.
const (
	OffsetBits = 12              // Width of the back-reference offset field.
	LengthBits = 4               // Width of the back-reference length field.
	WindowSize = 1 << OffsetBits // Look-back horizon addressable by the offset field.
	MaxOffset  = WindowSize - 1  // Largest encodable offset (0 is not a valid distance).
	LengthBias = 2               // Stored length nibble = length - LengthBias.
	MinMatch   = 3               // Shortest match the encoder emits.
	MaxMatch   = 17              // Longest match: 4-bit nibble + LengthBias.
	FlagBits   = 8               // Tokens per control byte.
	HeaderSize = 4               // Big-endian original size prefix.
	MaxSize    = math.MaxInt32   // Largest size the header can declare.
)

// maxExpansion returns the largest output a token stream of n bytes can describe.
// Every 2 payload bytes expand to at most MaxMatch bytes.
func maxExpansion(n int) int {
	return n / 2 * MaxMatch
}
