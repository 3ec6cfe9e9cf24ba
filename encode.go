package lzss

import (
	"encoding/binary"
	"fmt"
)

// Encode compresses src. Options nil means DefaultEncodeOptions().
func Encode(src []byte, opts *EncodeOptions) ([]byte, error) {
	out, _, err := EncodeWithStats(src, opts)
	return out, err
}

// EncodeWithStats compresses src and reports token statistics.
func EncodeWithStats(src []byte, opts *EncodeOptions) ([]byte, Stats, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	if len(src) == 0 {
		return nil, Stats{}, ErrEmptyInput
	}
	if len(src) > MaxSize {
		return nil, Stats{}, fmt.Errorf("%w: size=%d", ErrInputTooLarge, len(src))
	}

	stats := Stats{InputSize: len(src)}

	// Worst case is all literals plus one control byte per group, and a legacy pad byte.
	out := make([]byte, HeaderSize, HeaderSize+len(src)+(len(src)+FlagBits-1)/FlagBits+1)
	binary.BigEndian.PutUint32(out, uint32(len(src))) // #nosec G115 -- checked against MaxSize

	finder := newMatchFinder(src, opts)
	group := newGroupWriter()

	tail := 0
	for tail < len(src) {
		var full bool

		pos, length := finder.find(tail)
		if length >= MinMatch {
			full = group.match(tail-pos, length)
			stats.Matches++
			stats.MatchedBytes += length
			tail += length
		} else {
			full = group.literal(src[tail])
			stats.Literals++
			tail++
		}

		if full {
			out = group.flush(out)
			stats.Groups++
		}
	}

	if group.pending() {
		out = group.flush(out)
		stats.Groups++
	} else if opts.Legacy {
		// The reference encoder emits an empty control byte after a full final group.
		out = append(out, 0)
	}

	stats.OutputSize = len(out)

	return out, stats, nil
}
