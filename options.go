package lzss

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// SearchLimit is the maximum backward distance searched for matches (1..MaxOffset).
	// 0 means MaxOffset; larger values are clamped.
	SearchLimit int
	// Legacy reproduces the token choices of the reference encoder: a match source
	// never overlaps the lookahead and the oldest window byte is never a candidate.
	Legacy bool
}

// DefaultEncodeOptions returns options searching the whole window with overlapping matches enabled.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		SearchLimit: MaxOffset,
	}
}

// LegacyEncodeOptions returns options producing output byte-identical to the reference encoder.
func LegacyEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		SearchLimit: MaxOffset,
		Legacy:      true,
	}
}

// searchLimit returns the effective backward search distance.
func (o *EncodeOptions) searchLimit() int {
	if o.SearchLimit <= 0 || o.SearchLimit > MaxOffset {
		return MaxOffset
	}

	return o.SearchLimit
}

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// MaxSize rejects headers declaring more than MaxSize bytes with ErrAllocation (0 = no limit).
	MaxSize int
	// Lenient returns the produced prefix instead of ErrTruncated when the token
	// stream ends before the declared size is reached.
	Lenient bool
}

// DefaultDecodeOptions returns options for strict decoding without a size limit.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}
