/*
Package lzss implements LZSS compression and decompression with a 4096-byte window.

Format: a 4-byte big-endian original size, then groups of one control byte and up
to 8 tokens. Control bits are read most-significant first; 0 = literal (1 byte),
1 = back-reference (2 bytes). A back-reference holds a 12-bit backward offset and
a 4-bit length nibble (length = nibble+2); the encoder emits lengths 3..17 and
offsets 1..4095. The last control byte is padded with zero bits; the decoder stops
when the stream is consumed.

Use Encode(src, opts) and Decode(src, opts) with nil for default options.
Use EncodeStream and DecodeStream to read a source of known size and write the
result with one Write.
Use Tokens(src, nil) to list the tokens of a compressed stream.
Use LegacyEncodeOptions() for output identical to the reference encoder.
Set DecodeOptions.Lenient to accept streams that end before the declared size.

# Examples

Round-trip compress and decompress:

	enc, err := lzss.Encode(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decode(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Compress a file:

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if _, err := lzss.EncodeStream(out, in, info.Size(), nil); err != nil {
		return err
	}

Reject oversized headers before allocating:

	dec, err := lzss.Decode(src, &lzss.DecodeOptions{MaxSize: 64 << 20})
	if errors.Is(err, lzss.ErrAllocation) {
		// declared size above 64 MiB
	}

Detect malformed input:

	if _, err := lzss.Decode(src, nil); errors.Is(err, lzss.ErrCorruptStream) {
		// truncated stream, bad offset or output overrun
	}
*/
package lzss
