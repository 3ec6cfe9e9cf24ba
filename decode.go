package lzss

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// DecodedSize validates the size header of src and returns the declared output size.
func DecodedSize(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if len(src) < HeaderSize {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidHeader, HeaderSize, len(src))
	}

	size := binary.BigEndian.Uint32(src)
	if size == 0 || size > MaxSize {
		return 0, fmt.Errorf("%w: declared size %d", ErrInvalidHeader, int32(size)) // #nosec G115 -- reported as the signed value
	}

	return int(size), nil
}

// Decode decompresses src. Options nil means DefaultDecodeOptions().
func Decode(src []byte, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	size, err := DecodedSize(src)
	if err != nil {
		return nil, err
	}
	if opts.MaxSize > 0 && size > opts.MaxSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit %d", ErrAllocation, size, opts.MaxSize)
	}

	stream := src[HeaderSize:]
	limit := maxExpansion(len(stream))
	if size > limit && !opts.Lenient {
		return nil, fmt.Errorf("%w: %d stream bytes cannot produce %d bytes", ErrTruncated, len(stream), size)
	}

	out := make([]byte, min(size, limit))
	n, err := decode(stream, out, size, nil)
	if err != nil {
		if opts.Lenient && errors.Is(err, ErrTruncated) {
			return out[:n], nil
		}

		return nil, err
	}

	return out, nil
}

// Tokens decodes src and returns its tokens instead of the output bytes.
// Every back-reference is validated against the output it would be applied to.
// On error the tokens read so far are returned with it.
// Options nil means DefaultDecodeOptions(); only MaxSize applies.
func Tokens(src []byte, opts *DecodeOptions) ([]Token, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	size, err := DecodedSize(src)
	if err != nil {
		return nil, err
	}
	if opts.MaxSize > 0 && size > opts.MaxSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit %d", ErrAllocation, size, opts.MaxSize)
	}

	stream := src[HeaderSize:]
	out := make([]byte, min(size, maxExpansion(len(stream))))

	var tokens []Token
	if _, err := decode(stream, out, size, func(t Token) {
		tokens = append(tokens, t)
	}); err != nil {
		return tokens, err
	}

	return tokens, nil
}

// decode expands the token stream into out and returns the number of bytes written.
// size is the declared output size; out may be shorter when the stream cannot reach it.
// visit, when set, sees every token before it is applied.
func decode(stream, out []byte, size int, visit func(Token)) (int, error) {
	tr := newTokenReader(stream)
	tail := 0

	for tr.more() {
		// The reference encoder closes a stream whose token count is a
		// multiple of FlagBits with one empty control byte.
		if tail == size && tr.padding() {
			break
		}

		t, err := tr.next()
		if err != nil {
			return tail, fmt.Errorf("%w: at stream byte %d", err, tr.consumed())
		}
		if visit != nil {
			visit(t)
		}

		if tail+t.Size() > len(out) {
			return tail, fmt.Errorf("%w: token ends at %d, size=%d", ErrOutputOverrun, tail+t.Size(), size)
		}

		if !t.Match {
			out[tail] = t.Literal
			tail++
			continue
		}

		if t.Offset == 0 || t.Offset > tail {
			return tail, fmt.Errorf("%w: offset=%d written=%d", ErrInvalidOffset, t.Offset, tail)
		}

		// Byte by byte in increasing order: when Offset < Length the copy reads
		// bytes written earlier in the same copy.
		from := tail - t.Offset
		for i := 0; i < t.Length; i++ {
			out[tail+i] = out[from+i]
		}
		tail += t.Length
	}

	if tail < size {
		return tail, fmt.Errorf("%w: produced %d of %d bytes", ErrTruncated, tail, size)
	}

	return tail, nil
}
