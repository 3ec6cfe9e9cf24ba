package lzss

import (
	"errors"
	"fmt"
	"io"
)

// EncodeStream reads exactly size bytes from r, compresses them and writes the
// result to w with a single Write. It returns the number of bytes written.
// Nothing is written when reading or encoding fails.
func EncodeStream(w io.Writer, r io.Reader, size int64, opts *EncodeOptions) (int64, error) {
	src, err := readInput(w, r, size)
	if err != nil {
		return 0, err
	}

	out, err := Encode(src, opts)
	if err != nil {
		return 0, err
	}

	return writeOutput(w, out)
}

// DecodeStream reads exactly size compressed bytes from r, decompresses them and
// writes the result to w with a single Write. It returns the number of bytes written.
func DecodeStream(w io.Writer, r io.Reader, size int64, opts *DecodeOptions) (int64, error) {
	src, err := readInput(w, r, size)
	if err != nil {
		return 0, err
	}

	out, err := Decode(src, opts)
	if err != nil {
		return 0, err
	}

	return writeOutput(w, out)
}

// readInput performs the one full read of a stream whose length is known up front.
func readInput(w io.Writer, r io.Reader, size int64) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if w == nil {
		return nil, ErrNilWriter
	}
	if size <= 0 {
		return nil, ErrEmptyInput
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: size=%d", ErrInputTooLarge, size)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read %d of %d bytes", ErrShortRead, n, size)
		}

		return nil, err
	}

	return buf, nil
}

func writeOutput(w io.Writer, out []byte) (int64, error) {
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}
