package lzss

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// groupWriter accumulates one control group: a control byte holding up to
// FlagBits token flags (most-significant bit first) and the token payloads.
// Writes go to bytes.Buffer values, which never fail, so bitio errors are dropped.
type groupWriter struct {
	flagBuf bytes.Buffer
	flags   *bitio.Writer

	payloadBuf bytes.Buffer
	payload    *bitio.Writer

	count int // Flags pushed into the current control byte.
}

func newGroupWriter() *groupWriter {
	gw := &groupWriter{}
	gw.flags = bitio.NewWriter(&gw.flagBuf)
	gw.payload = bitio.NewWriter(&gw.payloadBuf)

	return gw
}

// literal appends a literal token. It reports whether the group is full.
func (gw *groupWriter) literal(b byte) bool {
	_ = gw.flags.WriteBool(false)
	_ = gw.payload.WriteByte(b)

	return gw.commit()
}

// match appends a back-reference token. It reports whether the group is full.
func (gw *groupWriter) match(offset, length int) bool {
	_ = gw.flags.WriteBool(true)
	// #nosec G115 -- offset <= MaxOffset and length <= MaxMatch
	_ = gw.payload.WriteBits(uint64(offset), OffsetBits)
	_ = gw.payload.WriteBits(uint64(length-LengthBias), LengthBits)

	return gw.commit()
}

func (gw *groupWriter) commit() bool {
	gw.count++
	return gw.count == FlagBits
}

// pending reports whether the group holds tokens that were not flushed yet.
func (gw *groupWriter) pending() bool {
	return gw.count > 0
}

// flush appends the control byte and its payloads to dst and starts a new group.
// A partial control byte is padded with zero bits on the low end.
func (gw *groupWriter) flush(dst []byte) []byte {
	if gw.count == 0 {
		return dst
	}
	if gw.count < FlagBits {
		_, _ = gw.flags.Align()
	}

	dst = append(dst, gw.flagBuf.Bytes()...)
	dst = append(dst, gw.payloadBuf.Bytes()...)
	gw.flagBuf.Reset()
	gw.payloadBuf.Reset()
	gw.count = 0

	return dst
}

// tokenReader walks a token stream: control bytes are refreshed every FlagBits
// tokens and their bits are consumed most-significant first.
type tokenReader struct {
	src *bytes.Reader
	in  *bitio.Reader

	ctrl    [1]byte
	ctrlSrc bytes.Reader
	flags   *bitio.Reader

	count int // Flags consumed from the current control byte.
}

func newTokenReader(stream []byte) *tokenReader {
	tr := &tokenReader{
		src:   bytes.NewReader(stream),
		count: FlagBits,
	}
	tr.in = bitio.NewReader(tr.src)
	tr.flags = bitio.NewReader(&tr.ctrlSrc)

	return tr
}

// more reports whether unread stream bytes remain.
func (tr *tokenReader) more() bool {
	return tr.src.Len() > 0
}

// padding consumes the rest of the stream and reports true when it is a single
// zero control byte due at a group boundary.
func (tr *tokenReader) padding() bool {
	if tr.count != FlagBits || tr.src.Len() != 1 {
		return false
	}

	b, err := tr.src.ReadByte()
	if err != nil || b != 0 {
		_ = tr.src.UnreadByte()
		return false
	}

	return true
}

// consumed returns the number of stream bytes read so far.
func (tr *tokenReader) consumed() int {
	return int(tr.src.Size()) - tr.src.Len()
}

// next reads one token, loading a new control byte when the current one is used up.
// A stream that ends inside a token yields ErrTruncated.
func (tr *tokenReader) next() (Token, error) {
	if tr.count == FlagBits {
		c, err := tr.in.ReadByte()
		if err != nil {
			return Token{}, truncated(err)
		}
		tr.ctrl[0] = c
		tr.ctrlSrc.Reset(tr.ctrl[:])
		tr.count = 0
	}

	isMatch, err := tr.flags.ReadBool()
	if err != nil {
		return Token{}, err
	}
	tr.count++

	if !isMatch {
		b, err := tr.in.ReadByte()
		if err != nil {
			return Token{}, truncated(err)
		}

		return Token{Literal: b}, nil
	}

	offset, err := tr.in.ReadBits(OffsetBits)
	if err != nil {
		return Token{}, truncated(err)
	}
	length, err := tr.in.ReadBits(LengthBits)
	if err != nil {
		return Token{}, truncated(err)
	}

	return Token{
		Match:  true,
		Offset: int(offset),
		Length: int(length) + LengthBias,
	}, nil
}

// truncated maps end-of-stream errors from the underlying reader to ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
