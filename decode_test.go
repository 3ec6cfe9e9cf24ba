package lzss

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeSelfOverlappingCopy(t *testing.T) {
	// 'x' then three offset-1 matches: 1 + 17 + 17 + 15 = 50 bytes.
	src := []byte{0x00, 0x00, 0x00, 50, 0x70, 'x', 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x1d}
	out, err := Decode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := bytes.Repeat([]byte{'x'}, 50); !bytes.Equal(out, want) {
		t.Fatalf("got %q", out)
	}

	// "ab" then offset 2 length 10.
	src = []byte{0x00, 0x00, 0x00, 12, 0x20, 'a', 'b', 0x00, 0x28}
	out, err = Decode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "abababababab" {
		t.Fatalf("got %q", out)
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrEmptyInput},
		{"short header", []byte{0x00, 0x01}, ErrInvalidHeader},
		{"zero size", []byte{0x00, 0x00, 0x00, 0x00, 0x00, 'a'}, ErrInvalidHeader},
		{"negative size", []byte{0x80, 0x00, 0x00, 0x01, 0x00, 'a'}, ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.src, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeCorruptStream(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"zero offset", []byte{0x00, 0x00, 0x00, 0x05, 0x40, 'a', 0x00, 0x02}, ErrInvalidOffset},
		{"offset before start", []byte{0x00, 0x00, 0x00, 0x06, 0x40, 'a', 0x00, 0x23}, ErrInvalidOffset},
		{"overrun", []byte{0x00, 0x00, 0x00, 0x03, 0x40, 'a', 0x00, 0x1f}, ErrOutputOverrun},
		{"literal overrun", []byte{0x00, 0x00, 0x00, 0x01, 0x00, 'a', 'b'}, ErrOutputOverrun},
		{"cut match", []byte{0x00, 0x00, 0x00, 0x05, 0x40, 'a', 0x00}, ErrTruncated},
		{"control only", []byte{0x00, 0x00, 0x00, 0x01, 0x00}, ErrTruncated},
		{"no stream", []byte{0x00, 0x00, 0x00, 0x01}, ErrTruncated},
		{"short stream", []byte{0x00, 0x00, 0x00, 0x03, 0x00, 'a', 'b'}, ErrTruncated},
		{"impossible size", []byte{0x00, 0x00, 0x03, 0xe8, 0x00, 'a'}, ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode(tt.src, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrCorruptStream) {
				t.Fatalf("%v does not match ErrCorruptStream", err)
			}
			if out != nil {
				t.Fatalf("expected no output, got %q", out)
			}
		})
	}
}

func TestDecodeTrailingControlByte(t *testing.T) {
	src := []byte{0x00, 0x00, 0x00, 0x08, 0x00, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 0x00}
	out, err := Decode(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "ABCDEFGH" {
		t.Fatalf("got %q", out)
	}

	tokens, err := Tokens(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 8 {
		t.Fatalf("got %d tokens", len(tokens))
	}

	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"nonzero pad", []byte{0x00, 0x00, 0x00, 0x08, 0x00, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 0x80}, ErrTruncated},
		{"two pad bytes", []byte{0x00, 0x00, 0x00, 0x08, 0x00, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 0x00, 0x00}, ErrOutputOverrun},
		{"inside group", []byte{0x00, 0x00, 0x00, 0x01, 0x00, 'a', 0x00}, ErrOutputOverrun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.src, nil); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeTruncatedInputAlwaysFails(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)
	enc, err := Encode(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	for cut := 1; cut < len(enc)-HeaderSize; cut++ {
		_, err := Decode(enc[:len(enc)-cut], nil)
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("cut=%d: want ErrTruncated, got %v", cut, err)
		}
	}
}

func TestDecodeLenient(t *testing.T) {
	enc, err := Encode([]byte("hello, world"), nil)
	if err != nil {
		t.Fatal(err)
	}

	opts := &DecodeOptions{Lenient: true}
	out, err := Decode(enc[:len(enc)-2], opts)
	if err != nil {
		t.Fatalf("lenient should not error: %v", err)
	}
	if string(out) != "hello, wor" {
		t.Fatalf("got %q", out)
	}

	// Declared size far beyond what the stream can hold.
	out, err = Decode([]byte{0x00, 0x00, 0x03, 0xe8, 0x00, 'a'}, opts)
	if err != nil {
		t.Fatalf("lenient should not error: %v", err)
	}
	if string(out) != "a" {
		t.Fatalf("got %q", out)
	}

	// Bad offsets stay errors.
	_, err = Decode([]byte{0x00, 0x00, 0x00, 0x05, 0x40, 'a', 0x00, 0x02}, opts)
	if !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("want ErrInvalidOffset, got %v", err)
	}
}

func TestDecodeMaxSize(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 100)
	enc, err := Encode(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(enc, &DecodeOptions{MaxSize: len(data) - 1}); !errors.Is(err, ErrAllocation) {
		t.Fatalf("want ErrAllocation, got %v", err)
	}

	out, err := Decode(enc, &DecodeOptions{MaxSize: len(data)})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}
}

func TestTokensMaxSize(t *testing.T) {
	enc, err := Encode(bytes.Repeat([]byte{'z'}, 1000), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Tokens(enc, &DecodeOptions{MaxSize: 999}); !errors.Is(err, ErrAllocation) {
		t.Fatalf("want ErrAllocation, got %v", err)
	}
	if _, err := Tokens(enc, &DecodeOptions{MaxSize: 1000}); err != nil {
		t.Fatal(err)
	}
}

func TestDecodedSize(t *testing.T) {
	size, err := DecodedSize([]byte{0x00, 0x01, 0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if size != 65536 {
		t.Fatalf("size=%d", size)
	}

	if _, err := DecodedSize([]byte{0xff, 0xff, 0xff, 0xff}); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("want ErrInvalidHeader, got %v", err)
	}
}

func TestTokensReportsPartialList(t *testing.T) {
	tokens, err := Tokens([]byte{0x00, 0x00, 0x00, 0x06, 0x40, 'a', 0x00, 0x23}, nil)
	if !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("want ErrInvalidOffset, got %v", err)
	}
	if len(tokens) != 2 || tokens[0].Literal != 'a' || !tokens[1].Match {
		t.Fatalf("got %v", tokens)
	}
	if s := tokens[1].String(); s != "match offset=2 length=5" {
		t.Fatalf("got %q", s)
	}
	if s := tokens[0].String(); s != "literal 0x61" {
		t.Fatalf("got %q", s)
	}
}
