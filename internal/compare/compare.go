// Package compare measures LZSS against general purpose codecs on the same input.
package compare

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hchen90/lzss"
)

// Algorithm names a codec taking part in a comparison.
type Algorithm string

const (
	AlgorithmLZSS   Algorithm = "lzss"
	AlgorithmGzip   Algorithm = "gzip"
	AlgorithmZstd   Algorithm = "zstd"
	AlgorithmLZ4    Algorithm = "lz4"
	AlgorithmBrotli Algorithm = "brotli"
	AlgorithmSnappy Algorithm = "snappy"
)

var (
	ErrUnsupportedAlgorithm = errors.New("compare: unsupported algorithm")
	ErrMismatch             = errors.New("compare: round trip mismatch")
)

// Algorithms returns every supported algorithm, LZSS first.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmLZSS, AlgorithmGzip, AlgorithmZstd, AlgorithmLZ4, AlgorithmBrotli, AlgorithmSnappy}
}

// Parse resolves algorithm names; an empty list selects every algorithm.
func Parse(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return Algorithms(), nil
	}

	algos := make([]Algorithm, 0, len(names))
	for _, name := range names {
		algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
		switch algo {
		case AlgorithmLZSS, AlgorithmGzip, AlgorithmZstd, AlgorithmLZ4, AlgorithmBrotli, AlgorithmSnappy:
			algos = append(algos, algo)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
		}
	}

	return algos, nil
}

// Result holds the outcome of one codec on one input.
type Result struct {
	Algorithm  Algorithm
	InputSize  int
	OutputSize int
	Encode     time.Duration
	Decode     time.Duration
}

// Ratio returns OutputSize/InputSize; lower is better.
func (r Result) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.InputSize)
}

// Savings returns the percentage of space saved (negative when the output grew).
func (r Result) Savings() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return (1 - r.Ratio()) * 100
}

// Run compresses data with each algorithm, checks the round trip and reports sizes.
// opts configures the LZSS encoder; nil means lzss.DefaultEncodeOptions().
func Run(data []byte, algos []Algorithm, opts *lzss.EncodeOptions) ([]Result, error) {
	results := make([]Result, 0, len(algos))
	for _, algo := range algos {
		start := time.Now()
		enc, err := Compress(algo, data, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: compress: %w", algo, err)
		}
		encTime := time.Since(start)

		start = time.Now()
		dec, err := Decompress(algo, enc)
		if err != nil {
			return nil, fmt.Errorf("%s: decompress: %w", algo, err)
		}
		decTime := time.Since(start)

		if !bytes.Equal(dec, data) {
			return nil, fmt.Errorf("%w: %s", ErrMismatch, algo)
		}

		results = append(results, Result{
			Algorithm:  algo,
			InputSize:  len(data),
			OutputSize: len(enc),
			Encode:     encTime,
			Decode:     decTime,
		})
	}

	return results, nil
}

// Compress compresses data with algo.
func Compress(algo Algorithm, data []byte, opts *lzss.EncodeOptions) ([]byte, error) {
	if algo == AlgorithmLZSS {
		return lzss.Encode(data, opts)
	}

	var buf bytes.Buffer
	w, err := newWriter(algo, &buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(algo Algorithm, data []byte) ([]byte, error) {
	if algo == AlgorithmLZSS {
		return lzss.Decode(data, nil)
	}

	r, err := newReader(algo, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

func newWriter(algo Algorithm, w io.Writer) (io.WriteCloser, error) {
	switch algo {
	case AlgorithmGzip:
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	case AlgorithmZstd:
		return zstd.NewWriter(w)
	case AlgorithmLZ4:
		return lz4.NewWriter(w), nil
	case AlgorithmBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case AlgorithmSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
}

func newReader(algo Algorithm, r io.Reader) (io.ReadCloser, error) {
	switch algo {
	case AlgorithmGzip:
		return gzip.NewReader(r)
	case AlgorithmZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case AlgorithmLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case AlgorithmBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case AlgorithmSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
}

// WriteReport prints results as an aligned table.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\tinput\toutput\tratio\tsaved\tencode\tdecode\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.1f%%\t%s\t%s\t\n",
			r.Algorithm, r.InputSize, r.OutputSize, r.Ratio(), r.Savings(),
			r.Encode.Round(time.Microsecond), r.Decode.Round(time.Microsecond))
	}

	return tw.Flush()
}
