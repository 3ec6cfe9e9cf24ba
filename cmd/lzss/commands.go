package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/hchen90/lzss"
	"github.com/hchen90/lzss/internal/compare"
	"github.com/hchen90/lzss/internal/config"
)

var errSameFile = errors.New("output is the input file")

type mode int

const (
	modeEncode mode = iota
	modeDecode
)

func (m mode) String() string {
	if m == modeEncode {
		return "encode"
	}
	return "decode"
}

// command runs one CLI operation. Inputs and outputs are files; an empty output
// path writes to stdout.
type command struct {
	cfg    config.Config
	log    *zap.Logger
	stdout io.Writer
}

// transform encodes or decodes input into output. A partially written output
// file is removed when the operation fails.
func (c *command) transform(m mode, input, output string) (err error) {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	w := c.stdout
	if output != "" {
		if outInfo, statErr := os.Stat(output); statErr == nil && os.SameFile(info, outInfo) {
			return fmt.Errorf("%w: %s", errSameFile, output)
		}

		out, createErr := os.Create(output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				if rerr := os.Remove(output); rerr != nil {
					c.log.Warn("cannot remove output", zap.String("output", output), zap.Error(rerr))
				}
			}
		}()
		w = out
	}

	var n int64
	switch m {
	case modeEncode:
		n, err = lzss.EncodeStream(w, in, info.Size(), c.cfg.EncodeOptions())
	case modeDecode:
		n, err = lzss.DecodeStream(w, in, info.Size(), c.cfg.DecodeOptions())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", m, err)
	}

	c.log.Debug(m.String(),
		zap.String("input", input),
		zap.String("output", output),
		zap.Int64("read", info.Size()),
		zap.Int64("written", n),
		zap.Float64("ratio", ratio(info.Size(), n, m)),
	)

	return nil
}

// ratio returns compressed/uncompressed size for either direction.
func ratio(read, written int64, m mode) float64 {
	raw, packed := read, written
	if m == modeDecode {
		raw, packed = written, read
	}
	if raw == 0 {
		return 0
	}
	return float64(packed) / float64(raw)
}

// dump lists the tokens of an encoded file with the output position of each.
func (c *command) dump(input string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	size, err := lzss.DecodedSize(src)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "size %d\n", size)

	tokens, tokErr := lzss.Tokens(src, c.cfg.DecodeOptions())

	pos, literals, matches := 0, 0, 0
	for _, t := range tokens {
		fmt.Fprintf(c.stdout, "%8d  %s\n", pos, t)
		pos += t.Size()
		if t.Match {
			matches++
		} else {
			literals++
		}
	}
	fmt.Fprintf(c.stdout, "tokens %d literals %d matches %d\n", len(tokens), literals, matches)

	if tokErr != nil {
		return fmt.Errorf("dump: %w", tokErr)
	}

	return nil
}

// compare prints how LZSS and the configured codecs do on input.
func (c *command) compare(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return lzss.ErrEmptyInput
	}

	algos, err := compare.Parse(c.cfg.Compare)
	if err != nil {
		return err
	}

	results, err := compare.Run(data, algos, c.cfg.EncodeOptions())
	if err != nil {
		return err
	}

	for _, r := range results {
		c.log.Debug("compared",
			zap.String("algorithm", string(r.Algorithm)),
			zap.Int("output", r.OutputSize),
			zap.Duration("encode", r.Encode),
			zap.Duration("decode", r.Decode),
		)
	}

	return compare.WriteReport(c.stdout, results)
}
