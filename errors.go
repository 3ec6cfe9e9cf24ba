// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (c) 2014 Sean Chen
// Source: github.com/hchen90/lzss

package lzss

import (
	"errors"
	"fmt"
)

// Package errors. Detail is attached with fmt.Errorf("%w: ...") so callers match with errors.Is.
var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrShortRead     = fmt.Errorf("%w: fewer bytes read than declared", ErrEmptyInput)
	ErrInputTooLarge = errors.New("input exceeds the size the header can declare")
	ErrInvalidHeader = errors.New("invalid size header")
	ErrAllocation    = errors.New("output buffer cannot be allocated")
	ErrCorruptStream = errors.New("truncated or corrupt token stream")
	ErrTruncated     = fmt.Errorf("%w: stream ended early", ErrCorruptStream)
	ErrInvalidOffset = fmt.Errorf("%w: back-reference outside produced output", ErrCorruptStream)
	ErrOutputOverrun = fmt.Errorf("%w: output exceeds declared size", ErrCorruptStream)
	ErrNilReader     = errors.New("reader is nil")
	ErrNilWriter     = errors.New("writer is nil")
)
