// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

import "errors"

// Sentinel errors for decoding and encoding WAD entries.
var (
	// ErrEmptyInput is returned when the compressed slice is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputExhausted is returned when the bit reader runs out of input before the end-of-stream symbol is decoded.
	ErrInputExhausted = errors.New("input exhausted before end-of-stream symbol")
	// ErrOutputOverflow is returned when decoding would emit more bytes than the caller-declared output size.
	ErrOutputOverflow = errors.New("output overflow")
	// ErrInvalidSymbol is returned when the tree walk yields a symbol outside its legal range.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrOptionsRequired is returned when Decode is called with a negative output length.
	ErrOptionsRequired = errors.New("options required: outLen must be non-negative")

	// errMatchInfeasible is internal to the encoder: a candidate match's extra-bits value
	// falls outside every bucket's range. Recovered locally by falling back to a literal;
	// never surfaced to callers (spec: EncoderMatchInfeasible).
	errMatchInfeasible = errors.New("match infeasible for any length bucket")
)
