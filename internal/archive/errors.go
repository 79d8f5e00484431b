// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

import "errors"

// Sentinel errors for directory and archive I/O.
var (
	ErrTruncatedHeader    = errors.New("archive: truncated header")
	ErrTruncatedDirectory = errors.New("archive: truncated directory")
	ErrNameTooLong        = errors.New("archive: entry name does not fit an 8-byte field")
	ErrEntryOutOfBounds   = errors.New("archive: entry offset/size out of bounds")
)
