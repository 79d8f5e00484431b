// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

// Package legacy defines the seam between the adaptive-tree codec and the
// archive's second, simpler byte-level codec. The legacy codec itself is
// referenced only as a sibling in the governing specification, not
// specified, and is not implemented here.
package legacy

import "strings"

// Codec is the shared contract both the adaptive-tree codec and the legacy
// codec implement, letting the driver call either without caring which.
type Codec interface {
	Decode(compressed []byte, outLen int) ([]byte, error)
	Encode(raw []byte) []byte
}

// legacyPrefixes lists the entry-name hints (spec §6 "Selecting between this
// codec and the legacy codec based on entry-name hints") that would route an
// entry to the legacy codec. No legacy implementation exists yet, so a name
// matching one of these is currently an unsupported configuration rather
// than a silently-wrong decode.
var legacyPrefixes = []string{"LEGACY_", "OLD_"}

// IsLegacyName reports whether name carries one of the legacy codec's
// recognized hints.
func IsLegacyName(name string) bool {
	for _, prefix := range legacyPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Select returns primary for every entry name without a legacy hint. Since
// no legacy codec implementation is wired in, a name carrying a legacy hint
// yields ErrLegacyUnsupported instead of a silently wrong decode.
func Select(name string, primary Codec) (Codec, error) {
	if IsLegacyName(name) {
		return nil, ErrLegacyUnsupported
	}
	return primary, nil
}
