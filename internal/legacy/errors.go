// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package legacy

import "errors"

// ErrLegacyUnsupported is returned by Select when an entry name carries a
// legacy-codec hint; no legacy implementation is wired in.
var ErrLegacyUnsupported = errors.New("legacy: entry selects the legacy codec, which is not implemented")
