// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

// Symbol alphabet and tree shape (component C's static layout).

const (
	// numLeaves is the number of distinct symbols: 1 end-of-stream, 256 literal
	// bytes, and 372 match symbols (6 length buckets of 62 lengths each).
	numLeaves = 629
	// numNodes is the total tree node count (2*numLeaves - 1): numLeaves-1
	// internal nodes (ids 1..numLeaves-1, 1=root) plus numLeaves leaves.
	numNodes = 2*numLeaves - 1
	// leafBase is added to a symbol's payload value (0..numLeaves-1) to get its
	// leaf node id. payload 0 is end-of-stream, 1..256 are literals, 257..628
	// are match symbols. See DESIGN.md "Open Question resolutions" #1 for why
	// this differs by one from the bias literally stated in spec.md §3.
	leafBase = numLeaves

	// rescaleThreshold is the root weight at which every weight in the tree is halved.
	rescaleThreshold = 0x07D0 // 2000
)

// Match symbol layout: payload values 257..628 partition into 6 bands of 62.
const (
	numLengthBuckets  = 6
	symbolsPerBucket  = 62
	minMatchLen       = 3
	maxMatchLen       = minMatchLen + symbolsPerBucket - 1 // 64
	firstMatchPayload = 1 + 256                            // 257
)

// lengthBucketTable (component B): extra-bits width and cumulative base
// distance per length bucket. Fixed at initialization, never mutated.
type lengthBucket struct {
	extraBits uint
	base      int
}

var lengthBuckets = [numLengthBuckets]lengthBucket{
	{extraBits: 4, base: 0},
	{extraBits: 6, base: 16},
	{extraBits: 8, base: 80},
	{extraBits: 10, base: 336},
	{extraBits: 12, base: 1360},
	{extraBits: 14, base: 5456},
}

// windowSize (component D) is the circular history buffer size, slightly
// larger than the maximum representable back-distance (base[5] + 2^14 - 1 = 21839).
const windowSize = 21903

// maxDistance returns the largest back-distance representable by bucket k.
func maxDistance(bucket int) int {
	b := lengthBuckets[bucket]
	return b.base + (1 << b.extraBits) - 1
}
