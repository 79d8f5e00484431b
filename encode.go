// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

// Component F: the encoder. Greedy longest-match search against the input
// buffer itself (equivalent to searching the window — the window always
// holds exactly the last min(i, windowSize) bytes written, and the search
// depth cap of 1024 bytes, spec §4.5/§9.2, is always far shallower than
// windowSize, so there is no wraparound concern to reason about here),
// emitting symbols through the same adaptive tree the decoder maintains.

const (
	preludeLen  = 14
	searchDepth = 1024
)

// Encode compresses one archive entry. It cannot fail on well-formed input
// (spec §6); the result may be larger than raw for incompressible input.
func Encode(raw []byte) []byte {
	t := newTree()
	w := &window{}
	bw := newBitWriter()

	n := len(raw)
	i := 0

	prelude := min(preludeLen, n)
	for ; i < prelude; i++ {
		emitLiteral(t, bw, w, raw[i])
	}

	for i < n {
		length, dist, ok := findMatch(raw, i, n)
		if ok {
			bucket, extra, err := classifyMatch(dist, length)
			if err == nil && verifyMatch(w, raw, i, dist, length) {
				emitMatch(t, bw, w, bucket, length, extra)
				i += length
				continue
			}
		}

		emitLiteral(t, bw, w, raw[i])
		i++
	}

	t.encodeSymbol(bw, 0)
	t.update(0)

	return bw.flush()
}

// findMatch searches raw[:i] for the longest run (3..maxMatchLen bytes,
// capped by remaining input) matching raw[i:], looking back at most
// searchDepth positions. Ties prefer the smallest (most recent) distance.
//
// The inner distance loop starts at d=j, not d=1: this codec's distance
// encoding can never represent a distance smaller than the match length
// itself (base+extra+len is minimized, for bucket 0 extra=0, at d=len — spec
// §4.4's "match distance ≥ length guarantee"). d=j is exactly that boundary
// case and is what lets a uniform run of bytes compress: the previous j
// bytes of a uniform run trivially equal the next j, so the smallest legal
// distance is always found first for repetitive data.
func findMatch(raw []byte, i, n int) (length, dist int, ok bool) {
	maxLen := min(maxMatchLen, n-i)
	if maxLen < minMatchLen {
		return 0, 0, false
	}

	maxBack := min(i, searchDepth)

	for j := maxLen; j >= minMatchLen; j-- {
		for d := j; d <= maxBack; d++ {
			start := i - d
			if equalRuns(raw, start, i, j) {
				return j, d, true
			}
		}
	}
	return 0, 0, false
}

// equalRuns reports whether raw[a:a+length] == raw[b:b+length]. Used with
// a < b so that length > (b-a) reads self-referentially into raw[b:] —
// exactly the overlapping-copy case this codec's window supports.
func equalRuns(raw []byte, a, b, length int) bool {
	for k := 0; k < length; k++ {
		if raw[a+k] != raw[b+k] {
			return false
		}
	}
	return true
}

// classifyMatch picks the smallest length bucket that can represent dist,
// computing the extra-bits value the decoder will reconstruct dist from.
// Escalates to wider buckets if the computed extra falls out of range,
// returning errMatchInfeasible if no bucket can represent it (spec §4.5
// step 3, §7 EncoderMatchInfeasible) — the caller falls back to a literal.
// This case is reachable: a distance in [16, 16+length) is too large for
// bucket 0 and too small for every wider bucket's base+length floor.
func classifyMatch(dist, length int) (bucket, extra int, err error) {
	for b := 0; b < numLengthBuckets; b++ {
		if dist > maxDistance(b) {
			continue
		}
		e := dist - lengthBuckets[b].base - length
		if e < 0 || e >= (1<<lengthBuckets[b].extraBits) {
			continue
		}
		return b, e, nil
	}
	return 0, 0, errMatchInfeasible
}

// verifyMatch replays the candidate copy against the encoder's own window
// state to confirm it reproduces raw[i:i+length] (spec §4.5 step 3). Given
// findMatch's direct raw-to-raw comparison this should never fail, but the
// spec requires the check and it is cheap.
func verifyMatch(w *window, raw []byte, i, dist, length int) bool {
	src := w.head - dist
	for k := 0; k < length; k++ {
		if w.at(src+k) != raw[i+k] {
			return false
		}
	}
	return true
}

// emitLiteral encodes byte b as its literal symbol, updates the tree, and
// pushes b into the window.
func emitLiteral(t *tree, bw *bitWriter, w *window, b byte) {
	payload := 1 + int(b)
	t.encodeSymbol(bw, payload)
	t.update(payload)
	w.push(b)
}

// emitMatch encodes the match symbol for (bucket, length), updates the tree,
// writes the extra-bits distance field (LSB-first, does not touch the tree),
// and pushes the matched bytes into the window.
func emitMatch(t *tree, bw *bitWriter, w *window, bucket, length, extra int) {
	payload := firstMatchPayload + bucket*symbolsPerBucket + (length - minMatchLen)
	t.encodeSymbol(bw, payload)
	t.update(payload)

	bw.writeBits(extra, lengthBuckets[bucket].extraBits)

	// Recompute dist exactly as a decoder would (base+extra+length, which by
	// construction of extra above equals the real search distance) so the
	// window is populated from precisely the source position the decoder
	// will copy from, keeping both sides' history buffers in lockstep.
	dist := lengthBuckets[bucket].base + extra + length
	w.pushRun(w.head-dist, length)
}
