// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

// Component D: the 21,903-byte circular history window shared by the
// decoder's output generation and the encoder's match search. Grounded on
// the ring-buffer cursor bookkeeping in the teacher's sliding-window
// dictionary, simplified to a single flat buffer (this codec's match
// positions are read directly off the bit-decoded distance, not found by a
// hash-chain search on the decode side).

type window struct {
	buf  [windowSize]byte
	head int // next write position, 0..windowSize-1
}

// push writes one byte at head and advances the cursor modulo windowSize.
func (w *window) push(b byte) {
	w.buf[w.head] = b
	w.head++
	if w.head == windowSize {
		w.head = 0
	}
}

// at returns the byte stored at the given window-relative position, wrapped
// modulo windowSize. pos may be negative or exceed windowSize; it is always
// reduced into range first.
func (w *window) at(pos int) byte {
	pos %= windowSize
	if pos < 0 {
		pos += windowSize
	}
	return w.buf[pos]
}

// copyRun copies length bytes starting at window position src (wrapped
// modulo windowSize) to out and pushes each byte into the window as it is
// produced. Because bytes are pushed as they're read, a run whose source
// catches up with head reproduces already-emitted bytes — required for
// overlapping (distance < length) matches, spec §4.2.
func (w *window) copyRun(out []byte, outPos int, src, length int) {
	src %= windowSize
	if src < 0 {
		src += windowSize
	}
	for i := 0; i < length; i++ {
		b := w.buf[src]
		out[outPos+i] = b
		w.push(b)
		src++
		if src == windowSize {
			src = 0
		}
	}
}

// pushRun re-pushes length bytes already present at window position src
// (wrapped modulo windowSize) without producing a separate output slice —
// used by the encoder, which already has the matched bytes in its input
// buffer and only needs the window's history to stay in sync with what a
// decoder would reconstruct.
func (w *window) pushRun(src, length int) {
	src %= windowSize
	if src < 0 {
		src += windowSize
	}
	for i := 0; i < length; i++ {
		w.push(w.buf[src])
		src++
		if src == windowSize {
			src = 0
		}
	}
}
