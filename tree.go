// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

import "sort"

// Component C: the 629-leaf adaptive symbol tree (Vitter/FGK-style dynamic
// Huffman coder). No pointer-linked tree — per DESIGN.md, node state lives in
// parallel indexed arrays, as the teacher's `internal/prefix`-flavored
// corpus neighbor (dsnet-compress) and §9's own re-architecture notes
// recommend over the source's pointer-chasing scan.
//
// Node ids are 1-based, 1..numNodes. Internal nodes are 1..numLeaves-1; leaves
// are numLeaves..numNodes. Payload values (0=end-of-stream, 1..256=literal,
// 257..628=match) map to leaf id via leaf = payload + leafBase.
type tree struct {
	weight [numNodes + 1]uint16
	left   [numNodes + 1]int // 0 for leaves
	right  [numNodes + 1]int // 0 for leaves
	parent [numNodes + 1]int // 0 for the root

	posOf  [numNodes + 1]int // node id -> canonical order position (1..numNodes)
	nodeAt [numNodes + 1]int // canonical order position -> node id
}

// newTree builds the initial tree: a complete binary shape with every leaf
// at weight 1, internal weights as subtree leaf counts, and a canonical
// order satisfying the sibling property by construction (see DESIGN.md
// Open Question #2: sorted by (weight, id) rather than the source's
// "ascending id" gloss, which does not itself satisfy the invariant).
func newTree() *tree {
	t := &tree{}

	for i := 1; i < numLeaves; i++ {
		t.left[i] = 2 * i
		t.right[i] = 2*i + 1
		t.parent[2*i] = i
		t.parent[2*i+1] = i
	}

	for n := numLeaves; n <= numNodes; n++ {
		t.weight[n] = 1
	}
	for i := numLeaves - 1; i >= 1; i-- {
		t.weight[i] = t.weight[t.left[i]] + t.weight[t.right[i]]
	}

	t.rebuildOrder()
	return t
}

// rebuildOrder recomputes the canonical order from current weights, sorted
// by (weight, id) ascending. Used at construction and after every rescale.
func (t *tree) rebuildOrder() {
	ids := make([]int, numNodes)
	for i := range ids {
		ids[i] = i + 1
	}
	sort.Slice(ids, func(a, b int) bool {
		wa, wb := t.weight[ids[a]], t.weight[ids[b]]
		if wa != wb {
			return wa < wb
		}
		return ids[a] < ids[b]
	})
	for pos, id := range ids {
		t.posOf[id] = pos + 1
		t.nodeAt[pos+1] = id
	}
}

// decodeSymbol walks the tree from the root, consuming one MSB-first bit per
// level, and returns the payload value (0..numLeaves-1) of the leaf reached.
func (t *tree) decodeSymbol(r *bitReader) int {
	n := 1
	for n < numLeaves {
		if r.readBit() == 0 {
			n = t.left[n]
		} else {
			n = t.right[n]
		}
	}
	return n - leafBase
}

// encodeSymbol emits the bit path from the root to payload's leaf, MSB-first.
func (t *tree) encodeSymbol(w *bitWriter, payload int) {
	leaf := payload + leafBase

	var bits [numLeaves]int // decisions nearest the leaf first; path length < numLeaves
	n := leaf
	count := 0
	for n != 1 {
		p := t.parent[n]
		if t.left[p] == n {
			bits[count] = 0
		} else {
			bits[count] = 1
		}
		count++
		n = p
	}

	for i := count - 1; i >= 0; i-- {
		w.writeBit(bits[i])
	}
}

// update applies the post-symbol weight update (spec §4.3) for the leaf
// carrying the given payload, then rescales if the root weight has reached
// rescaleThreshold. Must run identically on encode and decode for a symbol
// to keep both sides' trees in lockstep (spec's "happens-before" ordering,
// §5).
func (t *tree) update(payload int) {
	leaf := payload + leafBase
	t.weight[leaf]++

	n := leaf
	for n != 1 {
		p := t.parent[n]
		h := t.highestWithWeight(t.weight[n], p, n)
		if h != n {
			t.swap(n, h)
		}
		t.weight[p]++
		n = p
	}

	if t.weight[1] == rescaleThreshold {
		t.rescale()
	}
}

// highestWithWeight finds the highest-positioned node carrying weight w,
// other than exclude (the node's own parent) and other than self, implementing
// spec §4.3's "find the highest-positioned node h in the canonical order with
// weight[h]==weight[n] and h != p".
//
// self's own weight has already been bumped to w by the caller, but self's
// slot in the canonical order (nodeAt/posOf) has not been moved yet — so the
// block of pre-existing nodes that legitimately hold weight w can be anywhere
// in the order, not necessarily adjacent to self's stale position. (A node is
// only guaranteed to sit at the top of its own weight class after this
// function's caller swaps it there; nodes that have never been incremented,
// e.g. most leaves after newTree, are not.) This walks the whole canonical
// order from the top down — valid because every position other than self's
// still reflects its true current weight — and stops as soon as it passes
// below w, since positions are weight-ascending everywhere except at self.
func (t *tree) highestWithWeight(w uint16, exclude, self int) int {
	for pos := numNodes; pos >= 1; pos-- {
		n := t.nodeAt[pos]
		if n == self || n == exclude {
			continue
		}
		if t.weight[n] == w {
			return n
		}
		if t.weight[n] < w {
			break
		}
	}
	return self
}

// swap exchanges nodes n and h's slots in the tree structure (which parent
// they hang from, and on which side) and their canonical-order positions.
// Each node keeps its own subtree (children, and therefore weight) — only
// its position changes, which is what the sibling-property maintenance
// requires.
func (t *tree) swap(n, h int) {
	pn, ph := t.parent[n], t.parent[h]

	if pn == ph {
		if t.left[pn] == n {
			t.left[pn], t.right[pn] = h, n
		} else {
			t.left[pn], t.right[pn] = n, h
		}
	} else {
		if t.left[pn] == n {
			t.left[pn] = h
		} else {
			t.right[pn] = h
		}
		if ph != 0 {
			if t.left[ph] == h {
				t.left[ph] = n
			} else {
				t.right[ph] = n
			}
		}
	}

	t.parent[n], t.parent[h] = ph, pn

	pa, pb := t.posOf[n], t.posOf[h]
	t.posOf[n], t.posOf[h] = pb, pa
	t.nodeAt[pa], t.nodeAt[pb] = h, n
}

// rescale halves every leaf weight (flooring, zero is legal per spec §9.4)
// and recomputes every internal node's weight as the sum of its children,
// then rebuilds the canonical order. See DESIGN.md Open Question #6:
// independently halving every stored weight (the literal source behavior)
// cannot in general preserve the weight[i]==weight[left]+weight[right]
// invariant the spec itself requires to hold after rescale (§8 property 1),
// so internal weights are recomputed rather than halved directly.
func (t *tree) rescale() {
	for n := numLeaves; n <= numNodes; n++ {
		t.weight[n] /= 2
	}
	for i := numLeaves - 1; i >= 1; i-- {
		t.weight[i] = t.weight[t.left[i]] + t.weight[t.right[i]]
	}
	t.rebuildOrder()
}
