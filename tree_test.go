// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package wadutil64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants asserts spec §8 properties 1 and 2 against the current
// tree state.
func checkInvariants(t *testing.T, tr *tree) {
	t.Helper()

	for i := 1; i < numLeaves; i++ {
		require.Equalf(t, tr.weight[i], tr.weight[tr.left[i]]+tr.weight[tr.right[i]],
			"node %d: weight != left+right", i)
	}

	for pos := 1; pos < numNodes; pos++ {
		a, b := tr.nodeAt[pos], tr.nodeAt[pos+1]
		require.LessOrEqualf(t, tr.weight[a], tr.weight[b],
			"sibling property violated at positions %d,%d (nodes %d,%d)", pos, pos+1, a, b)
	}
}

func TestTree_InitialInvariants(t *testing.T) {
	tr := newTree()
	checkInvariants(t, tr)
	require.Equal(t, uint16(numLeaves), tr.weight[1], "root weight should equal total leaf count")
}

func TestTree_InvariantsHoldAfterManyUpdates(t *testing.T) {
	tr := newTree()

	rng := newXorshift32(42)
	for i := 0; i < 5000; i++ {
		payload := int(rng.next() % numLeaves)
		tr.update(payload)
		checkInvariants(t, tr)
		require.Lessf(t, tr.weight[1], uint16(rescaleThreshold), "root weight must stay strictly below rescale threshold")
	}
}

func TestTree_RescaleFiresAtThreshold(t *testing.T) {
	tr := newTree()

	rescaled := false
	for i := 0; i < rescaleThreshold*2; i++ {
		before := tr.weight[1]
		tr.update(0)
		if tr.weight[1] < before {
			rescaled = true
		}
		checkInvariants(t, tr)
		require.Less(t, tr.weight[1], uint16(rescaleThreshold))
	}
	require.True(t, rescaled, "expected at least one rescale over many updates")
}

func TestTree_EncodeDecodeSingleSymbolRoundTrips(t *testing.T) {
	for payload := 0; payload < numLeaves; payload++ {
		enc := newTree()
		bw := newBitWriter()
		enc.encodeSymbol(bw, payload)
		buf := bw.flush()

		dec := newTree()
		br := newBitReader(buf)
		got := dec.decodeSymbol(br)
		require.Equalf(t, payload, got, "round trip failed for payload %d", payload)
	}
}

func TestTree_PrefixPropertyNoCodeIsPrefixOfAnother(t *testing.T) {
	tr := newTree()

	paths := make(map[int]string, numLeaves)
	var walk func(n int, path string)
	walk = func(n int, path string) {
		if n >= numLeaves {
			paths[n] = path
			return
		}
		walk(tr.left[n], path+"0")
		walk(tr.right[n], path+"1")
	}
	walk(1, "")

	require.Len(t, paths, numLeaves)
	for na, pa := range paths {
		for nb, pb := range paths {
			if na == nb {
				continue
			}
			require.Falsef(t, len(pa) < len(pb) && pb[:len(pa)] == pa,
				"code for leaf %d (%q) is a prefix of leaf %d (%q)", na, pa, nb, pb)
		}
	}
}
