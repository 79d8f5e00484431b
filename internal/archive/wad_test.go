// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestArchive(t *testing.T) []byte {
	t.Helper()

	plain := []byte("uncompressed entry payload")
	compressibleSrc := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	entries := []Entry{
		{Name: "PLAIN", Compressed: false},
		{Name: "PACKED", Compressed: true},
	}
	payloads := map[string][]byte{
		"PLAIN":  plain,
		"PACKED": compressibleSrc,
	}

	buf, err := Build(entries, payloads, nil)
	require.NoError(t, err)
	return buf
}

func TestWAD_OpenExtractRoundTrip(t *testing.T) {
	raw := buildTestArchive(t)

	w, err := Open(raw)
	require.NoError(t, err)
	require.Len(t, w.Dir.Entries, 2)

	out, err := w.Extract(nil)
	require.NoError(t, err)
	require.Equal(t, []byte("uncompressed entry payload"), out["PLAIN"])
	require.Equal(t, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), out["PACKED"])
}

func TestWAD_BuildThenExtractIsIdentity(t *testing.T) {
	raw := buildTestArchive(t)
	w, err := Open(raw)
	require.NoError(t, err)

	first, err := w.Extract(nil)
	require.NoError(t, err)

	rebuilt, err := Build(w.Dir.Entries, first, nil)
	require.NoError(t, err)

	w2, err := Open(rebuilt)
	require.NoError(t, err)
	second, err := w2.Extract(nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestWAD_EntriesAreFourByteAligned(t *testing.T) {
	raw := buildTestArchive(t)
	w, err := Open(raw)
	require.NoError(t, err)

	for _, e := range w.Dir.Entries {
		require.Zero(t, e.Offset%4, "entry %q offset %d not 4-byte aligned", e.Name, e.Offset)
	}
}

func TestWAD_ProgressCallbackFiresPerEntry(t *testing.T) {
	raw := buildTestArchive(t)
	w, err := Open(raw)
	require.NoError(t, err)

	var calls int
	_, err = w.Extract(func(name string, n, total int) {
		calls++
		require.Equal(t, len(w.Dir.Entries), total)
	})
	require.NoError(t, err)
	require.Equal(t, len(w.Dir.Entries), calls)
}

func TestExtractEntry_OutOfBoundsIsError(t *testing.T) {
	_, err := ExtractEntry([]byte{1, 2, 3}, Entry{Name: "X", Offset: 0, StoredSize: 10, Size: 10})
	require.ErrorIs(t, err, ErrEntryOutOfBounds)
}

func TestRealign_ProducesParsableArchive(t *testing.T) {
	raw := buildTestArchive(t)
	w, err := Open(raw)
	require.NoError(t, err)

	payloads := make(map[string][]byte, len(w.Dir.Entries))
	for _, e := range w.Dir.Entries {
		p, err := RawPayload(w.Data, e)
		require.NoError(t, err)
		payloads[e.Name] = p
	}

	realigned, err := Realign(w.Dir.Entries, payloads)
	require.NoError(t, err)

	w2, err := Open(realigned)
	require.NoError(t, err)
	for _, e := range w2.Dir.Entries {
		require.Zero(t, e.Offset%4)
	}
}

func TestPadTo4_RoundsUpAndZeroFills(t *testing.T) {
	require.Equal(t, []byte{1, 2, 3, 0}, PadTo4([]byte{1, 2, 3}))
	require.Equal(t, []byte{1, 2, 3, 4}, PadTo4([]byte{1, 2, 3, 4}))
}

func TestPadOffset_RoundsUpToMultipleOfFour(t *testing.T) {
	require.Equal(t, uint32(0), PadOffset(0))
	require.Equal(t, uint32(4), PadOffset(1))
	require.Equal(t, uint32(8), PadOffset(5))
}
