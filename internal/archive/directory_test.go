// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectory_MarshalParseRoundTrip(t *testing.T) {
	dir := &Directory{Entries: []Entry{
		{Name: "MAP01", Compressed: true, Offset: 0, StoredSize: 96, Size: 128},
		{Name: "SOUND", Compressed: false, Offset: 132, StoredSize: 64, Size: 64},
	}}

	buf, err := dir.Marshal()
	require.NoError(t, err)

	got, err := ParseDirectory(buf)
	require.NoError(t, err)
	require.Equal(t, dir.Entries, got.Entries)
}

func TestParseDirectory_TruncatedHeader(t *testing.T) {
	_, err := ParseDirectory([]byte{0, 0})
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestParseDirectory_TruncatedEntryTable(t *testing.T) {
	buf := make([]byte, headerSize+entrySize-1)
	buf[0] = 1
	_, err := ParseDirectory(buf)
	require.ErrorIs(t, err, ErrTruncatedDirectory)
}

func TestEncodeName_TooLongIsError(t *testing.T) {
	_, err := encodeName("NAMETOOLONGFORFIELD", false)
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestDecodeName_HighBitMarksCompressed(t *testing.T) {
	name, compressed := decodeName([]byte{'M' | compressBit, 'A', 'P', 0, 0, 0, 0, 0})
	require.True(t, compressed)
	require.Equal(t, "MAP", name)
}

func TestDecodeName_NoMarkerUncompressed(t *testing.T) {
	name, compressed := decodeName([]byte{'M', 'A', 'P', 0, 0, 0, 0, 0})
	require.False(t, compressed)
	require.Equal(t, "MAP", name)
}
