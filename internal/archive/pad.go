// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

// PadTo4 rounds an entry's length up to the next multiple of 4, zero-filling
// the gap. This is the "four-byte alignment pass" spec §1 names as a
// later-revision feature of the surrounding archive format.
func PadTo4(data []byte) []byte {
	rem := len(data) % 4
	if rem == 0 {
		return data
	}
	pad := 4 - rem
	out := make([]byte, len(data)+pad)
	copy(out, data)
	return out
}

// PadOffset rounds an offset up to the next multiple of 4.
func PadOffset(offset uint32) uint32 {
	return (offset + 3) &^ 3
}
