// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

// Package archive reads and writes the WAD archive format surrounding the
// codec: a name table, an offset/size directory, and per-entry compression
// detection via a high-bit marker on the entry name (spec §6 "Collaborator
// contract").
package archive

import (
	"encoding/binary"
	"fmt"
)

const (
	nameSize    = 8
	entrySize   = nameSize + 4 + 4 + 4 // name, offset, stored size, decompressed size
	headerSize  = 4                    // entry count, little-endian uint32
	compressBit = 0x80
)

// Entry describes one lump in the directory: its name (with the high-bit
// marker already stripped), its offset into the archive's data section, the
// number of bytes it occupies on disk (StoredSize — equal to Size for an
// uncompressed entry, the compressed length otherwise, since the bitstream
// itself carries no length prefix, §6), and its decompressed size (used as
// Decode's outLen, §6).
type Entry struct {
	Name       string
	Compressed bool
	Offset     uint32
	StoredSize uint32
	Size       uint32
}

// Directory is the parsed lump table of a WAD archive.
type Directory struct {
	Entries []Entry
}

// ParseDirectory reads the entry count and fixed-width entry table from the
// front of buf. It does not read entry payload data.
func ParseDirectory(buf []byte) (*Directory, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: have %d bytes", ErrTruncatedHeader, len(buf))
	}

	count := int(binary.LittleEndian.Uint32(buf[:headerSize]))
	want := headerSize + count*entrySize
	if len(buf) < want {
		return nil, fmt.Errorf("%w: want %d bytes have %d", ErrTruncatedDirectory, want, len(buf))
	}

	d := &Directory{Entries: make([]Entry, count)}
	pos := headerSize
	for i := 0; i < count; i++ {
		raw := buf[pos : pos+entrySize]
		name, compressed := decodeName(raw[:nameSize])
		d.Entries[i] = Entry{
			Name:       name,
			Compressed: compressed,
			Offset:     binary.LittleEndian.Uint32(raw[nameSize : nameSize+4]),
			StoredSize: binary.LittleEndian.Uint32(raw[nameSize+4 : nameSize+8]),
			Size:       binary.LittleEndian.Uint32(raw[nameSize+8 : nameSize+12]),
		}
		pos += entrySize
	}
	return d, nil
}

// decodeName reports the stored name with its compression marker stripped,
// and whether the marker (the high bit of the name's first byte) was set.
func decodeName(raw []byte) (name string, compressed bool) {
	compressed = raw[0]&compressBit != 0
	first := raw[0] &^ compressBit

	buf := make([]byte, nameSize)
	copy(buf, raw)
	buf[0] = first

	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	return string(buf[:end]), compressed
}

// encodeName is decodeName's inverse: it writes name left-justified and
// zero-padded into an 8-byte field, setting the high bit of the first byte
// when compressed is true.
func encodeName(name string, compressed bool) ([nameSize]byte, error) {
	var out [nameSize]byte
	if len(name) == 0 || len(name) > nameSize {
		return out, fmt.Errorf("%w: %q", ErrNameTooLong, name)
	}
	copy(out[:], name)
	if compressed {
		out[0] |= compressBit
	}
	return out, nil
}

// Marshal serializes the directory header and entry table (not entry
// payload data) in the on-disk layout ParseDirectory reads.
func (d *Directory) Marshal() ([]byte, error) {
	out := make([]byte, headerSize+len(d.Entries)*entrySize)
	binary.LittleEndian.PutUint32(out[:headerSize], uint32(len(d.Entries)))

	pos := headerSize
	for _, e := range d.Entries {
		nameField, err := encodeName(e.Name, e.Compressed)
		if err != nil {
			return nil, err
		}
		copy(out[pos:pos+nameSize], nameField[:])
		binary.LittleEndian.PutUint32(out[pos+nameSize:pos+nameSize+4], e.Offset)
		binary.LittleEndian.PutUint32(out[pos+nameSize+4:pos+nameSize+8], e.StoredSize)
		binary.LittleEndian.PutUint32(out[pos+nameSize+8:pos+nameSize+12], e.Size)
		pos += entrySize
	}
	return out, nil
}
