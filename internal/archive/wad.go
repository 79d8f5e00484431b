// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

import "fmt"

// WAD is an archive loaded fully into memory: its parsed directory plus the
// raw bytes following the directory table.
type WAD struct {
	Dir  *Directory
	Data []byte
}

// Open parses raw as a complete WAD archive.
func Open(raw []byte) (*WAD, error) {
	dir, err := ParseDirectory(raw)
	if err != nil {
		return nil, err
	}
	dataStart := headerSize + len(dir.Entries)*entrySize
	return &WAD{Dir: dir, Data: raw[dataStart:]}, nil
}

// Extract decompresses every entry, calling report after each one (report
// may be nil).
func (w *WAD) Extract(report func(name string, n, total int)) (map[string][]byte, error) {
	out := make(map[string][]byte, len(w.Dir.Entries))
	for i, e := range w.Dir.Entries {
		payload, err := ExtractEntry(w.Data, e)
		if err != nil {
			return nil, fmt.Errorf("archive: extracting %q: %w", e.Name, err)
		}
		out[e.Name] = payload
		if report != nil {
			report(e.Name, i+1, len(w.Dir.Entries))
		}
	}
	return out, nil
}

// Build serializes a full WAD (directory + data section) from entry
// payloads keyed by name, in the order given by order, padding every
// entry's on-disk length to a four-byte boundary (spec §1's "four-byte
// alignment pass").
func Build(order []Entry, payloads map[string][]byte, report func(name string, n, total int)) ([]byte, error) {
	var dataSection []byte
	built := make([]Entry, len(order))

	cursor := uint32(0)
	for i, e := range order {
		raw, ok := payloads[e.Name]
		if !ok {
			return nil, fmt.Errorf("archive: missing payload for entry %q", e.Name)
		}

		packed, ne, err := BuildEntry(raw, e)
		if err != nil {
			return nil, fmt.Errorf("archive: building %q: %w", e.Name, err)
		}
		ne.Offset = cursor

		padded := PadTo4(packed)
		dataSection = append(dataSection, padded...)
		cursor += uint32(len(padded))

		built[i] = ne
		if report != nil {
			report(e.Name, i+1, len(order))
		}
	}

	dir := &Directory{Entries: built}
	header, err := dir.Marshal()
	if err != nil {
		return nil, err
	}
	return append(header, dataSection...), nil
}

// RawPayload returns an entry's on-disk bytes verbatim (compressed or not,
// whichever the directory says), performing no codec work.
func RawPayload(data []byte, e Entry) ([]byte, error) {
	return sliceEntry(data, e)
}

// Realign re-lays out entries whose on-disk payload bytes are already known
// (keyed by name) onto four-byte-aligned offsets, without touching
// compression state — this is the "four-byte alignment pass" (spec §1) run
// over an archive whose entries need no recompression, only relocation.
func Realign(entries []Entry, rawPayloads map[string][]byte) ([]byte, error) {
	built := make([]Entry, len(entries))
	var dataSection []byte
	cursor := uint32(0)

	for i, e := range entries {
		raw, ok := rawPayloads[e.Name]
		if !ok {
			return nil, fmt.Errorf("archive: missing payload for entry %q", e.Name)
		}
		e.Offset = cursor

		padded := PadTo4(raw)
		dataSection = append(dataSection, padded...)
		cursor += uint32(len(padded))
		built[i] = e
	}

	dir := &Directory{Entries: built}
	header, err := dir.Marshal()
	if err != nil {
		return nil, err
	}
	return append(header, dataSection...), nil
}
