// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package archive

import (
	"fmt"

	"github.com/thekovic/wadutil64"
	"github.com/thekovic/wadutil64/internal/legacy"
)

// ExtractEntry returns the decompressed payload for e, reading its bytes
// from data at e.Offset. Uncompressed entries are returned as a copy of the
// raw slice; compressed entries are routed through the codec legacy.Select
// names.
func ExtractEntry(data []byte, e Entry) ([]byte, error) {
	raw, err := sliceEntry(data, e)
	if err != nil {
		return nil, err
	}
	if !e.Compressed {
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil
	}

	codec, err := legacy.Select(e.Name, defaultCodec{})
	if err != nil {
		return nil, fmt.Errorf("archive: entry %q: %w", e.Name, err)
	}
	out, err := codec.Decode(raw, int(e.Size))
	if err != nil {
		return nil, fmt.Errorf("archive: decoding entry %q: %w", e.Name, err)
	}
	return out, nil
}

// BuildEntry compresses raw for storage as e (updating e.Size to the
// decompressed length) when e.Compressed is set, or returns raw unchanged
// otherwise.
func BuildEntry(raw []byte, e Entry) ([]byte, Entry, error) {
	e.Size = uint32(len(raw))
	if !e.Compressed {
		e.StoredSize = e.Size
		return raw, e, nil
	}

	codec, err := legacy.Select(e.Name, defaultCodec{})
	if err != nil {
		return nil, e, fmt.Errorf("archive: entry %q: %w", e.Name, err)
	}
	out := codec.Encode(raw)
	e.StoredSize = uint32(len(out))
	return out, e, nil
}

func sliceEntry(data []byte, e Entry) ([]byte, error) {
	start := int(e.Offset)
	end := start + int(e.StoredSize)
	if start < 0 || end < start || end > len(data) {
		return nil, fmt.Errorf("%w: entry %q at [%d:%d], archive is %d bytes",
			ErrEntryOutOfBounds, e.Name, start, end, len(data))
	}
	return data[start:end], nil
}

// defaultCodec adapts the core wadutil64 codec to legacy.Codec so it can be
// registered as the non-legacy path in legacy.Select.
type defaultCodec struct{}

func (defaultCodec) Decode(compressed []byte, outLen int) ([]byte, error) {
	return wadutil64.Decode(compressed, outLen)
}

func (defaultCodec) Encode(raw []byte) []byte {
	return wadutil64.Encode(raw)
}
