// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

/*
Package wadutil64 implements the adaptive-tree byte codec used to compress
and decompress individual entries of the N64 port's WAD archive.

The codec is a Vitter-style dynamic Huffman coder over a 629-symbol alphabet
(256 literal bytes, 372 length-bucketed match symbols, one end-of-stream
symbol), coupled with a 21,903-byte circular history window for
back-references. There is no header and no length prefix; the caller
supplies the expected decompressed size.

# Decode

	out, err := wadutil64.Decode(compressed, expectedLen)

Decode fails with ErrOutputOverflow if more than expectedLen bytes would be
produced, or ErrInputExhausted if the input ends before the end-of-stream
symbol is reached.

# Encode

	out := wadutil64.Encode(raw)

Encode cannot fail on well-formed input; the result may be larger than raw
for incompressible input.

Both directions share the same adaptive tree update algorithm, so a decoder
fed the output of Encode reconstructs exactly the tree state the encoder
held when it finished.
*/
package wadutil64
