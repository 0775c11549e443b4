package codec

import (
	"fmt"
	"sort"

	"github.com/hallam/cram/bitio"
)

// Symbol constrains the alphabets a canonical Huffman code can be built
// over: 32-bit integers for the Integer codec, bytes for the Byte codec.
type Symbol interface {
	~int32 | ~uint8
}

// maxCodeLength bounds canonical code lengths so codes fit a uint32 during
// both construction and decode.
const maxCodeLength = 31

// CanonicalDecoder decodes symbols of a canonical Huffman code. The code is
// fully determined by its (symbol, bit length) pairs: codes are assigned in
// order of ascending length, then ascending symbol, each code being the
// previous code plus one, left-shifted on every length increase.
//
// The decoder is built once per Encoding and is safe for sequential reuse;
// Decode consumes bits MSB-first from the core stream until a complete code
// matches.
type CanonicalDecoder[S Symbol] struct {
	symbols []S // canonically ordered

	// Per code length l (1..maxLen): the first canonical code of length l,
	// how many codes have that length, and the index of the first of them in
	// symbols.
	firstCode  []uint32
	counts     []int
	firstIndex []int

	maxLen uint32
}

// NewCanonicalDecoder builds the decode table for the canonical code over
// (alphabet, bitLens). The slices are parallel and must be non-empty and of
// equal length. Zero-length codes are rejected for multi-symbol alphabets,
// as are over-subscribed or incomplete-byte-ambiguous length profiles;
// construction fails rather than guessing at an ambiguous table.
func NewCanonicalDecoder[S Symbol](alphabet []S, bitLens []uint32) (*CanonicalDecoder[S], error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("huffman: empty alphabet")
	}

	if len(alphabet) != len(bitLens) {
		return nil, fmt.Errorf("huffman: alphabet length %d != bit length count %d", len(alphabet), len(bitLens))
	}

	type entry struct {
		sym S
		len uint32
	}

	entries := make([]entry, len(alphabet))
	for i, sym := range alphabet {
		if bitLens[i] == 0 {
			return nil, fmt.Errorf("huffman: zero-length code for symbol %v in multi-symbol alphabet", sym)
		}

		if bitLens[i] > maxCodeLength {
			return nil, fmt.Errorf("huffman: code length %d exceeds maximum %d", bitLens[i], maxCodeLength)
		}

		entries[i] = entry{sym: sym, len: bitLens[i]}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].len != entries[j].len {
			return entries[i].len < entries[j].len
		}

		return entries[i].sym < entries[j].sym
	})

	maxLen := entries[len(entries)-1].len

	d := &CanonicalDecoder[S]{
		symbols:    make([]S, len(entries)),
		firstCode:  make([]uint32, maxLen+1),
		counts:     make([]int, maxLen+1),
		firstIndex: make([]int, maxLen+1),
		maxLen:     maxLen,
	}

	var (
		code    uint32
		prevLen uint32
	)

	for i, e := range entries {
		if i > 0 {
			if e.sym == entries[i-1].sym && e.len == entries[i-1].len {
				return nil, fmt.Errorf("huffman: duplicate code for symbol %v", e.sym)
			}

			code++
		}

		code <<= e.len - prevLen

		// The code space at this length is exhausted once the code no
		// longer fits in its own bit count.
		if code>>e.len != 0 {
			return nil, fmt.Errorf("huffman: over-subscribed code space at length %d", e.len)
		}

		if d.counts[e.len] == 0 {
			d.firstCode[e.len] = code
			d.firstIndex[e.len] = i
		}

		d.counts[e.len]++
		d.symbols[i] = e.sym
		prevLen = e.len
	}

	return d, nil
}

// Decode reads bits one at a time until a complete canonical code matches
// and returns its symbol.
func (d *CanonicalDecoder[S]) Decode(r *bitio.Reader) (S, error) {
	var (
		zero S
		code uint32
	)

	for length := uint32(1); length <= d.maxLen; length++ {
		bit, err := r.ReadBit()
		if err != nil {
			return zero, err
		}

		code = code<<1 | uint32(bit)

		if n := d.counts[length]; n > 0 {
			if offset := code - d.firstCode[length]; code >= d.firstCode[length] && offset < uint32(n) {
				return d.symbols[d.firstIndex[length]+int(offset)], nil
			}
		}
	}

	return zero, fmt.Errorf("huffman: invalid code 0x%x", code)
}
