// Package bitio provides bit-addressable cursors over in-memory byte
// buffers.
//
// CRAM's core data stream packs core-encoded data series (Huffman, Beta,
// Gamma codes) into a single bit stream shared by all series of a slice.
// Bits are consumed most-significant first within each byte, matching the
// CRAM format specification. The cursors never perform I/O: they operate
// over buffers that have already been decompressed by the caller.
package bitio

import "io"

// Reader reads bits from an in-memory buffer, most-significant bit first.
//
// A Reader advances monotonically; it cannot be rewound. Reading past the
// end of the buffer returns io.ErrUnexpectedEOF.
type Reader struct {
	data []byte
	off  int   // byte offset of the next unread byte
	cur  uint8 // bits of the current byte, shifted left as they are consumed
	rem  uint8 // number of unread bits in cur
}

// NewReader creates a bit reader over data. The reader borrows data; the
// caller must not mutate it while the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit and returns it as 0 or 1.
func (r *Reader) ReadBit() (uint8, error) {
	if r.rem == 0 {
		if r.off >= len(r.data) {
			return 0, io.ErrUnexpectedEOF
		}

		r.cur = r.data[r.off]
		r.off++
		r.rem = 8
	}

	bit := r.cur >> 7
	r.cur <<= 1
	r.rem--

	return bit, nil
}

// ReadBits reads n bits (n <= 32) and returns them as an unsigned integer
// with the first bit read in the most significant position.
func (r *Reader) ReadBits(n uint32) (uint32, error) {
	var value uint32

	for i := uint32(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		value = value<<1 | uint32(bit)
	}

	return value, nil
}
