package bitio

import "github.com/hallam/cram/internal/pool"

// Writer accumulates bits most-significant first and flushes them to a byte
// buffer. It is the encode-side counterpart of Reader and backs the core
// stream of the symmetric encode paths.
type Writer struct {
	buf *pool.ByteBuffer
	cur uint8 // partially filled byte
	n   uint8 // number of valid bits in cur
}

// NewWriter creates a bit writer backed by a pooled byte buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetBlockBuffer()}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit uint8) {
	w.cur = w.cur<<1 | (bit & 1)
	w.n++

	if w.n == 8 {
		w.buf.MustWrite([]byte{w.cur})
		w.cur = 0
		w.n = 0
	}
}

// WriteBits appends the low n bits of value, most significant first.
func (w *Writer) WriteBits(value uint64, n uint32) {
	for i := int(n) - 1; i >= 0; i-- {
		w.WriteBit(uint8(value >> uint(i) & 1))
	}
}

// Flush zero-pads the current partial byte, if any, so that all written bits
// are represented in Bytes.
func (w *Writer) Flush() {
	if w.n == 0 {
		return
	}

	w.cur <<= 8 - w.n
	w.buf.MustWrite([]byte{w.cur})
	w.cur = 0
	w.n = 0
}

// Bytes returns the bytes written so far. Flush must be called first if a
// partial byte is pending.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the underlying buffer to the pool. The writer must not be
// used afterwards, and slices returned by Bytes become invalid.
func (w *Writer) Release() {
	pool.PutBlockBuffer(w.buf)
	w.buf = nil
}
