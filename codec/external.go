package codec

import (
	"io"

	"github.com/hallam/cram/internal/pool"
)

// ExternalReader is a monotonic byte cursor over one decompressed external
// block. Take returns subslices of the backing buffer without copying, so
// decoded records borrow from the block for their lifetime.
type ExternalReader struct {
	data []byte
	off  int
}

// NewExternalReader creates a cursor over data. The cursor borrows data; the
// caller must not mutate it while the cursor is in use.
func NewExternalReader(data []byte) *ExternalReader {
	return &ExternalReader{data: data}
}

// ReadByte reads and consumes a single byte.
func (r *ExternalReader) ReadByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}

	b := r.data[r.off]
	r.off++

	return b, nil
}

// Take consumes n bytes and returns them as a subslice of the backing
// buffer.
func (r *ExternalReader) Take(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, io.ErrUnexpectedEOF
	}

	buf := r.data[r.off : r.off+n]
	r.off += n

	return buf, nil
}

// TakeUntil consumes bytes up to and including the first occurrence of stop
// and returns the bytes before it as a subslice of the backing buffer.
func (r *ExternalReader) TakeUntil(stop byte) ([]byte, error) {
	for i := r.off; i < len(r.data); i++ {
		if r.data[i] == stop {
			buf := r.data[r.off:i]
			r.off = i + 1

			return buf, nil
		}
	}

	return nil, io.ErrUnexpectedEOF
}

// Len returns the number of unread bytes.
func (r *ExternalReader) Len() int {
	return len(r.data) - r.off
}

// ExternalDataReaders maps block content ids to their byte cursors. It is
// populated once per slice from the decompressed external blocks and
// consumed monotonically; cursors are never rewound.
type ExternalDataReaders struct {
	readers map[int32]*ExternalReader
}

// NewExternalDataReaders creates an empty reader table.
func NewExternalDataReaders() *ExternalDataReaders {
	return &ExternalDataReaders{readers: make(map[int32]*ExternalReader)}
}

// Insert registers the cursor for contentID, replacing any previous one.
func (e *ExternalDataReaders) Insert(contentID int32, data []byte) {
	e.readers[contentID] = NewExternalReader(data)
}

// Get returns the cursor for contentID, or a MissingExternalBlockError if no
// block with that id was loaded.
func (e *ExternalDataReaders) Get(contentID int32) (*ExternalReader, error) {
	r, ok := e.readers[contentID]
	if !ok {
		return nil, MissingExternalBlockError{ContentID: contentID}
	}

	return r, nil
}

// ExternalDataWriters is the encode-side counterpart of ExternalDataReaders:
// a table of growable byte buffers keyed by block content id.
type ExternalDataWriters struct {
	writers map[int32]*pool.ByteBuffer
}

// NewExternalDataWriters creates an empty writer table.
func NewExternalDataWriters() *ExternalDataWriters {
	return &ExternalDataWriters{writers: make(map[int32]*pool.ByteBuffer)}
}

// Insert registers an empty pooled buffer for contentID.
func (e *ExternalDataWriters) Insert(contentID int32) {
	e.writers[contentID] = pool.GetBlockBuffer()
}

// Get returns the buffer for contentID, or a MissingExternalBlockError.
func (e *ExternalDataWriters) Get(contentID int32) (*pool.ByteBuffer, error) {
	w, ok := e.writers[contentID]
	if !ok {
		return nil, MissingExternalBlockError{ContentID: contentID}
	}

	return w, nil
}

// Bytes returns the bytes written so far for contentID.
func (e *ExternalDataWriters) Bytes(contentID int32) ([]byte, error) {
	w, err := e.Get(contentID)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// Release returns all buffers to the pool. The table must not be used
// afterwards, and slices returned by Bytes become invalid.
func (e *ExternalDataWriters) Release() {
	for id, w := range e.writers {
		pool.PutBlockBuffer(w)
		delete(e.writers, id)
	}
}
