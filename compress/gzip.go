package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hallam/cram/internal/pool"
)

// GzipCodec handles gzip-compressed block payloads (block method 1).
type GzipCodec struct{}

var (
	_ Decompressor = GzipCodec{}
	_ Compressor   = GzipCodec{}
)

// Decompress inflates a gzip payload.
func (GzipCodec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return readAll(zr, sizeHint)
}

// Compress deflates data with the default gzip level.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	zw := gzip.NewWriter(buf)

	if _, err := zw.Write(data); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// readAll drains r into a buffer pre-sized by sizeHint.
func readAll(r io.Reader, sizeHint int) ([]byte, error) {
	if sizeHint < 0 {
		sizeHint = 0
	}

	out := bytes.NewBuffer(make([]byte, 0, sizeHint))

	if _, err := io.Copy(out, r); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
