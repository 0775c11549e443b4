package compress

import (
	"bytes"

	"github.com/ulikunitz/xz/lzma"

	"github.com/hallam/cram/internal/pool"
)

// LZMACodec handles LZMA-compressed block payloads (block method 3). CRAM
// stores these in the legacy .lzma container format, not xz.
type LZMACodec struct{}

var (
	_ Decompressor = LZMACodec{}
	_ Compressor   = LZMACodec{}
)

// Decompress inflates an LZMA payload.
func (LZMACodec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	zr, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return readAll(zr, sizeHint)
}

// Compress deflates data into the .lzma container format.
func (LZMACodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	zw, err := lzma.NewWriter(buf)
	if err != nil {
		return nil, err
	}

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
