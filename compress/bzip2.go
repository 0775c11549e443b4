package compress

import (
	"bytes"
	"compress/bzip2"
)

// Bzip2Codec handles bzip2-compressed block payloads (block method 2).
// The format only requires the decode direction, matching the standard
// library's decompress-only bzip2 support.
type Bzip2Codec struct{}

var _ Decompressor = Bzip2Codec{}

// Decompress inflates a bzip2 payload.
func (Bzip2Codec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	return readAll(bzip2.NewReader(bytes.NewReader(data)), sizeHint)
}
