package compress

// RawCodec passes payloads through untouched, for blocks stored without
// compression.
//
// Note: both directions return the input slice as-is, without copying, so
// the output shares the input's backing memory.
type RawCodec struct{}

var (
	_ Decompressor = RawCodec{}
	_ Compressor   = RawCodec{}
)

// Decompress returns data unchanged.
func (RawCodec) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}

// Compress returns data unchanged.
func (RawCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}
