// Package compress provides decompression for CRAM block payloads.
//
// Each block of a container declares one of the format's compression
// methods; this package maps the method to a codec that restores the raw
// payload before the entropy-codec layer consumes it. Decompression happens
// once per block when a slice's external streams are assembled; the decode
// engine itself only ever sees decompressed buffers.
//
// The rANS-family methods (rANS 4x8, rANS Nx16, adaptive arithmetic,
// fqzcomp, name tokeniser) are declared by the format but not implemented
// here; requesting them fails with ErrUnsupportedMethod rather than
// producing wrong bytes.
package compress

import (
	"errors"
	"fmt"

	"github.com/hallam/cram/container"
)

// ErrUnsupportedMethod is returned for declared-but-unsupported block
// compression methods.
var ErrUnsupportedMethod = errors.New("unsupported compression method")

// Decompressor restores the raw payload of one compressed block.
//
// Memory management:
//   - The returned slice is owned by the caller.
//   - The input slice is not modified.
type Decompressor interface {
	// Decompress decompresses data. sizeHint is the declared uncompressed
	// size and is used to pre-size the output buffer; implementations must
	// tolerate a zero hint.
	Decompress(data []byte, sizeHint int) ([]byte, error)
}

// Compressor compresses a block payload. Only a subset of methods implement
// the compress direction; it exists to keep the block codec contract
// symmetric where the format is round-trippable with pure Go.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// For returns the decompressor for a block compression method.
func For(method container.Method) (Decompressor, error) {
	switch method {
	case container.MethodRaw:
		return RawCodec{}, nil
	case container.MethodGzip:
		return GzipCodec{}, nil
	case container.MethodBzip2:
		return Bzip2Codec{}, nil
	case container.MethodLZMA:
		return LZMACodec{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", method, ErrUnsupportedMethod)
	}
}

// Decompress restores the payload of block according to its declared
// method.
func Decompress(block container.Block) ([]byte, error) {
	codec, err := For(block.Method)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(block.Data, block.UncompressedLen)
}
