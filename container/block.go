// Package container models the per-container decode context of a CRAM
// stream: the compression header (preservation map, data series encodings,
// tag encodings), the reference sequence context, and the external block
// descriptors a slice's records decode against.
//
// Everything in this package is read-only once constructed. A single
// CompressionHeader is safely shared by engines decoding different slices of
// the same container concurrently.
package container

import "github.com/hallam/cram/record"

// Method identifies the compression method of a block payload. The ids are
// fixed by the CRAM format.
type Method uint8

const (
	// MethodRaw is an uncompressed payload.
	MethodRaw Method = 0
	// MethodGzip is a gzip-compressed payload.
	MethodGzip Method = 1
	// MethodBzip2 is a bzip2-compressed payload.
	MethodBzip2 Method = 2
	// MethodLZMA is an LZMA-compressed payload.
	MethodLZMA Method = 3
	// MethodRans4x8 is an order-0/1 rANS 4x8 payload.
	MethodRans4x8 Method = 4
	// MethodRansNx16 is an rANS Nx16 payload.
	MethodRansNx16 Method = 5
	// MethodAdaptiveArith is an adaptive arithmetic coded payload.
	MethodAdaptiveArith Method = 6
	// MethodFqzcomp is an fqzcomp quality payload.
	MethodFqzcomp Method = 7
	// MethodNameTokeniser is a name tokeniser payload.
	MethodNameTokeniser Method = 8
)

func (m Method) String() string {
	switch m {
	case MethodRaw:
		return "Raw"
	case MethodGzip:
		return "Gzip"
	case MethodBzip2:
		return "Bzip2"
	case MethodLZMA:
		return "LZMA"
	case MethodRans4x8:
		return "Rans4x8"
	case MethodRansNx16:
		return "RansNx16"
	case MethodAdaptiveArith:
		return "AdaptiveArith"
	case MethodFqzcomp:
		return "Fqzcomp"
	case MethodNameTokeniser:
		return "NameTokeniser"
	default:
		return "Unknown"
	}
}

// Block is one external data block of a slice: the compressed payload for a
// single content id, as extracted from the container by the framing layer.
type Block struct {
	// ContentID keys the block in the external stream table.
	ContentID int32
	// Method is the compression method of Data.
	Method Method
	// UncompressedLen is the declared size of the decompressed payload.
	UncompressedLen int
	// Data is the (possibly compressed) payload.
	Data []byte
}

// ContentID derives the external block content id for a tag key: the two
// tag characters and the type character packed big-endian into the low three
// bytes. Each distinct (tag, type) pair owns its own external stream.
func ContentID(key record.TagKey) int32 {
	return int32(key.Tag[0])<<16 | int32(key.Tag[1])<<8 | int32(key.Type)
}
