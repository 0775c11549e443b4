// Package codec implements the CRAM entropy and integer codecs.
//
// Every data series of a slice is compressed by one Encoding: an immutable
// (codec kind, parameters) pair declared once in the compression header and
// shared read-only by every record of the slice. The codec set is closed and
// fixed by the CRAM format, so each value class is a tagged union with an
// exhaustive kind switch rather than an open plugin interface:
//
//   - Integer: External, Golomb, Huffman, Beta, Subexp, GolombRice, Gamma
//   - Byte: External, Huffman
//   - ByteArray: ByteArrayLength, ByteArrayStop
//
// Core-encoded kinds (Huffman, Beta, Gamma) consume bits from the shared
// core stream through a bitio.Reader; external kinds consume bytes from the
// per-content-id streams in ExternalDataReaders. Codec kinds the format
// declares but this implementation does not yet decode (Golomb, GolombRice,
// Subexp) fail with ErrNotImplemented instead of producing a wrong value.
package codec

import (
	"errors"
	"strconv"
)

// ErrNotImplemented is returned when a declared codec kind has no decode or
// encode path in this implementation.
var ErrNotImplemented = errors.New("codec not implemented")

// MissingExternalBlockError is returned when an Encoding references an
// external block content id that was not loaded for the current slice.
type MissingExternalBlockError struct {
	ContentID int32
}

func (e MissingExternalBlockError) Error() string {
	return "missing external block: " + strconv.FormatInt(int64(e.ContentID), 10)
}
