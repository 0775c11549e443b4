package codec

import (
	"fmt"

	"github.com/hallam/cram/bitio"
)

// ByteArrayKind identifies the codec variant of a ByteArray encoding.
type ByteArrayKind uint8

const (
	// ByteArrayLength prefixes each run with an Integer-coded length and
	// decodes the values with a nested Byte encoding.
	ByteArrayLength ByteArrayKind = iota + 1
	// ByteArrayStop reads bytes from an external block up to a stop byte.
	ByteArrayStop
)

func (k ByteArrayKind) String() string {
	switch k {
	case ByteArrayLength:
		return "ByteArrayLength"
	case ByteArrayStop:
		return "ByteArrayStop"
	default:
		return "Unknown"
	}
}

// ByteArray is one immutable variable-length byte run encoding, used by the
// Names, InsertionBases, SoftClipBases, and stretch-feature data series and
// by all tag values.
type ByteArray struct {
	kind ByteArrayKind

	lenEncoding   *Integer // ByteArrayLength
	valueEncoding *Byte    // ByteArrayLength

	stopByte  byte  // ByteArrayStop
	contentID int32 // ByteArrayStop
}

// NewByteArrayLength creates a length-prefixed byte array encoding: each run
// decodes its length via lenEncoding, then that many bytes via valueEncoding.
func NewByteArrayLength(lenEncoding *Integer, valueEncoding *Byte) *ByteArray {
	return &ByteArray{kind: ByteArrayLength, lenEncoding: lenEncoding, valueEncoding: valueEncoding}
}

// NewByteArrayStop creates a stop-byte-delimited byte array encoding over
// the block with the given content id.
func NewByteArrayStop(stopByte byte, contentID int32) *ByteArray {
	return &ByteArray{kind: ByteArrayStop, stopByte: stopByte, contentID: contentID}
}

// Kind returns the codec variant.
func (e *ByteArray) Kind() ByteArrayKind {
	return e.kind
}

// Decode decodes one complete byte run.
func (e *ByteArray) Decode(core *bitio.Reader, external *ExternalDataReaders) ([]byte, error) {
	switch e.kind {
	case ByteArrayLength:
		n, err := e.lenEncoding.Decode(core, external)
		if err != nil {
			return nil, err
		}

		if n < 0 {
			return nil, fmt.Errorf("byte array length %d is negative", n)
		}

		return e.valueEncoding.DecodeTake(core, external, int(n))

	case ByteArrayStop:
		src, err := external.Get(e.contentID)
		if err != nil {
			return nil, err
		}

		return src.TakeUntil(e.stopByte)

	default:
		return nil, fmt.Errorf("decode byte array kind %d: %w", e.kind, ErrNotImplemented)
	}
}

// Encode writes one byte run using this encoding. Only the ByteArrayStop
// direction is implemented: it appends the run and the stop byte to its
// external stream.
func (e *ByteArray) Encode(core *bitio.Writer, external *ExternalDataWriters, value []byte) error {
	switch e.kind {
	case ByteArrayStop:
		dst, err := external.Get(e.contentID)
		if err != nil {
			return err
		}

		dst.MustWrite(value)

		return dst.WriteByte(e.stopByte)

	default:
		return fmt.Errorf("encode %s: %w", e.kind, ErrNotImplemented)
	}
}
