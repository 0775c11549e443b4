package codec

import (
	"fmt"
	"sync"

	"github.com/hallam/cram/bitio"
)

// ByteKind identifies the codec variant of a Byte encoding.
type ByteKind uint8

const (
	// ByteExternal reads raw bytes from an external block.
	ByteExternal ByteKind = iota + 1
	// ByteHuffman is a canonical Huffman code over a byte alphabet.
	ByteHuffman
)

func (k ByteKind) String() string {
	switch k {
	case ByteExternal:
		return "External"
	case ByteHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}

// Byte is one immutable single-byte encoding, used by the Bases,
// QualityScores, BaseSubstitutionCodes, and FeatureCodes data series.
type Byte struct {
	kind ByteKind

	contentID int32 // External

	alphabet []uint8  // Huffman
	bitLens  []uint32 // Huffman

	huffOnce sync.Once
	huff     *CanonicalDecoder[uint8]
	huffErr  error
}

// NewExternalByte creates an External byte encoding over the block with the
// given content id.
func NewExternalByte(contentID int32) *Byte {
	return &Byte{kind: ByteExternal, contentID: contentID}
}

// NewHuffmanByte creates a canonical Huffman byte encoding over the given
// alphabet and parallel code bit lengths.
func NewHuffmanByte(alphabet []uint8, bitLens []uint32) *Byte {
	return &Byte{kind: ByteHuffman, alphabet: alphabet, bitLens: bitLens}
}

// Kind returns the codec variant.
func (e *Byte) Kind() ByteKind {
	return e.kind
}

// Decode decodes one byte.
func (e *Byte) Decode(core *bitio.Reader, external *ExternalDataReaders) (byte, error) {
	switch e.kind {
	case ByteExternal:
		src, err := external.Get(e.contentID)
		if err != nil {
			return 0, err
		}

		return src.ReadByte()

	case ByteHuffman:
		if len(e.alphabet) == 1 {
			return e.alphabet[0], nil
		}

		decoder, err := e.huffmanDecoder()
		if err != nil {
			return 0, err
		}

		return decoder.Decode(core)

	default:
		return 0, fmt.Errorf("decode byte kind %d: %w", e.kind, ErrNotImplemented)
	}
}

// DecodeTake decodes a run of n bytes. External encodings return a zero-copy
// subslice of the block buffer; Huffman encodings decode n symbols into a
// fresh buffer.
func (e *Byte) DecodeTake(core *bitio.Reader, external *ExternalDataReaders, n int) ([]byte, error) {
	switch e.kind {
	case ByteExternal:
		src, err := external.Get(e.contentID)
		if err != nil {
			return nil, err
		}

		return src.Take(n)

	case ByteHuffman:
		buf := make([]byte, n)
		for i := range buf {
			b, err := e.Decode(core, external)
			if err != nil {
				return nil, err
			}

			buf[i] = b
		}

		return buf, nil

	default:
		return nil, fmt.Errorf("decode byte kind %d: %w", e.kind, ErrNotImplemented)
	}
}

// Encode writes one byte using this encoding. Only the External direction is
// implemented; it appends the raw byte to its external stream.
func (e *Byte) Encode(core *bitio.Writer, external *ExternalDataWriters, value byte) error {
	switch e.kind {
	case ByteExternal:
		dst, err := external.Get(e.contentID)
		if err != nil {
			return err
		}

		return dst.WriteByte(value)

	default:
		return fmt.Errorf("encode %s: %w", e.kind, ErrNotImplemented)
	}
}

func (e *Byte) huffmanDecoder() (*CanonicalDecoder[uint8], error) {
	e.huffOnce.Do(func() {
		e.huff, e.huffErr = NewCanonicalDecoder(e.alphabet, e.bitLens)
	})

	return e.huff, e.huffErr
}
