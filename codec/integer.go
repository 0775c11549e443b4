package codec

import (
	"fmt"
	"sync"

	"github.com/hallam/cram/bitio"
)

// IntegerKind identifies the codec variant of an Integer encoding.
type IntegerKind uint8

const (
	// IntegerExternal reads ITF8 values from an external block.
	IntegerExternal IntegerKind = iota + 1
	// IntegerGolomb is a Golomb code (declared; decode not implemented).
	IntegerGolomb
	// IntegerHuffman is a canonical Huffman code over an int32 alphabet.
	IntegerHuffman
	// IntegerBeta is a fixed-width binary code with an offset.
	IntegerBeta
	// IntegerSubexp is a subexponential code (declared; decode not implemented).
	IntegerSubexp
	// IntegerGolombRice is a Golomb-Rice code (declared; decode not implemented).
	IntegerGolombRice
	// IntegerGamma is an Elias gamma code with an offset.
	IntegerGamma
)

func (k IntegerKind) String() string {
	switch k {
	case IntegerExternal:
		return "External"
	case IntegerGolomb:
		return "Golomb"
	case IntegerHuffman:
		return "Huffman"
	case IntegerBeta:
		return "Beta"
	case IntegerSubexp:
		return "Subexp"
	case IntegerGolombRice:
		return "GolombRice"
	case IntegerGamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}

// Integer is one immutable integer encoding: a codec kind plus its
// parameters. It is owned by the compression header for one container's
// lifetime and shared read-only across engines; lazy Huffman table
// construction is the only internal mutation and is synchronized.
type Integer struct {
	kind IntegerKind

	contentID int32 // External

	offset int32  // Beta, Gamma, Subexp, Golomb, GolombRice
	length uint32 // Beta
	k      int32  // Subexp
	m      int32  // Golomb
	log2M  int32  // GolombRice

	alphabet []int32  // Huffman
	bitLens  []uint32 // Huffman

	huffOnce sync.Once
	huff     *CanonicalDecoder[int32]
	huffErr  error
}

// NewExternalInteger creates an External integer encoding reading ITF8
// values from the block with the given content id.
func NewExternalInteger(contentID int32) *Integer {
	return &Integer{kind: IntegerExternal, contentID: contentID}
}

// NewHuffmanInteger creates a canonical Huffman integer encoding over the
// given alphabet and parallel code bit lengths. A singleton alphabet decodes
// to its only symbol without consuming core bits.
func NewHuffmanInteger(alphabet []int32, bitLens []uint32) *Integer {
	return &Integer{kind: IntegerHuffman, alphabet: alphabet, bitLens: bitLens}
}

// NewBetaInteger creates a Beta encoding reading length bits and subtracting
// offset.
func NewBetaInteger(offset int32, length uint32) *Integer {
	return &Integer{kind: IntegerBeta, offset: offset, length: length}
}

// NewGammaInteger creates an Elias gamma encoding with the given offset.
func NewGammaInteger(offset int32) *Integer {
	return &Integer{kind: IntegerGamma, offset: offset}
}

// NewSubexpInteger creates a subexponential encoding. The variant exists in
// the closed codec set but its decode path returns ErrNotImplemented.
func NewSubexpInteger(offset, k int32) *Integer {
	return &Integer{kind: IntegerSubexp, offset: offset, k: k}
}

// NewGolombInteger creates a Golomb encoding. The variant exists in the
// closed codec set but its decode path returns ErrNotImplemented.
func NewGolombInteger(offset, m int32) *Integer {
	return &Integer{kind: IntegerGolomb, offset: offset, m: m}
}

// NewGolombRiceInteger creates a Golomb-Rice encoding. The variant exists in
// the closed codec set but its decode path returns ErrNotImplemented.
func NewGolombRiceInteger(offset, log2M int32) *Integer {
	return &Integer{kind: IntegerGolombRice, offset: offset, log2M: log2M}
}

// Kind returns the codec variant.
func (e *Integer) Kind() IntegerKind {
	return e.kind
}

// Decode decodes one int32 from the core or external streams, depending on
// the codec kind.
func (e *Integer) Decode(core *bitio.Reader, external *ExternalDataReaders) (int32, error) {
	switch e.kind {
	case IntegerExternal:
		src, err := external.Get(e.contentID)
		if err != nil {
			return 0, err
		}

		return ReadITF8(src)

	case IntegerHuffman:
		if len(e.alphabet) == 1 {
			// Singleton alphabets carry no information; no bits are read.
			return e.alphabet[0], nil
		}

		decoder, err := e.huffmanDecoder()
		if err != nil {
			return 0, err
		}

		return decoder.Decode(core)

	case IntegerBeta:
		bits, err := core.ReadBits(e.length)
		if err != nil {
			return 0, err
		}

		return int32(bits) - e.offset, nil

	case IntegerGamma:
		// The value's leading one bit doubles as the unary length
		// terminator: n zero bits, a one bit, then n mantissa bits.
		var n uint32

		for {
			bit, err := core.ReadBit()
			if err != nil {
				return 0, err
			}

			if bit != 0 {
				break
			}

			n++
		}

		if n > maxCodeLength {
			return 0, fmt.Errorf("gamma: prefix length %d out of range", n)
		}

		m, err := core.ReadBits(n)
		if err != nil {
			return 0, err
		}

		return int32(uint32(1)<<n|m) - e.offset, nil

	default:
		return 0, fmt.Errorf("decode %s: %w", e.kind, ErrNotImplemented)
	}
}

// Encode writes value using this encoding. The encode direction is
// implemented for the kinds needed to keep the codec contract symmetric:
// External writes the ITF8 form to its external stream (and nothing to the
// core stream), Beta writes the offset value in its fixed bit width. All
// other kinds return ErrNotImplemented.
func (e *Integer) Encode(core *bitio.Writer, external *ExternalDataWriters, value int32) error {
	switch e.kind {
	case IntegerExternal:
		dst, err := external.Get(e.contentID)
		if err != nil {
			return err
		}

		return WriteITF8(dst, value)

	case IntegerBeta:
		core.WriteBits(uint64(uint32(value+e.offset)), e.length)

		return nil

	default:
		return fmt.Errorf("encode %s: %w", e.kind, ErrNotImplemented)
	}
}

func (e *Integer) huffmanDecoder() (*CanonicalDecoder[int32], error) {
	e.huffOnce.Do(func() {
		e.huff, e.huffErr = NewCanonicalDecoder(e.alphabet, e.bitLens)
	})

	return e.huff, e.huffErr
}
