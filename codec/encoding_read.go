package codec

import "fmt"

// Compression-header codec ids, fixed by the CRAM format.
const (
	codecIDNull          int32 = 0
	codecIDExternal      int32 = 1
	codecIDGolomb        int32 = 2
	codecIDHuffman       int32 = 3
	codecIDByteArrayLen  int32 = 4
	codecIDByteArrayStop int32 = 5
	codecIDBeta          int32 = 6
	codecIDSubexp        int32 = 7
	codecIDGolombRice    int32 = 8
	codecIDGamma         int32 = 9
)

// ReadIntegerEncoding parses one integer encoding descriptor from a
// compression-header byte stream: an ITF8 codec id followed by an
// ITF8-length-framed parameter list.
func ReadIntegerEncoding(src *ExternalReader) (*Integer, error) {
	codecID, params, err := readEncodingFrame(src)
	if err != nil {
		return nil, err
	}

	switch codecID {
	case codecIDExternal:
		contentID, err := ReadITF8(params)
		if err != nil {
			return nil, err
		}

		return NewExternalInteger(contentID), nil

	case codecIDHuffman:
		alphabet, err := readITF8Array(params)
		if err != nil {
			return nil, err
		}

		bitLens, err := readBitLenArray(params)
		if err != nil {
			return nil, err
		}

		return NewHuffmanInteger(alphabet, bitLens), nil

	case codecIDBeta:
		offset, length, err := readITF8Pair(params)
		if err != nil {
			return nil, err
		}

		if length < 0 || length > maxCodeLength {
			return nil, fmt.Errorf("beta: bit length %d out of range", length)
		}

		return NewBetaInteger(offset, uint32(length)), nil

	case codecIDGamma:
		offset, err := ReadITF8(params)
		if err != nil {
			return nil, err
		}

		return NewGammaInteger(offset), nil

	case codecIDSubexp:
		offset, k, err := readITF8Pair(params)
		if err != nil {
			return nil, err
		}

		return NewSubexpInteger(offset, k), nil

	case codecIDGolomb:
		offset, m, err := readITF8Pair(params)
		if err != nil {
			return nil, err
		}

		return NewGolombInteger(offset, m), nil

	case codecIDGolombRice:
		offset, log2M, err := readITF8Pair(params)
		if err != nil {
			return nil, err
		}

		return NewGolombRiceInteger(offset, log2M), nil

	default:
		return nil, fmt.Errorf("invalid integer codec id: %d", codecID)
	}
}

// ReadByteEncoding parses one byte encoding descriptor.
func ReadByteEncoding(src *ExternalReader) (*Byte, error) {
	codecID, params, err := readEncodingFrame(src)
	if err != nil {
		return nil, err
	}

	switch codecID {
	case codecIDExternal:
		contentID, err := ReadITF8(params)
		if err != nil {
			return nil, err
		}

		return NewExternalByte(contentID), nil

	case codecIDHuffman:
		rawAlphabet, err := readITF8Array(params)
		if err != nil {
			return nil, err
		}

		alphabet := make([]uint8, len(rawAlphabet))
		for i, sym := range rawAlphabet {
			if sym < 0 || sym > 0xff {
				return nil, fmt.Errorf("huffman byte alphabet symbol %d out of range", sym)
			}

			alphabet[i] = uint8(sym)
		}

		bitLens, err := readBitLenArray(params)
		if err != nil {
			return nil, err
		}

		return NewHuffmanByte(alphabet, bitLens), nil

	default:
		return nil, fmt.Errorf("invalid byte codec id: %d", codecID)
	}
}

// ReadByteArrayEncoding parses one byte array encoding descriptor,
// recursively parsing the nested length and value encodings of the
// length-prefixed variant.
func ReadByteArrayEncoding(src *ExternalReader) (*ByteArray, error) {
	codecID, params, err := readEncodingFrame(src)
	if err != nil {
		return nil, err
	}

	switch codecID {
	case codecIDByteArrayLen:
		lenEncoding, err := ReadIntegerEncoding(params)
		if err != nil {
			return nil, err
		}

		valueEncoding, err := ReadByteEncoding(params)
		if err != nil {
			return nil, err
		}

		return NewByteArrayLength(lenEncoding, valueEncoding), nil

	case codecIDByteArrayStop:
		stopByte, err := params.ReadByte()
		if err != nil {
			return nil, err
		}

		contentID, err := ReadITF8(params)
		if err != nil {
			return nil, err
		}

		return NewByteArrayStop(stopByte, contentID), nil

	default:
		return nil, fmt.Errorf("invalid byte array codec id: %d", codecID)
	}
}

// readEncodingFrame reads the codec id and returns a cursor bounded to the
// parameter bytes.
func readEncodingFrame(src *ExternalReader) (int32, *ExternalReader, error) {
	codecID, err := ReadITF8(src)
	if err != nil {
		return 0, nil, err
	}

	n, err := ReadITF8(src)
	if err != nil {
		return 0, nil, err
	}

	if n < 0 {
		return 0, nil, fmt.Errorf("encoding parameter length %d is negative", n)
	}

	params, err := src.Take(int(n))
	if err != nil {
		return 0, nil, err
	}

	return codecID, NewExternalReader(params), nil
}

func readITF8Pair(src *ExternalReader) (int32, int32, error) {
	a, err := ReadITF8(src)
	if err != nil {
		return 0, 0, err
	}

	b, err := ReadITF8(src)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func readITF8Array(src *ExternalReader) ([]int32, error) {
	n, err := ReadITF8(src)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("array length %d is negative", n)
	}

	values := make([]int32, n)
	for i := range values {
		if values[i], err = ReadITF8(src); err != nil {
			return nil, err
		}
	}

	return values, nil
}

func readBitLenArray(src *ExternalReader) ([]uint32, error) {
	raw, err := readITF8Array(src)
	if err != nil {
		return nil, err
	}

	bitLens := make([]uint32, len(raw))
	for i, v := range raw {
		if v < 0 {
			return nil, fmt.Errorf("code bit length %d is negative", v)
		}

		bitLens[i] = uint32(v)
	}

	return bitLens, nil
}
