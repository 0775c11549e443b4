package slice

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hallam/cram/record"
)

// readValue interprets the raw bytes of one tag value according to its
// declared SAM type. Scalars and arrays are little-endian; 'Z' and 'H'
// values are NUL-terminated in the byte stream and returned without the
// terminator.
func readValue(src []byte, ty byte) (record.Value, error) {
	switch record.ValueType(ty) {
	case record.ValueChar:
		if len(src) < 1 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueChar, Char: src[0]}, nil

	case record.ValueInt8:
		if len(src) < 1 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueInt8, Int: int64(int8(src[0]))}, nil

	case record.ValueUInt8:
		if len(src) < 1 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueUInt8, Int: int64(src[0])}, nil

	case record.ValueInt16:
		if len(src) < 2 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueInt16, Int: int64(int16(binary.LittleEndian.Uint16(src)))}, nil

	case record.ValueUInt16:
		if len(src) < 2 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueUInt16, Int: int64(binary.LittleEndian.Uint16(src))}, nil

	case record.ValueInt32:
		if len(src) < 4 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueInt32, Int: int64(int32(binary.LittleEndian.Uint32(src)))}, nil

	case record.ValueUInt32:
		if len(src) < 4 {
			return record.Value{}, truncatedValue(ty)
		}

		return record.Value{Type: record.ValueUInt32, Int: int64(binary.LittleEndian.Uint32(src))}, nil

	case record.ValueFloat:
		if len(src) < 4 {
			return record.Value{}, truncatedValue(ty)
		}

		f := math.Float32frombits(binary.LittleEndian.Uint32(src))

		return record.Value{Type: record.ValueFloat, Float: f}, nil

	case record.ValueString, record.ValueHex:
		i := bytes.IndexByte(src, 0x00)
		if i < 0 {
			return record.Value{}, fmt.Errorf("%w: unterminated %c value", ErrInvalidData, ty)
		}

		return record.Value{Type: record.ValueType(ty), Text: src[:i]}, nil

	case record.ValueArray:
		return readArrayValue(src)

	default:
		return record.Value{}, fmt.Errorf("%w: invalid tag value type: 0x%02x", ErrInvalidData, ty)
	}
}

func readArrayValue(src []byte) (record.Value, error) {
	if len(src) < 5 {
		return record.Value{}, truncatedValue('B')
	}

	subType := src[0]
	count := int(binary.LittleEndian.Uint32(src[1:]))
	src = src[5:]

	if count < 0 {
		return record.Value{}, fmt.Errorf("%w: array count %d is negative", ErrInvalidData, count)
	}

	array := &record.ArrayValue{SubType: record.ValueType(subType)}

	width, err := arrayElementWidth(subType)
	if err != nil {
		return record.Value{}, err
	}

	if len(src) < count*width {
		return record.Value{}, truncatedValue('B')
	}

	if record.ValueType(subType) == record.ValueFloat {
		array.Floats = make([]float32, count)
		for i := range array.Floats {
			array.Floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*width:]))
		}
	} else {
		array.Ints = make([]int64, count)
		for i := range array.Ints {
			array.Ints[i] = arrayElementInt(subType, src[i*width:])
		}
	}

	return record.Value{Type: record.ValueArray, Array: array}, nil
}

func arrayElementWidth(subType byte) (int, error) {
	switch record.ValueType(subType) {
	case record.ValueInt8, record.ValueUInt8:
		return 1, nil
	case record.ValueInt16, record.ValueUInt16:
		return 2, nil
	case record.ValueInt32, record.ValueUInt32, record.ValueFloat:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: invalid array subtype: 0x%02x", ErrInvalidData, subType)
	}
}

func arrayElementInt(subType byte, src []byte) int64 {
	switch record.ValueType(subType) {
	case record.ValueInt8:
		return int64(int8(src[0]))
	case record.ValueUInt8:
		return int64(src[0])
	case record.ValueInt16:
		return int64(int16(binary.LittleEndian.Uint16(src)))
	case record.ValueUInt16:
		return int64(binary.LittleEndian.Uint16(src))
	case record.ValueInt32:
		return int64(int32(binary.LittleEndian.Uint32(src)))
	default: // ValueUInt32; subtypes are validated by arrayElementWidth
		return int64(binary.LittleEndian.Uint32(src))
	}
}

func truncatedValue(ty byte) error {
	return fmt.Errorf("%w: truncated %c value", ErrInvalidData, ty)
}
