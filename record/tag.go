package record

import "fmt"

// TagKey identifies one auxiliary tag within a tag set: a two-character tag
// name plus its declared SAM value type.
type TagKey struct {
	// Tag is the two-character tag name, e.g. {'N', 'M'}.
	Tag [2]byte
	// Type is the SAM value type character ('A', 'c', 'C', 's', 'S', 'i',
	// 'I', 'f', 'Z', 'H', or 'B').
	Type byte
}

func (k TagKey) String() string {
	return fmt.Sprintf("%c%c:%c", k.Tag[0], k.Tag[1], k.Type)
}

// ValueType is a SAM auxiliary value type character.
type ValueType byte

const (
	// ValueChar is a printable character ('A').
	ValueChar ValueType = 'A'
	// ValueInt8 is a signed 8-bit integer ('c').
	ValueInt8 ValueType = 'c'
	// ValueUInt8 is an unsigned 8-bit integer ('C').
	ValueUInt8 ValueType = 'C'
	// ValueInt16 is a signed 16-bit integer ('s').
	ValueInt16 ValueType = 's'
	// ValueUInt16 is an unsigned 16-bit integer ('S').
	ValueUInt16 ValueType = 'S'
	// ValueInt32 is a signed 32-bit integer ('i').
	ValueInt32 ValueType = 'i'
	// ValueUInt32 is an unsigned 32-bit integer ('I').
	ValueUInt32 ValueType = 'I'
	// ValueFloat is a 32-bit float ('f').
	ValueFloat ValueType = 'f'
	// ValueString is a NUL-terminated string ('Z').
	ValueString ValueType = 'Z'
	// ValueHex is a NUL-terminated hex string ('H').
	ValueHex ValueType = 'H'
	// ValueArray is a typed array ('B').
	ValueArray ValueType = 'B'
)

// Value is one decoded auxiliary tag value. Type selects which field is
// meaningful: Char for 'A'; Int for the integer types; Float for 'f'; Text
// for 'Z' and 'H' (without the trailing NUL); Array for 'B'.
type Value struct {
	Type  ValueType
	Char  byte
	Int   int64
	Float float32
	Text  []byte
	Array *ArrayValue
}

// ArrayValue is a decoded 'B'-typed tag array. Integer subtypes fill Ints;
// the 'f' subtype fills Floats.
type ArrayValue struct {
	SubType ValueType
	Ints    []int64
	Floats  []float32
}

// Tag pairs a tag key with its decoded value.
type Tag struct {
	Key   TagKey
	Value Value
}
