package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram/record"
)

func TestReadValue_Scalars(t *testing.T) {
	tests := []struct {
		name string
		ty   byte
		src  []byte
		want record.Value
	}{
		{"char", 'A', []byte{'*'}, record.Value{Type: record.ValueChar, Char: '*'}},
		{"int8", 'c', []byte{0xff}, record.Value{Type: record.ValueInt8, Int: -1}},
		{"uint8", 'C', []byte{0xff}, record.Value{Type: record.ValueUInt8, Int: 255}},
		{"int16", 's', []byte{0xfe, 0xff}, record.Value{Type: record.ValueInt16, Int: -2}},
		{"uint16", 'S', []byte{0x34, 0x12}, record.Value{Type: record.ValueUInt16, Int: 0x1234}},
		{"int32", 'i', []byte{0xff, 0xff, 0xff, 0xff}, record.Value{Type: record.ValueInt32, Int: -1}},
		{"uint32", 'I', []byte{0x78, 0x56, 0x34, 0x12}, record.Value{Type: record.ValueUInt32, Int: 0x12345678}},
		{"float", 'f', []byte{0x00, 0x00, 0x80, 0x3f}, record.Value{Type: record.ValueFloat, Float: 1.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, err := readValue(tc.src, tc.ty)
			require.NoError(t, err)
			assert.Equal(t, tc.want, value)
		})
	}
}

func TestReadValue_Strings(t *testing.T) {
	value, err := readValue([]byte("hello\x00"), 'Z')
	require.NoError(t, err)
	assert.Equal(t, record.ValueString, value.Type)
	assert.Equal(t, []byte("hello"), value.Text)

	value, err = readValue([]byte("1AE3\x00"), 'H')
	require.NoError(t, err)
	assert.Equal(t, record.ValueHex, value.Type)
	assert.Equal(t, []byte("1AE3"), value.Text)
}

func TestReadValue_String_Unterminated(t *testing.T) {
	_, err := readValue([]byte("no nul"), 'Z')
	assert.ErrorContains(t, err, "unterminated")
}

func TestReadValue_IntArray(t *testing.T) {
	// B:s with elements {-1, 2}
	src := []byte{'s', 0x02, 0x00, 0x00, 0x00, 0xff, 0xff, 0x02, 0x00}

	value, err := readValue(src, 'B')
	require.NoError(t, err)
	require.Equal(t, record.ValueArray, value.Type)
	require.NotNil(t, value.Array)
	assert.Equal(t, record.ValueInt16, value.Array.SubType)
	assert.Equal(t, []int64{-1, 2}, value.Array.Ints)
	assert.Nil(t, value.Array.Floats)
}

func TestReadValue_FloatArray(t *testing.T) {
	// B:f with elements {1.0, -2.0}
	src := []byte{'f', 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}

	value, err := readValue(src, 'B')
	require.NoError(t, err)
	require.NotNil(t, value.Array)
	assert.Equal(t, record.ValueFloat, value.Array.SubType)
	assert.Equal(t, []float32{1.0, -2.0}, value.Array.Floats)
}

func TestReadValue_Array_InvalidSubType(t *testing.T) {
	src := []byte{'Z', 0x00, 0x00, 0x00, 0x00}

	_, err := readValue(src, 'B')
	assert.ErrorContains(t, err, "invalid array subtype")
}

func TestReadValue_Array_Truncated(t *testing.T) {
	src := []byte{'i', 0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00} // one of two elements

	_, err := readValue(src, 'B')
	assert.ErrorContains(t, err, "truncated")
}

func TestReadValue_Truncated(t *testing.T) {
	for _, ty := range []byte{'A', 'c', 'C', 's', 'S', 'i', 'I', 'f', 'B'} {
		_, err := readValue(nil, ty)
		assert.ErrorContains(t, err, "truncated", "type %c", ty)
	}
}

func TestReadValue_InvalidType(t *testing.T) {
	_, err := readValue([]byte{0x00}, 'x')
	assert.ErrorContains(t, err, "invalid tag value type")
}
