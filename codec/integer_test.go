package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram/bitio"
)

func externalReadersFor(t *testing.T, contentID int32, data []byte) *ExternalDataReaders {
	t.Helper()

	readers := NewExternalDataReaders()
	readers.Insert(contentID, data)

	return readers
}

func TestInteger_Decode_External(t *testing.T) {
	e := NewExternalInteger(1)
	external := externalReadersFor(t, 1, []byte{0x0d})

	value, err := e.Decode(bitio.NewReader(nil), external)
	require.NoError(t, err)
	assert.Equal(t, int32(13), value)
}

func TestInteger_Decode_External_MissingBlock(t *testing.T) {
	e := NewExternalInteger(5)

	_, err := e.Decode(bitio.NewReader(nil), NewExternalDataReaders())
	assert.ErrorAs(t, err, &MissingExternalBlockError{})
	assert.EqualError(t, err, "missing external block: 5")
}

func TestInteger_Decode_HuffmanSingleton(t *testing.T) {
	e := NewHuffmanInteger([]int32{42}, []uint32{0})

	// A singleton alphabet consumes no core bits.
	core := bitio.NewReader(nil)

	for i := 0; i < 3; i++ {
		value, err := e.Decode(core, NewExternalDataReaders())
		require.NoError(t, err)
		assert.Equal(t, int32(42), value)
	}
}

func TestInteger_Decode_HuffmanMultiSymbol(t *testing.T) {
	// 100 -> 0, 200 -> 10, 300 -> 11
	e := NewHuffmanInteger([]int32{100, 200, 300}, []uint32{1, 2, 2})

	core := bitio.NewReader([]byte{0b0101_1000})

	for _, want := range []int32{100, 200, 300} {
		value, err := e.Decode(core, NewExternalDataReaders())
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}
}

func TestInteger_Decode_Beta(t *testing.T) {
	e := NewBetaInteger(1, 3)

	// 0b100 = 4, minus offset 1.
	core := bitio.NewReader([]byte{0b1000_0000})

	value, err := e.Decode(core, NewExternalDataReaders())
	require.NoError(t, err)
	assert.Equal(t, int32(3), value)
}

func TestInteger_Decode_Gamma(t *testing.T) {
	e := NewGammaInteger(5)

	// 000 1 101: three zero bits, the terminating one bit, then the mantissa
	// 101, so the raw value is 0b1101 = 13 and the result is 13 - 5.
	core := bitio.NewReader([]byte{0b0001_1010})

	value, err := e.Decode(core, NewExternalDataReaders())
	require.NoError(t, err)
	assert.Equal(t, int32(8), value)
}

func TestInteger_Decode_Gamma_One(t *testing.T) {
	e := NewGammaInteger(0)

	// A lone one bit encodes the raw value 1.
	core := bitio.NewReader([]byte{0b1000_0000})

	value, err := e.Decode(core, NewExternalDataReaders())
	require.NoError(t, err)
	assert.Equal(t, int32(1), value)
}

func TestInteger_Decode_NotImplemented(t *testing.T) {
	encodings := []*Integer{
		NewGolombInteger(0, 10),
		NewGolombRiceInteger(0, 3),
		NewSubexpInteger(0, 1),
	}

	for _, e := range encodings {
		_, err := e.Decode(bitio.NewReader([]byte{0xff}), NewExternalDataReaders())
		assert.ErrorIs(t, err, ErrNotImplemented, "kind %s", e.Kind())
	}
}

func TestInteger_Encode_External(t *testing.T) {
	e := NewExternalInteger(1)

	writers := NewExternalDataWriters()
	defer writers.Release()
	writers.Insert(1)

	require.NoError(t, e.Encode(nil, writers, 13))

	data, err := writers.Bytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0d}, data)
}

func TestInteger_Encode_Beta_RoundTrip(t *testing.T) {
	e := NewBetaInteger(10, 6)

	core := bitio.NewWriter()
	defer core.Release()

	values := []int32{-10, 0, 3, 53}
	for _, v := range values {
		require.NoError(t, e.Encode(core, NewExternalDataWriters(), v))
	}
	core.Flush()

	r := bitio.NewReader(core.Bytes())
	for _, want := range values {
		got, err := e.Decode(r, NewExternalDataReaders())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestInteger_Encode_NotImplemented(t *testing.T) {
	e := NewGammaInteger(0)

	core := bitio.NewWriter()
	defer core.Release()

	err := e.Encode(core, NewExternalDataWriters(), 1)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
