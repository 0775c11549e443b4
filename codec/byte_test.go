package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram/bitio"
)

func TestByte_Decode_External(t *testing.T) {
	e := NewExternalByte(1)
	external := externalReadersFor(t, 1, []byte{'A', 'C', 'G'})

	for _, want := range []byte{'A', 'C', 'G'} {
		b, err := e.Decode(bitio.NewReader(nil), external)
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
}

func TestByte_Decode_HuffmanSingleton(t *testing.T) {
	e := NewHuffmanByte([]uint8{'N'}, []uint32{0})

	b, err := e.Decode(bitio.NewReader(nil), NewExternalDataReaders())
	require.NoError(t, err)
	assert.Equal(t, byte('N'), b)
}

func TestByte_Decode_HuffmanMultiSymbol(t *testing.T) {
	// 'A' -> 0, 'C' -> 10, 'G' -> 11
	e := NewHuffmanByte([]uint8{'A', 'C', 'G'}, []uint32{1, 2, 2})

	core := bitio.NewReader([]byte{0b0101_1000})

	for _, want := range []byte{'A', 'C', 'G'} {
		b, err := e.Decode(core, NewExternalDataReaders())
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
}

func TestByte_DecodeTake_External(t *testing.T) {
	e := NewExternalByte(2)
	external := externalReadersFor(t, 2, []byte("ACGTN"))

	buf, err := e.DecodeTake(bitio.NewReader(nil), external, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), buf)

	buf, err = e.DecodeTake(bitio.NewReader(nil), external, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("N"), buf)
}

func TestByte_DecodeTake_Huffman(t *testing.T) {
	e := NewHuffmanByte([]uint8{'A', 'C'}, []uint32{1, 1})

	// 0 1 1 0 -> A C C A
	core := bitio.NewReader([]byte{0b0110_0000})

	buf, err := e.DecodeTake(core, NewExternalDataReaders(), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACCA"), buf)
}

func TestByte_Encode_External(t *testing.T) {
	e := NewExternalByte(1)

	writers := NewExternalDataWriters()
	defer writers.Release()
	writers.Insert(1)

	for _, b := range []byte("ACGT") {
		require.NoError(t, e.Encode(nil, writers, b))
	}

	data, err := writers.Bytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), data)
}

func TestByte_Encode_NotImplemented(t *testing.T) {
	e := NewHuffmanByte([]uint8{'A'}, []uint32{0})

	err := e.Encode(nil, NewExternalDataWriters(), 'A')
	assert.ErrorIs(t, err, ErrNotImplemented)
}
