package codec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram/bitio"
)

func TestNewCanonicalDecoder_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		alphabet []int32
		bitLens  []uint32
	}{
		{"empty alphabet", nil, nil},
		{"length mismatch", []int32{1, 2}, []uint32{1}},
		{"zero code length", []int32{1, 2}, []uint32{1, 0}},
		{"code length too long", []int32{1, 2}, []uint32{1, 32}},
		{"duplicate code", []int32{7, 7}, []uint32{1, 1}},
		{"over-subscribed", []int32{1, 2, 3}, []uint32{1, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCanonicalDecoder(tc.alphabet, tc.bitLens)
			assert.Error(t, err)
		})
	}
}

func TestCanonicalDecoder_TwoSymbols(t *testing.T) {
	d, err := NewCanonicalDecoder([]int32{10, 20}, []uint32{1, 1})
	require.NoError(t, err)

	// Canonical assignment: 10 -> 0, 20 -> 1.
	r := bitio.NewReader([]byte{0b0110_0000})

	for _, want := range []int32{10, 20, 20, 10} {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, want, sym)
	}
}

func TestCanonicalDecoder_MixedLengths(t *testing.T) {
	// Lengths {1, 2, 3, 3} assign canonically:
	//   65 -> 0, 66 -> 10, 67 -> 110, 68 -> 111
	d, err := NewCanonicalDecoder([]uint8{65, 66, 67, 68}, []uint32{1, 2, 3, 3})
	require.NoError(t, err)

	// 0 10 110 111 -> 0b01011011 1...
	r := bitio.NewReader([]byte{0b0101_1011, 0b1000_0000})

	for _, want := range []uint8{65, 66, 67, 68} {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, want, sym)
	}
}

func TestCanonicalDecoder_OrderIndependentConstruction(t *testing.T) {
	// The canonical code depends only on the (symbol, length) set, not on the
	// declaration order.
	d1, err := NewCanonicalDecoder([]int32{1, 2, 3}, []uint32{2, 1, 2})
	require.NoError(t, err)

	d2, err := NewCanonicalDecoder([]int32{3, 1, 2}, []uint32{2, 2, 1})
	require.NoError(t, err)

	// 2 -> 0, 1 -> 10, 3 -> 11
	data := []byte{0b0101_1000}

	for _, d := range []*CanonicalDecoder[int32]{d1, d2} {
		r := bitio.NewReader(data)

		for _, want := range []int32{2, 1, 3} {
			sym, err := d.Decode(r)
			require.NoError(t, err)
			assert.Equal(t, want, sym)
		}
	}
}

func TestCanonicalDecoder_InvalidCode(t *testing.T) {
	// 0 -> 0, 1 -> 10; the code 11 is unassigned.
	d, err := NewCanonicalDecoder([]int32{0, 1}, []uint32{1, 2})
	require.NoError(t, err)

	_, err = d.Decode(bitio.NewReader([]byte{0b1100_0000}))
	assert.ErrorContains(t, err, "invalid code")
}

func TestCanonicalDecoder_Exhausted(t *testing.T) {
	d, err := NewCanonicalDecoder([]int32{0, 1}, []uint32{1, 1})
	require.NoError(t, err)

	_, err = d.Decode(bitio.NewReader(nil))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
