package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram/codec"
	"github.com/hallam/cram/internal/pool"
	"github.com/hallam/cram/record"
)

type headerBuilder struct {
	t   *testing.T
	buf *pool.ByteBuffer
}

func newHeaderBuilder(t *testing.T) *headerBuilder {
	t.Helper()

	return &headerBuilder{t: t, buf: pool.NewByteBuffer(256)}
}

func (b *headerBuilder) itf8(v int32) *headerBuilder {
	require.NoError(b.t, codec.WriteITF8(b.buf, v))
	return b
}

func (b *headerBuilder) raw(data ...byte) *headerBuilder {
	b.buf.MustWrite(data)
	return b
}

// mapFrame wraps body in the byte-size/entry-count prelude shared by the
// three header maps.
func (b *headerBuilder) mapFrame(count int32, body []byte) *headerBuilder {
	inner := pool.NewByteBuffer(len(body) + 8)
	require.NoError(b.t, codec.WriteITF8(inner, count))
	inner.MustWrite(body)

	b.itf8(int32(inner.Len()))
	b.buf.MustWrite(inner.Bytes())

	return b
}

func (b *headerBuilder) bytes() []byte {
	return b.buf.Bytes()
}

// externalIntegerEncoding frames an External integer descriptor.
func externalIntegerEncoding(t *testing.T, contentID int32) []byte {
	t.Helper()

	params := pool.NewByteBuffer(8)
	require.NoError(t, codec.WriteITF8(params, contentID))

	buf := pool.NewByteBuffer(16)
	require.NoError(t, codec.WriteITF8(buf, 1)) // External
	require.NoError(t, codec.WriteITF8(buf, int32(params.Len())))
	buf.MustWrite(params.Bytes())

	return buf.Bytes()
}

// stopByteArrayEncoding frames a ByteArrayStop descriptor.
func stopByteArrayEncoding(t *testing.T, stop byte, contentID int32) []byte {
	t.Helper()

	params := pool.NewByteBuffer(8)
	require.NoError(t, params.WriteByte(stop))
	require.NoError(t, codec.WriteITF8(params, contentID))

	buf := pool.NewByteBuffer(16)
	require.NoError(t, codec.WriteITF8(buf, 5)) // ByteArrayStop
	require.NoError(t, codec.WriteITF8(buf, int32(params.Len())))
	buf.MustWrite(params.Bytes())

	return buf.Bytes()
}

func TestReadCompressionHeader(t *testing.T) {
	// Preservation map: RN=false, AP=false, SM, and a two-set tag dictionary.
	tagDict := []byte{
		'N', 'M', 'i', 0x00,
		'N', 'M', 'i', 'M', 'D', 'Z', 0x00,
	}

	pm := newHeaderBuilder(t)
	pm.raw('R', 'N').raw(0x00)
	pm.raw('A', 'P').raw(0x00)
	pm.raw('S', 'M').raw(0x12, 0x34, 0x56, 0x78, 0x9a)
	pm.raw('T', 'D').itf8(int32(len(tagDict))).raw(tagDict...)

	// Data series map: BF and CF External, plus a legacy TC entry that must
	// be skipped without disturbing the entries after it.
	ds := newHeaderBuilder(t)
	ds.raw('B', 'F').raw(externalIntegerEncoding(t, 1)...)
	ds.raw('T', 'C').raw(externalIntegerEncoding(t, 99)...)
	ds.raw('C', 'F').raw(externalIntegerEncoding(t, 2)...)
	ds.raw('R', 'N').raw(stopByteArrayEncoding(t, '\t', 3)...)

	// Tag encoding map: one entry for NM:i.
	nmContentID := ContentID(record.TagKey{Tag: [2]byte{'N', 'M'}, Type: 'i'})

	te := newHeaderBuilder(t)
	te.itf8(nmContentID).raw(stopByteArrayEncoding(t, 0x00, nmContentID)...)

	full := newHeaderBuilder(t)
	full.mapFrame(4, pm.bytes())
	full.mapFrame(4, ds.bytes())
	full.mapFrame(1, te.bytes())

	header, err := ReadCompressionHeader(full.bytes())
	require.NoError(t, err)

	m := header.PreservationMap()
	assert.False(t, m.RecordsHaveNames())
	assert.False(t, m.AlignmentStartsAreDeltas())
	assert.True(t, m.ExternalReferenceRequired(), "RR defaults to true when absent")
	assert.Equal(t, [SubstitutionMatrixLen]byte{0x12, 0x34, 0x56, 0x78, 0x9a}, m.SubstitutionMatrix())

	require.Equal(t, 2, m.TagSetCount())

	set0, ok := m.TagSet(0)
	require.True(t, ok)
	assert.Equal(t, []record.TagKey{{Tag: [2]byte{'N', 'M'}, Type: 'i'}}, set0)

	set1, ok := m.TagSet(1)
	require.True(t, ok)
	assert.Len(t, set1, 2)
	assert.Equal(t, record.TagKey{Tag: [2]byte{'M', 'D'}, Type: 'Z'}, set1[1])

	encodings := header.DataSeriesEncodings()
	require.NotNil(t, encodings.BamFlags)
	require.NotNil(t, encodings.CramFlags)
	require.NotNil(t, encodings.Names)
	assert.Nil(t, encodings.AlignmentStarts, "undeclared series stay nil")

	_, ok = header.TagEncoding(nmContentID)
	assert.True(t, ok)

	_, ok = header.TagEncoding(0)
	assert.False(t, ok)
}

func TestReadCompressionHeader_Defaults(t *testing.T) {
	// Empty maps leave every preservation flag at its preserved default.
	full := newHeaderBuilder(t)
	full.mapFrame(0, nil)
	full.mapFrame(0, nil)
	full.mapFrame(0, nil)

	header, err := ReadCompressionHeader(full.bytes())
	require.NoError(t, err)

	m := header.PreservationMap()
	assert.True(t, m.RecordsHaveNames())
	assert.True(t, m.AlignmentStartsAreDeltas())
	assert.True(t, m.ExternalReferenceRequired())
	assert.Equal(t, 0, m.TagSetCount())
}

func TestReadCompressionHeader_InvalidPreservationKey(t *testing.T) {
	pm := newHeaderBuilder(t)
	pm.raw('Z', 'Z').raw(0x01)

	full := newHeaderBuilder(t)
	full.mapFrame(1, pm.bytes())
	full.mapFrame(0, nil)
	full.mapFrame(0, nil)

	_, err := ReadCompressionHeader(full.bytes())
	assert.ErrorContains(t, err, "invalid key")
}

func TestReadCompressionHeader_InvalidBool(t *testing.T) {
	pm := newHeaderBuilder(t)
	pm.raw('R', 'N').raw(0x02)

	full := newHeaderBuilder(t)
	full.mapFrame(1, pm.bytes())
	full.mapFrame(0, nil)
	full.mapFrame(0, nil)

	_, err := ReadCompressionHeader(full.bytes())
	assert.ErrorContains(t, err, "invalid bool byte")
}

func TestReadCompressionHeader_UnterminatedTagSet(t *testing.T) {
	tagDict := []byte{'N', 'M', 'i'} // missing trailing NUL

	pm := newHeaderBuilder(t)
	pm.raw('T', 'D').itf8(int32(len(tagDict))).raw(tagDict...)

	full := newHeaderBuilder(t)
	full.mapFrame(1, pm.bytes())
	full.mapFrame(0, nil)
	full.mapFrame(0, nil)

	_, err := ReadCompressionHeader(full.bytes())
	assert.ErrorContains(t, err, "unterminated tag set")
}

func TestReadCompressionHeader_Truncated(t *testing.T) {
	full := newHeaderBuilder(t)
	full.mapFrame(0, nil)

	_, err := ReadCompressionHeader(full.bytes())
	assert.Error(t, err)
}

func TestContentID(t *testing.T) {
	key := record.TagKey{Tag: [2]byte{'N', 'M'}, Type: 'i'}

	assert.Equal(t, int32('N')<<16|int32('M')<<8|int32('i'), ContentID(key))
}
