package cram_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallam/cram"
	"github.com/hallam/cram/codec"
	"github.com/hallam/cram/compress"
	"github.com/hallam/cram/container"
	"github.com/hallam/cram/internal/pool"
	"github.com/hallam/cram/record"
)

// Fixture content ids for the data series the end-to-end slice uses.
const (
	idBF int32 = iota + 1
	idCF
	idRL
	idAP
	idRG
	idRN
	idTL
	idBA
	idQS
)

func itf8(t *testing.T, buf *pool.ByteBuffer, v int32) {
	t.Helper()
	require.NoError(t, codec.WriteITF8(buf, v))
}

// externalEncoding frames an External integer or byte descriptor.
func externalEncoding(t *testing.T, buf *pool.ByteBuffer, contentID int32) {
	t.Helper()

	params := pool.NewByteBuffer(8)
	itf8(t, params, contentID)

	itf8(t, buf, 1) // External
	itf8(t, buf, int32(params.Len()))
	buf.MustWrite(params.Bytes())
}

// stopEncoding frames a ByteArrayStop descriptor.
func stopEncoding(t *testing.T, buf *pool.ByteBuffer, stop byte, contentID int32) {
	t.Helper()

	params := pool.NewByteBuffer(8)
	require.NoError(t, params.WriteByte(stop))
	itf8(t, params, contentID)

	itf8(t, buf, 5) // ByteArrayStop
	itf8(t, buf, int32(params.Len()))
	buf.MustWrite(params.Bytes())
}

func mapFrame(t *testing.T, dst *pool.ByteBuffer, count int32, body []byte) {
	t.Helper()

	inner := pool.NewByteBuffer(len(body) + 8)
	itf8(t, inner, count)
	inner.MustWrite(body)

	itf8(t, dst, int32(inner.Len()))
	dst.MustWrite(inner.Bytes())
}

// buildHeaderData assembles a compression header payload for a slice of
// unmapped reads with names, absolute alignment starts, and one empty tag
// set.
func buildHeaderData(t *testing.T) []byte {
	t.Helper()

	pm := pool.NewByteBuffer(64)
	pm.MustWrite([]byte("AP"))
	require.NoError(t, pm.WriteByte(0x00))
	pm.MustWrite([]byte("TD"))
	itf8(t, pm, 1)
	require.NoError(t, pm.WriteByte(0x00)) // one empty tag set

	ds := pool.NewByteBuffer(256)
	for _, e := range []struct {
		key string
		id  int32
	}{
		{"BF", idBF}, {"CF", idCF}, {"RL", idRL}, {"AP", idAP},
		{"RG", idRG}, {"TL", idTL}, {"BA", idBA}, {"QS", idQS},
	} {
		ds.MustWrite([]byte(e.key))
		externalEncoding(t, ds, e.id)
	}
	ds.MustWrite([]byte("RN"))
	stopEncoding(t, ds, '\t', idRN)

	full := pool.NewByteBuffer(512)
	mapFrame(t, full, 2, pm.Bytes())
	mapFrame(t, full, 9, ds.Bytes())
	mapFrame(t, full, 0, nil)

	return full.Bytes()
}

type sliceData struct {
	name     string
	sequence []byte
	quality  []byte
}

// buildSlice encodes reads into gzip-compressed external blocks.
func buildSlice(t *testing.T, reads []sliceData) cram.Slice {
	t.Helper()

	streams := make(map[int32]*pool.ByteBuffer)
	stream := func(id int32) *pool.ByteBuffer {
		if buf, ok := streams[id]; ok {
			return buf
		}

		buf := pool.NewByteBuffer(64)
		streams[id] = buf

		return buf
	}

	for _, read := range reads {
		itf8(t, stream(idBF), 0x4) // unmapped
		itf8(t, stream(idCF), 0x1) // quality scores stored as array
		itf8(t, stream(idRL), int32(len(read.sequence)))
		itf8(t, stream(idAP), 1)
		itf8(t, stream(idRG), -1)
		stream(idRN).MustWrite([]byte(read.name + "\t"))
		itf8(t, stream(idTL), 0)
		stream(idBA).MustWrite(read.sequence)
		stream(idQS).MustWrite(read.quality)
	}

	var blocks []container.Block
	for id := idBF; id <= idQS; id++ {
		raw := stream(id).Bytes()

		compressed, err := compress.GzipCodec{}.Compress(raw)
		require.NoError(t, err)

		blocks = append(blocks, container.Block{
			ContentID:       id,
			Method:          container.MethodGzip,
			UncompressedLen: len(raw),
			Data:            compressed,
		})
	}

	return cram.Slice{
		ExternalBlocks:   blocks,
		ReferenceContext: container.NoReferenceContext(),
		RecordCount:      len(reads),
	}
}

func TestDecodeRecords(t *testing.T) {
	header, err := cram.ReadCompressionHeader(buildHeaderData(t))
	require.NoError(t, err)

	reads := []sliceData{
		{"read1", []byte("ACGTACGT"), []byte{30, 30, 30, 30, 30, 30, 30, 30}},
		{"read2", []byte("GGCC"), []byte{20, 21, 22, 23}},
		{"read3", []byte("N"), []byte{0xff}},
	}

	records, err := cram.DecodeRecords(header, buildSlice(t, reads))
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, read := range reads {
		assert.Equal(t, uint64(i), records[i].ID)
		assert.Equal(t, []byte(read.name), records[i].Name)
		assert.Equal(t, read.sequence, records[i].Sequence)
		assert.Equal(t, -1, records[i].ReferenceSequenceID)
		assert.Equal(t, 1, records[i].AlignmentStart)
	}

	assert.Equal(t, reads[0].quality, records[0].QualityScores)
	assert.Nil(t, records[2].QualityScores, "an all-0xff quality array decodes as absent")
}

func TestDecodeRecords_Deterministic(t *testing.T) {
	header, err := cram.ReadCompressionHeader(buildHeaderData(t))
	require.NoError(t, err)

	reads := []sliceData{
		{"a", []byte("ACGT"), []byte{1, 2, 3, 4}},
		{"b", []byte("TTTT"), []byte{5, 6, 7, 8}},
	}

	digest := func() uint64 {
		records, err := cram.DecodeRecords(header, buildSlice(t, reads))
		require.NoError(t, err)

		h := xxhash.New()
		for _, rec := range records {
			_, _ = h.Write(rec.Name)
			_, _ = h.Write(rec.Sequence)
			_, _ = h.Write(rec.QualityScores)
		}

		return h.Sum64()
	}

	assert.Equal(t, digest(), digest(), "repeated decodes must produce identical records")
}

func TestNewSliceReader_RecordAtATime(t *testing.T) {
	header, err := cram.ReadCompressionHeader(buildHeaderData(t))
	require.NoError(t, err)

	reads := []sliceData{
		{"r1", []byte("AC"), []byte{9, 9}},
		{"r2", []byte("GT"), []byte{8, 8}},
	}

	r, err := cram.NewSliceReader(header, buildSlice(t, reads), 100)
	require.NoError(t, err)

	var rec record.Record

	n, err := r.ReadRecord(&rec)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, uint64(100), rec.ID, "the initial id seeds the sequence")

	n, err = r.ReadRecord(&rec)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, uint64(101), rec.ID)

	n, err = r.ReadRecord(&rec)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDecodeRecords_MissingBlock(t *testing.T) {
	header, err := cram.ReadCompressionHeader(buildHeaderData(t))
	require.NoError(t, err)

	s := buildSlice(t, []sliceData{{"r", []byte("A"), []byte{1}}})
	s.ExternalBlocks = s.ExternalBlocks[1:] // drop the BF block

	_, err = cram.DecodeRecords(header, s)
	assert.ErrorAs(t, err, &codec.MissingExternalBlockError{})
}
