package container

import "github.com/hallam/cram/codec"

// CompressionHeader is the decode context shared by every slice of a
// container: the preservation map, the per-series encodings, and the
// per-tag encodings keyed by derived block content id.
//
// A CompressionHeader is immutable after construction and safe to share
// across engines decoding different slices on separate goroutines.
type CompressionHeader struct {
	preservationMap     *PreservationMap
	dataSeriesEncodings *DataSeriesEncodings
	tagEncodings        map[int32]*codec.ByteArray
}

// NewCompressionHeader assembles a compression header from its decoded
// parts.
func NewCompressionHeader(
	preservationMap *PreservationMap,
	dataSeriesEncodings *DataSeriesEncodings,
	tagEncodings map[int32]*codec.ByteArray,
) *CompressionHeader {
	return &CompressionHeader{
		preservationMap:     preservationMap,
		dataSeriesEncodings: dataSeriesEncodings,
		tagEncodings:        tagEncodings,
	}
}

// PreservationMap returns the preservation map.
func (h *CompressionHeader) PreservationMap() *PreservationMap {
	return h.preservationMap
}

// DataSeriesEncodings returns the per-series encoding table.
func (h *CompressionHeader) DataSeriesEncodings() *DataSeriesEncodings {
	return h.dataSeriesEncodings
}

// TagEncoding returns the byte array encoding registered for the given
// derived tag content id, or false if the header declares none.
func (h *CompressionHeader) TagEncoding(contentID int32) (*codec.ByteArray, bool) {
	e, ok := h.tagEncodings[contentID]
	return e, ok
}
