// Package cram implements the record decode core of the CRAM sequence
// alignment format: the entropy and integer codecs, the compression header
// model, block decompression, and the per-slice record reconstruction
// engine.
//
// CRAM stores alignment records column-wise. A container carries one
// compression header describing how each data series is encoded, followed by
// slices; each slice carries a core bit-packed block plus external byte
// blocks keyed by content id. Decoding a record pulls one value per data
// series from whichever stream that series' encoding names.
//
// # Basic Usage
//
// Decoding the records of one slice:
//
//	import "github.com/hallam/cram"
//
//	header, err := cram.ReadCompressionHeader(headerData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := cram.DecodeRecords(header, cram.Slice{
//	    CoreData:         coreData,
//	    ExternalBlocks:   blocks,
//	    ReferenceContext: container.SingleReferenceContext(0, 100),
//	    RecordCount:      n,
//	})
//
// For record-at-a-time decoding with buffer reuse, build a slice.Reader
// directly via NewSliceReader and loop over ReadRecord.
//
// # Package Structure
//
// This package provides top-level wrappers around the component packages:
//
//   - bitio: MSB-first bit cursors over byte slices
//   - codec: ITF8 varints and the integer, byte, and byte-array encodings
//   - container: compression header, data series, and block models
//   - compress: per-method block payload decompression
//   - slice: the serial record reconstruction engine
//
// Mate resolution, reference-based sequence restoration, and file or
// container framing sit above this module.
package cram

import (
	"github.com/hallam/cram/container"
	"github.com/hallam/cram/record"
	"github.com/hallam/cram/slice"
)

// Slice bundles the decoded-container inputs needed to reconstruct one
// slice's records.
type Slice struct {
	// CoreData is the decompressed core block payload.
	CoreData []byte

	// ExternalBlocks are the slice's external blocks, still compressed.
	ExternalBlocks []container.Block

	// ReferenceContext is the slice header's reference sequence context.
	ReferenceContext container.ReferenceSequenceContext

	// RecordCount is the slice header's declared record count.
	RecordCount int
}

// ReadCompressionHeader parses a container's compression header from its
// decompressed block payload.
//
// The returned header is read-only after construction and may be shared by
// concurrent slice readers.
func ReadCompressionHeader(src []byte) (*container.CompressionHeader, error) {
	return container.ReadCompressionHeader(src)
}

// NewSliceReader decompresses a slice's external blocks and builds a record
// engine over them. initialID seeds the sequential record id and normally
// continues across the slices of a container.
func NewSliceReader(header *container.CompressionHeader, s Slice, initialID uint64) (*slice.Reader, error) {
	external, err := slice.NewExternalReaders(s.ExternalBlocks)
	if err != nil {
		return nil, err
	}

	return slice.NewReader(header, s.CoreData, external, s.ReferenceContext, s.RecordCount, initialID), nil
}

// DecodeRecords reconstructs all of a slice's records in order, starting the
// record id sequence at zero.
//
// Decoding stops at the first malformed record; records decoded before the
// error are discarded. Use NewSliceReader directly to keep partial results
// or to reuse one Record buffer across the loop.
func DecodeRecords(header *container.CompressionHeader, s Slice) ([]record.Record, error) {
	r, err := NewSliceReader(header, s, 0)
	if err != nil {
		return nil, err
	}

	records := make([]record.Record, 0, s.RecordCount)

	for {
		var rec record.Record

		n, err := r.ReadRecord(&rec)
		if err != nil {
			return nil, err
		}

		if n == 0 {
			return records, nil
		}

		records = append(records, rec)
	}
}
