package record

// MappingQualityMissing is the sentinel mapping quality for records without
// one, per the SAM convention.
const MappingQualityMissing uint8 = 255

// Record is one decoded CRAM alignment record.
//
// A Record is transient: Name, Sequence, QualityScores, feature payloads,
// and tag byte values borrow from the slice's decompressed external block
// buffers and remain valid only while those buffers are alive. Callers that
// need longer-lived records must copy the byte fields.
//
// Optional fields use sentinels rather than pointers: reference sequence
// ids and the read group id are -1 when absent, MateAlignmentStart is 0 when
// absent, MateDistance is -1 when absent, MappingQuality is
// MappingQualityMissing when absent, and Name is nil when missing.
type Record struct {
	// ID is the sequential record id within the decode run.
	ID uint64

	// Flags is the BAM flag word.
	Flags Flags
	// CramFlags controls how the record was encoded.
	CramFlags CramFlags

	// ReferenceSequenceID is the 0-based reference sequence index, or -1 if
	// the record is unmapped against no reference.
	ReferenceSequenceID int
	// ReadLength is the length of the read in bases.
	ReadLength int
	// AlignmentStart is the resolved 1-based alignment start position.
	AlignmentStart int
	// ReadGroupID is the 0-based read group index, or -1 for no group.
	ReadGroupID int

	// Name is the read name, or nil when the name is missing and left to be
	// generated by a later mate-resolution pass.
	Name []byte

	// MateFlags is set for detached records.
	MateFlags MateFlags
	// MateReferenceSequenceID is the mate's reference sequence index, or -1.
	MateReferenceSequenceID int
	// MateAlignmentStart is the mate's 1-based alignment start, or 0.
	MateAlignmentStart int
	// TemplateLength is the signed observed template length.
	TemplateLength int32
	// MateDistance is the raw record-count distance to a downstream mate,
	// or -1. Resolving the distance into an actual mate pairing is a
	// separate pass outside this engine.
	MateDistance int

	// Tags is the record's auxiliary data, in tag set order.
	Tags []Tag

	// Features describes a mapped read's differences from the reference.
	Features []Feature
	// MappingQuality is the mapping quality, or MappingQualityMissing.
	MappingQuality uint8

	// Sequence is the read's bases.
	Sequence []byte
	// QualityScores is the read's quality scores, or empty when absent.
	QualityScores []byte
}

// Reset clears the record for reuse, retaining tag and feature slice
// capacity so a single Record can be recycled across a decode loop.
func (r *Record) Reset() {
	r.ID = 0
	r.Flags = 0
	r.CramFlags = 0
	r.ReferenceSequenceID = -1
	r.ReadLength = 0
	r.AlignmentStart = 0
	r.ReadGroupID = -1
	r.Name = nil
	r.MateFlags = 0
	r.MateReferenceSequenceID = -1
	r.MateAlignmentStart = 0
	r.TemplateLength = 0
	r.MateDistance = -1
	r.Tags = r.Tags[:0]
	r.Features = r.Features[:0]
	r.MappingQuality = MappingQualityMissing
	r.Sequence = nil
	r.QualityScores = nil
}
