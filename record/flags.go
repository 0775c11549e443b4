// Package record defines the decoded CRAM alignment record and its
// constituent value types: flag sets, structural features, and auxiliary tag
// values.
package record

// Flags is the standard BAM flag word carried by every alignment record.
type Flags uint16

const (
	// FlagPaired indicates the read is paired in sequencing.
	FlagPaired Flags = 0x0001
	// FlagProperPair indicates the pair is mapped in a proper pair.
	FlagProperPair Flags = 0x0002
	// FlagUnmapped indicates the read itself is unmapped.
	FlagUnmapped Flags = 0x0004
	// FlagMateUnmapped indicates the mate is unmapped.
	FlagMateUnmapped Flags = 0x0008
	// FlagReverseComplemented indicates the read maps to the reverse strand.
	FlagReverseComplemented Flags = 0x0010
	// FlagMateReverseComplemented indicates the mate maps to the reverse strand.
	FlagMateReverseComplemented Flags = 0x0020
	// FlagFirstSegment indicates the read is the first segment of the template.
	FlagFirstSegment Flags = 0x0040
	// FlagLastSegment indicates the read is the last segment of the template.
	FlagLastSegment Flags = 0x0080
	// FlagSecondary indicates a secondary alignment.
	FlagSecondary Flags = 0x0100
	// FlagQCFail indicates the read failed quality checks.
	FlagQCFail Flags = 0x0200
	// FlagDuplicate indicates a PCR or optical duplicate.
	FlagDuplicate Flags = 0x0400
	// FlagSupplementary indicates a supplementary alignment.
	FlagSupplementary Flags = 0x0800
)

// IsUnmapped reports whether the read is unmapped.
func (f Flags) IsUnmapped() bool { return f&FlagUnmapped != 0 }

// IsPaired reports whether the read is paired.
func (f Flags) IsPaired() bool { return f&FlagPaired != 0 }

// CramFlags is the CRAM-specific flag byte controlling how the remainder of
// a record is decoded.
type CramFlags uint8

const (
	// CramFlagQualityScoresStoredAsArray indicates quality scores are stored
	// as a read-length array rather than as per-feature values.
	CramFlagQualityScoresStoredAsArray CramFlags = 0x01
	// CramFlagDetached indicates the record carries its full mate
	// information inline instead of referencing a downstream record.
	CramFlagDetached CramFlags = 0x02
	// CramFlagMateDownstream indicates the mate is a downstream record in
	// the same slice, referenced by a record-count distance.
	CramFlagMateDownstream CramFlags = 0x04
	// CramFlagDecodeSequenceAsUnknown indicates bases decode as N.
	CramFlagDecodeSequenceAsUnknown CramFlags = 0x08
)

// QualityScoresStoredAsArray reports whether the record stores quality
// scores as a read-length array.
func (f CramFlags) QualityScoresStoredAsArray() bool {
	return f&CramFlagQualityScoresStoredAsArray != 0
}

// IsDetached reports whether the record is detached from its mate.
func (f CramFlags) IsDetached() bool { return f&CramFlagDetached != 0 }

// MateIsDownstream reports whether the mate lies downstream in the same slice.
func (f CramFlags) MateIsDownstream() bool { return f&CramFlagMateDownstream != 0 }

// DecodeSequenceAsUnknown reports whether the sequence decodes as unknown bases.
func (f CramFlags) DecodeSequenceAsUnknown() bool {
	return f&CramFlagDecodeSequenceAsUnknown != 0
}

// MateFlags describes the mate of a detached record.
type MateFlags uint8

const (
	// MateFlagOnNegativeStrand indicates the mate maps to the reverse strand.
	MateFlagOnNegativeStrand MateFlags = 0x01
	// MateFlagUnmapped indicates the mate is unmapped.
	MateFlagUnmapped MateFlags = 0x02
)

// IsOnNegativeStrand reports whether the mate maps to the reverse strand.
func (f MateFlags) IsOnNegativeStrand() bool { return f&MateFlagOnNegativeStrand != 0 }

// IsUnmapped reports whether the mate is unmapped.
func (f MateFlags) IsUnmapped() bool { return f&MateFlagUnmapped != 0 }
