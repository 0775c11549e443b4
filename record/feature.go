package record

import "fmt"

// FeatureCode identifies the kind of a read feature. The codes are single
// ASCII characters fixed by the CRAM format.
type FeatureCode uint8

const (
	// FeatureBases is a stretch of bases ('b').
	FeatureBases FeatureCode = 'b'
	// FeatureScores is a stretch of quality scores ('q').
	FeatureScores FeatureCode = 'q'
	// FeatureReadBase is a single base with its quality score ('B').
	FeatureReadBase FeatureCode = 'B'
	// FeatureSubstitution is a base substitution code ('X').
	FeatureSubstitution FeatureCode = 'X'
	// FeatureInsertion is a multi-base insertion ('I').
	FeatureInsertion FeatureCode = 'I'
	// FeatureDeletion is a deletion of the given length ('D').
	FeatureDeletion FeatureCode = 'D'
	// FeatureInsertBase is a single-base insertion ('i').
	FeatureInsertBase FeatureCode = 'i'
	// FeatureQualityScore is a single quality score ('Q').
	FeatureQualityScore FeatureCode = 'Q'
	// FeatureReferenceSkip is a reference skip of the given length ('N').
	FeatureReferenceSkip FeatureCode = 'N'
	// FeatureSoftClip is a run of soft-clipped bases ('S').
	FeatureSoftClip FeatureCode = 'S'
	// FeaturePadding is silent padding of the given length ('P').
	FeaturePadding FeatureCode = 'P'
	// FeatureHardClip is a hard clip of the given length ('H').
	FeatureHardClip FeatureCode = 'H'
)

// FeatureCodeFromByte validates and converts a raw feature code byte.
func FeatureCodeFromByte(b byte) (FeatureCode, error) {
	switch FeatureCode(b) {
	case FeatureBases, FeatureScores, FeatureReadBase, FeatureSubstitution,
		FeatureInsertion, FeatureDeletion, FeatureInsertBase,
		FeatureQualityScore, FeatureReferenceSkip, FeatureSoftClip,
		FeaturePadding, FeatureHardClip:
		return FeatureCode(b), nil
	default:
		return 0, fmt.Errorf("invalid feature code: 0x%02x", b)
	}
}

func (c FeatureCode) String() string {
	switch c {
	case FeatureBases:
		return "Bases"
	case FeatureScores:
		return "Scores"
	case FeatureReadBase:
		return "ReadBase"
	case FeatureSubstitution:
		return "Substitution"
	case FeatureInsertion:
		return "Insertion"
	case FeatureDeletion:
		return "Deletion"
	case FeatureInsertBase:
		return "InsertBase"
	case FeatureQualityScore:
		return "QualityScore"
	case FeatureReferenceSkip:
		return "ReferenceSkip"
	case FeatureSoftClip:
		return "SoftClip"
	case FeaturePadding:
		return "Padding"
	case FeatureHardClip:
		return "HardClip"
	default:
		return "Unknown"
	}
}

// Feature is one structural read feature of a mapped record. Features
// describe how the read differs from the reference and are later convertible
// to a CIGAR string.
//
// Position is 1-based on the read and strictly increases within a record;
// the engine accumulates the per-feature position deltas. Which payload
// fields are meaningful depends on Code:
//
//	Bases, Insertion, SoftClip  Bases
//	Scores                      Scores
//	ReadBase                    Base, QualityScore
//	Substitution                SubstitutionCode
//	InsertBase                  Base
//	QualityScore                QualityScore
//	Deletion, ReferenceSkip,
//	Padding, HardClip           Length
type Feature struct {
	Code     FeatureCode
	Position int

	Bases            []byte
	Scores           []byte
	Base             byte
	QualityScore     byte
	SubstitutionCode byte
	Length           int
}
