package container

import "github.com/hallam/cram/record"

// SubstitutionMatrixLen is the encoded size of the base substitution matrix:
// one byte of ranked substitution codes per reference base (A, C, G, T, N).
const SubstitutionMatrixLen = 5

// PreservationMap carries the per-container preservation flags and shared
// lookup tables that control how records decode.
type PreservationMap struct {
	// recordsHaveNames reports whether read names were preserved: when set,
	// every record decodes its name in place; otherwise names are decoded
	// only for detached records and regenerated elsewhere during mate
	// resolution.
	recordsHaveNames bool

	// alignmentStartsAreDeltas reports whether the AlignmentStarts series
	// holds deltas against the previous record's resolved start rather than
	// absolute positions.
	alignmentStartsAreDeltas bool

	// externalReferenceRequired reports whether decoding sequence data
	// requires the external reference.
	externalReferenceRequired bool

	// substitutionMatrix is the ranked base substitution code table,
	// consumed by the CIGAR/sequence resolution pass outside this engine.
	substitutionMatrix [SubstitutionMatrixLen]byte

	// tagSets is the tag dictionary: for each tag set id, the ordered tag
	// keys every record with that id carries.
	tagSets [][]record.TagKey
}

// NewPreservationMap creates a preservation map from its decoded parts.
func NewPreservationMap(
	recordsHaveNames bool,
	alignmentStartsAreDeltas bool,
	externalReferenceRequired bool,
	substitutionMatrix [SubstitutionMatrixLen]byte,
	tagSets [][]record.TagKey,
) *PreservationMap {
	return &PreservationMap{
		recordsHaveNames:          recordsHaveNames,
		alignmentStartsAreDeltas:  alignmentStartsAreDeltas,
		externalReferenceRequired: externalReferenceRequired,
		substitutionMatrix:        substitutionMatrix,
		tagSets:                   tagSets,
	}
}

// RecordsHaveNames reports whether records carry their names inline.
func (m *PreservationMap) RecordsHaveNames() bool {
	return m.recordsHaveNames
}

// AlignmentStartsAreDeltas reports whether alignment starts are
// delta-encoded against the previous record.
func (m *PreservationMap) AlignmentStartsAreDeltas() bool {
	return m.alignmentStartsAreDeltas
}

// ExternalReferenceRequired reports whether the external reference is
// required to resolve sequences.
func (m *PreservationMap) ExternalReferenceRequired() bool {
	return m.externalReferenceRequired
}

// SubstitutionMatrix returns the encoded base substitution matrix.
func (m *PreservationMap) SubstitutionMatrix() [SubstitutionMatrixLen]byte {
	return m.substitutionMatrix
}

// TagSet returns the ordered tag keys of the tag set with the given id, or
// false if no such set exists.
func (m *PreservationMap) TagSet(id int) ([]record.TagKey, bool) {
	if id < 0 || id >= len(m.tagSets) {
		return nil, false
	}

	return m.tagSets[id], true
}

// TagSetCount returns the number of tag sets in the dictionary.
func (m *PreservationMap) TagSetCount() int {
	return len(m.tagSets)
}
