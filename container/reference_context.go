package container

// referenceContextKind discriminates the three reference sequence contexts a
// slice can declare.
type referenceContextKind uint8

const (
	referenceContextNone referenceContextKind = iota
	referenceContextSingle
	referenceContextMany
)

// ReferenceSequenceContext describes which reference sequence the records of
// a slice align to: a single fixed reference, none at all (unmapped slice),
// or many (each record decodes its own reference id).
type ReferenceSequenceContext struct {
	kind                referenceContextKind
	referenceSequenceID int
	alignmentStart      int
}

// SingleReferenceContext declares that all records of the slice align to one
// reference sequence, starting at the given 1-based position.
func SingleReferenceContext(referenceSequenceID, alignmentStart int) ReferenceSequenceContext {
	return ReferenceSequenceContext{
		kind:                referenceContextSingle,
		referenceSequenceID: referenceSequenceID,
		alignmentStart:      alignmentStart,
	}
}

// NoReferenceContext declares an unmapped slice with no reference sequence.
func NoReferenceContext() ReferenceSequenceContext {
	return ReferenceSequenceContext{kind: referenceContextNone}
}

// MultiReferenceContext declares that each record decodes its own reference
// sequence id from the ReferenceSequenceIds series.
func MultiReferenceContext() ReferenceSequenceContext {
	return ReferenceSequenceContext{kind: referenceContextMany}
}

// IsSingle reports whether the context fixes one reference sequence.
func (c ReferenceSequenceContext) IsSingle() bool {
	return c.kind == referenceContextSingle
}

// IsNone reports whether the slice has no reference sequence.
func (c ReferenceSequenceContext) IsNone() bool {
	return c.kind == referenceContextNone
}

// IsMany reports whether records decode their own reference ids.
func (c ReferenceSequenceContext) IsMany() bool {
	return c.kind == referenceContextMany
}

// ReferenceSequenceID returns the fixed reference sequence id. It is only
// meaningful when IsSingle reports true.
func (c ReferenceSequenceContext) ReferenceSequenceID() int {
	return c.referenceSequenceID
}

// AlignmentStart returns the fixed context alignment start. It is only
// meaningful when IsSingle reports true.
func (c ReferenceSequenceContext) AlignmentStart() int {
	return c.alignmentStart
}
