package slice

import (
	"bytes"
	"fmt"

	"github.com/hallam/cram/bitio"
	"github.com/hallam/cram/codec"
	"github.com/hallam/cram/container"
	"github.com/hallam/cram/record"
)

// nameMissing is the sentinel the Names series stores for records whose
// names were not preserved.
var nameMissing = []byte("*\x00")

// qualityScoreMissing fills the quality array of records without scores.
const qualityScoreMissing byte = 0xff

// Reader decodes the records of one slice.
//
// A Reader exclusively owns its core bit cursor and external byte cursors,
// which advance monotonically; it shares the compression header read-only.
// Records must be decoded in order: resolving a delta-encoded alignment
// start requires the previous record's start, so a slice cannot be decoded
// from the middle. Restarting means rebuilding the Reader from the slice's
// buffers.
type Reader struct {
	header    *container.CompressionHeader
	core      *bitio.Reader
	external  *codec.ExternalDataReaders
	refCtx    container.ReferenceSequenceContext
	remaining int

	// Cross-record state, mutated only after a record decodes successfully.
	id                 uint64
	prevAlignmentStart int
}

// NewReader creates an engine for one slice.
//
// coreData is the slice's decompressed core block payload; external holds
// the decompressed external blocks (see NewExternalReaders); refCtx is the
// slice's reference sequence context; recordCount is the slice header's
// declared record count; initialID seeds the sequential record id, which
// normally continues across the slices of a container.
func NewReader(
	header *container.CompressionHeader,
	coreData []byte,
	external *codec.ExternalDataReaders,
	refCtx container.ReferenceSequenceContext,
	recordCount int,
	initialID uint64,
) *Reader {
	prevAlignmentStart := 0
	if refCtx.IsSingle() {
		prevAlignmentStart = refCtx.AlignmentStart()
	}

	return &Reader{
		header:             header,
		core:               bitio.NewReader(coreData),
		external:           external,
		refCtx:             refCtx,
		remaining:          recordCount,
		id:                 initialID,
		prevAlignmentStart: prevAlignmentStart,
	}
}

// ReadRecord decodes the next record into rec and returns 1, or 0 once the
// slice's declared record count is exhausted. rec is reset first, so one
// Record can be reused across the whole loop.
//
// Errors are terminal for the slice: the cursors are left mid-record and no
// engine state is updated, so the running id is unchanged and records
// returned before the error remain valid.
func (r *Reader) ReadRecord(rec *record.Record) (int, error) {
	if r.remaining <= 0 {
		return 0, nil
	}

	rec.Reset()
	rec.ID = r.id

	var err error

	if rec.Flags, err = r.readBAMFlags(); err != nil {
		return 0, err
	}

	if rec.CramFlags, err = r.readCramFlags(); err != nil {
		return 0, err
	}

	if err = r.readPositions(rec); err != nil {
		return 0, err
	}

	if err = r.readNames(rec); err != nil {
		return 0, err
	}

	if err = r.readMate(rec); err != nil {
		return 0, err
	}

	if err = r.readTags(rec); err != nil {
		return 0, err
	}

	if rec.Flags.IsUnmapped() {
		err = r.readUnmappedRead(rec)
	} else {
		err = r.readMappedRead(rec)
	}

	if err != nil {
		return 0, err
	}

	r.id++
	r.prevAlignmentStart = rec.AlignmentStart
	r.remaining--

	return 1, nil
}

func (r *Reader) readBAMFlags() (record.Flags, error) {
	encoding := r.header.DataSeriesEncodings().BamFlags
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesBamFlags}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 || n > 0xffff {
		return 0, fmt.Errorf("%w: BAM flags %d out of range", ErrInvalidData, n)
	}

	return record.Flags(n), nil
}

func (r *Reader) readCramFlags() (record.CramFlags, error) {
	encoding := r.header.DataSeriesEncodings().CramFlags
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesCramFlags}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 || n > 0xff {
		return 0, fmt.Errorf("%w: CRAM flags %d out of range", ErrInvalidData, n)
	}

	return record.CramFlags(n), nil
}

func (r *Reader) readPositions(rec *record.Record) error {
	switch {
	case r.refCtx.IsSingle():
		rec.ReferenceSequenceID = r.refCtx.ReferenceSequenceID()
	case r.refCtx.IsNone():
		rec.ReferenceSequenceID = -1
	default:
		id, err := r.readReferenceSequenceID()
		if err != nil {
			return err
		}

		rec.ReferenceSequenceID = id
	}

	readLength, err := r.readReadLength()
	if err != nil {
		return err
	}

	rec.ReadLength = readLength

	if rec.AlignmentStart, err = r.readAlignmentStart(); err != nil {
		return err
	}

	rec.ReadGroupID, err = r.readReadGroupID()

	return err
}

func (r *Reader) readReferenceSequenceID() (int, error) {
	const unmapped = -1

	encoding := r.header.DataSeriesEncodings().ReferenceSequenceIds
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesReferenceSequenceIds}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n != unmapped && n < 0 {
		return 0, fmt.Errorf("%w: reference sequence id %d out of range", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readReadLength() (int, error) {
	encoding := r.header.DataSeriesEncodings().ReadLengths
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesReadLengths}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: read length %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readAlignmentStart() (int, error) {
	encoding := r.header.DataSeriesEncodings().AlignmentStarts
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesAlignmentStarts}
	}

	raw, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	alignmentStart := int(raw)
	if r.header.PreservationMap().AlignmentStartsAreDeltas() {
		alignmentStart += r.prevAlignmentStart
	}

	if alignmentStart <= 0 {
		return 0, fmt.Errorf("%w: alignment start %d is not a valid 1-based position", ErrInvalidData, alignmentStart)
	}

	return alignmentStart, nil
}

func (r *Reader) readReadGroupID() (int, error) {
	// -1 means no read group.
	const missing = -1

	encoding := r.header.DataSeriesEncodings().ReadGroupIds
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesReadGroupIds}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n != missing && n < 0 {
		return 0, fmt.Errorf("%w: read group id %d out of range", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readNames(rec *record.Record) error {
	// Missing read names are generated when resolving mates, outside this
	// engine.
	if !r.header.PreservationMap().RecordsHaveNames() {
		return nil
	}

	name, err := r.readName()
	if err != nil {
		return err
	}

	rec.Name = name

	return nil
}

func (r *Reader) readName() ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().Names
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesNames}
	}

	buf, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(buf, nameMissing) {
		return nil, nil
	}

	return buf, nil
}

func (r *Reader) readMate(rec *record.Record) error {
	if rec.CramFlags.IsDetached() {
		mateFlags, err := r.readMateFlags()
		if err != nil {
			return err
		}

		rec.MateFlags = mateFlags

		if mateFlags.IsOnNegativeStrand() {
			rec.Flags |= record.FlagMateReverseComplemented
		}

		if mateFlags.IsUnmapped() {
			rec.Flags |= record.FlagMateUnmapped
		}

		if !r.header.PreservationMap().RecordsHaveNames() {
			if rec.Name, err = r.readName(); err != nil {
				return err
			}
		}

		if rec.MateReferenceSequenceID, err = r.readMateReferenceSequenceID(); err != nil {
			return err
		}

		if rec.MateAlignmentStart, err = r.readMateAlignmentStart(); err != nil {
			return err
		}

		if rec.TemplateLength, err = r.readTemplateLength(); err != nil {
			return err
		}

		return nil
	}

	if rec.CramFlags.MateIsDownstream() {
		distance, err := r.readMateDistance()
		if err != nil {
			return err
		}

		rec.MateDistance = distance
	}

	return nil
}

func (r *Reader) readMateFlags() (record.MateFlags, error) {
	encoding := r.header.DataSeriesEncodings().MateFlags
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesMateFlags}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 || n > 0xff {
		return 0, fmt.Errorf("%w: mate flags %d out of range", ErrInvalidData, n)
	}

	return record.MateFlags(n), nil
}

func (r *Reader) readMateReferenceSequenceID() (int, error) {
	const unmapped = -1

	encoding := r.header.DataSeriesEncodings().MateReferenceSequenceIds
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesMateReferenceSequenceIds}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n != unmapped && n < 0 {
		return 0, fmt.Errorf("%w: mate reference sequence id %d out of range", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readMateAlignmentStart() (int, error) {
	encoding := r.header.DataSeriesEncodings().MateAlignmentStarts
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesMateAlignmentStarts}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	// 0 means the mate has no alignment start.
	if n < 0 {
		return 0, fmt.Errorf("%w: mate alignment start %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readTemplateLength() (int32, error) {
	encoding := r.header.DataSeriesEncodings().TemplateLengths
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesTemplateLengths}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readMateDistance() (int, error) {
	encoding := r.header.DataSeriesEncodings().MateDistances
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesMateDistances}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: mate distance %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readTags(rec *record.Record) error {
	tagSetID, err := r.readTagSetID()
	if err != nil {
		return err
	}

	tagSet, ok := r.header.PreservationMap().TagSet(tagSetID)
	if !ok {
		return MissingTagSetError{ID: tagSetID}
	}

	for _, key := range tagSet {
		contentID := container.ContentID(key)

		encoding, ok := r.header.TagEncoding(contentID)
		if !ok {
			return MissingTagEncodingError{Key: key}
		}

		src, err := encoding.Decode(r.core, r.external)
		if err != nil {
			return err
		}

		value, err := readValue(src, key.Type)
		if err != nil {
			return fmt.Errorf("tag %s: %w", key, err)
		}

		rec.Tags = append(rec.Tags, record.Tag{Key: key, Value: value})
	}

	return nil
}

func (r *Reader) readTagSetID() (int, error) {
	encoding := r.header.DataSeriesEncodings().TagSetIds
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesTagSetIds}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: tag set id %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readMappedRead(rec *record.Record) error {
	featureCount, err := r.readFeatureCount()
	if err != nil {
		return err
	}

	// Feature deltas accumulate 0-based; reported positions are 1-based.
	prevPosition := 0

	for i := 0; i < featureCount; i++ {
		feature, err := r.readFeature(prevPosition)
		if err != nil {
			return err
		}

		prevPosition = feature.Position - 1
		rec.Features = append(rec.Features, feature)
	}

	mappingQuality, err := r.readMappingQuality()
	if err != nil {
		return err
	}

	rec.MappingQuality = mappingQuality

	if rec.CramFlags.QualityScoresStoredAsArray() {
		if rec.QualityScores, err = r.readQualityScores(rec.ReadLength); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) readFeatureCount() (int, error) {
	encoding := r.header.DataSeriesEncodings().FeatureCounts
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesFeatureCounts}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: feature count %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readFeature(prevPosition int) (record.Feature, error) {
	code, err := r.readFeatureCode()
	if err != nil {
		return record.Feature{}, err
	}

	delta, err := r.readFeaturePositionDelta()
	if err != nil {
		return record.Feature{}, err
	}

	feature := record.Feature{
		Code:     code,
		Position: prevPosition + delta + 1,
	}

	switch code {
	case record.FeatureBases:
		feature.Bases, err = r.readStretchesOfBases()
	case record.FeatureScores:
		feature.Scores, err = r.readStretchesOfQualityScores()
	case record.FeatureReadBase:
		if feature.Base, err = r.readBase(); err != nil {
			return record.Feature{}, err
		}

		feature.QualityScore, err = r.readQualityScore()
	case record.FeatureSubstitution:
		feature.SubstitutionCode, err = r.readBaseSubstitutionCode()
	case record.FeatureInsertion:
		feature.Bases, err = r.readInsertionBases()
	case record.FeatureDeletion:
		feature.Length, err = r.readLength(r.header.DataSeriesEncodings().DeletionLengths, container.DataSeriesDeletionLengths)
	case record.FeatureInsertBase:
		feature.Base, err = r.readBase()
	case record.FeatureQualityScore:
		feature.QualityScore, err = r.readQualityScore()
	case record.FeatureReferenceSkip:
		feature.Length, err = r.readLength(r.header.DataSeriesEncodings().ReferenceSkipLengths, container.DataSeriesReferenceSkipLengths)
	case record.FeatureSoftClip:
		feature.Bases, err = r.readSoftClipBases()
	case record.FeaturePadding:
		feature.Length, err = r.readLength(r.header.DataSeriesEncodings().PaddingLengths, container.DataSeriesPaddingLengths)
	case record.FeatureHardClip:
		feature.Length, err = r.readLength(r.header.DataSeriesEncodings().HardClipLengths, container.DataSeriesHardClipLengths)
	}

	if err != nil {
		return record.Feature{}, err
	}

	return feature, nil
}

func (r *Reader) readFeatureCode() (record.FeatureCode, error) {
	encoding := r.header.DataSeriesEncodings().FeatureCodes
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesFeatureCodes}
	}

	b, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	code, err := record.FeatureCodeFromByte(b)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	return code, nil
}

func (r *Reader) readFeaturePositionDelta() (int, error) {
	encoding := r.header.DataSeriesEncodings().FeaturePositionDeltas
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesFeaturePositionDeltas}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: feature position delta %d is negative", ErrInvalidData, n)
	}

	return int(n), nil
}

func (r *Reader) readStretchesOfBases() ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().StretchesOfBases
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesStretchesOfBases}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readStretchesOfQualityScores() ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().StretchesOfQualityScores
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesStretchesOfQualityScores}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readBase() (byte, error) {
	encoding := r.header.DataSeriesEncodings().Bases
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesBases}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readQualityScore() (byte, error) {
	encoding := r.header.DataSeriesEncodings().QualityScores
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesQualityScores}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readBaseSubstitutionCode() (byte, error) {
	encoding := r.header.DataSeriesEncodings().BaseSubstitutionCodes
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesBaseSubstitutionCodes}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readInsertionBases() ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().InsertionBases
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesInsertionBases}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readSoftClipBases() ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().SoftClipBases
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesSoftClipBases}
	}

	return encoding.Decode(r.core, r.external)
}

func (r *Reader) readLength(encoding *codec.Integer, series container.DataSeries) (int, error) {
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: series}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %s length %d is negative", ErrInvalidData, series.Name(), n)
	}

	return int(n), nil
}

func (r *Reader) readMappingQuality() (uint8, error) {
	encoding := r.header.DataSeriesEncodings().MappingQualities
	if encoding == nil {
		return 0, MissingDataSeriesEncodingError{Series: container.DataSeriesMappingQualities}
	}

	n, err := encoding.Decode(r.core, r.external)
	if err != nil {
		return 0, err
	}

	if n < 0 || n > 0xff {
		return 0, fmt.Errorf("%w: mapping quality %d out of range", ErrInvalidData, n)
	}

	return uint8(n), nil
}

func (r *Reader) readUnmappedRead(rec *record.Record) error {
	sequence, err := r.readSequence(rec.ReadLength)
	if err != nil {
		return err
	}

	rec.Sequence = sequence

	if rec.CramFlags.QualityScoresStoredAsArray() {
		if rec.QualityScores, err = r.readQualityScores(rec.ReadLength); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) readSequence(readLength int) ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().Bases
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesBases}
	}

	return encoding.DecodeTake(r.core, r.external, readLength)
}

func (r *Reader) readQualityScores(readLength int) ([]byte, error) {
	encoding := r.header.DataSeriesEncodings().QualityScores
	if encoding == nil {
		return nil, MissingDataSeriesEncodingError{Series: container.DataSeriesQualityScores}
	}

	src, err := encoding.DecodeTake(r.core, r.external, readLength)
	if err != nil {
		return nil, err
	}

	// A buffer of all-0xff sentinels means the scores are absent, which is
	// distinct from genuinely decoded 0xff-free scores.
	for _, n := range src {
		if n != qualityScoreMissing {
			return src, nil
		}
	}

	return nil, nil
}
