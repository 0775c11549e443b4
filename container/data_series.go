package container

import "github.com/hallam/cram/codec"

// DataSeries names one per-record column of a slice. Each series is
// compressed uniformly across the slice by the Encoding registered for it
// in the compression header; the two-letter values are the format's
// external keys for the series.
type DataSeries string

const (
	// DataSeriesBamFlags is the BAM flag word (BF).
	DataSeriesBamFlags DataSeries = "BF"
	// DataSeriesCramFlags is the CRAM flag byte (CF).
	DataSeriesCramFlags DataSeries = "CF"
	// DataSeriesReferenceSequenceIds is the per-record reference id (RI).
	DataSeriesReferenceSequenceIds DataSeries = "RI"
	// DataSeriesReadLengths is the read length (RL).
	DataSeriesReadLengths DataSeries = "RL"
	// DataSeriesAlignmentStarts is the (possibly delta) alignment start (AP).
	DataSeriesAlignmentStarts DataSeries = "AP"
	// DataSeriesReadGroupIds is the read group id (RG).
	DataSeriesReadGroupIds DataSeries = "RG"
	// DataSeriesNames is the read name (RN).
	DataSeriesNames DataSeries = "RN"
	// DataSeriesMateFlags is the detached mate flag byte (MF).
	DataSeriesMateFlags DataSeries = "MF"
	// DataSeriesMateReferenceSequenceIds is the mate reference id (NS).
	DataSeriesMateReferenceSequenceIds DataSeries = "NS"
	// DataSeriesMateAlignmentStarts is the mate alignment start (NP).
	DataSeriesMateAlignmentStarts DataSeries = "NP"
	// DataSeriesTemplateLengths is the template length (TS).
	DataSeriesTemplateLengths DataSeries = "TS"
	// DataSeriesMateDistances is the downstream mate distance (NF).
	DataSeriesMateDistances DataSeries = "NF"
	// DataSeriesTagSetIds is the tag set id (TL).
	DataSeriesTagSetIds DataSeries = "TL"
	// DataSeriesFeatureCounts is the read feature count (FN).
	DataSeriesFeatureCounts DataSeries = "FN"
	// DataSeriesFeatureCodes is the read feature code (FC).
	DataSeriesFeatureCodes DataSeries = "FC"
	// DataSeriesFeaturePositionDeltas is the feature position delta (FP).
	DataSeriesFeaturePositionDeltas DataSeries = "FP"
	// DataSeriesDeletionLengths is the deletion length (DL).
	DataSeriesDeletionLengths DataSeries = "DL"
	// DataSeriesStretchesOfBases is a multi-base stretch (BB).
	DataSeriesStretchesOfBases DataSeries = "BB"
	// DataSeriesStretchesOfQualityScores is a multi-score stretch (QQ).
	DataSeriesStretchesOfQualityScores DataSeries = "QQ"
	// DataSeriesBaseSubstitutionCodes is the substitution code (BS).
	DataSeriesBaseSubstitutionCodes DataSeries = "BS"
	// DataSeriesInsertionBases is the insertion bases (IN).
	DataSeriesInsertionBases DataSeries = "IN"
	// DataSeriesReferenceSkipLengths is the reference skip length (RS).
	DataSeriesReferenceSkipLengths DataSeries = "RS"
	// DataSeriesPaddingLengths is the padding length (PD).
	DataSeriesPaddingLengths DataSeries = "PD"
	// DataSeriesHardClipLengths is the hard clip length (HC).
	DataSeriesHardClipLengths DataSeries = "HC"
	// DataSeriesSoftClipBases is the soft clip bases (SC).
	DataSeriesSoftClipBases DataSeries = "SC"
	// DataSeriesMappingQualities is the mapping quality (MQ).
	DataSeriesMappingQualities DataSeries = "MQ"
	// DataSeriesBases is a single base (BA).
	DataSeriesBases DataSeries = "BA"
	// DataSeriesQualityScores is a single quality score (QS).
	DataSeriesQualityScores DataSeries = "QS"
)

// Name returns the descriptive series name used in diagnostics.
func (s DataSeries) Name() string {
	switch s {
	case DataSeriesBamFlags:
		return "BamFlags"
	case DataSeriesCramFlags:
		return "CramFlags"
	case DataSeriesReferenceSequenceIds:
		return "ReferenceSequenceIds"
	case DataSeriesReadLengths:
		return "ReadLengths"
	case DataSeriesAlignmentStarts:
		return "AlignmentStarts"
	case DataSeriesReadGroupIds:
		return "ReadGroupIds"
	case DataSeriesNames:
		return "Names"
	case DataSeriesMateFlags:
		return "MateFlags"
	case DataSeriesMateReferenceSequenceIds:
		return "MateReferenceSequenceIds"
	case DataSeriesMateAlignmentStarts:
		return "MateAlignmentStarts"
	case DataSeriesTemplateLengths:
		return "TemplateLengths"
	case DataSeriesMateDistances:
		return "MateDistances"
	case DataSeriesTagSetIds:
		return "TagSetIds"
	case DataSeriesFeatureCounts:
		return "FeatureCounts"
	case DataSeriesFeatureCodes:
		return "FeatureCodes"
	case DataSeriesFeaturePositionDeltas:
		return "FeaturePositionDeltas"
	case DataSeriesDeletionLengths:
		return "DeletionLengths"
	case DataSeriesStretchesOfBases:
		return "StretchesOfBases"
	case DataSeriesStretchesOfQualityScores:
		return "StretchesOfQualityScores"
	case DataSeriesBaseSubstitutionCodes:
		return "BaseSubstitutionCodes"
	case DataSeriesInsertionBases:
		return "InsertionBases"
	case DataSeriesReferenceSkipLengths:
		return "ReferenceSkipLengths"
	case DataSeriesPaddingLengths:
		return "PaddingLengths"
	case DataSeriesHardClipLengths:
		return "HardClipLengths"
	case DataSeriesSoftClipBases:
		return "SoftClipBases"
	case DataSeriesMappingQualities:
		return "MappingQualities"
	case DataSeriesBases:
		return "Bases"
	case DataSeriesQualityScores:
		return "QualityScores"
	default:
		return "Unknown"
	}
}

// DataSeriesEncodings holds the per-series encodings declared by one
// compression header. A nil entry means the series was not encoded; whether
// that is fatal depends on the shape of the record being decoded.
type DataSeriesEncodings struct {
	BamFlags             *codec.Integer
	CramFlags            *codec.Integer
	ReferenceSequenceIds *codec.Integer
	ReadLengths          *codec.Integer
	AlignmentStarts      *codec.Integer
	ReadGroupIds         *codec.Integer

	Names *codec.ByteArray

	MateFlags                *codec.Integer
	MateReferenceSequenceIds *codec.Integer
	MateAlignmentStarts      *codec.Integer
	TemplateLengths          *codec.Integer
	MateDistances            *codec.Integer

	TagSetIds *codec.Integer

	FeatureCounts            *codec.Integer
	FeatureCodes             *codec.Byte
	FeaturePositionDeltas    *codec.Integer
	DeletionLengths          *codec.Integer
	StretchesOfBases         *codec.ByteArray
	StretchesOfQualityScores *codec.ByteArray
	BaseSubstitutionCodes    *codec.Byte
	InsertionBases           *codec.ByteArray
	ReferenceSkipLengths     *codec.Integer
	PaddingLengths           *codec.Integer
	HardClipLengths          *codec.Integer
	SoftClipBases            *codec.ByteArray

	MappingQualities *codec.Integer

	Bases         *codec.Byte
	QualityScores *codec.Byte
}
