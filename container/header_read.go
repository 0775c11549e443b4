package container

import (
	"fmt"

	"github.com/hallam/cram/codec"
	"github.com/hallam/cram/record"
)

// Preservation map keys.
const (
	preservationKeyReadNames          = "RN"
	preservationKeyAPDelta            = "AP"
	preservationKeyReferenceRequired  = "RR"
	preservationKeySubstitutionMatrix = "SM"
	preservationKeyTagSets            = "TD"
)

// ReadCompressionHeader parses a compression header from the decompressed
// payload of a container's compression header block: the preservation map,
// the data series encoding map, and the tag encoding map, in that order.
func ReadCompressionHeader(src []byte) (*CompressionHeader, error) {
	cur := codec.NewExternalReader(src)

	preservationMap, err := readPreservationMap(cur)
	if err != nil {
		return nil, fmt.Errorf("preservation map: %w", err)
	}

	dataSeriesEncodings, err := readDataSeriesEncodings(cur)
	if err != nil {
		return nil, fmt.Errorf("data series encodings: %w", err)
	}

	tagEncodings, err := readTagEncodings(cur)
	if err != nil {
		return nil, fmt.Errorf("tag encodings: %w", err)
	}

	return NewCompressionHeader(preservationMap, dataSeriesEncodings, tagEncodings), nil
}

func readPreservationMap(cur *codec.ExternalReader) (*PreservationMap, error) {
	body, count, err := readMapFrame(cur)
	if err != nil {
		return nil, err
	}

	// Flag defaults are "preserved" per the format.
	var (
		recordsHaveNames          = true
		alignmentStartsAreDeltas  = true
		externalReferenceRequired = true
		substitutionMatrix        [SubstitutionMatrixLen]byte
		tagSets                   [][]record.TagKey
	)

	for i := int32(0); i < count; i++ {
		key, err := readMapKey(body)
		if err != nil {
			return nil, err
		}

		switch key {
		case preservationKeyReadNames:
			if recordsHaveNames, err = readBool(body); err != nil {
				return nil, err
			}
		case preservationKeyAPDelta:
			if alignmentStartsAreDeltas, err = readBool(body); err != nil {
				return nil, err
			}
		case preservationKeyReferenceRequired:
			if externalReferenceRequired, err = readBool(body); err != nil {
				return nil, err
			}
		case preservationKeySubstitutionMatrix:
			buf, err := body.Take(SubstitutionMatrixLen)
			if err != nil {
				return nil, err
			}

			copy(substitutionMatrix[:], buf)
		case preservationKeyTagSets:
			if tagSets, err = readTagSets(body); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid key: %q", key)
		}
	}

	return NewPreservationMap(
		recordsHaveNames,
		alignmentStartsAreDeltas,
		externalReferenceRequired,
		substitutionMatrix,
		tagSets,
	), nil
}

// readTagSets parses the tag dictionary: tag sets separated by NUL bytes,
// each set a run of 3-byte (tag, tag, type) entries. Set ids are positional.
func readTagSets(cur *codec.ExternalReader) ([][]record.TagKey, error) {
	n, err := codec.ReadITF8(cur)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("tag dictionary length %d is negative", n)
	}

	buf, err := cur.Take(int(n))
	if err != nil {
		return nil, err
	}

	var (
		tagSets [][]record.TagKey
		set     []record.TagKey
	)

	for len(buf) > 0 {
		if buf[0] == 0x00 {
			tagSets = append(tagSets, set)
			set = nil
			buf = buf[1:]

			continue
		}

		if len(buf) < 3 {
			return nil, fmt.Errorf("truncated tag set entry")
		}

		set = append(set, record.TagKey{Tag: [2]byte{buf[0], buf[1]}, Type: buf[2]})
		buf = buf[3:]
	}

	if set != nil {
		return nil, fmt.Errorf("unterminated tag set")
	}

	return tagSets, nil
}

func readDataSeriesEncodings(cur *codec.ExternalReader) (*DataSeriesEncodings, error) {
	body, count, err := readMapFrame(cur)
	if err != nil {
		return nil, err
	}

	encodings := &DataSeriesEncodings{}

	for i := int32(0); i < count; i++ {
		key, err := readMapKey(body)
		if err != nil {
			return nil, err
		}

		if err := readDataSeriesEncoding(body, DataSeries(key), encodings); err != nil {
			return nil, fmt.Errorf("series %s: %w", key, err)
		}
	}

	return encodings, nil
}

func readDataSeriesEncoding(body *codec.ExternalReader, series DataSeries, dst *DataSeriesEncodings) error {
	var err error

	switch series {
	case DataSeriesBamFlags:
		dst.BamFlags, err = codec.ReadIntegerEncoding(body)
	case DataSeriesCramFlags:
		dst.CramFlags, err = codec.ReadIntegerEncoding(body)
	case DataSeriesReferenceSequenceIds:
		dst.ReferenceSequenceIds, err = codec.ReadIntegerEncoding(body)
	case DataSeriesReadLengths:
		dst.ReadLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesAlignmentStarts:
		dst.AlignmentStarts, err = codec.ReadIntegerEncoding(body)
	case DataSeriesReadGroupIds:
		dst.ReadGroupIds, err = codec.ReadIntegerEncoding(body)
	case DataSeriesNames:
		dst.Names, err = codec.ReadByteArrayEncoding(body)
	case DataSeriesMateFlags:
		dst.MateFlags, err = codec.ReadIntegerEncoding(body)
	case DataSeriesMateReferenceSequenceIds:
		dst.MateReferenceSequenceIds, err = codec.ReadIntegerEncoding(body)
	case DataSeriesMateAlignmentStarts:
		dst.MateAlignmentStarts, err = codec.ReadIntegerEncoding(body)
	case DataSeriesTemplateLengths:
		dst.TemplateLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesMateDistances:
		dst.MateDistances, err = codec.ReadIntegerEncoding(body)
	case DataSeriesTagSetIds:
		dst.TagSetIds, err = codec.ReadIntegerEncoding(body)
	case DataSeriesFeatureCounts:
		dst.FeatureCounts, err = codec.ReadIntegerEncoding(body)
	case DataSeriesFeatureCodes:
		dst.FeatureCodes, err = codec.ReadByteEncoding(body)
	case DataSeriesFeaturePositionDeltas:
		dst.FeaturePositionDeltas, err = codec.ReadIntegerEncoding(body)
	case DataSeriesDeletionLengths:
		dst.DeletionLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesStretchesOfBases:
		dst.StretchesOfBases, err = codec.ReadByteArrayEncoding(body)
	case DataSeriesStretchesOfQualityScores:
		dst.StretchesOfQualityScores, err = codec.ReadByteArrayEncoding(body)
	case DataSeriesBaseSubstitutionCodes:
		dst.BaseSubstitutionCodes, err = codec.ReadByteEncoding(body)
	case DataSeriesInsertionBases:
		dst.InsertionBases, err = codec.ReadByteArrayEncoding(body)
	case DataSeriesReferenceSkipLengths:
		dst.ReferenceSkipLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesPaddingLengths:
		dst.PaddingLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesHardClipLengths:
		dst.HardClipLengths, err = codec.ReadIntegerEncoding(body)
	case DataSeriesSoftClipBases:
		dst.SoftClipBases, err = codec.ReadByteArrayEncoding(body)
	case DataSeriesMappingQualities:
		dst.MappingQualities, err = codec.ReadIntegerEncoding(body)
	case DataSeriesBases:
		dst.Bases, err = codec.ReadByteEncoding(body)
	case DataSeriesQualityScores:
		dst.QualityScores, err = codec.ReadByteEncoding(body)
	default:
		// Legacy keys (e.g. the CRAM 1.0 TC/TN series) are self-framed and
		// skipped.
		err = skipEncoding(body)
	}

	return err
}

func readTagEncodings(cur *codec.ExternalReader) (map[int32]*codec.ByteArray, error) {
	body, count, err := readMapFrame(cur)
	if err != nil {
		return nil, err
	}

	encodings := make(map[int32]*codec.ByteArray, count)

	for i := int32(0); i < count; i++ {
		contentID, err := codec.ReadITF8(body)
		if err != nil {
			return nil, err
		}

		encoding, err := codec.ReadByteArrayEncoding(body)
		if err != nil {
			return nil, fmt.Errorf("content id %d: %w", contentID, err)
		}

		encodings[contentID] = encoding
	}

	return encodings, nil
}

// readMapFrame reads the byte-size/entry-count prelude shared by the three
// header maps and returns a cursor bounded to the map body.
func readMapFrame(cur *codec.ExternalReader) (*codec.ExternalReader, int32, error) {
	size, err := codec.ReadITF8(cur)
	if err != nil {
		return nil, 0, err
	}

	if size < 0 {
		return nil, 0, fmt.Errorf("map size %d is negative", size)
	}

	buf, err := cur.Take(int(size))
	if err != nil {
		return nil, 0, err
	}

	body := codec.NewExternalReader(buf)

	count, err := codec.ReadITF8(body)
	if err != nil {
		return nil, 0, err
	}

	if count < 0 {
		return nil, 0, fmt.Errorf("entry count %d is negative", count)
	}

	return body, count, nil
}

func readMapKey(cur *codec.ExternalReader) (string, error) {
	buf, err := cur.Take(2)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

func readBool(cur *codec.ExternalReader) (bool, error) {
	b, err := cur.ReadByte()
	if err != nil {
		return false, err
	}

	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool byte: 0x%02x", b)
	}
}

// skipEncoding consumes one self-framed encoding descriptor without
// interpreting it.
func skipEncoding(cur *codec.ExternalReader) error {
	if _, err := codec.ReadITF8(cur); err != nil { // codec id
		return err
	}

	n, err := codec.ReadITF8(cur)
	if err != nil {
		return err
	}

	if n < 0 {
		return fmt.Errorf("encoding parameter length %d is negative", n)
	}

	_, err = cur.Take(int(n))

	return err
}
