// Package slice implements the CRAM record reconstruction engine: given a
// compression header, a slice's core bit stream, and its external byte
// streams, it decodes one alignment record at a time.
//
// Decoding a slice is inherently serial: alignment starts may be
// delta-encoded against the previous record and mate distances count
// downstream records, so the engine carries explicit cross-record state (the
// previous resolved alignment start and the running record id). Independent
// slices may be decoded concurrently, each with its own Reader, against one
// shared read-only compression header.
package slice

import (
	"errors"
	"fmt"

	"github.com/hallam/cram/container"
	"github.com/hallam/cram/record"
)

// ErrInvalidData is wrapped by errors reporting range or narrowing
// violations and malformed enumerated codes.
var ErrInvalidData = errors.New("invalid data")

// MissingDataSeriesEncodingError is returned when the compression header
// lacks an encoding for a data series the current record's shape requires.
type MissingDataSeriesEncodingError struct {
	Series container.DataSeries
}

func (e MissingDataSeriesEncodingError) Error() string {
	return fmt.Sprintf("missing data series encoding: %s", e.Series.Name())
}

// MissingTagSetError is returned when a record references a tag set id
// absent from the preservation map's tag dictionary.
type MissingTagSetError struct {
	ID int
}

func (e MissingTagSetError) Error() string {
	return fmt.Sprintf("missing tag set: %d", e.ID)
}

// MissingTagEncodingError is returned when the compression header lacks an
// encoding for a tag key named by the record's tag set.
type MissingTagEncodingError struct {
	Key record.TagKey
}

func (e MissingTagEncodingError) Error() string {
	return fmt.Sprintf("missing tag encoding: %s", e.Key)
}
