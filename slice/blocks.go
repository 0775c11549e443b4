package slice

import (
	"fmt"

	"github.com/hallam/cram/codec"
	"github.com/hallam/cram/compress"
	"github.com/hallam/cram/container"
)

// NewExternalReaders decompresses a slice's external blocks and builds the
// content-id-keyed reader table the engine decodes against. Each block's
// payload is restored according to its declared compression method and
// checked against its declared uncompressed size.
func NewExternalReaders(blocks []container.Block) (*codec.ExternalDataReaders, error) {
	readers := codec.NewExternalDataReaders()

	for _, block := range blocks {
		data, err := compress.Decompress(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", block.ContentID, err)
		}

		if block.UncompressedLen > 0 && len(data) != block.UncompressedLen {
			return nil, fmt.Errorf("%w: block %d: decompressed size %d != declared %d",
				ErrInvalidData, block.ContentID, len(data), block.UncompressedLen)
		}

		readers.Insert(block.ContentID, data)
	}

	return readers, nil
}
