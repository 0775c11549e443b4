package codec

import "io"

// ITF8 is CRAM's variable-length encoding for signed 32-bit integers. Like
// UTF-8, the number of leading one bits in the first byte selects the total
// length (1-5 bytes); the remaining bits of the first byte carry the most
// significant value bits. Negative values always take the 5-byte form.

// ReadITF8 reads one ITF8-encoded integer from src.
func ReadITF8(src io.ByteReader) (int32, error) {
	b0, err := readByteFull(src)
	if err != nil {
		return 0, err
	}

	if b0 < 0x80 {
		return int32(b0), nil
	}

	b1, err := readByteFull(src)
	if err != nil {
		return 0, err
	}

	if b0 < 0xc0 {
		return int32(b0&0x7f)<<8 | int32(b1), nil
	}

	b2, err := readByteFull(src)
	if err != nil {
		return 0, err
	}

	if b0 < 0xe0 {
		return int32(b0&0x3f)<<16 | int32(b1)<<8 | int32(b2), nil
	}

	b3, err := readByteFull(src)
	if err != nil {
		return 0, err
	}

	if b0 < 0xf0 {
		return int32(b0&0x1f)<<24 | int32(b1)<<16 | int32(b2)<<8 | int32(b3), nil
	}

	b4, err := readByteFull(src)
	if err != nil {
		return 0, err
	}

	value := uint32(b0&0x0f)<<28 |
		uint32(b1)<<20 |
		uint32(b2)<<12 |
		uint32(b3)<<4 |
		uint32(b4)&0x0f

	return int32(value), nil
}

// WriteITF8 writes value to dst in ITF8 form, using the shortest length that
// can represent it.
func WriteITF8(dst io.ByteWriter, value int32) error {
	u := uint32(value)

	switch {
	case u>>7 == 0:
		return dst.WriteByte(byte(u))
	case u>>14 == 0:
		return writeBytes(dst, byte(u>>8)|0x80, byte(u))
	case u>>21 == 0:
		return writeBytes(dst, byte(u>>16)|0xc0, byte(u>>8), byte(u))
	case u>>28 == 0:
		return writeBytes(dst, byte(u>>24)|0xe0, byte(u>>16), byte(u>>8), byte(u))
	default:
		return writeBytes(dst, byte(u>>28)|0xf0, byte(u>>20), byte(u>>12), byte(u>>4), byte(u&0x0f))
	}
}

func readByteFull(src io.ByteReader) (byte, error) {
	b, err := src.ReadByte()
	if err == io.EOF {
		return 0, io.ErrUnexpectedEOF
	}

	return b, err
}

func writeBytes(dst io.ByteWriter, bs ...byte) error {
	for _, b := range bs {
		if err := dst.WriteByte(b); err != nil {
			return err
		}
	}

	return nil
}
