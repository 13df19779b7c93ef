package sqlite

import "encoding/binary"

// HeaderSize is the fixed length of the SQLite database file header.
const HeaderSize = 100

// TextEncoding identifies the encoding of TEXT values stored in the file.
type TextEncoding uint32

const (
	EncodingUTF8    TextEncoding = 1
	EncodingUTF16LE TextEncoding = 2
	EncodingUTF16BE TextEncoding = 3
)

// DbHeader is the parsed form of the 100-byte database header.
type DbHeader struct {
	PageSize     uint32
	TextEncoding TextEncoding
}

// ParseHeader reads the page size and text encoding out of the first
// HeaderSize bytes of a database file. A page-size field of 1 means the
// real page size is 65536, the one case where the on-disk 16-bit field
// cannot represent the value directly.
func ParseHeader(buf []byte) (DbHeader, error) {
	if len(buf) < HeaderSize {
		return DbHeader{}, wrapErr("parse_header", ErrMalformedPage, map[string]interface{}{
			"have": len(buf), "need": HeaderSize,
		})
	}

	raw := binary.BigEndian.Uint16(buf[16:18])
	pageSize := uint32(raw)
	if raw == 1 {
		pageSize = 65536
	}

	enc := TextEncoding(binary.BigEndian.Uint32(buf[56:60]))
	switch enc {
	case EncodingUTF16LE, EncodingUTF16BE:
	default:
		enc = EncodingUTF8
	}

	return DbHeader{PageSize: pageSize, TextEncoding: enc}, nil
}
