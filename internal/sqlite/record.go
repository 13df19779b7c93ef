package sqlite

// Record is a decoded table B-tree leaf cell: a rowid plus its column
// values in schema order. NULLs are kept in place so that a value's
// index always matches its column's index in the table's schema.
type Record struct {
	Rowid  int64
	Values []CellValue
}

// decodeRecord parses a record (header + body) out of a cell's payload
// and attaches the rowid carried separately in the cell.
func decodeRecord(rowid int64, payload []byte) (Record, error) {
	headerSize, n := ReadVarint(payload, 0)
	if n == 0 {
		return Record{}, wrapErr("decode_record", ErrMalformedPage, map[string]interface{}{
			"reason": "truncated record header varint",
		})
	}

	var serialTypes []uint64
	offset := n
	for offset < int(headerSize) {
		st, m := ReadVarint(payload, offset)
		if m == 0 {
			return Record{}, wrapErr("decode_record", ErrMalformedPage, map[string]interface{}{
				"reason": "truncated serial type varint",
			})
		}
		serialTypes = append(serialTypes, st)
		offset += m
	}

	values := make([]CellValue, len(serialTypes))
	bodyOffset := int(headerSize)
	for i, st := range serialTypes {
		size := serialTypeSize(st)
		if bodyOffset+size > len(payload) {
			return Record{}, wrapErr("decode_record", ErrMalformedPage, map[string]interface{}{
				"reason": "payload shorter than declared column size",
			})
		}
		v, err := decodeValue(st, payload[bodyOffset:bodyOffset+size])
		if err != nil {
			return Record{}, err
		}
		values[i] = v
		bodyOffset += size
	}

	return Record{Rowid: rowid, Values: values}, nil
}
