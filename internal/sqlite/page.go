package sqlite

import "encoding/binary"

// PageKind is the one-byte type tag at the start of every B-tree page.
type PageKind uint8

const (
	KindInteriorIndex PageKind = 0x02
	KindInteriorTable PageKind = 0x05
	KindLeafIndex     PageKind = 0x0A
	KindLeafTable     PageKind = 0x0D
)

func (k PageKind) String() string {
	switch k {
	case KindInteriorIndex:
		return "interior index"
	case KindInteriorTable:
		return "interior table"
	case KindLeafIndex:
		return "leaf index"
	case KindLeafTable:
		return "leaf table"
	default:
		return "unknown"
	}
}

// Page is a decoded B-tree page. Records is populated only for leaf
// table pages; interior pages are recognised (so a caller gets a clean
// empty Page instead of a MalformedPage error) but never traversed, since
// multi-page B-tree walking is out of scope.
type Page struct {
	Kind      PageKind
	CellCount uint16
	Records   []Record
}

// DecodePage decodes one page out of buf, where headerOffset is the
// number of leading bytes to skip (100 for page 1, which carries the
// database header before its page header; 0 for every other page).
//
// Each cell's offset is read directly from the cell-pointer array
// rather than by rewinding a shared cursor after each cell is read, so
// decoding one cell never depends on having decoded the ones before it.
// Cell offsets count from the start of buf (the start of the page), so
// on page 1 they include the database header.
func DecodePage(buf []byte, headerOffset int) (*Page, error) {
	b := buf[headerOffset:]
	if len(b) < 8 {
		return nil, wrapErr("decode_page", ErrMalformedPage, map[string]interface{}{
			"reason": "page too short for a page header",
		})
	}

	kind := PageKind(b[0])
	var pageHeaderSize int
	switch kind {
	case KindLeafTable, KindLeafIndex:
		pageHeaderSize = 8
	case KindInteriorTable, KindInteriorIndex:
		pageHeaderSize = 12
	default:
		return nil, wrapErr("decode_page", ErrMalformedPage, map[string]interface{}{
			"byte": b[0],
		})
	}

	cellCount := binary.BigEndian.Uint16(b[3:5])
	page := &Page{Kind: kind, CellCount: cellCount}

	if kind == KindInteriorTable || kind == KindInteriorIndex {
		return page, nil
	}

	page.Records = make([]Record, 0, cellCount)
	for i := 0; i < int(cellCount); i++ {
		ptrOffset := pageHeaderSize + i*2
		if ptrOffset+2 > len(b) {
			return nil, wrapErr("decode_page", ErrMalformedPage, map[string]interface{}{
				"cell_index": i, "reason": "cell pointer array truncated",
			})
		}
		cellOffset := int(binary.BigEndian.Uint16(b[ptrOffset : ptrOffset+2]))
		if cellOffset <= 0 || cellOffset >= len(buf) {
			return nil, wrapErr("decode_page", ErrMalformedPage, map[string]interface{}{
				"cell_index": i, "cell_offset": cellOffset,
			})
		}

		rec, err := decodeCell(kind, buf[cellOffset:])
		if err != nil {
			return nil, err
		}
		page.Records = append(page.Records, rec)
	}

	return page, nil
}

func decodeCell(kind PageKind, data []byte) (Record, error) {
	if kind != KindLeafTable {
		return Record{}, wrapErr("decode_cell", ErrMalformedPage, map[string]interface{}{
			"reason": "only leaf table cells are supported", "kind": kind.String(),
		})
	}

	_, payloadVarintLen := ReadVarint(data, 0)
	rowid, rowidVarintLen := ReadVarint(data, payloadVarintLen)
	if payloadVarintLen == 0 || rowidVarintLen == 0 {
		return Record{}, wrapErr("decode_cell", ErrMalformedPage, map[string]interface{}{
			"reason": "truncated cell header",
		})
	}

	payload := data[payloadVarintLen+rowidVarintLen:]
	return decodeRecord(int64(rowid), payload)
}
