package sqlite

// SchemaRow is one row of the sqlite_schema (sqlite_master) table: the
// catalogue of tables, indexes, views, and triggers defined in the file.
type SchemaRow struct {
	Type     string
	Name     string
	TblName  string
	RootPage int64
	SQL      string
}

// ReadSchema decodes page 1 and returns its rows as SchemaRow, with the
// internal sqlite_sequence bookkeeping table filtered out. page1 must be
// a full page-sized buffer starting at file offset 0 (it carries the
// 100-byte database header before its own page header).
func ReadSchema(page1 []byte) ([]SchemaRow, error) {
	page, err := DecodePage(page1, HeaderSize)
	if err != nil {
		return nil, wrapErr("read_schema", err, nil)
	}

	rows := make([]SchemaRow, 0, len(page.Records))
	for _, rec := range page.Records {
		row, ok := parseSchemaRow(rec)
		if !ok {
			return nil, wrapErr("read_schema", ErrCorruptSchema, map[string]interface{}{
				"rowid": rec.Rowid,
			})
		}
		if row.Name == "sqlite_sequence" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSchemaRow(r Record) (SchemaRow, bool) {
	if len(r.Values) < 5 {
		return SchemaRow{}, false
	}
	if r.Values[3].Kind != KindInt {
		return SchemaRow{}, false
	}
	return SchemaRow{
		Type:     r.Values[0].String(),
		Name:     r.Values[1].String(),
		TblName:  r.Values[2].String(),
		RootPage: r.Values[3].Int,
		SQL:      r.Values[4].String(),
	}, true
}
