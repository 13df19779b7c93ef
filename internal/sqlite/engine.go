package sqlite

import (
	"context"
	"os"
	"strings"
)

// Engine is the statement façade: it owns an open database file and the
// schema read from it once at Open time, and answers the three commands
// this engine supports. Every method is synchronous and does no caching
// of its own beyond the one-time schema read; ctx is honoured for
// cancellation/deadline propagation only, not for any concurrency this
// engine introduces.
type Engine struct {
	file      *os.File
	header    DbHeader
	schema    []SchemaRow
	formatter Formatter
}

// Open opens path, parses its database header, and reads its schema
// table. The returned Engine owns the file and must be closed.
func Open(ctx context.Context, path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr("open", err, map[string]interface{}{"path": path})
	}

	headerBuf := make([]byte, HeaderSize)
	if _, err := f.ReadAt(headerBuf, 0); err != nil {
		f.Close()
		return nil, wrapErr("read_header", err, map[string]interface{}{"path": path})
	}
	hdr, err := ParseHeader(headerBuf)
	if err != nil {
		f.Close()
		return nil, err
	}

	page1 := make([]byte, hdr.PageSize)
	if _, err := f.ReadAt(page1, 0); err != nil {
		f.Close()
		return nil, wrapErr("read_page1", err, map[string]interface{}{"path": path})
	}
	schema, err := ReadSchema(page1)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		f.Close()
		return nil, err
	}

	return &Engine{file: f, header: hdr, schema: schema, formatter: NewConsoleFormatter()}, nil
}

// Close releases the underlying file.
func (e *Engine) Close() error {
	return e.file.Close()
}

// DBInfo answers the .dbinfo command: the page size and the number of
// schema rows (every row surviving the sqlite_sequence filter, not just
// rows of type "table").
func (e *Engine) DBInfo(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.formatter.FormatDBInfo(DBInfo{PageSize: e.header.PageSize, TableCount: len(e.schema)}), nil
}

// Tables answers the .tables command: every schema row's name, space
// separated.
func (e *Engine) Tables(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	names := make([]string, 0, len(e.schema))
	for _, s := range e.schema {
		names = append(names, s.Name)
	}
	return e.formatter.FormatTableNames(names), nil
}

// Select answers a restricted SELECT statement against a user table.
func (e *Engine) Select(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ps, err := ParseSelect(query)
	if err != nil {
		return "", err
	}

	row := e.findTable(ps.Table)
	if row == nil {
		return "", wrapErr("select", ErrUnknownTable, map[string]interface{}{"table": ps.Table})
	}

	pct, err := ParseCreateTable(row.SQL)
	if err != nil {
		return "", err
	}

	buf, err := e.readPage(int(row.RootPage))
	if err != nil {
		return "", err
	}
	page, err := DecodePage(buf, 0)
	if err != nil {
		return "", err
	}

	result, err := evaluate(ps, pct, page.Records)
	if err != nil {
		return "", err
	}
	return e.formatter.FormatResult(result), nil
}

func (e *Engine) findTable(name string) *SchemaRow {
	for i := range e.schema {
		if e.schema[i].Type == "table" && strings.EqualFold(e.schema[i].Name, name) {
			return &e.schema[i]
		}
	}
	return nil
}

func (e *Engine) readPage(pageNum int) ([]byte, error) {
	buf := make([]byte, e.header.PageSize)
	off := int64(pageNum-1) * int64(e.header.PageSize)
	if _, err := e.file.ReadAt(buf, off); err != nil {
		return nil, wrapErr("read_page", err, map[string]interface{}{"page": pageNum})
	}
	return buf, nil
}
