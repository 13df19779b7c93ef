package sqlite

import (
	"strings"

	"github.com/xwb1989/sqlparser"
)

// ParsedSelect is the restricted SELECT statement this engine evaluates:
// either a flat list of column names (or "*"), or a single COUNT
// aggregate, over exactly one table with no WHERE/JOIN/ORDER BY/GROUP BY.
type ParsedSelect struct {
	Table       string
	Columns     []string
	Count       bool
	CountColumn string // "" means COUNT(*)
}

// ParsedCreateTable is the restricted CREATE TABLE statement embedded in
// a schema row's SQL column: a table name and its column names, in
// declaration order. Declared column types are discarded, matching the
// reference grammar this engine's SELECT evaluator was built against.
type ParsedCreateTable struct {
	Table   string
	Columns []string
}

// ParseSelect parses a SELECT statement using a full SQL grammar and
// validates that it falls within this engine's supported shape, returning
// ErrParse for anything outside it (a WHERE clause, a JOIN, more than one
// projection mixed with COUNT, and so on).
func ParseSelect(query string) (ParsedSelect, error) {
	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return ParsedSelect{}, wrapErr("parse_select", ErrParse, map[string]interface{}{
			"query": query, "cause": err.Error(),
		})
	}

	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return ParsedSelect{}, wrapErr("parse_select", ErrParse, map[string]interface{}{
			"query": query, "reason": "not a SELECT statement",
		})
	}
	if len(sel.From) != 1 || sel.Where != nil || len(sel.OrderBy) != 0 || len(sel.GroupBy) != 0 {
		return ParsedSelect{}, wrapErr("parse_select", ErrParse, map[string]interface{}{
			"query": query, "reason": "only a plain single-table projection is supported",
		})
	}

	tableExpr, ok := sel.From[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return ParsedSelect{}, wrapErr("parse_select", ErrParse, map[string]interface{}{"query": query})
	}
	tableName, ok := tableExpr.Expr.(sqlparser.TableName)
	if !ok {
		return ParsedSelect{}, wrapErr("parse_select", ErrParse, map[string]interface{}{"query": query})
	}

	ps := ParsedSelect{Table: tableName.Name.String()}
	for _, sexpr := range sel.SelectExprs {
		if err := ps.addProjection(sexpr); err != nil {
			return ParsedSelect{}, err
		}
	}
	return ps, nil
}

func (ps *ParsedSelect) addProjection(sexpr sqlparser.SelectExpr) error {
	switch e := sexpr.(type) {
	case *sqlparser.StarExpr:
		if ps.Count {
			return wrapErr("parse_select", ErrParse, map[string]interface{}{"reason": "count mixed with columns"})
		}
		ps.Columns = append(ps.Columns, "*")
		return nil
	case *sqlparser.AliasedExpr:
		switch expr := e.Expr.(type) {
		case *sqlparser.ColName:
			if ps.Count {
				return wrapErr("parse_select", ErrParse, map[string]interface{}{"reason": "count mixed with columns"})
			}
			ps.Columns = append(ps.Columns, expr.Name.String())
			return nil
		case *sqlparser.FuncExpr:
			if !strings.EqualFold(expr.Name.String(), "count") {
				return wrapErr("parse_select", ErrParse, map[string]interface{}{"func": expr.Name.String()})
			}
			if ps.Count || len(ps.Columns) != 0 {
				return wrapErr("parse_select", ErrParse, map[string]interface{}{"reason": "count mixed with columns"})
			}
			ps.Count = true
			if len(expr.Exprs) == 1 {
				if ae, ok := expr.Exprs[0].(*sqlparser.AliasedExpr); ok {
					if col, ok := ae.Expr.(*sqlparser.ColName); ok {
						ps.CountColumn = col.Name.String()
					}
				}
			}
			return nil
		}
	}
	return wrapErr("parse_select", ErrParse, map[string]interface{}{"reason": "unsupported projection"})
}

// ParseCreateTable parses the CREATE TABLE statement stored in a schema
// row's SQL column. A handful of SQLite-only constructs (notably
// "PRIMARY KEY AUTOINCREMENT") don't parse under the MySQL-flavoured
// grammar this engine reuses, so they are rewritten to an equivalent
// MySQL spelling first.
func ParseCreateTable(sql string) (ParsedCreateTable, error) {
	stmt, err := sqlparser.Parse(normalizeSQLiteDDL(sql))
	if err != nil {
		return ParsedCreateTable{}, wrapErr("parse_create_table", ErrCorruptSchema, map[string]interface{}{
			"sql": sql, "cause": err.Error(),
		})
	}

	ddl, ok := stmt.(*sqlparser.DDL)
	if !ok || ddl.Action != "create" || ddl.TableSpec == nil {
		return ParsedCreateTable{}, wrapErr("parse_create_table", ErrCorruptSchema, map[string]interface{}{"sql": sql})
	}

	pct := ParsedCreateTable{Table: ddl.NewName.Name.String()}
	for _, col := range ddl.TableSpec.Columns {
		pct.Columns = append(pct.Columns, col.Name.String())
	}
	return pct, nil
}

func normalizeSQLiteDDL(sql string) string {
	replacer := strings.NewReplacer(
		"primary key autoincrement", "AUTO_INCREMENT PRIMARY KEY",
		"PRIMARY KEY AUTOINCREMENT", "AUTO_INCREMENT PRIMARY KEY",
		"Primary Key Autoincrement", "AUTO_INCREMENT PRIMARY KEY",
	)
	return replacer.Replace(sql)
}
