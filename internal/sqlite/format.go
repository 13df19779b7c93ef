package sqlite

import (
	"fmt"
	"strings"
)

// DBInfo is the payload of the .dbinfo command.
type DBInfo struct {
	PageSize   uint32
	TableCount int
}

// Formatter renders query/command results as text. It is a separate
// concern from the evaluator so that a caller can plug in a different
// rendering (only ConsoleFormatter is provided here, matching this
// engine's single CLI consumer).
type Formatter interface {
	FormatResult(r Result) string
	FormatTableNames(names []string) string
	FormatDBInfo(info DBInfo) string
}

// ConsoleFormatter renders results the way the CLI prints them: a header
// line of the projected column names, then rows pipe-delimited one per
// line, or a bare integer for COUNT results.
type ConsoleFormatter struct{}

func NewConsoleFormatter() *ConsoleFormatter { return &ConsoleFormatter{} }

func (f *ConsoleFormatter) FormatResult(r Result) string {
	if r.Count != nil {
		return fmt.Sprintf("%d", *r.Count)
	}
	lines := make([]string, 0, len(r.Rows)+1)
	lines = append(lines, strings.Join(r.Header, "|"))
	for _, row := range r.Rows {
		lines = append(lines, strings.Join(row, "|"))
	}
	return strings.Join(lines, "\n")
}

func (f *ConsoleFormatter) FormatTableNames(names []string) string {
	return strings.Join(names, " ")
}

func (f *ConsoleFormatter) FormatDBInfo(info DBInfo) string {
	return fmt.Sprintf("database page size: %d\nnumber of tables: %d", info.PageSize, info.TableCount)
}
