package sqlite

import "testing"

func TestConsoleFormatterResultRows(t *testing.T) {
	f := NewConsoleFormatter()
	res := Result{Header: []string{"name", "color"}, Rows: [][]string{
		{"Fuji", "Red"},
		{"Honeycrisp", ""},
	}}
	got := f.FormatResult(res)
	want := "name|color\nFuji|Red\nHoneycrisp|"
	if got != want {
		t.Errorf("FormatResult() = %q, want %q", got, want)
	}
}

func TestConsoleFormatterCount(t *testing.T) {
	f := NewConsoleFormatter()
	n := 3
	got := f.FormatResult(Result{Count: &n})
	if got != "3" {
		t.Errorf("FormatResult() count = %q, want %q", got, "3")
	}
}

func TestConsoleFormatterTableNames(t *testing.T) {
	f := NewConsoleFormatter()
	got := f.FormatTableNames([]string{"apples", "pears"})
	if got != "apples pears" {
		t.Errorf("FormatTableNames() = %q", got)
	}
}

func TestConsoleFormatterDBInfo(t *testing.T) {
	f := NewConsoleFormatter()
	got := f.FormatDBInfo(DBInfo{PageSize: 4096, TableCount: 2})
	want := "database page size: 4096\nnumber of tables: 2"
	if got != want {
		t.Errorf("FormatDBInfo() = %q, want %q", got, want)
	}
}
