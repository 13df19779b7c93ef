package sqlite

import "testing"

func applesFixture() (ParsedCreateTable, []Record) {
	pct := ParsedCreateTable{Table: "apples", Columns: []string{"id", "name", "color"}}
	records := []Record{
		{Rowid: 1, Values: []CellValue{
			{Kind: KindInt, Int: 1},
			{Kind: KindText, Bytes: []byte("Granny Smith")},
			{Kind: KindText, Bytes: []byte("Light Green")},
		}},
		{Rowid: 2, Values: []CellValue{
			{Kind: KindInt, Int: 2},
			{Kind: KindText, Bytes: []byte("Fuji")},
			{Kind: KindText, Bytes: []byte("Red")},
		}},
		{Rowid: 3, Values: []CellValue{
			{Kind: KindInt, Int: 3},
			{Kind: KindText, Bytes: []byte("Honeycrisp")},
			{Kind: KindNull},
		}},
	}
	return pct, records
}

func TestEvaluateSingleColumn(t *testing.T) {
	pct, records := applesFixture()
	res, err := evaluate(ParsedSelect{Table: "apples", Columns: []string{"name"}}, pct, records)
	if err != nil {
		t.Fatalf("evaluate() error: %v", err)
	}
	if len(res.Header) != 1 || res.Header[0] != "name" {
		t.Fatalf("evaluate() header = %v", res.Header)
	}
	if len(res.Rows) != 3 || res.Rows[0][0] != "Granny Smith" {
		t.Fatalf("evaluate() rows = %v", res.Rows)
	}
}

func TestEvaluateMultiColumn(t *testing.T) {
	pct, records := applesFixture()
	res, err := evaluate(ParsedSelect{Table: "apples", Columns: []string{"name", "color"}}, pct, records)
	if err != nil {
		t.Fatalf("evaluate() error: %v", err)
	}
	if res.Rows[2][1] != "" {
		t.Errorf("evaluate() NULL color = %q, want empty string", res.Rows[2][1])
	}
}

func TestEvaluateWildcard(t *testing.T) {
	pct, records := applesFixture()
	res, err := evaluate(ParsedSelect{Table: "apples", Columns: []string{"*"}}, pct, records)
	if err != nil {
		t.Fatalf("evaluate() error: %v", err)
	}
	if len(res.Header) != 3 || res.Header[0] != "id" || res.Header[2] != "color" {
		t.Fatalf("evaluate() wildcard header = %v, want all declared columns", res.Header)
	}
}

func TestEvaluateCountStar(t *testing.T) {
	pct, records := applesFixture()
	res, err := evaluate(ParsedSelect{Table: "apples", Count: true}, pct, records)
	if err != nil {
		t.Fatalf("evaluate() error: %v", err)
	}
	if res.Count == nil || *res.Count != 3 {
		t.Fatalf("evaluate() count = %v, want 3", res.Count)
	}
}

func TestEvaluateCountColumnExcludesNulls(t *testing.T) {
	pct, records := applesFixture()
	res, err := evaluate(ParsedSelect{Table: "apples", Count: true, CountColumn: "color"}, pct, records)
	if err != nil {
		t.Fatalf("evaluate() error: %v", err)
	}
	if res.Count == nil || *res.Count != 2 {
		t.Fatalf("evaluate() count(color) = %v, want 2 (one NULL excluded)", res.Count)
	}
}

func TestEvaluateUnknownColumnIsAnError(t *testing.T) {
	pct, records := applesFixture()
	if _, err := evaluate(ParsedSelect{Table: "apples", Columns: []string{"weight"}}, pct, records); err == nil {
		t.Fatal("evaluate() expected ErrParse for an unresolvable column")
	}
}
