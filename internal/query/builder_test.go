package query

import (
	"context"
	"strings"
	"testing"

	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/models"
)

func TestBrowseRejectsUnknownTable(t *testing.T) {
	// A nil database proves the whitelist check fires before any SQL.
	runner := NewRunner(nil, nil, false)

	_, err := runner.Browse(context.Background(), models.TableRequest{TableName: "users"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	apiErr := err.(*errors.APIError)
	details, ok := apiErr.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("expected details map, got %T", apiErr.Details)
	}
	allowed, ok := details["allowed"].([]string)
	if !ok || len(allowed) != 3 {
		t.Errorf("expected the three allowed tables in details, got %v", details["allowed"])
	}
}

func TestBrowseRejectsNegativePagination(t *testing.T) {
	runner := NewRunner(nil, nil, false)

	_, err := runner.Browse(context.Background(), models.TableRequest{TableName: "sensor", Page: -1})
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("descricao"); got != `"descricao"` {
		t.Errorf("quoteIdent = %s", got)
	}
	if got := quoteIdent(`evil"name`); got != `"evil""name"` {
		t.Errorf("embedded quotes must be doubled, got %s", got)
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	cases := map[string]string{
		"DESC":     "DESC",
		"desc":     "DESC",
		" desc ":   "DESC",
		"ASC":      "ASC",
		"":         "ASC",
		"sideways": "ASC",
	}
	for in, want := range cases {
		if got := normalizeSortOrder(in); got != want {
			t.Errorf("normalizeSortOrder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterDisjunction(t *testing.T) {
	got := filterDisjunction([]string{`"id"`, `"nome"`}, 1)
	want := `(CAST("id" AS TEXT) ILIKE $1 OR CAST("nome" AS TEXT) ILIKE $1)`
	if got != want {
		t.Errorf("filterDisjunction = %s, want %s", got, want)
	}
}

func introspected(names ...string) ([]string, map[string]string) {
	exprs := map[string]string{}
	for _, n := range names {
		exprs[n] = quoteIdent(n)
	}
	return names, exprs
}

func TestBuildPlainTable(t *testing.T) {
	spec, _ := lookupTable("sensor")
	names, exprs := introspected("id", "descricao", "tipo")

	built := build(spec, names, exprs, models.TableRequest{
		TableName: "sensor",
		Page:      2,
		PageSize:  10,
		Filter:    "galpao",
		SortBy:    "descricao",
		SortOrder: "desc",
	})

	if !strings.Contains(built.DataSQL, `ILIKE $1`) {
		t.Errorf("filter must be the first bound parameter: %s", built.DataSQL)
	}
	if !strings.Contains(built.DataSQL, `ORDER BY "descricao" DESC`) {
		t.Errorf("missing order clause: %s", built.DataSQL)
	}
	if !strings.Contains(built.DataSQL, "LIMIT $2 OFFSET $3") {
		t.Errorf("pagination must be bound: %s", built.DataSQL)
	}
	wantArgs := []interface{}{"%galpao%", 10, 10}
	if len(built.DataArgs) != 3 || built.DataArgs[0] != wantArgs[0] ||
		built.DataArgs[1] != wantArgs[1] || built.DataArgs[2] != wantArgs[2] {
		t.Errorf("data args = %v, want %v", built.DataArgs, wantArgs)
	}
	if len(built.CountArgs) != 1 || built.CountArgs[0] != "%galpao%" {
		t.Errorf("count args = %v", built.CountArgs)
	}
	if strings.Contains(built.CountSQL, "LIMIT") || strings.Contains(built.CountSQL, "ORDER BY") {
		t.Errorf("count query must have no pagination or ordering: %s", built.CountSQL)
	}
}

func TestBuildFilterStaysBound(t *testing.T) {
	spec, _ := lookupTable("sensor")
	names, exprs := introspected("id", "descricao")
	injection := `'; DROP TABLE sensor; --`

	built := build(spec, names, exprs, models.TableRequest{
		TableName: "sensor", Page: 1, PageSize: 10, Filter: injection,
	})

	if strings.Contains(built.DataSQL, "DROP TABLE") {
		t.Fatalf("filter text leaked into SQL: %s", built.DataSQL)
	}
	if built.DataArgs[0] != "%"+injection+"%" {
		t.Errorf("filter must travel as a bound pattern, got %v", built.DataArgs[0])
	}
}

func TestBuildSortFallback(t *testing.T) {
	spec, _ := lookupTable("grupo")
	names, exprs := introspected("id", "nome")

	built := build(spec, names, exprs, models.TableRequest{
		TableName: "grupo", Page: 1, PageSize: 10, SortBy: "nonexistent_column",
	})

	if strings.Contains(built.DataSQL, "ORDER BY") {
		t.Errorf("unknown sort column must be dropped: %s", built.DataSQL)
	}
	if built.SortBy != "" {
		t.Errorf("meta must report the dropped sort, got %q", built.SortBy)
	}
	if built.SortOrder != "ASC" {
		t.Errorf("sort order defaults to ASC, got %q", built.SortOrder)
	}
}

func TestBuildInformacoesJoin(t *testing.T) {
	spec, ok := lookupTable("informacoes")
	if !ok {
		t.Fatal("informacoes must be whitelisted")
	}

	built := build(spec, spec.ColumnOrder, spec.Columns, models.TableRequest{
		TableName: "informacoes",
		Page:      1,
		PageSize:  25,
		Filter:    "galpao",
		SortBy:    "grupo_nome",
		SortOrder: "asc",
	})

	if !strings.Contains(built.DataSQL, `s.descricao AS "sensor_descricao"`) {
		t.Errorf("joined select must resolve the sensor description: %s", built.DataSQL)
	}
	if !strings.Contains(built.DataSQL, `g.nome AS "grupo_nome"`) {
		t.Errorf("joined select must resolve the grupo name: %s", built.DataSQL)
	}
	if !strings.Contains(built.DataSQL, "ORDER BY g.nome ASC") {
		t.Errorf("sort must use the trusted joined expression: %s", built.DataSQL)
	}
	if !strings.Contains(built.DataSQL, "CAST(s.descricao AS TEXT) ILIKE $1") {
		t.Errorf("filter must cover the resolved name columns: %s", built.DataSQL)
	}
	if !strings.Contains(built.CountSQL, "JOIN sensor s ON s.id = i.sensor") {
		t.Errorf("count query must share the joined FROM: %s", built.CountSQL)
	}
}

func TestBuildOffsetArithmetic(t *testing.T) {
	spec, _ := lookupTable("grupo")
	names, exprs := introspected("id", "nome")

	built := build(spec, names, exprs, models.TableRequest{
		TableName: "grupo", Page: 3, PageSize: 10,
	})

	// Page 3 at size 10 starts at row 21.
	if built.DataArgs[len(built.DataArgs)-1] != 20 {
		t.Errorf("offset = %v, want 20", built.DataArgs[len(built.DataArgs)-1])
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		rows     int64
		pageSize int
		want     int64
	}{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
	}
	for _, tc := range cases {
		if got := totalPages(tc.rows, tc.pageSize); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.rows, tc.pageSize, got, tc.want)
		}
	}
}

func TestAllowedTables(t *testing.T) {
	got := AllowedTables()
	want := []string{"grupo", "informacoes", "sensor"}
	if len(got) != len(want) {
		t.Fatalf("allowed tables = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("allowed tables = %v, want %v", got, want)
		}
	}
}
