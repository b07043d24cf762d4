// FilePath: internal/query/builder.go
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrosense/hub/internal/models"
)

// tableSpec describes one whitelisted table. The whitelist is the primary
// injection defense: identifiers can never be bound as values, so only
// names that appear here (or come from schema introspection) reach the SQL
// text.
type tableSpec struct {
	Name string
	// From is the FROM clause, including joins for enriched tables.
	From string
	// Columns maps output column names to trusted SQL expressions. A nil
	// map means the columns are introspected from information_schema.
	Columns map[string]string
	// ColumnOrder fixes the select-list order for enriched tables.
	ColumnOrder []string
}

// tables is the fixed whitelist. informacoes is enriched with the sensor
// description and grupo name because its raw foreign keys mean nothing to
// the consumer; filter and sort run over the joined column set.
var tables = map[string]tableSpec{
	"informacoes": {
		Name: "informacoes",
		From: `FROM informacoes i
			JOIN sensor s ON s.id = i.sensor
			JOIN grupo g ON g.id = i.grupo`,
		ColumnOrder: []string{
			"id", "sensor", "sensor_descricao", "sensor_tipo", "valor",
			"grupo", "grupo_nome", "data_registro", "dispositivo",
		},
		Columns: map[string]string{
			"id":               "i.id",
			"sensor":           "i.sensor",
			"sensor_descricao": "s.descricao",
			"sensor_tipo":      "s.tipo",
			"valor":            "i.valor",
			"grupo":            "i.grupo",
			"grupo_nome":       "g.nome",
			"data_registro":    "i.data_registro",
			"dispositivo":      "i.dispositivo",
		},
	},
	"sensor": {Name: "sensor", From: `FROM "sensor"`},
	"grupo":  {Name: "grupo", From: `FROM "grupo"`},
}

// AllowedTables returns the whitelist, sorted, for validation error details.
func AllowedTables() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupTable(name string) (tableSpec, bool) {
	spec, ok := tables[name]
	return spec, ok
}

// quoteIdent renders a trusted identifier as a double-quoted SQL name.
// Embedded quotes are doubled; the input must already come from the
// whitelist or from schema introspection, never from the request.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// normalizeSortOrder maps anything that is not DESC onto ASC.
func normalizeSortOrder(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "DESC") {
		return "DESC"
	}
	return "ASC"
}

// builtQuery carries the parameterized data and count statements for one
// browse request. Both share the same filter predicate and argument.
type builtQuery struct {
	DataSQL   string
	DataArgs  []interface{}
	CountSQL  string
	CountArgs []interface{}
	SortBy    string
	SortOrder string
}

// filterDisjunction builds `(CAST(e1 AS TEXT) ILIKE $n OR ...)` across
// every trusted expression. The pattern is one bound parameter reused for
// each disjunct.
func filterDisjunction(exprs []string, argPos int) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = fmt.Sprintf("CAST(%s AS TEXT) ILIKE $%d", expr, argPos)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// build assembles the data and count statements. names is the trusted
// output-column order, exprs maps each name to its trusted expression. An
// unrecognized sortBy is dropped, not an error.
func build(spec tableSpec, names []string, exprs map[string]string, req models.TableRequest) builtQuery {
	selectParts := make([]string, len(names))
	filterExprs := make([]string, len(names))
	for i, name := range names {
		expr := exprs[name]
		filterExprs[i] = expr
		if expr == quoteIdent(name) {
			selectParts[i] = expr
		} else {
			selectParts[i] = expr + " AS " + quoteIdent(name)
		}
	}

	where := ""
	args := []interface{}{}
	if req.Filter != "" {
		where = " WHERE " + filterDisjunction(filterExprs, 1)
		args = append(args, "%"+req.Filter+"%")
	}

	countSQL := "SELECT COUNT(*) " + spec.From + where
	countArgs := append([]interface{}{}, args...)

	sortBy := ""
	orderClause := ""
	sortOrder := normalizeSortOrder(req.SortOrder)
	if req.SortBy != "" {
		if expr, ok := exprs[req.SortBy]; ok {
			sortBy = req.SortBy
			orderClause = " ORDER BY " + expr + " " + sortOrder
		}
	}

	limitPos := len(args) + 1
	dataSQL := fmt.Sprintf("SELECT %s %s%s%s LIMIT $%d OFFSET $%d",
		strings.Join(selectParts, ", "), spec.From, where, orderClause,
		limitPos, limitPos+1)
	dataArgs := append(args, req.PageSize, (req.Page-1)*req.PageSize)

	return builtQuery{
		DataSQL:   dataSQL,
		DataArgs:  dataArgs,
		CountSQL:  countSQL,
		CountArgs: countArgs,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}
