// FilePath: internal/query/runner.go
package query

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/sync/errgroup"

	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/models"
	"github.com/agrosense/hub/internal/monitoring"
)

const defaultPageSize = 10

// columnIntrospectionSQL enumerates a table's columns. The table name is a
// bound value here; only the resulting names are ever spliced into SQL text.
const columnIntrospectionSQL = `
	SELECT column_name
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position`

// Runner executes browse requests against the relational source.
type Runner struct {
	db        database.DB
	monitor   *monitoring.Service
	exposeSQL bool
}

// NewRunner creates a Runner. exposeSQL controls whether failing query text
// is attached to QueryError details; keep it off in production.
func NewRunner(db database.DB, monitor *monitoring.Service, exposeSQL bool) *Runner {
	return &Runner{db: db, monitor: monitor, exposeSQL: exposeSQL}
}

// Browse validates the request, builds the paginated data query and the
// count query, runs both concurrently against the same predicate, and
// assembles the page. Validation failures never reach the source.
func (r *Runner) Browse(ctx context.Context, req models.TableRequest) (*models.TablePage, error) {
	spec, ok := lookupTable(req.TableName)
	if !ok {
		return nil, errors.NewValidationError("unknown table name", nil).
			WithDetails(map[string]interface{}{
				"tableName": req.TableName,
				"allowed":   AllowedTables(),
			})
	}

	if req.Page < 0 || req.PageSize < 0 {
		return nil, errors.NewValidationError("page and pageSize must be positive", nil)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	names, exprs, err := r.resolveColumns(ctx, spec)
	if err != nil {
		return nil, err
	}

	if req.SortBy != "" {
		if _, known := exprs[req.SortBy]; !known {
			nuts.L.Infof("[Query] Dropping unknown sort column %q for table %s", req.SortBy, spec.Name)
		}
	}

	built := build(spec, names, exprs, req)

	var (
		rows  []map[string]interface{}
		total int64
	)
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = r.fetchRows(gctx, built.DataSQL, built.DataArgs)
		return err
	})
	g.Go(func() error {
		if err := r.db.GetDB().GetContext(gctx, &total, built.CountSQL, built.CountArgs...); err != nil {
			return r.queryError("count query failed", built.CountSQL, err)
		}
		return nil
	})
	err = g.Wait()
	r.monitor.ObserveQuery("browse_"+spec.Name, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &models.TablePage{
		Data: rows,
		Meta: models.TableMeta{
			TotalRows:   total,
			TotalPages:  totalPages(total, req.PageSize),
			CurrentPage: req.Page,
			PageSize:    req.PageSize,
			TableName:   spec.Name,
			Filter:      req.Filter,
			SortBy:      built.SortBy,
			SortOrder:   built.SortOrder,
		},
	}, nil
}

// resolveColumns returns the trusted column order and expression map for a
// table: the fixed joined set for enriched tables, schema introspection for
// the rest.
func (r *Runner) resolveColumns(ctx context.Context, spec tableSpec) ([]string, map[string]string, error) {
	if spec.Columns != nil {
		return spec.ColumnOrder, spec.Columns, nil
	}

	names := []string{}
	err := r.db.GetDB().SelectContext(ctx, &names, columnIntrospectionSQL, spec.Name)
	if err != nil {
		return nil, nil, r.queryError("schema introspection failed", columnIntrospectionSQL, err)
	}
	if len(names) == 0 {
		return nil, nil, errors.NewQueryError("schema introspection returned no columns", nil).
			WithDetails(map[string]string{"tableName": spec.Name})
	}

	exprs := make(map[string]string, len(names))
	for _, name := range names {
		exprs[name] = quoteIdent(name)
	}
	return names, exprs, nil
}

func (r *Runner) fetchRows(ctx context.Context, sql string, args []interface{}) ([]map[string]interface{}, error) {
	rows, err := r.db.GetDB().QueryxContext(ctx, sql, args...)
	if err != nil {
		return nil, r.queryError("data query failed", sql, err)
	}
	defer rows.Close()

	out := []map[string]interface{}{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, r.queryError("row scan failed", sql, err)
		}
		normalizeRow(row)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, r.queryError("row iteration failed", sql, err)
	}
	return out, nil
}

func totalPages(totalRows int64, pageSize int) int64 {
	return (totalRows + int64(pageSize) - 1) / int64(pageSize)
}

// normalizeRow turns raw []byte column values into strings so the page
// serializes as text instead of base64.
func normalizeRow(row map[string]interface{}) {
	for key, value := range row {
		if b, ok := value.([]byte); ok {
			row[key] = string(b)
		}
	}
}

func (r *Runner) queryError(msg, sql string, err error) *errors.APIError {
	apiErr := errors.NewQueryError(msg, err)
	if r.exposeSQL {
		apiErr.WithDetails(map[string]string{"query": sql})
	}
	return apiErr
}
